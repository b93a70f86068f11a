// Package collerr defines the error taxonomy shared by the collation
// packages. Every error names the offending parameter so callers can react
// programmatically instead of parsing messages.
package collerr

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind classifies a collation error.
type Kind int

const (
	KindNullInput Kind = iota + 1
	KindOutOfRange
	KindInvalidOptions
	KindUnsupportedOptions
	KindBufferTooSmall
)

var kindNames = [...]string{
	KindNullInput:          "null input",
	KindOutOfRange:         "out of range",
	KindInvalidOptions:     "invalid options",
	KindUnsupportedOptions: "unsupported options",
	KindBufferTooSmall:     "buffer too small",
}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Sentinels matched with errors.Is.
var (
	ErrNullInput          = errors.New("null input")
	ErrOutOfRange         = errors.New("argument out of range")
	ErrInvalidOptions     = errors.New("invalid compare options")
	ErrUnsupportedOptions = errors.New("compare options not supported")
	ErrBufferTooSmall     = errors.New("destination buffer too small")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNullInput:
		return ErrNullInput
	case KindOutOfRange:
		return ErrOutOfRange
	case KindInvalidOptions:
		return ErrInvalidOptions
	case KindUnsupportedOptions:
		return ErrUnsupportedOptions
	case KindBufferTooSmall:
		return ErrBufferTooSmall
	}
	return nil
}

// ParamError is an error attributed to a single logical parameter.
type ParamError struct {
	Kind  Kind
	Param string
	Msg   string
}

func (e *ParamError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Param, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Param, e.Kind, e.Msg)
}

// Is makes errors.Is(err, ErrOutOfRange) and friends work without wrapping.
func (e *ParamError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newParamError(kind Kind, param, format string, args ...interface{}) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return errors.WithStackDepth(&ParamError{Kind: kind, Param: param, Msg: msg}, 2)
}

// NullInput reports a missing source or pattern.
func NullInput(param string) error {
	return newParamError(KindNullInput, param, "value cannot be null")
}

// OutOfRange reports an offset, count or length outside the valid bounds.
func OutOfRange(param, format string, args ...interface{}) error {
	return newParamError(KindOutOfRange, param, format, args...)
}

// InvalidOptions reports unknown or conflicting option bits.
func InvalidOptions(param, format string, args ...interface{}) error {
	return newParamError(KindInvalidOptions, param, format, args...)
}

// Unsupported reports a valid option combination the active backend cannot honor.
func Unsupported(param, format string, args ...interface{}) error {
	return newParamError(KindUnsupportedOptions, param, format, args...)
}

// BufferTooSmall reports an undersized sort-key destination.
func BufferTooSmall(param string, have, need int) error {
	return newParamError(KindBufferTooSmall, param, "have %d bytes, need %d", have, need)
}

// Param returns the parameter an error is attributed to, or "" when err
// carries no ParamError.
func Param(err error) string {
	var pe *ParamError
	if errors.As(err, &pe) {
		return pe.Param
	}
	return ""
}

// KindOf returns the Kind of err, or 0 when err carries no ParamError.
func KindOf(err error) Kind {
	var pe *ParamError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

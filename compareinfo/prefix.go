package compareinfo

import (
	"github.com/mhr3/collation/collerr"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/ordinal"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

// Parameter names of the prefix and suffix checks.
const (
	paramPrefix = "prefix"
	paramSuffix = "suffix"
)

// IsPrefix reports whether source starts with prefix under o.
func (c *CompareInfo) IsPrefix(source, prefix string, o options.CompareOptions) (bool, error) {
	ok, _, err := c.IsPrefixUnits(utf16.FromString(source), utf16.FromString(prefix), o)
	return ok, err
}

// IsSuffix reports whether source ends with suffix under o.
func (c *CompareInfo) IsSuffix(source, suffix string, o options.CompareOptions) (bool, error) {
	ok, _, err := c.IsSuffixUnits(utf16.FromString(source), utf16.FromString(suffix), o)
	return ok, err
}

// IsPrefixUnits is IsPrefix over UTF-16 text. It also returns the number of
// source units the prefix matched, which is 0 when it does not match.
func (c *CompareInfo) IsPrefixUnits(source, prefix []uint16, o options.CompareOptions) (bool, int, error) {
	return c.affix(source, prefix, o, true)
}

// IsSuffixUnits is IsSuffix over UTF-16 text. It also returns the number of
// source units the suffix matched, which is 0 when it does not match.
func (c *CompareInfo) IsSuffixUnits(source, suffix []uint16, o options.CompareOptions) (bool, int, error) {
	return c.affix(source, suffix, o, false)
}

func (c *CompareInfo) affix(source, value []uint16, o options.CompareOptions, prefix bool) (bool, int, error) {
	param := paramSuffix
	if prefix {
		param = paramPrefix
	}
	if source == nil {
		return false, 0, collerr.NullInput(span.ParamSource)
	}
	if value == nil {
		return false, 0, collerr.NullInput(param)
	}
	if len(value) == 0 {
		return true, 0, nil
	}
	if err := options.ValidateForSearch(o, options.DefaultParam); err != nil {
		return false, 0, err
	}

	ignoreCase := o == options.OrdinalIgnoreCase
	if o.IsOrdinal() {
		if prefix {
			ok, n := ordinal.HasPrefix(source, value, ignoreCase)
			return ok, n, nil
		}
		ok, n := ordinal.HasSuffix(source, value, ignoreCase)
		return ok, n, nil
	}

	if prefix {
		if ok, n, handled := c.fastPrefix(source, value, o); handled {
			return ok, n, nil
		}
		c.metrics.backendCall(opIsPrefix)
		return c.backend.IsPrefix(source, value, o)
	}
	if ok, n, handled := c.fastSuffix(source, value, o); handled {
		return ok, n, nil
	}
	c.metrics.backendCall(opIsSuffix)
	return c.backend.IsSuffix(source, value, o)
}

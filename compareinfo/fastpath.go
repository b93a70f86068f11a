package compareinfo

import (
	"github.com/mhr3/collation/ascii"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/ordinal"
	"github.com/mhr3/collation/span"
)

// The ASCII fast path answers None and IgnoreCase searches with the ordinal
// comparator when the locale collates printable ASCII like ordinal text and
// both sides are printable ASCII. Anything else goes to the backend with
// the same arguments, so the results do not depend on which path ran.

func (c *CompareInfo) fastEligible(op string, source, value []uint16, o options.CompareOptions) bool {
	if !c.asciiFast || o&^options.IgnoreCase != 0 {
		return false
	}
	if i := ascii.IndexNonPrintable(value); i >= 0 {
		c.bailout(op, "value", i)
		return false
	}
	if i := ascii.IndexNonPrintable(source); i >= 0 {
		c.bailout(op, "source", i)
		return false
	}
	c.metrics.fastPath.Inc()
	return true
}

func (c *CompareInfo) bailout(op, side string, at int) {
	c.metrics.bailout.Inc()
	c.log.WithField("op", op).Debugf("ascii fast path left at %s[%d]", side, at)
}

func (c *CompareInfo) fastIndex(source, value []uint16, o options.CompareOptions, fromStart bool) (span.Match, bool) {
	op := opIndexOf
	if !fromStart {
		op = opLastIndexOf
	}
	if !c.fastEligible(op, source, value, o) {
		return span.NotFound, false
	}
	return ordinal.IndexOf(source, value, o == options.IgnoreCase, fromStart), true
}

func (c *CompareInfo) fastPrefix(source, prefix []uint16, o options.CompareOptions) (ok bool, n int, handled bool) {
	if !c.fastEligible(opIsPrefix, source, prefix, o) {
		return false, 0, false
	}
	ok, n = ordinal.HasPrefix(source, prefix, o == options.IgnoreCase)
	return ok, n, true
}

func (c *CompareInfo) fastSuffix(source, suffix []uint16, o options.CompareOptions) (ok bool, n int, handled bool) {
	if !c.fastEligible(opIsSuffix, source, suffix, o) {
		return false, 0, false
	}
	ok, n = ordinal.HasSuffix(source, suffix, o == options.IgnoreCase)
	return ok, n, true
}

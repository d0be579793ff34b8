package vignette

import (
	"sort"

	"github.com/oomph-ac/vrloco/settings"
)

// ResponseCurve maps the speed of the user to the visible radius of the vignette.
type ResponseCurve interface {
	Evaluate(x float32) float32
}

// Curve is a piecewise linear float curve. Inputs outside its key range evaluate to the value of
// the nearest end key.
type Curve struct {
	keys []settings.CurveKey
}

// NewCurve returns a curve through the given keys. The keys need not be ordered.
func NewCurve(keys ...settings.CurveKey) *Curve {
	c := &Curve{keys: make([]settings.CurveKey, len(keys))}
	copy(c.keys, keys)
	sort.SliceStable(c.keys, func(i, j int) bool { return c.keys[i].Time < c.keys[j].Time })
	return c
}

// CurveFromSettings returns the radius curve configured in s, or nil when the vignette is
// disabled or has no keys.
func CurveFromSettings(s settings.Settings) ResponseCurve {
	if !s.Vignette.Enabled || len(s.Vignette.RadiusVsVelocity) == 0 {
		return nil
	}
	return NewCurve(s.SortedCurveKeys()...)
}

// Evaluate ...
func (c *Curve) Evaluate(x float32) float32 {
	if len(c.keys) == 0 {
		return 0
	}
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	if x <= first.Time {
		return first.Value
	}
	if x >= last.Time {
		return last.Value
	}

	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i].Time > x })
	a, b := c.keys[i-1], c.keys[i]
	if b.Time == a.Time {
		return b.Value
	}
	alpha := (x - a.Time) / (b.Time - a.Time)
	return a.Value + (b.Value-a.Value)*alpha
}

// Len returns the number of keys on the curve.
func (c *Curve) Len() int {
	return len(c.keys)
}

package signal

// #region imports
import (
	"time"
)

// #endregion

// #region defaults

// DefaultTheta returns the baseline operating thresholds.
func DefaultTheta() Theta {
	return Theta{
		Confidence: 0.5,
		Info:       0.5,
		Risk:       0.5,
	}
}

// NewContext binds a Theta to the wall clock.
func NewContext(theta Theta) Context {
	return Context{
		Theta: theta,
		Now:   time.Now,
	}
}

// #endregion

// #region accessors

// Float reads a numeric field, falling back to def when the field is absent
// or not numeric. Malformed input degrades, it never errors.
func (s Signal) Float(key string, def float64) float64 {
	v, ok := s[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// String reads a string field. The second return is false when the field is
// absent or not a string.
func (s Signal) String(key string) (string, bool) {
	v, ok := s[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Clone returns a shallow copy of the signal.
func (s Signal) Clone() Signal {
	out := make(Signal, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// #endregion

// #region helpers

// Clamp01 restricts v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HasTag reports whether tag appears in the result's tag set.
func (r Result) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// #endregion

package signal

// #region imports
import (
	"time"
)

// #endregion

// #region signal

// Signal is an open mapping of named observation fields. Callers may supply
// any fields; components read the ones they know about and tolerate the rest.
type Signal map[string]any

// #endregion

// #region theta

// Theta is the shared operating context: default confidence, information,
// and risk thresholds bound once at initialization.
type Theta struct {
	Confidence float64
	Info       float64
	Risk       float64
}

// #endregion

// #region context

// Context carries the configuration every component binds at construction:
// the shared Theta plus an injectable clock.
type Context struct {
	Theta Theta
	Now   func() time.Time
}

// #endregion

// #region result

// Result is the uniform per-step output of every component.
type Result struct {
	OK    bool
	Score float64
	Tags  []string
	Out   map[string]any
}

// #endregion

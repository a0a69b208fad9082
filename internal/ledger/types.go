package ledger

// #region imports
import (
	"time"
)

// #endregion

// #region choice

// Choice is the closed tag recorded with every decision.
type Choice string

const (
	ChoiceYes      Choice = "YES"
	ChoiceNo       Choice = "NO"
	ChoiceResearch Choice = "RESEARCH"
)

// #endregion

// #region entry

// Entry is one immutable ledger record.
type Entry struct {
	ID      string
	At      time.Time
	Station string
	Choice  Choice
	Why     string
	Tags    []string
	Out     map[string]any
}

// #endregion

// #region step-input

// StepInput describes the decision to append. Choice defaults to RESEARCH
// when unspecified; Why, Tags, and Out are optional.
type StepInput struct {
	Station string
	Choice  Choice
	Why     string
	Tags    []string
	Out     map[string]any
}

// #endregion

// #region query

// Query filters a ledger scan. Both fields are optional and combined by
// conjunction when set.
type Query struct {
	Station string
	Tag     string
}

// #endregion

// #region view

// View is the read-only facade host layers consume; it exposes no mutation
// beyond Push so the one-transition-per-input invariant stays with the owner.
type View interface {
	Push(e Entry)
	List() []Entry
	Find(q Query) []Entry
	Count() int
	Export() map[string]any
}

// #endregion

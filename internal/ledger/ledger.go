package ledger

// #region imports
import (
	"github.com/google/uuid"

	"github.com/danielpatrickdp/decision-router/internal/signal"
)

// #endregion

// #region constants

// DefaultCapacity bounds the audit buffer when no capacity is given.
const DefaultCapacity = 500

// maxSimilar caps the similarity recall returned per step.
const maxSimilar = 3

// #endregion

// #region ledger

// Ledger is an append-only, capacity-bounded decision log backed by a ring
// buffer: append and evict are both O(1). Entries are never mutated or
// reordered once written.
type Ledger struct {
	ctx  signal.Context
	buf  []Entry
	head int
	size int
	last signal.Result
}

// NewLedger seeds a bounded ledger with one synthetic SYSTEM/init entry.
// capacity <= 0 selects DefaultCapacity.
func NewLedger(ctx signal.Context, capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l := &Ledger{
		ctx: ctx,
		buf: make([]Entry, capacity),
	}
	l.Push(Entry{
		ID:      uuid.New().String(),
		At:      ctx.Now(),
		Station: "SYSTEM",
		Choice:  ChoiceResearch,
		Why:     "init",
	})
	return l
}

// #endregion

// #region step

// Step appends an entry built from the input, evicting the oldest record
// when the buffer is full, and recalls up to three prior entries matching
// the same station and the new entry's first tag.
func (l *Ledger) Step(in StepInput) signal.Result {
	choice := in.Choice
	if choice == "" {
		choice = ChoiceResearch
	}

	entry := Entry{
		ID:      uuid.New().String(),
		At:      l.ctx.Now(),
		Station: in.Station,
		Choice:  choice,
		Why:     in.Why,
		Tags:    in.Tags,
		Out:     in.Out,
	}

	similar := l.similar(entry)
	l.Push(entry)

	res := signal.Result{
		OK:    true,
		Score: float64(l.size) / float64(len(l.buf)),
		Tags:  in.Tags,
		Out: map[string]any{
			"entry":   entry,
			"similar": similar,
		},
	}

	l.last = res
	return res
}

// similar scans newest-first for prior entries at the same station, and with
// the new entry's first tag when it carries one.
func (l *Ledger) similar(e Entry) []Entry {
	var tag string
	if len(e.Tags) > 0 {
		tag = e.Tags[0]
	}

	var out []Entry
	for i := l.size - 1; i >= 0 && len(out) < maxSimilar; i-- {
		prior := l.buf[(l.head+i)%len(l.buf)]
		if prior.Station != e.Station {
			continue
		}
		if tag != "" && !hasTag(prior, tag) {
			continue
		}
		out = append(out, prior)
	}
	return out
}

// #endregion

// #region facade

// Push appends an entry, evicting the oldest first when at capacity.
func (l *Ledger) Push(e Entry) {
	if l.size == len(l.buf) {
		l.buf[l.head] = e
		l.head = (l.head + 1) % len(l.buf)
		return
	}
	l.buf[(l.head+l.size)%len(l.buf)] = e
	l.size++
}

// List returns a point-in-time copy in insertion order, not a live view.
func (l *Ledger) List() []Entry {
	out := make([]Entry, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.buf[(l.head+i)%len(l.buf)]
	}
	return out
}

// Find scans the ledger linearly, applying the station and tag filters
// conjunctively. An empty query matches everything.
func (l *Ledger) Find(q Query) []Entry {
	var out []Entry
	for i := 0; i < l.size; i++ {
		e := l.buf[(l.head+i)%len(l.buf)]
		if q.Station != "" && e.Station != q.Station {
			continue
		}
		if q.Tag != "" && !hasTag(e, q.Tag) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count reports the number of buffered entries.
func (l *Ledger) Count() int {
	return l.size
}

// Clear discards all buffered entries.
func (l *Ledger) Clear() {
	l.head = 0
	l.size = 0
}

// #endregion

// #region eval-export

// Eval returns the last step result without recomputation.
func (l *Ledger) Eval() signal.Result {
	return l.last
}

// Export returns {size, last} for diagnostics.
func (l *Ledger) Export() map[string]any {
	snap := map[string]any{
		"size": l.size,
	}
	if l.size > 0 {
		snap["last"] = l.buf[(l.head+l.size-1)%len(l.buf)]
	}
	return snap
}

// #endregion

// #region helpers

func hasTag(e Entry, tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// #endregion

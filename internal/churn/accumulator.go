package churn

import (
	"fmt"

	"github.com/masmgr/truechurn-go/internal/diff"
)

// LineStats holds the cumulative removed/added line counts observed at one
// (file, line) slot over a whole run.
type LineStats struct {
	Removed int
	Added   int
}

// Total returns the combined removed + added count at the slot.
func (s LineStats) Total() int {
	return s.Removed + s.Added
}

// Ledger maps file -> line number -> cumulative stats. Line numbers are
// positional slots in the diff's own old/new numbering, not stable line
// identities: earlier insertions and deletions shift later lines, so one
// slot can alias unrelated source lines across commits. That is inherent
// to the metric and deliberately not compensated for.
type Ledger map[string]map[int]*LineStats

// Totals are the aggregate churn accounting counters. Both are magnitudes
// and only ever grow as commits are folded; presentation layers
// conventionally display Churn negated, as a cost.
type Totals struct {
	Contribution int
	Churn        int
}

// Accumulator classifies per-line diff events as first-time contribution or
// repeat churn. The first event touching a (file, line) slot is charged to
// Contribution; every event on that slot after the first is charged to
// Churn, whatever its direction. Commits must be folded oldest to newest:
// processed in reverse, the first-touch classification inverts and the
// metric measures the opposite concept.
//
// The accumulator is single-threaded and owns its ledger exclusively for
// the duration of one run.
type Accumulator struct {
	ledger Ledger
	totals Totals
}

// NewAccumulator creates an accumulator with an empty ledger.
func NewAccumulator() *Accumulator {
	return &Accumulator{ledger: make(Ledger)}
}

// Apply folds one decoded hunk for the given file.
//
// A hunk whose removal and addition spans are identical is a no-op: it
// carries no count delta but still marks the slot seen, so any future touch
// there counts as churn. The engine never reads the +/- content lines, so a
// line rewritten in place with unchanged counts is indistinguishable from a
// true no-op here; that is a known accuracy limit of the metric, not
// something to fix with content comparison.
func (a *Accumulator) Apply(file string, h diff.Hunk) {
	if h.Removal == h.Addition {
		a.touch(file, h.Removal.Start)
		return
	}

	if h.Removal.Start == h.Addition.Start {
		// Same slot: net the removal against the addition, one event.
		a.charge(file, h.Removal.Start, h.Removal.Count, h.Addition.Count)
		return
	}

	// Distinct slots: a pure removal and a pure addition, charged
	// independently.
	a.charge(file, h.Removal.Start, h.Removal.Count, 0)
	a.charge(file, h.Addition.Start, 0, h.Addition.Count)
}

// ApplyDiff folds every hunk of one commit's diff text. The accept filter
// limits accounting to matching file paths; nil accepts everything.
//
// On a malformed hunk header ApplyDiff stops and returns the decode error:
// hunks applied before the bad header stay applied, and the remainder of
// the commit is skipped, since a misparsed file/line context could corrupt
// every later slot key of that commit.
func (a *Accumulator) ApplyDiff(diffText string, accept func(file string) bool) error {
	s := diff.NewScanner(diffText)
	for s.Scan() {
		h, err := diff.ParseHeader(s.Header())
		if err != nil {
			return fmt.Errorf("file %s: %w", s.File(), err)
		}
		if accept != nil && !accept(s.File()) {
			continue
		}
		a.Apply(s.File(), h)
	}
	return nil
}

// Totals returns the running contribution/churn counters.
func (a *Accumulator) Totals() Totals {
	return a.totals
}

// Ledger exposes the per-file, per-line record for granular inspection.
// The caller must not mutate it while folding continues.
func (a *Accumulator) Ledger() Ledger {
	return a.ledger
}

// charge records one event at a slot: removed/added accumulate into the
// ledger entry, and the net magnitude goes to Contribution on the slot's
// first event or to Churn on every later one.
func (a *Accumulator) charge(file string, line, removed, added int) {
	entry, seen := a.entry(file, line)
	entry.Removed += removed
	entry.Added += added

	m := added - removed
	if m < 0 {
		m = -m
	}
	if seen {
		a.totals.Churn += m
	} else {
		a.totals.Contribution += m
	}
}

// touch marks a slot seen without charging anything.
func (a *Accumulator) touch(file string, line int) {
	a.entry(file, line)
}

// entry returns the ledger entry for a slot, creating it on first touch.
// The second result reports whether the slot had been seen before.
func (a *Accumulator) entry(file string, line int) (*LineStats, bool) {
	byLine, ok := a.ledger[file]
	if !ok {
		byLine = make(map[int]*LineStats)
		a.ledger[file] = byLine
	}
	stats, seen := byLine[line]
	if !seen {
		stats = &LineStats{}
		byLine[line] = stats
	}
	return stats, seen
}

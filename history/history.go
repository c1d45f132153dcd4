package history

import "github.com/grailbio/base/log"

const (
	// BeamSentinel is used as Step.Parent2 to mean "this step recombines
	// Parent1 with the beam" rather than with another jet.
	BeamSentinel = -1
	// InvalidSentinel is used as Step.Child to mean "this step produced no
	// new jet" (a beam termination, not a merge).
	InvalidSentinel = -1
)

// Step is one immutable cluster-history record (spec section 3, "History
// step"): either a merge of Parent1 and Parent2 into Child at distance Dij,
// or — when Parent2 == BeamSentinel and Child == InvalidSentinel — a beam
// termination of Parent1.
type Step struct {
	Parent1 int
	Parent2 int
	Child   int
	Dij     float64
}

// IsBeam reports whether s is a beam-termination step rather than a merge.
func (s Step) IsBeam() bool {
	return s.Parent2 == BeamSentinel
}

// Recorder is an append-only log of history steps plus the fixed total
// visible energy Qtot (spec section 4.2).
type Recorder struct {
	steps []Step
	qtot  float64
}

// NewRecorder creates a Recorder whose Qtot is fixed to the given value (the
// sum of input energies at seed time) and preallocates room for
// 2*nInputs-1 steps, more than the nInputs steps a finished run records.
func NewRecorder(qtot float64, nInputs int) *Recorder {
	cap := 2*nInputs - 1
	if cap < 0 {
		cap = 0
	}
	return &Recorder{steps: make([]Step, 0, cap), qtot: qtot}
}

// Append records one history step. parent1 must be <= parent2 unless parent2
// is BeamSentinel (spec section 3: "parent1 <= parent2").
func (r *Recorder) Append(parent1, parent2, child int, dij float64) {
	if parent2 != BeamSentinel && parent1 > parent2 {
		log.Panicf("history.Append: parent1 (%d) > parent2 (%d)", parent1, parent2)
	}
	r.steps = append(r.steps, Step{Parent1: parent1, Parent2: parent2, Child: child, Dij: dij})
}

// AppendBeam records a beam-termination step for parent.
func (r *Recorder) AppendBeam(parent int, diB float64) {
	r.Append(parent, BeamSentinel, InvalidSentinel, diB)
}

// Steps returns the recorded history in append order. The returned slice
// must not be mutated by the caller. Only merge and beam steps are
// recorded — the N_initial inputs are not, since each already occupies its
// own jetstore slot before a Recorder exists, so this log holds
// N_merge + N_beam steps rather than spec section 8 property 1's
// "N_initial + N_merge + N_beam" (see the Open Question decision in
// DESIGN.md).
func (r *Recorder) Steps() []Step {
	return r.steps
}

// Qtot returns the total visible energy, fixed at seed time.
func (r *Recorder) Qtot() float64 {
	return r.qtot
}

// NBeam returns the number of beam-termination steps recorded so far.
func (r *Recorder) NBeam() int {
	n := 0
	for _, s := range r.steps {
		if s.IsBeam() {
			n++
		}
	}
	return n
}

// NMerge returns the number of merge steps recorded so far.
func (r *Recorder) NMerge() int {
	return len(r.steps) - r.NBeam()
}

// Minmax returns (a, b) such that a <= b, for use by callers assembling the
// (parent1, parent2) pair for Append (spec section 4.6, step 3: "swap so
// A.id > B.id").
func Minmax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

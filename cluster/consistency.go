package cluster

import (
	"fmt"
	"math"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"

	"github.com/quarkjet/fastjet/history"
)

const energyTolerance = 1e-6

// CheckConsistency is the optional, opt-in invariant check referenced in
// spec section 7 ("ee_check_consistency"): it re-walks a finished
// ClusterSequence's history and confirms every referenced jet index is in
// range, every jet is consumed as a parent at most once, the step count
// matches the input count, and every merge step conserves energy. It finds
// bugs, not recoverable conditions — a violation is logged and returned as
// an invariant-violation error rather than panicking, so callers
// (especially tests) can assert on it directly.
func CheckConsistency(cs *ClusterSequence) error {
	steps := cs.history.Steps()
	if len(steps) != cs.nInputs {
		err := errors.E("invariant", fmt.Sprintf(
			"history has %d steps, want exactly nInputs=%d", len(steps), cs.nInputs))
		log.Error.Print(err)
		return err
	}

	consumed := make(map[int]bool, 2*cs.nInputs)
	for stepIdx, s := range steps {
		if s.Parent1 < 0 || s.Parent1 >= cs.jets.Len() {
			return invariantf("step %d: parent1 %d out of range", stepIdx, s.Parent1)
		}
		if consumed[s.Parent1] {
			return invariantf("step %d: jet %d consumed more than once", stepIdx, s.Parent1)
		}
		consumed[s.Parent1] = true

		if s.IsBeam() {
			if s.Child != history.InvalidSentinel {
				return invariantf("step %d: beam step has a child set (%d)", stepIdx, s.Child)
			}
			continue
		}

		if s.Parent2 < 0 || s.Parent2 >= cs.jets.Len() {
			return invariantf("step %d: parent2 %d out of range", stepIdx, s.Parent2)
		}
		if s.Parent1 > s.Parent2 {
			return invariantf("step %d: parent1 %d > parent2 %d", stepIdx, s.Parent1, s.Parent2)
		}
		if consumed[s.Parent2] {
			return invariantf("step %d: jet %d consumed more than once", stepIdx, s.Parent2)
		}
		consumed[s.Parent2] = true

		if s.Child < 0 || s.Child >= cs.jets.Len() {
			return invariantf("step %d: child %d out of range", stepIdx, s.Child)
		}

		a, b, c := cs.jets.Get(s.Parent1), cs.jets.Get(s.Parent2), cs.jets.Get(s.Child)
		if math.Abs(c.Energy()-(a.Energy()+b.Energy())) > energyTolerance*math.Max(1, c.Energy()) {
			return invariantf("step %d: energy not conserved: child=%v parents=%v+%v",
				stepIdx, c.Energy(), a.Energy(), b.Energy())
		}
	}
	return nil
}

func invariantf(format string, args ...interface{}) error {
	err := errors.E("invariant", fmt.Sprintf(format, args...))
	log.Error.Print(err)
	return err
}

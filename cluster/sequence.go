package cluster

import (
	"github.com/quarkjet/fastjet/geom"
	"github.com/quarkjet/fastjet/history"
	"github.com/quarkjet/fastjet/jetstore"
)

// Strategy tags which reduction loop produced a ClusterSequence (spec
// section 4.9, "strategy tag").
type Strategy int

const (
	StrategyTiled Strategy = iota
	StrategyPlain
)

func (s Strategy) String() string {
	if s == StrategyPlain {
		return "plain"
	}
	return "tiled"
}

// ClusterSequence is the result of a finished clustering run (spec section
// 6, "ClusterSequence (returned)"). It is immutable once returned.
type ClusterSequence struct {
	Algorithm Algorithm
	P         float64
	R         float64
	Strategy  Strategy

	jets     *jetstore.Store
	history  *history.Recorder
	nInputs  int
}

// Jets returns every jet ever created, input and merged alike, in store
// order (spec section 6: "jets (full store of length 2N-1 at most)").
func (cs *ClusterSequence) Jets() []jetstore.Jet { return cs.jets.All() }

// History returns the full, append-ordered list of merge and beam steps.
func (cs *ClusterSequence) History() []history.Step { return cs.history.Steps() }

// Qtot returns the total visible energy, fixed at seed time.
func (cs *ClusterSequence) Qtot() float64 { return cs.history.Qtot() }

// NInputs returns the number of original input particles.
func (cs *ClusterSequence) NInputs() int { return cs.nInputs }

// InclusiveJets returns every jet that was recombined with the beam (spec
// glossary: "Inclusive jets"), filtered to those with transverse momentum
// at least ptmin. ptmin <= 0 returns every inclusive jet.
func (cs *ClusterSequence) InclusiveJets(ptmin float64) []jetstore.Jet {
	ptmin2 := ptmin * ptmin
	var out []jetstore.Jet
	for _, step := range cs.history.Steps() {
		if !step.IsBeam() {
			continue
		}
		j := cs.jets.Get(step.Parent1)
		if ptmin <= 0 || geom.Pt2(j) >= ptmin2 {
			out = append(out, j)
		}
	}
	return out
}

// ExclusiveJets returns the jets that would exist had clustering stopped as
// soon as the minimal merge distance exceeded dcut: every merge step with
// Dij <= dcut is applied, in history order, and every later step (merge or
// beam) is not. Beam steps never change the current jet collection — a jet
// that terminates to the beam simply never merges again — so only merge
// steps are consulted here.
func (cs *ClusterSequence) ExclusiveJets(dcut float64) []jetstore.Jet {
	current := make(map[int]bool, cs.nInputs)
	for i := 0; i < cs.nInputs; i++ {
		current[i] = true
	}
	for _, step := range cs.history.Steps() {
		if step.IsBeam() {
			continue
		}
		if step.Dij > dcut {
			break
		}
		delete(current, step.Parent1)
		delete(current, step.Parent2)
		current[step.Child] = true
	}

	out := make([]jetstore.Jet, 0, len(current))
	for idx := 0; idx < cs.jets.Len(); idx++ {
		if current[idx] {
			out = append(out, cs.jets.Get(idx))
		}
	}
	return out
}

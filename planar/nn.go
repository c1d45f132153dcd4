package planar

import (
	"math"

	"github.com/quarkjet/fastjet/geom"
)

// DijFactorKind selects which e+e- algorithm's dij_factor applies (spec
// section 4.7): Durham's is a constant, EEKt's depends on R.
type DijFactorKind int

const (
	DurhamFactor DijFactorKind = iota
	EEKtFactor
)

// ComputeDijFactor returns the dij_factor for the given algorithm and
// radius (spec section 4.7). EEKt's factor has two branches at R==pi: at
// exactly R==pi, 1-cos(R) is numerically well-behaved (equals 2) but the
// source's own boundary is a strict less-than, so R==pi takes the
// "3+cos(R)" branch here too (see the Open Question decision in DESIGN.md).
func ComputeDijFactor(kind DijFactorKind, r float64) float64 {
	if kind == DurhamFactor {
		return 2
	}
	if r < math.Pi {
		return 1 / (1 - math.Cos(r))
	}
	return 1 / (3 + math.Cos(r))
}

// dij computes slot i's dijdist from its current Nni/Nndist, applying the
// beam clamp (spec section 3 invariants and section 8: "a scenario ... must
// produce at least one beam merge before any jet-jet merge if no pair is
// below the beam threshold"). dijdist[i] holds whichever of (distance to
// nearest neighbour, distance to beam) is smaller: i merges with its
// neighbour when that is the cheaper action, and beam-terminates when the
// beam distance E2p[i] undercuts it instead, in which case Nni[i] is
// rewritten to BeamWins. Applied uniformly to Durham and EEKt alike — both
// are the plain strategy's inclusive mode, differing only in dij_factor
// (see the Open Question decision in DESIGN.md: without a beam distance,
// Durham could never stop merging short of a single final jet,
// contradicting the "two merges then two beams" four-particle scenario).
func (r *Records) dij(i int, factor float64) {
	if r.Nni[i] == i {
		// No other live jet at all (the sole-survivor case: Live==1). There is
		// no neighbour distance to compare against, so the recorded action is
		// just i's own beam distance (spec section 8 property 3: the recorded
		// dij_min for a beam step is the true beam distance).
		r.Dijdist[i] = r.E2p[i]
		return
	}
	kt2 := r.E2p[i]
	if nnKt2 := r.E2p[r.Nni[i]]; nnKt2 < kt2 {
		kt2 = nnKt2
	}
	raw := kt2 * factor * r.Nndist[i]

	if raw > r.E2p[i] {
		r.Dijdist[i] = r.E2p[i]
		r.Nni[i] = BeamWins
		return
	}
	r.Dijdist[i] = raw
}

// UpdateNNNoCross recomputes slot i's nearest neighbour from scratch by
// scanning every other live slot, without touching any other slot's state
// (spec section 4.7, "update_nn_no_cross"). Used for the initial seeding
// pass and for repairing a single stale slot whose old neighbour is gone.
func (r *Records) UpdateNNNoCross(i int, factor float64) {
	r.Nni[i] = i
	r.Nndist[i] = LargeDistance
	for j := 0; j < r.Live; j++ {
		if j == i {
			continue
		}
		d := geom.Angular(r.Nx[i], r.Ny[i], r.Nz[i], r.Nx[j], r.Ny[j], r.Nz[j])
		if d < r.Nndist[i] {
			r.Nndist[i] = d
			r.Nni[i] = j
		}
	}
	r.dij(i, factor)
}

// UpdateNNCross recomputes slot i's nearest neighbour exactly like
// UpdateNNNoCross, but additionally improves any other slot j whose own
// nearest neighbour is now closer via i (spec section 4.7,
// "update_nn_cross"). Used for the re-seeded slot iA after a real merge,
// the one case where a brand-new direction can beat every other slot's
// incumbent neighbour.
func (r *Records) UpdateNNCross(i int, factor float64) {
	r.Nni[i] = i
	r.Nndist[i] = LargeDistance
	for j := 0; j < r.Live; j++ {
		if j == i {
			continue
		}
		d := geom.Angular(r.Nx[i], r.Ny[i], r.Nz[i], r.Nx[j], r.Ny[j], r.Nz[j])
		if d < r.Nndist[i] {
			r.Nndist[i] = d
			r.Nni[i] = j
		}
		if d < r.Nndist[j] {
			r.Nndist[j] = d
			r.Nni[j] = i
			r.dij(j, factor)
		}
	}
	r.dij(i, factor)
}

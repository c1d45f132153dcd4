package planar

// LargeDistance is the initial NNDist a freshly seeded slot carries before
// any real neighbour has been found (spec section 9, "Global constants").
// The plain strategy's N² scan always finds a real neighbour when one
// exists (every live pair is compared, unlike the tiled strategy's
// tile-bounded search), so this only ever needs to exceed the largest
// possible Angular distance (spec section 4.1: bounded by 2).
const LargeDistance = 16.0

// Records holds the plain strategy's per-jet columns (spec section 3,
// "Plain SoA record"). Index i is valid for i in [0, Live). Go is
// zero-indexed, so slot 0 is a real slot and cannot double as the "beam
// wins" marker the source's one-based 0 served as: a jet pointing at itself
// (Nni[i]==i) has no live neighbour, and BeamWins is a distinct
// sentinel, set by the beam clamp (shared by Durham and EEKt) to flag that
// the beam, not another jet, currently minimises jet i's distance.
type Records struct {
	Index   []int     // jet store index for the jet occupying this slot
	Nni     []int     // nearest-neighbour slot index, i itself if none, BeamWins if the beam clamp won
	Nndist  []float64  // angular distance to Nni[i] (meaningless when Nni[i]==BeamWins)
	Dijdist []float64  // this slot's contribution to the global dij_min search
	Nx      []float64
	Ny      []float64
	Nz      []float64
	E2p     []float64 // E^(2p), the generalized-kt weight for this jet

	Live int // number of occupied slots, always a prefix [0, Live)
}

// BeamWins is the Nni sentinel meaning "the beam distance undercuts the
// nearest-neighbour distance", set by both Durham and EEKt (spec section
// 4.7; see the Open Question decision in DESIGN.md for why Durham shares it).
const BeamWins = -1

// NewRecords preallocates Records for up to n live jets. The plain strategy
// never grows past its initial input count; slots are only ever squashed
// away, never added.
func NewRecords(n int) *Records {
	return &Records{
		Index:   make([]int, n),
		Nni:     make([]int, n),
		Nndist:  make([]float64, n),
		Dijdist: make([]float64, n),
		Nx:      make([]float64, n),
		Ny:      make([]float64, n),
		Nz:      make([]float64, n),
		E2p:     make([]float64, n),
	}
}

// SeedInitial writes slot i's starting state for an original input particle
// (spec section 4.7, step 1): no neighbour found yet, distance at the
// "nothing found" ceiling. The caller runs UpdateNNNoCross (or
// UpdateNNCross) over every slot immediately afterwards to fill in real
// neighbours.
func (r *Records) SeedInitial(i, jetIndex int, nx, ny, nz, e2p float64) {
	r.Index[i] = jetIndex
	r.Nni[i] = i
	r.Nndist[i] = LargeDistance
	r.Dijdist[i] = 0
	r.Nx[i], r.Ny[i], r.Nz[i] = nx, ny, nz
	r.E2p[i] = e2p
}

// InsertNewJet re-seeds slot i with a freshly merged jet (spec section 4.7,
// step 2, "insert_new_jet"). Nni and Nndist are set to the same transient
// placeholders the source uses (nni=i's own one-based "0" rewritten as
// BeamWins, nndist=r2): neither value is trusted until the neighbour-repair
// pass (step 4) and the cross-update on i itself (step 5) run later in the
// same iteration, at which point both are overwritten with i's real
// nearest neighbour.
func (r *Records) InsertNewJet(i, jetIndex int, nx, ny, nz, e2p, rSquared float64) {
	r.Index[i] = jetIndex
	r.Nni[i] = BeamWins
	r.Nndist[i] = rSquared
	r.Dijdist[i] = 0
	r.Nx[i], r.Ny[i], r.Nz[i] = nx, ny, nz
	r.E2p[i] = e2p
}

// Squash retires the vacated slot by copying the current last live slot's
// columns into it, then shrinks Live by one (spec section 4.7, step 3).
// Callers must run neighbour repair (Repair) over [0, NewLive)
// immediately afterwards: any slot whose Nni pointed at the relocated last
// slot must be repointed at its new home, vacated.
func (r *Records) Squash(vacated int) (movedFrom int, moved bool) {
	last := r.Live - 1
	if vacated != last {
		r.copyInto(vacated, last)
		movedFrom = last
		moved = true
	}
	r.Live--
	return movedFrom, moved
}

func (r *Records) copyInto(dst, src int) {
	r.Index[dst] = r.Index[src]
	r.Nni[dst] = r.Nni[src]
	r.Nndist[dst] = r.Nndist[src]
	r.Dijdist[dst] = r.Dijdist[src]
	r.Nx[dst] = r.Nx[src]
	r.Ny[dst] = r.Ny[src]
	r.Nz[dst] = r.Nz[src]
	r.E2p[dst] = r.E2p[src]
}

// Repair applies the neighbour-repair rule for slot i after a Squash (spec
// section 4.7, step 4): if the relocated last slot landed at vacated and i
// was pointing at its old location, repoint it there; else if i's neighbour
// was iA, was vacated, or now falls outside the live range, mark it stale
// so the caller recomputes it via UpdateNNNoCross.
func (r *Records) Repair(i, iA, vacated, movedFrom int, moved bool) (stale bool) {
	if moved && r.Nni[i] == movedFrom {
		r.Nni[i] = vacated
		return false
	}
	if r.Nni[i] == iA || r.Nni[i] == vacated || r.Nni[i] >= r.Live {
		return true
	}
	return false
}

package tiling

// NoTiledJet is the sentinel arena index meaning "no such tiled jet" — used
// for NN, Prev, Next, and tile-head links (spec section 9, "Global
// sentinels": avoid hidden null semantics, use a reserved index instead of
// unrestricted pointers).
const NoTiledJet = -1

// TiledJet is the per-jet mutable state the tiled strategy threads through
// the reduction loop (spec section 3, "Tiled jet record"). Doubly-linked
// list pointers and the nearest-neighbour pointer are arena indices rather
// than language pointers (spec section 9).
type TiledJet struct {
	Eta, Phi  float64
	Kt2       float64
	JetsIndex int // index into the jet store

	NN     int // arena index of current nearest neighbour, or NoTiledJet
	NNDist float64

	TileIndex int

	Prev, Next int // intra-tile doubly-linked list, arena indices or NoTiledJet

	DijPosn int // index into the compact NNs/diJ arrays; NNs[DijPosn] == this jet's arena index
}

// Arena is the backing store for TiledJet records (spec section 9: "A
// language without unrestricted pointers should hold tiled jets in an
// arena"). Arena indices are stable for the life of the Arena; TiledJets are
// mutated in place via Get, never copied out and back.
type Arena struct {
	jets []TiledJet
	r2   float64
}

// NewArena preallocates an Arena with room for capacityHint jets. r2 is the
// squared jet radius, needed by DiJ to scale the beam distance onto the same
// (unnormalised) footing as jet-jet distances (spec section 4.5).
func NewArena(capacityHint int, r2 float64) *Arena {
	return &Arena{jets: make([]TiledJet, 0, capacityHint), r2: r2}
}

// Push appends tj to the arena and returns its stable index.
func (a *Arena) Push(tj TiledJet) int {
	idx := len(a.jets)
	a.jets = append(a.jets, tj)
	return idx
}

// Get returns a pointer to the tiled jet at index, for in-place mutation.
func (a *Arena) Get(index int) *TiledJet {
	return &a.jets[index]
}

// Len returns the number of tiled jets pushed so far (including ones that
// have since been retired from the compact arrays — the arena itself never
// shrinks; retirement is tracked by the compact NNs/diJ arrays' live length,
// not by the arena).
func (a *Arena) Len() int {
	return len(a.jets)
}

// DiJ computes _tj_diJ(j) (spec section 4.5): min(kt2_j, kt2_NN) * NNDist if
// j has a valid NN, else j's beam distance kt2_j scaled by r2 (NN invalid
// means no other live jet in j's 3x3 tile neighbourhood lies closer than
// ΔR^2 = r2, so there is no neighbour distance to use — the beam distance
// is a pure kt2 quantity,
// scaled by r2 here only so it lands on the same unnormalised footing as
// jet-jet distances until the caller divides the winning entry by r2).
func (a *Arena) DiJ(jetArenaIdx int) float64 {
	j := a.Get(jetArenaIdx)
	if j.NN == NoTiledJet {
		return j.Kt2 * a.r2
	}
	nn := a.Get(j.NN)
	kt2 := j.Kt2
	if nn.Kt2 < kt2 {
		kt2 = nn.Kt2
	}
	return kt2 * j.NNDist
}

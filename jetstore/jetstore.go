package jetstore

import "github.com/grailbio/base/log"

// Jet is the engine's internal recombined 4-vector (spec section 3, "Jet").
// It satisfies geom.Momentum so geometry primitives apply to it directly,
// and it carries a stable ClusterHistIndex assigned at creation time, never
// reassigned afterward.
type Jet struct {
	px, py, pz, e    float64
	clusterHistIndex int
}

// NewJet constructs a Jet from Cartesian 4-momentum components and the
// history index it will be known by for the rest of the run.
func NewJet(px, py, pz, e float64, clusterHistIndex int) Jet {
	return Jet{px: px, py: py, pz: pz, e: e, clusterHistIndex: clusterHistIndex}
}

func (j Jet) Px() float64            { return j.px }
func (j Jet) Py() float64            { return j.py }
func (j Jet) Pz() float64            { return j.pz }
func (j Jet) Energy() float64        { return j.e }
func (j Jet) ClusterHistIndex() int  { return j.clusterHistIndex }

// Add is the default recombine function (spec section 6, "Recombine
// contract"): four-momentum(jet) = a+b, with the given cluster-history
// index.
func Add(a, b Jet, clusterHistIndex int) Jet {
	return NewJet(a.px+b.px, a.py+b.py, a.pz+b.pz, a.e+b.e, clusterHistIndex)
}

// Store is the growable sequence of jets described in spec section 4.3.
// Indices returned by Push are stable for the lifetime of the Store: Push
// never invalidates a previously returned index, and jets are never
// removed.
type Store struct {
	jets []Jet
}

// NewStore preallocates a Store with room for capacityHint jets without
// reallocating (the façade passes 2*nInputs, the maximum possible size in
// the non-beam limit, per spec section 4.3).
func NewStore(capacityHint int) *Store {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Store{jets: make([]Jet, 0, capacityHint)}
}

// Push appends jet to the store and returns its stable index.
func (s *Store) Push(jet Jet) int {
	idx := len(s.jets)
	s.jets = append(s.jets, jet)
	return idx
}

// Get returns the jet at index. Panics on an out-of-range index: every
// index the reduction loop hands back to a Store it obtained from that same
// Store's Push, so an out-of-range index is an invariant violation (spec
// section 7), not a recoverable condition.
func (s *Store) Get(index int) Jet {
	if index < 0 || index >= len(s.jets) {
		log.Panicf("jetstore: index %d out of range [0, %d)", index, len(s.jets))
	}
	return s.jets[index]
}

// Len returns the number of jets pushed so far.
func (s *Store) Len() int {
	return len(s.jets)
}

// All returns every jet pushed so far, in push order. The returned slice
// must not be mutated by the caller.
func (s *Store) All() []Jet {
	return s.jets
}

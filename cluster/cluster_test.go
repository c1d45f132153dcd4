package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarkjet/fastjet/cluster"
)

type fourVector struct {
	px, py, pz, e float64
}

func (v fourVector) Px() float64     { return v.px }
func (v fourVector) Py() float64     { return v.py }
func (v fourVector) Pz() float64     { return v.pz }
func (v fourVector) Energy() float64 { return v.e }

func TestTiledReconstructRejectsEmptyInput(t *testing.T) {
	_, err := cluster.TiledReconstruct([]fourVector{}, cluster.Config{Algorithm: cluster.AntiKt, R: 0.4}, nil)
	assert.Error(t, err)
}

func TestTiledReconstructRejectsPlainAlgorithm(t *testing.T) {
	particles := []fourVector{{100, 0, 0, 100}}
	_, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.Durham}, nil)
	assert.Error(t, err)
}

func TestGenKtRequiresExplicitPower(t *testing.T) {
	particles := []fourVector{{100, 0, 0, 100}}
	_, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.GenKt, R: 0.4}, nil)
	assert.Error(t, err)
}

func TestTwoBackToBackParticlesProduceTwoBeamSteps(t *testing.T) {
	particles := []fourVector{
		{100, 0, 0, 100},
		{-100, 0, 0, 100},
	}
	cs, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.AntiKt, R: 0.4}, nil)
	require.NoError(t, err)

	require.Len(t, cs.History(), 2)
	for _, step := range cs.History() {
		assert.True(t, step.IsBeam())
	}
	require.NoError(t, cluster.CheckConsistency(cs))
}

func TestCollinearDoubletMergesThenGoesToBeam(t *testing.T) {
	particles := []fourVector{
		{10, 0, 0, 10},
		{10, 0, 0, 10},
	}
	cs, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.AntiKt, R: 1.0}, nil)
	require.NoError(t, err)

	require.Len(t, cs.History(), 2)
	merge, beam := cs.History()[0], cs.History()[1]
	assert.False(t, merge.IsBeam())
	assert.True(t, beam.IsBeam())

	mergedJet := cs.Jets()[merge.Child]
	assert.InDelta(t, 20.0, mergedJet.Energy(), 1e-9)
	require.NoError(t, cluster.CheckConsistency(cs))
}

func TestAntiKtVerySmallRTerminatesEveryInputToTheBeam(t *testing.T) {
	particles := []fourVector{
		{100, 0, 0, 100},
		{0, 100, 0, 100},
		{-100, 0, 0, 100},
	}
	cs, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.AntiKt, R: 0.01}, nil)
	require.NoError(t, err)

	require.Len(t, cs.History(), len(particles))
	for _, step := range cs.History() {
		assert.True(t, step.IsBeam())
	}
}

func TestDurhamOnFourParticlesTwoBackToBackPairs(t *testing.T) {
	// Two tight pairs (~5.7 degrees apart internally, one along +x and one
	// along -x) that are back-to-back with each other: each pair merges
	// first, then the two resulting jets are exactly back-to-back and each
	// beam-terminates independently.
	particles := []fourVector{
		{10, 0.5, 0, math.Sqrt(10*10 + 0.5*0.5)},
		{10, -0.5, 0, math.Sqrt(10*10 + 0.5*0.5)},
		{-10, 0.5, 0, math.Sqrt(10*10 + 0.5*0.5)},
		{-10, -0.5, 0, math.Sqrt(10*10 + 0.5*0.5)},
	}
	cs, err := cluster.EEReconstruct(particles, cluster.Config{Algorithm: cluster.Durham, PSet: true, P: 1}, nil)
	require.NoError(t, err)

	merges, beams := 0, 0
	var mergeDij []float64
	for _, step := range cs.History() {
		if step.IsBeam() {
			beams++
		} else {
			merges++
			mergeDij = append(mergeDij, step.Dij)
		}
	}
	assert.Equal(t, 2, merges)
	assert.Equal(t, 2, beams)
	require.Len(t, mergeDij, 2)
	assert.InDelta(t, mergeDij[0], mergeDij[1], 1e-9)
	require.NoError(t, cluster.CheckConsistency(cs))
}

func TestDeterminismAcrossRepeatedRuns(t *testing.T) {
	particles := []fourVector{
		{10, 2, 0, 11},
		{-9, -1, 1, 10},
		{3, 15, -2, 16},
		{-4, -16, 0, 17},
	}
	cs1, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.Kt, R: 0.6}, nil)
	require.NoError(t, err)
	cs2, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.Kt, R: 0.6}, nil)
	require.NoError(t, err)

	assert.Equal(t, cs1.Fingerprint(), cs2.Fingerprint())
}

func TestTriangleInPhiOnlyClosestPairMerges(t *testing.T) {
	// Three particles at the same rapidity: two within 0.05 rad of each
	// other in phi, the third a full half-turn away. Only the close pair
	// falls inside R=0.5.
	eps := 0.05
	particles := []fourVector{
		{10, 0, 0, 10},
		{10 * math.Cos(eps), 10 * math.Sin(eps), 0, 10},
		{-10, 0, 0, 10},
	}
	cs, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.AntiKt, R: 0.5}, nil)
	require.NoError(t, err)
	require.NoError(t, cluster.CheckConsistency(cs))

	merges, beams := 0, 0
	mergedChild := -1
	for _, step := range cs.History() {
		if step.IsBeam() {
			beams++
		} else {
			merges++
			mergedChild = step.Child
		}
	}
	assert.Equal(t, 1, merges)
	assert.Equal(t, 2, beams)
	require.GreaterOrEqual(t, mergedChild, 0)
	assert.InDelta(t, 20.0, cs.Jets()[mergedChild].Energy(), 1e-9)

	incl := cs.InclusiveJets(0)
	require.Len(t, incl, 2)
	foundIsolated := false
	for _, j := range incl {
		if math.Abs(j.Energy()-10.0) < 1e-9 {
			foundIsolated = true
		}
	}
	assert.True(t, foundIsolated, "the isolated third particle's energy must survive unchanged")
}

func TestTileBoundaryStraddlingPairStillMerges(t *testing.T) {
	// Four same-phi particles spanning a rapidity range wide enough to force
	// two eta tiles (R=1 => dEta=1): two anchors at y=0 and y=2 stretch the
	// grid, while the middle pair sits 0.01 apart straddling the y=1
	// boundary between tile 0 ([0,1)) and tile 1 ([1,2]).
	pt := 10.0
	mk := func(y float64) fourVector {
		return fourVector{pt, 0, pt * math.Sinh(y), pt * math.Cosh(y)}
	}
	particles := []fourVector{
		mk(0),
		mk(1 - 0.005),
		mk(1 + 0.005),
		mk(2),
	}
	cs, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.AntiKt, R: 1.0}, nil)
	require.NoError(t, err)
	require.NoError(t, cluster.CheckConsistency(cs))

	found := false
	for _, step := range cs.History() {
		if !step.IsBeam() && step.Parent1 == 1 && step.Parent2 == 2 {
			found = true
		}
	}
	assert.True(t, found, "the tile-straddling pair (indices 1,2) must merge despite the tile boundary")
}

func TestInclusiveJetsCollectsBeamTerminatedJets(t *testing.T) {
	particles := []fourVector{
		{100, 0, 0, 100},
		{-100, 0, 0, 100},
	}
	cs, err := cluster.TiledReconstruct(particles, cluster.Config{Algorithm: cluster.AntiKt, R: 0.4}, nil)
	require.NoError(t, err)

	incl := cs.InclusiveJets(0)
	assert.Len(t, incl, 2)
}

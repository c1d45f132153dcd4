package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarkjet/fastjet/geom"
)

type fourVector struct{ px, py, pz, e float64 }

func (f fourVector) Px() float64     { return f.px }
func (f fourVector) Py() float64     { return f.py }
func (f fourVector) Pz() float64     { return f.pz }
func (f fourVector) Energy() float64 { return f.e }

func TestPhiWrapsIntoUnitCircle(t *testing.T) {
	m := fourVector{px: -1, py: -1e-9, pz: 0, e: 1}
	phi := geom.Phi(m)
	assert.GreaterOrEqual(t, phi, 0.0)
	assert.Less(t, phi, 2*math.Pi)
}

func TestDistYPhiPeriodic(t *testing.T) {
	// Two points straddling the 0/2pi seam should be close, not ~2pi apart.
	d := geom.DistYPhi(0, 0.01, 0, 2*math.Pi-0.01)
	assert.InDelta(t, 0.02*0.02, d, 1e-9)
}

func TestAngularNonNegativeAndZeroForParallel(t *testing.T) {
	assert.Equal(t, 0.0, geom.Angular(1, 0, 0, 1, 0, 0))
	d := geom.Angular(1, 0, 0, 0, 1, 0)
	assert.InDelta(t, 1.0, d, 1e-12)
	assert.GreaterOrEqual(t, d, 0.0)
}

func TestKtWeightFloorsDegenerateInput(t *testing.T) {
	assert.Equal(t, geom.Kt2Overflow, geom.KtWeight(0, 1))
	assert.InDelta(t, 10.0, geom.KtWeight(10, 1), 1e-9)
}

func TestTileOfClampsAtEdges(t *testing.T) {
	// etaMin=-5, dEta=1 (10 bins covering [-5,5)), dPhi=2pi/9.
	idx := geom.TileOf(-100, -1, -5, 1, 9/(2*math.Pi), 10, 9)
	assert.Equal(t, 0, idx) // clamped to ieta=0, iphi=0
	idx2 := geom.TileOf(100, 100, -5, 1, 9/(2*math.Pi), 10, 9)
	assert.Equal(t, 8*10+9, idx2) // clamped to ieta=9, iphi=8
}

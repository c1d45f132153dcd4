package jetstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarkjet/fastjet/jetstore"
)

func TestPushGetStableIndices(t *testing.T) {
	s := jetstore.NewStore(4)
	i0 := s.Push(jetstore.NewJet(1, 2, 3, 4, 0))
	i1 := s.Push(jetstore.NewJet(5, 6, 7, 8, 1))
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, s.Len())

	j0 := s.Get(i0)
	assert.Equal(t, 1.0, j0.Px())
	assert.Equal(t, 0, j0.ClusterHistIndex())
}

func TestGetOutOfRangePanics(t *testing.T) {
	s := jetstore.NewStore(0)
	assert.Panics(t, func() { s.Get(0) })
}

func TestAddIsFourMomentumAddition(t *testing.T) {
	a := jetstore.NewJet(1, 2, 3, 10, 0)
	b := jetstore.NewJet(4, 5, 6, 20, 1)
	c := jetstore.Add(a, b, 2)
	require.Equal(t, 30.0, c.Energy())
	assert.Equal(t, 5.0, c.Px())
	assert.Equal(t, 7.0, c.Py())
	assert.Equal(t, 9.0, c.Pz())
	assert.Equal(t, 2, c.ClusterHistIndex())
}

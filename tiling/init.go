package tiling

import "github.com/quarkjet/fastjet/geom"

func collectTileMembers(g *Grid, a *Arena, tileID int) []int {
	members := make([]int, 0, 4)
	for idx := g.Head(tileID); idx != NoTiledJet; idx = a.Get(idx).Next {
		members = append(members, idx)
	}
	return members
}

func updatePair(a *Arena, idxA, idxB int) {
	tjA, tjB := a.Get(idxA), a.Get(idxB)
	d := geom.DistYPhi(tjA.Eta, tjA.Phi, tjB.Eta, tjB.Phi)
	if d < tjA.NNDist {
		tjA.NNDist = d
		tjA.NN = idxB
	}
	if d < tjB.NNDist {
		tjB.NNDist = d
		tjB.NN = idxA
	}
}

// InitNN performs the one-shot O(N*k) nearest-neighbour initialisation pass
// (spec section 4.5): for every tile, every intra-tile pair is compared
// once, and every pair split across a tile and one of its RightNeighbours
// is compared once, so that every unordered neighbour pair within the 3x3
// neighbourhood is visited exactly once. It then builds the compact
// NNs/diJ arrays for arena indices [0, n).
//
// Requires: arena already holds n TiledJets (indices 0..n-1), each already
// inserted into grid via InsertAtHead.
func InitNN(g *Grid, a *Arena, n int) (NNs []int, diJ []float64) {
	for i := 0; i < n; i++ {
		tj := a.Get(i)
		tj.NN = NoTiledJet
		tj.NNDist = a.r2
	}

	rightBuf := make([]int, 0, 4)
	for tileID := 0; tileID < g.NTiles(); tileID++ {
		members := collectTileMembers(g, a, tileID)
		for bi := 0; bi < len(members); bi++ {
			for ai := bi + 1; ai < len(members); ai++ {
				updatePair(a, members[ai], members[bi])
			}
		}

		rightBuf = rightBuf[:0]
		rightBuf = g.RightNeighbours(tileID, rightBuf)
		for _, rTile := range rightBuf {
			rMembers := collectTileMembers(g, a, rTile)
			for _, ai := range members {
				for _, bi := range rMembers {
					updatePair(a, ai, bi)
				}
			}
		}
	}

	NNs = make([]int, n)
	diJ = make([]float64, n)
	for i := 0; i < n; i++ {
		NNs[i] = i
		diJ[i] = a.DiJ(i)
		a.Get(i).DijPosn = i
	}
	return NNs, diJ
}

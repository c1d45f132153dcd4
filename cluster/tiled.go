package cluster

import (
	"github.com/quarkjet/fastjet/geom"
	"github.com/quarkjet/fastjet/history"
	"github.com/quarkjet/fastjet/jetstore"
	"github.com/quarkjet/fastjet/tiling"
)

// reduceTiled runs the hadron-collider reduction loop (spec section 4.6)
// over the first n jets already pushed into store (indices 0..n-1), driving
// hist to completion. p is the generalised-kt power, r the jet radius.
func reduceTiled(store *jetstore.Store, hist *history.Recorder, n int, p, r float64, recombine Recombine) {
	if n == 0 {
		return
	}

	rapidities := make([]float64, n)
	for i := 0; i < n; i++ {
		rapidities[i] = geom.Rapidity(store.Get(i))
	}

	grid := tiling.NewGrid(rapidities, r)
	r2 := r * r
	arena := tiling.NewArena(2*n, r2)
	for i := 0; i < n; i++ {
		jet := store.Get(i)
		y := rapidities[i]
		phi := geom.Phi(jet)
		kt2 := geom.KtWeight(geom.Pt2(jet), p)
		idx := arena.Push(tiling.TiledJet{
			Eta: y, Phi: phi, Kt2: kt2, JetsIndex: i,
			NN: tiling.NoTiledJet, NNDist: r2,
		})
		grid.InsertAtHead(arena, idx, grid.TileOf(y, phi))
	}

	NNs, diJ := tiling.InitNN(grid, arena, n)
	ilast := n - 1

	tileBuf := make([]int, 0, 9)
	affected := make([]int, 0, 3*9)
	nnBuf := make([]int, 0, 9)
	tagSurrounding := func(tile int) {
		tileBuf = grid.Surrounding(tile, tileBuf[:0])
		for _, t := range tileBuf {
			if !grid.IsTagged(t) {
				grid.Tag(t)
				affected = append(affected, t)
			}
		}
	}

	for ilast >= 0 {
		ibest, dijMin := argminPrefix(diJ, ilast+1)
		Aidx := NNs[ibest]
		Bidx := arena.Get(Aidx).NN
		dijMin /= r2

		merge := Bidx != tiling.NoTiledJet
		if merge && Aidx < Bidx {
			Aidx, Bidx = Bidx, Aidx
		}
		tjA := arena.Get(Aidx)

		aTile := tjA.TileIndex
		var oldBTile, newBTile int
		var tjB *tiling.TiledJet

		if !merge {
			hist.AppendBeam(tjA.JetsIndex, dijMin)
			grid.Remove(arena, Aidx)
		} else {
			tjB = arena.Get(Bidx)
			oldBTile = tjB.TileIndex

			ja, jb := tjA.JetsIndex, tjB.JetsIndex
			jetA, jetB := store.Get(ja), store.Get(jb)
			childIdx := store.Len()
			merged := recombine(jetA, jetB, childIdx)
			newIdx := store.Push(merged)
			p1, p2 := history.Minmax(ja, jb)
			hist.Append(p1, p2, newIdx, dijMin)

			grid.Remove(arena, Aidx)
			grid.Remove(arena, Bidx)

			y := geom.Rapidity(merged)
			phi := geom.Phi(merged)
			kt2 := geom.KtWeight(geom.Pt2(merged), p)
			tjB.Eta, tjB.Phi, tjB.Kt2 = y, phi, kt2
			tjB.JetsIndex = newIdx
			tjB.NN = tiling.NoTiledJet
			tjB.NNDist = r2

			newBTile = grid.TileOf(y, phi)
			grid.InsertAtHead(arena, Bidx, newBTile)
		}

		affected = affected[:0]
		tagSurrounding(aTile)
		if merge {
			if newBTile != aTile {
				tagSurrounding(newBTile)
			}
			if oldBTile != aTile && oldBTile != newBTile {
				tagSurrounding(oldBTile)
			}
		}

		posA := tjA.DijPosn
		if posA != ilast {
			lastArenaIdx := NNs[ilast]
			NNs[posA] = lastArenaIdx
			diJ[posA] = diJ[ilast]
			arena.Get(lastArenaIdx).DijPosn = posA
		}
		ilast--

		for _, tile := range affected {
			for idx := grid.Head(tile); idx != tiling.NoTiledJet; idx = arena.Get(idx).Next {
				tj := arena.Get(idx)
				if tj.NN == Aidx || (merge && tj.NN == Bidx) {
					nnBuf = recomputeNN(grid, arena, idx, r2, nnBuf)
					diJ[tj.DijPosn] = arena.DiJ(idx)
				}
				if merge && idx != Bidx {
					d := geom.DistYPhi(tj.Eta, tj.Phi, tjB.Eta, tjB.Phi)
					if d < tj.NNDist {
						tj.NNDist = d
						tj.NN = Bidx
						diJ[tj.DijPosn] = arena.DiJ(idx)
					}
					if d < tjB.NNDist {
						tjB.NNDist = d
						tjB.NN = idx
					}
				}
			}
			grid.Untag(tile)
		}

		if merge {
			diJ[tjB.DijPosn] = arena.DiJ(Bidx)
		}
	}
}

// recomputeNN finds the tiled jet at idx's nearest neighbour from scratch,
// scanning every jet in its tile's 3x3 neighbourhood (spec section 4.6,
// step 7a). Used when idx's incumbent neighbour was just removed. r2 is the
// squared jet radius: the acceptance ceiling a candidate distance must beat
// to register as NN, matching spec section 4.6 step 3's "NN=nil,
// NN_dist=R²" reset so a jet with no candidate within R stays NN-invalid
// rather than latching onto something merely within the 3x3 tile stencil.
// buf is a caller-owned scratch slice, reused across calls to avoid
// allocating in the inner loop; the (possibly grown) slice is returned for
// reuse.
func recomputeNN(g *tiling.Grid, a *tiling.Arena, idx int, r2 float64, buf []int) []int {
	tj := a.Get(idx)
	tj.NN = tiling.NoTiledJet
	tj.NNDist = r2

	buf = g.Surrounding(tj.TileIndex, buf[:0])
	for _, nt := range buf {
		for j := g.Head(nt); j != tiling.NoTiledJet; j = a.Get(j).Next {
			if j == idx {
				continue
			}
			tjj := a.Get(j)
			d := geom.DistYPhi(tj.Eta, tj.Phi, tjj.Eta, tjj.Phi)
			if d < tj.NNDist {
				tj.NNDist = d
				tj.NN = j
			}
		}
	}
	return buf
}

package cluster

import (
	"github.com/quarkjet/fastjet/geom"
	"github.com/quarkjet/fastjet/history"
	"github.com/quarkjet/fastjet/jetstore"
	"github.com/quarkjet/fastjet/planar"
)

// reducePlain runs the e+e- reduction loop (spec section 4.7) over the
// first n jets already pushed into store (indices 0..n-1), driving hist to
// completion. algo selects Durham or EEKt's dij_factor; p is the
// generalised-kt power (Durham fixes p=1); r is the jet radius.
func reducePlain(store *jetstore.Store, hist *history.Recorder, n int, algo Algorithm, p, r float64, recombine Recombine) {
	if n == 0 {
		return
	}

	kind := planar.DurhamFactor
	if algo == EEKt {
		kind = planar.EEKtFactor
	}
	factor := planar.ComputeDijFactor(kind, r)
	r2 := r * r

	recs := planar.NewRecords(n)
	recs.Live = n
	for i := 0; i < n; i++ {
		jet := store.Get(i)
		nx, ny, nz := geom.Direction(jet)
		e2p := geom.KtWeight(jet.Energy()*jet.Energy(), p)
		recs.SeedInitial(i, i, nx, ny, nz, e2p)
	}
	for i := 0; i < n; i++ {
		recs.UpdateNNNoCross(i, factor)
	}

	for recs.Live > 0 {
		iA, dijMin := argminPrefix(recs.Dijdist, recs.Live)
		iB := recs.Nni[iA]

		merge := iB != planar.BeamWins && recs.Live > 1
		if !merge {
			hist.AppendBeam(recs.Index[iA], dijMin)
			iB = iA
		} else {
			if iA > iB {
				iA, iB = iB, iA
			}
			ja, jb := recs.Index[iA], recs.Index[iB]
			jetA, jetB := store.Get(ja), store.Get(jb)
			childIdx := store.Len()
			merged := recombine(jetA, jetB, childIdx)
			newIdx := store.Push(merged)
			p1, p2 := history.Minmax(ja, jb)
			hist.Append(p1, p2, newIdx, dijMin)

			nx, ny, nz := geom.Direction(merged)
			e2p := geom.KtWeight(merged.Energy()*merged.Energy(), p)
			recs.InsertNewJet(iA, newIdx, nx, ny, nz, e2p, r2)
		}

		movedFrom, moved := recs.Squash(iB)
		for i := 0; i < recs.Live; i++ {
			if recs.Repair(i, iA, iB, movedFrom, moved) {
				recs.UpdateNNNoCross(i, factor)
			}
		}
		if merge {
			recs.UpdateNNCross(iA, factor)
		}
	}
}

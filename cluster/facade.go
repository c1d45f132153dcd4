package cluster

import (
	"math"

	"github.com/grailbio/base/errors"

	"github.com/quarkjet/fastjet/geom"
	"github.com/quarkjet/fastjet/history"
	"github.com/quarkjet/fastjet/jetstore"
)

// Preprocess converts one input particle into the engine's jet type,
// assigning it clusterHistIndex (spec section 6, "Preprocess contract"). A
// nil Preprocess defaults to building a jetstore.Jet directly from the
// particle's Px/Py/Pz/Energy, which is a no-op copy whenever P is already
// jetstore.Jet.
type Preprocess[P geom.Momentum] func(p P, clusterHistIndex int) jetstore.Jet

func defaultPreprocess[P geom.Momentum](p P, clusterHistIndex int) jetstore.Jet {
	return jetstore.NewJet(p.Px(), p.Py(), p.Pz(), p.Energy(), clusterHistIndex)
}

func seed[P geom.Momentum](particles []P, preprocess Preprocess[P]) (*jetstore.Store, *history.Recorder, error) {
	if len(particles) == 0 {
		return nil, nil, errors.E("domain", "empty input: at least one particle is required")
	}
	if preprocess == nil {
		preprocess = defaultPreprocess[P]
	}

	qtot := 0.0
	for _, p := range particles {
		if nonFinite(p) {
			return nil, nil, errors.E("domain", "non-finite input coordinates")
		}
		qtot += p.Energy()
	}

	n := len(particles)
	store := jetstore.NewStore(2 * n)
	hist := history.NewRecorder(qtot, n)
	for i, p := range particles {
		store.Push(preprocess(p, i))
	}
	return store, hist, nil
}

func nonFinite(m geom.Momentum) bool {
	for _, v := range [...]float64{m.Px(), m.Py(), m.Pz(), m.Energy()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// TiledReconstruct runs the hadron-collider (tiled) strategy over
// particles (spec section 6). R defaults to 1.0 when cfg.R is zero.
func TiledReconstruct[P geom.Momentum](particles []P, cfg Config, preprocess Preprocess[P]) (*ClusterSequence, error) {
	r, err := cfg.validate(1.0)
	if err != nil {
		return nil, err
	}
	if err := validateStrategy(r, false); err != nil {
		return nil, err
	}

	store, hist, err := seed(particles, preprocess)
	if err != nil {
		return nil, err
	}
	n := len(particles)

	reduceTiled(store, hist, n, r.p, r.r, r.recombine)

	return &ClusterSequence{
		Algorithm: r.algorithm,
		P:         r.p,
		R:         r.r,
		Strategy:  StrategyTiled,
		jets:      store,
		history:   hist,
		nInputs:   n,
	}, nil
}

// EEReconstruct runs the e+e- (plain) strategy over particles (spec
// section 6). R defaults to 4.0 when cfg.R is zero; Durham always uses 4
// regardless of what was passed.
func EEReconstruct[P geom.Momentum](particles []P, cfg Config, preprocess Preprocess[P]) (*ClusterSequence, error) {
	r, err := cfg.validate(4.0)
	if err != nil {
		return nil, err
	}
	if err := validateStrategy(r, true); err != nil {
		return nil, err
	}

	store, hist, err := seed(particles, preprocess)
	if err != nil {
		return nil, err
	}
	n := len(particles)

	reducePlain(store, hist, n, r.algorithm, r.p, r.r, r.recombine)

	return &ClusterSequence{
		Algorithm: r.algorithm,
		P:         r.p,
		R:         r.r,
		Strategy:  StrategyPlain,
		jets:      store,
		history:   hist,
		nInputs:   n,
	}, nil
}

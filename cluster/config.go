package cluster

import (
	"fmt"
	"math"

	"github.com/grailbio/base/errors"

	"github.com/quarkjet/fastjet/jetstore"
)

// Algorithm identifies a member of the generalised-kT family (spec section
// 4.9).
type Algorithm int

const (
	Kt Algorithm = iota
	AntiKt
	CA
	GenKt
	EEKt
	Durham
)

func (a Algorithm) String() string {
	switch a {
	case Kt:
		return "kt"
	case AntiKt:
		return "antikt"
	case CA:
		return "ca"
	case GenKt:
		return "genkt"
	case EEKt:
		return "eekt"
	case Durham:
		return "durham"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// isPlain reports whether a uses the e+e- (plain) strategy rather than the
// hadron-collider (tiled) one (spec section 4.9).
func (a Algorithm) isPlain() bool {
	return a == EEKt || a == Durham
}

// fixedPower returns the algorithm's power p and whether it is fixed (true)
// or caller-supplied (false) (spec section 4.9: "each algorithm fixes p
// ... or requires p").
func (a Algorithm) fixedPower() (p float64, fixed bool) {
	switch a {
	case Kt:
		return 1, true
	case AntiKt:
		return -1, true
	case CA:
		return 0, true
	case Durham:
		return 1, true
	case GenKt, EEKt:
		return 0, false
	default:
		return 0, true
	}
}

// Recombine combines two jets into their parent, assigning the parent's
// cluster history index (spec section 6, "Recombine contract"). The
// returned jet's four-momentum must equal a+b.
type Recombine func(a, b jetstore.Jet, clusterHistIndex int) jetstore.Jet

// Config is the validated set of clustering parameters accepted by the
// strategy façade (spec section 4.9). validate replaces a zero R with the
// strategy default (so R=0 cannot be requested) and always uses R=4 for
// Durham. P is read only for GenKt and EEKt, and only when PSet is true;
// those two algorithms are rejected when PSet is false. Every other
// algorithm uses its fixed power and ignores P.
type Config struct {
	Algorithm Algorithm
	P         float64
	PSet      bool
	R         float64
	Recombine Recombine
}

// resolved holds a Config after defaulting and validation.
type resolved struct {
	algorithm Algorithm
	p         float64
	r         float64
	recombine Recombine
	plain     bool
}

// validate checks algorithm/power consistency and fills in defaults (spec
// section 4.9, section 7 "configuration error"). defaultR is the
// strategy-specific radius used when cfg.R is zero (1.0 for
// TiledReconstruct, 4.0 for EEReconstruct, and Durham always forces 4
// regardless of what the caller passed).
func (cfg Config) validate(defaultR float64) (resolved, error) {
	p, fixed := cfg.Algorithm.fixedPower()
	if !fixed {
		if !cfg.PSet {
			return resolved{}, errors.E("configuration", fmt.Sprintf(
				"algorithm %s requires an explicit power p", cfg.Algorithm))
		}
		p = cfg.P
	}

	r := cfg.R
	if cfg.Algorithm == Durham {
		r = 4.0
	} else if r == 0 {
		r = defaultR
	}
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return resolved{}, errors.E("configuration", fmt.Sprintf("invalid radius R=%v", r))
	}

	recombine := cfg.Recombine
	if recombine == nil {
		recombine = jetstore.Add
	}

	return resolved{
		algorithm: cfg.Algorithm,
		p:         p,
		r:         r,
		recombine: recombine,
		plain:     cfg.Algorithm.isPlain(),
	}, nil
}

// validateStrategy rejects an algorithm/strategy mismatch (spec section 7:
// "unsupported algorithm for strategy"): TiledReconstruct only accepts the
// hadron-collider algorithms, EEReconstruct only the e+e- ones.
func validateStrategy(r resolved, wantPlain bool) error {
	if r.plain != wantPlain {
		return errors.E("configuration", fmt.Sprintf(
			"algorithm %s is not valid for this strategy", r.algorithm))
	}
	return nil
}

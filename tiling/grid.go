package tiling

import (
	"math"

	"github.com/quarkjet/fastjet/geom"
)

// minTilesPhi is the minimum number of phi tiles the grid is built with,
// even when R is large enough that fewer would otherwise suffice (spec
// section 3: "Tile edge lengths are >= R ... at least 3 in each
// direction"). With fewer than 3 phi tiles the periodic 3x3 neighbourhood
// would double-count a tile as its own neighbour.
const minTilesPhi = 3

// Grid is the fixed 2D tiling over (rapidity, azimuth) described in spec
// section 3 ("Tile"). Tiles are identified by iphi*nEta + ieta; eta bins are
// open-ended at the extremes, phi bins wrap periodically around [0, 2*pi).
type Grid struct {
	nEta, nPhi     int
	etaMin         float64
	dEtaInv        float64
	dPhiInv        float64
	heads          []int // tile -> head arena index, or NoTiledJet
	tags           *tagSet
}

// NewGrid builds a Grid sized from the observed rapidity distribution and
// radius R (spec section 3): phi always covers the full circle in
// max(floor(2*pi/R), minTilesPhi) bins, each of width >= R unless the
// minTilesPhi floor makes them narrower; eta covers [min(rapidities),
// max(rapidities)] in as many bins of width >= R as fit, with a minimum of
// one (open-ended) bin.
func NewGrid(rapidities []float64, r float64) *Grid {
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, y := range rapidities {
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	if math.IsInf(yMin, 1) {
		// No particles at all; degenerate grid callers won't query.
		yMin, yMax = 0, 0
	}

	nEta := int((yMax - yMin) / r)
	if nEta < 1 {
		nEta = 1
	}
	dEta := (yMax - yMin) / float64(nEta)
	if dEta < r {
		// Narrower than R overall: a single open-ended bin covers everything.
		dEta = r
	}

	nPhi := int(2 * math.Pi / r)
	if nPhi < minTilesPhi {
		nPhi = minTilesPhi
	}
	dPhi := 2 * math.Pi / float64(nPhi)

	g := &Grid{
		nEta:    nEta,
		nPhi:    nPhi,
		etaMin:  yMin,
		dEtaInv: 1 / dEta,
		dPhiInv: 1 / dPhi,
		heads:   make([]int, nEta*nPhi),
		tags:    newTagSet(nEta * nPhi),
	}
	for i := range g.heads {
		g.heads[i] = NoTiledJet
	}
	return g
}

// NTiles returns the total number of tiles in the grid.
func (g *Grid) NTiles() int {
	return g.nEta * g.nPhi
}

// TileOf returns the tile id the given (rapidity, azimuth) point maps into.
func (g *Grid) TileOf(eta, phi float64) int {
	return geom.TileOf(eta, phi, g.etaMin, g.dEtaInv, g.dPhiInv, g.nEta, g.nPhi)
}

// InsertAtHead prepends the tiled jet at arena index jetIdx to tileID's
// list (spec section 4.4).
func (g *Grid) InsertAtHead(a *Arena, jetIdx, tileID int) {
	tj := a.Get(jetIdx)
	tj.TileIndex = tileID
	tj.Prev = NoTiledJet
	tj.Next = g.heads[tileID]
	if tj.Next != NoTiledJet {
		a.Get(tj.Next).Prev = jetIdx
	}
	g.heads[tileID] = jetIdx
}

// Remove unlinks the tiled jet at arena index jetIdx from its tile's list,
// using its Prev/Next pointers (spec section 4.4).
func (g *Grid) Remove(a *Arena, jetIdx int) {
	tj := a.Get(jetIdx)
	if tj.Prev != NoTiledJet {
		a.Get(tj.Prev).Next = tj.Next
	} else {
		g.heads[tj.TileIndex] = tj.Next
	}
	if tj.Next != NoTiledJet {
		a.Get(tj.Next).Prev = tj.Prev
	}
	tj.Prev, tj.Next = NoTiledJet, NoTiledJet
}

// Head returns the arena index at the head of tileID's list, or NoTiledJet
// if the tile is empty.
func (g *Grid) Head(tileID int) int {
	return g.heads[tileID]
}

func (g *Grid) etaPhiOf(tileID int) (ieta, iphi int) {
	return tileID % g.nEta, tileID / g.nEta
}

// Surrounding appends tileID and its up-to-8 geometric neighbours (the
// tile's full 3x3 neighbourhood, spec section 4.4) to buf and returns the
// extended slice. Eta neighbours outside [0, nEta) are skipped (open-ended
// edges); phi neighbours wrap modulo nPhi.
func (g *Grid) Surrounding(tileID int, buf []int) []int {
	ieta0, iphi0 := g.etaPhiOf(tileID)
	for deta := -1; deta <= 1; deta++ {
		ieta := ieta0 + deta
		if ieta < 0 || ieta >= g.nEta {
			continue
		}
		for dphi := -1; dphi <= 1; dphi++ {
			iphi := ((iphi0+dphi)%g.nPhi + g.nPhi) % g.nPhi
			buf = append(buf, iphi*g.nEta+ieta)
		}
	}
	return buf
}

// RightNeighbours appends the up-to-4 tiles that make up the "right half"
// of tileID's 3x3 neighbourhood to buf and returns the extended slice: the
// three tiles at dphi=+1 (deta in {-1,0,1}, clamped at eta edges) plus the
// one tile at dphi=0, deta=+1. Used exclusively by the initial-NN pass
// (spec section 4.5) so every unordered neighbour pair is visited exactly
// once: for any two adjacent tiles, exactly one is the other's "right"
// neighbour under this fixed stencil, independent of the phi wraparound.
func (g *Grid) RightNeighbours(tileID int, buf []int) []int {
	ieta0, iphi0 := g.etaPhiOf(tileID)
	iphiRight := (iphi0 + 1) % g.nPhi
	for deta := -1; deta <= 1; deta++ {
		ieta := ieta0 + deta
		if ieta < 0 || ieta >= g.nEta {
			continue
		}
		buf = append(buf, iphiRight*g.nEta+ieta)
	}
	if ieta0+1 < g.nEta {
		buf = append(buf, iphi0*g.nEta+ieta0+1)
	}
	return buf
}

// Tag marks tileID as tagged.
func (g *Grid) Tag(tileID int) { g.tags.Tag(tileID) }

// Untag clears tileID's tagged bit.
func (g *Grid) Untag(tileID int) { g.tags.Untag(tileID) }

// IsTagged reports whether tileID is currently tagged.
func (g *Grid) IsTagged(tileID int) bool { return g.tags.IsTagged(tileID) }

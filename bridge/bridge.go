// Package bridge scores realized paths with runs of whitespace or
// ellipsis-like separator tokens treated as zero-cost bridges, so that
// differently spaced renderings of the same content score identically.
package bridge

import (
	"unicode"

	"yomisearch/model"
)

// CostFunc is a bigram connection-cost lookup. Implementations must
// return a defined value when either class id is absent.
type CostFunc func(left, right model.ClassID) int

// leaders are the dot/ellipsis characters eligible for bridging in
// addition to whitespace: horizontal ellipsis, three-dot leader, ASCII
// period, full-width period, middle dot.
var leaders = map[rune]struct{}{
	'…': {},
	'⋯': {},
	'.': {},
	'．': {},
	'・': {},
}

// IsSeparatorSurface reports whether the surface is a bridge candidate:
// empty, all whitespace, or all dot-leader characters. A surface mixing
// a bridge character with anything else is not a bridge.
func IsSeparatorSurface(s string) bool {
	if s == "" {
		return true
	}
	allSpace := true
	allLeader := true
	for _, r := range s {
		if !unicode.IsSpace(r) {
			allSpace = false
		}
		if _, ok := leaders[r]; !ok {
			allLeader = false
		}
		if !allSpace && !allLeader {
			return false
		}
	}
	return true
}

// IsSeparator reports whether the entry is a zero-cost bridge candidate.
func IsSeparator(e model.Entry) bool {
	return IsSeparatorSurface(e.Surface)
}

// InternalCost is the ordinary lattice path cost: every entry's emission
// cost plus the connection cost between each consecutive pair.
func InternalCost(p model.Path, conn CostFunc) int {
	total := 0
	for i, e := range p {
		total += e.Cost
		if i > 0 {
			total += conn(p[i-1].Right, e.Left)
		}
	}
	return total
}

// BridgedCost is InternalCost with every maximal run of separator
// entries elided: the connection cost is taken directly between the
// non-separator neighbors of the run, and the run's own emission costs
// and edges are excluded. Runs touching either end of the path
// contribute nothing. If a run's neighbor on both sides exists and
// either carries an absent class id, the elision cannot be
// reconstructed and the whole path falls back to InternalCost.
func BridgedCost(p model.Path, conn CostFunc) int {
	// Fallback scan: a run flanked by entries without class ids.
	prev := -1 // last non-separator index
	for i := 0; i < len(p); {
		if !IsSeparator(p[i]) {
			prev = i
			i++
			continue
		}
		j := i
		for j < len(p) && IsSeparator(p[j]) {
			j++
		}
		if prev >= 0 && j < len(p) {
			if !p[prev].Right.Present() || !p[j].Left.Present() {
				return InternalCost(p, conn)
			}
		}
		i = j
	}

	total := 0
	prev = -1
	for i, e := range p {
		if IsSeparator(e) {
			continue
		}
		total += e.Cost
		if prev >= 0 {
			total += conn(p[prev].Right, e.Left)
		}
		prev = i
	}
	return total
}

// Package candidates enumerates token segmentations of a lattice whose
// reconstructed reading matches a target phonetic string, ranked by
// path cost. The search runs over the full lattice, not the best path,
// since alternative segmentations can satisfy the same reading.
package candidates

import (
	"container/heap"
	"sort"
	"strconv"
	"strings"

	"yomisearch/model"
	"yomisearch/reading"
)

// DefaultMaxResults bounds the result count when the caller passes a
// non-positive limit.
const DefaultMaxResults = 16

// ConnFunc is the bigram connection-cost lookup used during expansion.
type ConnFunc func(left, right model.ClassID) int

// pathNode is one link of an immutable reversed path. Labels sharing a
// prefix share the chain.
type pathNode struct {
	entry  model.Entry
	parent *pathNode
}

// label is one frontier element: a partial path at a lattice boundary
// with part of the target reading consumed.
type label struct {
	cost     int
	boundary int
	offset   int // consumed bytes of the normalized target
	tokens   int
	right    model.ClassID
	node     *pathNode
	seq      uint64 // discovery order, stabilizes heap ties
}

type frontier []*label

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)         { *f = append(*f, x.(*label)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	lb := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return lb
}

type stateKey struct {
	boundary int
	offset   int
}

// Search enumerates up to maxResults distinct token sequences over
// entriesByBegin (the full lattice of a text of textLen runes) whose
// concatenated read forms equal the target reading after
// normalization. Results are ordered by total cost ascending, then by
// fewer tokens, then by discovery order. Paths with fewer than
// minTokens tokens are discarded. maxResults <= 0 is clamped to
// DefaultMaxResults and minTokens < 1 to 1. No match yields an empty
// result, never an error.
func Search(entriesByBegin [][]model.Entry, textLen int, conn ConnFunc, target string, maxResults, minTokens int) []model.Candidate {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if minTokens < 1 {
		minTokens = 1
	}

	normalized := reading.Normalize(target)
	if textLen == 0 || normalized == "" {
		return nil
	}

	// Normalized match variants, parallel to entriesByBegin.
	variants := make([][][]string, textLen)
	for p := range entriesByBegin {
		variants[p] = make([][]string, len(entriesByBegin[p]))
		for i, e := range entriesByBegin[p] {
			variants[p][i] = reading.MatchVariants(e)
		}
	}

	var (
		fr        frontier
		seq       uint64
		results   []model.Candidate
		accepted  = make(map[string]bool)
		expanded  = make(map[stateKey]int)
	)
	heap.Push(&fr, &label{right: model.AbsentClassID()})

	for fr.Len() > 0 && len(results) < maxResults {
		lb := heap.Pop(&fr).(*label)

		if lb.boundary == textLen {
			if lb.offset != len(normalized) || lb.tokens < minTokens {
				continue
			}
			path := materialize(lb.node)
			sig := signature(path)
			if accepted[sig] {
				continue
			}
			accepted[sig] = true
			results = append(results, model.Candidate{Tokens: path, TotalCost: lb.cost})
			continue
		}

		st := stateKey{lb.boundary, lb.offset}
		if expanded[st] >= maxResults {
			continue
		}
		expanded[st]++

		rest := normalized[lb.offset:]
		for i, e := range entriesByBegin[lb.boundary] {
			step := e.Cost
			if lb.node != nil {
				step += conn(lb.right, e.Left)
			}
			var prevLen int
			for _, v := range variants[lb.boundary][i] {
				if !strings.HasPrefix(rest, v) {
					continue
				}
				// Variants of equal length reach the same state.
				if prevLen == len(v) {
					continue
				}
				prevLen = len(v)
				seq++
				heap.Push(&fr, &label{
					cost:     lb.cost + step,
					boundary: e.End,
					offset:   lb.offset + len(v),
					tokens:   lb.tokens + 1,
					right:    e.Right,
					node:     &pathNode{entry: e, parent: lb.node},
					seq:      seq,
				})
			}
		}
	}

	// Costs pop in non-decreasing order; the stable sort applies the
	// fewer-tokens tie-break while keeping discovery order inside ties.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].TotalCost != results[j].TotalCost {
			return results[i].TotalCost < results[j].TotalCost
		}
		return len(results[i].Tokens) < len(results[j].Tokens)
	})
	return results
}

func materialize(node *pathNode) model.Path {
	var n int
	for p := node; p != nil; p = p.parent {
		n++
	}
	path := make(model.Path, n)
	for p := node; p != nil; p = p.parent {
		n--
		path[n] = p.entry
	}
	return path
}

// signature identifies a token sequence independent of which read-form
// variants matched it.
func signature(p model.Path) string {
	var b strings.Builder
	for _, e := range p {
		b.WriteString(strconv.Itoa(e.Begin))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.End))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.WordID))
		b.WriteByte('|')
	}
	return b.String()
}

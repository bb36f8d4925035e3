// Package lattice builds the complete graph of dictionary matches over
// an input text and extracts the minimal-cost path. The best-path
// search can optionally evaluate transitions out of separator runs with
// bridged cost accounting (see the bridge package).
package lattice

import (
	"errors"
	"fmt"
	"math"
	"unicode"

	"yomisearch/bridge"
	"yomisearch/dictionary"
	"yomisearch/model"
)

// ErrNoPath is returned when no path connects the beginning of the
// input to its end. With unknown-entry synthesis enabled this indicates
// a malformed dictionary collaborator.
var ErrNoPath = errors.New("lattice: no path from begin to end of input")

// UnknownConfig controls the entries synthesized for positions where no
// dictionary entry starts. Synthesized entries keep present class ids
// so bridged scoring never degrades because of them.
type UnknownConfig struct {
	Cost  int
	Class uint16
}

// DefaultUnknown is the synthesis configuration used by the tokenizer.
var DefaultUnknown = UnknownConfig{Cost: 3000, Class: 0}

// bosEosClass is the connection class of the virtual BOS/EOS nodes.
const bosEosClass = uint16(0)

// Lattice holds every entry reachable at every start offset of one
// input text. It is built once per analysis call and read-only after.
type Lattice struct {
	dict    dictionary.Dict
	text    []rune
	byBegin [][]model.Entry
}

// Build looks up all dictionary matches per start offset and
// synthesizes unknown entries where the dictionary has none: a maximal
// whitespace run becomes a single entry, any other uncovered rune a
// one-rune entry. Entries whose spans disagree with their offset are
// rejected as an internal-consistency failure.
func Build(text []rune, d dictionary.Dict, unk UnknownConfig) (*Lattice, error) {
	n := len(text)
	byBegin := make([][]model.Entry, n)
	for p := 0; p < n; p++ {
		matches := d.EntriesAt(text, p)
		for _, e := range matches {
			if e.Begin != p || e.End <= p || e.End > n {
				return nil, fmt.Errorf("lattice: entry %q has span [%d,%d) at offset %d", e.Surface, e.Begin, e.End, p)
			}
		}
		if len(matches) == 0 {
			matches = []model.Entry{synthesize(text, p, unk)}
		}
		byBegin[p] = matches
	}
	return &Lattice{dict: d, text: text, byBegin: byBegin}, nil
}

func synthesize(text []rune, p int, unk UnknownConfig) model.Entry {
	end := p + 1
	if unicode.IsSpace(text[p]) {
		for end < len(text) && unicode.IsSpace(text[end]) {
			end++
		}
	}
	return model.Entry{
		Surface: string(text[p:end]),
		Begin:   p,
		End:     end,
		Class:   model.Symbol,
		Cost:    unk.Cost,
		Left:    model.NewClassID(unk.Class),
		Right:   model.NewClassID(unk.Class),
		WordID:  model.UnknownWordID,
		Unknown: true,
	}
}

// Len returns the input length in runes.
func (la *Lattice) Len() int { return len(la.text) }

// EntriesByBegin exposes the raw lattice, indexed by start offset. The
// returned slices must not be modified.
func (la *Lattice) EntriesByBegin() [][]model.Entry { return la.byBegin }

// vnode is one realized node during the Viterbi pass.
type vnode struct {
	entry     model.Entry
	totalCost int
	reachable bool
	prevEnd   int
	prevIdx   int
	// prevNonSepRight carries the right-hand class of the last
	// non-separator node on the best path into this node, so a
	// transition out of a separator run can be priced against the
	// context before the run.
	prevNonSepRight model.ClassID
}

// BestPath runs the Viterbi search and returns the minimal-cost path
// with its total cost (including the BOS/EOS boundary edges). When
// bridged is set, transitions from a separator node to a non-separator
// node may instead be priced against the class context preceding the
// separator run, whichever is cheaper. Bridging never suppresses the
// separator entries themselves.
func (la *Lattice) BestPath(bridged bool) (model.Path, int, error) {
	n := len(la.text)
	if n == 0 {
		return model.Path{}, 0, nil
	}

	bos := model.NewClassID(bosEosClass)
	ends := make([][]vnode, n+1)

	for begin := 0; begin < n; begin++ {
		for _, e := range la.byBegin[begin] {
			nd := vnode{entry: e, totalCost: math.MaxInt}
			sep := bridge.IsSeparator(e)

			if begin == 0 {
				nd.reachable = true
				nd.totalCost = la.dict.ConnectionCost(bos, e.Left) + e.Cost
				nd.prevEnd = -1
				if sep {
					nd.prevNonSepRight = model.AbsentClassID()
				} else {
					nd.prevNonSepRight = e.Right
				}
			} else {
				for i := range ends[begin] {
					l := &ends[begin][i]
					if !l.reachable {
						continue
					}
					cost := l.totalCost + la.dict.ConnectionCost(l.entry.Right, e.Left) + e.Cost
					if bridged && bridge.IsSeparator(l.entry) && !sep && l.prevNonSepRight.Present() {
						alt := l.totalCost + la.dict.ConnectionCost(l.prevNonSepRight, e.Left) + e.Cost
						if alt < cost {
							cost = alt
						}
					}
					if cost < nd.totalCost {
						nd.totalCost = cost
						nd.reachable = true
						nd.prevEnd = begin
						nd.prevIdx = i
						if sep {
							nd.prevNonSepRight = l.prevNonSepRight
						} else {
							nd.prevNonSepRight = e.Right
						}
					}
				}
			}
			ends[e.End] = append(ends[e.End], nd)
		}
	}

	// Connect the virtual EOS node.
	bestCost := math.MaxInt
	bestIdx := -1
	for i := range ends[n] {
		l := &ends[n][i]
		if !l.reachable {
			continue
		}
		cost := l.totalCost + la.dict.ConnectionCost(l.entry.Right, bos)
		if cost < bestCost {
			bestCost = cost
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return nil, 0, ErrNoPath
	}

	var rev []model.Entry
	end, idx := n, bestIdx
	for {
		nd := ends[end][idx]
		rev = append(rev, nd.entry)
		if nd.prevEnd < 0 {
			break
		}
		end, idx = nd.prevEnd, nd.prevIdx
	}
	path := make(model.Path, len(rev))
	for i := range rev {
		path[len(rev)-1-i] = rev[i]
	}
	return path, bestCost, nil
}

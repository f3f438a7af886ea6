// Package trie compiles the POS grammar (spec §3, §4.2, §6) into a rooted
// trie of Node values. The trie encodes which sequences of POS tags form a
// legal morpheme chain; the DP parser in internal/parse walks it.
package trie

import (
	"fmt"

	"github.com/MyounghoonKim/hantok/internal/model"
)

// Node is one state in the compiled POS trie.
type Node struct {
	Pos  model.POS
	Next []*Node

	// HasEnding/Ending record whether reaching this node completes a full
	// parse, and under which terminal category — see spec §3.
	HasEnding bool
	Ending    model.POS
}

// selfNode is the sentinel appearing in Next to mean "loop back to the
// node that owns this Next slice". It is resolved to a concrete self
// pointer at trie-descent time (internal/parse), never dereferenced here.
var selfNode = &Node{}

// IsSelf reports whether n is the self-loop sentinel.
func IsSelf(n *Node) bool { return n == selfNode }

type pair struct {
	pos   byte
	quant byte
}

// Build compiles a grammar (spec-string -> terminal POS) into root entry
// nodes. Each spec is compiled independently and its entry nodes are
// appended to the shared root; specs with an identical POS+quantifier
// prefix are not structurally merged into one subtree (a node-count
// optimization the DP parser does not require — see DESIGN.md), but every
// legal POS sequence any spec admits is still reachable from root.
func Build(grammar map[string]model.POS) ([]*Node, error) {
	var root []*Node
	for spec, terminal := range grammar {
		pairs, err := parseSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("trie: invalid spec %q: %w", spec, err)
		}
		entries, _ := buildFrom(pairs, 0, terminal)
		root = append(root, entries...)
	}
	return root, nil
}

// parseSpec parses a grammar spec string into (code, quantifier) pairs.
// Each POS letter must be followed by exactly one quantifier in {0,1,*,+}.
func parseSpec(spec string) ([]pair, error) {
	if len(spec)%2 != 0 {
		return nil, fmt.Errorf("odd length %d", len(spec))
	}
	pairs := make([]pair, 0, len(spec)/2)
	for i := 0; i < len(spec); i += 2 {
		code := spec[i]
		quant := spec[i+1]
		if _, ok := model.CodeToPOS(code); !ok {
			return nil, fmt.Errorf("unknown POS code %q at offset %d", code, i)
		}
		switch quant {
		case '0', '1', '*', '+':
		default:
			return nil, fmt.Errorf("unknown quantifier %q at offset %d", quant, i+1)
		}
		pairs = append(pairs, pair{pos: code, quant: quant})
	}
	return pairs, nil
}

// buildFrom recursively compiles pairs[idx:] into entry nodes, propagating
// "endsHere" — whether the position just before consuming pairs[idx] is
// itself already a valid completion point, because every pair from idx
// onward is optional (quantifier 0 or *).
//
// Quantifier expansion (spec §3):
//
//	1  -> required child
//	+  -> required child with a self-loop
//	0  -> skippable child (also exposes the remainder's own frontier)
//	*  -> skippable child with a self-loop (ditto)
func buildFrom(pairs []pair, idx int, terminal model.POS) (frontier []*Node, endsHere bool) {
	if idx == len(pairs) {
		return nil, true
	}

	p := pairs[idx]
	pos, _ := model.CodeToPOS(p.pos)
	restFrontier, restEnds := buildFrom(pairs, idx+1, terminal)

	node := &Node{Pos: pos}
	if restEnds {
		node.HasEnding = true
		node.Ending = terminal
	}

	switch p.quant {
	case '1':
		node.Next = restFrontier
		return []*Node{node}, false
	case '+':
		node.Next = append([]*Node{selfNode}, restFrontier...)
		return []*Node{node}, false
	case '0':
		node.Next = restFrontier
		return append([]*Node{node}, restFrontier...), restEnds
	case '*':
		node.Next = append([]*Node{selfNode}, restFrontier...)
		return append([]*Node{node}, restFrontier...), restEnds
	}
	// parseSpec already rejected any other quantifier byte.
	panic("unreachable quantifier")
}

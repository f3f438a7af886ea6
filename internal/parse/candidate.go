package parse

import "github.com/MyounghoonKim/hantok/internal/model"

// step is one link in a candidate parse's persistent chain: the morpheme
// token just accepted, and a pointer to the chain it extends. Candidates
// sharing a common prefix share the same steps instead of each copying a
// growing token slice, so the beam can fork and prune cheaply.
//
// wordStart marks a step that began a new word: either the chain's very
// first step, or a step reached by restarting from the trie root after a
// prior step ended a complete grammar path (spec §4.4's "frontier = curTrie
// ∪ root" extension rule). words() counts these to give the scoring
// profile's WordsWeight term the same meaning spec §4.4 gives it ("number
// of restarts from root plus one"), not a plain token count.
type step struct {
	tok       model.Token
	wordStart bool
	parent    *step
}

// tokens materializes the chain from root to this step, in source order.
func (s *step) tokens() []model.Token {
	if s == nil {
		return nil
	}
	n := 0
	for c := s; c != nil; c = c.parent {
		n++
	}
	out := make([]model.Token, n)
	i := n - 1
	for c := s; c != nil; c = c.parent {
		out[i] = c.tok
		i--
	}
	return out
}

// unknownCount walks the chain counting tokens marked Unknown.
func (s *step) unknownCount() int {
	n := 0
	for c := s; c != nil; c = c.parent {
		if c.tok.Unknown {
			n++
		}
	}
	return n
}

// distinctPos walks the chain counting distinct POS values used.
func (s *step) distinctPos() int {
	seen := make(map[model.POS]struct{})
	for c := s; c != nil; c = c.parent {
		seen[c.tok.Pos] = struct{}{}
	}
	return len(seen)
}

// words walks the chain counting word-starts (spec §4.4's "words" counter).
func (s *step) words() int {
	n := 0
	for c := s; c != nil; c = c.parent {
		if c.wordStart {
			n++
		}
	}
	return n
}

// Package parse implements the chunk parser: a beam-search dynamic
// program that walks the POS trie (internal/trie) over one same-script
// chunk (internal/chunk) and returns the best-scoring morpheme sequence,
// consulting a dictionary (internal/dict) for membership and frequency
// (spec §4.4). Grounded on sego's Viterbi-style jumper array, generalized
// from a flat word dictionary to a POS-trie-constrained grammar and
// widened from "keep only the best" to a pruned beam of the top
// candidates per position, since the trie's self-loops and branch points
// make greedy single-best selection prone to dead ends.
package parse

import (
	"sort"

	"github.com/MyounghoonKim/hantok/internal/dict"
	"github.com/MyounghoonKim/hantok/internal/model"
	"github.com/MyounghoonKim/hantok/internal/trie"
)

const (
	// topNPerState bounds how many candidate chains survive at each
	// position, pruning the beam so branching trie states don't blow up
	// combinatorially over a long chunk.
	topNPerState = 5

	// maxTraceBack bounds the longest single morpheme the parser will try
	// at any position, mirroring a dictionary's maximum entry length
	// (c.f. sego's Dictionary.maxTokenLength) so the inner loop over
	// candidate lengths stays O(1) rather than O(chunk length).
	maxTraceBack = 8
)

// dictionaryPOS lists every POS a dictionary table may hold entries under
// (the grammar alphabet of §3, plus ProperNoun). wholeChunkHit ranges over
// this set rather than just Noun/ProperNoun, per spec §4.4's "under any
// POS" fast-path rule; expandFrom looks up only each frontier node's POS.
// ProperNoun is listed before Noun so a word seeded under both resolves to
// the more specific tag, matching classifyNoun's own preference.
var dictionaryPOS = []model.POS{
	model.ProperNoun, model.Noun, model.Verb, model.Adjective, model.Adverb,
	model.Determiner, model.Exclamation, model.Conjunction, model.Josa,
	model.AdverbialJosa, model.Eomi, model.PreEomi, model.NounPrefix,
	model.VerbPrefix, model.Suffix,
}

type beamState struct {
	node  *trie.Node // nil means "not yet started a morpheme spec"
	chain *step
	sc    float64
}

// Parse finds the best-scoring morpheme decomposition of chunkText (the
// runes of a single Korean-class chunk from internal/chunk), reporting
// token offsets relative to baseOffset. If no complete parse is found the
// chunk is unparseable and returns a single Unknown Noun token spanning
// it, per spec §7 (not an error).
func Parse(chunkText []rune, baseOffset int, root []*trie.Node, dictionary dict.Provider, profile *model.Profile) []model.Token {
	if len(chunkText) == 0 {
		return nil
	}
	if profile == nil {
		profile = model.DefaultProfile
	}

	if tok, ok := wholeChunkHit(chunkText, baseOffset, dictionary); ok {
		return []model.Token{tok}
	}

	freqOf := func(t model.Token) int { return dictionary.Frequency(t.Pos, t.Text) }

	n := len(chunkText)
	states := make([][]beamState, n+1)
	states[0] = []beamState{{node: nil, chain: nil, sc: 0}}

	for pos := 0; pos < n; pos++ {
		for _, st := range states[pos] {
			switch {
			case st.node == nil:
				// Very first morpheme of the chunk: one word-start, from root.
				expandFrom(chunkText, pos, baseOffset, st, root, true, dictionary, freqOf, profile, states)
			case st.node.HasEnding:
				// Spec §4.4: the candidate may either continue within its
				// current word (frontier = st.node.Next, no restart) or end
				// that word and restart a new one from the trie root.
				expandFrom(chunkText, pos, baseOffset, st, st.node.Next, false, dictionary, freqOf, profile, states)
				expandFrom(chunkText, pos, baseOffset, st, root, true, dictionary, freqOf, profile, states)
			default:
				expandFrom(chunkText, pos, baseOffset, st, st.node.Next, false, dictionary, freqOf, profile, states)
			}
		}
		for next := pos + 1; next <= n; next++ {
			states[next] = pruneBeam(states[next])
		}
	}

	completed := states[n]
	var best *beamState
	for i := range completed {
		st := &completed[i]
		if st.node == nil || !st.node.HasEnding {
			continue
		}
		if best == nil || better(*st, *best) {
			best = st
		}
	}
	if best == nil {
		return []model.Token{unknownToken(chunkText, baseOffset)}
	}
	return best.chain.tokens()
}

// expandFrom tries every morpheme length from 1 to maxTraceBack starting at
// pos, following frontier (the trie successors reachable from st, resolving
// the self-loop sentinel to st.node itself). A frontier node is accepted if
// its POS is Noun (Noun is always a candidate, per spec §4.4, since unknown
// substrings still need a place to land) or the dictionary recognizes the
// substring under that POS. wordStart tags every resulting step as either
// starting a new word (root frontier) or continuing the current one, so
// score's "words" term can count restarts rather than tokens.
func expandFrom(chunkText []rune, pos, baseOffset int, st beamState, frontier []*trie.Node, wordStart bool, dictionary dict.Provider, freqOf func(model.Token) int, profile *model.Profile, states [][]beamState) {
	n := len(chunkText)
	maxLen := maxTraceBack
	if n-pos < maxLen {
		maxLen = n - pos
	}

	for length := 1; length <= maxLen; length++ {
		word := string(chunkText[pos : pos+length])
		for _, cand := range frontier {
			node := cand
			if trie.IsSelf(node) {
				node = st.node
			}
			if node == nil {
				continue
			}

			inDict := dictionary.Contains(node.Pos, word)
			if node.Pos != model.Noun && !inDict {
				continue
			}

			tokPos, unknown := classifyNoun(node.Pos, word, inDict, dictionary)
			tok := model.Token{Text: word, Pos: tokPos, Offset: baseOffset + pos, Length: length, Unknown: unknown}
			chain := &step{tok: tok, wordStart: wordStart, parent: st.chain}
			states[pos+length] = append(states[pos+length], beamState{
				node:  node,
				chain: chain,
				sc:    score(chain, freqOf, profile),
			})
		}
	}
}

// classifyNoun implements spec §4.4's Noun/ProperNoun resolution: a
// dictionary-attested word flagged as a proper noun is relabeled
// ProperNoun; an unattested word is checked against the name, name-variant
// and Korean-number predicates to decide whether it is a recognized but
// unlisted word (Noun for a number, ProperNoun for a name) or genuinely
// unknown (ProperNoun, unknown=true — the source's own branch, preserved
// as specified; see DESIGN.md's Open Questions).
func classifyNoun(nodePos model.POS, word string, inDict bool, dictionary dict.Provider) (model.POS, bool) {
	if nodePos != model.Noun {
		return nodePos, false
	}
	if inDict {
		if dictionary.IsProperNoun(word) {
			return model.ProperNoun, false
		}
		return model.Noun, false
	}

	isName := dictionary.IsName(word)
	isNameVar := dictionary.IsKoreanNameVariation(word)
	isNum := dictionary.IsKoreanNumber(word)
	unknown := !(isName || isNameVar || isNum)
	if unknown || isName || isNameVar {
		return model.ProperNoun, unknown
	}
	return model.Noun, false
}

// pruneBeam keeps only the topNPerState best-scoring states in place,
// breaking ties by the POS of each state's most recent token (see better)
// and otherwise keeping insertion order, since the sort is stable.
func pruneBeam(states []beamState) []beamState {
	if len(states) <= topNPerState {
		return states
	}
	sort.SliceStable(states, func(i, j int) bool { return better(states[i], states[j]) })
	return states[:topNPerState]
}

// better reports whether a should be preferred over b: higher score wins;
// ties are broken by the lower ordinal POS of the most recent token, a
// stable, arbitrary but deterministic tie-breaker (spec §4.4).
func better(a, b beamState) bool {
	if a.sc != b.sc {
		return a.sc > b.sc
	}
	var aPos, bPos model.POS
	if a.chain != nil {
		aPos = a.chain.tok.Pos
	}
	if b.chain != nil {
		bPos = b.chain.tok.Pos
	}
	return aPos < bPos
}

// scannerSource is the optional capability a Provider may implement to
// give the whole-chunk fast path an Aho-Corasick automaton instead of a
// single map lookup; see dict.memProvider.ScannerFor.
type scannerSource interface {
	ScannerFor(pos model.POS) *dict.Scanner
}

// wholeChunkHit is the fast path for the common case where the entire
// chunk is itself one dictionary entry under any POS, skipping full trie
// expansion (spec §4.4 "Fast path") — the only way an entry longer than
// maxTraceBack runes can ever be recognized, since the general DP never
// tries a morpheme longer than that. When the Provider exposes a Scanner,
// the check is one automaton scan instead of a map lookup per POS; either
// way the outcome is the same.
func wholeChunkHit(chunkText []rune, baseOffset int, dictionary dict.Provider) (model.Token, bool) {
	word := string(chunkText)

	if src, ok := dictionary.(scannerSource); ok {
		for _, pos := range dictionaryPOS {
			for _, m := range src.ScannerFor(pos).Find(word) {
				if m.Start == 0 && m.End == len(chunkText) {
					return model.Token{Text: word, Pos: pos, Offset: baseOffset, Length: len(chunkText)}, true
				}
			}
		}
		return model.Token{}, false
	}

	for _, pos := range dictionaryPOS {
		if dictionary.Contains(pos, word) {
			return model.Token{Text: word, Pos: pos, Offset: baseOffset, Length: len(chunkText)}, true
		}
	}
	return model.Token{}, false
}

func unknownToken(chunkText []rune, baseOffset int) model.Token {
	return model.Token{
		Text:    string(chunkText),
		Pos:     model.Noun,
		Offset:  baseOffset,
		Length:  len(chunkText),
		Unknown: true,
	}
}

package dict

import (
	"sync"

	"github.com/coregx/ahocorasick"
)

// Match is a dictionary hit found by Scanner.Find, expressed as a
// half-open rune range [Start, End) into the scanned text.
type Match struct {
	Start int
	End   int
	Word  string
}

// Scanner finds dictionary words inside a chunk without a rune-by-rune
// substring search, using an Aho-Corasick automaton over the vocabulary.
// The parser's DP loop (internal/parse) uses it as a fast path: chunks
// whose entire span is a single dictionary hit skip full quantifier
// expansion (spec §4.4).
//
// Rebuild is expected to run rarely (dictionary growth via AddWords), Find
// runs once per chunk per parse; the automaton is rebuilt lazily so the
// common case pays no locking cost beyond an RLock.
type Scanner struct {
	mu        sync.RWMutex
	automaton *ahocorasick.Automaton
	patterns  []string
}

// NewScanner builds a Scanner over the given vocabulary. An empty or
// unbuildable vocabulary leaves the Scanner with no automaton; Find then
// simply reports no matches rather than erroring, mirroring how an empty
// dictionary reports no Contains hits.
func NewScanner(words []string) *Scanner {
	s := &Scanner{}
	s.Rebuild(words)
	return s
}

// Rebuild replaces the automaton with one built over words.
func (s *Scanner) Rebuild(words []string) {
	patterns := make([]string, len(words))
	copy(patterns, words)

	automaton, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.automaton = nil
		s.patterns = nil
		return
	}
	s.automaton = automaton
	s.patterns = patterns
}

// Find returns every occurrence of a dictionary word in text, overlapping
// and nested ones included (the automaton's match kind does not filter
// them), with byte offsets converted to rune offsets so callers can index
// alongside chunker/model.Token offsets.
func (s *Scanner) Find(text string) []Match {
	s.mu.RLock()
	automaton := s.automaton
	patterns := s.patterns
	s.mu.RUnlock()

	if automaton == nil {
		return nil
	}

	byteToRune := runeOffsets(text)

	var matches []Match
	for _, m := range automaton.FindAllOverlapping([]byte(text)) {
		if m.PatternID >= len(patterns) {
			continue
		}
		matches = append(matches, Match{
			Start: byteToRune[m.Start],
			End:   byteToRune[m.End],
			Word:  patterns[m.PatternID],
		})
	}
	return matches
}

// runeOffsets maps each byte offset in text (0..len(text), inclusive) to
// the rune index it falls on, so Aho-Corasick's byte-based match offsets
// can be reported in the rune-offset coordinate system the rest of the
// pipeline uses.
func runeOffsets(text string) []int {
	offsets := make([]int, len(text)+1)
	runeIdx := 0
	for byteIdx := range text {
		offsets[byteIdx] = runeIdx
		runeIdx++
	}
	offsets[len(text)] = runeIdx
	return offsets
}

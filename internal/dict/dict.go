// Package dict defines the dictionary contract the parser consults while
// scoring candidate parses (spec §4.3): plain membership, proper-noun and
// name recognition, Korean numeral recognition, and mutation. The default
// implementation is a concurrent-safe in-memory set, seeded at
// construction and safe to extend at runtime.
package dict

import (
	"sync"

	"github.com/MyounghoonKim/hantok/internal/model"
)

// Provider is the read/write contract the parser and callers use to query
// and extend the word lists behind tokenization. Implementations must be
// safe for concurrent use (spec §5): reads may run in parallel with each
// other and with AddWords.
type Provider interface {
	// Contains reports whether word is a known entry under pos.
	Contains(pos model.POS, word string) bool
	// Frequency returns word's corpus frequency under pos, or 0 if unknown.
	// Higher frequency nudges the parser's scoring toward that parse.
	Frequency(pos model.POS, word string) int
	// IsProperNoun reports whether word is a known proper noun.
	IsProperNoun(word string) bool
	// IsName reports whether word is a known Korean given/full name.
	IsName(word string) bool
	// IsKoreanNameVariation reports whether word is a name spelled with a
	// common phonetic variant (e.g. an alternate romanization-derived
	// spelling folded back into Hangul).
	IsKoreanNameVariation(word string) bool
	// IsKoreanNumber reports whether word is a Sino-Korean or native
	// Korean numeral word (spec glossary).
	IsKoreanNumber(word string) bool
	// AddWords extends the dictionary at runtime under pos.
	AddWords(pos model.POS, words ...string)
}

// memProvider is the default in-memory Provider. Every table is guarded by
// its own view under one RWMutex; reads take RLock, AddWords takes Lock.
type memProvider struct {
	mu sync.RWMutex

	words map[model.POS]map[string]int // pos -> word -> frequency

	properNouns    map[string]struct{}
	names          map[string]struct{}
	nameVariations map[string]struct{}
	koreanNumbers  map[string]struct{}

	scanners map[model.POS]*Scanner
	dirty    map[model.POS]bool
}

// NewProvider builds a Provider seeded from initial word lists. seed maps a
// POS to its known words; every word starts with frequency 1. Pass nil for
// an empty dictionary.
func NewProvider(seed map[model.POS][]string) Provider {
	p := &memProvider{
		words:          make(map[model.POS]map[string]int),
		properNouns:    make(map[string]struct{}),
		names:          make(map[string]struct{}),
		nameVariations: make(map[string]struct{}),
		koreanNumbers:  make(map[string]struct{}),
	}
	for pos, words := range seed {
		for _, w := range words {
			p.addWordLocked(pos, w)
		}
	}
	seedProperNouns(p)
	seedNames(p)
	seedKoreanNumbers(p)
	return p
}

func (p *memProvider) addWordLocked(pos model.POS, word string) {
	table, ok := p.words[pos]
	if !ok {
		table = make(map[string]int)
		p.words[pos] = table
	}
	table[word]++
}

func (p *memProvider) Contains(pos model.POS, word string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	table, ok := p.words[pos]
	if !ok {
		return false
	}
	_, ok = table[word]
	return ok
}

func (p *memProvider) Frequency(pos model.POS, word string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	table, ok := p.words[pos]
	if !ok {
		return 0
	}
	return table[word]
}

func (p *memProvider) IsProperNoun(word string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.properNouns[word]
	return ok
}

func (p *memProvider) IsName(word string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.names[word]
	return ok
}

func (p *memProvider) IsKoreanNameVariation(word string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.nameVariations[word]
	return ok
}

func (p *memProvider) IsKoreanNumber(word string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.koreanNumbers[word]
	return ok
}

func (p *memProvider) AddWords(pos model.POS, words ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, w := range words {
		p.addWordLocked(pos, w)
		if pos == model.ProperNoun {
			p.properNouns[w] = struct{}{}
		}
	}
	if p.dirty == nil {
		p.dirty = make(map[model.POS]bool)
	}
	p.dirty[pos] = true
}

// ScannerFor returns an Aho-Corasick Scanner over pos's current
// vocabulary, rebuilding it only if words were added under pos since the
// last call (internal/parse's whole-chunk fast path calls this for every
// dictionary POS on every chunk, so an unconditional rebuild would defeat
// its own point).
// ScannerFor is an optional capability: internal/parse type-asserts for
// it rather than requiring it on Provider, so a caller's own Provider
// implementation isn't forced to maintain an automaton.
func (p *memProvider) ScannerFor(pos model.POS) *Scanner {
	p.mu.RLock()
	s, ok := p.scanners[pos]
	stale := p.dirty[pos]
	p.mu.RUnlock()
	if ok && !stale {
		return s
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	table := p.words[pos]
	words := make([]string, 0, len(table))
	for w := range table {
		words = append(words, w)
	}
	s = NewScanner(words)
	if p.scanners == nil {
		p.scanners = make(map[model.POS]*Scanner)
	}
	p.scanners[pos] = s
	if p.dirty == nil {
		p.dirty = make(map[model.POS]bool)
	}
	p.dirty[pos] = false
	return s
}

// seedProperNouns, seedNames and seedKoreanNumbers populate the small
// built-in tables used until a caller supplies richer word lists via
// AddWords. They intentionally stay short: the parser degrades to
// unknown-noun handling (spec §7) rather than failing outright when a word
// is absent, so an exhaustive built-in list is not required for
// correctness.
func seedProperNouns(p *memProvider) {
	for _, w := range []string{"서울", "부산", "한국", "대한민국", "제주"} {
		p.properNouns[w] = struct{}{}
		p.addWordLocked(model.ProperNoun, w)
	}
}

func seedNames(p *memProvider) {
	for _, w := range []string{"김철수", "이영희", "박민수"} {
		p.names[w] = struct{}{}
	}
	for _, w := range []string{"길동", "영희"} {
		p.nameVariations[w] = struct{}{}
	}
}

func seedKoreanNumbers(p *memProvider) {
	for _, w := range []string{
		"영", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구", "십", "백", "천", "만", "억",
		"하나", "둘", "셋", "넷", "다섯", "여섯", "일곱", "여덟", "아홉", "열",
	} {
		p.koreanNumbers[w] = struct{}{}
	}
}

// Package hantok tokenizes Korean text into part-of-speech-tagged
// morphemes. It chunks input by script, walks a POS-grammar trie with a
// dynamic program constrained by a dictionary, and returns the
// best-scoring decomposition. Spans the dictionary cannot explain come
// back as tokens flagged Unknown rather than as an error.
//
// The zero-configuration entry point is Tokenize, backed by a default
// Tokenizer built from the built-in grammar and an empty dictionary. Call
// New to supply a custom grammar or a pre-seeded dictionary.
package hantok

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/MyounghoonKim/hantok/internal/chunk"
	"github.com/MyounghoonKim/hantok/internal/dict"
	"github.com/MyounghoonKim/hantok/internal/model"
	"github.com/MyounghoonKim/hantok/internal/normalize"
	"github.com/MyounghoonKim/hantok/internal/parse"
	"github.com/MyounghoonKim/hantok/internal/trie"
)

// Re-exported so callers don't need to import internal/model.
type (
	// Token is a single labeled morpheme or chunk segment.
	Token = model.Token
	// POS is the closed part-of-speech enumeration.
	POS = model.POS
	// Profile carries the scoring weights the chunk parser uses to pick
	// among candidate parses. A nil *Profile means DefaultProfile.
	Profile = model.Profile
)

// DefaultProfile is the scoring weight set used when no Profile is given.
var DefaultProfile = model.DefaultProfile

// Dictionary is the mutable word-list contract behind tokenization. See
// internal/dict.Provider for the full method set.
type Dictionary = dict.Provider

// NewDictionary builds a Dictionary seeded from initial word lists. Pass
// nil for an empty dictionary.
func NewDictionary(seed map[POS][]string) Dictionary { return dict.NewProvider(seed) }

// NewCachedDictionary wraps d with an LRU cache of the given capacity in
// front of Contains, the hottest call on the parser's DP hot path. Useful
// when d is backed by a large or slow-to-query word list; the default
// dictionary from NewDictionary is already a plain in-memory map and
// rarely benefits from this.
func NewCachedDictionary(d Dictionary, capacity int) Dictionary {
	return dict.NewCached(d, capacity)
}

// Tokenizer holds a compiled POS grammar and a dictionary. It is safe for
// concurrent use: the grammar is immutable after New returns, and the
// dictionary implementation is responsible for its own concurrency
// safety (the default one guards every table with a sync.RWMutex).
type Tokenizer struct {
	root       []*trie.Node
	dictionary Dictionary
	profile    *Profile
}

// New compiles grammar into a Tokenizer. A nil grammar uses the built-in
// default (spec's grammar table). A nil dictionary starts empty. A nil
// profile uses DefaultProfile. New returns a descriptive error if grammar
// contains an invalid spec string — the only way construction can fail.
func New(grammar map[string]POS, dictionary Dictionary, profile *Profile) (*Tokenizer, error) {
	if grammar == nil {
		grammar = trie.DefaultGrammar
	}
	root, err := trie.Build(grammar)
	if err != nil {
		return nil, fmt.Errorf("hantok: %w", err)
	}
	if dictionary == nil {
		dictionary = dict.NewProvider(nil)
	}
	return &Tokenizer{root: root, dictionary: dictionary, profile: profile}, nil
}

// AddWords extends the tokenizer's dictionary at runtime.
func (t *Tokenizer) AddWords(pos POS, words ...string) {
	t.dictionary.AddWords(pos, words...)
}

// Tokenize splits text into POS-tagged tokens. It never returns an error:
// an empty input yields an empty slice, and a span with no dictionary
// reading is covered by Unknown-flagged tokens (ProperNoun, or Noun once
// CollapseNouns merges single characters) rather than failing (spec §7).
func (t *Tokenizer) Tokenize(text string) []Token {
	text = normalize.Normalize(text)
	if text == "" {
		return nil
	}

	chunks := chunk.Chunk(text)
	out := make([]Token, 0, len(chunks))
	for _, c := range chunks {
		if c.Pos != model.Korean {
			out = append(out, c)
			continue
		}
		out = append(out, parse.Parse([]rune(c.Text), c.Offset, t.root, t.dictionary, t.profile)...)
	}
	return parse.CollapseNouns(out)
}

var (
	defaultOnce sync.Once
	defaultTok  *Tokenizer
)

// defaultTokenizer publishes the package-level Tokenizer exactly once
// (spec §5): DefaultGrammar is a compile-time constant, so a build
// failure here means a programmer broke the built-in grammar table, not
// a runtime condition callers should have to handle.
func defaultTokenizer() *Tokenizer {
	defaultOnce.Do(func() {
		t, err := New(nil, nil, nil)
		if err != nil {
			panic(err)
		}
		defaultTok = t
	})
	return defaultTok
}

// Tokenize splits text using the package's default Tokenizer.
func Tokenize(text string) []Token {
	return defaultTokenizer().Tokenize(text)
}

// AddWords extends the default Tokenizer's dictionary at runtime.
func AddWords(pos POS, words ...string) {
	defaultTokenizer().AddWords(pos, words...)
}

// TokenizeAll tokenizes every text in texts, using the default Tokenizer,
// dispatched in parallel bounded by GOMAXPROCS. ctx controls cancellation;
// TokenizeAll returns ctx.Err() if ctx is canceled before all texts finish.
func TokenizeAll(ctx context.Context, texts []string) ([][]Token, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}

	out := make([][]Token, len(texts))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, text := range texts {
		if ctx.Err() != nil {
			break
		}
		i, text := i, text
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = Tokenize(text)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package parse

import (
	"testing"

	"github.com/MyounghoonKim/hantok/internal/dict"
	"github.com/MyounghoonKim/hantok/internal/model"
	"github.com/MyounghoonKim/hantok/internal/trie"
)

func mustTrie(t *testing.T) []*trie.Node {
	t.Helper()
	root, err := trie.Build(trie.DefaultGrammar)
	if err != nil {
		t.Fatalf("trie.Build: %v", err)
	}
	return root
}

func TestParse_KnownNoun(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(map[model.POS][]string{
		model.Noun: {"사과"},
	})

	toks := Parse([]rune("사과"), 0, root, d, nil)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %+v", len(toks), toks)
	}
	if toks[0].Text != "사과" || toks[0].Pos != model.Noun || toks[0].Unknown {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestParse_NounPlusJosa(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(map[model.POS][]string{
		model.Noun: {"학교"},
		model.Josa: {"에서"},
	})

	toks := Parse([]rune("학교에서"), 0, root, d, nil)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if toks[0].Text != "학교" || toks[0].Pos != model.Noun {
		t.Fatalf("toks[0] = %+v", toks[0])
	}
	if toks[1].Text != "에서" || toks[1].Pos != model.Josa {
		t.Fatalf("toks[1] = %+v", toks[1])
	}
}

// TestParse_UnknownWordBecomesUnknownProperNoun covers a chunk with no
// dictionary attestation at all, short of a name or Korean numeral. Per
// spec §4.4's Noun-node branch, a totally unrecognized word is tagged
// ProperNoun with unknown=true (preserved as specified; see DESIGN.md's
// Open Questions) rather than falling through to the DP's own "no
// candidate reached the end" fallback — that fallback is unreachable for
// any chunk within maxTraceBack runes, since the Noun frontier always
// accepts the whole span as one unknown morpheme.
func TestParse_UnknownWordBecomesUnknownProperNoun(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(nil)

	toks := Parse([]rune("낯선말"), 0, root, d, nil)
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1: %+v", len(toks), toks)
	}
	if !toks[0].Unknown || toks[0].Pos != model.ProperNoun || toks[0].Text != "낯선말" {
		t.Fatalf("got %+v", toks[0])
	}
}

// TestParse_RootRestartAcrossTwoNouns exercises spec §8's literal
// "아버지가방에들어가신다" scenario: parsing a second Noun right after a
// first one is only reachable by ending the first word (the Noun grammar's
// own ending is optional-tail-only) and restarting a new word from the
// trie root, since the Noun spec has no path back into itself.
func TestParse_RootRestartAcrossTwoNouns(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(map[model.POS][]string{
		model.Noun: {"아버지", "가방"},
		model.Josa: {"에"},
		model.Verb: {"들어가신다"},
	})

	toks := Parse([]rune("아버지가방에들어가신다"), 0, root, d, nil)
	want := []struct {
		text string
		pos  model.POS
	}{
		{"아버지", model.Noun},
		{"가방", model.Noun},
		{"에", model.Josa},
		{"들어가신다", model.Verb},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Text != w.text || toks[i].Pos != w.pos {
			t.Fatalf("toks[%d] = %+v, want {%q %v}", i, toks[i], w.text, w.pos)
		}
	}
}

func TestParse_LexicalPriority(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(map[model.POS][]string{
		model.Noun:      {"면도"},
		model.Adjective: {"괜찮고"},
	})

	toks := Parse([]rune("면도"), 0, root, d, nil)
	if len(toks) != 1 || toks[0].Text != "면도" || toks[0].Pos != model.Noun {
		t.Fatalf("got %+v", toks)
	}

	toks = Parse([]rune("괜찮고"), 0, root, d, nil)
	if len(toks) != 1 || toks[0].Text != "괜찮고" || toks[0].Pos != model.Adjective {
		t.Fatalf("got %+v", toks)
	}
}

func TestParse_UnlistedKoreanNumberIsKnownNoun(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(nil)

	toks := Parse([]rune("삼"), 0, root, d, nil)
	if len(toks) != 1 || toks[0].Pos != model.Noun || toks[0].Unknown {
		t.Fatalf("got %+v, want a known (non-unknown) Noun for a Korean numeral", toks)
	}
}

func TestParse_UnlistedNameBecomesKnownProperNoun(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(nil)

	toks := Parse([]rune("김철수"), 0, root, d, nil)
	if len(toks) != 1 || toks[0].Pos != model.ProperNoun || toks[0].Unknown {
		t.Fatalf("got %+v, want a known (non-unknown) ProperNoun for a seeded name", toks)
	}
}

func TestParse_AddWordsMakesWordRecognized(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(map[model.POS][]string{model.Josa: {"도"}})

	before := Parse([]rune("포만감도"), 0, root, d, nil)
	for _, tok := range before {
		if tok.Text == "포만감" && !tok.Unknown {
			t.Fatalf("did not expect a known 포만감 token before AddWords: %+v", before)
		}
	}

	d.AddWords(model.Noun, "포만감")
	after := Parse([]rune("포만감도"), 0, root, d, nil)

	var sawKnownWord bool
	for _, tok := range after {
		if tok.Text == "포만감" && tok.Pos == model.Noun && !tok.Unknown {
			sawKnownWord = true
		}
	}
	if !sawKnownWord {
		t.Fatalf("expected a known Noun token for 포만감 after AddWords, got %+v", after)
	}
}

func TestWholeChunkHit_AnyPOSBeyondMaxTraceBack(t *testing.T) {
	root := mustTrie(t)
	longWord := "가나다라마바사아자" // 9 runes, exceeds maxTraceBack (8)
	d := dict.NewProvider(map[model.POS][]string{model.Adverb: {longWord}})

	toks := Parse([]rune(longWord), 0, root, d, nil)
	if len(toks) != 1 || toks[0].Text != longWord || toks[0].Pos != model.Adverb {
		t.Fatalf("got %+v, want a single Adverb token via the whole-chunk fast path", toks)
	}
}

func TestParse_OffsetsAreAbsolute(t *testing.T) {
	root := mustTrie(t)
	d := dict.NewProvider(map[model.POS][]string{model.Noun: {"강"}})

	toks := Parse([]rune("강"), 5, root, d, nil)
	if len(toks) != 1 || toks[0].Offset != 5 {
		t.Fatalf("got %+v, want offset 5", toks)
	}
}

func TestCollapseNouns_MergesAdjacentNouns(t *testing.T) {
	in := []model.Token{
		{Text: "가", Pos: model.Noun, Offset: 0, Length: 1},
		{Text: "나", Pos: model.Noun, Offset: 1, Length: 1},
		{Text: "다", Pos: model.Josa, Offset: 2, Length: 1},
	}
	out := CollapseNouns(in)
	if len(out) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(out), out)
	}
	if out[0].Text != "가나" || out[0].Pos != model.Noun || out[0].Length != 2 || !out[0].Unknown {
		t.Fatalf("out[0] = %+v", out[0])
	}
	if out[1].Text != "다" || out[1].Pos != model.Josa {
		t.Fatalf("out[1] = %+v", out[1])
	}
}

func TestCollapseNouns_MergesMixedNounAndProperNoun(t *testing.T) {
	in := []model.Token{
		{Text: "가", Pos: model.Noun, Offset: 0, Length: 1},
		{Text: "나", Pos: model.ProperNoun, Offset: 1, Length: 1},
		{Text: "다", Pos: model.Noun, Offset: 2, Length: 1},
	}
	out := CollapseNouns(in)
	if len(out) != 1 {
		t.Fatalf("got %d tokens, want 1 merged run: %+v", len(out), out)
	}
	if out[0].Text != "가나다" || out[0].Pos != model.Noun || !out[0].Unknown || out[0].Length != 3 {
		t.Fatalf("out[0] = %+v", out[0])
	}
}

func TestCollapseNouns_LeavesGapsAndMultiCharTokensAlone(t *testing.T) {
	in := []model.Token{
		{Text: "가", Pos: model.Noun, Offset: 0, Length: 1},
		{Text: "다", Pos: model.Noun, Offset: 5, Length: 1},
	}
	out := CollapseNouns(in)
	if len(out) != 2 {
		t.Fatalf("got %d tokens, want 2 (gap blocks merge): %+v", len(out), out)
	}

	multiChar := []model.Token{
		{Text: "아버지", Pos: model.Noun, Offset: 0, Length: 3},
		{Text: "가방", Pos: model.Noun, Offset: 3, Length: 2},
	}
	out = CollapseNouns(multiChar)
	if len(out) != 2 {
		t.Fatalf("got %d tokens, want 2 (already-complete multi-char nouns untouched): %+v", len(out), out)
	}
}

func TestCollapseNouns_IsolatedSingleCharNounUnchanged(t *testing.T) {
	in := []model.Token{
		{Text: "가", Pos: model.Noun, Offset: 0, Length: 1, Unknown: true},
		{Text: "나", Pos: model.Josa, Offset: 1, Length: 1},
	}
	out := CollapseNouns(in)
	if len(out) != 2 || out[0].Text != "가" || out[0].Pos != model.Noun {
		t.Fatalf("got %+v, want tokens unchanged", out)
	}
}

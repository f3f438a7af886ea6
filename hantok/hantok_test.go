package hantok

import (
	"context"
	"testing"

	"github.com/MyounghoonKim/hantok/internal/model"
)

func TestTokenize_EmptyInput(t *testing.T) {
	if got := Tokenize(""); got != nil {
		t.Fatalf("Tokenize(\"\") = %+v, want nil", got)
	}
}

func TestTokenizer_KnownWord(t *testing.T) {
	d := NewDictionary(map[POS][]string{model.Noun: {"바다"}})
	tok, err := New(nil, d, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	toks := tok.Tokenize("바다")
	if len(toks) != 1 || toks[0].Text != "바다" || toks[0].Pos != model.Noun {
		t.Fatalf("got %+v", toks)
	}
}

func TestNew_InvalidGrammarSpec(t *testing.T) {
	_, err := New(map[string]POS{"Z1": model.Noun}, nil, nil)
	if err == nil {
		t.Fatal("New with invalid grammar spec: want error, got nil")
	}
}

func TestRender_UnknownMarkerAndSpaceCollapse(t *testing.T) {
	toks := []Token{
		{Text: "안녕", Pos: model.Noun, Length: 2},
		{Pos: model.Space, Length: 1},
		{Text: "낯섦", Pos: model.Noun, Length: 3, Unknown: true},
	}
	got := Render(toks)
	want := "안녕/Noun 낯섦*/Noun"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestTokenizeAll_MatchesIndividualTokenize(t *testing.T) {
	texts := []string{"바다", "하늘", ""}
	got, err := TokenizeAll(context.Background(), texts)
	if err != nil {
		t.Fatalf("TokenizeAll: %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("got %d results, want %d", len(got), len(texts))
	}
	for i, text := range texts {
		want := Tokenize(text)
		if len(got[i]) != len(want) {
			t.Fatalf("TokenizeAll[%d] = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestNewCachedDictionary_TokenizesThroughCache(t *testing.T) {
	d := NewCachedDictionary(NewDictionary(map[POS][]string{model.Noun: {"바다"}}), 16)
	tok, err := New(nil, d, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	toks := tok.Tokenize("바다")
	if len(toks) != 1 || toks[0].Text != "바다" || toks[0].Pos != model.Noun {
		t.Fatalf("got %+v", toks)
	}

	tok.AddWords(model.Noun, "호수")
	toks = tok.Tokenize("호수")
	if len(toks) != 1 || toks[0].Text != "호수" || toks[0].Pos != model.Noun {
		t.Fatalf("got %+v after AddWords through cached dictionary", toks)
	}
}

func TestTokenizeAll_NilContext(t *testing.T) {
	if _, err := TokenizeAll(nil, []string{"바다"}); err != ErrNilContext {
		t.Fatalf("TokenizeAll(nil, ...) err = %v, want ErrNilContext", err)
	}
}

package hantok

import (
	"regexp"
	"strings"

	"github.com/MyounghoonKim/hantok/internal/model"
)

var collapseSpaces = regexp.MustCompile(`\s{2,}`)

// Render renders tokens in the tokenizer's textual form: each token as
// "text/POS", or "text*/POS" if the token is an unknown-morpheme guess,
// space-joined. A Space token contributes no text of its own — joining it
// as an empty field naturally produces a doubled space around it, which
// Render collapses back to one (spec §6).
func Render(tokens []model.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Pos == model.Space {
			parts = append(parts, "")
			continue
		}
		marker := ""
		if t.Unknown {
			marker = "*"
		}
		parts = append(parts, t.Text+marker+"/"+t.Pos.String())
	}
	return strings.TrimSpace(collapseSpaces.ReplaceAllString(strings.Join(parts, " "), " "))
}

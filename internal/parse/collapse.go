package parse

import "github.com/MyounghoonKim/hantok/internal/model"

// CollapseNouns finds maximal runs of two or more consecutive, offset-
// adjacent, single-character Noun or ProperNoun tokens and fuses each run
// into one token spanning it, with POS Noun and Unknown forced true (spec
// §4.5): a run of single characters the DP could only place one at a time
// is the signature of a compound or name the dictionary never held as one
// entry, so the result is reported as an unknown compound rather than the
// individual characters. Tokens outside such a run, including isolated
// single-character Nouns with no collapsible neighbor, pass through
// unchanged.
func CollapseNouns(tokens []model.Token) []model.Token {
	if len(tokens) == 0 {
		return tokens
	}
	out := make([]model.Token, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		j := i
		for j+1 < len(tokens) &&
			collapsible(tokens[j]) && collapsible(tokens[j+1]) &&
			tokens[j].Offset+tokens[j].Length == tokens[j+1].Offset {
			j++
		}
		if j == i {
			out = append(out, tokens[i])
			i++
			continue
		}
		merged := tokens[i]
		for k := i + 1; k <= j; k++ {
			merged.Text += tokens[k].Text
			merged.Length += tokens[k].Length
		}
		merged.Pos = model.Noun
		merged.Unknown = true
		out = append(out, merged)
		i = j + 1
	}
	return out
}

func collapsible(t model.Token) bool {
	return t.Length == 1 && (t.Pos == model.Noun || t.Pos == model.ProperNoun)
}

package parse

import (
	"math"

	"github.com/MyounghoonKim/hantok/internal/model"
)

// score weighs a candidate chain, complete or partial, per the profile (spec §4.4,
// §9). Higher is better. The terms mirror the profile's field names:
// fewer, longer morphemes and higher dictionary frequency raise the
// score; unknown morphemes, and spreading across many distinct POS
// categories, lower it.
func score(chain *step, freqOf func(model.Token) int, profile *model.Profile) float64 {
	toks := chain.tokens()
	if len(toks) == 0 {
		return 0
	}

	var freqSum float64
	var unknownCoverage int
	unknownPos := make(map[model.POS]struct{})

	for _, t := range toks {
		if t.Unknown {
			unknownCoverage += t.Length
			unknownPos[t.Pos] = struct{}{}
			continue
		}
		freqSum += math.Log1p(float64(freqOf(t)))
	}

	unknownCount := chain.unknownCount()
	distinctPos := chain.distinctPos()

	s := 0.0
	s -= profile.WordsWeight * float64(chain.words())
	s += profile.FreqWeight * freqSum
	s -= profile.UnknownWeight * float64(unknownCount)
	s -= profile.UnknownCoverageWeight * float64(unknownCoverage)
	s -= profile.UnknownPosCountWeight * float64(len(unknownPos))
	s -= profile.PosCountWeight * float64(distinctPos)

	if len(toks) > 0 && isPreferredInitial(toks[0].Pos) {
		s += profile.InitialPosArrWeight
		s += profile.PreferredPosWeight
	}

	return s
}

// isPreferredInitial reports whether pos is a category a chunk is likely
// to legitimately start with (a content word), as opposed to a bound
// morpheme such as a prefix or ending.
func isPreferredInitial(pos model.POS) bool {
	switch pos {
	case model.Noun, model.ProperNoun, model.Verb, model.Adjective, model.Adverb:
		return true
	default:
		return false
	}
}

package trie

import "github.com/MyounghoonKim/hantok/internal/model"

// DefaultGrammar is the built-in morpheme grammar (spec §6): each spec
// string describes a legal chain of (POS, quantifier) pairs, and the value
// is the terminal POS a parse reaching that spec's ending is labeled with.
var DefaultGrammar = map[string]model.POS{
	"D0p*N1s0j0": model.Noun,
	"v*V1r*e0":   model.Verb,
	"v*J1r*e0":   model.Adjective,
	"A1":         model.Adverb,
	"C1":         model.Conjunction,
	"E+":         model.Exclamation,
	"j1":         model.Josa,
}

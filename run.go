package automata

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Accepts simulates consumption of word and reports whether the automaton
// accepts it. The simulation runs over configuration sets so one code path
// covers both DFAs and NFAs: the current set starts as the epsilon-closed
// initial set and each symbol replaces it with the epsilon-closed union of
// destinations. The word is accepted iff the final set intersects the
// accept set; the empty word iff the closed initial set already does.
//
// A symbol outside the alphabet returns ErrUnknownSymbol so callers can
// tell "not in the language" apart from "not a word over this alphabet".
func Accepts(a *Automaton, word []rune) (bool, error) {
	current := a.epsilonClosure(a.initial.Clone())
	for _, sym := range word {
		if !a.HasSymbol(sym) {
			return false, fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
		}
		next := bitset.New(uint(a.NumStates()))
		for s, ok := current.NextSet(0); ok; s, ok = current.NextSet(s + 1) {
			if set := a.dests(State(s), sym); set != nil {
				next.InPlaceUnion(set)
			}
		}
		// An empty set stays empty but the rest of the word still gets
		// its symbols validated.
		current = a.epsilonClosure(next)
	}
	return current.IntersectionCardinality(a.accept) > 0, nil
}

// AcceptsString is Accepts over the runes of word.
func AcceptsString(a *Automaton, word string) (bool, error) {
	return Accepts(a, []rune(word))
}

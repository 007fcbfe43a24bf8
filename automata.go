package automata

import "fmt"

// MakeEmptyLanguage returns a new (deterministic) automaton over the given
// alphabet accepting no words: one initial, non-accepting state and no
// transitions.
func MakeEmptyLanguage(alphabet ...rune) *Automaton {
	a := New(alphabet...)
	s := a.AddState("q0")
	_ = a.SetInitial(s, true)
	return a
}

// MakeEmptyString returns a new (deterministic) automaton over the given
// alphabet accepting only the empty word.
func MakeEmptyString(alphabet ...rune) *Automaton {
	a := New(alphabet...)
	s := a.AddState("q0")
	_ = a.SetInitial(s, true)
	_ = a.SetAccept(s, true)
	return a
}

// FromTable builds an automaton in one shot from explicit state, initial
// and accept lists plus a transition table. Initial/accept entries and
// edge endpoints must name listed states, edge symbols must belong to the
// alphabet (or be Epsilon); violations surface as ErrUnknownState or
// ErrUnknownSymbol.
func FromTable(alphabet []rune, states, initial, accept []string, table []Edge) (*Automaton, error) {
	a := New(alphabet...)
	for _, label := range states {
		a.AddState(label)
	}
	for _, label := range initial {
		s, ok := a.StateOf(label)
		if !ok {
			return nil, unknownLabel(label)
		}
		_ = a.SetInitial(s, true)
	}
	for _, label := range accept {
		s, ok := a.StateOf(label)
		if !ok {
			return nil, unknownLabel(label)
		}
		_ = a.SetAccept(s, true)
	}
	for _, e := range table {
		src, ok := a.StateOf(e.Src)
		if !ok {
			return nil, unknownLabel(e.Src)
		}
		dst, ok := a.StateOf(e.Dst)
		if !ok {
			return nil, unknownLabel(e.Dst)
		}
		if err := a.AddTransition(src, e.Sym, dst); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func unknownLabel(label string) error {
	return fmt.Errorf("%w: %q", ErrUnknownState, label)
}

package automata

import (
	"fmt"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// Trim returns a new automaton keeping only the accessible states and the
// transitions whose endpoints both survive. Initial and accept flags are
// restricted to the surviving states; an empty accept set afterwards is a
// valid outcome (the empty language), not an error.
func Trim(a *Automaton) *Automaton {
	return retain(a, AccessibleStates(a))
}

// CoTrim returns a new automaton keeping only the co-accessible states,
// the reverse-reachability counterpart of Trim.
func CoTrim(a *Automaton) *Automaton {
	return retain(a, CoAccessibleStates(a))
}

// retain rebuilds a restricted to the states in keep, remapping the
// surviving indices (teacher pattern: translation table over the old
// index space). When nothing survives the result degenerates to the
// empty-language automaton over the same alphabet, keeping the state set
// non-empty.
func retain(a *Automaton, keep *bitset.BitSet) *Automaton {
	if keep.None() {
		return MakeEmptyLanguage(a.Alphabet()...)
	}

	out := New(a.Alphabet()...)
	remap := make([]State, a.NumStates())
	for i := range remap {
		remap[i] = -1
	}
	for s, ok := keep.NextSet(0); ok; s, ok = keep.NextSet(s + 1) {
		ns := out.AddState(a.labels[s])
		remap[s] = ns
		if a.initial.Test(s) {
			_ = out.SetInitial(ns, true)
		}
		if a.accept.Test(s) {
			_ = out.SetAccept(ns, true)
		}
	}

	for src, row := range a.delta {
		if remap[src] == -1 {
			continue
		}
		for sym, set := range row {
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				if remap[d] == -1 {
					continue
				}
				_ = out.AddTransition(remap[src], sym, remap[d])
			}
		}
	}
	return out
}

// Complete returns an equivalent automaton with at least one outgoing
// transition for every (state, symbol) pair. An already complete input
// yields a plain copy; otherwise one fresh non-accepting sink state is
// added, looping to itself on every symbol, and every missing pair gets a
// transition into it. Only empty pairs are ever filled, so completing a
// deterministic automaton keeps it deterministic, and the accepted
// language is unchanged.
func Complete(a *Automaton) *Automaton {
	out := a.Clone()
	if IsComplete(out) {
		return out
	}

	before := out.NumStates()
	sink := out.AddState(freshLabel(out, "sink"))
	for _, sym := range out.Alphabet() {
		_ = out.AddTransition(sink, sym, sink)
	}
	for s := State(0); int(s) < before; s++ {
		for _, sym := range out.Alphabet() {
			set := out.dests(s, sym)
			if set == nil || set.None() {
				_ = out.AddTransition(s, sym, sink)
			}
		}
	}
	return out
}

// Determinize returns an equivalent deterministic automaton built by
// subset construction. Result states are epsilon-closed configurations of
// source states, discovered by worklist from the closure of the initial
// set; equal member sets collapse into one result state. A symbol whose
// destination union is empty simply gets no transition, so the result may
// be incomplete; compose with Complete when a total relation is needed.
// Termination is bounded by the number of distinct subsets.
//
// An already deterministic input returns a plain copy.
func Determinize(a *Automaton) *Automaton {
	if IsDeterministic(a) {
		return a.Clone()
	}

	out := New(a.Alphabet()...)
	alphabet := out.Alphabet()

	init := newConfiguration(a.epsilonClosure(a.initial.Clone()))
	s0 := out.AddState(init.label(a))
	_ = out.SetInitial(s0, true)
	_ = out.SetAccept(s0, init.acceptsAny(a))

	seen := map[string]State{init.key(): s0}
	work := []configuration{init}

	for len(work) > 0 {
		cfg := work[0]
		work = work[1:]
		src := seen[cfg.key()]

		for _, sym := range alphabet {
			union := bitset.New(uint(a.NumStates()))
			for _, m := range cfg.members {
				if set := a.dests(m, sym); set != nil {
					union.InPlaceUnion(set)
				}
			}
			if union.None() {
				// No successor configuration for this symbol.
				continue
			}
			next := newConfiguration(a.epsilonClosure(union))
			dst, ok := seen[next.key()]
			if !ok {
				// freshLabel guards against source labels that make two
				// distinct subsets render identically.
				dst = out.AddState(freshLabel(out, next.label(a)))
				_ = out.SetAccept(dst, next.acceptsAny(a))
				seen[next.key()] = dst
				work = append(work, next)
			}
			_ = out.AddTransition(src, sym, dst)
		}
	}
	return out
}

// Relabel returns a copy of a with renamed states: names maps old labels
// to new ones (unmapped labels keep theirs), and a nil map assigns the
// canonical q0..qN in state order. Two states ending up with the same
// label is an error.
func Relabel(a *Automaton, names map[string]string) (*Automaton, error) {
	out := New(a.Alphabet()...)
	for i, old := range a.labels {
		label := old
		if names == nil {
			label = "q" + strconv.Itoa(i)
		} else if n, ok := names[old]; ok {
			label = n
		}
		if _, dup := out.StateOf(label); dup {
			return nil, fmt.Errorf("relabel: duplicate label %q", label)
		}
		s := out.AddState(label)
		_ = out.SetInitial(s, a.IsInitial(State(i)))
		_ = out.SetAccept(s, a.IsAccept(State(i)))
	}
	for src, row := range a.delta {
		for sym, set := range row {
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				_ = out.AddTransition(State(src), sym, State(d))
			}
		}
	}
	return out, nil
}

// freshLabel returns base, or base2, base3... if taken.
func freshLabel(a *Automaton, base string) string {
	label := base
	for i := 2; ; i++ {
		if _, ok := a.StateOf(label); !ok {
			return label
		}
		label = base + strconv.Itoa(i)
	}
}

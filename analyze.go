package automata

import "github.com/bits-and-blooms/bitset"

// IsDeterministic reports whether the automaton is a DFA: exactly one
// initial state, no epsilon transitions and at most one destination for
// every (state, symbol) pair. A pair with zero destinations does not
// violate determinism (that is a completeness concern).
func IsDeterministic(a *Automaton) bool {
	if a.initial.Count() != 1 {
		return false
	}
	if a.hasEpsilon {
		return false
	}
	for _, row := range a.delta {
		for _, set := range row {
			if set.Count() > 1 {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every (state, symbol) pair has at least one
// outgoing transition. Completeness is independent of determinism, and
// vacuously true over an empty alphabet.
func IsComplete(a *Automaton) bool {
	for src := range a.delta {
		for sym := range a.alphabet {
			set := a.dests(State(src), sym)
			if set == nil || set.None() {
				return false
			}
		}
	}
	return true
}

// AccessibleStates returns the set of states reachable from the initial
// set, epsilon transitions included.
func AccessibleStates(a *Automaton) *bitset.BitSet {
	reached := a.initial.Clone()
	work := fromBitSet(reached)
	for len(work) > 0 {
		src := work[0]
		work = work[1:]
		for _, set := range a.delta[src] {
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				if !reached.Test(d) {
					reached.Set(d)
					work = append(work, State(d))
				}
			}
		}
	}
	return reached
}

// IsAccessible reports whether every state is reachable from some
// initial state.
func IsAccessible(a *Automaton) bool {
	return int(AccessibleStates(a).Count()) == a.NumStates()
}

// CoAccessibleStates returns the set of states from which some accept
// state is reachable, computed over the reversed transition relation.
func CoAccessibleStates(a *Automaton) *bitset.BitSet {
	rev := make([]*bitset.BitSet, a.NumStates())
	for src, row := range a.delta {
		for _, set := range row {
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				if rev[d] == nil {
					rev[d] = bitset.New(uint(a.NumStates()))
				}
				rev[d].Set(uint(src))
			}
		}
	}

	reached := a.accept.Clone()
	work := fromBitSet(reached)
	for len(work) > 0 {
		dst := work[0]
		work = work[1:]
		if rev[dst] == nil {
			continue
		}
		for s, ok := rev[dst].NextSet(0); ok; s, ok = rev[dst].NextSet(s + 1) {
			if !reached.Test(s) {
				reached.Set(s)
				work = append(work, State(s))
			}
		}
	}
	return reached
}

// IsCoAccessible reports whether every state can reach some accept state.
func IsCoAccessible(a *Automaton) bool {
	return int(CoAccessibleStates(a).Count()) == a.NumStates()
}

// HasPath reports whether dst is reachable from src via zero or more
// transitions, epsilon included. Out-of-range states are unreachable.
func HasPath(a *Automaton, src, dst State) bool {
	if !a.valid(src) || !a.valid(dst) {
		return false
	}
	if src == dst {
		return true
	}
	seen := bitset.New(uint(a.NumStates()))
	seen.Set(uint(src))
	work := []State{src}
	for len(work) > 0 {
		s := work[0]
		work = work[1:]
		for _, set := range a.delta[s] {
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				if State(d) == dst {
					return true
				}
				if !seen.Test(d) {
					seen.Set(d)
					work = append(work, State(d))
				}
			}
		}
	}
	return false
}

// epsilonClosure extends set in place with every state reachable through
// epsilon transitions alone, and returns it. Identity when the automaton
// has no epsilon transitions.
func (a *Automaton) epsilonClosure(set *bitset.BitSet) *bitset.BitSet {
	if !a.hasEpsilon {
		return set
	}
	work := fromBitSet(set)
	for len(work) > 0 {
		src := work[0]
		work = work[1:]
		eps := a.dests(src, Epsilon)
		if eps == nil {
			continue
		}
		for d, ok := eps.NextSet(0); ok; d, ok = eps.NextSet(d + 1) {
			if !set.Test(d) {
				set.Set(d)
				work = append(work, State(d))
			}
		}
	}
	return set
}

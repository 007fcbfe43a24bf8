package automata

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrUnknownState is returned when a transition or a flag operation
	// names a state that does not belong to the automaton.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownSymbol is returned when a transition or a word uses a
	// symbol outside the declared alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// Epsilon is the reserved symbol for transitions consuming no input.
// It is never part of a declared alphabet.
const Epsilon rune = 0

// State identifies a state within one Automaton. States are created with
// AddState and stay valid for the lifetime of the automaton.
type State int

// Edge is one transition triple with label endpoints, as enumerated by
// Transitions and consumed by FromTable and the export adapter.
type Edge struct {
	Src string
	Sym rune
	Dst string
}

// Automaton holds states, an alphabet, a transition relation and the
// initial/accept sets. States are indices into a label arena; transitions
// reference indices only, labels carry no meaning beyond identity.
//
// Multiple destinations per (source, symbol) pair and multiple initial
// states are both allowed; those are exactly the NFA-defining features.
// Conversions (Determinize, Complete, Trim, CoTrim) never mutate their
// input, they build a fresh Automaton.
type Automaton struct {
	labels   []string
	index    map[string]State
	alphabet map[rune]struct{}

	// delta[src][sym] is the destination set; nil/missing means no
	// outgoing transition for the pair.
	delta []map[rune]*bitset.BitSet

	initial *bitset.BitSet
	accept  *bitset.BitSet

	numTransitions int
	hasEpsilon     bool
}

// New returns an empty automaton over the given alphabet.
// Epsilon is reserved and must not be declared; doing so panics.
func New(alphabet ...rune) *Automaton {
	a := &Automaton{
		index:    make(map[string]State),
		alphabet: make(map[rune]struct{}, len(alphabet)),
		initial:  bitset.New(2),
		accept:   bitset.New(2),
	}
	for _, sym := range alphabet {
		if sym == Epsilon {
			panic("automata: epsilon cannot be declared in an alphabet")
		}
		a.alphabet[sym] = struct{}{}
	}
	return a
}

// AddState adds a state with the given label and returns its index.
// Adding a label twice returns the existing state.
func (a *Automaton) AddState(label string) State {
	if s, ok := a.index[label]; ok {
		return s
	}
	s := State(len(a.labels))
	a.labels = append(a.labels, label)
	a.index[label] = s
	a.delta = append(a.delta, nil)
	return s
}

// StateOf looks up a state by label.
func (a *Automaton) StateOf(label string) (State, bool) {
	s, ok := a.index[label]
	return s, ok
}

// Label returns the label of s, or "" if s is out of range.
func (a *Automaton) Label(s State) string {
	if !a.valid(s) {
		return ""
	}
	return a.labels[s]
}

// HasSymbol reports whether sym belongs to the declared alphabet.
// Epsilon is never in the alphabet.
func (a *Automaton) HasSymbol(sym rune) bool {
	_, ok := a.alphabet[sym]
	return ok
}

// AddTransition adds the transition src-sym->dst. The symbol must be
// Epsilon or belong to the alphabet; both endpoints must exist.
// Adding the same triple twice is a no-op.
func (a *Automaton) AddTransition(src State, sym rune, dst State) error {
	if !a.valid(src) {
		return fmt.Errorf("%w: source %d", ErrUnknownState, src)
	}
	if !a.valid(dst) {
		return fmt.Errorf("%w: destination %d", ErrUnknownState, dst)
	}
	if sym != Epsilon && !a.HasSymbol(sym) {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
	}
	if a.delta[src] == nil {
		a.delta[src] = make(map[rune]*bitset.BitSet)
	}
	set := a.delta[src][sym]
	if set == nil {
		set = bitset.New(uint(len(a.labels)))
		a.delta[src][sym] = set
	}
	if !set.Test(uint(dst)) {
		set.Set(uint(dst))
		a.numTransitions++
		if sym == Epsilon {
			a.hasEpsilon = true
		}
	}
	return nil
}

// SetInitial sets or clears the initial flag of a state.
func (a *Automaton) SetInitial(s State, initial bool) error {
	if !a.valid(s) {
		return fmt.Errorf("%w: %d", ErrUnknownState, s)
	}
	a.initial.SetTo(uint(s), initial)
	return nil
}

// SetAccept sets or clears the accept flag of a state.
func (a *Automaton) SetAccept(s State, accept bool) error {
	if !a.valid(s) {
		return fmt.Errorf("%w: %d", ErrUnknownState, s)
	}
	a.accept.SetTo(uint(s), accept)
	return nil
}

// IsInitial reports whether s is an initial state.
func (a *Automaton) IsInitial(s State) bool {
	return a.valid(s) && a.initial.Test(uint(s))
}

// IsAccept reports whether s is an accept state.
func (a *Automaton) IsAccept(s State) bool {
	return a.valid(s) && a.accept.Test(uint(s))
}

// NumStates returns how many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.labels)
}

// NumTransitions returns how many distinct transition triples this
// automaton has, epsilon transitions included.
func (a *Automaton) NumTransitions() int {
	return a.numTransitions
}

// Alphabet returns the declared alphabet in sorted order.
func (a *Automaton) Alphabet() []rune {
	out := make([]rune, 0, len(a.alphabet))
	for sym := range a.alphabet {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// States returns all states in creation order.
func (a *Automaton) States() []State {
	out := make([]State, len(a.labels))
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// InitialStates returns the initial states in ascending order.
func (a *Automaton) InitialStates() []State {
	return fromBitSet(a.initial)
}

// AcceptStates returns the accept states in ascending order.
func (a *Automaton) AcceptStates() []State {
	return fromBitSet(a.accept)
}

// Next returns the destinations reachable from src on sym, sorted.
// The result is empty (never an error) when there is no such transition;
// querying with sym == Epsilon enumerates epsilon moves.
func (a *Automaton) Next(src State, sym rune) []State {
	if set := a.dests(src, sym); set != nil {
		return fromBitSet(set)
	}
	return nil
}

// Transitions enumerates all transition triples with label endpoints,
// sorted by source state, then symbol, then destination. Epsilon edges
// come first for a given source. This is the read-only view consumed by
// the export adapter.
func (a *Automaton) Transitions() []Edge {
	syms := append([]rune{Epsilon}, a.Alphabet()...)
	out := make([]Edge, 0, a.numTransitions)
	for src := range a.delta {
		for _, sym := range syms {
			set := a.dests(State(src), sym)
			if set == nil {
				continue
			}
			for d, ok := set.NextSet(0); ok; d, ok = set.NextSet(d + 1) {
				out = append(out, Edge{
					Src: a.labels[src],
					Sym: sym,
					Dst: a.labels[d],
				})
			}
		}
	}
	return out
}

// Clone returns a deep copy sharing nothing with the receiver.
func (a *Automaton) Clone() *Automaton {
	out := &Automaton{
		labels:         slices.Clone(a.labels),
		index:          make(map[string]State, len(a.index)),
		alphabet:       make(map[rune]struct{}, len(a.alphabet)),
		delta:          make([]map[rune]*bitset.BitSet, len(a.delta)),
		initial:        a.initial.Clone(),
		accept:         a.accept.Clone(),
		numTransitions: a.numTransitions,
		hasEpsilon:     a.hasEpsilon,
	}
	for label, s := range a.index {
		out.index[label] = s
	}
	for sym := range a.alphabet {
		out.alphabet[sym] = struct{}{}
	}
	for src, row := range a.delta {
		if row == nil {
			continue
		}
		out.delta[src] = make(map[rune]*bitset.BitSet, len(row))
		for sym, set := range row {
			out.delta[src][sym] = set.Clone()
		}
	}
	return out
}

func (a *Automaton) valid(s State) bool {
	return s >= 0 && int(s) < len(a.labels)
}

func (a *Automaton) dests(src State, sym rune) *bitset.BitSet {
	if !a.valid(src) || a.delta[src] == nil {
		return nil
	}
	return a.delta[src][sym]
}

func fromBitSet(set *bitset.BitSet) []State {
	out := make([]State, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, State(i))
	}
	return out
}

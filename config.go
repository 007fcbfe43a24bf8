package automata

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// configuration is a subset of source-automaton states acting as one
// state of the determinized result. Two configurations are the same
// result state iff their member sets are equal, so identity is the
// canonical sorted member sequence, not reference identity.
type configuration struct {
	members []State // ascending
}

func newConfiguration(set *bitset.BitSet) configuration {
	return configuration{members: fromBitSet(set)}
}

// key is the dedup key used by the determinization worklist.
func (c configuration) key() string {
	var b strings.Builder
	for i, s := range c.members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String()
}

// label builds the result-state label from the sorted member labels,
// e.g. {q0,q2}.
func (c configuration) label(a *Automaton) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, s := range c.members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.Label(s))
	}
	b.WriteByte('}')
	return b.String()
}

// acceptsAny reports whether the configuration contains a source accept
// state.
func (c configuration) acceptsAny(a *Automaton) bool {
	for _, s := range c.members {
		if a.IsAccept(s) {
			return true
		}
	}
	return false
}

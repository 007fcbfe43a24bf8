package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avigier/automata"
)

func endsInOne(t *testing.T) *automata.Automaton {
	t.Helper()
	a, err := automata.FromTable(
		[]rune{'0', '1'},
		[]string{"q0", "q1"},
		[]string{"q0"},
		[]string{"q1"},
		[]automata.Edge{
			{Src: "q0", Sym: '0', Dst: "q0"},
			{Src: "q0", Sym: '1', Dst: "q1"},
			{Src: "q1", Sym: '0', Dst: "q0"},
			{Src: "q1", Sym: '1', Dst: "q1"},
		},
	)
	assert.Nil(t, err)
	return a
}

func TestMarshalString(t *testing.T) {
	a := endsInOne(t)
	out := MarshalString(a, "ends_in_one")

	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `rankdir="LR"`)

	// Accept states are doublecircles, the rest plain circles, and every
	// initial state gets a point-shaped marker.
	assert.Contains(t, out, `shape="doublecircle"`)
	assert.Contains(t, out, `shape="circle"`)
	assert.Contains(t, out, `shape="point"`)

	// Single-symbol edges keep plain labels.
	assert.Contains(t, out, `label="0"`)
	assert.Contains(t, out, `label="1"`)
}

func TestMarshalString_ParallelSymbols(t *testing.T) {
	// Two transitions between the same pair of states collapse into one
	// edge with a comma-joined sorted label.
	a := automata.New('a', 'b')
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	assert.Nil(t, a.SetInitial(q0, true))
	assert.Nil(t, a.SetAccept(q1, true))
	assert.Nil(t, a.AddTransition(q0, 'b', q1))
	assert.Nil(t, a.AddTransition(q0, 'a', q1))

	out := MarshalString(a, "parallel")
	assert.Contains(t, out, `label="a,b"`)
	assert.NotContains(t, out, `label="b,a"`)
}

func TestMarshalString_Epsilon(t *testing.T) {
	a := automata.New('a')
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	assert.Nil(t, a.SetInitial(q0, true))
	assert.Nil(t, a.SetAccept(q1, true))
	assert.Nil(t, a.AddTransition(q0, automata.Epsilon, q1))

	out := MarshalString(a, "eps")
	assert.Contains(t, out, `label="ε"`)
}

func TestMarshal_DoesNotMutate(t *testing.T) {
	a := endsInOne(t)
	states, transitions := a.NumStates(), a.NumTransitions()

	_ = Marshal(a, "ends_in_one")

	assert.Equal(t, states, a.NumStates())
	assert.Equal(t, transitions, a.NumTransitions())
	assert.Equal(t, []rune{'0', '1'}, a.Alphabet())
}

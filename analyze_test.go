package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// endsInOne builds the DFA over {0,1} accepting every word whose last
// symbol is 1: states q0,q1, initial q0, accepting q1.
func endsInOne(t *testing.T) *Automaton {
	t.Helper()
	a, err := FromTable(
		[]rune{'0', '1'},
		[]string{"q0", "q1"},
		[]string{"q0"},
		[]string{"q1"},
		[]Edge{
			{"q0", '0', "q0"},
			{"q0", '1', "q1"},
			{"q1", '0', "q0"},
			{"q1", '1', "q1"},
		},
	)
	assert.Nil(t, err)
	return a
}

func TestIsDeterministic(t *testing.T) {
	t.Run("dfa", func(t *testing.T) {
		assert.True(t, IsDeterministic(endsInOne(t)))
	})

	t.Run("missing pair stays deterministic", func(t *testing.T) {
		a := New('a', 'b')
		q0 := a.AddState("q0")
		q1 := a.AddState("q1")
		assert.Nil(t, a.SetInitial(q0, true))
		assert.Nil(t, a.AddTransition(q0, 'a', q1))
		assert.True(t, IsDeterministic(a))
	})

	t.Run("two initial states", func(t *testing.T) {
		a := New('a')
		q0 := a.AddState("q0")
		q1 := a.AddState("q1")
		assert.Nil(t, a.SetInitial(q0, true))
		assert.Nil(t, a.SetInitial(q1, true))
		assert.False(t, IsDeterministic(a))
	})

	t.Run("no initial state", func(t *testing.T) {
		a := New('a')
		a.AddState("q0")
		assert.False(t, IsDeterministic(a))
	})

	t.Run("two destinations for one pair", func(t *testing.T) {
		a := New('a')
		q0 := a.AddState("q0")
		q1 := a.AddState("q1")
		assert.Nil(t, a.SetInitial(q0, true))
		assert.Nil(t, a.AddTransition(q0, 'a', q0))
		assert.Nil(t, a.AddTransition(q0, 'a', q1))
		assert.False(t, IsDeterministic(a))
	})

	t.Run("epsilon transition", func(t *testing.T) {
		a := New('a')
		q0 := a.AddState("q0")
		q1 := a.AddState("q1")
		assert.Nil(t, a.SetInitial(q0, true))
		assert.Nil(t, a.AddTransition(q0, Epsilon, q1))
		assert.False(t, IsDeterministic(a))
	})
}

func TestIsComplete(t *testing.T) {
	t.Run("complete dfa", func(t *testing.T) {
		assert.True(t, IsComplete(endsInOne(t)))
	})

	t.Run("missing pair", func(t *testing.T) {
		a := New('a', 'b')
		q0 := a.AddState("q0")
		assert.Nil(t, a.SetInitial(q0, true))
		assert.Nil(t, a.AddTransition(q0, 'a', q0))
		assert.False(t, IsComplete(a))
	})

	t.Run("complete but nondeterministic", func(t *testing.T) {
		a := New('a')
		q0 := a.AddState("q0")
		q1 := a.AddState("q1")
		assert.Nil(t, a.SetInitial(q0, true))
		assert.Nil(t, a.AddTransition(q0, 'a', q0))
		assert.Nil(t, a.AddTransition(q0, 'a', q1))
		assert.Nil(t, a.AddTransition(q1, 'a', q1))
		assert.True(t, IsComplete(a))
		assert.False(t, IsDeterministic(a))
	})

	t.Run("empty alphabet is vacuously complete", func(t *testing.T) {
		a := New()
		a.AddState("q0")
		assert.True(t, IsComplete(a))
	})
}

func TestAccessible(t *testing.T) {
	a := New('a')
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	orphan := a.AddState("orphan")
	assert.Nil(t, a.SetInitial(q0, true))
	assert.Nil(t, a.AddTransition(q0, 'a', q1))
	assert.Nil(t, a.AddTransition(orphan, 'a', q1))

	set := AccessibleStates(a)
	assert.True(t, set.Test(uint(q0)))
	assert.True(t, set.Test(uint(q1)))
	assert.False(t, set.Test(uint(orphan)))
	assert.False(t, IsAccessible(a))

	assert.True(t, IsAccessible(endsInOne(t)))
}

func TestAccessible_FollowsEpsilon(t *testing.T) {
	a := New('a')
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	assert.Nil(t, a.SetInitial(q0, true))
	assert.Nil(t, a.AddTransition(q0, Epsilon, q1))
	assert.True(t, IsAccessible(a))
}

func TestCoAccessible(t *testing.T) {
	a := New('a')
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	dead := a.AddState("dead")
	assert.Nil(t, a.SetInitial(q0, true))
	assert.Nil(t, a.SetAccept(q1, true))
	assert.Nil(t, a.AddTransition(q0, 'a', q1))
	assert.Nil(t, a.AddTransition(q1, 'a', dead))

	set := CoAccessibleStates(a)
	assert.True(t, set.Test(uint(q0)))
	assert.True(t, set.Test(uint(q1)))
	assert.False(t, set.Test(uint(dead)))
	assert.False(t, IsCoAccessible(a))

	assert.True(t, IsCoAccessible(endsInOne(t)))
}

func TestHasPath(t *testing.T) {
	a := New('a')
	q0 := a.AddState("q0")
	q1 := a.AddState("q1")
	q2 := a.AddState("q2")
	assert.Nil(t, a.AddTransition(q0, 'a', q1))
	assert.Nil(t, a.AddTransition(q1, 'a', q2))

	assert.True(t, HasPath(a, q0, q0))
	assert.True(t, HasPath(a, q0, q2))
	assert.False(t, HasPath(a, q2, q0))
	assert.False(t, HasPath(a, q0, State(9)))
}

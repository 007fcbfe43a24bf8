// Package dot renders automata as Graphviz DOT. It consumes only the
// read-only state/transition view and never mutates the automaton.
package dot

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emicklei/dot"

	"github.com/avigier/automata"
)

// MarshalString renders a as a directed graph: rankdir=LR, a point-shaped
// anonymous node with an arrow into every initial state, doublecircle for
// accept states and circle otherwise. Parallel transitions between the
// same pair of states collapse into one edge labeled with the
// comma-joined sorted symbols; epsilon prints as U+03B5.
func MarshalString(a *automata.Automaton, name string) string {
	g := dot.NewGraph(dot.Directed)
	g.ID(name)
	g.Attr("rankdir", "LR")

	nodes := make(map[automata.State]dot.Node, a.NumStates())
	for _, s := range a.States() {
		n := g.Node(a.Label(s))
		if a.IsAccept(s) {
			n.Attr("shape", "doublecircle")
		} else {
			n.Attr("shape", "circle")
		}
		nodes[s] = n
	}
	for i, s := range a.InitialStates() {
		mark := g.Node("qi_" + strconv.Itoa(i))
		mark.Attr("shape", "point")
		g.Edge(mark, nodes[s])
	}

	type pair struct{ src, dst string }
	labels := make(map[pair][]string)
	order := make([]pair, 0)
	for _, e := range a.Transitions() {
		p := pair{e.Src, e.Dst}
		if _, ok := labels[p]; !ok {
			order = append(order, p)
		}
		labels[p] = append(labels[p], symbol(e.Sym))
	}
	for _, p := range order {
		syms := labels[p]
		sort.Strings(syms)
		src, _ := a.StateOf(p.src)
		dst, _ := a.StateOf(p.dst)
		g.Edge(nodes[src], nodes[dst], strings.Join(syms, ","))
	}

	return g.String()
}

// Marshal is MarshalString returning bytes.
func Marshal(a *automata.Automaton, name string) []byte {
	return []byte(MarshalString(a, name))
}

func symbol(sym rune) string {
	if sym == automata.Epsilon {
		return "ε"
	}
	return string(sym)
}

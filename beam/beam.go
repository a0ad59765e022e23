// Package beam implements the weighted-NFA-to-DFA beam search adapter
// (automaton.DFA over []StateWeight[S]) and its epsilon-closure-aware
// variant.
package beam

import (
	"container/heap"
	"math"

	"github.com/coregx/fuzzyfst/automaton"
	"github.com/coregx/fuzzyfst/internal/stateset"
)

// StateWeight pairs an NFA state reached by the beam with the accumulated
// cost of the cheapest path found to it so far.
type StateWeight[S any] struct {
	State  S
	Weight float64
}

// Adapter composes a WeightedNFA into an automaton.DFA by tracking, at each
// DFA state, a bounded frontier of the cheapest NFA states reachable within
// threshold total cost, expanded in best-first order up to beamSize
// results per step.
type Adapter[S comparable, In any] struct {
	NFA       automaton.WeightedNFA[S, In]
	Threshold float64
	BeamSize  int
}

// New returns a beam search adapter over nfa.
func New[S comparable, In any](nfa automaton.WeightedNFA[S, In], threshold float64, beamSize int) *Adapter[S, In] {
	return &Adapter[S, In]{NFA: nfa, Threshold: threshold, BeamSize: beamSize}
}

// Start returns the single-element frontier holding the NFA's start state at
// zero cost.
func (a *Adapter[S, In]) Start() []StateWeight[S] {
	return []StateWeight[S]{{State: a.NFA.Start(), Weight: 0}}
}

// IsMatch reports whether any frontier member is an NFA match.
func (a *Adapter[S, In]) IsMatch(state []StateWeight[S]) bool {
	for _, sw := range state {
		if a.NFA.IsMatch(sw.State) {
			return true
		}
	}
	return false
}

// CanMatch reports whether any frontier member can still reach a match.
func (a *Adapter[S, In]) CanMatch(state []StateWeight[S]) bool {
	for _, sw := range state {
		if a.NFA.CanMatch(sw.State) {
			return true
		}
	}
	return false
}

// WillAlwaysMatch reports whether any frontier member is guaranteed to
// match on every continuation.
func (a *Adapter[S, In]) WillAlwaysMatch(state []StateWeight[S]) bool {
	for _, sw := range state {
		if a.NFA.WillAlwaysMatch(sw.State) {
			return true
		}
	}
	return false
}

// Accept runs one beam step with no extra expansion, producing the next
// bounded frontier.
func (a *Adapter[S, In]) Accept(state []StateWeight[S], inp In) []StateWeight[S] {
	return a.step(state, inp, nil)
}

// extraExpand lets the epsilon-closure variant push an additional agenda
// item (the epsilon-closure of a freshly discovered state) into the same
// heap the main step is draining.
type extraExpand[S any] func(h *agendaHeap[S], state S, weight float64)

// agendaItem is one frontier entry's lazy lookahead: the cheapest cost to
// reach it (baseWeight) plus a one-edge peek into its own edge iterator.
// A new item peeks immediately; each call to advance returns the old peek
// and pulls the next one.
type agendaItem[S any] struct {
	baseWeight float64
	iter       automaton.Edges[S]
	peekState  S
	peekWeight float64
	peekOK     bool
}

func newAgendaItem[S any](baseWeight float64, iter automaton.Edges[S]) *agendaItem[S] {
	it := &agendaItem[S]{baseWeight: baseWeight, iter: iter}
	it.peekState, it.peekWeight, it.peekOK = iter.Next()
	return it
}

// advance returns the current peek and loads the next one.
func (it *agendaItem[S]) advance() (S, float64, bool) {
	s, w, ok := it.peekState, it.peekWeight, it.peekOK
	it.peekState, it.peekWeight, it.peekOK = it.iter.Next()
	return s, w, ok
}

// weight is the total cost of the item's peeked edge, or +Inf if the
// iterator is exhausted — pushing exhausted items to the back of the heap
// until they are popped and discarded for good.
func (it *agendaItem[S]) weight() float64 {
	if !it.peekOK {
		return math.Inf(1)
	}
	return it.baseWeight + it.peekWeight
}

// agendaHeap is a min-heap of *agendaItem by weight, cheapest first.
type agendaHeap[S any] []*agendaItem[S]

func (h agendaHeap[S]) Len() int { return len(h) }

func (h agendaHeap[S]) Less(i, j int) bool {
	wi, wj := h[i].weight(), h[j].weight()
	if math.IsNaN(wi) || math.IsNaN(wj) {
		panic("beam: incomparable (NaN) edge cost")
	}
	return wi < wj
}

func (h agendaHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *agendaHeap[S]) Push(x any) { *h = append(*h, x.(*agendaItem[S])) }

func (h *agendaHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// step runs the shared best-first expansion loop: seed one agenda item per
// current frontier member's Accept(inp) iterator, then drain the heap
// cheapest-first, accepting edges within threshold up to beamSize distinct
// results, calling expand for every newly discovered state so the
// epsilon-closure variant can fold its own follow-up agenda items in.
func (a *Adapter[S, In]) step(state []StateWeight[S], inp In, expand extraExpand[S]) []StateWeight[S] {
	h := make(agendaHeap[S], 0, len(state))
	for _, sw := range state {
		h = append(h, newAgendaItem(sw.Weight, a.NFA.Accept(sw.State, inp)))
	}
	heap.Init(&h)
	return a.stepInner(&h, stateset.New[S](a.BeamSize), nil, expand)
}

// stepInner is the shared drain loop used directly by step and, with a
// pre-seeded heap and seen set, by the epsilon-closure variant's Start.
//
// An edge whose total weight exceeds threshold is skipped, not dropped: the
// agenda item is still re-pushed as long as its own iterator has more edges
// to offer, so a later, cheaper edge from the same state is never lost
// behind one over-threshold edge. An item is only dropped once its
// iterator itself is exhausted.
func (a *Adapter[S, In]) stepInner(h *agendaHeap[S], seen *stateset.Set[S], result []StateWeight[S], expand extraExpand[S]) []StateWeight[S] {
	for h.Len() > 0 {
		item := heap.Pop(h).(*agendaItem[S])
		nextWeight := item.weight()
		nextState, _, ok := item.advance()
		if !ok {
			continue
		}
		if nextWeight <= a.Threshold && !math.IsInf(nextWeight, 1) {
			if !seen.Contains(nextState) {
				seen.Insert(nextState)
				result = append(result, StateWeight[S]{State: nextState, Weight: nextWeight})
				if len(result) >= a.BeamSize {
					break
				}
				if expand != nil {
					expand(h, nextState, nextWeight)
				}
			}
		}
		heap.Push(h, item)
	}
	return result
}

// EpsilonAdapter wraps a beam Adapter over a FollowEpsilonNFA so that every
// newly discovered state also has its epsilon-closure folded into the same
// agenda before the step completes.
type EpsilonAdapter[S comparable, In any] struct {
	inner *Adapter[S, In]
	nfa   automaton.FollowEpsilonNFA[S, In]
}

// NewEpsilon returns an epsilon-closure-aware beam search adapter over nfa.
func NewEpsilon[S comparable, In any](nfa automaton.FollowEpsilonNFA[S, In], threshold float64, beamSize int) *EpsilonAdapter[S, In] {
	return &EpsilonAdapter[S, In]{
		inner: &Adapter[S, In]{NFA: nfa, Threshold: threshold, BeamSize: beamSize},
		nfa:   nfa,
	}
}

func (a *EpsilonAdapter[S, In]) expandEpsilon(h *agendaHeap[S], state S, weight float64) {
	heap.Push(h, newAgendaItem(weight, a.nfa.FollowEpsilon(state)))
}

// Start seeds the frontier with the NFA's start state, then immediately
// expands its epsilon closure before any byte has been consumed.
func (a *EpsilonAdapter[S, In]) Start() []StateWeight[S] {
	start := a.inner.Start()
	s, w := start[0].State, start[0].Weight

	h := &agendaHeap[S]{}
	heap.Init(h)
	a.expandEpsilon(h, s, w)

	seen := stateset.New[S](a.inner.BeamSize)
	seen.Insert(s)
	result := []StateWeight[S]{{State: s, Weight: w}}
	return a.inner.stepInner(h, seen, result, a.expandEpsilon)
}

func (a *EpsilonAdapter[S, In]) IsMatch(state []StateWeight[S]) bool { return a.inner.IsMatch(state) }

func (a *EpsilonAdapter[S, In]) CanMatch(state []StateWeight[S]) bool { return a.inner.CanMatch(state) }

func (a *EpsilonAdapter[S, In]) WillAlwaysMatch(state []StateWeight[S]) bool {
	return a.inner.WillAlwaysMatch(state)
}

// Accept runs one beam step whose extra-expansion callback folds in the
// epsilon closure of every newly discovered state.
func (a *EpsilonAdapter[S, In]) Accept(state []StateWeight[S], inp In) []StateWeight[S] {
	return a.inner.step(state, inp, a.expandEpsilon)
}

// Package transducer wraps an external weighted error transducer — built
// offline by a process out of this module's scope — as an
// automaton.FollowEpsilonNFA over bytes, buffering multi-byte input symbols
// until they resolve against the backend's own symbol table.
package transducer

import "github.com/coregx/fuzzyfst/automaton"

// Transition is one outgoing edge reported by a Transducer: the numeric ID
// of the destination state and the edge's weight.
type Transition struct {
	State  uint64
	Weight float64
}

// Transducer is the consumption contract for an externally built weighted
// transducer: a graph of numeric states whose edges are labeled with
// arbitrary byte-string symbols (not necessarily single bytes — error
// models commonly use multi-byte grapheme symbols), plus an epsilon symbol.
// Implementations are expected to be thin bindings over whatever transducer
// representation a caller has already loaded; this module never builds one.
type Transducer interface {
	// Step returns every transition out of state whose input symbol
	// equals symbol exactly.
	Step(state uint64, symbol []byte) []Transition

	// IsFinal reports whether state is an accepting state.
	IsFinal(state uint64) bool
}

// EpsilonSymbol is the symbol FollowEpsilon probes for, matching the
// reserved epsilon-symbol convention HFST-format transducers use.
var EpsilonSymbol = []byte("@_EPSILON_SYMBOL_@")

// maxSymbolBytes bounds how long an unresolved input-symbol buffer is
// allowed to grow before the NFA gives up on it as dead: no supported
// grapheme symbol is longer than this many UTF-8 bytes.
const maxSymbolBytes = 4

// State is the transducer NFA's own state: the underlying transducer's
// state ID, plus any bytes accumulated so far while probing for a multi-byte
// input symbol that hasn't matched a transition yet.
type State struct {
	ID     uint64
	buf    [maxSymbolBytes]byte
	bufLen uint8
}

// NFA adapts a Transducer into an automaton.FollowEpsilonNFA[State, byte].
type NFA struct {
	T Transducer
}

// New wraps t as a byte-level weighted NFA.
func New(t Transducer) *NFA {
	return &NFA{T: t}
}

// Start returns state 0 with an empty symbol buffer.
func (n *NFA) Start() State { return State{} }

// IsMatch reports whether state has no pending buffered bytes and its
// transducer state is accepting.
func (n *NFA) IsMatch(state State) bool {
	return state.bufLen == 0 && n.T.IsFinal(state.ID)
}

// CanMatch always returns true: the conservative default for a FollowEpsilonNFA
// that never tracks true reachability, so a state with a buffer stuck at
// maxSymbolBytes is reported reachable even though Accept will in fact never
// produce another edge from it.
func (n *NFA) CanMatch(State) bool { return true }

// WillAlwaysMatch always returns false.
func (n *NFA) WillAlwaysMatch(State) bool { return false }

// Accept appends b to state's pending symbol buffer and probes the
// transducer for transitions labeled with the buffer's exact contents. If
// none match and the buffer is still short enough, Accept yields a single
// zero-cost self-loop that keeps buffering; if none match and the buffer
// has reached maxSymbolBytes, the state is dead and Accept yields nothing.
func (n *NFA) Accept(state State, b byte) automaton.Edges[State] {
	buf := make([]byte, 0, maxSymbolBytes+1)
	buf = append(buf, state.buf[:state.bufLen]...)
	buf = append(buf, b)

	transitions := n.T.Step(state.ID, buf)
	if len(transitions) == 0 {
		if len(buf) >= maxSymbolBytes {
			return emptyEdges{}
		}
		next := State{ID: state.ID, bufLen: uint8(len(buf))}
		copy(next.buf[:], buf)
		return &onceEdge{state: next}
	}
	return &transitionEdges{transitions: transitions}
}

// FollowEpsilon probes the transducer for epsilon-labeled transitions out of
// state, but only when state has no pending buffered bytes: a mid-symbol
// state has no epsilon transitions.
func (n *NFA) FollowEpsilon(state State) automaton.Edges[State] {
	if state.bufLen != 0 {
		return emptyEdges{}
	}
	return &transitionEdges{transitions: n.T.Step(state.ID, EpsilonSymbol)}
}

type emptyEdges struct{}

func (emptyEdges) Next() (State, float64, bool) { return State{}, 0, false }

// onceEdge yields exactly one zero-cost self-loop edge, then nothing.
type onceEdge struct {
	state State
	done  bool
}

func (e *onceEdge) Next() (State, float64, bool) {
	if e.done {
		return State{}, 0, false
	}
	e.done = true
	return e.state, 0, true
}

// transitionEdges lazily walks a precomputed transition slice, converting
// each Transition into a fresh State with a cleared symbol buffer.
type transitionEdges struct {
	transitions []Transition
	i           int
}

func (e *transitionEdges) Next() (State, float64, bool) {
	if e.i >= len(e.transitions) {
		return State{}, 0, false
	}
	t := e.transitions[e.i]
	e.i++
	return State{ID: t.State}, t.Weight, true
}

package fstwalk

// AsAutomaton adapts any automaton.DFA[S, byte] to the structural shape
// most byte-oriented external FST libraries expect of their own Automaton
// interface (Start/IsMatch/CanMatch/WillAlwaysMatch/Accept over an opaque
// state type). Go interfaces satisfy structurally, so AsAutomaton's method
// set matches such a foreign interface without importing it, as long as its
// state type is boxed to `any`: the foreign interface is necessarily
// non-generic, so the wrapped DFA's concrete state type can't appear in its
// method signatures directly.
type AsAutomaton[S any] struct {
	DFA interface {
		Start() S
		IsMatch(S) bool
		CanMatch(S) bool
		WillAlwaysMatch(S) bool
		Accept(S, byte) S
	}
}

func (a AsAutomaton[S]) Start() any { return a.DFA.Start() }

func (a AsAutomaton[S]) IsMatch(state any) bool { return a.DFA.IsMatch(state.(S)) }

func (a AsAutomaton[S]) CanMatch(state any) bool { return a.DFA.CanMatch(state.(S)) }

func (a AsAutomaton[S]) WillAlwaysMatch(state any) bool { return a.DFA.WillAlwaysMatch(state.(S)) }

func (a AsAutomaton[S]) Accept(state any, b byte) any { return a.DFA.Accept(state.(S), b) }

// Package fstwalk implements the joint traversal of an FST (finite-state
// transducer, mapping byte-string keys to uint64 output values) and an
// arbitrary automaton.DFA over bytes, visiting keys in lexicographic order
// and pruning any subtree the DFA reports as dead via CanMatch.
//
// The traversal keeps one stack of frames (node, automaton state,
// accumulated output, next transition index) plus the key bytes of the
// current path, and runs a descend-then-backtrack depth-first search, collapsing an external
// Next()/Current() split into a single combined Next() that returns the
// next (key, value) pair directly.
package fstwalk

// Node is one state of the FST: whether it terminates a key, the output
// value accumulated there if so, and its outgoing transitions in ascending
// byte order (callers — i.e. FST implementations — are responsible for
// this ordering; Stream relies on it for lexicographic emission).
type Node interface {
	Final() bool
	FinalOutput() uint64
	NumTransitions() int

	// TransitionAt returns the i'th outgoing transition: the byte it
	// consumes, the address of the destination node, and the output
	// value carried on that edge.
	TransitionAt(i int) (b byte, addr uint64, output uint64)
}

// FST is the minimal collaborator contract: a root node plus random access
// to any node by address.
type FST interface {
	Root() (Node, error)
	StateAt(addr uint64) (Node, error)
}

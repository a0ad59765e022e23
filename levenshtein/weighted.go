// Package levenshtein implements edit-distance matching as weighted NFA
// states consumable by package beam, plus a simpler exact (non-approximate)
// byte-level DFA (NewExact) for callers who want a hard edit-distance
// cutoff with no beam-pruning risk.
package levenshtein

import "github.com/coregx/fuzzyfst/automaton"

// State is the weighted Levenshtein NFA's own state: the number of query
// characters consumed so far along the current path.
type State = int

// NFA matches strings within edit distance of query, weighted by the usual
// unit cost for insertion, deletion and substitution.
//
// The query's character array is owned by the NFA and shared (read-only)
// with every edge iterator it spawns via Accept; the NFA outlives every
// iterator it has produced.
type NFA struct {
	query []rune
}

// New returns a weighted Levenshtein NFA for query.
func New(query string) *NFA {
	return &NFA{query: []rune(query)}
}

// Start returns the state before any query character has been consumed.
func (n *NFA) Start() State { return 0 }

// IsMatch reports whether state has consumed every query character.
func (n *NFA) IsMatch(state State) bool { return state == len(n.query) }

// CanMatch always returns true: from any state, continuing to substitute or
// delete query characters can eventually reach a match.
func (n *NFA) CanMatch(State) bool { return true }

// WillAlwaysMatch is always false: there is no state past which every
// continuation is guaranteed to match.
func (n *NFA) WillAlwaysMatch(State) bool { return false }

// Accept returns the lazy edge sequence for consuming input character inp
// from state. Edges are yielded in a fixed order — match, substitute,
// insert, delete — with the delete edge looping back into match and
// substitute at the advanced query position (insert is suppressed once a
// delete has fired), chaining the cost of any deletions already taken ahead
// of it.
func (n *NFA) Accept(state State, inp rune) automaton.Edges[State] {
	return &edgeIter{query: n.query, chars: state, inp: inp}
}

type edgeKind uint8

const (
	edgeMatch edgeKind = iota
	edgeSubstitute
	edgeInsert
	edgeDelete
)

// edgeIter is the small per-call state machine that lazily yields
// (next-state, incremental-cost) pairs. It is single-pass and
// non-restartable: once Next reports ok == false, it keeps doing so.
type edgeIter struct {
	query   []rune
	inp     rune
	chars   int
	kind    edgeKind
	extra   float64
	deleted bool
	done    bool
}

// Next implements automaton.Edges[State].
func (it *edgeIter) Next() (State, float64, bool) {
	for !it.done {
		switch it.kind {
		case edgeMatch:
			it.kind = edgeSubstitute
			if it.chars < len(it.query) && it.query[it.chars] == it.inp {
				return it.chars + 1, it.extra, true
			}
		case edgeSubstitute:
			it.kind = edgeInsert
			if it.chars < len(it.query) {
				return it.chars + 1, 1.0 + it.extra, true
			}
		case edgeInsert:
			it.kind = edgeDelete
			// Suppress insert once a delete has already fired on this path:
			// insert-then-delete and delete-then-insert both degenerate to a
			// substitution, so without this the two would be double-counted.
			if !it.deleted {
				return it.chars, 1.0 + it.extra, true
			}
		case edgeDelete:
			if it.chars+1 >= len(it.query) {
				it.done = true
				break
			}
			it.chars++
			it.extra += 1.0
			it.deleted = true
			it.kind = edgeMatch
		}
	}
	return 0, 0, false
}

package fstwalk

import "github.com/coregx/fuzzyfst/automaton"

// frame is one level of the joint DFS: the FST node at this depth, the
// DFA state reached along the path to it, the cumulative output value of
// that path, the next child transition index to try, and whether this
// frame's own final-match status has already been reported.
type frame[S any] struct {
	node     Node
	autState S
	cum      uint64
	transIdx int
	reported bool
}

// Stream walks an FST and a automaton.DFA in lockstep, depth-first, and
// yields every key the FST contains whose DFA path IsMatch, in
// lexicographic key order. Subtrees the DFA reports CanMatch == false for
// are pruned without ever being visited.
type Stream[S any] struct {
	fst   FST
	dfa   automaton.DFA[S, byte]
	stack []frame[S]
	key   []byte
}

// New starts a joint traversal of fst constrained by dfa.
func New[S any](fst FST, dfa automaton.DFA[S, byte]) (*Stream[S], error) {
	root, err := fst.Root()
	if err != nil {
		return nil, err
	}
	s := &Stream[S]{fst: fst, dfa: dfa}
	s.stack = append(s.stack, frame[S]{node: root, autState: dfa.Start()})
	return s, nil
}

// Next advances the stream and returns the next matching key and its
// output value. ok is false once the traversal is exhausted. The returned
// key slice is only valid until the next call to Next.
func (s *Stream[S]) Next() (key []byte, value uint64, ok bool, err error) {
	for len(s.stack) > 0 {
		idx := len(s.stack) - 1
		f := s.stack[idx]

		if !f.reported {
			s.stack[idx].reported = true
			if f.node.Final() && s.dfa.IsMatch(f.autState) {
				return append([]byte(nil), s.key...), f.cum + f.node.FinalOutput(), true, nil
			}
		}

		if f.transIdx < f.node.NumTransitions() {
			b, addr, out := f.node.TransitionAt(f.transIdx)
			s.stack[idx].transIdx++

			nextState := s.dfa.Accept(f.autState, b)
			if !s.dfa.CanMatch(nextState) {
				continue
			}

			child, err := s.fst.StateAt(addr)
			if err != nil {
				return nil, 0, false, err
			}

			s.key = append(s.key, b)
			s.stack = append(s.stack, frame[S]{
				node:     child,
				autState: nextState,
				cum:      f.cum + out,
			})
			continue
		}

		// Exhausted this frame's transitions and already considered its
		// own match: pop back to the parent.
		s.stack = s.stack[:idx]
		if idx > 0 {
			s.key = s.key[:len(s.key)-1]
		}
	}
	return nil, 0, false, nil
}

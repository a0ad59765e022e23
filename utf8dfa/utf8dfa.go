// Package utf8dfa lifts a rune-level automaton.DFA into a byte-level one,
// buffering incomplete UTF-8 sequences until a full rune is available.
package utf8dfa

import (
	"unicode/utf8"

	"github.com/coregx/fuzzyfst/automaton"
)

// State pairs the wrapped rune-level DFA's own state with any UTF-8 bytes
// accepted so far that do not yet decode to a complete rune.
type State[S any] struct {
	Inner  S
	buf    [4]byte
	bufLen uint8
}

// Adapter wraps a rune-level automaton.DFA, presenting it as a byte-level
// automaton.DFA.
type Adapter[S any] struct {
	Inner automaton.DFA[S, rune]
}

// New returns a byte-level adapter over a rune-level DFA.
func New[S any](inner automaton.DFA[S, rune]) *Adapter[S] {
	return &Adapter[S]{Inner: inner}
}

// Start returns the inner DFA's start state with an empty byte buffer.
func (a *Adapter[S]) Start() State[S] {
	return State[S]{Inner: a.Inner.Start()}
}

// IsMatch reports a match only with no pending bytes: a state with a
// nonempty buffer is always mid-rune, never accepting.
func (a *Adapter[S]) IsMatch(state State[S]) bool {
	return state.bufLen == 0 && a.Inner.IsMatch(state.Inner)
}

// CanMatch defers to the inner DFA; a pending partial rune never by itself
// makes a state permanently dead.
func (a *Adapter[S]) CanMatch(state State[S]) bool {
	return a.Inner.CanMatch(state.Inner)
}

// WillAlwaysMatch defers to the inner DFA.
func (a *Adapter[S]) WillAlwaysMatch(state State[S]) bool {
	return a.Inner.WillAlwaysMatch(state.Inner)
}

// Accept consumes one byte. Once the buffer holds a complete rune
// (utf8.FullRune), it decodes and feeds the rune to the inner DFA, clearing
// the buffer; otherwise the byte is held pending more input.
//
// A buffer that reaches 4 bytes without ever satisfying FullRune is
// malformed UTF-8: the resulting state carries the stuck buffer forward
// forever, so the inner DFA is never invoked again and IsMatch can never
// again return true for any descendant of this state.
func (a *Adapter[S]) Accept(state State[S], inp byte) State[S] {
	if state.bufLen >= 4 {
		return state
	}
	buf := state.buf
	buf[state.bufLen] = inp
	n := int(state.bufLen) + 1

	if !utf8.FullRune(buf[:n]) && n < 4 {
		return State[S]{Inner: state.Inner, buf: buf, bufLen: uint8(n)}
	}

	r, size := utf8.DecodeRune(buf[:n])
	if r == utf8.RuneError && size <= 1 {
		return State[S]{Inner: state.Inner, buf: buf, bufLen: uint8(n)}
	}

	return State[S]{Inner: a.Inner.Accept(state.Inner, r)}
}

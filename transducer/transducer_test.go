package transducer

import (
	"bytes"
	"testing"

	"github.com/coregx/fuzzyfst/automaton"
)

var _ automaton.FollowEpsilonNFA[State, byte] = (*NFA)(nil)

// fakeTransducer is a tiny in-memory transducer: state 0 has one edge
// labeled "x" (weight 1.0) to state 1, one epsilon edge to state 2 (weight
// 0.5), and state 1 is final.
type fakeTransducer struct{}

func (fakeTransducer) Step(state uint64, symbol []byte) []Transition {
	switch state {
	case 0:
		if bytes.Equal(symbol, []byte("x")) {
			return []Transition{{State: 1, Weight: 1.0}}
		}
		if bytes.Equal(symbol, EpsilonSymbol) {
			return []Transition{{State: 2, Weight: 0.5}}
		}
	}
	return nil
}

func (fakeTransducer) IsFinal(state uint64) bool { return state == 1 }

func TestNFAAcceptMatchedSymbol(t *testing.T) {
	n := New(fakeTransducer{})
	it := n.Accept(n.Start(), 'x')
	s, w, ok := it.Next()
	if !ok {
		t.Fatal("expected a transition on matched symbol")
	}
	if s.ID != 1 || w != 1.0 {
		t.Fatalf("got state %+v weight %v, want state 1 weight 1.0", s, w)
	}
	if !n.IsMatch(s) {
		t.Fatal("state 1 should be final")
	}
	if _, _, ok := it.Next(); ok {
		t.Fatal("iterator should be exhausted after one transition")
	}
}

func TestNFAAcceptUnmatchedSymbolBuffers(t *testing.T) {
	n := New(fakeTransducer{})
	it := n.Accept(n.Start(), 'y')
	s, w, ok := it.Next()
	if !ok {
		t.Fatal("expected a self-loop buffering edge")
	}
	if w != 0 {
		t.Fatalf("self-loop should cost 0, got %v", w)
	}
	if s.bufLen != 1 {
		t.Fatalf("expected one buffered byte, got %d", s.bufLen)
	}
}

func TestNFADeadAfterMaxBufferedBytes(t *testing.T) {
	n := New(fakeTransducer{})
	s := n.Start()
	for i := 0; i < maxSymbolBytes; i++ {
		it := n.Accept(s, 'z')
		var ok bool
		s, _, ok = it.Next()
		if !ok {
			if i == maxSymbolBytes-1 {
				return
			}
			t.Fatalf("unexpected dead state at byte %d", i)
		}
	}
	it := n.Accept(s, 'z')
	if _, _, ok := it.Next(); ok {
		t.Fatal("buffer beyond maxSymbolBytes should be permanently dead")
	}
}

func TestNFAFollowEpsilon(t *testing.T) {
	n := New(fakeTransducer{})
	it := n.FollowEpsilon(n.Start())
	s, w, ok := it.Next()
	if !ok || s.ID != 2 || w != 0.5 {
		t.Fatalf("expected epsilon transition to state 2 weight 0.5, got %+v %v %v", s, w, ok)
	}
}

func TestNFAFollowEpsilonEmptyWithPendingBuffer(t *testing.T) {
	n := New(fakeTransducer{})
	it := n.Accept(n.Start(), 'y')
	s, _, _ := it.Next()
	eps := n.FollowEpsilon(s)
	if _, _, ok := eps.Next(); ok {
		t.Fatal("a state mid-symbol should have no epsilon transitions")
	}
}

package fstwalk

import "testing"

// memNode/memFST is a tiny in-memory FST built from a literal key/value
// list, addresses assigned by build order, used only to exercise Stream's
// traversal logic against a known lexicographic key set.
type memNode struct {
	final       bool
	finalOutput uint64
	trans       []memTrans
}

type memTrans struct {
	b      byte
	addr   uint64
	output uint64
}

func (n *memNode) Final() bool         { return n.final }
func (n *memNode) FinalOutput() uint64 { return n.finalOutput }
func (n *memNode) NumTransitions() int { return len(n.trans) }
func (n *memNode) TransitionAt(i int) (byte, uint64, uint64) {
	t := n.trans[i]
	return t.b, t.addr, t.output
}

type memFST struct {
	nodes []*memNode
}

func (f *memFST) Root() (Node, error) { return f.nodes[0], nil }

func (f *memFST) StateAt(addr uint64) (Node, error) { return f.nodes[addr], nil }

// newTestFST builds a minimal trie for the keys "ab" (value 1) and "ac"
// (value 2), sharing the "a" prefix node, transitions in ascending byte
// order as Stream requires.
func newTestFST() *memFST {
	nodes := make([]*memNode, 4)
	nodes[1] = &memNode{final: true} // "ab"
	nodes[2] = &memNode{final: true} // "ac"
	nodes[3] = &memNode{trans: []memTrans{ // "a" node
		{b: 'b', addr: 1, output: 1},
		{b: 'c', addr: 2, output: 2},
	}}
	nodes[0] = &memNode{trans: []memTrans{{b: 'a', addr: 3, output: 0}}} // root
	return &memFST{nodes: nodes}
}

// alwaysMatchDFA never prunes and always matches.
type alwaysMatchDFA struct{}

func (alwaysMatchDFA) Start() int               { return 0 }
func (alwaysMatchDFA) IsMatch(int) bool         { return true }
func (alwaysMatchDFA) CanMatch(int) bool        { return true }
func (alwaysMatchDFA) WillAlwaysMatch(int) bool { return true }
func (alwaysMatchDFA) Accept(int, byte) int     { return 0 }

func TestStreamEmitsAllKeysInLexOrder(t *testing.T) {
	fst := newTestFST()
	st, err := New[int](fst, alwaysMatchDFA{})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	var vals []uint64
	for {
		k, v, ok, err := st.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		got = append(got, string(k))
		vals = append(vals, v)
	}
	if len(got) != 2 || got[0] != "ab" || got[1] != "ac" {
		t.Fatalf("expected [ab ac] in lex order, got %v", got)
	}
	if vals[0] != 1 || vals[1] != 2 {
		t.Fatalf("expected values [1 2], got %v", vals)
	}
}

// prefixOnlyDFA matches only the path "ab" (i.e. prunes "ac").
type prefixOnlyDFA struct{}

func (prefixOnlyDFA) Start() int               { return 0 }
func (prefixOnlyDFA) IsMatch(s int) bool       { return s == 2 }
func (prefixOnlyDFA) CanMatch(s int) bool      { return s >= 0 }
func (prefixOnlyDFA) WillAlwaysMatch(int) bool { return false }
func (prefixOnlyDFA) Accept(s int, b byte) int {
	switch {
	case s == 0 && b == 'a':
		return 1
	case s == 1 && b == 'b':
		return 2
	default:
		return -1
	}
}

func TestStreamPrunesDeadSubtrees(t *testing.T) {
	fst := newTestFST()
	st, err := New[int](fst, prefixOnlyDFA{})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for {
		k, _, ok, err := st.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		got = append(got, string(k))
	}
	if len(got) != 1 || got[0] != "ab" {
		t.Fatalf("expected only [ab], got %v", got)
	}
}

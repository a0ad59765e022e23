package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coregx/fuzzyfst/config"
	"github.com/coregx/fuzzyfst/fstwalk"
	"github.com/coregx/fuzzyfst/transducer"
)

type stubNode struct{ final bool }

func (n stubNode) Final() bool                             { return n.final }
func (n stubNode) FinalOutput() uint64                     { return 0 }
func (n stubNode) NumTransitions() int                     { return 0 }
func (n stubNode) TransitionAt(int) (byte, uint64, uint64) { return 0, 0, 0 }

type stubFST struct{}

func (stubFST) Root() (fstwalk.Node, error)          { return stubNode{final: true}, nil }
func (stubFST) StateAt(uint64) (fstwalk.Node, error) { return stubNode{}, nil }

const fixtureYAML = `
profiles:
  typo-tolerant:
    threshold: 2
    beam_size: 128
`

// stubTransducer never reports any transitions; it only needs to satisfy
// transducer.Transducer so Cache.Transducer can be exercised without a real
// backend.
type stubTransducer struct{}

func (stubTransducer) Step(uint64, []byte) []transducer.Transition { return nil }
func (stubTransducer) IsFinal(uint64) bool                         { return false }

func TestCacheLevenshteinUsesNamedProfile(t *testing.T) {
	profiles, err := config.Load(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	cache := NewCache(profiles)
	m, err := cache.Levenshtein(stubFST{}, "typo-tolerant", "hello")
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestCacheLevenshteinUnknownProfile(t *testing.T) {
	profiles, err := config.Load(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	cache := NewCache(profiles)
	_, err = cache.Levenshtein(stubFST{}, "does-not-exist", "hello")
	require.Error(t, err)
}

func TestCacheTransducerUsesNamedProfile(t *testing.T) {
	profiles, err := config.Load(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	cache := NewCache(profiles)
	m, err := cache.Transducer(stubFST{}, stubTransducer{}, "typo-tolerant")
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestCacheTransducerUnknownProfile(t *testing.T) {
	profiles, err := config.Load(strings.NewReader(fixtureYAML))
	require.NoError(t, err)

	cache := NewCache(profiles)
	_, err = cache.Transducer(stubFST{}, stubTransducer{}, "does-not-exist")
	require.Error(t, err)
}

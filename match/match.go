// Package match wires the automaton adapters together into two terminal
// matchers: a pure Levenshtein fuzzy matcher and a weighted-transducer fuzzy
// matcher, each composed down to a single byte-level automaton.DFA driving
// an fstwalk.Stream over a caller-supplied FST. GetWeight on each matcher
// recovers the minimum accumulated cost among a matched result's surviving
// frontier states.
package match

import (
	"math"

	"github.com/coregx/fuzzyfst/automaton"
	"github.com/coregx/fuzzyfst/beam"
	"github.com/coregx/fuzzyfst/fstwalk"
	"github.com/coregx/fuzzyfst/levenshtein"
	"github.com/coregx/fuzzyfst/transducer"
	"github.com/coregx/fuzzyfst/utf8dfa"
)

// levenshteinFrontier is the beam-bounded frontier of Levenshtein NFA
// states a LevenshteinMatcher's composed automaton tracks per rune.
type levenshteinFrontier = []beam.StateWeight[levenshtein.State]

// LevenshteinState is the byte-level DFA state a LevenshteinMatcher drives:
// a UTF-8 decode buffer wrapping the beam-bounded Levenshtein NFA frontier.
type LevenshteinState = utf8dfa.State[levenshteinFrontier]

// LevenshteinMatcher matches dictionary keys within threshold edits of
// query, via Levenshtein NFA -> beam search -> UTF-8 byte lifting composed
// into a single automaton.DFA[LevenshteinState, byte].
type LevenshteinMatcher struct {
	fst fstwalk.FST
	nfa *levenshtein.NFA
	dfa *utf8dfa.Adapter[levenshteinFrontier]
}

// NewLevenshtein returns a matcher over fst for query, approximated by a
// beam of at most beamSize states at any edit cost up to threshold.
func NewLevenshtein(fst fstwalk.FST, query string, threshold float64, beamSize int) *LevenshteinMatcher {
	nfa := levenshtein.New(query)
	b := beam.New[levenshtein.State, rune](nfa, threshold, beamSize)
	return &LevenshteinMatcher{fst: fst, nfa: nfa, dfa: utf8dfa.New[levenshteinFrontier](b)}
}

// Stream starts a fresh traversal of the matcher's FST.
func (m *LevenshteinMatcher) Stream() (*fstwalk.Stream[LevenshteinState], error) {
	return fstwalk.New[LevenshteinState](m.fst, m.dfa)
}

// GetWeight replays result through the matcher's composed automaton and
// returns the cheapest edit cost among frontier members that ended up
// matching, or ok == false if result doesn't match at all.
func (m *LevenshteinMatcher) GetWeight(result []byte) (cost float64, ok bool) {
	state := m.dfa.Start()
	for _, b := range result {
		state = m.dfa.Accept(state, b)
	}
	return minMatchingWeight(m.nfa, state.Inner)
}

// TransducerState is the byte-level DFA state a TransducerMatcher drives:
// the beam-bounded frontier of the wrapped weighted error transducer.
type TransducerState = []beam.StateWeight[transducer.State]

// TransducerMatcher matches dictionary keys against an external weighted
// error transducer, via transducer NFA -> epsilon-closure beam search
// composed into a single automaton.DFA[TransducerState, byte].
type TransducerMatcher struct {
	fst     fstwalk.FST
	nfa     *transducer.NFA
	adapter *beam.EpsilonAdapter[transducer.State, byte]
}

// NewTransducer returns a matcher over fst driven by t, approximated by a
// beam of at most beamSize states at any weight up to threshold.
func NewTransducer(fst fstwalk.FST, t transducer.Transducer, threshold float64, beamSize int) *TransducerMatcher {
	nfa := transducer.New(t)
	return &TransducerMatcher{
		fst:     fst,
		nfa:     nfa,
		adapter: beam.NewEpsilon[transducer.State, byte](nfa, threshold, beamSize),
	}
}

// Stream starts a fresh traversal of the matcher's FST.
func (m *TransducerMatcher) Stream() (*fstwalk.Stream[TransducerState], error) {
	return fstwalk.New[TransducerState](m.fst, m.adapter)
}

// GetWeight replays result through the matcher's composed automaton and
// returns the cheapest weight among frontier members that ended up
// matching, or ok == false if result doesn't match at all.
func (m *TransducerMatcher) GetWeight(result []byte) (cost float64, ok bool) {
	state := m.adapter.Start()
	for _, b := range result {
		state = m.adapter.Accept(state, b)
	}
	return minMatchingWeight(m.nfa, state)
}

// minMatchingWeight is the shared core of both GetWeight implementations:
// the minimum weight among frontier entries the underlying NFA considers a
// match.
func minMatchingWeight[S any, In any](nfa automaton.WeightedNFA[S, In], frontier []beam.StateWeight[S]) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, sw := range frontier {
		if nfa.IsMatch(sw.State) && (!found || sw.Weight < best) {
			best = sw.Weight
			found = true
		}
	}
	return best, found
}

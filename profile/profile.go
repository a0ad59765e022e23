// Package profile builds matchers from named config.Profiles: a thin cache
// so a long-lived process loads its profile set once and hands out
// matchers per query without re-parsing YAML or re-validating tunables
// each time.
package profile

import (
	"github.com/coregx/fuzzyfst/config"
	"github.com/coregx/fuzzyfst/fstwalk"
	"github.com/coregx/fuzzyfst/match"
	"github.com/coregx/fuzzyfst/transducer"
)

// Cache hands out matchers built from a fixed set of named profiles.
type Cache struct {
	profiles config.Profiles
}

// NewCache returns a Cache over profiles.
func NewCache(profiles config.Profiles) *Cache {
	return &Cache{profiles: profiles}
}

// Levenshtein builds a match.LevenshteinMatcher for query over fst, tuned
// by the named profile.
func (c *Cache) Levenshtein(fst fstwalk.FST, profileName, query string) (*match.LevenshteinMatcher, error) {
	cfg, err := c.profiles.Get(profileName)
	if err != nil {
		return nil, err
	}
	return match.NewLevenshtein(fst, query, cfg.Threshold, cfg.BeamSize), nil
}

// Transducer builds a match.TransducerMatcher over fst and t, tuned by the
// named profile.
func (c *Cache) Transducer(fst fstwalk.FST, t transducer.Transducer, profileName string) (*match.TransducerMatcher, error) {
	cfg, err := c.profiles.Get(profileName)
	if err != nil {
		return nil, err
	}
	return match.NewTransducer(fst, t, cfg.Threshold, cfg.BeamSize), nil
}

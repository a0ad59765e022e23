package config

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Profiles is a named set of matcher Configs, typically loaded once at
// startup from a deployment's saved search-tuning presets.
type Profiles map[string]Config

type profileDoc struct {
	Threshold float64 `yaml:"threshold"`
	BeamSize  int     `yaml:"beam_size"`
}

type fileDoc struct {
	Profiles map[string]profileDoc `yaml:"profiles"`
}

// Load parses a YAML document of the form:
//
//	profiles:
//	  typo-tolerant:
//	    threshold: 2
//	    beam_size: 128
//	  strict:
//	    threshold: 0
//	    beam_size: 16
//
// Every profile is validated before Load returns; the first invalid one
// fails the whole load rather than silently dropping it.
func Load(r io.Reader) (Profiles, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &ConfigError{Kind: InvalidYAML, Err: err}
	}

	profiles := make(Profiles, len(doc.Profiles))
	for name, p := range doc.Profiles {
		cfg := Config{Threshold: p.Threshold, BeamSize: p.BeamSize}
		if err := cfg.Validate(); err != nil {
			if ce, ok := err.(*ConfigError); ok {
				ce.Profile = name
			}
			return nil, err
		}
		profiles[name] = cfg
	}
	return profiles, nil
}

// Get returns the named profile, or ErrProfileNotFound if it isn't present.
func (p Profiles) Get(name string) (Config, error) {
	cfg, ok := p[name]
	if !ok {
		return Config{}, &ConfigError{Kind: ProfileNotFound, Profile: name}
	}
	return cfg, nil
}

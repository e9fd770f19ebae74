package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/matching"
	"github.com/dkowalik/spamatch/model"
)

// Config holds the three caller-controlled decisions spec.md §9 flags as
// Open Questions, with the spec's own stated defaults.
type Config struct {
	// StrictPreferenceLength enforces exactly model.MaxPreferences
	// preferences per student (spec.md §9 Q2). Default: false.
	StrictPreferenceLength bool `yaml:"strict_preference_length"`

	// AllowReproposalOnEviction selects the non-default retry-on-eviction
	// mode (spec.md §9 Q1). Default: false.
	AllowReproposalOnEviction bool `yaml:"allow_reproposal_on_eviction"`

	// ProgramPrefixTable overrides the normalized leading-run inference for
	// specific tags (spec.md §9 Q3). Keys may use '_' or '+': GrammarOptions
	// normalizes them ('_' -> '+') before building the inferrer.
	ProgramPrefixTable map[string]string `yaml:"program_prefix_table"`
}

// Default returns the spec's stated defaults: non-strict preference length,
// no reproposal on eviction, and no prefix table overrides.
func Default() Config {
	return Config{}
}

// Load reads and parses a YAML configuration file at path. A missing file
// is not an error: Default is returned unchanged, matching the CLI's "config
// file is optional" contract.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// GrammarOptions translates Config into the grammar package's functional
// options.
func (c Config) GrammarOptions() []grammar.Option {
	opts := []grammar.Option{grammar.WithStrictPreferenceLength(c.StrictPreferenceLength)}

	if len(c.ProgramPrefixTable) > 0 {
		table := make(map[string]model.Program, len(c.ProgramPrefixTable))
		for tag, program := range c.ProgramPrefixTable {
			table[grammar.NormalizeProgramTag(tag)] = model.Program(program)
		}
		opts = append(opts, grammar.WithProgramInferrer(grammar.PrefixTableInferrer{Table: table}))
	}

	return opts
}

// MatchingOptions translates Config into the matching package's functional
// options.
func (c Config) MatchingOptions() []matching.Option {
	return []matching.Option{matching.WithAllowReproposalOnEviction(c.AllowReproposalOnEviction)}
}

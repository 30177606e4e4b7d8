// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the crffeat command.
//
//	labels: [O, PER, LOC]        # label names; a label's id is its index
//	start_labels: [O, PER, LOC]  # optional, default: every label
//	end_labels: [O]              # optional, default: every label
//	kinds: [edge, start, end, word, unknown]
//	max_memory: 1
//	rare_threshold: 1
//	workers: 4
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnknownLabel indicates a start or end label missing from labels.
var ErrUnknownLabel = errors.New("config: start/end label not in labels")

// Config is the crffeat configuration.
type Config struct {
	Labels        []string `yaml:"labels" validate:"min=1,unique,dive,required"`
	StartLabels   []string `yaml:"start_labels" validate:"unique"`
	EndLabels     []string `yaml:"end_labels" validate:"unique"`
	Kinds         []string `yaml:"kinds" validate:"min=1,unique,dive,oneof=edge observed_edge start end word unknown"`
	MaxMemory     int      `yaml:"max_memory" validate:"min=1,max=64"`
	RareThreshold int      `yaml:"rare_threshold" validate:"min=0"`
	Workers       int      `yaml:"workers" validate:"min=1"`
	LogLevel      string   `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used for absent keys.
func Default() Config {
	return Config{
		Kinds:         []string{"edge", "start", "end", "word", "unknown"},
		MaxMemory:     1,
		RareThreshold: 1,
		Workers:       1,
		LogLevel:      "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Validate checks field constraints and label references.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	known := make(map[string]bool, len(c.Labels))
	for _, l := range c.Labels {
		known[l] = true
	}
	for _, l := range append(append([]string(nil), c.StartLabels...), c.EndLabels...) {
		if !known[l] {
			return fmt.Errorf("%w: %q", ErrUnknownLabel, l)
		}
	}

	return nil
}

// LabelIDs maps label names to their ids.
func (c Config) LabelIDs(names []string) []int {
	index := make(map[string]int, len(c.Labels))
	for i, l := range c.Labels {
		index[l] = i
	}
	ids := make([]int, 0, len(names))
	for _, n := range names {
		ids = append(ids, index[n])
	}

	return ids
}

// SlogLevel converts LogLevel for log/slog.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

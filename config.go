// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/viya-pdf-filter/logger"
	"gopkg.in/yaml.v3"
)

type Config struct {
	MaxWorkers     int            `yaml:"max_workers" validate:"min=1,max=64"`
	MaxOutputBytes int64          `yaml:"max_output_bytes" validate:"min=0"`
	JobTimeout     time.Duration  `yaml:"job_timeout" validate:"gte=0"`
	DebugOn        bool           `yaml:"debug"`
	// Logger replaces the process-wide logger when a Decoder is created, so
	// the most recently created Decoder decides where every Decoder logs.
	Logger         logger.LogFunc `yaml:"-"`
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxWorkers:     4,
		MaxOutputBytes: 0,
		JobTimeout:     0,
		DebugOn:        false,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}

// LoadConfig reads a YAML config on top of the defaults. An empty document
// yields the defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := NewDefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

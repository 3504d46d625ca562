// SPDX-License-Identifier: MIT
// Package: base-custom/converter
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • delimiter = none
//   • logger    = zerolog.Nop()

package converter

import "github.com/rs/zerolog"

// converterConfig aggregates all constructor knobs.
type converterConfig struct {
	delim    rune
	hasDelim bool
	logger   zerolog.Logger
}

// newConverterConfig applies opts in order over the defaults; later options
// override earlier ones. Nil options are skipped.
func newConverterConfig(opts ...Option) converterConfig {
	cfg := converterConfig{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// reject logs a failed construction and returns err wrapped with method.
func (cfg converterConfig) reject(method string, err error) error {
	err = wrapf(method, err)
	cfg.logger.Debug().Err(err).Msg("converter rejected")

	return err
}

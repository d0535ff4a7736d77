//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"github.com/BurntSushi/toml"

	"github.com/markkurossi/aig/rewrite"
)

// Config is the aigopt configuration file format.
type Config struct {
	Rewrite RewriteConfig `toml:"rewrite"`
}

// RewriteConfig configures the rewrite engine.
type RewriteConfig struct {
	MaxPasses        int  `toml:"max-passes"`
	Associativity    bool `toml:"associativity"`
	Distributivity   bool `toml:"distributivity"`
	Distributivity3L bool `toml:"distributivity-3l"`
}

// loadParams returns rewrite params: the defaults, overridden by the
// TOML configuration file path when it is non-empty.
func loadParams(path string) (*rewrite.Params, error) {
	params := rewrite.NewParams()
	if path == "" {
		return params, nil
	}
	cfg := Config{
		Rewrite: RewriteConfig{
			MaxPasses:        params.MaxPasses,
			Associativity:    params.Associativity,
			Distributivity:   params.Distributivity,
			Distributivity3L: params.Distributivity3L,
		},
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	params.MaxPasses = cfg.Rewrite.MaxPasses
	params.Associativity = cfg.Rewrite.Associativity
	params.Distributivity = cfg.Rewrite.Distributivity
	params.Distributivity3L = cfg.Rewrite.Distributivity3L
	return params, nil
}

// Copyright 2024 The Geotools Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config resolves the translator's single external knob — the
// combination cap — from an optional TOML file plus an environment
// override (spec §6, §9's "no global mutable configuration read inside the
// core" note). Load is meant to be called once by the embedding process,
// never by the core packages themselves.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/baylisscg/geotools/combine"
)

// EnvMaxCombinations is the environment variable that overrides the
// configured (or default) combination cap.
const EnvMaxCombinations = "CASCADE_MAX_COMBINATIONS"

// Config is the translator's resolved external configuration.
type Config struct {
	MaxCombinations int `toml:"max_combinations"`
}

// Default returns the configuration the translator uses when no file or
// environment override is supplied.
func Default() Config {
	return Config{MaxCombinations: combine.DefaultMaxCombinations}
}

// Load reads an optional TOML file at path (ignored if empty or absent),
// then applies EnvMaxCombinations if set, returning the resolved Config.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	if raw, ok := os.LookupEnv(EnvMaxCombinations); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxCombinations = n
	}

	return cfg, nil
}

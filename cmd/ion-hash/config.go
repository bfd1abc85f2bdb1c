// Copyright 2026 Blink Labs Software
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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"github.com/blinklabs-io/ionhash/hasher"
)

type Config struct {
	Algorithm    string `yaml:"algorithm"`
	Format       string `yaml:"format"`
	Input        string `yaml:"input"`
	Compression  string `yaml:"compression"`
	Bech32Prefix string `yaml:"bech32_prefix"`
	LogLevel     string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Algorithm:    hasher.DefaultAlgorithm,
		Format:       formatHex,
		Compression:  compressionAuto,
		Bech32Prefix: "ionhash",
		LogLevel:     "warn",
	}
}

// LoadConfig returns the defaults overlaid with any non-empty values from the
// YAML file at path. An empty path returns the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := copier.CopyWithOption(&cfg, &fileCfg, copier.Option{IgnoreEmpty: true}); err != nil {
		return cfg, fmt.Errorf("merging config: %w", err)
	}
	return cfg, nil
}

// Validate normalizes the config and rejects unknown values
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	c.Input = strings.ToLower(c.Input)
	c.Compression = strings.ToLower(c.Compression)
	switch c.Format {
	case formatHex, formatBase64, formatBech32:
	default:
		return fmt.Errorf("unknown output format: %q", c.Format)
	}
	switch c.Input {
	case "", inputCBOR, inputJSON, inputJSONC:
	default:
		return fmt.Errorf("unknown input format: %q", c.Input)
	}
	switch c.Compression {
	case compressionNone, compressionAuto, compressionGzip, compressionZstd, compressionLZ4:
	default:
		return fmt.Errorf("unknown compression: %q", c.Compression)
	}
	if c.Format == formatBech32 && c.Bech32Prefix == "" {
		return fmt.Errorf("bech32 output requires a prefix")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	return level, nil
}

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

// ion-hash prints the Ion hash of a CBOR, JSON or JSONC document
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/blinklabs-io/ionhash"
	"github.com/blinklabs-io/ionhash/hasher"
	"github.com/blinklabs-io/ionhash/ion"
)

type globalFlags struct {
	flagset        *pflag.FlagSet
	configFile     string
	algorithm      string
	input          string
	compression    string
	format         string
	bech32Prefix   string
	logLevel       string
	dump           bool
	listAlgorithms bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: pflag.NewFlagSet("ion-hash", pflag.ContinueOnError),
	}
	defaults := DefaultConfig()
	f.flagset.StringVar(&f.configFile, "config", "", "path to YAML config file")
	f.flagset.StringVarP(
		&f.algorithm,
		"algorithm",
		"a",
		defaults.Algorithm,
		"hash algorithm (see --list-algorithms)",
	)
	f.flagset.StringVarP(
		&f.input,
		"input",
		"i",
		defaults.Input,
		"input format: cbor, json or jsonc (defaults from file extension)",
	)
	f.flagset.StringVar(
		&f.compression,
		"compression",
		defaults.Compression,
		"input compression: none, gzip, zstd, lz4 or auto",
	)
	f.flagset.StringVarP(
		&f.format,
		"format",
		"f",
		defaults.Format,
		"output format: hex, base64 or bech32",
	)
	f.flagset.StringVar(
		&f.bech32Prefix,
		"bech32-prefix",
		defaults.Bech32Prefix,
		"human readable prefix for bech32 output",
	)
	f.flagset.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "log level")
	f.flagset.BoolVar(&f.dump, "dump", false, "print the decoded value before its digest")
	f.flagset.BoolVar(&f.listAlgorithms, "list-algorithms", false, "list hash algorithms and exit")
	return f
}

// config layers defaults, the config file and explicitly set flags
func (f *globalFlags) config() (Config, error) {
	cfg, err := LoadConfig(f.configFile)
	if err != nil {
		return cfg, err
	}
	overrides := map[string]*string{
		"algorithm":     &cfg.Algorithm,
		"input":         &cfg.Input,
		"compression":   &cfg.Compression,
		"format":        &cfg.Format,
		"bech32-prefix": &cfg.Bech32Prefix,
		"log-level":     &cfg.LogLevel,
	}
	for name, dest := range overrides {
		if f.flagset.Changed(name) {
			value, err := f.flagset.GetString(name)
			if err != nil {
				return cfg, err
			}
			*dest = value
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	f := newGlobalFlags()
	f.flagset.SetOutput(stderr)
	if err := f.flagset.Parse(args); err != nil {
		return err
	}
	if f.listAlgorithms {
		for _, name := range hasher.Algorithms() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}
	cfg, err := f.config()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var r io.Reader
	name := "-"
	switch f.flagset.NArg() {
	case 0:
		r = stdin
	case 1:
		name = f.flagset.Arg(0)
		if name == "-" {
			r = stdin
			break
		}
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	default:
		return fmt.Errorf("expected at most one input file, got %d", f.flagset.NArg())
	}

	format := cfg.Input
	if format == "" {
		format = inputFormat(name)
	}
	compression := cfg.Compression
	if compression == compressionAuto && name != "-" {
		if ext, ok := compressionExtensions[extension(name)]; ok {
			compression = ext
		}
	}
	r, closeInput, err := decompress(r, compression)
	if err != nil {
		return err
	}
	defer closeInput()
	logger.Debug(
		"hashing input",
		"name",
		name,
		"format",
		format,
		"compression",
		compression,
		"algorithm",
		cfg.Algorithm,
	)

	b, err := ionhash.NewBuilder(
		ionhash.WithAlgorithm(cfg.Algorithm),
		ionhash.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if f.dump {
		v, err := decodeInput(r, format)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Fprint(stdout, ion.Dump(v, ""))
		if err := b.WriteValue(v); err != nil {
			return err
		}
	} else if err := streamInput(b, r, format); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	digest, err := b.Digest()
	if err != nil {
		return err
	}
	out, err := formatDigest(digest, cfg.Format, cfg.Bech32Prefix)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, out)
	return nil
}

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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/blinklabs-io/ionhash/cbor"
	"github.com/blinklabs-io/ionhash/ion"
	"github.com/blinklabs-io/ionhash/jsonstream"
)

const (
	inputCBOR  = "cbor"
	inputJSON  = "json"
	inputJSONC = "jsonc"

	compressionNone = "none"
	compressionAuto = "auto"
	compressionGzip = "gzip"
	compressionZstd = "zstd"
	compressionLZ4  = "lz4"
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

var compressionExtensions = map[string]string{
	".gz":  compressionGzip,
	".zst": compressionZstd,
	".lz4": compressionLZ4,
}

// inputFormat picks the input format from the file name, ignoring any
// compression extension. Standard input and unknown extensions are JSON
func inputFormat(name string) string {
	ext := extension(name)
	if _, ok := compressionExtensions[ext]; ok {
		ext = extension(strings.TrimSuffix(name, filepath.Ext(name)))
	}
	switch ext {
	case ".cbor":
		return inputCBOR
	case ".jsonc":
		return inputJSONC
	default:
		return inputJSON
	}
}

func extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// detectCompression identifies a compressed stream by its magic bytes
func detectCompression(header []byte) string {
	switch {
	case bytes.HasPrefix(header, magicGzip):
		return compressionGzip
	case bytes.HasPrefix(header, magicZstd):
		return compressionZstd
	case bytes.HasPrefix(header, magicLZ4):
		return compressionLZ4
	default:
		return compressionNone
	}
}

// decompress wraps r according to compression. The returned close function
// releases decoder resources and must always be called
func decompress(r io.Reader, compression string) (io.Reader, func(), error) {
	noop := func() {}
	if compression == compressionAuto {
		br := bufio.NewReader(r)
		// A short read only means the input is smaller than the magic
		header, _ := br.Peek(len(magicZstd))
		compression = detectCompression(header)
		r = br
	}
	switch compression {
	case compressionNone:
		return r, noop, nil
	case compressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, fmt.Errorf("gzip: %w", err)
		}
		return zr, func() { _ = zr.Close() }, nil
	case compressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, noop, fmt.Errorf("zstd: %w", err)
		}
		return zr, zr.Close, nil
	case compressionLZ4:
		return lz4.NewReader(r), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown compression: %q", compression)
	}
}

// streamInput emits the single value in r into sink
func streamInput(sink ion.Sink, r io.Reader, format string) error {
	switch format {
	case inputCBOR:
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return cbor.Stream(sink, data)
	case inputJSONC:
		return jsonstream.StreamJSONC(sink, r)
	default:
		return jsonstream.Stream(sink, r)
	}
}

// decodeInput materializes the single value in r
func decodeInput(r io.Reader, format string) (*ion.Value, error) {
	tree := ion.NewTree()
	if err := streamInput(tree, r, format); err != nil {
		return nil, err
	}
	return tree.Value()
}

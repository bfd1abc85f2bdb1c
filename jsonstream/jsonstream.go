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

// Package jsonstream feeds JSON documents into an ion.Sink one token at a time,
// so arbitrarily large documents can be hashed without building a tree.
//
// Objects become structs, arrays become lists and strings become strings.
// Numbers keep their exact text: integers become ints, numbers with a fraction
// become decimals and numbers with an exponent become floats.
package jsonstream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/blinklabs-io/ionhash/ion"
)

// MaxDepth is the deepest nesting of objects and arrays accepted
const MaxDepth = 1000

var (
	ErrTrailingData = errors.New("unexpected data after JSON value")
	ErrTooDeep      = errors.New("JSON nesting too deep")
	ErrSyntax       = errors.New("invalid JSON")
)

// Stream reads exactly one JSON value from r and emits it into sink. Errors
// returned by the sink are passed through unchanged
func Stream(sink ion.Sink, r io.Reader) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	s := &streamer{dec: dec, sink: sink}
	tok, err := s.token()
	if err != nil {
		return err
	}
	if err := s.value(tok, 0); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// StreamJSONC strips comments and trailing commas before streaming
func StreamJSONC(sink ion.Sink, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return Stream(sink, bytes.NewReader(jsonc.ToJSON(data)))
}

// Decode reads exactly one JSON value from r into a materialized Ion value
func Decode(r io.Reader) (*ion.Value, error) {
	tree := ion.NewTree()
	if err := Stream(tree, r); err != nil {
		return nil, err
	}
	return tree.Value()
}

// DecodeJSONC is Decode for JSON with comments and trailing commas
func DecodeJSONC(r io.Reader) (*ion.Value, error) {
	tree := ion.NewTree()
	if err := StreamJSONC(tree, r); err != nil {
		return nil, err
	}
	return tree.Value()
}

type streamer struct {
	dec  *json.Decoder
	sink ion.Sink
}

func (s *streamer) token() (json.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return tok, nil
}

func (s *streamer) value(tok json.Token, depth int) error {
	switch v := tok.(type) {
	case json.Delim:
		if depth >= MaxDepth {
			return ErrTooDeep
		}
		switch v {
		case '{':
			return s.object(depth + 1)
		case '[':
			return s.array(depth + 1)
		default:
			return fmt.Errorf("%w: unexpected %q", ErrSyntax, v)
		}
	case string:
		return s.sink.WriteScalar(ion.String(v))
	case json.Number:
		num, err := number(v.String())
		if err != nil {
			return err
		}
		return s.sink.WriteScalar(num)
	case bool:
		return s.sink.WriteScalar(ion.Bool(v))
	case nil:
		return s.sink.WriteScalar(ion.Null(ion.NullType))
	default:
		return fmt.Errorf("%w: unexpected token %v", ErrSyntax, tok)
	}
}

func (s *streamer) object(depth int) error {
	if err := s.sink.StepIn(ion.StructType); err != nil {
		return err
	}
	for s.dec.More() {
		tok, err := s.token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: object key %v is not a string", ErrSyntax, tok)
		}
		if err := s.sink.SetFieldName(name); err != nil {
			return err
		}
		tok, err = s.token()
		if err != nil {
			return err
		}
		if err := s.value(tok, depth); err != nil {
			return err
		}
	}
	// Closing brace
	if _, err := s.token(); err != nil {
		return err
	}
	return s.sink.StepOut()
}

func (s *streamer) array(depth int) error {
	if err := s.sink.StepIn(ion.ListType); err != nil {
		return err
	}
	for s.dec.More() {
		tok, err := s.token()
		if err != nil {
			return err
		}
		if err := s.value(tok, depth); err != nil {
			return err
		}
	}
	// Closing bracket
	if _, err := s.token(); err != nil {
		return err
	}
	return s.sink.StepOut()
}

// number converts JSON number text without losing precision where Ion can
// represent it exactly
func number(text string) (*ion.Value, error) {
	if strings.ContainsAny(text, "eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %w", ErrSyntax, text, err)
		}
		return ion.Float(f), nil
	}
	if strings.Contains(text, ".") {
		d, err := ion.ParseDecimal(text)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %w", ErrSyntax, text, err)
		}
		return ion.NewDecimalValue(d), nil
	}
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: number %s", ErrSyntax, text)
	}
	return ion.BigInt(i), nil
}

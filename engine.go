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

package ionhash

import (
	"bytes"
	"slices"

	"github.com/blinklabs-io/ionhash/hasher"
	"github.com/blinklabs-io/ionhash/ion"
)

// ValueWriter supplies the canonical body bytes of scalar values. Bodies must
// be deterministic and must not include annotations
type ValueWriter interface {
	Body(v *ion.Value) ([]byte, error)
}

// engine composes digests. Every hash it computes runs to completion before the
// next one starts, so a single provider serves the whole computation
type engine struct {
	provider hasher.Provider
	writer   ValueWriter
}

func (e *engine) hash(parts ...[]byte) []byte {
	return hasher.Sum(e.provider, parts...)
}

// frameScalar returns the framed bytes of a scalar or of a null of any type
func (e *engine) frameScalar(v *ion.Value) ([]byte, error) {
	if v.IsNull() {
		tag, err := NewTag(v.Type(), QualifierNull)
		if err != nil {
			return nil, err
		}
		return Frame(tag, nil), nil
	}
	tag, err := NewTag(v.Type(), QualifierBody)
	if err != nil {
		return nil, err
	}
	body, err := e.writer.Body(v)
	if err != nil {
		return nil, UnsupportedValueError{
			Type:      v.Type(),
			Qualifier: QualifierBody,
			Err:       err,
		}
	}
	return Frame(tag, body), nil
}

// frameSymbol frames text as a symbol. Field names and annotations are framed this way
func (e *engine) frameSymbol(text string) ([]byte, error) {
	return e.frameScalar(ion.Symbol(text))
}

// frameOrdered frames a list or sexp from its child digests in write order
func (e *engine) frameOrdered(t ion.Type, childDigests [][]byte) ([]byte, error) {
	tag, err := NewTag(t, QualifierDigests)
	if err != nil {
		return nil, err
	}
	return Frame(tag, bytes.Join(childDigests, nil)), nil
}

// frameKeyed frames a struct from its entry digests. The entries are sorted
// first, which makes the result independent of field order
func (e *engine) frameKeyed(entryDigests [][]byte) ([]byte, error) {
	tag, err := NewTag(ion.StructType, QualifierDigests)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(entryDigests)
	SortDigests(sorted)
	return Frame(tag, bytes.Join(sorted, nil)), nil
}

// entryDigest pairs a framed field name with the digest of its value
func (e *engine) entryDigest(fieldName []byte, valueDigest []byte) []byte {
	return e.hash(fieldName, valueDigest)
}

// digest hashes framed value bytes, wrapping them with their annotations first
// when there are any
func (e *engine) digest(framed []byte, annotations []string) ([]byte, error) {
	if len(annotations) == 0 {
		return e.hash(framed), nil
	}
	annotationDigests := make([][]byte, 0, len(annotations))
	for _, annotation := range annotations {
		symbol, err := e.frameSymbol(annotation)
		if err != nil {
			return nil, err
		}
		annotationDigests = append(annotationDigests, e.hash(symbol))
	}
	return e.hash(FrameAnnotated(annotationDigests, framed)), nil
}

// SortDigests sorts digests in place by raw byte value. This is the only
// ordering used for struct entries
func SortDigests(digests [][]byte) {
	slices.SortFunc(digests, bytes.Compare)
}

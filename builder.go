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
	"io"
	"log/slog"
	"math/big"

	"github.com/blinklabs-io/ionhash/hasher"
	"github.com/blinklabs-io/ionhash/ion"
)

var _ ion.Sink = (*Builder)(nil)

// frame is an open container on the builder stack
type frame struct {
	typ         ion.Type
	annotations []string
	// child digests for lists and sexps, entry digests for structs
	digests      [][]byte
	fieldName    []byte
	fieldNameSet bool
}

func (f *frame) keyed() bool {
	return f.typ == ion.StructType
}

// Builder computes the digest of a single value from a stream of write
// operations. Containers are tracked with an explicit stack, so no tree is
// ever materialized. A Builder is not safe for concurrent use
type Builder struct {
	algorithm   string
	engine      engine
	logger      *slog.Logger
	stack       []*frame
	annotations []string
	root        []byte
	roots       int
	consumed    bool
	err         error

	// set when the provider came from WithProvider rather than the registry
	externalProvider bool
}

// NewBuilder returns a new Builder with the specified options. The hash
// provider is constructed here, so an unknown algorithm fails before any write
func NewBuilder(opts ...BuilderOptionFunc) (*Builder, error) {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if b.engine.writer == nil {
		b.engine.writer = ion.NewWriter()
	}
	if b.engine.provider == nil {
		provider, err := hasher.New(b.algorithm)
		if err != nil {
			return nil, err
		}
		b.engine.provider = provider
	}
	b.engine.provider.Reset()
	return b, nil
}

// Algorithm returns the name of the hash algorithm in use
func (b *Builder) Algorithm() string {
	return b.engine.provider.Algorithm()
}

// Depth returns the number of open containers
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Reset returns the builder to its initial state, clearing any error
func (b *Builder) Reset() {
	b.stack = nil
	b.annotations = nil
	b.root = nil
	b.roots = 0
	b.consumed = false
	b.err = nil
	b.engine.provider.Reset()
}

// AddAnnotation queues an annotation for the next value written or container
// stepped into. Annotations apply in the order they are added
func (b *Builder) AddAnnotation(name string) error {
	if err := b.ready("AddAnnotation"); err != nil {
		return err
	}
	b.annotations = append(b.annotations, name)
	return nil
}

// SetFieldName sets the name of the next value inside a struct
func (b *Builder) SetFieldName(name string) error {
	const op = "SetFieldName"
	if err := b.ready(op); err != nil {
		return err
	}
	top := b.top()
	if top == nil || !top.keyed() {
		return b.fail(op, ProtocolError{Op: op, Reason: "not inside a struct"})
	}
	if top.fieldNameSet {
		return b.fail(op, ProtocolError{Op: op, Reason: "field name already set"})
	}
	framed, err := b.engine.frameSymbol(name)
	if err != nil {
		return b.fail(op, err)
	}
	top.fieldName = framed
	top.fieldNameSet = true
	return nil
}

// StepIn opens a container of the given type. Pending annotations apply to the
// container as a whole
func (b *Builder) StepIn(t ion.Type) error {
	const op = "StepIn"
	if err := b.ready(op); err != nil {
		return err
	}
	if !t.IsContainer() {
		return b.fail(op, UnsupportedValueError{
			Type:      t,
			Qualifier: QualifierDigests,
			Reason:    "not a container type",
		})
	}
	if err := b.checkFieldName(op); err != nil {
		return b.fail(op, err)
	}
	b.stack = append(b.stack, &frame{
		typ:         t,
		annotations: b.takeAnnotations(),
	})
	return nil
}

// StepOut closes the innermost container and folds its digest into the
// enclosing one
func (b *Builder) StepOut() error {
	const op = "StepOut"
	if err := b.ready(op); err != nil {
		return err
	}
	top := b.top()
	if top == nil {
		return b.fail(op, ProtocolError{Op: op, Reason: "no open container"})
	}
	if top.fieldNameSet {
		return b.fail(op, ProtocolError{Op: op, Reason: "field name set without a value"})
	}
	if len(b.annotations) > 0 {
		return b.fail(op, ProtocolError{Op: op, Reason: "annotations added without a value"})
	}
	b.stack = b.stack[:len(b.stack)-1]
	var framed []byte
	var err error
	if top.keyed() {
		framed, err = b.engine.frameKeyed(top.digests)
	} else {
		framed, err = b.engine.frameOrdered(top.typ, top.digests)
	}
	if err != nil {
		return b.fail(op, err)
	}
	digest, err := b.engine.digest(framed, top.annotations)
	if err != nil {
		return b.fail(op, err)
	}
	b.logger.Debug(
		"closed container",
		"type",
		top.typ.String(),
		"children",
		len(top.digests),
		"depth",
		len(b.stack),
	)
	b.fold(digest)
	return nil
}

func (b *Builder) WriteNull(t ion.Type) error {
	return b.writeScalar("WriteNull", ion.Null(t))
}

func (b *Builder) WriteBool(v bool) error {
	return b.writeScalar("WriteBool", ion.Bool(v))
}

func (b *Builder) WriteInt(v int64) error {
	return b.writeScalar("WriteInt", ion.Int(v))
}

// WriteBigInt writes an arbitrary precision int. A nil value writes null.int
func (b *Builder) WriteBigInt(v *big.Int) error {
	if v == nil {
		return b.writeScalar("WriteBigInt", ion.Null(ion.IntType))
	}
	return b.writeScalar("WriteBigInt", ion.BigInt(v))
}

func (b *Builder) WriteFloat(v float64) error {
	return b.writeScalar("WriteFloat", ion.Float(v))
}

// WriteFloat32 writes v widened to float64 through its shortest decimal text
func (b *Builder) WriteFloat32(v float32) error {
	return b.writeScalar("WriteFloat32", ion.Float32(v))
}

func (b *Builder) WriteDecimal(v ion.Decimal) error {
	return b.writeScalar("WriteDecimal", ion.NewDecimalValue(v))
}

func (b *Builder) WriteTimestamp(v ion.Timestamp) error {
	return b.writeScalar("WriteTimestamp", ion.NewTimestampValue(v))
}

func (b *Builder) WriteSymbol(v string) error {
	return b.writeScalar("WriteSymbol", ion.Symbol(v))
}

func (b *Builder) WriteString(v string) error {
	return b.writeScalar("WriteString", ion.String(v))
}

func (b *Builder) WriteClob(v []byte) error {
	return b.writeScalar("WriteClob", ion.Clob(v))
}

func (b *Builder) WriteBlob(v []byte) error {
	return b.writeScalar("WriteBlob", ion.Blob(v))
}

// WriteScalar writes a scalar or a null of any type. Annotations on the value
// follow any pending ones
func (b *Builder) WriteScalar(v *ion.Value) error {
	const op = "WriteScalar"
	if v == nil {
		if err := b.ready(op); err != nil {
			return err
		}
		return b.fail(op, UnsupportedValueError{Type: ion.NoType, Reason: "nil value"})
	}
	if v.Type().IsContainer() && !v.IsNull() {
		if err := b.ready(op); err != nil {
			return err
		}
		return b.fail(op, UnsupportedValueError{
			Type:      v.Type(),
			Qualifier: QualifierBody,
			Reason:    "containers are written with StepIn and StepOut",
		})
	}
	return b.writeScalar(op, v)
}

// WriteValue walks a materialized value depth-first, issuing the equivalent
// sequence of builder operations
func (b *Builder) WriteValue(v *ion.Value) error {
	if v == nil || v.IsNull() || !v.Type().IsContainer() {
		return b.WriteScalar(v)
	}
	for _, annotation := range v.Annotations() {
		if err := b.AddAnnotation(annotation); err != nil {
			return err
		}
	}
	if err := b.StepIn(v.Type()); err != nil {
		return err
	}
	if v.Type() == ion.StructType {
		for _, field := range v.Fields() {
			if err := b.SetFieldName(field.Name); err != nil {
				return err
			}
			if err := b.WriteValue(field.Value); err != nil {
				return err
			}
		}
	} else {
		for _, child := range v.Children() {
			if err := b.WriteValue(child); err != nil {
				return err
			}
		}
	}
	return b.StepOut()
}

// Digest returns the digest of the single top-level value written. The builder
// is consumed afterward and must be Reset before reuse
func (b *Builder) Digest() ([]byte, error) {
	if err := b.ready("Digest"); err != nil {
		return nil, err
	}
	if len(b.stack) > 0 || b.roots != 1 || len(b.annotations) > 0 {
		return nil, IncompleteStateError{
			Depth:              len(b.stack),
			Roots:              b.roots,
			PendingAnnotations: len(b.annotations),
		}
	}
	b.consumed = true
	return append([]byte{}, b.root...), nil
}

func (b *Builder) writeScalar(op string, v *ion.Value) error {
	if err := b.ready(op); err != nil {
		return err
	}
	if err := b.checkFieldName(op); err != nil {
		return b.fail(op, err)
	}
	framed, err := b.engine.frameScalar(v)
	if err != nil {
		return b.fail(op, err)
	}
	annotations := b.takeAnnotations()
	annotations = append(annotations, v.Annotations()...)
	digest, err := b.engine.digest(framed, annotations)
	if err != nil {
		return b.fail(op, err)
	}
	b.fold(digest)
	return nil
}

// fold places a finished value digest into the enclosing container, or records
// it as a top-level value
func (b *Builder) fold(digest []byte) {
	top := b.top()
	if top == nil {
		b.root = digest
		b.roots++
		return
	}
	if top.keyed() {
		top.digests = append(top.digests, b.engine.entryDigest(top.fieldName, digest))
		top.fieldName = nil
		top.fieldNameSet = false
		return
	}
	top.digests = append(top.digests, digest)
}

func (b *Builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) takeAnnotations() []string {
	ret := b.annotations
	b.annotations = nil
	return ret
}

func (b *Builder) checkFieldName(op string) error {
	top := b.top()
	if top != nil && top.keyed() && !top.fieldNameSet {
		return ProtocolError{Op: op, Reason: "value inside a struct without a field name"}
	}
	return nil
}

// ready returns the sticky error, if any, or a ProtocolError once the builder
// has been consumed by Digest
func (b *Builder) ready(op string) error {
	if b.err != nil {
		return b.err
	}
	if b.consumed {
		return ProtocolError{Op: op, Reason: "builder already consumed, call Reset"}
	}
	return nil
}

func (b *Builder) fail(op string, err error) error {
	b.err = err
	b.logger.Debug(
		"builder operation failed",
		"op",
		op,
		"depth",
		len(b.stack),
		"error",
		err,
	)
	return err
}

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
	"fmt"

	"github.com/blinklabs-io/ionhash/ion"
)

// Reserved framing bytes. None of them is a valid tag, and any occurrence
// inside a body is preceded by EscapeByte
const (
	BeginMarker byte = 0x0b
	EscapeByte  byte = 0x0c
	EndMarker   byte = 0x0e
)

// Qualifier distinguishes how a value's body is represented. It occupies the
// low nibble of a Tag
type Qualifier uint8

const (
	// QualifierBody marks a scalar whose body bytes follow inline
	QualifierBody Qualifier = 0x0
	// QualifierDigests marks a container whose body is a sequence of child digests
	QualifierDigests Qualifier = 0x1
	// QualifierNull marks a null of the given type, with an empty body
	QualifierNull Qualifier = 0xf
)

func (q Qualifier) String() string {
	switch q {
	case QualifierBody:
		return "body"
	case QualifierDigests:
		return "digests"
	case QualifierNull:
		return "null"
	default:
		return fmt.Sprintf("Qualifier(%d)", uint8(q))
	}
}

// Tag is the type-and-qualifier byte of a framed value: type code in the high
// nibble, qualifier in the low nibble
type Tag uint8

// AnnotationWrapperTag frames a value together with its annotations
const AnnotationWrapperTag Tag = Tag(ion.TypeCodeAnnotation << 4)

// NewTag returns the tag for a type and qualifier. Only these combinations are valid:
//
//	null.null             0x0f
//	scalar with body      T0
//	container of digests  T1
//	typed null            Tf
func NewTag(t ion.Type, q Qualifier) (Tag, error) {
	code, ok := t.TypeCode()
	if !ok {
		return 0, UnsupportedValueError{
			Type:      t,
			Qualifier: q,
			Reason:    "no type code",
		}
	}
	valid := false
	switch {
	case q == QualifierNull:
		valid = true
	case t == ion.NullType:
		valid = false
	case q == QualifierBody:
		valid = t.IsScalar()
	case q == QualifierDigests:
		valid = t.IsContainer()
	}
	if !valid {
		return 0, UnsupportedValueError{
			Type:      t,
			Qualifier: q,
			Reason:    fmt.Sprintf("qualifier %s is not valid for this type", q),
		}
	}
	return Tag(code<<4 | uint8(q)), nil
}

// TypeCode returns the type code stored in the tag
func (t Tag) TypeCode() uint8 {
	return uint8(t) >> 4
}

// Qualifier returns the qualifier stored in the tag
func (t Tag) Qualifier() Qualifier {
	return Qualifier(uint8(t) & 0x0f)
}

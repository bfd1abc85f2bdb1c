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

package ion

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var ErrNoBody = errors.New("value has no body representation")

const (
	canonicalNaN          uint64 = 0x7ff8000000000000
	canonicalNegativeZero uint64 = 0x8000000000000000
)

// Writer produces the canonical body bytes of scalar values. Bodies follow the
// Ion binary representation of each type without the type descriptor or length,
// and never include annotations. The same logical value always yields the same bytes
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Body returns the representation of a non-null scalar value
func (w *Writer) Body(v *Value) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrNoBody)
	}
	if v.isNull {
		return nil, fmt.Errorf("%w: null.%s", ErrNoBody, v.typ)
	}
	switch v.typ {
	case BoolType:
		if v.boolValue {
			return []byte{0x01}, nil
		}
		return []byte{0x00}, nil
	case IntType:
		return AppendBigInt(nil, v.intValue), nil
	case FloatType:
		return FloatBody(v.floatValue), nil
	case DecimalType:
		return v.decimal.appendRepresentation(nil), nil
	case TimestampType:
		if err := v.timestamp.validate(); err != nil {
			return nil, err
		}
		return v.timestamp.appendRepresentation(nil), nil
	case SymbolType, StringType:
		return []byte(v.text), nil
	case ClobType, BlobType:
		ret := make([]byte, len(v.data))
		copy(ret, v.data)
		return ret, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoBody, v.typ)
	}
}

// FloatBody returns the canonical binary64 representation of f. Positive zero is
// empty, and every NaN and every negative zero share a single bit pattern
func FloatBody(f float64) []byte {
	var bits uint64
	switch {
	case math.IsNaN(f):
		bits = canonicalNaN
	case f == 0 && math.Signbit(f):
		bits = canonicalNegativeZero
	case f == 0:
		return []byte{}
	default:
		bits = math.Float64bits(f)
	}
	return binary.BigEndian.AppendUint64(nil, bits)
}

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

package cbor

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	_cbor "github.com/fxamacker/cbor/v2"

	"github.com/blinklabs-io/ionhash/ion"
)

// Decode parses a single CBOR data item into a materialized Ion value
func Decode(data []byte) (*ion.Value, error) {
	tree := ion.NewTree()
	if err := Stream(tree, data); err != nil {
		return nil, err
	}
	return tree.Value()
}

// Stream parses a single CBOR data item and emits it into sink without
// materializing it. Errors returned by the sink are passed through unchanged
func Stream(sink ion.Sink, data []byte) error {
	decMode, err := getDecMode()
	if err != nil {
		return err
	}
	if err := decMode.Wellformed(data); err != nil {
		return fmt.Errorf("malformed CBOR: %w", err)
	}
	w := &walker{
		decMode: decMode,
		sink:    sink,
	}
	return w.item(data)
}

type walker struct {
	decMode _cbor.DecMode
	sink    ion.Sink
}

// item emits one well-formed data item
func (w *walker) item(data []byte) error {
	majorType, arg, headLen, indefinite, err := readHead(data)
	if err != nil {
		return err
	}
	switch majorType {
	case CborTypeUnsignedInt, CborTypeNegativeInt:
		return w.bigInt(data)
	case CborTypeByteString:
		var tmpValue []byte
		if err := w.decMode.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		return w.sink.WriteScalar(ion.Blob(tmpValue))
	case CborTypeTextString:
		var tmpValue string
		if err := w.decMode.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		return w.sink.WriteScalar(ion.String(tmpValue))
	case CborTypeArray:
		var items []RawMessage
		if err := w.decMode.Unmarshal(data, &items); err != nil {
			return err
		}
		if err := w.sink.StepIn(ion.ListType); err != nil {
			return err
		}
		for _, item := range items {
			if err := w.item(item); err != nil {
				return err
			}
		}
		return w.sink.StepOut()
	case CborTypeMap:
		return w.mapItem(data[headLen:], arg, indefinite)
	case CborTypeTag:
		return w.tag(data)
	default:
		return w.simple(data)
	}
}

// mapItem walks map entries in encoded order. Decoding into a Go map would
// lose both the order and any duplicate keys
func (w *walker) mapItem(entries []byte, count uint64, indefinite bool) error {
	if err := w.sink.StepIn(ion.StructType); err != nil {
		return err
	}
	rest := entries
	for i := uint64(0); indefinite || i < count; i++ {
		if indefinite && len(rest) > 0 && rest[0] == cborBreak {
			break
		}
		var key, value RawMessage
		var err error
		if rest, err = w.decMode.UnmarshalFirst(rest, &key); err != nil {
			return err
		}
		if rest, err = w.decMode.UnmarshalFirst(rest, &value); err != nil {
			return err
		}
		name, err := w.fieldName(key)
		if err != nil {
			return err
		}
		if err := w.sink.SetFieldName(name); err != nil {
			return err
		}
		if err := w.item(value); err != nil {
			return err
		}
	}
	return w.sink.StepOut()
}

// fieldName returns text keys as is and any other key in diagnostic notation
func (w *walker) fieldName(key []byte) (string, error) {
	if key[0]&CborTypeMask == CborTypeTextString {
		var name string
		if err := w.decMode.Unmarshal(key, &name); err != nil {
			return "", err
		}
		return name, nil
	}
	return _cbor.Diagnose(key)
}

func (w *walker) bigInt(data []byte) error {
	var tmpValue big.Int
	if err := w.decMode.Unmarshal(data, &tmpValue); err != nil {
		return err
	}
	return w.sink.WriteScalar(ion.BigInt(&tmpValue))
}

func (w *walker) tag(data []byte) error {
	var tmpTag RawTag
	if err := w.decMode.Unmarshal(data, &tmpTag); err != nil {
		return err
	}
	switch tmpTag.Number {
	case CborTagPositiveBignum, CborTagNegativeBignum:
		return w.bigInt(data)
	case CborTagDateTimeString:
		var text string
		if err := w.decMode.Unmarshal(tmpTag.Content, &text); err != nil {
			return fmt.Errorf("date/time string tag: %w", err)
		}
		ts, err := ion.ParseTimestamp(text)
		if err != nil {
			return err
		}
		return w.sink.WriteScalar(ion.NewTimestampValue(ts))
	case CborTagEpochDateTime:
		ts, err := w.epochTimestamp(tmpTag.Content)
		if err != nil {
			return err
		}
		return w.sink.WriteScalar(ion.NewTimestampValue(ts))
	case CborTagDecimal:
		d, err := w.decimal(tmpTag.Content)
		if err != nil {
			return err
		}
		return w.sink.WriteScalar(ion.NewDecimalValue(d))
	default:
		annotation := TagAnnotationPrefix + strconv.FormatUint(tmpTag.Number, 10)
		if err := w.sink.AddAnnotation(annotation); err != nil {
			return err
		}
		return w.item(tmpTag.Content)
	}
}

// epochTimestamp converts integer epoch seconds with second precision and
// floating point epoch seconds with nanosecond precision
func (w *walker) epochTimestamp(content []byte) (ion.Timestamp, error) {
	switch content[0] & CborTypeMask {
	case CborTypeUnsignedInt, CborTypeNegativeInt:
		var secs int64
		if err := w.decMode.Unmarshal(content, &secs); err != nil {
			return ion.Timestamp{}, fmt.Errorf("epoch date/time tag: %w", err)
		}
		return ion.NewTimestamp(time.Unix(secs, 0).UTC(), ion.PrecisionSecond, true), nil
	case CborTypeSimple:
		var secs float64
		if err := w.decMode.Unmarshal(content, &secs); err != nil {
			return ion.Timestamp{}, fmt.Errorf("epoch date/time tag: %w", err)
		}
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return ion.Timestamp{}, fmt.Errorf("%w: non-finite epoch date/time", ErrUnsupported)
		}
		whole, frac := math.Modf(secs)
		t := time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC()
		return ion.NewTimestamp(t, ion.PrecisionFraction, true), nil
	default:
		return ion.Timestamp{}, fmt.Errorf("%w: epoch date/time content 0x%02x", ErrUnsupported, content[0])
	}
}

// decimal converts a decimal fraction [exponent, mantissa], which has the same
// meaning as an Ion decimal
func (w *walker) decimal(content []byte) (ion.Decimal, error) {
	var parts []RawMessage
	if err := w.decMode.Unmarshal(content, &parts); err != nil {
		return ion.Decimal{}, fmt.Errorf("decimal fraction tag: %w", err)
	}
	if len(parts) != 2 {
		return ion.Decimal{}, fmt.Errorf("%w: decimal fraction with %d elements", ErrUnsupported, len(parts))
	}
	var exponent int64
	if err := w.decMode.Unmarshal(parts[0], &exponent); err != nil {
		return ion.Decimal{}, fmt.Errorf("decimal fraction exponent: %w", err)
	}
	if exponent < math.MinInt32 || exponent > math.MaxInt32 {
		return ion.Decimal{}, fmt.Errorf("%w: decimal fraction exponent %d out of range", ErrUnsupported, exponent)
	}
	var mantissa big.Int
	if err := w.decMode.Unmarshal(parts[1], &mantissa); err != nil {
		return ion.Decimal{}, fmt.Errorf("decimal fraction mantissa: %w", err)
	}
	return ion.NewDecimal(&mantissa, int32(exponent)), nil
}

func (w *walker) simple(data []byte) error {
	switch data[0] {
	case cborSimpleFalse:
		return w.sink.WriteScalar(ion.Bool(false))
	case cborSimpleTrue:
		return w.sink.WriteScalar(ion.Bool(true))
	case cborSimpleNull, cborSimpleUndefined:
		return w.sink.WriteScalar(ion.Null(ion.NullType))
	case cborFloat16, cborFloat32:
		var tmpValue float32
		if err := w.decMode.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		return w.sink.WriteScalar(ion.Float32(tmpValue))
	case cborFloat64:
		var tmpValue float64
		if err := w.decMode.Unmarshal(data, &tmpValue); err != nil {
			return err
		}
		return w.sink.WriteScalar(ion.Float(tmpValue))
	default:
		return fmt.Errorf("%w: simple value 0x%02x", ErrUnsupported, data[0])
	}
}

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
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

const (
	minYear = 1
	maxYear = 9999
)

// Precision is the finest unit a Timestamp specifies
type Precision uint8

const (
	PrecisionYear Precision = iota + 1
	PrecisionMonth
	PrecisionDay
	PrecisionMinute
	PrecisionSecond
	PrecisionFraction
)

const maxFractionDigits = 9

func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	case PrecisionMinute:
		return "minute"
	case PrecisionSecond:
		return "second"
	case PrecisionFraction:
		return "fraction"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

// Timestamp is a point in time with an explicit precision and an optionally
// unknown local offset
type Timestamp struct {
	t              time.Time
	precision      Precision
	fractionDigits uint8
	offsetKnown    bool
}

// NewTimestamp creates a Timestamp with the given precision. Dates (year, month
// and day precision) never carry an offset. PrecisionFraction keeps all nine
// digits of nanoseconds; use NewTimestampWithFraction for fewer digits
func NewTimestamp(t time.Time, precision Precision, offsetKnown bool) Timestamp {
	if precision == PrecisionFraction {
		return NewTimestampWithFraction(t, maxFractionDigits, offsetKnown)
	}
	if precision < PrecisionYear || precision > PrecisionSecond {
		precision = PrecisionSecond
	}
	if precision <= PrecisionDay {
		offsetKnown = false
	}
	return Timestamp{
		t:           t,
		precision:   precision,
		offsetKnown: offsetKnown,
	}
}

// NewTimestampWithFraction creates a Timestamp with fractional seconds limited to
// the given number of decimal digits (at most 9). Zero digits yields second precision
func NewTimestampWithFraction(t time.Time, digits uint8, offsetKnown bool) Timestamp {
	if digits == 0 {
		return NewTimestamp(t, PrecisionSecond, offsetKnown)
	}
	if digits > maxFractionDigits {
		digits = maxFractionDigits
	}
	return Timestamp{
		t:              t,
		precision:      PrecisionFraction,
		fractionDigits: digits,
		offsetKnown:    offsetKnown,
	}
}

// ParseTimestamp parses an RFC 3339 date-time. The precision follows the number of
// fraction digits present, and an offset of -00:00 marks the offset as unknown
func ParseTimestamp(text string) (Timestamp, error) {
	s := strings.TrimSpace(text)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, err)
	}
	offsetKnown := !strings.HasSuffix(s, "-00:00")
	digits := 0
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		for _, c := range s[idx+1:] {
			if c < '0' || c > '9' {
				break
			}
			digits++
		}
	}
	if digits > maxFractionDigits {
		return Timestamp{}, fmt.Errorf("%w: more than %d fraction digits in %q", ErrInvalidTimestamp, maxFractionDigits, text)
	}
	return NewTimestampWithFraction(t, uint8(digits), offsetKnown), nil
}

// Time returns the underlying time
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// Precision returns the precision of the timestamp
func (ts Timestamp) Precision() Precision {
	return ts.precision
}

// FractionDigits returns the number of fractional second digits
func (ts Timestamp) FractionDigits() uint8 {
	return ts.fractionDigits
}

// OffsetKnown returns false when the local offset is unknown (-00:00)
func (ts Timestamp) OffsetKnown() bool {
	return ts.offsetKnown
}

// String returns the timestamp in Ion text notation
func (ts Timestamp) String() string {
	switch ts.precision {
	case PrecisionYear:
		return ts.t.Format("2006T")
	case PrecisionMonth:
		return ts.t.Format("2006-01T")
	case PrecisionDay:
		return ts.t.Format("2006-01-02")
	}
	var layout string
	switch ts.precision {
	case PrecisionMinute:
		layout = "2006-01-02T15:04"
	case PrecisionSecond:
		layout = "2006-01-02T15:04:05"
	default:
		layout = "2006-01-02T15:04:05." + strings.Repeat("0", int(ts.fractionDigits))
	}
	if !ts.offsetKnown {
		return ts.t.UTC().Format(layout) + "-00:00"
	}
	return ts.t.Format(layout + "Z07:00")
}

// fieldTime returns the time whose fields are encoded. Dates are taken as
// written, everything finer is normalized to UTC
func (ts Timestamp) fieldTime() time.Time {
	if ts.precision <= PrecisionDay {
		return ts.t
	}
	return ts.t.UTC()
}

// validate reports a timestamp that has no binary representation
func (ts Timestamp) validate() error {
	if ts.precision == 0 {
		return fmt.Errorf("%w: timestamp without precision", ErrInvalidTimestamp)
	}
	if year := ts.fieldTime().Year(); year < minYear || year > maxYear {
		return fmt.Errorf("%w: year %d outside %d-%d", ErrInvalidTimestamp, year, minYear, maxYear)
	}
	return nil
}

// appendRepresentation appends the Ion binary timestamp representation. Time
// fields are always written in UTC after the offset
func (ts Timestamp) appendRepresentation(dst []byte) []byte {
	t := ts.t
	if ts.precision <= PrecisionDay {
		// Dates carry no offset and are taken as written
		dst = append(dst, varEndFlag|varSignFlag)
	} else {
		if ts.offsetKnown {
			_, offsetSeconds := t.Zone()
			dst = AppendVarInt64(dst, int64(offsetSeconds/60))
		} else {
			dst = append(dst, varEndFlag|varSignFlag)
		}
		t = t.UTC()
	}
	dst = AppendVarUInt(dst, uint64(t.Year()))
	if ts.precision >= PrecisionMonth {
		dst = AppendVarUInt(dst, uint64(t.Month()))
	}
	if ts.precision >= PrecisionDay {
		dst = AppendVarUInt(dst, uint64(t.Day()))
	}
	if ts.precision >= PrecisionMinute {
		dst = AppendVarUInt(dst, uint64(t.Hour()))
		dst = AppendVarUInt(dst, uint64(t.Minute()))
	}
	if ts.precision >= PrecisionSecond {
		dst = AppendVarUInt(dst, uint64(t.Second()))
	}
	if ts.precision == PrecisionFraction {
		divisor := int64(1)
		for i := ts.fractionDigits; i < maxFractionDigits; i++ {
			divisor *= 10
		}
		fraction := int64(t.Nanosecond()) / divisor
		dst = AppendVarInt(dst, uint64(ts.fractionDigits), true)
		dst = AppendBigInt(dst, big.NewInt(fraction))
	}
	return dst
}

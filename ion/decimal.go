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
	"math"
	"math/big"
	"strconv"
	"strings"
)

var ErrInvalidDecimal = errors.New("invalid decimal")

// Decimal is an arbitrary-precision decimal: coefficient * 10^exponent.
//
// Decimals are never normalized. 1.0 (10, -1) and 1.00 (100, -2) are different
// values, and a negative zero is distinct from zero.
type Decimal struct {
	coefficient *big.Int
	exponent    int32
	negZero     bool
}

// NewDecimal creates a Decimal from a coefficient and exponent. The coefficient
// is copied
func NewDecimal(coefficient *big.Int, exponent int32) Decimal {
	d := Decimal{exponent: exponent}
	if coefficient != nil && coefficient.Sign() != 0 {
		d.coefficient = new(big.Int).Set(coefficient)
	}
	return d
}

// NewDecimalFromInt64 creates a Decimal from an int64 coefficient and exponent
func NewDecimalFromInt64(coefficient int64, exponent int32) Decimal {
	return NewDecimal(big.NewInt(coefficient), exponent)
}

// NegativeZeroDecimal returns -0 with the given exponent
func NegativeZeroDecimal(exponent int32) Decimal {
	return Decimal{exponent: exponent, negZero: true}
}

// ParseDecimal parses decimal text such as "123.45", "-0.0", "1d-3" or "2.5e10".
// The number of fraction digits is preserved in the exponent
func ParseDecimal(text string) (Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Decimal{}, fmt.Errorf("%w: empty string", ErrInvalidDecimal)
	}
	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	var exponent int64
	if idx := strings.IndexAny(s, "dDeE"); idx >= 0 {
		exp, err := strconv.ParseInt(s[idx+1:], 10, 32)
		if err != nil {
			return Decimal{}, fmt.Errorf("%w: bad exponent in %q: %v", ErrInvalidDecimal, text, err)
		}
		exponent = exp
		s = s[:idx]
	}
	digits := s
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		fraction := s[idx+1:]
		digits = s[:idx] + fraction
		exponent -= int64(len(fraction))
	}
	if digits == "" {
		return Decimal{}, fmt.Errorf("%w: no digits in %q", ErrInvalidDecimal, text)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Decimal{}, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidDecimal, c, text)
		}
	}
	if exponent < math.MinInt32 || exponent > math.MaxInt32 {
		return Decimal{}, fmt.Errorf("%w: exponent out of range in %q", ErrInvalidDecimal, text)
	}
	coefficient, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, text)
	}
	if coefficient.Sign() == 0 {
		if negative {
			return NegativeZeroDecimal(int32(exponent)), nil
		}
		return NewDecimal(nil, int32(exponent)), nil
	}
	if negative {
		coefficient.Neg(coefficient)
	}
	return NewDecimal(coefficient, int32(exponent)), nil
}

// MustParseDecimal is like ParseDecimal but panics on error
func MustParseDecimal(text string) Decimal {
	d, err := ParseDecimal(text)
	if err != nil {
		panic(err)
	}
	return d
}

// Coefficient returns a copy of the coefficient. A negative zero returns 0
func (d Decimal) Coefficient() *big.Int {
	if d.coefficient == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(d.coefficient)
}

// Exponent returns the power of ten applied to the coefficient
func (d Decimal) Exponent() int32 {
	return d.exponent
}

// IsNegativeZero reports whether the decimal is -0
func (d Decimal) IsNegativeZero() bool {
	return d.negZero
}

// IsZero reports whether the coefficient is zero, regardless of sign or exponent
func (d Decimal) IsZero() bool {
	return d.coefficient == nil
}

// Sign returns -1, 0 or +1. Negative zero returns 0
func (d Decimal) Sign() int {
	if d.coefficient == nil {
		return 0
	}
	return d.coefficient.Sign()
}

// String returns the decimal in Ion text notation, such as 12345d-2
func (d Decimal) String() string {
	coefficient := "0"
	if d.coefficient != nil {
		coefficient = d.coefficient.String()
	} else if d.negZero {
		coefficient = "-0"
	}
	return fmt.Sprintf("%sd%d", coefficient, d.exponent)
}

// appendRepresentation appends the Ion binary decimal representation:
// VarInt exponent followed by the Int coefficient. 0d0 has an empty representation
func (d Decimal) appendRepresentation(dst []byte) []byte {
	if d.coefficient == nil && !d.negZero && d.exponent == 0 {
		return dst
	}
	dst = AppendVarInt64(dst, int64(d.exponent))
	if d.coefficient == nil {
		return AppendInt(dst, nil, d.negZero)
	}
	return AppendBigInt(dst, d.coefficient)
}

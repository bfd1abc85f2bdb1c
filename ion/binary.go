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
	"math/big"
)

// Primitive field encodings from the Ion binary format

const (
	varEndFlag  uint8 = 0x80
	varSignFlag uint8 = 0x40
	intSignFlag uint8 = 0x80
)

// sevenBitGroups splits v into big-endian 7-bit groups. There is always at
// least one group
func sevenBitGroups(v uint64) []byte {
	var buf [10]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			break
		}
	}
	ret := make([]byte, len(buf)-i)
	copy(ret, buf[i:])
	return ret
}

// AppendVarUInt appends v as an Ion VarUInt field: 7 bits per byte, with
// the high bit set on the final byte
func AppendVarUInt(dst []byte, v uint64) []byte {
	groups := sevenBitGroups(v)
	groups[len(groups)-1] |= varEndFlag
	return append(dst, groups...)
}

// AppendVarInt appends a signed magnitude as an Ion VarInt field. The sign
// lives in bit 6 of the first byte, which allows a negative zero
func AppendVarInt(dst []byte, magnitude uint64, negative bool) []byte {
	groups := sevenBitGroups(magnitude)
	if groups[0]&varSignFlag != 0 {
		groups = append([]byte{0}, groups...)
	}
	if negative {
		groups[0] |= varSignFlag
	}
	groups[len(groups)-1] |= varEndFlag
	return append(dst, groups...)
}

// AppendVarInt64 appends v as an Ion VarInt field
func AppendVarInt64(dst []byte, v int64) []byte {
	if v < 0 {
		// Two's complement negation is well defined for math.MinInt64 as uint64
		return AppendVarInt(dst, uint64(-(v+1))+1, true)
	}
	return AppendVarInt(dst, uint64(v), false)
}

// AppendInt appends a big-endian sign-and-magnitude Ion Int field. Zero is
// encoded as no bytes at all, while a negative zero is a lone sign byte
func AppendInt(dst []byte, magnitude []byte, negative bool) []byte {
	// Strip leading zero bytes
	for len(magnitude) > 0 && magnitude[0] == 0 {
		magnitude = magnitude[1:]
	}
	if len(magnitude) == 0 {
		if negative {
			return append(dst, intSignFlag)
		}
		return dst
	}
	start := len(dst)
	if magnitude[0]&intSignFlag != 0 {
		dst = append(dst, 0)
	}
	dst = append(dst, magnitude...)
	if negative {
		dst[start] |= intSignFlag
	}
	return dst
}

// AppendBigInt appends v as an Ion Int field
func AppendBigInt(dst []byte, v *big.Int) []byte {
	if v == nil {
		return dst
	}
	return AppendInt(dst, v.Bytes(), v.Sign() < 0)
}

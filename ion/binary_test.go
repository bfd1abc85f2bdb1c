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

package ion_test

import (
	"encoding/hex"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blinklabs-io/ionhash/ion"
)

func TestAppendVarUInt(t *testing.T) {
	testDefs := []struct {
		value    uint64
		expected string
	}{
		{0, "80"},
		{1, "81"},
		{127, "ff"},
		{128, "0180"},
		{2011, "0fdb"},
		{16384, "010080"},
	}
	for _, testDef := range testDefs {
		got := hex.EncodeToString(ion.AppendVarUInt(nil, testDef.value))
		assert.Equal(t, testDef.expected, got, "VarUInt(%d)", testDef.value)
	}
}

func TestAppendVarInt(t *testing.T) {
	testDefs := []struct {
		value    int64
		expected string
	}{
		{0, "80"},
		{1, "81"},
		{-1, "c1"},
		{63, "bf"},
		{-63, "ff"},
		{64, "00c0"},
		{-64, "40c0"},
		{-480, "43e0"},
		{8191, "3fff"},
		{8192, "004080"},
	}
	for _, testDef := range testDefs {
		got := hex.EncodeToString(ion.AppendVarInt64(nil, testDef.value))
		assert.Equal(t, testDef.expected, got, "VarInt(%d)", testDef.value)
	}
	// Negative zero
	assert.Equal(t, []byte{0xc0}, ion.AppendVarInt(nil, 0, true))
	// The most negative int64 must not overflow
	assert.Equal(
		t,
		"41000000000000000080",
		hex.EncodeToString(ion.AppendVarInt64(nil, math.MinInt64)),
	)
}

func TestAppendInt(t *testing.T) {
	testDefs := []struct {
		value    *big.Int
		expected string
	}{
		{big.NewInt(0), ""},
		{big.NewInt(1), "01"},
		{big.NewInt(-1), "81"},
		{big.NewInt(127), "7f"},
		{big.NewInt(128), "0080"},
		{big.NewInt(-128), "8080"},
		{big.NewInt(255), "00ff"},
		{big.NewInt(-256), "8100"},
		{new(big.Int).Lsh(big.NewInt(1), 64), "010000000000000000"},
	}
	for _, testDef := range testDefs {
		got := hex.EncodeToString(ion.AppendBigInt(nil, testDef.value))
		assert.Equal(t, testDef.expected, got, "Int(%s)", testDef.value)
	}
	assert.Equal(t, []byte{0x80}, ion.AppendInt(nil, []byte{0x00}, true))
	assert.Equal(t, []byte{0xaa, 0x05}, ion.AppendInt([]byte{0xaa}, []byte{0x00, 0x05}, false))
}

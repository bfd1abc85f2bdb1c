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

package cbor_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/ionhash"
	"github.com/blinklabs-io/ionhash/cbor"
	"github.com/blinklabs-io/ionhash/internal/test"
	"github.com/blinklabs-io/ionhash/ion"
)

func bigFromString(s string) *big.Int {
	ret, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad big int: " + s)
	}
	return ret
}

// Test vectors mostly come from RFC 8949 Appendix A
var decodeTestDefs = []struct {
	name     string
	cborHex  string
	expected *ion.Value
}{
	{"uint", "01", ion.Int(1)},
	{"uint16", "1903e8", ion.Int(1000)},
	{"nint", "20", ion.Int(-1)},
	{"nint16", "3903e7", ion.Int(-1000)},
	{"max nint", "3bffffffffffffffff", ion.BigInt(bigFromString("-18446744073709551616"))},
	{"positive bignum", "c249010000000000000000", ion.BigInt(bigFromString("18446744073709551616"))},
	{"negative bignum", "c349010000000000000000", ion.BigInt(bigFromString("-18446744073709551617"))},
	{"bytes", "4401020304", ion.Blob([]byte{1, 2, 3, 4})},
	{"indefinite bytes", "5f42010243030405ff", ion.Blob([]byte{1, 2, 3, 4, 5})},
	{"text", "6449455446", ion.String("IETF")},
	{"false", "f4", ion.Bool(false)},
	{"true", "f5", ion.Bool(true)},
	{"null", "f6", ion.Null(ion.NullType)},
	{"undefined", "f7", ion.Null(ion.NullType)},
	{"half float", "f93c00", ion.Float(1)},
	{"single float", "fa47c35000", ion.Float(100000)},
	{"double float", "fb3ff199999999999a", ion.Float(1.1)},
	{
		"epoch date/time",
		"c11a514b67b0",
		ion.NewTimestampValue(ion.NewTimestamp(
			time.Date(2013, 3, 21, 20, 4, 0, 0, time.UTC), ion.PrecisionSecond, true,
		)),
	},
	{
		"epoch date/time float",
		"c1fb41d452d9ec200000",
		ion.NewTimestampValue(ion.NewTimestamp(
			time.Date(2013, 3, 21, 20, 4, 0, 500000000, time.UTC), ion.PrecisionFraction, true,
		)),
	},
	{
		"date/time string",
		"c074323031332d30332d32315432303a30343a30305a",
		ion.NewTimestampValue(ion.NewTimestamp(
			time.Date(2013, 3, 21, 20, 4, 0, 0, time.UTC), ion.PrecisionSecond, true,
		)),
	},
	{"decimal fraction", "c48221196ab3", ion.NewDecimalValue(ion.NewDecimalFromInt64(27315, -2))},
	{
		"unknown tag",
		"d82076687474703a2f2f7777772e6578616d706c652e636f6d",
		ion.String("http://www.example.com").WithAnnotations("cbor.tag.32"),
	},
	{
		"nested unknown tags",
		"d9d9f7d82000",
		ion.Int(0).WithAnnotations("cbor.tag.55799", "cbor.tag.32"),
	},
	{"array", "83010203", ion.List(ion.Int(1), ion.Int(2), ion.Int(3))},
	{"indefinite array", "9f0102ff", ion.List(ion.Int(1), ion.Int(2))},
	{"empty array", "80", ion.List()},
	{
		"non-text keys",
		"a201020304",
		ion.Struct(
			ion.Field{Name: "1", Value: ion.Int(2)},
			ion.Field{Name: "3", Value: ion.Int(4)},
		),
	},
	{
		"indefinite map",
		"bf6161016162f5ff",
		ion.Struct(
			ion.Field{Name: "a", Value: ion.Int(1)},
			ion.Field{Name: "b", Value: ion.Bool(true)},
		),
	},
	{
		"nested",
		"a26161016162820203",
		ion.Struct(
			ion.Field{Name: "a", Value: ion.Int(1)},
			ion.Field{Name: "b", Value: ion.List(ion.Int(2), ion.Int(3))},
		),
	},
	{"empty map", "a0", ion.Struct()},
}

func TestDecode(t *testing.T) {
	for _, testDef := range decodeTestDefs {
		t.Run(testDef.name, func(t *testing.T) {
			v, err := cbor.Decode(test.DecodeHexString(testDef.cborHex))
			require.NoError(t, err)
			assert.Equal(t, ion.Dump(testDef.expected, ""), ion.Dump(v, ""))
		})
	}
}

func TestStreamMatchesBuilder(t *testing.T) {
	for _, testDef := range decodeTestDefs {
		t.Run(testDef.name, func(t *testing.T) {
			b, err := ionhash.NewBuilder()
			require.NoError(t, err)
			require.NoError(t, cbor.Stream(b, test.DecodeHexString(testDef.cborHex)))
			digest, err := b.Digest()
			require.NoError(t, err)
			expected, err := ionhash.Sum(testDef.expected)
			require.NoError(t, err)
			assert.Equal(t, expected, digest)
		})
	}
}

func TestMapKeyOrderIsIrrelevant(t *testing.T) {
	// {"a": 1, "b": 2} and {"b": 2, "a": 1}
	first, err := cbor.Decode(test.DecodeHexString("a2616101616202"))
	require.NoError(t, err)
	second, err := cbor.Decode(test.DecodeHexString("a2616202616101"))
	require.NoError(t, err)
	firstDigest, err := ionhash.Sum(first)
	require.NoError(t, err)
	secondDigest, err := ionhash.Sum(second)
	require.NoError(t, err)
	assert.Equal(t, firstDigest, secondDigest)
	// Encoded order is kept
	assert.Equal(t, "b", second.Fields()[0].Name)
}

func TestEncodeRoundTrip(t *testing.T) {
	data, err := cbor.Encode(map[string]any{"b": []int{2, 3}, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString("a26161016162820203"), data)
	v, err := cbor.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "a", v.Fields()[0].Name)
}

func TestDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name    string
		cborHex string
		target  error
	}{
		{"unassigned simple value", "f0", cbor.ErrUnsupported},
		{"decimal fraction with three elements", "c483010203", cbor.ErrUnsupported},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := cbor.Decode(test.DecodeHexString(testDef.cborHex))
			assert.ErrorIs(t, err, testDef.target)
		})
	}
	for _, cborHex := range []string{"", "a1", "830102", "0101", "1c", "c16161"} {
		_, err := cbor.Decode(test.DecodeHexString(cborHex))
		assert.Error(t, err, "input %q", cborHex)
	}
}

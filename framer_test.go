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

package ionhash_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/ionhash"
	"github.com/blinklabs-io/ionhash/internal/test"
	"github.com/blinklabs-io/ionhash/ion"
)

func TestFrame(t *testing.T) {
	testDefs := []struct {
		name     string
		tag      ionhash.Tag
		body     []byte
		expected string
	}{
		{"empty body", 0x0f, nil, "0b0f0e"},
		{"plain body", 0x20, []byte{0x01}, "0b20010e"},
		{"markers escaped", 0x80, []byte{0x0b, 0x0c, 0x0e, 0x41}, "0b80 0c0b 0c0c 0c0e 41 0e"},
		{"near markers untouched", 0xa0, []byte{0x0a, 0x0d, 0x0f}, "0ba00a0d0f0e"},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			assert.Equal(
				t,
				test.DecodeHexString(testDef.expected),
				ionhash.Frame(testDef.tag, testDef.body),
			)
		})
	}
}

func TestFrameAnnotated(t *testing.T) {
	inner := ionhash.Frame(0x20, []byte{0x0b})
	framed := ionhash.FrameAnnotated([][]byte{{0x0e, 0x01}, {0x02}}, inner)
	// Annotation digests are escaped, the already framed inner value is not
	assert.Equal(t, test.DecodeHexString("0be0 0c0e01 02 0b200c0b0e 0e"), framed)
}

func TestNewTag(t *testing.T) {
	testDefs := []struct {
		typ       ion.Type
		qualifier ionhash.Qualifier
		expected  ionhash.Tag
	}{
		{ion.NullType, ionhash.QualifierNull, 0x0f},
		{ion.BoolType, ionhash.QualifierBody, 0x10},
		{ion.IntType, ionhash.QualifierBody, 0x20},
		{ion.IntType, ionhash.QualifierNull, 0x2f},
		{ion.FloatType, ionhash.QualifierBody, 0x40},
		{ion.DecimalType, ionhash.QualifierBody, 0x50},
		{ion.TimestampType, ionhash.QualifierBody, 0x60},
		{ion.SymbolType, ionhash.QualifierBody, 0x70},
		{ion.StringType, ionhash.QualifierBody, 0x80},
		{ion.ClobType, ionhash.QualifierBody, 0x90},
		{ion.BlobType, ionhash.QualifierBody, 0xa0},
		{ion.ListType, ionhash.QualifierDigests, 0xb1},
		{ion.SexpType, ionhash.QualifierDigests, 0xc1},
		{ion.StructType, ionhash.QualifierDigests, 0xd1},
		{ion.StructType, ionhash.QualifierNull, 0xdf},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.typ.String()+"/"+testDef.qualifier.String(), func(t *testing.T) {
			tag, err := ionhash.NewTag(testDef.typ, testDef.qualifier)
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, tag)
			code, _ := testDef.typ.TypeCode()
			assert.Equal(t, code, tag.TypeCode())
			assert.Equal(t, testDef.qualifier, tag.Qualifier())
		})
	}
	assert.Equal(t, ionhash.Tag(0xe0), ionhash.AnnotationWrapperTag)
}

func TestNewTagInvalid(t *testing.T) {
	testDefs := []struct {
		typ       ion.Type
		qualifier ionhash.Qualifier
	}{
		{ion.NoType, ionhash.QualifierNull},
		{ion.NullType, ionhash.QualifierBody},
		{ion.NullType, ionhash.QualifierDigests},
		{ion.IntType, ionhash.QualifierDigests},
		{ion.ListType, ionhash.QualifierBody},
		{ion.StructType, ionhash.QualifierBody},
		{ion.StringType, ionhash.Qualifier(0x7)},
	}
	for _, testDef := range testDefs {
		_, err := ionhash.NewTag(testDef.typ, testDef.qualifier)
		assert.ErrorIs(t, err, ionhash.ErrUnsupportedValue, "%s/%s", testDef.typ, testDef.qualifier)
	}
}

func TestTagsNeverCollideWithMarkers(t *testing.T) {
	markers := []byte{ionhash.BeginMarker, ionhash.EscapeByte, ionhash.EndMarker}
	for typ := ion.Type(0); typ < 20; typ++ {
		for q := 0; q < 16; q++ {
			tag, err := ionhash.NewTag(typ, ionhash.Qualifier(q))
			if err != nil {
				continue
			}
			assert.False(t, bytes.Contains(markers, []byte{byte(tag)}), "tag %#x", byte(tag))
		}
	}
}

func TestSortDigests(t *testing.T) {
	digests := [][]byte{{0x02}, {0x01, 0xff}, {0x01}, {0x00, 0x00, 0x01}}
	ionhash.SortDigests(digests)
	assert.Equal(t, [][]byte{{0x00, 0x00, 0x01}, {0x01}, {0x01, 0xff}, {0x02}}, digests)
}

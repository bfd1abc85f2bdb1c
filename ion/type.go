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
	"fmt"
	"strings"
)

// Type identifies the kind of an Ion value
type Type uint8

const (
	NoType Type = iota
	NullType
	BoolType
	IntType
	FloatType
	DecimalType
	TimestampType
	SymbolType
	StringType
	ClobType
	BlobType
	ListType
	SexpType
	StructType
)

// Type codes as used in the high nibble of an Ion binary type descriptor
const (
	TypeCodeNull       uint8 = 0x0
	TypeCodeBool       uint8 = 0x1
	TypeCodeInt        uint8 = 0x2
	TypeCodeFloat      uint8 = 0x4
	TypeCodeDecimal    uint8 = 0x5
	TypeCodeTimestamp  uint8 = 0x6
	TypeCodeSymbol     uint8 = 0x7
	TypeCodeString     uint8 = 0x8
	TypeCodeClob       uint8 = 0x9
	TypeCodeBlob       uint8 = 0xa
	TypeCodeList       uint8 = 0xb
	TypeCodeSexp       uint8 = 0xc
	TypeCodeStruct     uint8 = 0xd
	TypeCodeAnnotation uint8 = 0xe
)

var typeNames = map[Type]string{
	NoType:        "none",
	NullType:      "null",
	BoolType:      "bool",
	IntType:       "int",
	FloatType:     "float",
	DecimalType:   "decimal",
	TimestampType: "timestamp",
	SymbolType:    "symbol",
	StringType:    "string",
	ClobType:      "clob",
	BlobType:      "blob",
	ListType:      "list",
	SexpType:      "sexp",
	StructType:    "struct",
}

var typeCodes = map[Type]uint8{
	NullType:      TypeCodeNull,
	BoolType:      TypeCodeBool,
	IntType:       TypeCodeInt,
	FloatType:     TypeCodeFloat,
	DecimalType:   TypeCodeDecimal,
	TimestampType: TypeCodeTimestamp,
	SymbolType:    TypeCodeSymbol,
	StringType:    TypeCodeString,
	ClobType:      TypeCodeClob,
	BlobType:      TypeCodeBlob,
	ListType:      TypeCodeList,
	SexpType:      TypeCodeSexp,
	StructType:    TypeCodeStruct,
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// TypeCode returns the 4-bit type code for the type. The second return value is
// false for NoType and unknown values
func (t Type) TypeCode() (uint8, bool) {
	code, ok := typeCodes[t]
	return code, ok
}

// IsContainer returns true for list, sexp and struct
func (t Type) IsContainer() bool {
	return t == ListType || t == SexpType || t == StructType
}

// IsScalar returns true for every known non-container type
func (t Type) IsScalar() bool {
	_, ok := typeCodes[t]
	return ok && !t.IsContainer()
}

// IsOrdered returns true for the sequence containers (list and sexp)
func (t Type) IsOrdered() bool {
	return t == ListType || t == SexpType
}

// ParseType returns the Type with the given name
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, typeName := range typeNames {
		if t != NoType && typeName == name {
			return t, nil
		}
	}
	return NoType, fmt.Errorf("unknown Ion type: %q", name)
}

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
	"strconv"
)

// Value is a materialized Ion value. It is a convenience for callers that
// already hold a whole tree; the digest builder never needs one
type Value struct {
	typ         Type
	isNull      bool
	annotations []string
	boolValue   bool
	intValue    *big.Int
	floatValue  float64
	decimal     Decimal
	timestamp   Timestamp
	text        string
	data        []byte
	children    []*Value
	fields      []Field
}

// Field is a single name/value pair within a struct
type Field struct {
	Name  string
	Value *Value
}

// Null returns a typed null (null.int, null.struct, ...). NullType gives null.null
func Null(t Type) *Value {
	return &Value{typ: t, isNull: true}
}

func Bool(v bool) *Value {
	return &Value{typ: BoolType, boolValue: v}
}

func Int(v int64) *Value {
	return &Value{typ: IntType, intValue: big.NewInt(v)}
}

// BigInt returns an int value. The argument is copied
func BigInt(v *big.Int) *Value {
	ret := &Value{typ: IntType, intValue: new(big.Int)}
	if v != nil {
		ret.intValue.Set(v)
	}
	return ret
}

func Float(v float64) *Value {
	return &Value{typ: FloatType, floatValue: v}
}

// Float32 returns a float value widened from v through its shortest decimal
// text, so that 123.4 as a float32 becomes the float64 123.4 rather than
// 123.40000152587891
func Float32(v float32) *Value {
	return &Value{typ: FloatType, floatValue: WidenFloat32(v)}
}

// WidenFloat32 converts v to float64 through its shortest decimal text.
// Non-finite values convert directly
func WidenFloat32(v float32) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	if err != nil {
		return float64(v)
	}
	return f
}

func NewDecimalValue(d Decimal) *Value {
	return &Value{typ: DecimalType, decimal: d}
}

func NewTimestampValue(ts Timestamp) *Value {
	return &Value{typ: TimestampType, timestamp: ts}
}

func Symbol(v string) *Value {
	return &Value{typ: SymbolType, text: v}
}

func String(v string) *Value {
	return &Value{typ: StringType, text: v}
}

// Clob returns a clob value. The data is copied
func Clob(v []byte) *Value {
	return &Value{typ: ClobType, data: append([]byte{}, v...)}
}

// Blob returns a blob value. The data is copied
func Blob(v []byte) *Value {
	return &Value{typ: BlobType, data: append([]byte{}, v...)}
}

func List(children ...*Value) *Value {
	return &Value{typ: ListType, children: children}
}

func Sexp(children ...*Value) *Value {
	return &Value{typ: SexpType, children: children}
}

// Struct returns a struct value. Field order is kept as given and duplicate
// names are allowed
func Struct(fields ...Field) *Value {
	return &Value{typ: StructType, fields: fields}
}

// WithAnnotations appends annotations to the value and returns it
func (v *Value) WithAnnotations(annotations ...string) *Value {
	v.annotations = append(v.annotations, annotations...)
	return v
}

// Append adds children to a list or sexp and returns the value
func (v *Value) Append(children ...*Value) *Value {
	v.children = append(v.children, children...)
	return v
}

// AddField adds a field to a struct and returns the value
func (v *Value) AddField(name string, value *Value) *Value {
	v.fields = append(v.fields, Field{Name: name, Value: value})
	return v
}

func (v *Value) Type() Type {
	return v.typ
}

func (v *Value) IsNull() bool {
	return v.isNull
}

func (v *Value) Annotations() []string {
	return v.annotations
}

func (v *Value) BoolValue() bool {
	return v.boolValue
}

// BigIntValue returns the int payload. It must not be modified
func (v *Value) BigIntValue() *big.Int {
	return v.intValue
}

func (v *Value) FloatValue() float64 {
	return v.floatValue
}

func (v *Value) DecimalValue() Decimal {
	return v.decimal
}

func (v *Value) TimestampValue() Timestamp {
	return v.timestamp
}

// Text returns the payload of a string or symbol
func (v *Value) Text() string {
	return v.text
}

// Bytes returns the payload of a blob or clob. It must not be modified
func (v *Value) Bytes() []byte {
	return v.data
}

// Children returns the elements of a list or sexp
func (v *Value) Children() []*Value {
	return v.children
}

// Fields returns the fields of a struct in insertion order
func (v *Value) Fields() []Field {
	return v.fields
}

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
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Dump returns an indented, Ion-text-like rendering of a value tree for debugging.
// The output is not guaranteed to be valid Ion text
func Dump(v *Value, prefix string) string {
	var ret bytes.Buffer
	dumpValue(&ret, v, prefix, "")
	return ret.String()
}

func dumpValue(ret *bytes.Buffer, v *Value, prefix string, label string) {
	if v == nil {
		ret.WriteString(fmt.Sprintf("%s%s<nil>,\n", prefix, label))
		return
	}
	var annotations strings.Builder
	for _, annotation := range v.annotations {
		annotations.WriteString(quoteSymbol(annotation))
		annotations.WriteString("::")
	}
	head := prefix + label + annotations.String()
	if v.isNull {
		if v.typ == NullType {
			ret.WriteString(head + "null,\n")
		} else {
			ret.WriteString(fmt.Sprintf("%snull.%s,\n", head, v.typ))
		}
		return
	}
	// Add 2 more spaces to the prefix for children
	newPrefix := "  " + prefix
	switch v.typ {
	case ListType, SexpType:
		open, closing := "[", "]"
		if v.typ == SexpType {
			open, closing = "(", ")"
		}
		ret.WriteString(head + open + "\n")
		for _, child := range v.children {
			dumpValue(ret, child, newPrefix, "")
		}
		ret.WriteString(fmt.Sprintf("%s%s,\n", prefix, closing))
	case StructType:
		ret.WriteString(head + "{\n")
		for _, field := range v.fields {
			dumpValue(ret, field.Value, newPrefix, quoteSymbol(field.Name)+": ")
		}
		ret.WriteString(fmt.Sprintf("%s},\n", prefix))
	default:
		ret.WriteString(fmt.Sprintf("%s%s,\n", head, scalarText(v)))
	}
}

func scalarText(v *Value) string {
	switch v.typ {
	case BoolType:
		return strconv.FormatBool(v.boolValue)
	case IntType:
		return v.intValue.String()
	case FloatType:
		return strconv.FormatFloat(v.floatValue, 'e', -1, 64)
	case DecimalType:
		return v.decimal.String()
	case TimestampType:
		return v.timestamp.String()
	case SymbolType:
		return quoteSymbol(v.text)
	case StringType:
		return strconv.Quote(v.text)
	case ClobType:
		return fmt.Sprintf("{{%s}}", strconv.Quote(string(v.data)))
	case BlobType:
		return fmt.Sprintf("<blob> (length %d)", len(v.data))
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func quoteSymbol(s string) string {
	if s == "" {
		return "''"
	}
	for i, c := range s {
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
		if !isLetter && (i == 0 || c < '0' || c > '9') {
			return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
		}
	}
	return s
}

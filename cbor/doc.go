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

// Package cbor reads CBOR data items as Ion values.
//
// It wraps github.com/fxamacker/cbor/v2 for well-formedness checks and scalar
// decoding, and walks containers itself so map entries keep their encoded
// order and duplicate keys survive.
//
// # Mapping
//
//	unsigned/negative int, bignum (tags 2, 3)  int
//	byte string                                blob
//	text string                                string
//	array                                      list
//	map                                        struct (non-text keys in diagnostic notation)
//	false, true                                bool
//	null, undefined                            null.null
//	half/single/double float                   float
//	tag 0 (RFC 3339 text)                      timestamp
//	tag 1 (epoch seconds)                      timestamp
//	tag 4 (decimal fraction)                   decimal
//	any other tag n                            content annotated cbor.tag.n
package cbor

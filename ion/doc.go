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

// Package ion provides the Ion data model used by the digest builder.
//
// # Key Types
//
//   - Type: the thirteen Ion value kinds and their binary type codes
//   - Value: an optional materialized value tree (scalars, list, sexp, struct)
//   - Decimal: exact coefficient/exponent decimal, never normalized
//   - Timestamp: time.Time plus precision and offset knowledge
//   - Writer: produces the canonical body bytes of scalar values
//
// # Body Encoding
//
// Bodies follow the Ion binary representation of each type with the type
// descriptor and length removed:
//
//	bool       0x00 or 0x01
//	int        sign-and-magnitude Int, zero is empty
//	float      big-endian binary64, +0 is empty, NaN is 7ff8000000000000
//	decimal    VarInt exponent, Int coefficient, 0d0 is empty
//	timestamp  VarInt offset, VarUInt fields in UTC, fraction exponent and coefficient
//	symbol     UTF-8 text
//	string     UTF-8 text
//	clob/blob  raw bytes
//
// Decimals are not normalized: 1.0 and 1.00 produce different bodies.
package ion

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

// Package ionhash computes deterministic cryptographic digests of Ion values.
//
// Every value is framed as BeginMarker, a type-and-qualifier tag, its escaped
// body and EndMarker, then hashed. Scalars are framed with their canonical body
// bytes. Lists and sexps are framed with the digests of their children in order.
// Structs are framed with the sorted digests of their name/value entries, so
// field order never affects the result. Annotations wrap the framed value
// together with the digests of the annotation names, in declaration order.
//
// The Builder accepts a stream of write operations and never materializes a
// tree. Sum and SumAll are conveniences over materialized ion.Value trees.
package ionhash

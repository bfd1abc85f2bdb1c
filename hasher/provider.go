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

// Package hasher provides the incremental hash primitive used to compute
// Ion value digests.
//
// A Provider wraps a concrete hash function behind a uniform
// reset/update/digest interface so the digest algorithm in the root
// package never depends on a particular hash. Providers are obtained by
// algorithm name from a registry which ships with the SHA-2, SHA-3,
// BLAKE2b and BLAKE3 families and can be extended with Register.
//
// A Provider is not safe for concurrent use. Each digest computation must
// own its provider exclusively.
package hasher

import (
	"hash"
)

// Provider is an incremental hash function
type Provider interface {
	// Reset clears all accumulated state
	Reset()
	// Update feeds data into the running hash. It may be called any number of times
	Update(data []byte)
	// Digest finalizes and returns the accumulated hash. The provider must be
	// Reset before it is fed again
	Digest() []byte
	// Size returns the length in bytes of the value returned by Digest
	Size() int
	// Algorithm returns the registered name of the hash algorithm
	Algorithm() string
}

// hashProvider adapts a hash.Hash to the Provider interface
type hashProvider struct {
	algorithm string
	h         hash.Hash
}

// FromHash wraps an existing hash.Hash as a Provider. The hash is reset
// before it is returned
func FromHash(algorithm string, h hash.Hash) Provider {
	h.Reset()
	return &hashProvider{
		algorithm: algorithm,
		h:         h,
	}
}

func (p *hashProvider) Reset() {
	p.h.Reset()
}

func (p *hashProvider) Update(data []byte) {
	// hash.Hash.Write never returns an error
	_, _ = p.h.Write(data)
}

func (p *hashProvider) Digest() []byte {
	return p.h.Sum(nil)
}

func (p *hashProvider) Size() int {
	return p.h.Size()
}

func (p *hashProvider) Algorithm() string {
	return p.algorithm
}

// Sum resets the provider, feeds it each of the given byte slices in order
// and returns the resulting digest
func Sum(p Provider, data ...[]byte) []byte {
	p.Reset()
	for _, chunk := range data {
		p.Update(chunk)
	}
	return p.Digest()
}

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

package hasher

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"
	"strings"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Built-in algorithm names
const (
	AlgorithmSHA256     = "sha-256"
	AlgorithmSHA384     = "sha-384"
	AlgorithmSHA512     = "sha-512"
	AlgorithmSHA512256  = "sha-512/256"
	AlgorithmSHA3256    = "sha3-256"
	AlgorithmSHA3512    = "sha3-512"
	AlgorithmBLAKE2b256 = "blake2b-256"
	AlgorithmBLAKE2b512 = "blake2b-512"
	AlgorithmBLAKE3     = "blake3"

	// DefaultAlgorithm is used when no algorithm is specified
	DefaultAlgorithm = AlgorithmSHA256
)

// Factory creates a fresh hash.Hash for an algorithm
type Factory func() (hash.Hash, error)

var (
	registryMutex sync.RWMutex
	registry      = map[string]Factory{
		AlgorithmSHA256:    func() (hash.Hash, error) { return sha256.New(), nil },
		AlgorithmSHA384:    func() (hash.Hash, error) { return sha512.New384(), nil },
		AlgorithmSHA512:    func() (hash.Hash, error) { return sha512.New(), nil },
		AlgorithmSHA512256: func() (hash.Hash, error) { return sha512.New512_256(), nil },
		AlgorithmSHA3256:   func() (hash.Hash, error) { return sha3.New256(), nil },
		AlgorithmSHA3512:   func() (hash.Hash, error) { return sha3.New512(), nil },
		AlgorithmBLAKE2b256: func() (hash.Hash, error) {
			h, err := blake2b.New256(nil)
			if err != nil {
				return nil, fmt.Errorf("failed to initialize BLAKE2b-256 hasher: %w", err)
			}
			return h, nil
		},
		AlgorithmBLAKE2b512: func() (hash.Hash, error) {
			h, err := blake2b.New512(nil)
			if err != nil {
				return nil, fmt.Errorf("failed to initialize BLAKE2b-512 hasher: %w", err)
			}
			return h, nil
		},
		AlgorithmBLAKE3: func() (hash.Hash, error) { return blake3.New(), nil },
	}
	// Alternate spellings seen in the wild (Go crypto names, OCI digests, etc.)
	aliases = map[string]string{
		"sha256":     AlgorithmSHA256,
		"sha384":     AlgorithmSHA384,
		"sha512":     AlgorithmSHA512,
		"sha512/256": AlgorithmSHA512256,
		"sha512_256": AlgorithmSHA512256,
		"sha3_256":   AlgorithmSHA3256,
		"sha3_512":   AlgorithmSHA3512,
		"blake2b256": AlgorithmBLAKE2b256,
		"blake2b512": AlgorithmBLAKE2b512,
		"blake3-256": AlgorithmBLAKE3,
	}
)

// CanonicalName returns the registered name for an algorithm, resolving
// case and known aliases. The empty string resolves to DefaultAlgorithm
func CanonicalName(algorithm string) string {
	name := strings.ToLower(strings.TrimSpace(algorithm))
	if name == "" {
		return DefaultAlgorithm
	}
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// New creates a Provider for the named algorithm. Unknown algorithms and
// factories that fail are reported as a ProviderConstructionError
func New(algorithm string) (Provider, error) {
	name := CanonicalName(algorithm)
	registryMutex.RLock()
	factory, ok := registry[name]
	registryMutex.RUnlock()
	if !ok {
		return nil, ProviderConstructionError{
			Algorithm: algorithm,
			Err:       ErrUnknownAlgorithm,
		}
	}
	h, err := factory()
	if err != nil {
		return nil, ProviderConstructionError{
			Algorithm: algorithm,
			Err:       err,
		}
	}
	if h == nil {
		return nil, ProviderConstructionError{
			Algorithm: algorithm,
			Err:       fmt.Errorf("factory returned nil hash"),
		}
	}
	return FromHash(name, h), nil
}

// Register adds or replaces an algorithm in the registry. The name is
// stored in its canonical lowercase form. A nil factory is ignored
func Register(algorithm string, factory Factory) {
	if factory == nil {
		return
	}
	name := CanonicalName(algorithm)
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[name] = factory
}

// Algorithms returns the sorted names of all registered algorithms
func Algorithms() []string {
	registryMutex.RLock()
	ret := make([]string, 0, len(registry))
	for name := range registry {
		ret = append(ret, name)
	}
	registryMutex.RUnlock()
	slices.Sort(ret)
	return ret
}

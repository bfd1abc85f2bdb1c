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

package hasher_test

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/blinklabs-io/ionhash/hasher"
	"github.com/blinklabs-io/ionhash/internal/test"
)

func TestSHA256KnownVector(t *testing.T) {
	p, err := hasher.New(hasher.AlgorithmSHA256)
	require.NoError(t, err)
	p.Update([]byte("abc"))
	assert.Equal(
		t,
		test.DecodeHexString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"),
		p.Digest(),
	)
}

func TestBuiltinAlgorithms(t *testing.T) {
	input := []byte("The quick brown fox jumps over the lazy dog")
	blake2b256 := blake2b.Sum256(input)
	blake2b512 := blake2b.Sum512(input)
	sha3256 := sha3.Sum256(input)
	sha3512 := sha3.Sum512(input)
	sha256Sum := sha256.Sum256(input)
	sha384Sum := sha512.Sum384(input)
	sha512Sum := sha512.Sum512(input)
	sha512256Sum := sha512.Sum512_256(input)
	blake3Sum := blake3.Sum256(input)
	testDefs := []struct {
		algorithm string
		expected  []byte
	}{
		{hasher.AlgorithmSHA256, sha256Sum[:]},
		{hasher.AlgorithmSHA384, sha384Sum[:]},
		{hasher.AlgorithmSHA512, sha512Sum[:]},
		{hasher.AlgorithmSHA512256, sha512256Sum[:]},
		{hasher.AlgorithmSHA3256, sha3256[:]},
		{hasher.AlgorithmSHA3512, sha3512[:]},
		{hasher.AlgorithmBLAKE2b256, blake2b256[:]},
		{hasher.AlgorithmBLAKE2b512, blake2b512[:]},
		{hasher.AlgorithmBLAKE3, blake3Sum[:]},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.algorithm, func(t *testing.T) {
			p, err := hasher.New(testDef.algorithm)
			require.NoError(t, err)
			assert.Equal(t, testDef.algorithm, p.Algorithm())
			assert.Equal(t, len(testDef.expected), p.Size())
			// Feed in two chunks to exercise incremental updates
			p.Update(input[:10])
			p.Update(input[10:])
			assert.Equal(t, testDef.expected, p.Digest())
		})
	}
}

func TestResetClearsState(t *testing.T) {
	p, err := hasher.New(hasher.AlgorithmBLAKE3)
	require.NoError(t, err)
	p.Update([]byte("garbage"))
	_ = p.Digest()
	p.Reset()
	p.Update([]byte("abc"))
	first := p.Digest()
	assert.Equal(t, hasher.Sum(p, []byte("abc")), first)
	assert.Equal(t, hasher.Sum(p, []byte("a"), []byte("bc")), first)
}

func TestAliases(t *testing.T) {
	testDefs := map[string]string{
		"SHA256":     hasher.AlgorithmSHA256,
		" sha-512 ":  hasher.AlgorithmSHA512,
		"sha512_256": hasher.AlgorithmSHA512256,
		"BLAKE2B256": hasher.AlgorithmBLAKE2b256,
		"":           hasher.DefaultAlgorithm,
	}
	for input, expected := range testDefs {
		p, err := hasher.New(input)
		require.NoError(t, err, "algorithm %q", input)
		assert.Equal(t, expected, p.Algorithm())
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := hasher.New("md5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, hasher.ErrProviderConstruction))
	assert.True(t, errors.Is(err, hasher.ErrUnknownAlgorithm))
	var constructErr hasher.ProviderConstructionError
	require.True(t, errors.As(err, &constructErr))
	assert.Equal(t, "md5", constructErr.Algorithm)
}

func TestFailingFactory(t *testing.T) {
	factoryErr := errors.New("no entropy today")
	hasher.Register("broken-test-algo", func() (hash.Hash, error) {
		return nil, factoryErr
	})
	_, err := hasher.New("broken-test-algo")
	require.Error(t, err)
	assert.ErrorIs(t, err, hasher.ErrProviderConstruction)
	assert.ErrorIs(t, err, factoryErr)
}

func TestRegister(t *testing.T) {
	hasher.Register("CRC32-Test", func() (hash.Hash, error) {
		return crc32.NewIEEE(), nil
	})
	assert.Contains(t, hasher.Algorithms(), "crc32-test")
	p, err := hasher.New("crc32-test")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Size())
	crc := crc32.NewIEEE()
	crc.Write([]byte("abc"))
	assert.Equal(t, crc.Sum(nil), hasher.Sum(p, []byte("abc")))
}

func TestRegisterNilFactory(t *testing.T) {
	hasher.Register("nil-factory-test", nil)
	assert.NotContains(t, hasher.Algorithms(), "nil-factory-test")
	_, err := hasher.New("nil-factory-test")
	assert.ErrorIs(t, err, hasher.ErrUnknownAlgorithm)

	// An existing entry is left in place
	hasher.Register(hasher.AlgorithmSHA256, nil)
	p, err := hasher.New(hasher.AlgorithmSHA256)
	require.NoError(t, err)
	assert.Equal(t, 32, p.Size())
}

func TestAlgorithmsSorted(t *testing.T) {
	algos := hasher.Algorithms()
	for _, name := range []string{
		hasher.AlgorithmSHA256,
		hasher.AlgorithmSHA3256,
		hasher.AlgorithmBLAKE2b256,
		hasher.AlgorithmBLAKE3,
	} {
		assert.Contains(t, algos, name)
	}
	assert.IsNonDecreasing(t, algos)
}

func TestFromHash(t *testing.T) {
	h := sha256.New()
	h.Write([]byte("left over state"))
	p := hasher.FromHash("custom-sha", h)
	assert.Equal(t, "custom-sha", p.Algorithm())
	expected := sha256.Sum256([]byte("abc"))
	p.Update([]byte("abc"))
	assert.Equal(t, expected[:], p.Digest())
}

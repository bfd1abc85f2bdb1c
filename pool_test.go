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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/blinklabs-io/ionhash"
	"github.com/blinklabs-io/ionhash/hasher"
	"github.com/blinklabs-io/ionhash/ion"
)

func TestDigestPool(t *testing.T) {
	defer goleak.VerifyNone(t)
	input := make(chan *ionhash.DigestItem)
	output := make(chan *ionhash.DigestItem, 3)
	pool, err := ionhash.NewDigestPool(ionhash.DigestPoolConfig{
		NumWorkers: 2,
		Input:      input,
		Output:     output,
	})
	require.NoError(t, err)
	pool.Start(context.Background())
	// Second call is a no-op
	pool.Start(context.Background())

	values := []*ion.Value{ion.Int(1), nil, ion.String("three")}
	for idx, v := range values {
		input <- &ionhash.DigestItem{Index: idx, Value: v}
	}
	close(input)
	pool.Stop()
	close(output)

	results := map[int]*ionhash.DigestItem{}
	for item := range output {
		results[item.Index] = item
	}
	require.Len(t, results, 3)
	assert.Equal(t, mustSum(t, values[0]), results[0].Digest)
	assert.ErrorIs(t, results[1].Err, ionhash.ErrUnsupportedValue)
	assert.Nil(t, results[1].Digest)
	assert.Equal(t, mustSum(t, values[2]), results[2].Digest)
	assert.Equal(t, uint64(2), pool.Stats().Digested())
	assert.Equal(t, uint64(1), pool.Stats().Failed())
}

func TestDigestPoolCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	input := make(chan *ionhash.DigestItem)
	pool, err := ionhash.NewDigestPool(ionhash.DigestPoolConfig{
		NumWorkers: 4,
		Input:      input,
		// Unbuffered and never read, so a worker would block on send
		Output: make(chan *ionhash.DigestItem),
	})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	input <- &ionhash.DigestItem{Value: ion.Int(1)}
	cancel()
	pool.Stop()
	assert.Equal(t, uint64(1), pool.Stats().Digested())
}

func TestDigestPoolBadAlgorithm(t *testing.T) {
	_, err := ionhash.NewDigestPool(ionhash.DigestPoolConfig{
		Options: []ionhash.BuilderOptionFunc{ionhash.WithAlgorithm("nope")},
	})
	assert.ErrorIs(t, err, hasher.ErrUnknownAlgorithm)
}

func TestDigestPoolSharedProvider(t *testing.T) {
	provider, err := hasher.New(hasher.AlgorithmSHA256)
	require.NoError(t, err)
	_, err = ionhash.NewDigestPool(ionhash.DigestPoolConfig{
		NumWorkers: 4,
		Options:    []ionhash.BuilderOptionFunc{ionhash.WithProvider(provider)},
	})
	assert.ErrorIs(t, err, ionhash.ErrProtocol)

	// A single worker owns the provider outright
	pool, err := ionhash.NewDigestPool(ionhash.DigestPoolConfig{
		NumWorkers: 1,
		Options:    []ionhash.BuilderOptionFunc{ionhash.WithProvider(provider)},
	})
	require.NoError(t, err)
	assert.NotNil(t, pool)
}

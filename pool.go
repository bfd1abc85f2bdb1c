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

package ionhash

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/blinklabs-io/ionhash/ion"
)

// DigestItem carries one value through a DigestPool. Digest or Err is set
// once a worker has processed it
type DigestItem struct {
	Index  int
	Value  *ion.Value
	Digest []byte
	Err    error
}

// PoolStats counts the items a DigestPool has processed
type PoolStats struct {
	digested atomic.Uint64
	failed   atomic.Uint64
}

func (s *PoolStats) Digested() uint64 {
	return s.digested.Load()
}

func (s *PoolStats) Failed() uint64 {
	return s.failed.Load()
}

// DigestPoolConfig holds configuration for creating a DigestPool
type DigestPoolConfig struct {
	// NumWorkers is the number of parallel workers; defaults to 1 if <= 0
	NumWorkers int
	// Input is the channel to receive items from
	Input <-chan *DigestItem
	// Output receives every item after processing, including failed ones
	Output chan<- *DigestItem
	// Options configure the builder owned by each worker. WithProvider is
	// rejected with more than one worker, since a provider cannot be shared
	Options []BuilderOptionFunc
}

// DigestPool digests items from an input channel with a fixed number of
// workers, each owning its own Builder
type DigestPool struct {
	builders []*Builder
	input    <-chan *DigestItem
	output   chan<- *DigestItem
	stats    PoolStats
	wg       sync.WaitGroup
	started  atomic.Bool
}

// NewDigestPool creates a new pool. Builders are constructed here, so an
// unknown algorithm is reported before any worker starts
func NewDigestPool(config DigestPoolConfig) (*DigestPool, error) {
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	p := &DigestPool{
		input:  config.Input,
		output: config.Output,
	}
	for range numWorkers {
		b, err := NewBuilder(config.Options...)
		if err != nil {
			return nil, err
		}
		if b.externalProvider && numWorkers > 1 {
			return nil, ProtocolError{
				Op:     "NewDigestPool",
				Reason: "WithProvider cannot be shared between workers",
			}
		}
		p.builders = append(p.builders, b)
	}
	return p, nil
}

// Start starts the workers. Calling it more than once has no effect
func (p *DigestPool) Start(ctx context.Context) {
	if p.started.Swap(true) {
		return
	}
	for _, b := range p.builders {
		p.wg.Add(1)
		go p.worker(ctx, b)
	}
}

// Stop waits for all workers to exit. Workers exit once the input channel is
// closed and drained, or the context passed to Start is done
func (p *DigestPool) Stop() {
	p.wg.Wait()
}

func (p *DigestPool) Stats() *PoolStats {
	return &p.stats
}

func (p *DigestPool) worker(ctx context.Context, b *Builder) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-p.input:
			if !ok {
				return
			}
			p.process(b, item)
			select {
			case p.output <- item:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (p *DigestPool) process(b *Builder, item *DigestItem) {
	b.Reset()
	err := b.WriteValue(item.Value)
	if err == nil {
		item.Digest, err = b.Digest()
	}
	if err != nil {
		item.Err = fmt.Errorf("value %d: %w", item.Index, err)
		p.stats.failed.Add(1)
		return
	}
	p.stats.digested.Add(1)
}

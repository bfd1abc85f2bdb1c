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
	"errors"

	"github.com/blinklabs-io/ionhash/ion"
)

// Sum returns the digest of a materialized value
func Sum(v *ion.Value, opts ...BuilderOptionFunc) ([]byte, error) {
	b, err := NewBuilder(opts...)
	if err != nil {
		return nil, err
	}
	if err := b.WriteValue(v); err != nil {
		return nil, err
	}
	return b.Digest()
}

// SumAll digests independent values in parallel using the given number of
// workers. Each worker owns its own builder and provider, so opts must not
// include WithProvider. Results are returned in input order
func SumAll(values []*ion.Value, workers int, opts ...BuilderOptionFunc) ([][]byte, error) {
	ret := make([][]byte, len(values))
	if len(values) == 0 {
		return ret, nil
	}
	input := make(chan *DigestItem)
	output := make(chan *DigestItem, len(values))
	pool, err := NewDigestPool(DigestPoolConfig{
		NumWorkers: min(max(workers, 1), len(values)),
		Input:      input,
		Output:     output,
		Options:    opts,
	})
	if err != nil {
		return nil, err
	}
	pool.Start(context.Background())
	for idx, v := range values {
		input <- &DigestItem{Index: idx, Value: v}
	}
	close(input)
	pool.Stop()
	close(output)
	errs := make([]error, len(values))
	for item := range output {
		ret[item.Index] = item.Digest
		errs[item.Index] = item.Err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return ret, nil
}

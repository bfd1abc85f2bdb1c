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
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is the cause of a ProviderConstructionError for names
// missing from the registry
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Sentinel error for provider construction failures so callers can use errors.Is
var ErrProviderConstruction = errors.New("hash provider construction failed")

// ProviderConstructionError indicates that a hash provider could not be created
type ProviderConstructionError struct {
	Algorithm string
	Err       error
}

func (e ProviderConstructionError) Error() string {
	return fmt.Sprintf(
		"failed to construct hash provider %q: %v",
		e.Algorithm,
		e.Err,
	)
}

func (e ProviderConstructionError) Unwrap() error { return e.Err }

func (ProviderConstructionError) Is(target error) bool {
	return target == ErrProviderConstruction
}

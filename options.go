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
	"log/slog"

	"github.com/blinklabs-io/ionhash/hasher"
)

// BuilderOptionFunc is a type that represents functions that modify the Builder config
type BuilderOptionFunc func(*Builder)

// WithAlgorithm specifies the hash algorithm by name. It is ignored when WithProvider is also used
func WithAlgorithm(algorithm string) BuilderOptionFunc {
	return func(b *Builder) {
		b.algorithm = algorithm
	}
}

// WithProvider specifies an already constructed hash provider. The builder takes ownership of it
func WithProvider(provider hasher.Provider) BuilderOptionFunc {
	return func(b *Builder) {
		b.engine.provider = provider
		b.externalProvider = provider != nil
	}
}

// WithValueWriter specifies the writer that supplies scalar body bytes
func WithValueWriter(writer ValueWriter) BuilderOptionFunc {
	return func(b *Builder) {
		b.engine.writer = writer
	}
}

// WithLogger specifies the logger. The default discards all output
func WithLogger(logger *slog.Logger) BuilderOptionFunc {
	return func(b *Builder) {
		b.logger = logger
	}
}

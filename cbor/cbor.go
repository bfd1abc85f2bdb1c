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

package cbor

import (
	"errors"
	"fmt"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	CborTypeUnsignedInt uint8 = 0x00
	CborTypeNegativeInt uint8 = 0x20
	CborTypeByteString  uint8 = 0x40
	CborTypeTextString  uint8 = 0x60
	CborTypeArray       uint8 = 0x80
	CborTypeMap         uint8 = 0xa0
	CborTypeTag         uint8 = 0xc0
	CborTypeSimple      uint8 = 0xe0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0

	// Max value able to be stored in a single byte without type prefix
	CborMaxUintSimple uint8 = 0x17

	cborAdditionalInfoMask uint8 = 0x1f
	cborIndefiniteLength   uint8 = 0x1f
	cborBreak              byte  = 0xff
)

const (
	// Useful tag numbers
	CborTagDateTimeString = 0
	CborTagEpochDateTime  = 1
	CborTagPositiveBignum = 2
	CborTagNegativeBignum = 3
	CborTagDecimal        = 4

	// Simple values
	cborSimpleFalse     byte = 0xf4
	cborSimpleTrue      byte = 0xf5
	cborSimpleNull      byte = 0xf6
	cborSimpleUndefined byte = 0xf7
	cborFloat16         byte = 0xf9
	cborFloat32         byte = 0xfa
	cborFloat64         byte = 0xfb

	// TagAnnotationPrefix prefixes the annotation given to values carrying a tag
	// without an Ion equivalent
	TagAnnotationPrefix = "cbor.tag."

	// This defaults to 32, but real documents nest deeper
	maxNestedLevels = 256
)

var ErrUnsupported = errors.New("unsupported CBOR item")

// Create an alias for RawMessage for convenience
type RawMessage = _cbor.RawMessage

// Alias for RawTag for convenience
type RawTag = _cbor.RawTag

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Uses sync.Once for thread-safe lazy initialization.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			MaxNestedLevels: maxNestedLevels,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// Encode returns the core deterministic CBOR encoding of data
func Encode(data any) ([]byte, error) {
	opts := _cbor.EncOptions{
		// Make sure that maps have ordered keys
		Sort: _cbor.SortCoreDeterministic,
	}
	em, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(data)
}

// readHead parses the initial byte and argument of a data item. For
// indefinite-length items the returned argument is zero
func readHead(data []byte) (majorType uint8, arg uint64, headLen int, indefinite bool, err error) {
	if len(data) == 0 {
		return 0, 0, 0, false, errors.New("unexpected end of CBOR data")
	}
	majorType = data[0] & CborTypeMask
	info := data[0] & cborAdditionalInfoMask
	switch {
	case info <= CborMaxUintSimple:
		return majorType, uint64(info), 1, false, nil
	case info == cborIndefiniteLength:
		return majorType, 0, 1, true, nil
	case info > 27:
		return 0, 0, 0, false, fmt.Errorf("invalid CBOR additional information: %d", info)
	}
	size := 1 << (info - 24)
	if len(data) < 1+size {
		return 0, 0, 0, false, errors.New("unexpected end of CBOR data")
	}
	for _, b := range data[1 : 1+size] {
		arg = arg<<8 | uint64(b)
	}
	return majorType, arg, 1 + size, false, nil
}

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
	"errors"
	"fmt"

	"github.com/blinklabs-io/ionhash/ion"
)

// Sentinel errors so callers can use errors.Is
var (
	ErrProtocol         = errors.New("builder protocol violation")
	ErrIncompleteState  = errors.New("builder state incomplete")
	ErrUnsupportedValue = errors.New("unsupported value")
)

// ProtocolError indicates misuse of the Builder API, such as an unmatched
// StepOut or a missing field name. It always points at a caller bug
type ProtocolError struct {
	Op     string
	Reason string
}

func (e ProtocolError) Error() string {
	return fmt.Sprintf("protocol error in %s: %s", e.Op, e.Reason)
}

func (ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// IncompleteStateError indicates that Digest was called before exactly one
// complete top-level value was written
type IncompleteStateError struct {
	Depth              int
	Roots              int
	PendingAnnotations int
}

func (e IncompleteStateError) Error() string {
	return fmt.Sprintf(
		"digest requested in incomplete state: depth %d, %d top-level values, %d pending annotations",
		e.Depth,
		e.Roots,
		e.PendingAnnotations,
	)
}

func (IncompleteStateError) Is(target error) bool {
	return target == ErrIncompleteState
}

// UnsupportedValueError indicates a value kind or qualifier combination that
// cannot be framed
type UnsupportedValueError struct {
	Type      ion.Type
	Qualifier Qualifier
	Reason    string
	Err       error
}

func (e UnsupportedValueError) Error() string {
	msg := fmt.Sprintf("unsupported value of type %s", e.Type)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e UnsupportedValueError) Unwrap() error { return e.Err }

func (UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedValue
}

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

package ion

import (
	"errors"
	"fmt"
)

var ErrTreeState = errors.New("invalid tree operation")

// Sink receives a value as a stream of write operations. Input adapters emit
// into a Sink, which is either a hash builder or a Tree
type Sink interface {
	AddAnnotation(name string) error
	SetFieldName(name string) error
	StepIn(t Type) error
	StepOut() error
	WriteScalar(v *Value) error
}

var _ Sink = (*Tree)(nil)

type treeFrame struct {
	value        *Value
	fieldName    string
	fieldNameSet bool
}

// Tree is a Sink that materializes the single value written to it
type Tree struct {
	stack       []*treeFrame
	annotations []string
	root        *Value
}

func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) AddAnnotation(name string) error {
	t.annotations = append(t.annotations, name)
	return nil
}

func (t *Tree) SetFieldName(name string) error {
	top := t.top()
	if top == nil || top.value.Type() != StructType {
		return fmt.Errorf("%w: field name %q outside a struct", ErrTreeState, name)
	}
	if top.fieldNameSet {
		return fmt.Errorf("%w: field name %q follows another field name", ErrTreeState, name)
	}
	top.fieldName = name
	top.fieldNameSet = true
	return nil
}

func (t *Tree) StepIn(typ Type) error {
	if !typ.IsContainer() {
		return fmt.Errorf("%w: %s is not a container", ErrTreeState, typ)
	}
	v := &Value{typ: typ}
	if err := t.attach(v); err != nil {
		return err
	}
	t.stack = append(t.stack, &treeFrame{value: v})
	return nil
}

func (t *Tree) StepOut() error {
	top := t.top()
	if top == nil {
		return fmt.Errorf("%w: no open container", ErrTreeState)
	}
	if top.fieldNameSet || len(t.annotations) > 0 {
		return fmt.Errorf("%w: dangling field name or annotations", ErrTreeState)
	}
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

func (t *Tree) WriteScalar(v *Value) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrTreeState)
	}
	return t.attach(v)
}

// Value returns the materialized value once it is complete
func (t *Tree) Value() (*Value, error) {
	if len(t.stack) > 0 || t.root == nil || len(t.annotations) > 0 {
		return nil, fmt.Errorf("%w: value is incomplete", ErrTreeState)
	}
	return t.root, nil
}

func (t *Tree) attach(v *Value) error {
	if len(t.annotations) > 0 {
		v.annotations = append(t.annotations, v.annotations...)
		t.annotations = nil
	}
	top := t.top()
	if top == nil {
		if t.root != nil {
			return fmt.Errorf("%w: more than one top-level value", ErrTreeState)
		}
		t.root = v
		return nil
	}
	if top.value.Type() == StructType {
		if !top.fieldNameSet {
			return fmt.Errorf("%w: struct field without a name", ErrTreeState)
		}
		top.value.AddField(top.fieldName, v)
		top.fieldNameSet = false
		return nil
	}
	top.value.Append(v)
	return nil
}

func (t *Tree) top() *treeFrame {
	if len(t.stack) == 0 {
		return nil
	}
	return t.stack[len(t.stack)-1]
}

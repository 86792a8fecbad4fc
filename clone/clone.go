// Copyright 2024-2026 The problems Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package clone deep-copies arbitrary structured values so callers can hand
// out data without ever sharing mutable sub-structure.
package clone

import (
	"reflect"

	"github.com/mitchellh/copystructure"
)

// Value returns a deep copy of v. A nil input yields nil. When v cannot be
// copied, because it contains a reference cycle or an uncopyable kind, the
// result is nil rather than the original, so the caller never receives a
// value that aliases the input and copying stays a bounded computation.
func Value(v any) any {
	if v == nil {
		return nil
	}
	if Cyclic(v) {
		return nil
	}
	copied, err := copystructure.Copy(v)
	if err != nil {
		return nil
	}
	return copied
}

// Cyclic reports whether v contains a reference cycle.
func Cyclic(v any) bool {
	return cyclic(reflect.ValueOf(v), map[uintptr]bool{})
}

// cyclic walks v with seen tracking the pointers on the current traversal
// path only, so shared acyclic sub-structure is not mistaken for a cycle.
func cyclic(v reflect.Value, seen map[uintptr]bool) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		return cyclic(v.Elem(), seen)
	case reflect.Ptr:
		if v.IsNil() {
			return false
		}
		p := v.Pointer()
		if seen[p] {
			return true
		}
		seen[p] = true
		found := cyclic(v.Elem(), seen)
		delete(seen, p)
		return found
	case reflect.Map:
		if v.IsNil() {
			return false
		}
		p := v.Pointer()
		if seen[p] {
			return true
		}
		seen[p] = true
		iter := v.MapRange()
		for iter.Next() {
			if cyclic(iter.Value(), seen) {
				delete(seen, p)
				return true
			}
		}
		delete(seen, p)
		return false
	case reflect.Slice:
		if v.IsNil() {
			return false
		}
		p := v.Pointer()
		if seen[p] {
			return true
		}
		seen[p] = true
		for i := 0; i < v.Len(); i++ {
			if cyclic(v.Index(i), seen) {
				delete(seen, p)
				return true
			}
		}
		delete(seen, p)
		return false
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if cyclic(v.Index(i), seen) {
				return true
			}
		}
		return false
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if cyclic(v.Field(i), seen) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

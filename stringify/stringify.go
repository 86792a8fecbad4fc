// Copyright 2024-2026 The problems Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package stringify serializes structured values to JSON text without ever
// failing on the caller: circular references are elided with a marker
// instead of aborting the whole document.
package stringify

import (
	"fmt"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/stkali/problems/clone"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marker replaces a branch that revisits a pointer, map, or slice already
// on the current path.
const Marker = "[Circular]"

// String serializes v to JSON text. Values a plain marshal can handle
// serialize exactly as the standard library would. Everything else, a
// value with a reference cycle or one the encoder rejects, is rewritten
// first: cycle branches become Marker, unserializable kinds become null.
// The rewrite is lossy, struct tags beyond the field name (omitempty in
// particular) are not honored, but it never fails: the worst case is "{}".
func String(v any) string {
	if !clone.Cyclic(v) {
		if out, err := json.Marshal(v); err == nil {
			return string(out)
		}
	}
	out, err := json.Marshal(sanitize(reflect.ValueOf(v), map[uintptr]bool{}))
	if err != nil {
		return "{}"
	}
	return string(out)
}

// sanitize rewrites v as a plain value tree that is guaranteed to marshal:
// cycle branches become Marker, unserializable kinds become nil.
func sanitize(v reflect.Value, seen map[uintptr]bool) any {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return sanitize(v.Elem(), seen)
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		p := v.Pointer()
		if seen[p] {
			return Marker
		}
		seen[p] = true
		out := sanitize(v.Elem(), seen)
		delete(seen, p)
		return out
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		p := v.Pointer()
		if seen[p] {
			return Marker
		}
		seen[p] = true
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = sanitize(iter.Value(), seen)
		}
		delete(seen, p)
		return m
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		p := v.Pointer()
		if seen[p] {
			return Marker
		}
		seen[p] = true
		items := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, sanitize(v.Index(i), seen))
		}
		delete(seen, p)
		return items
	case reflect.Array:
		items := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, sanitize(v.Index(i), seen))
		}
		return items
	case reflect.Struct:
		t := v.Type()
		m := make(map[string]any, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" {
				continue
			}
			name := field.Name
			if tag, ok := field.Tag.Lookup("json"); ok {
				tagName := strings.Split(tag, ",")[0]
				if tagName == "-" {
					continue
				}
				if tagName != "" {
					name = tagName
				}
			}
			m[name] = sanitize(v.Field(i), seen)
		}
		return m
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return nil
	default:
		if v.CanInterface() {
			return v.Interface()
		}
		return nil
	}
}

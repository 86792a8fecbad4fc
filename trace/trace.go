// Copyright 2024-2026 The problems Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package trace captures call stacks and formats them as tracebacks whose
// frame lines are machine-recognizable by their prefix.
package trace

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
)

// Tracer is a captured call stack. It can write itself as a formatted
// traceback or hand individual frames to a callback.
type Tracer interface {
	Stack(fd io.Writer)
	RangeFrames(handle func(frame runtime.Frame))
	fmt.Stringer
}

// depth defines the maximum depth of the stack trace to capture.
// It is set to 2^5 (32) to avoid capturing too much stack information.
const depth = 1 << 5

// Header is the first line of every formatted traceback.
const Header = "Traceback:"

// FramePrefix starts every frame line of a formatted traceback. Consumers
// that want frames only, without the header, filter lines on this prefix.
const FramePrefix = "    at "

// trace represents a slice of program counters that can be used to reconstruct
// a stack trace.
type trace []uintptr

var _ Tracer = (trace)(nil)

// String implements fmt.Stringer.
func (t trace) String() string {
	buf := &bytes.Buffer{}
	t.Stack(buf)
	return buf.String()
}

// RangeFrames iterates over the stack trace and calls the provided handle
// function for each stack frame. A nil handle falls back to the traceback
// frame format on the writer-less path and is therefore ignored.
func (t trace) RangeFrames(handle func(frame runtime.Frame)) {
	if handle == nil {
		return
	}
	fs := runtime.CallersFrames(t)
	var ok = true
	var frame runtime.Frame
	for ; ok; frame, ok = fs.Next() {
		if frame.Function != "" {
			handle(frame)
		}
	}
}

// Stack writes a formatted traceback to the provided io.Writer: the header
// line followed by one indented "at" line per frame.
func (t trace) Stack(fd io.Writer) {
	_, _ = fmt.Fprintln(fd, Header)
	t.RangeFrames(func(frame runtime.Frame) {
		_, _ = fmt.Fprintf(fd, "%s%s (%s:%d)\n", FramePrefix, frame.Function, frame.File, frame.Line)
	})
}

// Capture captures the current goroutine's stack trace, skipping the
// specified number of frames. It returns a Tracer that can be used to print
// or manipulate the stack trace.
func Capture(skip int) Tracer {
	pcs := make(trace, depth)
	count := runtime.Callers(skip, pcs[:])
	return pcs[:count]
}

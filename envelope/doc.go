// Copyright 2024-2026 The problems Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package envelope normalizes heterogeneous error-like values into a
// standardized, serializable multi-error envelope suitable for cross-service
// error reporting.
//
// An Envelope holds an ordered, append-only sequence of Records. Arbitrary
// inputs (message text, field mappings, foreign error-like values) are
// coerced into canonical records through a whitelist projection: only the
// six recognized fields (message, code, source, status, details, links) are
// ever copied out of an input, everything else is dropped. Details and
// links are deep-copied at ingestion, so mutating the caller's value after
// the fact never corrupts a stored record.
//
// Envelopes render three ways: Document (structured value), JSON (circular-
// safe text), and Text (a human-readable multi-error report with stack
// frames). An Envelope is itself an error, so it can travel through generic
// error handling while keeping its structured form.
//
// Aggregation never panics: malformed or foreign inputs degrade to the
// empty record, a partial projection, or a warned no-op.
package envelope

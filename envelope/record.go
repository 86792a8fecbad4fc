package envelope

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"github.com/stkali/problems/clone"
	"github.com/stkali/problems/trace"
)

// Record is one canonical error entry within an Envelope. Only these data
// fields are ever copied out of an arbitrary input; unrecognized fields on
// foreign values are silently dropped. Stack is never read from an input:
// it is captured at ingestion and exposed only on request.
type Record struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Source  string `json:"source,omitempty"`
	Status  int    `json:"status,omitempty"`
	Details any    `json:"details,omitempty"`
	Links   any    `json:"links,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// rawFields receives the untyped whitelist decode. Every field is `any` so
// a foreign value with the wrong type in one field cannot abort the whole
// projection.
type rawFields struct {
	Message    any `mapstructure:"message"`
	Code       any `mapstructure:"code"`
	Source     any `mapstructure:"source"`
	Status     any `mapstructure:"status"`
	StatusCode any `mapstructure:"statusCode"`
	Details    any `mapstructure:"details"`
	Links      any `mapstructure:"links"`
}

// project extracts the whitelisted fields from an arbitrary value. It is a
// projection, never a pass-through: unknown keys are dropped, recognized
// fields are coerced or discarded, and details/links are deep-copied so the
// record never aliases a caller-owned structure. A value that cannot be
// decoded at all degrades to the empty record.
func project(in any) Record {
	var raw rawFields
	if in != nil {
		// a failed decode leaves raw zero, which is the empty record
		_ = mapstructure.Decode(in, &raw)
	}
	var rec Record
	if raw.Message != nil {
		if s, err := cast.ToStringE(raw.Message); err == nil {
			rec.Message = s
		}
	}
	if raw.Code != nil {
		if s, err := cast.ToStringE(raw.Code); err == nil {
			rec.Code = s
		}
	}
	if raw.Source != nil {
		if s, err := cast.ToStringE(raw.Source); err == nil {
			rec.Source = s
		}
	}
	if raw.Status != nil {
		if n, err := cast.ToIntE(raw.Status); err == nil {
			rec.Status = n
		}
	}
	if rec.Status == 0 && raw.StatusCode != nil {
		// legacy numeric-status key
		if n, err := cast.ToIntE(raw.StatusCode); err == nil {
			rec.Status = n
		}
	}
	if raw.Details != nil {
		rec.Details = clone.Value(raw.Details)
	}
	if raw.Links != nil {
		rec.Links = clone.Value(raw.Links)
	}
	return rec
}

// Normalize coerces an arbitrary input into one canonical Record. The
// record carries a freshly captured stack; renderers decide whether to
// expose it.
func Normalize(in Input, opts ...Option) Record {
	return normalize(in, 4, opts)
}

// normalize dispatches on the input tag, applies options to whatever
// fields the input left unset, and stamps the record with a stack captured
// skip frames up.
func normalize(in Input, skip int, opts []Option) Record {
	var rec Record
	switch in.kind {
	case inputText:
		rec.Message = in.text
	case inputFields:
		rec = project(in.fields)
	case inputForeign:
		rec = project(in.foreign)
		if rec.Message == "" && !envelopeShaped(in.foreign) {
			// a plain error contributes its message the way a thrown
			// exception would; envelope-shaped values deliberately do not,
			// construction never flattens a record sequence in
			if err, ok := in.foreign.(error); ok {
				rec.Message = err.Error()
			}
		}
	}
	for _, opt := range opts {
		opt(&rec)
	}
	rec.Stack = trace.Capture(skip).String()
	return rec
}

// envelopeShaped reports whether v carries a multi-record sequence, either
// through the Reporter capability or as a plain "errors" field.
func envelopeShaped(v any) bool {
	if _, ok := v.(Reporter); ok {
		return true
	}
	_, ok := recordSequence(v)
	return ok
}

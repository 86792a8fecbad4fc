package envelope

import (
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/stkali/problems/clone"
)

// Append normalizes the input and appends the resulting records to the end
// of the envelope, returning the same envelope for chaining. An absent
// input is a no-op. A Reporter input contributes every record of its
// rendered document; an envelope-shaped foreign value contributes every
// element of its record sequence, each re-projected through the whitelist;
// anything else contributes a single projected record. Appending never
// panics: a reporter that fails to render degrades to a warned no-op.
func (e *Envelope) Append(in Input, opts ...Option) *Envelope {
	switch in.kind {
	case inputNone:
		return e
	case inputForeign:
		if same, ok := in.foreign.(*Envelope); ok && same == e {
			// self-append must not double the sequence or recurse
			return e
		}
		if reporter, ok := in.foreign.(Reporter); ok {
			doc, ok := renderReporter(reporter)
			if !ok {
				return e
			}
			return e.appendAll(doc.Errors, opts)
		}
		if records, ok := recordSequence(in.foreign); ok {
			return e.appendAll(records, opts)
		}
	}
	e.records = append(e.records, normalize(in, 4, opts))
	return e
}

// appendAll adopts records in order, re-projecting each through the field
// whitelist so no appended record ever aliases caller-owned structures.
func (e *Envelope) appendAll(records []Record, opts []Option) *Envelope {
	for _, rec := range records {
		clean := Record{
			Message: rec.Message,
			Code:    rec.Code,
			Source:  rec.Source,
			Status:  rec.Status,
			Details: clone.Value(rec.Details),
			Links:   clone.Value(rec.Links),
			Stack:   rec.Stack,
		}
		for _, opt := range opts {
			opt(&clean)
		}
		e.records = append(e.records, clean)
	}
	return e
}

// renderReporter invokes the capability probe. The reporter is foreign
// code: a panic inside it, or a recordless document, makes the append a
// no-op instead of propagating a failure.
func renderReporter(r Reporter) (doc Document, ok bool) {
	defer func() {
		if cause := recover(); cause != nil {
			Warningf("error document rendering panicked: %v", cause)
			doc, ok = Document{}, false
		}
	}()
	doc = r.ErrorDocument()
	if len(doc.Errors) == 0 {
		return Document{}, false
	}
	return doc, true
}

// recordSequence pulls the record sequence off an envelope-shaped foreign
// value, sending each element back through the whitelist projection. The
// second result reports whether v exposed a sequence at all: an empty
// sequence is still envelope-shaped and contributes zero records, it does
// not fall back to a single-record projection.
func recordSequence(v any) ([]Record, bool) {
	var shaped struct {
		Errors any `mapstructure:"errors"`
	}
	if err := mapstructure.Decode(v, &shaped); err != nil || shaped.Errors == nil {
		return nil, false
	}
	seq := reflect.ValueOf(shaped.Errors)
	if kind := seq.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, false
	}
	records := make([]Record, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		records = append(records, project(seq.Index(i).Interface()))
	}
	return records, true
}

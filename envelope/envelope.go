package envelope

import (
	"fmt"
	"io"
)

// Document is the structured wire form of an envelope: {"errors": [...]}.
type Document struct {
	Errors []Record `json:"errors"`
}

// Reporter is the error-like capability: any value that can render itself
// as a structured multi-record document takes part in aggregation, no
// shared base type required. Implementations are expected to include
// captured stacks in the rendered document so adopted records keep their
// provenance.
type Reporter interface {
	ErrorDocument() Document
}

// Envelope is the composite error value: an ordered, append-only sequence
// of records. It is never recordless and exclusively owns its records;
// once appended a record is an immutable snapshot. Construct with New or a
// status-class factory, grow with Append, read with Document, JSON, and
// Text.
//
// An Envelope is not safe for concurrent mutation; callers sharing one
// across goroutines must serialize externally.
type Envelope struct {
	records []Record
}

var _ error = (*Envelope)(nil)
var _ fmt.Formatter = (*Envelope)(nil)
var _ Reporter = (*Envelope)(nil)

// New creates an envelope seeded with exactly one record normalized from
// the input. New(None()) seeds the default empty record. Constructing from
// an envelope-shaped value consults only its top-level scalar fields; the
// nested record sequence is deliberately not flattened in, that is what
// Append is for.
func New(in Input, opts ...Option) *Envelope {
	return newEnvelope(in, 5, opts)
}

func newEnvelope(in Input, skip int, opts []Option) *Envelope {
	return &Envelope{records: []Record{normalize(in, skip, opts)}}
}

// Error implements error. The first record's message doubles as the
// envelope's display message for generic error-handling facilities.
func (e *Envelope) Error() string {
	return e.records[0].Message
}

// Len returns the number of records in the envelope.
func (e *Envelope) Len() int {
	return len(e.records)
}

// ErrorDocument implements Reporter. The rendered document always carries
// stacks, so an aggregator adopting these records keeps their provenance.
func (e *Envelope) ErrorDocument() Document {
	return e.Document(IncludeStack())
}

// Format implements fmt.Formatter: %v renders the full multi-record report
// with stack frames, %q quotes the display message, anything else prints
// the display message.
func (e *Envelope) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = io.WriteString(f, e.Text())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	default:
		_, _ = io.WriteString(f, e.Error())
	}
}

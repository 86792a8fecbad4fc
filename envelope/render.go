package envelope

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stkali/problems/clone"
	"github.com/stkali/problems/stringify"
	"github.com/stkali/problems/trace"
)

type renderConfig struct {
	includeStack bool
}

// RenderOption adjusts how an envelope renders to a Document.
type RenderOption func(*renderConfig)

// IncludeStack exposes each record's captured stack in the rendered
// document. Stacks are withheld by default.
func IncludeStack() RenderOption {
	return func(c *renderConfig) { c.includeStack = true }
}

// Document renders the envelope as a structured value. Every record is
// independently re-projected: details and links are re-cloned and only the
// whitelisted fields are carried, so the returned document shares nothing
// with the envelope and a field smuggled past ingestion could never leak.
func (e *Envelope) Document(opts ...RenderOption) Document {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	out := make([]Record, 0, len(e.records))
	for _, rec := range e.records {
		clean := Record{
			Message: rec.Message,
			Code:    rec.Code,
			Source:  rec.Source,
			Status:  rec.Status,
			Details: clone.Value(rec.Details),
			Links:   clone.Value(rec.Links),
		}
		if cfg.includeStack {
			clean.Stack = rec.Stack
		}
		out = append(out, clean)
	}
	return Document{Errors: out}
}

// JSON renders the envelope as JSON text. Serialization is circular-safe
// and never fails; at worst the offending branches are elided.
func (e *Envelope) JSON() string {
	return stringify.String(e.Document())
}

// MarshalJSON hands generic serializers the document form directly, so an
// envelope embedded in a larger payload serializes as its wire contract.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	return []byte(stringify.String(e.Document())), nil
}

// withIndent indents the continuation lines of a record's data block in
// the text report.
const withIndent = "         "

// Text renders a human-readable multi-error report: one block per record,
// in order, each carrying an "Error <i> of <n>" header, the record's stack
// frame lines, and a pretty-printed rendering of its remaining data
// introduced by "with". Blocks are separated by a blank line.
func (e *Envelope) Text() string {
	var sb strings.Builder
	total := len(e.records)
	for i, rec := range e.records {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		_, _ = fmt.Fprintf(&sb, "Error %d of %d: ", i+1, total)
		if rec.Code != "" {
			sb.WriteString("[")
			sb.WriteString(rec.Code)
			sb.WriteString("] ")
		}
		sb.WriteString(rec.Message)
		for _, line := range frameLines(rec.Stack) {
			sb.WriteString("\n")
			sb.WriteString(line)
		}
		if data := rec.payload(); data != nil {
			if block, err := json.MarshalIndent(data, withIndent, "  "); err == nil {
				sb.WriteString("\n    with ")
				sb.Write(block)
			}
		}
	}
	return sb.String()
}

// payload gathers the record's data fields other than the message, for the
// text report only.
func (r Record) payload() map[string]any {
	data := map[string]any{}
	if r.Code != "" {
		data["code"] = r.Code
	}
	if r.Source != "" {
		data["source"] = r.Source
	}
	if r.Status != 0 {
		data["status"] = r.Status
	}
	if r.Details != nil {
		data["details"] = r.Details
	}
	if r.Links != nil {
		data["links"] = r.Links
	}
	if len(data) == 0 {
		return nil
	}
	return data
}

// frameLines filters a captured traceback down to its frame lines,
// dropping the header and anything else that is not an "at" line.
func frameLines(stack string) []string {
	if stack == "" {
		return nil
	}
	var frames []string
	for _, line := range strings.Split(stack, "\n") {
		if strings.HasPrefix(line, trace.FramePrefix) {
			frames = append(frames, line)
		}
	}
	return frames
}

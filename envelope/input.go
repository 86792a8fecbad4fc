package envelope

import "fmt"

type inputKind int

const (
	inputNone inputKind = iota
	inputText
	inputFields
	inputForeign
)

// Input is a tagged construction argument for New, Normalize, Append, and
// the status-class factories. Build one with Text, Textf, Fields, From, or
// None; the zero value behaves like None.
type Input struct {
	kind    inputKind
	text    string
	fields  map[string]any
	foreign any
}

// Text builds an Input carrying a plain message.
func Text(s string) Input {
	return Input{kind: inputText, text: s}
}

// Textf is the formatted variant of Text.
func Textf(format string, a ...any) Input {
	return Input{kind: inputText, text: fmt.Sprintf(format, a...)}
}

// Fields builds an Input whose whitelisted fields are taken from m.
// Unrecognized keys are dropped during projection.
func Fields(m map[string]any) Input {
	return Input{kind: inputFields, fields: m}
}

// From builds an Input from an arbitrary foreign value: another *Envelope,
// a value implementing Reporter, a plain error, or any mapping-shaped
// object. A nil value behaves like None.
func From(v any) Input {
	if v == nil {
		return Input{}
	}
	return Input{kind: inputForeign, foreign: v}
}

// None is the absent input: New(None()) seeds an envelope with one empty
// record and Append(None()) is a no-op.
func None() Input {
	return Input{}
}

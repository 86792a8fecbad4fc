package envelope

import "github.com/stkali/problems/clone"

// Option supplies a field alongside the input. A field present on the
// input itself always wins: options only fill what the input left unset,
// and factory defaults fill after options. On multi-record appends the
// options are applied to every appended record the same way, which is how
// a source override reaches exactly the records lacking their own source.
type Option func(*Record)

// WithCode supplies a code when the input carries none.
func WithCode(code string) Option {
	return func(r *Record) {
		if r.Code == "" {
			r.Code = code
		}
	}
}

// WithSource supplies the name of the originating module or service for
// records that do not name their own.
func WithSource(source string) Option {
	return func(r *Record) {
		if r.Source == "" {
			r.Source = source
		}
	}
}

// WithStatus supplies a numeric status when the input carries none.
func WithStatus(status int) Option {
	return func(r *Record) {
		if r.Status == 0 {
			r.Status = status
		}
	}
}

// WithDetails attaches an arbitrary structured value. The value is
// deep-copied, same as details arriving on the input.
func WithDetails(details any) Option {
	return func(r *Record) {
		if r.Details == nil {
			r.Details = clone.Value(details)
		}
	}
}

// WithLinks attaches an arbitrary links value, deep-copied.
func WithLinks(links any) Option {
	return func(r *Record) {
		if r.Links == nil {
			r.Links = clone.Value(links)
		}
	}
}

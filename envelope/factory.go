package envelope

import "net/http"

// Default codes attached by the status-class factories. A code present on
// the input, or supplied through WithCode, takes precedence.
const (
	CodeBadRequest          = "BAD_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// BadRequest creates an envelope for a malformed or invalid request. The
// seeded record defaults to code BAD_REQUEST and status 400; an explicit
// WithCode option or a code field on the input overrides the default code.
func BadRequest(in Input, opts ...Option) *Envelope {
	return newEnvelope(in, 5, withDefaults(opts, CodeBadRequest, http.StatusBadRequest))
}

// Unauthorized creates an envelope for a request lacking valid credentials.
// The seeded record defaults to code UNAUTHORIZED and status 401; an
// explicit WithCode option or a code field on the input overrides the
// default code.
func Unauthorized(in Input, opts ...Option) *Envelope {
	return newEnvelope(in, 5, withDefaults(opts, CodeUnauthorized, http.StatusUnauthorized))
}

// Forbidden creates an envelope for a request the caller may not perform.
// The seeded record defaults to code FORBIDDEN and status 403; an explicit
// WithCode option or a code field on the input overrides the default code.
func Forbidden(in Input, opts ...Option) *Envelope {
	return newEnvelope(in, 5, withDefaults(opts, CodeForbidden, http.StatusForbidden))
}

// NotFound creates an envelope for a missing resource. The seeded record
// defaults to code NOT_FOUND and status 404; an explicit WithCode option
// or a code field on the input overrides the default code.
func NotFound(in Input, opts ...Option) *Envelope {
	return newEnvelope(in, 5, withDefaults(opts, CodeNotFound, http.StatusNotFound))
}

// MethodNotAllowed creates an envelope for a request using an unsupported
// method. The seeded record defaults to code METHOD_NOT_ALLOWED and status
// 405; an explicit WithCode option or a code field on the input overrides
// the default code.
func MethodNotAllowed(in Input, opts ...Option) *Envelope {
	return newEnvelope(in, 5, withDefaults(opts, CodeMethodNotAllowed, http.StatusMethodNotAllowed))
}

// InternalServerError creates an envelope for an unexpected server-side
// failure. The seeded record defaults to code INTERNAL_SERVER_ERROR and
// status 500; an explicit WithCode option or a code field on the input
// overrides the default code.
func InternalServerError(in Input, opts ...Option) *Envelope {
	return newEnvelope(in, 5, withDefaults(opts, CodeInternalServerError, http.StatusInternalServerError))
}

// ServiceUnavailable creates an envelope for a temporarily unavailable
// service. The seeded record defaults to code SERVICE_UNAVAILABLE and
// status 503; an explicit WithCode option or a code field on the input
// overrides the default code.
func ServiceUnavailable(in Input, opts ...Option) *Envelope {
	return newEnvelope(in, 5, withDefaults(opts, CodeServiceUnavailable, http.StatusServiceUnavailable))
}

// withDefaults appends the factory defaults after the caller's options, so
// the fill-if-unset chain resolves input field > explicit option > default.
func withDefaults(opts []Option, code string, status int) []Option {
	merged := make([]Option, 0, len(opts)+2)
	merged = append(merged, opts...)
	return append(merged, WithCode(code), WithStatus(status))
}

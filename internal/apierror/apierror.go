// Package apierror provides the canonical error taxonomy and response envelopes
// for the API. Every error returned to a client goes through this package so
// internal details (stack traces, driver errors) never leak.
package apierror

import "errors"

// Kind classifies an error into the HTTP-facing taxonomy.
type Kind int

const (
	KindValidation   Kind = iota // 400 — missing/malformed fields
	KindUnauthorized             // 401 — missing or invalid token
	KindForbidden                // 403 — role or ownership mismatch
	KindNotFound                 // 404
	KindConflict                 // 409 — duplicate key / already processed
	KindInvalidState             // 400 — illegal state transition
	KindInternal                 // 500
)

// Error is a typed error carried from services up to the handler layer,
// where respondError maps Kind to a status code.
type Error struct {
	Kind        Kind
	Mensaje     string
	Violaciones []string
}

func (e *Error) Error() string { return e.Mensaje }

func newError(k Kind, msg string) *Error { return &Error{Kind: k, Mensaje: msg} }

func Validation(msg string) *Error   { return newError(KindValidation, msg) }
func Unauthorized(msg string) *Error { return newError(KindUnauthorized, msg) }
func Forbidden(msg string) *Error    { return newError(KindForbidden, msg) }
func NotFound(msg string) *Error     { return newError(KindNotFound, msg) }
func Conflict(msg string) *Error     { return newError(KindConflict, msg) }
func InvalidState(msg string) *Error { return newError(KindInvalidState, msg) }
func Internal(msg string) *Error     { return newError(KindInternal, msg) }

// Violations wraps the result of a referential-integrity pre-commit pass:
// each entry names one missing or unusable reference.
func Violations(msg string, violaciones []string) *Error {
	return &Error{Kind: KindValidation, Mensaje: msg, Violaciones: violaciones}
}

// KindOf extracts the Kind from any error chain; unknown errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ── Response envelopes ───────────────────────────────────────────────────────

// Respuesta is the error envelope: { mensaje, detalle } or { mensaje, errores }.
type Respuesta struct {
	Mensaje string   `json:"mensaje"`
	Detalle string   `json:"detalle,omitempty"`
	Errores []string `json:"errores,omitempty"`
}

func New(mensaje string) *Respuesta { return &Respuesta{Mensaje: mensaje} }

func NewDetalle(mensaje, detalle string) *Respuesta {
	return &Respuesta{Mensaje: mensaje, Detalle: detalle}
}

// NewValidation wraps field-level violations into the error envelope.
func NewValidation(errores []string) *Respuesta {
	return &Respuesta{Mensaje: "Error de validacion", Errores: errores}
}

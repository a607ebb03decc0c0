// Package apperror defines the error taxonomy shared by services and
// handlers, plus the canonical JSON error envelope for 4xx/5xx responses.
// All errors returned to clients go through this package so that status
// codes and payload shape stay consistent across resources.
package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	CodeConflict   Code = "conflict"
	CodeStore      Code = "store"
)

// Error carries a taxonomy code plus the user-facing message. Store errors
// also wrap the driver error; its message is surfaced in the response
// details (acceptable for an internal tool).
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Validation(message string) *Error { return New(CodeValidation, message) }
func NotFound(message string) *Error   { return New(CodeNotFound, message) }
func Conflict(message string) *Error   { return New(CodeConflict, message) }

// Store wraps an underlying data-store failure under the given user-facing
// message.
func Store(message string, err error) *Error {
	return &Error{Code: CodeStore, Message: message, Err: err}
}

// FromStore translates raw store errors into the taxonomy. Unique-index
// violations (SQLSTATE 23505) become ConflictError so that the
// check-then-insert race surfaces as 400 instead of a generic 500; anything
// else is wrapped as a store failure.
func FromStore(message string, err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return Conflict("Email já cadastrado")
		case strings.Contains(pgErr.ConstraintName, "cpf"):
			return Conflict("CPF já cadastrado")
		default:
			return Conflict("Registro duplicado")
		}
	}
	return Store(message, err)
}

// GetCode extracts the taxonomy code; unknown errors are store failures.
func GetCode(err error) Code {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeStore
}

// Status maps a taxonomy code to its HTTP status. Conflicts are modeled as
// 400 (not 409) to preserve the original API contract.
func Status(err error) int {
	switch GetCode(err) {
	case CodeValidation, CodeConflict:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Response is the wire envelope: {"error": "...", "details": "..."}.
type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Payload builds the response envelope for err. Store errors expose the
// wrapped driver message as details for diagnostics.
func Payload(err error) Response {
	resp := Response{Error: err.Error()}
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code == CodeStore && appErr.Err != nil {
		resp.Details = appErr.Err.Error()
	}
	return resp
}

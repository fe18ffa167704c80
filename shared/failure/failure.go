package failure

import (
	"errors"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Failure is an error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

var (
	ForbiddenError    = New(http.StatusForbidden, "You don't have the required permissions")
	StaleVersionError = New(http.StatusConflict, "resource was modified by another request, reload and retry")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

// InvalidFields returns a 400 carrying one message per offending field. The
// message joins the field errors ordered by field name.
func InvalidFields(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	names := slices.Sorted(maps.Keys(fields))

	msgs := make([]string, len(names))
	for i, name := range names {
		msgs[i] = fields[name]
	}

	fail := New(http.StatusBadRequest, strings.Join(msgs, "; "))
	fail.Fields = fields

	return fail
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

// GetCode returns the status of the first Failure in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// FieldsOf returns the per-field messages of the first Failure in err's chain.
func FieldsOf(err error) map[string]string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

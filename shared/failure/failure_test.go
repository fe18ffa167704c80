package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"airwave/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad body")), code: http.StatusBadRequest, message: "bad body"},
		{name: "bad request from string", err: failure.BadRequestFromString("title is required"), code: http.StatusBadRequest, message: "title is required"},
		{name: "unauthorized", err: failure.Unauthorized("missing token"), code: http.StatusUnauthorized, message: "missing token"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError, message: "boom"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
		{name: "conflict", err: failure.Conflict("slot taken"), code: http.StatusConflict, message: "slot taken"},
		{name: "forbidden", err: failure.Forbidden("admins only"), code: http.StatusForbidden, message: "admins only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
	assert.NoError(t, failure.InvalidFields(nil))
}

func TestInvalidFields(t *testing.T) {
	err := failure.InvalidFields(map[string]string{
		"title":    "title is required",
		"duration": "duration is required",
	})

	var fail *failure.Failure
	if assert.ErrorAs(t, err, &fail) {
		assert.Equal(t, http.StatusBadRequest, fail.Code)
		assert.Equal(t, "duration is required; title is required", fail.Message)
		assert.Len(t, fail.Fields, 2)
	}
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusConflict, failure.GetCode(failure.StaleVersionError))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(fmt.Errorf("wrapped: %w", failure.NotFound("station not found"))))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusForbidden, failure.GetCode(failure.ForbiddenError))
}

func TestFieldsOf(t *testing.T) {
	err := fmt.Errorf("validate: %w", failure.InvalidFields(map[string]string{"title": "title is required"}))

	assert.Equal(t, map[string]string{"title": "title is required"}, failure.FieldsOf(err))
	assert.Nil(t, failure.FieldsOf(failure.NotFound("missing")))
	assert.Nil(t, failure.FieldsOf(errors.New("plain")))
}

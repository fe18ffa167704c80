package response

import (
	"encoding/json"
	"net/http"

	"airwave/infras/otel"
	"airwave/shared/constant"
	"airwave/shared/failure"
	"airwave/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Data wraps every successful payload as {"data": ...}.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error  *string           `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(w http.ResponseWriter, code int, message string) {
	write(w, code, Message{Message: &message})
}

func WithJSON(w http.ResponseWriter, code int, payload any) {
	write(w, code, Data[any]{Data: &payload})
}

// WithError maps err to its failure code. Server side failures are reported
// with the generic status text so storage details stay in the logs.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		message = http.StatusText(code)
	}

	write(w, code, Error{Error: &message, Fields: failure.FieldsOf(err)})
}

// Fail records err on scope, logs it with msg and answers with WithError.
// Client errors are logged at warn level.
func Fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	level := zerolog.ErrorLevel
	if code := failure.GetCode(err); code < http.StatusInternalServerError {
		level = zerolog.WarnLevel
	}

	log.WithLevel(level).Err(err).Msg(msg)

	WithError(w, err)
}

func WithRequestLimitExceeded(w http.ResponseWriter) {
	WithMessage(w, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(w http.ResponseWriter) {
	WithMessage(w, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(w http.ResponseWriter, code int, payload any) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.ErrorWithStack(err)
	}
}

package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/merklequery/merkled/engine/leaves/backend"
	"github.com/merklequery/merkled/engine/leaves/rest/models"
)

// ApiHandlerFunc processes one request and returns the response payload to
// encode, or an error to be converted into a structured error response.
type ApiHandlerFunc func(r *http.Request) (interface{}, error)

// Handler wraps an API handler function with response encoding and error
// conversion.
type Handler struct {
	logger     zerolog.Logger
	apiHandler ApiHandlerFunc
}

func NewHandler(logger zerolog.Logger, handler ApiHandlerFunc) *Handler {
	return &Handler{
		logger:     logger,
		apiHandler: handler,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	errorLogger := h.logger.With().Str("request_url", r.URL.String()).Logger()

	response, err := h.apiHandler(r)
	if err != nil {
		h.errorResponse(w, err, errorLogger)
		return
	}

	h.jsonResponse(w, http.StatusOK, response, errorLogger)
}

func (h *Handler) jsonResponse(w http.ResponseWriter, code int, payload interface{}, errorLogger zerolog.Logger) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		errorLogger.Error().Err(err).Msg("failed to encode response")
		h.errorResponse(w, status.Errorf(codes.Internal, "error generating response"), errorLogger)
		return
	}

	w.WriteHeader(code)
	_, err = w.Write(encoded)
	if err != nil {
		errorLogger.Error().Err(err).Msg("failed to write response")
	}
}

// errorResponse converts an error returned by the backend or by request
// parsing into the structured error body with the matching HTTP status.
func (h *Handler) errorResponse(w http.ResponseWriter, err error, errorLogger zerolog.Logger) {

	var model models.Error
	var httpCode int

	var badRequest *BadRequestError
	switch {
	case backend.IsRangeTooLargeError(err):
		httpCode = http.StatusBadRequest
		model = models.Error{
			Code:    models.CodeTooManyLeaves,
			Message: err.Error(),
			Data:    models.DataMaxRange,
		}
	case backend.IsInvalidRangeError(err):
		httpCode = http.StatusBadRequest
		model = models.Error{
			Code:    models.CodeInvalidRange,
			Message: err.Error(),
		}
	case errors.As(err, &badRequest):
		httpCode = http.StatusBadRequest
		model = models.Error{
			Code:    models.CodeInvalidRequest,
			Message: err.Error(),
		}
	case status.Code(err) == codes.NotFound:
		httpCode = http.StatusNotFound
		model = models.Error{
			Code:    models.CodeNotFound,
			Message: err.Error(),
		}
	case status.Code(err) == codes.Unavailable:
		httpCode = http.StatusServiceUnavailable
		model = models.Error{
			Code:    models.CodeUnavailable,
			Message: err.Error(),
		}
	default:
		errorLogger.Error().Err(err).Msg("request failed")
		httpCode = http.StatusInternalServerError
		model = models.Error{
			Code:    models.CodeInternal,
			Message: "internal server error",
		}
	}

	encoded, encErr := json.Marshal(model)
	if encErr != nil {
		errorLogger.Error().Err(encErr).Msg("failed to encode error response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(httpCode)
	_, _ = w.Write(encoded)
}

// BadRequestError marks a request that failed to parse or validate.
type BadRequestError struct {
	err error
}

func NewBadRequestError(err error) *BadRequestError {
	return &BadRequestError{err: err}
}

func (e *BadRequestError) Error() string {
	return e.err.Error()
}

func (e *BadRequestError) Unwrap() error {
	return e.err
}

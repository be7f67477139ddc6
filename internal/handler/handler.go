package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"glowkart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SuccessResponse wraps every successful API payload.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already gone; nothing useful left to do.
		return
	}
}

// writeData writes a successful response in the standard envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, SuccessResponse{Success: true, Data: data})
}

// statusForCode maps stable error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeNotFound, model.ErrCodeProductNotFound:
		return http.StatusNotFound
	case model.ErrCodeUnauthorised, model.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeEmailTaken, model.ErrCodeSKUTaken, model.ErrCodeInsufficientStock, model.ErrCodeCouponExhausted:
		return http.StatusConflict
	case model.ErrCodeValidation, model.ErrCodeInvalidJSON, model.ErrCodeInvalidQuantity,
		model.ErrCodeInvalidCoupon, model.ErrCodeCouponExpired, model.ErrCodeCouponMinOrder,
		model.ErrCodeOrderNotCancellable, model.ErrCodeInvalidTransition:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps an error to the standard error envelope. Domain errors keep
// their code and message; anything else becomes an opaque 500.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := statusForCode(domainErr.Code)
		logger.Debug().
			Str("code", domainErr.Code).
			Int("status", status).
			Msg(domainErr.Message)
		writeJSON(w, status, model.ErrorResponse{
			Error: model.ErrorDetails{
				Code:    domainErr.Code,
				Message: domainErr.Message,
				Details: domainErr.Details,
			},
		})
		return
	}

	logger.Error().Err(err).Msg("handler error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error: model.ErrorDetails{
			Code:    model.ErrCodeInternalError,
			Message: "Something went wrong",
		},
	})
}

// decodeJSON decodes a request body into dst, rejecting unknown garbage early.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid JSON body")
	}
	return nil
}

// pathID parses the {id} path segment as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, model.NewDomainError(model.ErrCodeValidation, "Invalid ID in path")
	}
	return id, nil
}

// pagination parses the limit and offset query parameters, leaving clamping to
// the service layer.
func pagination(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()

	if s := q.Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, model.NewDomainError(model.ErrCodeValidation, "Invalid limit parameter")
		}
	}
	if s := q.Get("offset"); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, model.NewDomainError(model.ErrCodeValidation, "Invalid offset parameter")
		}
	}
	return limit, offset, nil
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
)

// Reason strings returned to callers for rejected transactions.
const (
	msgCreditBelowMinimum = "Minimum accepted Credit Amount is £10.00"
	msgCreditAboveMaximum = "Maximum accepted Credit Amount is £10,000.00"
	msgDebitAboveMaximum  = "Maximum accepted Debit Amount is £5,000.00"
	msgInsufficientFunds  = "Not enough Credit in Balance"
	msgDuplicate          = "Transaction rejected. Another transaction with the same 'correlationId' was previously processed"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeFieldErrors writes a 400 with one reason per invalid field.
func writeFieldErrors(w http.ResponseWriter, fields []dto.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:  "invalid request",
		Fields: fields,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCreditBelowMinimum):
		return http.StatusNotAcceptable
	case errors.Is(err, domain.ErrCreditAboveMaximum):
		return http.StatusNotAcceptable
	case errors.Is(err, domain.ErrDebitAboveMaximum):
		return http.StatusNotAcceptable
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusNotAcceptable
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// reasonForError translates a domain error into the caller-facing reason.
func reasonForError(err error, customerID string) string {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "Non existing customer with ID '" + customerID + "'"
	case errors.Is(err, domain.ErrCreditBelowMinimum):
		return msgCreditBelowMinimum
	case errors.Is(err, domain.ErrCreditAboveMaximum):
		return msgCreditAboveMaximum
	case errors.Is(err, domain.ErrDebitAboveMaximum):
		return msgDebitAboveMaximum
	case errors.Is(err, domain.ErrInsufficientFunds):
		return msgInsufficientFunds
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return msgDuplicate
	default:
		return err.Error()
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// FieldError names one invalid request field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// CreateTransactionRequest represents a request to create a transaction.
type CreateTransactionRequest struct {
	CorrelationID string          `json:"correlation_id"`
	CustomerID    string          `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Operation     string          `json:"operation"`
}

// Validate checks the request shape and returns one entry per invalid field.
// An empty result means the request is well-formed; business rules such as
// amount thresholds are enforced downstream.
func (r *CreateTransactionRequest) Validate() []FieldError {
	var fields []FieldError

	if err := domain.ValidateID("correlation_id", r.CorrelationID); err != nil {
		fields = append(fields, FieldError{Field: "correlation_id", Reason: err.Error()})
	}

	if err := domain.ValidateID("customer_id", r.CustomerID); err != nil {
		fields = append(fields, FieldError{Field: "customer_id", Reason: err.Error()})
	}

	if err := domain.ValidateRequestAmount(r.Amount); err != nil {
		fields = append(fields, FieldError{Field: "amount", Reason: err.Error()})
	}

	if _, err := domain.ParseOperation(r.Operation); err != nil {
		fields = append(fields, FieldError{Field: "operation", Reason: err.Error()})
	}

	return fields
}

// ToUseCaseInput converts to use case input. Callers must Validate first.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		CorrelationID: r.CorrelationID,
		CustomerID:    r.CustomerID,
		Amount:        r.Amount,
		Operation:     domain.Operation(r.Operation),
	}
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// createdAtLayout is the wire format for ledger timestamps.
const createdAtLayout = "2006-01-02 15:04:05"

// TransactionResponse represents a ledger record in API responses. Amounts
// are rendered with exactly two decimal places.
type TransactionResponse struct {
	CorrelationID string `json:"correlation_id"`
	Amount        string `json:"amount"`
	Operation     string `json:"operation"`
	CreatedAt     string `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		CorrelationID: t.CorrelationID,
		Amount:        t.Amount.StringFixed(2),
		Operation:     string(t.Operation),
		CreatedAt:     t.CreatedAt.Format(createdAtLayout),
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// CreateTransactionResponse is the body returned after a transaction commits.
type CreateTransactionResponse struct {
	CustomerID     string               `json:"customer_id"`
	Transaction    *TransactionResponse `json:"transaction"`
	UpdatedBalance string               `json:"updated_balance"`
}

// CreateTransactionResponseFrom builds the creation response.
func CreateTransactionResponseFrom(t *domain.Transaction, balance decimal.Decimal) *CreateTransactionResponse {
	return &CreateTransactionResponse{
		CustomerID:     t.CustomerID,
		Transaction:    TransactionFromDomain(t),
		UpdatedBalance: balance.StringFixed(2),
	}
}

// TransactionsPageResponse is one page of a customer's history.
type TransactionsPageResponse struct {
	CustomerID    string                 `json:"customer_id"`
	Transactions  []*TransactionResponse `json:"transactions"`
	PageNumber    int                    `json:"page_number"`
	PageSize      int                    `json:"page_size"`
	TotalElements int64                  `json:"total_elements"`
	TotalPages    int64                  `json:"total_pages"`
}

// PageFromUseCase converts a use case page to a response.
func PageFromUseCase(customerID string, page *usecase.TransactionPage) *TransactionsPageResponse {
	totalPages := int64(0)
	if page.PageSize > 0 {
		totalPages = (page.TotalElements + int64(page.PageSize) - 1) / int64(page.PageSize)
	}

	return &TransactionsPageResponse{
		CustomerID:    customerID,
		Transactions:  TransactionsFromDomain(page.Transactions),
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    totalPages,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

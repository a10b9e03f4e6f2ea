package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// TransactionService defines the write behavior needed by TransactionHandler.
type TransactionService interface {
	CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error)
}

// HistoryService defines the read behavior needed by TransactionHandler.
type HistoryService interface {
	GetTransactions(ctx context.Context, customerID string, pageNumber, pageSize int) (*usecase.TransactionPage, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	transactionUC TransactionService
	historyUC     HistoryService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService, historyUC HistoryService) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
		historyUC:     historyUC,
	}
}

// Create applies a credit or debit transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	txn, balance, err := h.transactionUC.CreateTransaction(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create transaction", reasonForError(err, req.CustomerID))

		return
	}

	writeJSON(w, http.StatusCreated, dto.CreateTransactionResponseFrom(txn, balance))
}

// ListByCustomer returns one page of a customer's transaction history.
func (h *TransactionHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")
	if err := domain.ValidateID("customer_id", customerID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer ID", err.Error())
		return
	}

	pageNumber := parseIntQuery(r, "pageNumber", 0)
	pageSize := parseIntQuery(r, "pageSize", domain.DefaultPageSize)

	page, err := h.historyUC.GetTransactions(r.Context(), customerID, pageNumber, pageSize)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list transactions", reasonForError(err, customerID))

		return
	}

	writeJSON(w, http.StatusOK, dto.PageFromUseCase(customerID, page))
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/adapter/http/dto"
	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

type transactionServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error)
}

func (s *transactionServiceStub) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error) {
	return s.createFn(ctx, input)
}

type historyServiceStub struct {
	getFn func(ctx context.Context, customerID string, pageNumber, pageSize int) (*usecase.TransactionPage, error)
}

func (s *historyServiceStub) GetTransactions(ctx context.Context, customerID string, pageNumber, pageSize int) (*usecase.TransactionPage, error) {
	return s.getFn(ctx, customerID, pageNumber, pageSize)
}

func validCreateBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(dto.CreateTransactionRequest{
		CorrelationID: "corr-1",
		CustomerID:    "cust-1",
		Amount:        decimal.RequireFromString("100.50"),
		Operation:     "CREDIT",
	})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	return body
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	var captured usecase.CreateTransactionInput

	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error) {
			captured = input
			return &domain.Transaction{
				CorrelationID: input.CorrelationID,
				CustomerID:    input.CustomerID,
				Amount:        input.Amount,
				Operation:     input.Operation,
				Seq:           1,
				CreatedAt:     createdAt,
			}, decimal.RequireFromString("200.50"), nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(validCreateBody(t)))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.CorrelationID != "corr-1" || captured.Operation != domain.OperationCredit {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.CreateTransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.CustomerID != "cust-1" || resp.UpdatedBalance != "200.50" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Transaction == nil || resp.Transaction.Amount != "100.50" {
		t.Fatalf("unexpected transaction in response: %+v", resp.Transaction)
	}
	if resp.Transaction.CreatedAt != "2026-03-14 09:26:53" {
		t.Fatalf("unexpected created_at: %s", resp.Transaction.CreatedAt)
	}
}

func TestTransactionHandler_Create_InvalidBody(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error) {
			t.Fatal("CreateTransaction should not be called")
			return nil, decimal.Zero, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_FieldErrors(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error) {
			t.Fatal("CreateTransaction should not be called on invalid request")
			return nil, decimal.Zero, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.CreateTransactionRequest{
		CustomerID: "cust-1",
		Amount:     decimal.RequireFromString("10"),
		Operation:  "TRANSFER",
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if len(resp.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", resp.Fields)
	}
}

func TestTransactionHandler_Create_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"unknown customer", domain.ErrCustomerNotFound, http.StatusNotFound, "Non existing customer with ID 'cust-1'"},
		{"credit below minimum", domain.ErrCreditBelowMinimum, http.StatusNotAcceptable, msgCreditBelowMinimum},
		{"credit above maximum", domain.ErrCreditAboveMaximum, http.StatusNotAcceptable, msgCreditAboveMaximum},
		{"debit above maximum", domain.ErrDebitAboveMaximum, http.StatusNotAcceptable, msgDebitAboveMaximum},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusNotAcceptable, msgInsufficientFunds},
		{"duplicate correlation id", domain.ErrDuplicateTransaction, http.StatusConflict, "Transaction rejected. Another transaction with the same 'correlationId' was previously processed"},
		{"integrity failure", domain.ErrBalanceIntegrity, http.StatusInternalServerError, domain.ErrBalanceIntegrity.Error()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransactionHandler(&transactionServiceStub{
				createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error) {
					return nil, decimal.Zero, tt.err
				},
			}, nil)

			req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(validCreateBody(t)))
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp.Message != tt.wantReason {
				t.Fatalf("expected reason %q, got %q", tt.wantReason, resp.Message)
			}
		})
	}
}

func TestTransactionHandler_ListByCustomer(t *testing.T) {
	handler := NewTransactionHandler(nil, &historyServiceStub{
		getFn: func(ctx context.Context, customerID string, pageNumber, pageSize int) (*usecase.TransactionPage, error) {
			if customerID != "cust-1" || pageNumber != 2 || pageSize != 5 {
				t.Fatalf("unexpected input %s %d %d", customerID, pageNumber, pageSize)
			}
			return &usecase.TransactionPage{
				Transactions: []*domain.Transaction{
					{
						CorrelationID: "corr-1",
						CustomerID:    customerID,
						Amount:        decimal.RequireFromString("20"),
						Operation:     domain.OperationDebit,
						CreatedAt:     time.Now(),
					},
				},
				PageNumber:    2,
				PageSize:      5,
				TotalElements: 11,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/cust-1?pageNumber=2&pageSize=5", nil)
	req = setChiURLParam(req, "customerId", "cust-1")
	rec := httptest.NewRecorder()

	handler.ListByCustomer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.TransactionsPageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalElements != 11 || resp.TotalPages != 3 {
		t.Fatalf("unexpected page metadata: %+v", resp)
	}
}

func TestTransactionHandler_ListByCustomer_UnknownCustomer(t *testing.T) {
	handler := NewTransactionHandler(nil, &historyServiceStub{
		getFn: func(ctx context.Context, customerID string, pageNumber, pageSize int) (*usecase.TransactionPage, error) {
			return nil, domain.ErrCustomerNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/ghost", nil)
	req = setChiURLParam(req, "customerId", "ghost")
	rec := httptest.NewRecorder()

	handler.ListByCustomer(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Message != "Non existing customer with ID 'ghost'" {
		t.Fatalf("unexpected reason: %q", resp.Message)
	}
}

func TestTransactionHandler_ListByCustomer_MissingID(t *testing.T) {
	handler := NewTransactionHandler(nil, &historyServiceStub{
		getFn: func(ctx context.Context, customerID string, pageNumber, pageSize int) (*usecase.TransactionPage, error) {
			t.Fatal("GetTransactions should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/", nil)
	req = setChiURLParam(req, "customerId", "")
	rec := httptest.NewRecorder()

	handler.ListByCustomer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

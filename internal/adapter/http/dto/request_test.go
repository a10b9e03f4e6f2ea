package dto

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
)

func TestCreateTransactionRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		request    *CreateTransactionRequest
		wantFields []string
	}{
		{
			name: "valid request",
			request: &CreateTransactionRequest{
				CorrelationID: "corr-1",
				CustomerID:    "cust-1",
				Amount:        decimal.RequireFromString("100.50"),
				Operation:     "CREDIT",
			},
		},
		{
			name: "missing identifiers",
			request: &CreateTransactionRequest{
				Amount:    decimal.RequireFromString("100"),
				Operation: "DEBIT",
			},
			wantFields: []string{"correlation_id", "customer_id"},
		},
		{
			name: "identifier too long",
			request: &CreateTransactionRequest{
				CorrelationID: strings.Repeat("x", domain.MaxIDLength+1),
				CustomerID:    "cust-1",
				Amount:        decimal.RequireFromString("100"),
				Operation:     "CREDIT",
			},
			wantFields: []string{"correlation_id"},
		},
		{
			name: "zero amount",
			request: &CreateTransactionRequest{
				CorrelationID: "corr-1",
				CustomerID:    "cust-1",
				Operation:     "CREDIT",
			},
			wantFields: []string{"amount"},
		},
		{
			name: "too many fraction digits",
			request: &CreateTransactionRequest{
				CorrelationID: "corr-1",
				CustomerID:    "cust-1",
				Amount:        decimal.RequireFromString("10.123"),
				Operation:     "CREDIT",
			},
			wantFields: []string{"amount"},
		},
		{
			name: "unknown operation",
			request: &CreateTransactionRequest{
				CorrelationID: "corr-1",
				CustomerID:    "cust-1",
				Amount:        decimal.RequireFromString("100"),
				Operation:     "TRANSFER",
			},
			wantFields: []string{"operation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := tt.request.Validate()

			if len(fields) != len(tt.wantFields) {
				t.Fatalf("Validate() = %+v, want fields %v", fields, tt.wantFields)
			}

			for i, want := range tt.wantFields {
				if fields[i].Field != want {
					t.Fatalf("field %d = %s, want %s", i, fields[i].Field, want)
				}
				if fields[i].Reason == "" {
					t.Fatalf("expected reason for field %s", want)
				}
			}
		})
	}
}

func TestCreateTransactionRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateTransactionRequest{
		CorrelationID: "corr-1",
		CustomerID:    "cust-1",
		Amount:        decimal.RequireFromString("12.34"),
		Operation:     "DEBIT",
	}

	got := req.ToUseCaseInput()
	if got.CorrelationID != "corr-1" || got.CustomerID != "cust-1" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("12.34")) {
		t.Fatalf("unexpected amount: %s", got.Amount)
	}
	if got.Operation != domain.OperationDebit {
		t.Fatalf("unexpected operation: %s", got.Operation)
	}
}

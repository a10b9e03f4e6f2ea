package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}

	return d
}

func TestBalanceApply(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		op      Operation
		amount  string
		want    string
		wantErr error
	}{
		{
			name:    "credit adds exactly",
			balance: "100.00",
			op:      OperationCredit,
			amount:  "10.00",
			want:    "110.00",
		},
		{
			name:    "credit at minimum accepted",
			balance: "0.00",
			op:      OperationCredit,
			amount:  "10.00",
			want:    "10.00",
		},
		{
			name:    "credit at maximum accepted",
			balance: "0.00",
			op:      OperationCredit,
			amount:  "10000.00",
			want:    "10000.00",
		},
		{
			name:    "credit below minimum",
			balance: "100.00",
			op:      OperationCredit,
			amount:  "9.99",
			wantErr: ErrCreditBelowMinimum,
		},
		{
			name:    "credit above maximum",
			balance: "100.00",
			op:      OperationCredit,
			amount:  "10000.01",
			wantErr: ErrCreditAboveMaximum,
		},
		{
			name:    "debit subtracts exactly",
			balance: "100.00",
			op:      OperationDebit,
			amount:  "40.25",
			want:    "59.75",
		},
		{
			name:    "debit down to zero",
			balance: "100.00",
			op:      OperationDebit,
			amount:  "100.00",
			want:    "0.00",
		},
		{
			name:    "debit above maximum",
			balance: "100000.00",
			op:      OperationDebit,
			amount:  "5000.01",
			wantErr: ErrDebitAboveMaximum,
		},
		{
			name:    "debit exceeding balance by one cent",
			balance: "100.00",
			op:      OperationDebit,
			amount:  "100.01",
			wantErr: ErrInsufficientFunds,
		},
		{
			name:    "unknown operation",
			balance: "100.00",
			op:      Operation("TRANSFER"),
			amount:  "10.00",
			wantErr: ErrUnknownOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Balance{CustomerID: "cust-1", Amount: dec(t, tt.balance)}

			got, err := b.Apply(tt.op, dec(t, tt.amount))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !got.Equal(dec(t, tt.want)) {
				t.Errorf("expected new balance %s, got %s", tt.want, got)
			}

			// Apply never mutates the stored balance.
			if !b.Amount.Equal(dec(t, tt.balance)) {
				t.Errorf("balance mutated: %s", b.Amount)
			}
		})
	}
}

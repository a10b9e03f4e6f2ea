package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Operation is the direction of a transaction.
type Operation string

const (
	OperationCredit Operation = "CREDIT"
	OperationDebit  Operation = "DEBIT"
)

// ParseOperation parses an operation name.
func ParseOperation(s string) (Operation, error) {
	switch Operation(s) {
	case OperationCredit:
		return OperationCredit, nil
	case OperationDebit:
		return OperationDebit, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

// Transaction is a single committed balance change, immutable once committed.
// CorrelationID is the caller-supplied idempotency key and is unique across
// all customers, not per customer. Seq is assigned by the store and breaks
// ordering ties between transactions sharing a creation timestamp.
type Transaction struct {
	CorrelationID string
	CustomerID    string
	Amount        decimal.Decimal
	Operation     Operation
	Seq           int64
	CreatedAt     time.Time
}

// Validate checks structural invariants before the transaction enters the
// commit unit.
func (t *Transaction) Validate() error {
	if err := ValidateID("correlation id", t.CorrelationID); err != nil {
		return err
	}

	if err := ValidateID("customer id", t.CustomerID); err != nil {
		return err
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if _, err := ParseOperation(string(t.Operation)); err != nil {
		return err
	}

	return nil
}

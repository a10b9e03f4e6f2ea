package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance holds the current funds of a single customer. There is exactly one
// record per customer, provisioned out of band; the transaction engine only
// ever replaces the amount and never creates or deletes the record.
type Balance struct {
	CustomerID string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Amount thresholds, exact two-fraction-digit decimals.
var (
	minCreditAmount = decimal.NewFromInt(10)
	maxCreditAmount = decimal.NewFromInt(10_000)
	maxDebitAmount  = decimal.NewFromInt(5_000)
)

// Apply validates amount against the thresholds for op and returns the
// resulting balance. The receiver is not mutated.
func (b *Balance) Apply(op Operation, amount decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case OperationCredit:
		if amount.LessThan(minCreditAmount) {
			return decimal.Zero, ErrCreditBelowMinimum
		}

		if amount.GreaterThan(maxCreditAmount) {
			return decimal.Zero, ErrCreditAboveMaximum
		}

		return b.Amount.Add(amount), nil

	case OperationDebit:
		if amount.GreaterThan(maxDebitAmount) {
			return decimal.Zero, ErrDebitAboveMaximum
		}

		newBalance := b.Amount.Sub(amount)
		if newBalance.IsNegative() {
			return decimal.Zero, ErrInsufficientFunds
		}

		return newBalance, nil

	default:
		return decimal.Zero, ErrUnknownOperation
	}
}

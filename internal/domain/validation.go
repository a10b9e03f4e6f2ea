package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidID     = errors.New("invalid identifier")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Validation constants
const (
	MaxIDLength = 64

	MaxAmountIntegerDigits  = 5
	MaxAmountFractionDigits = 2

	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ValidateID validates a correlation or customer identifier. Identifiers are
// opaque tokens; only presence and length are enforced.
func ValidateID(field, id string) error {
	id = strings.TrimSpace(id)

	if id == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidID, field)
	}

	if len(id) > MaxIDLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidID, field, MaxIDLength)
	}

	return nil
}

// ValidateRequestAmount validates a transaction amount as submitted by a
// caller: strictly positive, at most two fraction digits and at most five
// integer digits.
func ValidateRequestAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}

	if amount.Exponent() < -MaxAmountFractionDigits {
		return fmt.Errorf("%w: at most %d fraction digits allowed", ErrInvalidAmount, MaxAmountFractionDigits)
	}

	if amount.GreaterThanOrEqual(decimal.New(1, MaxAmountIntegerDigits)) {
		return fmt.Errorf("%w: at most %d integer digits allowed", ErrInvalidAmount, MaxAmountIntegerDigits)
	}

	return nil
}

// NormalizePagination clamps pagination parameters to sane bounds.
// Page numbers are zero-based.
func NormalizePagination(pageNumber, pageSize int) (int, int) {
	if pageNumber < 0 {
		pageNumber = 0
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return pageNumber, pageSize
}

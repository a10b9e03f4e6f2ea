package domain

import "errors"

var (
	// Customer / balance errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBalanceIntegrity = errors.New("balance record missing for known customer")

	// Transaction errors
	ErrCreditBelowMinimum   = errors.New("credit amount below accepted minimum")
	ErrCreditAboveMaximum   = errors.New("credit amount above accepted maximum")
	ErrDebitAboveMaximum    = errors.New("debit amount above accepted maximum")
	ErrInsufficientFunds    = errors.New("not enough credit in balance")
	ErrDuplicateTransaction = errors.New("transaction with the same correlation id already processed")
	ErrUnknownOperation     = errors.New("unknown operation")
)

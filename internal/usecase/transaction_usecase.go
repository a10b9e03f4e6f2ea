package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
)

// TransactionUseCase applies credit/debit transactions to customer balances.
// It is the sole writer path: every balance mutation goes through
// CreateTransaction as one atomic commit unit of {balance replace, ledger
// insert}, serialized per customer by the store's row lock.
type TransactionUseCase struct {
	txManager       TxManager
	balanceRepo     BalanceRepository
	transactionRepo TransactionRepository
	customerCache   CustomerCache
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TxManager,
	balanceRepo BalanceRepository,
	transactionRepo TransactionRepository,
	customerCache CustomerCache,
	retrier Retrier,
	m *metrics.Metrics,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:       txManager,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		customerCache:   customerCache,
		retrier:         retrier,
		metrics:         m,
	}
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	CorrelationID string
	CustomerID    string
	Amount        decimal.Decimal
	Operation     domain.Operation
}

// CreateTransaction validates and applies one transaction, exactly once per
// correlation id. On success it returns the committed transaction and the
// resulting balance.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error) {
	start := time.Now()

	committed, newBalance, err := uc.createTransaction(ctx, input)
	if uc.metrics != nil {
		if err != nil {
			uc.metrics.TransactionsRejected.WithLabelValues(rejectionReason(err)).Inc()
		} else {
			uc.metrics.TransactionsCreated.WithLabelValues(string(committed.Operation)).Inc()
			uc.metrics.TransactionAmount.WithLabelValues(string(committed.Operation)).Observe(committed.Amount.InexactFloat64())
			uc.metrics.TransactionDuration.Observe(time.Since(start).Seconds())
		}
	}

	return committed, newBalance, err
}

func (uc *TransactionUseCase) createTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error) {
	exists, err := uc.customerCache.Exists(ctx, input.CustomerID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	if !exists {
		return nil, decimal.Zero, domain.ErrCustomerNotFound
	}

	// Cheap duplicate fast path. The ledger's uniqueness constraint is the
	// authoritative check; this only avoids taking a row lock for retries
	// of an already committed correlation id.
	seen, err := uc.transactionRepo.Exists(ctx, input.CorrelationID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	if seen {
		return nil, decimal.Zero, domain.ErrDuplicateTransaction
	}

	var (
		committed  *domain.Transaction
		newBalance decimal.Decimal
	)

	err = uc.retrier.Retry(ctx, func() error {
		var applyErr error
		committed, newBalance, applyErr = uc.applyOnce(ctx, input)
		return applyErr
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	return committed, newBalance, nil
}

// applyOnce runs the commit unit once. Retryable serialization failures
// bubble up to the caller's retrier; everything else is final.
func (uc *TransactionUseCase) applyOnce(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, decimal.Decimal, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer tx.Rollback(ctx)

	balance, err := uc.balanceRepo.GetForUpdate(ctx, tx, input.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			// The existence check said yes but the row is gone. Balances are
			// never deleted, so this is a corrupted store, not a user error.
			log.Error().
				Str("customer_id", input.CustomerID).
				Msg("balance row missing for customer the existence cache reports as present")

			return nil, decimal.Zero, domain.ErrBalanceIntegrity
		}

		return nil, decimal.Zero, err
	}

	newAmount, err := balance.Apply(input.Operation, input.Amount)
	if err != nil {
		return nil, decimal.Zero, err
	}

	now := time.Now().UTC()

	balance.Amount = newAmount
	balance.UpdatedAt = now

	if err := uc.balanceRepo.Update(ctx, tx, balance); err != nil {
		return nil, decimal.Zero, err
	}

	txn := &domain.Transaction{
		CorrelationID: input.CorrelationID,
		CustomerID:    input.CustomerID,
		Amount:        input.Amount,
		Operation:     input.Operation,
		CreatedAt:     now,
	}

	if err := txn.Validate(); err != nil {
		return nil, decimal.Zero, err
	}

	committed, err := uc.transactionRepo.Insert(ctx, tx, txn)
	if err != nil {
		// Includes domain.ErrDuplicateTransaction from the uniqueness
		// constraint; the deferred rollback reverts the balance write.
		return nil, decimal.Zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, decimal.Zero, err
	}

	return committed, newAmount, nil
}

// rejectionReason buckets errors into a bounded metric label set.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate"
	case errors.Is(err, domain.ErrCreditBelowMinimum):
		return "credit_below_minimum"
	case errors.Is(err, domain.ErrCreditAboveMaximum):
		return "credit_above_maximum"
	case errors.Is(err, domain.ErrDebitAboveMaximum):
		return "debit_above_maximum"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrBalanceIntegrity):
		return "integrity"
	default:
		return "store_error"
	}
}

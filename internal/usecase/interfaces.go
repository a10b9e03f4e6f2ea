package usecase

import (
	"context"

	"github.com/iho/gowallet/internal/domain"
)

// BalanceRepository defines data access for customer balances.
type BalanceRepository interface {
	Get(ctx context.Context, customerID string) (*domain.Balance, error)
	GetForUpdate(ctx context.Context, tx Tx, customerID string) (*domain.Balance, error)
	// Update replaces the stored record with balance. There is no partial
	// update; callers read-modify-write the whole record under a row lock.
	Update(ctx context.Context, tx Tx, balance *domain.Balance) error
	Exists(ctx context.Context, customerID string) (bool, error)
}

// TransactionRepository defines data access for the append-only transaction
// ledger.
type TransactionRepository interface {
	Exists(ctx context.Context, correlationID string) (bool, error)
	// Insert appends txn to the ledger. The correlation id uniqueness
	// constraint lives in the store; a violation surfaces as
	// domain.ErrDuplicateTransaction regardless of which caller raced first.
	Insert(ctx context.Context, tx Tx, txn *domain.Transaction) (*domain.Transaction, error)
	PageByCustomer(ctx context.Context, customerID string, pageNumber, pageSize int) ([]*domain.Transaction, error)
	CountByCustomer(ctx context.Context, customerID string) (int64, error)
}

// CustomerCache answers whether a customer has a balance record.
type CustomerCache interface {
	Exists(ctx context.Context, customerID string) (bool, error)
	// Invalidate drops the cached result for customerID. Only provisioning
	// tooling calls this; the serving path never invalidates.
	Invalidate(ctx context.Context, customerID string) error
}

// Tx represents a database transaction: the commit unit for a balance update
// plus its ledger insert.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager handles transaction lifecycle.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

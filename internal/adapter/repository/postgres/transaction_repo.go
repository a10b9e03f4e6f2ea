package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/postgres/generated"
	"github.com/iho/gowallet/internal/usecase"
)

// pgErrUniqueViolation is raised when an insert hits the correlation id
// primary key; it is the authoritative duplicate signal.
const pgErrUniqueViolation = "23505"

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Exists reports whether a ledger record exists for correlationID.
func (r *TransactionRepository) Exists(ctx context.Context, correlationID string) (bool, error) {
	return r.queries.TransactionExists(ctx, correlationID)
}

// Insert appends a transaction to the ledger and returns the stored record
// with its store-assigned sequence number.
func (r *TransactionRepository) Insert(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) (*domain.Transaction, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.InsertTransaction(ctx, generated.InsertTransactionParams{
		CorrelationID: txn.CorrelationID,
		CustomerID:    txn.CustomerID,
		Amount:        decimalToNumeric(txn.Amount),
		Operation:     string(txn.Operation),
		CreatedAt:     timeToPgTimestamptz(txn.CreatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, domain.ErrDuplicateTransaction
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// PageByCustomer retrieves one page of a customer's ledger, newest first.
func (r *TransactionRepository) PageByCustomer(ctx context.Context, customerID string, pageNumber, pageSize int) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByCustomer(ctx, generated.ListTransactionsByCustomerParams{
		CustomerID: customerID,
		Limit:      int32(pageSize),
		Offset:     int32(pageNumber * pageSize),
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

// CountByCustomer returns the total number of ledger records for a customer.
func (r *TransactionRepository) CountByCustomer(ctx context.Context, customerID string) (int64, error) {
	return r.queries.CountTransactionsByCustomer(ctx, customerID)
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		CorrelationID: row.CorrelationID,
		CustomerID:    row.CustomerID,
		Amount:        numericToDecimal(row.Amount),
		Operation:     domain.Operation(row.Operation),
		Seq:           row.Seq,
		CreatedAt:     row.CreatedAt.Time,
	}
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/infrastructure/postgres/generated"
	"github.com/iho/gowallet/internal/usecase"
)

// BalanceRepository implements usecase.BalanceRepository.
type BalanceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a balance record for a new customer.
func (r *BalanceRepository) Create(ctx context.Context, balance *domain.Balance) error {
	_, err := r.queries.CreateBalance(ctx, generated.CreateBalanceParams{
		CustomerID: balance.CustomerID,
		Amount:     decimalToNumeric(balance.Amount),
		CreatedAt:  timeToPgTimestamptz(balance.CreatedAt),
		UpdatedAt:  timeToPgTimestamptz(balance.UpdatedAt),
	})

	return err
}

// Get retrieves a customer's balance.
func (r *BalanceRepository) Get(ctx context.Context, customerID string) (*domain.Balance, error) {
	row, err := r.queries.GetBalanceByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	return rowToBalance(row), nil
}

// GetForUpdate retrieves a customer's balance with a FOR UPDATE lock, so
// concurrent writers for the same customer queue on the row.
func (r *BalanceRepository) GetForUpdate(ctx context.Context, tx usecase.Tx, customerID string) (*domain.Balance, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetBalanceByCustomerIDForUpdate(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	return rowToBalance(row), nil
}

// Update replaces the stored amount and updated_at of a customer's balance.
func (r *BalanceRepository) Update(ctx context.Context, tx usecase.Tx, balance *domain.Balance) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateBalance(ctx, generated.UpdateBalanceParams{
		CustomerID: balance.CustomerID,
		Amount:     decimalToNumeric(balance.Amount),
		UpdatedAt:  timeToPgTimestamptz(balance.UpdatedAt),
	})
}

// Exists reports whether a balance record exists for customerID.
func (r *BalanceRepository) Exists(ctx context.Context, customerID string) (bool, error) {
	return r.queries.BalanceExists(ctx, customerID)
}

func rowToBalance(row generated.Balance) *domain.Balance {
	return &domain.Balance{
		CustomerID: row.CustomerID,
		Amount:     numericToDecimal(row.Amount),
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

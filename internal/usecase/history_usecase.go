package usecase

import (
	"context"

	"github.com/iho/gowallet/internal/domain"
)

// HistoryUseCase serves paginated transaction history reads, gated by
// customer existence. Reads take no lock beyond the store's own isolation.
type HistoryUseCase struct {
	transactionRepo TransactionRepository
	customerCache   CustomerCache
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(transactionRepo TransactionRepository, customerCache CustomerCache) *HistoryUseCase {
	return &HistoryUseCase{
		transactionRepo: transactionRepo,
		customerCache:   customerCache,
	}
}

// TransactionPage is one page of a customer's history, most recent first,
// with the total committed count for client-side pagination.
type TransactionPage struct {
	Transactions  []*domain.Transaction
	PageNumber    int
	PageSize      int
	TotalElements int64
}

// GetTransactions returns one history page for a customer.
func (uc *HistoryUseCase) GetTransactions(ctx context.Context, customerID string, pageNumber, pageSize int) (*TransactionPage, error) {
	exists, err := uc.customerCache.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, domain.ErrCustomerNotFound
	}

	pageNumber, pageSize = domain.NormalizePagination(pageNumber, pageSize)

	transactions, err := uc.transactionRepo.PageByCustomer(ctx, customerID, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := uc.transactionRepo.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Transactions:  transactions,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: total,
	}, nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/internal/usecase/mocks"
)

func TestHistoryUseCase_GetTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()

	transactionRepo := mocks.NewMockGenTransactionRepository(ctrl)
	cache := mocks.NewMockGenCustomerCache(ctrl)

	cache.EXPECT().Exists(gomock.Any(), "cust-1").Return(true, nil)
	transactionRepo.EXPECT().PageByCustomer(gomock.Any(), "cust-1", 0, 10).Return([]*domain.Transaction{
		{CorrelationID: "corr-2", CustomerID: "cust-1", Amount: decimal.NewFromInt(20), Operation: domain.OperationDebit, Seq: 2, CreatedAt: now},
		{CorrelationID: "corr-1", CustomerID: "cust-1", Amount: decimal.NewFromInt(50), Operation: domain.OperationCredit, Seq: 1, CreatedAt: now.Add(-time.Minute)},
	}, nil)
	transactionRepo.EXPECT().CountByCustomer(gomock.Any(), "cust-1").Return(int64(12), nil)

	uc := usecase.NewHistoryUseCase(transactionRepo, cache)

	page, err := uc.GetTransactions(context.Background(), "cust-1", 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(page.Transactions) != 2 {
		t.Errorf("expected 2 transactions, got %d", len(page.Transactions))
	}

	if page.TotalElements != 12 {
		t.Errorf("expected total 12, got %d", page.TotalElements)
	}

	if page.PageNumber != 0 || page.PageSize != 10 {
		t.Errorf("unexpected page shape: %d/%d", page.PageNumber, page.PageSize)
	}
}

func TestHistoryUseCase_NormalizesPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactionRepo := mocks.NewMockGenTransactionRepository(ctrl)
	cache := mocks.NewMockGenCustomerCache(ctrl)

	cache.EXPECT().Exists(gomock.Any(), "cust-1").Return(true, nil)
	transactionRepo.EXPECT().PageByCustomer(gomock.Any(), "cust-1", 0, domain.DefaultPageSize).Return(nil, nil)
	transactionRepo.EXPECT().CountByCustomer(gomock.Any(), "cust-1").Return(int64(0), nil)

	uc := usecase.NewHistoryUseCase(transactionRepo, cache)

	page, err := uc.GetTransactions(context.Background(), "cust-1", -1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.PageNumber != 0 || page.PageSize != domain.DefaultPageSize {
		t.Errorf("expected normalized pagination, got %d/%d", page.PageNumber, page.PageSize)
	}
}

func TestHistoryUseCase_UnknownCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactionRepo := mocks.NewMockGenTransactionRepository(ctrl)
	cache := mocks.NewMockGenCustomerCache(ctrl)

	// The ledger is never touched when the existence check fails.
	cache.EXPECT().Exists(gomock.Any(), "ghost").Return(false, nil)

	uc := usecase.NewHistoryUseCase(transactionRepo, cache)

	_, err := uc.GetTransactions(context.Background(), "ghost", 0, 10)
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestHistoryUseCase_CacheFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transactionRepo := mocks.NewMockGenTransactionRepository(ctrl)
	cache := mocks.NewMockGenCustomerCache(ctrl)

	cacheErr := errors.New("redis down")
	cache.EXPECT().Exists(gomock.Any(), "cust-1").Return(false, cacheErr)

	uc := usecase.NewHistoryUseCase(transactionRepo, cache)

	_, err := uc.GetTransactions(context.Background(), "cust-1", 0, 10)
	if !errors.Is(err, cacheErr) {
		t.Fatalf("expected cache error, got %v", err)
	}
}

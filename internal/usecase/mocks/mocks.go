package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/iho/gowallet/internal/domain"
	"github.com/iho/gowallet/internal/usecase"
)

// MockBalanceRepository is a mock implementation of BalanceRepository.
type MockBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]*domain.Balance

	GetFunc          func(ctx context.Context, customerID string) (*domain.Balance, error)
	GetForUpdateFunc func(ctx context.Context, tx usecase.Tx, customerID string) (*domain.Balance, error)
	UpdateFunc       func(ctx context.Context, tx usecase.Tx, balance *domain.Balance) error
	ExistsFunc       func(ctx context.Context, customerID string) (bool, error)
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{
		balances: make(map[string]*domain.Balance),
	}
}

// Put seeds the in-memory store for tests that use default behavior.
func (m *MockBalanceRepository) Put(balance *domain.Balance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[balance.CustomerID] = balance
}

func (m *MockBalanceRepository) Get(ctx context.Context, customerID string) (*domain.Balance, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.balances[customerID]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockBalanceRepository) GetForUpdate(ctx context.Context, tx usecase.Tx, customerID string) (*domain.Balance, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, tx, customerID)
	}
	return m.Get(ctx, customerID)
}

func (m *MockBalanceRepository) Update(ctx context.Context, tx usecase.Tx, balance *domain.Balance) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *balance
	m.balances[balance.CustomerID] = &copied
	return nil
}

func (m *MockBalanceRepository) Exists(ctx context.Context, customerID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.balances[customerID]
	return ok, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	nextSeq      int64

	ExistsFunc          func(ctx context.Context, correlationID string) (bool, error)
	InsertFunc          func(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) (*domain.Transaction, error)
	PageByCustomerFunc  func(ctx context.Context, customerID string, pageNumber, pageSize int) ([]*domain.Transaction, error)
	CountByCustomerFunc func(ctx context.Context, customerID string) (int64, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Exists(ctx context.Context, correlationID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, correlationID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.transactions[correlationID]
	return ok, nil
}

func (m *MockTransactionRepository) Insert(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) (*domain.Transaction, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[txn.CorrelationID]; ok {
		return nil, domain.ErrDuplicateTransaction
	}
	m.nextSeq++
	copied := *txn
	copied.Seq = m.nextSeq
	m.transactions[txn.CorrelationID] = &copied
	return &copied, nil
}

func (m *MockTransactionRepository) PageByCustomer(ctx context.Context, customerID string, pageNumber, pageSize int) ([]*domain.Transaction, error) {
	if m.PageByCustomerFunc != nil {
		return m.PageByCustomerFunc(ctx, customerID, pageNumber, pageSize)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []*domain.Transaction
	for _, txn := range m.transactions {
		if txn.CustomerID == customerID {
			all = append(all, txn)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].Seq > all[j].Seq
	})

	start := pageNumber * pageSize
	if start >= len(all) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *MockTransactionRepository) CountByCustomer(ctx context.Context, customerID string) (int64, error) {
	if m.CountByCustomerFunc != nil {
		return m.CountByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, txn := range m.transactions {
		if txn.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

// MockCustomerCache is a mock implementation of CustomerCache.
type MockCustomerCache struct {
	mu      sync.RWMutex
	entries map[string]bool

	ExistsFunc     func(ctx context.Context, customerID string) (bool, error)
	InvalidateFunc func(ctx context.Context, customerID string) error
}

func NewMockCustomerCache() *MockCustomerCache {
	return &MockCustomerCache{
		entries: make(map[string]bool),
	}
}

// SetExists seeds a cached existence result.
func (m *MockCustomerCache) SetExists(customerID string, exists bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[customerID] = exists
}

func (m *MockCustomerCache) Exists(ctx context.Context, customerID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[customerID], nil
}

func (m *MockCustomerCache) Invalidate(ctx context.Context, customerID string) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, customerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, customerID)
	return nil
}

// MockTx is a mock implementation of Tx that records commit/rollback calls.
type MockTx struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func NewMockTx() *MockTx {
	return &MockTx{}
}

func (m *MockTx) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Committed = true
	return nil
}

func (m *MockTx) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTxManager is a mock implementation of TxManager.
type MockTxManager struct {
	BeginFunc func(ctx context.Context) (usecase.Tx, error)

	mu    sync.Mutex
	Begun []*MockTx
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Tx, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := NewMockTx()
	m.Begun = append(m.Begun, tx)
	return tx, nil
}

// MockRetrier is a pass-through Retrier.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

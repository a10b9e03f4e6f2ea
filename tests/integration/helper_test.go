package integration

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"

	"github.com/iho/gowallet/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/gowallet/internal/adapter/repository/redis"
	"github.com/iho/gowallet/internal/usecase"
	"github.com/iho/gowallet/tests/testutil"
)

// walletStack wires the full write and read path against a real database,
// with the existence cache backed by an in-process redis.
type walletStack struct {
	TransactionUC *usecase.TransactionUseCase
	HistoryUC     *usecase.HistoryUseCase
	BalanceRepo   *postgres.BalanceRepository
	Cache         *redisrepo.CustomerCache
}

func newWalletStack(t *testing.T, testDB *testutil.TestDB) *walletStack {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	pool := testDB.Pool
	balanceRepo := postgres.NewBalanceRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txManager := postgres.NewTxManager(pool)
	retrier := postgres.NewRetrier()
	cache := redisrepo.NewCustomerCache(client, balanceRepo, nil)

	return &walletStack{
		TransactionUC: usecase.NewTransactionUseCase(txManager, balanceRepo, transactionRepo, cache, retrier, nil),
		HistoryUC:     usecase.NewHistoryUseCase(transactionRepo, cache),
		BalanceRepo:   balanceRepo,
		Cache:         cache,
	}
}

package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

func newTestRedisClient(t *testing.T) (*redislib.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{
		Addr: mr.Addr(),
	})

	return client, mr
}

// stubStore is an in-memory ExistenceStore recording how often it was asked.
type stubStore struct {
	customers map[string]bool
	calls     int
	err       error
}

func (s *stubStore) Exists(_ context.Context, customerID string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.customers[customerID], nil
}

package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the wallet's Prometheus metrics. HTTP-level metrics live in
// the router middleware; these cover the transaction engine and the customer
// existence cache.
type Metrics struct {
	TransactionsCreated  *prometheus.CounterVec
	TransactionsRejected *prometheus.CounterVec
	TransactionDuration  prometheus.Histogram
	TransactionAmount    *prometheus.HistogramVec

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers the wallet metrics on the default registerer.
func New() *Metrics {
	return &Metrics{
		TransactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_transactions_created_total",
				Help: "Total number of transactions accepted",
			},
			[]string{"operation"},
		),
		TransactionsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_transactions_rejected_total",
				Help: "Total number of transactions rejected by reason",
			},
			[]string{"reason"},
		),
		TransactionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gowallet_transaction_duration_seconds",
			Help:    "Duration of transaction processing",
			Buckets: prometheus.DefBuckets,
		}),
		TransactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gowallet_transaction_amount",
				Help:    "Transaction amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000},
			},
			[]string{"operation"},
		),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_customer_cache_hits_total",
			Help: "Total customer existence lookups answered from cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_customer_cache_misses_total",
			Help: "Total customer existence lookups that fell through to the store",
		}),
	}
}

// RegisterPoolStats exposes connection counts of the pgx pool as gauges,
// sampled at scrape time.
func RegisterPoolStats(pool *pgxpool.Pool) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "gowallet_db_connections_total",
		Help: "Current number of database connections in the pool",
	}, func() float64 {
		return float64(pool.Stat().TotalConns())
	})

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "gowallet_db_connections_idle",
		Help: "Current number of idle database connections in the pool",
	}, func() float64 {
		return float64(pool.Stat().IdleConns())
	})
}

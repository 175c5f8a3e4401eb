// Package metricspkg provides Prometheus instrumentation for the API.
package metricspkg

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TradesTotal counts committed trades, partitioned by direction.
	TradesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "proxmarket_trades_total",
		Help: "Total number of committed trades",
	}, []string{"direction"})

	// OrdersTotal counts committed proxy orders.
	OrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proxmarket_orders_total",
		Help: "Total number of committed proxy orders",
	})

	// LedgerRejections counts ledger operations rejected by a funds
	// or holdings check, partitioned by reason.
	LedgerRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "proxmarket_ledger_rejections_total",
		Help: "Ledger operations rejected by sufficiency checks",
	}, []string{"reason"})

	// TxRetries counts ledger transaction retries after conflicts.
	TxRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "proxmarket_tx_retries_total",
		Help: "Ledger transactions retried after serialization conflicts",
	})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

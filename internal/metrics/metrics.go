// Package metrics holds the Prometheus collectors exported by the chat
// server.
package metrics

import (
	// #nosec
	_ "net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tcpchat"

const (
	kindLabelName   = "kind"
	resultLabelName = "result"
)

// Delivery results.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

var (
	// Sessions is the number of registered sessions.
	Sessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "number of registered chat sessions",
		})

	// Connections counts accepted connections, including those that never
	// sent an identity.
	Connections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_total",
			Help:      "accepted connections",
		})

	// Commands counts parsed command lines by kind.
	Commands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "command lines received, by kind",
		}, []string{kindLabelName})

	// Deliveries counts chat payloads written to recipients.
	Deliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "chat messages delivered to recipients, by result",
		}, []string{resultLabelName})
)

// Register registers every collector with r.
func Register(r prometheus.Registerer) {
	r.MustRegister(Sessions)
	r.MustRegister(Connections)
	r.MustRegister(Commands)
	r.MustRegister(Deliveries)
}

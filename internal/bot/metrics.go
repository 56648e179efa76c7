package bot

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	updatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_updates_total",
		Help: "Handled Telegram updates by kind.",
	}, []string{"kind"})

	accessDeniedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_access_denied_total",
		Help: "Gate denials by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(updatesTotal, accessDeniedTotal)
}

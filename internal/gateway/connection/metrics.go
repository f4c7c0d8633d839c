package connection

import "github.com/prometheus/client_golang/prometheus"

var (
	connectedUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gochat_gateway_connected_users",
		Help: "Users with at least one open socket on this gateway",
	})
	framesSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gochat_gateway_frames_sent_total",
		Help: "Frames written to client sockets",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(connectedUsers, framesSent)
}

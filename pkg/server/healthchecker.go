package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker reports healthy while its dependency answers Ping.
type PingHealthChecker struct {
	target Pinger
}

func NewPingHealthChecker(target Pinger) *PingHealthChecker {
	return &PingHealthChecker{target: target}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	if hc.target == nil {
		return false
	}
	return hc.target.Ping(ctx) == nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Environment names recorded in audits and logs.
const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

// EnvironmentName maps the sandbox flag to its label.
func EnvironmentName(useSandbox bool) string {
	if useSandbox {
		return EnvironmentSandbox
	}
	return EnvironmentProduction
}

// RelayAudit records one pass through the proxy front. Payloads carry the
// shared secrets, so they are never part of an audit.
type RelayAudit struct {
	ID             uuid.UUID `json:"id"`
	RequestID      string    `json:"request_id"`
	Operation      string    `json:"operation"`
	Environment    string    `json:"environment"`
	UpstreamStatus int       `json:"upstream_status"` // 0 = gateway not reached
	ProxyStatus    int       `json:"proxy_status"`
	LatencyMS      int64     `json:"latency_ms"`
	IPAddress      string    `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
}

// Relayed reports whether the gateway produced a 2xx answer.
func (a *RelayAudit) Relayed() bool {
	return a.UpstreamStatus >= 200 && a.UpstreamStatus < 300
}

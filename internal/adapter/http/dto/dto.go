package dto

import (
	"time"

	"gaps-gateway/internal/core/domain"
)

// ProxyRequest is the JSON body accepted by the relay. Data is the signed
// XML document and is forwarded as-is.
type ProxyRequest struct {
	Endpoint string `json:"endpoint" binding:"required,gaps_operation"`
	Data     string `json:"data" binding:"required"`
	IsTest   *bool  `json:"isTest,omitempty"` // nil = sandbox
}

// ToEnvelope converts the request into a domain envelope. A missing isTest
// selects the sandbox.
func (r ProxyRequest) ToEnvelope() domain.ProxyEnvelope {
	useSandbox := true
	if r.IsTest != nil {
		useSandbox = *r.IsTest
	}
	return domain.ProxyEnvelope{
		Endpoint:   r.Endpoint,
		Payload:    r.Data,
		UseSandbox: useSandbox,
	}
}

// AuditListQuery binds GET /audits query parameters.
type AuditListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// RelayAuditResponse is one audit row as exposed over HTTP.
type RelayAuditResponse struct {
	ID             string `json:"id"`
	RequestID      string `json:"request_id"`
	Operation      string `json:"operation"`
	Environment    string `json:"environment"`
	UpstreamStatus int    `json:"upstream_status"`
	ProxyStatus    int    `json:"proxy_status"`
	LatencyMS      int64  `json:"latency_ms"`
	IPAddress      string `json:"ip_address"`
	CreatedAt      string `json:"created_at"`
}

// ToRelayAuditResponse converts domain audits to DTOs.
func ToRelayAuditResponse(audits []domain.RelayAudit) []RelayAuditResponse {
	out := make([]RelayAuditResponse, 0, len(audits))
	for _, a := range audits {
		out = append(out, RelayAuditResponse{
			ID:             a.ID.String(),
			RequestID:      a.RequestID,
			Operation:      a.Operation,
			Environment:    a.Environment,
			UpstreamStatus: a.UpstreamStatus,
			ProxyStatus:    a.ProxyStatus,
			LatencyMS:      a.LatencyMS,
			IPAddress:      a.IPAddress,
			CreatedAt:      a.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

package service

import (
	"context"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, relay audits are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records a relay audit asynchronously (fire-and-forget).
func (s *auditService) Log(ctx context.Context, entry *domain.RelayAudit) {
	go func() {
		s.log.Info().
			Str("request_id", entry.RequestID).
			Str("operation", entry.Operation).
			Str("environment", entry.Environment).
			Int("upstream_status", entry.UpstreamStatus).
			Int("proxy_status", entry.ProxyStatus).
			Int64("latency_ms", entry.LatencyMS).
			Str("ip", entry.IPAddress).
			Msg("relay audit")

		if s.repo != nil {
			if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
				s.log.Warn().Err(err).Str("request_id", entry.RequestID).Msg("failed to persist relay audit")
			}
		}
	}()
}

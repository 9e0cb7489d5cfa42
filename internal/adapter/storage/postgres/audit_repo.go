package postgres

import (
	"context"
	"fmt"

	"gaps-gateway/internal/core/domain"
)

// RelayAuditRepo implements ports.AuditRepository.
type RelayAuditRepo struct {
	pool Pool
}

// NewRelayAuditRepo creates a PostgreSQL-backed relay audit repository.
func NewRelayAuditRepo(pool Pool) *RelayAuditRepo {
	return &RelayAuditRepo{pool: pool}
}

// Create inserts one relay audit.
func (r *RelayAuditRepo) Create(ctx context.Context, a *domain.RelayAudit) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO relay_audits (id, request_id, operation, environment, upstream_status, proxy_status, latency_ms, ip_address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.RequestID, a.Operation, a.Environment,
		a.UpstreamStatus, a.ProxyStatus, a.LatencyMS, a.IPAddress, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert relay audit: %w", err)
	}
	return nil
}

// ListRecent returns up to limit audits, newest first.
func (r *RelayAuditRepo) ListRecent(ctx context.Context, limit int) ([]domain.RelayAudit, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, request_id, operation, environment, upstream_status, proxy_status, latency_ms, ip_address, created_at
		 FROM relay_audits ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list relay audits: %w", err)
	}
	defer rows.Close()

	var audits []domain.RelayAudit
	for rows.Next() {
		var a domain.RelayAudit
		if err := rows.Scan(
			&a.ID, &a.RequestID, &a.Operation, &a.Environment,
			&a.UpstreamStatus, &a.ProxyStatus, &a.LatencyMS, &a.IPAddress, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan relay audit: %w", err)
		}
		audits = append(audits, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relay audits: %w", err)
	}
	return audits, nil
}

package integration

import (
	"context"
	"sort"
	"sync"

	"gaps-gateway/internal/core/domain"
)

// --- In-Memory Relay Audit Repo ---

// inMemoryAuditRepo stands in for the postgres relay_audits table. It
// satisfies both ports.AuditRepository and ports.AuditReader.
type inMemoryAuditRepo struct {
	mu      sync.RWMutex
	entries []domain.RelayAudit
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, entry *domain.RelayAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryAuditRepo) ListRecent(ctx context.Context, limit int) ([]domain.RelayAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.RelayAudit, len(r.entries))
	copy(out, r.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryAuditRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *inMemoryAuditRepo) byOperation(op string) []domain.RelayAudit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.RelayAudit
	for _, e := range r.entries {
		if e.Operation == op {
			out = append(out, e)
		}
	}
	return out
}

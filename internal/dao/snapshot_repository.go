package dao

import (
	"context"
	"sync"

	"github.com/haierkeys/link-store-service/internal/domain"
)

// snapshotRepository 只保留最新的导出快照
type snapshotRepository struct {
	mu     sync.RWMutex
	latest *domain.Snapshot
}

// NewSnapshotRepository 创建快照仓储
func NewSnapshotRepository() domain.SnapshotRepository {
	return &snapshotRepository{}
}

var _ domain.SnapshotRepository = (*snapshotRepository)(nil)

func (r *snapshotRepository) Put(ctx context.Context, s *domain.Snapshot) error {
	r.mu.Lock()
	r.latest = s
	r.mu.Unlock()
	return nil
}

func (r *snapshotRepository) Latest(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest, nil
}

func (r *snapshotRepository) Get(ctx context.Context, id string) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.latest == nil || r.latest.ID != id {
		return nil, nil
	}
	return r.latest, nil
}

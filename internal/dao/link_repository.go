// Package dao 实现 domain 中定义的仓储接口
package dao

import (
	"context"
	"sync"

	"github.com/haierkeys/link-store-service/internal/domain"
)

// linkRepository 进程内链接列表
type linkRepository struct {
	mu    sync.RWMutex
	links []domain.Link
}

// NewLinkRepository 创建空的链接仓储
func NewLinkRepository() domain.LinkRepository {
	return &linkRepository{
		links: make([]domain.Link, 0),
	}
}

// 确保 linkRepository 实现了 domain.LinkRepository 接口
var _ domain.LinkRepository = (*linkRepository)(nil)

func (r *linkRepository) Replace(ctx context.Context, links []domain.Link) error {
	next := make([]domain.Link, len(links))
	copy(next, links)

	r.mu.Lock()
	r.links = next
	r.mu.Unlock()
	return nil
}

func (r *linkRepository) Append(ctx context.Context, link domain.Link) ([]domain.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.links = append(r.links, link)
	return cloneLinks(r.links), nil
}

func (r *linkRepository) List(ctx context.Context) ([]domain.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneLinks(r.links), nil
}

func (r *linkRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.links), nil
}

// cloneLinks 返回非 nil 副本，空列表编码为 []
func cloneLinks(links []domain.Link) []domain.Link {
	out := make([]domain.Link, len(links))
	copy(out, links)
	return out
}

// Package domain 定义领域模型和接口
package domain

import (
	"context"
	"time"
)

// Link 链接记录，只包含标题与地址
// 值按提交原样保存，不做 trim
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Snapshot 导出快照，仅保留最新一份
type Snapshot struct {
	ID        string
	Content   []byte
	Count     int
	CreatedAt time.Time
}

// Size 快照字节数
func (s *Snapshot) Size() int {
	if s == nil {
		return 0
	}
	return len(s.Content)
}

// LinkRepository 链接仓储接口
// 列表只允许整体替换或追加，不提供修改与删除
type LinkRepository interface {
	// Replace 整体替换列表
	Replace(ctx context.Context, links []Link) error

	// Append 追加一条记录并返回追加后的完整列表
	Append(ctx context.Context, link Link) ([]Link, error)

	// List 返回列表副本
	List(ctx context.Context) ([]Link, error)

	// Count 返回记录数量
	Count(ctx context.Context) (int, error)
}

// SnapshotRepository 导出快照仓储接口
type SnapshotRepository interface {
	// Put 保存新快照并淘汰旧快照
	Put(ctx context.Context, s *Snapshot) error

	// Latest 返回最新快照，不存在时返回 nil
	Latest(ctx context.Context) (*Snapshot, error)

	// Get 根据 ID 获取快照，仅最新快照可被获取
	Get(ctx context.Context, id string) (*Snapshot, error)
}

// LinkSource 初始链接资源来源
type LinkSource interface {
	// Fetch 获取原始资源内容
	Fetch(ctx context.Context) ([]byte, error)

	// Describe 资源位置描述
	Describe() string
}

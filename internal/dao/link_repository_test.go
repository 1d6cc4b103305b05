package dao

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/haierkeys/link-store-service/internal/domain"
	"github.com/haierkeys/link-store-service/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkRepository_ReplaceAppendList(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepository()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	src := []domain.Link{{Title: "a", URL: "https://a"}, {Title: "b", URL: "http://b"}}
	require.NoError(t, repo.Replace(ctx, src))

	// 修改入参不影响仓储
	src[0].Title = "changed"

	all, err := repo.Append(ctx, domain.Link{Title: " c ", URL: "https://c"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Link{
		{Title: "a", URL: "https://a"},
		{Title: "b", URL: "http://b"},
		{Title: " c ", URL: "https://c"},
	}, all)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// 返回值是副本
	all[0].Title = "mutated"
	list, _ = repo.List(ctx)
	assert.Equal(t, "a", list[0].Title)
}

func TestLinkRepository_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewLinkRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Append(ctx, domain.Link{Title: "t", URL: "https://x"})
		}()
	}
	wg.Wait()

	n, _ := repo.Count(ctx)
	assert.Equal(t, 50, n)
}

func TestSnapshotRepository_OnlyLatest(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepository()

	s, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	first := &domain.Snapshot{ID: "one", Content: []byte("[]")}
	second := &domain.Snapshot{ID: "two", Content: []byte("[1]")}
	require.NoError(t, repo.Put(ctx, first))
	require.NoError(t, repo.Put(ctx, second))

	got, _ := repo.Get(ctx, "one")
	assert.Nil(t, got)
	got, _ = repo.Get(ctx, "two")
	assert.Same(t, second, got)
	assert.Equal(t, 3, got.Size())
}

func TestLinkSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "links.json"), []byte(`[]`), 0o644))

	src, err := NewLinkSource(storage.Config{Type: storage.LOCAL, SavePath: dir, Key: "links.json"}, nil)
	require.NoError(t, err)

	content, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(content))
	assert.Contains(t, src.Describe(), "links.json")

	_, err = NewLinkSource(storage.Config{Type: "ftp"}, nil)
	assert.Error(t, err)
}

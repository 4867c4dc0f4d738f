package cache

import (
	"context"
	"sync"
	"time"

	"FundRadar/pkg/model"
)

// MemoryCache 进程内单槽缓存
type MemoryCache struct {
	mutex     sync.RWMutex
	funds     []model.FundInfo
	fetchedAt time.Time

	ttl time.Duration
	now func() time.Time // 可注入时钟，便于测试
}

// NewMemoryCache 创建内存缓存，ttl<=0时使用默认时效
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get 返回未过期的缓存列表
func (c *MemoryCache) Get(_ context.Context) ([]model.FundInfo, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.funds == nil {
		return nil, false
	}
	if c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}

	out := make([]model.FundInfo, len(c.funds))
	copy(out, c.funds)
	return out, true
}

// Set 整体覆盖缓存槽并刷新时间戳
func (c *MemoryCache) Set(_ context.Context, funds []model.FundInfo) error {
	snapshot := make([]model.FundInfo, len(funds))
	copy(snapshot, funds)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.funds = snapshot
	c.fetchedAt = c.now()
	return nil
}

// Clear 清空缓存槽
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.funds = nil
	c.fetchedAt = time.Time{}
	return nil
}

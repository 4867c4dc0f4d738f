// Package cache 提供基金列表的单槽缓存，整表写入、按时效失效。
package cache

import (
	"context"
	"time"

	"FundRadar/pkg/model"
)

// DefaultTTL 列表缓存默认时效
const DefaultTTL = 3600 * time.Second

// ListCache 基金列表缓存接口
type ListCache interface {
	// Get 返回未过期的缓存列表，无有效缓存时ok为false
	Get(ctx context.Context) (funds []model.FundInfo, ok bool)
	// Set 整体覆盖缓存槽
	Set(ctx context.Context, funds []model.FundInfo) error
	// Clear 清空缓存槽
	Clear(ctx context.Context) error
}

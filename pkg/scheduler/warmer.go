// Package scheduler 提供列表缓存的后台预热任务，
// 避免缓存过期后的首个请求被慢速数据源调用拖住。
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ListRefresher 列表缓存刷新接口
type ListRefresher interface {
	RefreshList(ctx context.Context) error
}

// CacheWarmer 缓存预热调度器
type CacheWarmer struct {
	cron      *cron.Cron
	refresher ListRefresher
	spec      string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewCacheWarmer 创建缓存预热调度器，spec为cron表达式（如"@every 30m"）
func NewCacheWarmer(refresher ListRefresher, spec string, timeout time.Duration, logger *zap.Logger) *CacheWarmer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CacheWarmer{
		cron:      cron.New(),
		refresher: refresher,
		spec:      spec,
		timeout:   timeout,
		logger:    logger,
	}
}

// Start 启动调度器并立即预热一次
func (w *CacheWarmer) Start() error {
	if _, err := w.cron.AddFunc(w.spec, w.warm); err != nil {
		return err
	}
	go w.warm()
	w.cron.Start()
	return nil
}

// Stop 停止调度器
func (w *CacheWarmer) Stop() {
	w.cron.Stop()
}

// warm 执行一次列表刷新，失败仅记录日志，等待下个周期
func (w *CacheWarmer) warm() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.refresher.RefreshList(ctx); err != nil {
		w.logger.Warn("列表缓存预热失败", zap.Error(err))
		return
	}
	w.logger.Info("列表缓存预热完成")
}

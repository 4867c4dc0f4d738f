// Package service 实现各接口共用的取数策略：先走实时数据源，
// 失败或空结果时降级到静态名录或占位数据。
package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"FundRadar/pkg/cache"
	"FundRadar/pkg/catalog"
	"FundRadar/pkg/classifier"
	"FundRadar/pkg/collector"
	"FundRadar/pkg/model"
)

// ErrFundNotFound 基金在数据源和兜底名录中均不存在
var ErrFundNotFound = errors.New("基金不存在")

// Source 数据来源标记，调用方据此区分实时数据与降级数据
type Source string

const (
	SourceLive     Source = "live"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
	// SourceNone 未取数即应答（如搜索关键词过短）
	SourceNone Source = "none"
)

const (
	// DefaultListLimit 列表接口返回条数上限
	DefaultListLimit = 100
	// DefaultSearchLimit 搜索接口默认返回条数
	DefaultSearchLimit = 20
	// MinQueryLength 搜索关键词最小长度，低于此长度不请求数据源
	MinQueryLength = 2

	// 单基金降级记录的占位净值
	placeholderValue = 1.5
)

// FundService 基金数据服务
type FundService struct {
	fetcher collector.FundFetcher
	cache   cache.ListCache
	catalog *catalog.Catalog
	logger  *zap.Logger

	now func() time.Time
}

// NewFundService 创建基金数据服务
func NewFundService(fetcher collector.FundFetcher, listCache cache.ListCache, cat *catalog.Catalog, logger *zap.Logger) *FundService {
	return &FundService{
		fetcher: fetcher,
		cache:   listCache,
		catalog: cat,
		logger:  logger,
		now:     time.Now,
	}
}

// CatalogSize 兜底名录大小，健康检查接口使用
func (s *FundService) CatalogSize() int {
	return s.catalog.Size()
}

// List 获取基金列表，最多limit条
func (s *FundService) List(ctx context.Context, limit int) ([]model.FundInfo, Source, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	funds, src := s.loadFunds(ctx)
	if len(funds) > limit {
		funds = funds[:limit]
	}
	return funds, src, nil
}

// Search 按代码或名称子串搜索基金（大小写不敏感）。
// 关键词长度不足时直接返回空列表，不触发数据源请求。
func (s *FundService) Search(ctx context.Context, q string, limit int) ([]model.FundSearchResult, Source, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if utf8.RuneCountInString(q) < MinQueryLength {
		return []model.FundSearchResult{}, SourceNone, nil
	}

	funds, src := s.loadFunds(ctx)
	matched := filterFunds(funds, q, limit)

	results := make([]model.FundSearchResult, 0, len(matched))
	for _, f := range matched {
		results = append(results, model.FundSearchResult{
			Code: f.Code,
			Name: f.Name,
			Type: f.Type,
		})
	}
	return results, src, nil
}

// Detail 获取基金详情，净值历史截断到最近30条。
// 数据源返回空结果、或数据源不可用且名录中也没有该代码时返回ErrFundNotFound。
func (s *FundService) Detail(ctx context.Context, code string) (*model.FundDetail, Source, error) {
	records, err := s.fetcher.FetchNavHistory(ctx, code)
	if err != nil {
		s.logger.Warn("获取净值历史失败，尝试降级",
			zap.String("code", code), zap.Error(err))
		entry, ok := s.catalog.Lookup(code)
		if !ok {
			return nil, SourceFallback, ErrFundNotFound
		}
		return s.synthesizeDetail(entry), SourceFallback, nil
	}
	if len(records) == 0 {
		return nil, SourceLive, ErrFundNotFound
	}

	latest := records[0]
	if len(records) > model.NavHistoryLimit {
		records = records[:model.NavHistoryLimit]
	}

	history := make([]model.NavPoint, 0, len(records))
	for _, r := range records {
		history = append(history, model.NavPoint{
			Date:        r.Date,
			Value:       r.Value,
			Accumulated: r.Accumulated,
		})
	}

	name, company := s.resolveIdentity(ctx, code)
	return &model.FundDetail{
		FundInfo: model.FundInfo{
			Code:      code,
			Name:      name,
			Type:      classifier.Classify(code),
			Company:   company,
			Value:     latest.Value,
			DayGrowth: latest.DayGrowth,
		},
		ValueDate:  latest.Date,
		NavHistory: history,
	}, SourceLive, nil
}

// Quote 获取基金实时报价。数据源不可用时降级为名录条目或通用占位数据，
// 报价接口永远有应答。
func (s *FundService) Quote(ctx context.Context, code string) (*model.FundQuote, Source, error) {
	records, err := s.fetcher.FetchNavHistory(ctx, code)
	if err == nil && len(records) > 0 {
		latest := records[0]
		name, _ := s.resolveIdentity(ctx, code)
		return &model.FundQuote{
			Code:      code,
			Name:      name,
			Value:     latest.Value,
			DayGrowth: latest.DayGrowth,
			ValueDate: latest.Date,
			Timestamp: s.now(),
		}, SourceLive, nil
	}
	if err != nil {
		s.logger.Warn("获取基金报价失败，降级为兜底数据",
			zap.String("code", code), zap.Error(err))
	}

	quote := &model.FundQuote{
		Code:      code,
		Name:      "模拟基金",
		Value:     placeholderValue,
		DayGrowth: 0.0,
		ValueDate: s.now().Format("2006-01-02"),
		Timestamp: s.now(),
	}
	if entry, ok := s.catalog.Lookup(code); ok {
		quote.Name = entry.Name
		quote.Value = entry.Value
		quote.DayGrowth = entry.DayGrowth
	}
	return quote, SourceFallback, nil
}

// RefreshList 强制刷新列表缓存，后台预热任务使用
func (s *FundService) RefreshList(ctx context.Context) error {
	funds, err := s.fetcher.FetchFundList(ctx)
	if err != nil {
		return err
	}
	if len(funds) == 0 {
		return errors.New("数据源返回空列表")
	}
	return s.cache.Set(ctx, funds)
}

// loadFunds 列表/搜索共用取数路径：缓存 → 数据源 → 静态名录
func (s *FundService) loadFunds(ctx context.Context) ([]model.FundInfo, Source) {
	if funds, ok := s.cache.Get(ctx); ok {
		return funds, SourceCache
	}

	funds, err := s.fetcher.FetchFundList(ctx)
	if err != nil || len(funds) == 0 {
		if err != nil {
			s.logger.Warn("获取基金列表失败，降级为静态名录", zap.Error(err))
		} else {
			s.logger.Warn("数据源返回空列表，降级为静态名录")
		}
		return s.catalog.All(), SourceFallback
	}

	if err := s.cache.Set(ctx, funds); err != nil {
		// 缓存写入失败不影响本次应答
		s.logger.Warn("写入列表缓存失败", zap.Error(err))
	}
	return funds, SourceLive
}

// synthesizeDetail 由名录条目合成降级详情，净值使用占位值
func (s *FundService) synthesizeDetail(entry model.FundInfo) *model.FundDetail {
	today := s.now().Format("2006-01-02")
	return &model.FundDetail{
		FundInfo: model.FundInfo{
			Code:      entry.Code,
			Name:      entry.Name,
			Type:      entry.Type,
			Company:   entry.Company,
			Value:     placeholderValue,
			DayGrowth: 0.0,
		},
		ValueDate: today,
		NavHistory: []model.NavPoint{
			{Date: today, Value: placeholderValue, Accumulated: placeholderValue},
		},
	}
}

// resolveIdentity 从名录或已缓存列表解析基金名称与公司，均未命中时返回空串。
// 只读缓存，不触发额外的数据源请求。
func (s *FundService) resolveIdentity(ctx context.Context, code string) (name, company string) {
	if entry, ok := s.catalog.Lookup(code); ok {
		return entry.Name, entry.Company
	}
	if funds, ok := s.cache.Get(ctx); ok {
		for _, f := range funds {
			if f.Code == code {
				return f.Name, f.Company
			}
		}
	}
	return "", ""
}

// filterFunds 大小写不敏感的代码/名称子串过滤
func filterFunds(funds []model.FundInfo, keyword string, limit int) []model.FundInfo {
	keyword = strings.ToLower(keyword)
	var out []model.FundInfo
	for _, f := range funds {
		if len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(f.Code), keyword) ||
			strings.Contains(strings.ToLower(f.Name), keyword) {
			out = append(out, f)
		}
	}
	return out
}

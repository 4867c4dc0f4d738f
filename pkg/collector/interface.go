package collector

import (
	"context"

	"FundRadar/pkg/model"
)

// NavRecord 单日净值记录，来自数据源的历史净值接口
type NavRecord struct {
	Date        string
	Value       float64
	Accumulated float64
	DayGrowth   float64
}

// FundFetcher 基金数据获取接口
type FundFetcher interface {
	// FetchFundList 获取开放式基金列表
	FetchFundList(ctx context.Context) ([]model.FundInfo, error)
	// FetchNavHistory 获取指定基金的净值历史，按日期倒序
	FetchNavHistory(ctx context.Context, code string) ([]NavRecord, error)
}

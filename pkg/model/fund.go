package model

import (
	"time"
)

// FundType 基金类型
type FundType string

const (
	FundTypeMix   FundType = "mix"   // 混合型
	FundTypeIndex FundType = "index" // 指数型
	FundTypeStock FundType = "stock" // 股票型
	FundTypeBond  FundType = "bond"  // 债券型
	FundTypeMoney FundType = "money" // 货币型
)

// FundInfo 基金信息
type FundInfo struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Type      FundType `json:"type"`
	Company   string   `json:"company"`
	Value     float64  `json:"value"`      // 最新单位净值
	DayGrowth float64  `json:"day_growth"` // 日增长率(%)
}

// FundSearchResult 基金搜索结果
type FundSearchResult struct {
	Code string   `json:"code"`
	Name string   `json:"name"`
	Type FundType `json:"type"`
}

// NavPoint 单日净值
type NavPoint struct {
	Date        string  `json:"date"`
	Value       float64 `json:"value"`
	Accumulated float64 `json:"accumulated"` // 累计净值
}

// FundDetail 基金详情，净值历史按日期倒序，最多30条
type FundDetail struct {
	FundInfo
	ValueDate  string     `json:"value_date"`
	NavHistory []NavPoint `json:"nav_history"`
}

// FundQuote 基金实时报价
type FundQuote struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	DayGrowth float64   `json:"day_growth"`
	ValueDate string    `json:"value_date"`
	Timestamp time.Time `json:"timestamp"`
}

// NavHistoryLimit 详情接口返回的净值历史条数上限
const NavHistoryLimit = 30

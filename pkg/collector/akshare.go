package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"FundRadar/pkg/classifier"
	"FundRadar/pkg/model"
)

const (
	fundDailyPath = "/api/public/fund_open_fund_daily_em"
	fundInfoPath  = "/api/public/fund_open_fund_info_em"

	navTrendIndicator = "单位净值走势"
)

// AKShareAdapter AKShare数据侧车适配器。
// 侧车返回的行字段是中文标签，映射到统一模型时缺失字段按默认值补齐：
// 净值1.0、增长率0.0、文本字段空串。
type AKShareAdapter struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAKShareAdapter 创建AKShare适配器
func NewAKShareAdapter(baseURL string, timeout time.Duration, logger *zap.Logger) *AKShareAdapter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AKShareAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchFundList 获取开放式基金列表
func (a *AKShareAdapter) FetchFundList(ctx context.Context) ([]model.FundInfo, error) {
	rows, err := a.getRows(ctx, fundDailyPath, nil)
	if err != nil {
		return nil, fmt.Errorf("获取基金列表失败: %w", err)
	}

	funds := make([]model.FundInfo, 0, len(rows))
	for i, row := range rows {
		code := rowString(row, "基金代码")
		if code == "" {
			// 缺少代码的行无法归类，跳过但不中断整批处理
			a.logger.Warn("跳过缺少基金代码的数据行", zap.Int("row", i))
			continue
		}

		funds = append(funds, model.FundInfo{
			Code:      code,
			Name:      rowString(row, "基金简称"),
			Type:      classifier.Classify(code),
			Company:   rowString(row, "基金公司"),
			Value:     rowFloat(row, "单位净值", 1.0),
			DayGrowth: rowFloat(row, "日增长率", 0.0),
		})
	}

	return funds, nil
}

// FetchNavHistory 获取指定基金的净值历史，按日期倒序返回
func (a *AKShareAdapter) FetchNavHistory(ctx context.Context, code string) ([]NavRecord, error) {
	params := url.Values{}
	params.Set("symbol", code)
	params.Set("indicator", navTrendIndicator)

	rows, err := a.getRows(ctx, fundInfoPath, params)
	if err != nil {
		return nil, fmt.Errorf("获取基金%s净值历史失败: %w", code, err)
	}

	records := make([]NavRecord, 0, len(rows))
	for i, row := range rows {
		date := rowString(row, "净值日期")
		if date == "" {
			a.logger.Warn("跳过缺少净值日期的数据行",
				zap.String("code", code), zap.Int("row", i))
			continue
		}

		records = append(records, NavRecord{
			Date:        date,
			Value:       rowFloat(row, "单位净值", 1.0),
			Accumulated: rowFloat(row, "累计净值", 1.0),
			DayGrowth:   rowFloat(row, "日增长率", 0.0),
		})
	}

	// 侧车按日期正序返回时翻转为倒序
	if len(records) > 1 && records[0].Date < records[len(records)-1].Date {
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
	}

	return records, nil
}

// getRows 执行GET请求并解析JSON数组响应
func (a *AKShareAdapter) getRows(ctx context.Context, path string, params url.Values) ([]map[string]interface{}, error) {
	apiURL := a.baseURL + path
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("执行HTTP请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API返回非200状态码: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应体失败: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	return rows, nil
}

// rowString 读取行内文本字段，缺失时返回空串
func rowString(row map[string]interface{}, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// rowFloat 读取行内数值字段，缺失或无法解析时返回默认值
func rowFloat(row map[string]interface{}, key string, def float64) float64 {
	v, ok := row[key]
	if !ok || v == nil {
		return def
	}
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(value), "%")
		if s == "" {
			return def
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

package catalog

import (
	"strings"

	"FundRadar/pkg/model"
)

// Catalog 静态基金名录，数据源不可用时兜底使用
type Catalog struct {
	funds  []model.FundInfo
	byCode map[string]model.FundInfo
}

// defaultFunds 常见开放式基金兜底名单
var defaultFunds = []model.FundInfo{
	{Code: "000001", Name: "华夏成长混合", Type: model.FundTypeMix, Company: "华夏基金", Value: 1.234, DayGrowth: 0.5},
	{Code: "000961", Name: "天弘沪深300指数增强", Type: model.FundTypeIndex, Company: "天弘基金", Value: 1.842, DayGrowth: 0.3},
	{Code: "001186", Name: "富国文体健康股票", Type: model.FundTypeStock, Company: "富国基金", Value: 2.115, DayGrowth: -0.8},
	{Code: "001594", Name: "天弘中证银行指数", Type: model.FundTypeIndex, Company: "天弘基金", Value: 1.327, DayGrowth: 0.2},
	{Code: "001632", Name: "天弘中证食品饮料指数", Type: model.FundTypeIndex, Company: "天弘基金", Value: 1.956, DayGrowth: 1.1},
	{Code: "002001", Name: "华夏回报混合", Type: model.FundTypeMix, Company: "华夏基金", Value: 1.458, DayGrowth: 0.4},
	{Code: "002560", Name: "诺安和鑫混合", Type: model.FundTypeMix, Company: "诺安基金", Value: 1.672, DayGrowth: -1.2},
	{Code: "003003", Name: "华夏现金增利货币A", Type: model.FundTypeMoney, Company: "华夏基金", Value: 1.000, DayGrowth: 0.0},
	{Code: "005827", Name: "易方达蓝筹精选混合", Type: model.FundTypeMix, Company: "易方达基金", Value: 2.389, DayGrowth: 0.9},
	{Code: "005911", Name: "广发双擎升级混合", Type: model.FundTypeMix, Company: "广发基金", Value: 2.751, DayGrowth: 1.3},
	{Code: "110011", Name: "易方达中小盘混合", Type: model.FundTypeMix, Company: "易方达基金", Value: 3.864, DayGrowth: 0.7},
	{Code: "110022", Name: "易方达消费行业股票", Type: model.FundTypeStock, Company: "易方达基金", Value: 2.456, DayGrowth: 1.2},
	{Code: "161005", Name: "富国天惠成长混合", Type: model.FundTypeMix, Company: "富国基金", Value: 2.933, DayGrowth: 0.6},
	{Code: "161725", Name: "招商中证白酒指数", Type: model.FundTypeIndex, Company: "招商基金", Value: 1.567, DayGrowth: -0.3},
	{Code: "163402", Name: "兴全趋势投资混合", Type: model.FundTypeMix, Company: "兴证全球基金", Value: 1.198, DayGrowth: 0.2},
	{Code: "163406", Name: "兴全合润混合", Type: model.FundTypeMix, Company: "兴证全球基金", Value: 1.743, DayGrowth: 0.5},
	{Code: "260108", Name: "景顺长城新兴成长混合", Type: model.FundTypeMix, Company: "景顺长城基金", Value: 2.207, DayGrowth: 1.0},
	{Code: "270002", Name: "广发稳健增长混合", Type: model.FundTypeMix, Company: "广发基金", Value: 1.652, DayGrowth: 0.3},
	{Code: "320003", Name: "诺安股票", Type: model.FundTypeStock, Company: "诺安基金", Value: 1.876, DayGrowth: -0.6},
	{Code: "377240", Name: "上投摩根新兴动力混合", Type: model.FundTypeMix, Company: "上投摩根基金", Value: 2.534, DayGrowth: 0.8},
	{Code: "519066", Name: "汇添富蓝筹稳健混合", Type: model.FundTypeMix, Company: "汇添富基金", Value: 1.445, DayGrowth: 0.4},
	{Code: "519674", Name: "银河创新成长混合", Type: model.FundTypeMix, Company: "银河基金", Value: 3.102, DayGrowth: 1.5},
	{Code: "540003", Name: "汇丰晋信动态策略混合", Type: model.FundTypeMix, Company: "汇丰晋信基金", Value: 1.923, DayGrowth: 0.1},
	{Code: "540006", Name: "汇丰晋信大盘股票", Type: model.FundTypeStock, Company: "汇丰晋信基金", Value: 2.068, DayGrowth: -0.2},
}

// New 创建默认静态名录
func New() *Catalog {
	return NewWith(defaultFunds)
}

// NewWith 使用指定基金列表创建名录
func NewWith(funds []model.FundInfo) *Catalog {
	byCode := make(map[string]model.FundInfo, len(funds))
	for _, f := range funds {
		byCode[f.Code] = f
	}
	return &Catalog{funds: funds, byCode: byCode}
}

// All 返回全部兜底基金
func (c *Catalog) All() []model.FundInfo {
	out := make([]model.FundInfo, len(c.funds))
	copy(out, c.funds)
	return out
}

// Lookup 按代码查找
func (c *Catalog) Lookup(code string) (model.FundInfo, bool) {
	f, ok := c.byCode[code]
	return f, ok
}

// Filter 按代码或名称子串过滤（大小写不敏感），最多返回limit条
func (c *Catalog) Filter(keyword string, limit int) []model.FundInfo {
	keyword = strings.ToLower(keyword)
	var out []model.FundInfo
	for _, f := range c.funds {
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

// Size 兜底基金数量
func (c *Catalog) Size() int {
	return len(c.funds)
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"FundRadar/pkg/model"
	"FundRadar/pkg/service"
)

// dataSourceHeader 标记应答数据来源：live/cache/fallback
const dataSourceHeader = "X-Data-Source"

// FundProvider 基金数据服务接口
type FundProvider interface {
	List(ctx context.Context, limit int) ([]model.FundInfo, service.Source, error)
	Search(ctx context.Context, q string, limit int) ([]model.FundSearchResult, service.Source, error)
	Detail(ctx context.Context, code string) (*model.FundDetail, service.Source, error)
	Quote(ctx context.Context, code string) (*model.FundQuote, service.Source, error)
	CatalogSize() int
}

// Handlers API处理程序
type Handlers struct {
	funds       FundProvider
	serviceName string
}

// NewHandlers 创建新的API处理程序
func NewHandlers(funds FundProvider, serviceName string) *Handlers {
	return &Handlers{
		funds:       funds,
		serviceName: serviceName,
	}
}

// Root 健康检查
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":    h.serviceName,
		"status":     "running",
		"timestamp":  time.Now().Format(time.RFC3339),
		"fund_count": h.funds.CatalogSize(),
	})
}

// ListFunds 获取基金列表
func (h *Handlers) ListFunds(c *gin.Context) {
	funds, src, err := h.funds.List(c.Request.Context(), service.DefaultListLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "获取基金列表失败: " + err.Error(),
		})
		return
	}

	c.Header(dataSourceHeader, string(src))
	c.JSON(http.StatusOK, funds)
}

// SearchFunds 搜索基金
func (h *Handlers) SearchFunds(c *gin.Context) {
	q := c.Query("q")
	limit := service.DefaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "limit参数无效",
			})
			return
		}
		limit = parsed
	}

	results, src, err := h.funds.Search(c.Request.Context(), q, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "搜索基金失败: " + err.Error(),
		})
		return
	}

	c.Header(dataSourceHeader, string(src))
	c.JSON(http.StatusOK, results)
}

// FundDetail 获取基金详情
func (h *Handlers) FundDetail(c *gin.Context) {
	code := c.Param("code")

	detail, src, err := h.funds.Detail(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrFundNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "基金不存在",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "获取基金详情失败: " + err.Error(),
		})
		return
	}

	c.Header(dataSourceHeader, string(src))
	c.JSON(http.StatusOK, detail)
}

// FundQuote 获取基金实时报价
func (h *Handlers) FundQuote(c *gin.Context) {
	code := c.Param("code")

	quote, src, err := h.funds.Quote(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "获取基金报价失败: " + err.Error(),
		})
		return
	}

	c.Header(dataSourceHeader, string(src))
	c.JSON(http.StatusOK, quote)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"FundRadar/pkg/model"
	"FundRadar/pkg/service"
)

// stubProvider 固定应答的数据服务桩
type stubProvider struct {
	funds   []model.FundInfo
	results []model.FundSearchResult
	detail  *model.FundDetail
	quote   *model.FundQuote
	src     service.Source
	err     error

	gotQuery string
	gotLimit int
	gotCode  string
}

func (s *stubProvider) List(_ context.Context, limit int) ([]model.FundInfo, service.Source, error) {
	s.gotLimit = limit
	return s.funds, s.src, s.err
}

func (s *stubProvider) Search(_ context.Context, q string, limit int) ([]model.FundSearchResult, service.Source, error) {
	s.gotQuery, s.gotLimit = q, limit
	return s.results, s.src, s.err
}

func (s *stubProvider) Detail(_ context.Context, code string) (*model.FundDetail, service.Source, error) {
	s.gotCode = code
	return s.detail, s.src, s.err
}

func (s *stubProvider) Quote(_ context.Context, code string) (*model.FundQuote, service.Source, error) {
	s.gotCode = code
	return s.quote, s.src, s.err
}

func (s *stubProvider) CatalogSize() int { return 24 }

func newTestRouter(provider FundProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandlers(provider, "基金数据服务")
	router.GET("/", h.Root)
	router.GET("/api/funds/list", h.ListFunds)
	router.GET("/api/funds/search", h.SearchFunds)
	router.GET("/api/funds/:code/detail", h.FundDetail)
	router.GET("/api/funds/:code/quote", h.FundQuote)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRootHandler(t *testing.T) {
	router := newTestRouter(&stubProvider{})
	w := doGet(t, router, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "running" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["fund_count"].(float64) != 24 {
		t.Errorf("fund_count = %v", body["fund_count"])
	}
}

func TestListHandler(t *testing.T) {
	provider := &stubProvider{
		funds: []model.FundInfo{{Code: "000001", Name: "华夏成长混合", Type: model.FundTypeMix}},
		src:   service.SourceLive,
	}
	router := newTestRouter(provider)
	w := doGet(t, router, "/api/funds/list")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("X-Data-Source"); got != "live" {
		t.Errorf("X-Data-Source = %q", got)
	}

	var funds []model.FundInfo
	if err := json.Unmarshal(w.Body.Bytes(), &funds); err != nil {
		t.Fatal(err)
	}
	if len(funds) != 1 || funds[0].Code != "000001" {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSearchHandlerParams(t *testing.T) {
	provider := &stubProvider{results: []model.FundSearchResult{}, src: service.SourceCache}
	router := newTestRouter(provider)

	w := doGet(t, router, "/api/funds/search?q=%E7%99%BD%E9%85%92&limit=5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if provider.gotQuery != "白酒" || provider.gotLimit != 5 {
		t.Errorf("params not forwarded: q=%q limit=%d", provider.gotQuery, provider.gotLimit)
	}
}

func TestSearchHandlerDefaultLimit(t *testing.T) {
	provider := &stubProvider{results: []model.FundSearchResult{}}
	router := newTestRouter(provider)

	doGet(t, router, "/api/funds/search?q=000001")
	if provider.gotLimit != service.DefaultSearchLimit {
		t.Errorf("default limit = %d", provider.gotLimit)
	}
}

func TestSearchHandlerBadLimit(t *testing.T) {
	router := newTestRouter(&stubProvider{})
	w := doGet(t, router, "/api/funds/search?q=000001&limit=abc")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestDetailHandler(t *testing.T) {
	provider := &stubProvider{
		detail: &model.FundDetail{
			FundInfo:  model.FundInfo{Code: "000001", Name: "华夏成长混合", Type: model.FundTypeMix},
			ValueDate: "2024-05-31",
		},
		src: service.SourceLive,
	}
	router := newTestRouter(provider)

	w := doGet(t, router, "/api/funds/000001/detail")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if provider.gotCode != "000001" {
		t.Errorf("code not forwarded: %q", provider.gotCode)
	}
}

func TestDetailHandlerNotFound(t *testing.T) {
	provider := &stubProvider{err: service.ErrFundNotFound}
	router := newTestRouter(provider)

	w := doGet(t, router, "/api/funds/0000000000/detail")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestQuoteHandler(t *testing.T) {
	provider := &stubProvider{
		quote: &model.FundQuote{
			Code:      "000001",
			Name:      "华夏成长混合",
			Value:     1.234,
			ValueDate: "2024-05-31",
			Timestamp: time.Now(),
		},
		src: service.SourceFallback,
	}
	router := newTestRouter(provider)

	w := doGet(t, router, "/api/funds/000001/quote")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("X-Data-Source"); got != "fallback" {
		t.Errorf("X-Data-Source = %q", got)
	}

	var quote model.FundQuote
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatal(err)
	}
	if quote.Code != "000001" || quote.Name != "华夏成长混合" {
		t.Errorf("body = %s", w.Body.String())
	}
}

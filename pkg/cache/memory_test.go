package cache

import (
	"context"
	"testing"
	"time"

	"FundRadar/pkg/model"
)

// fakeClock 手动推进的测试时钟
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration) (*MemoryCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)}
	c := NewMemoryCache(ttl)
	c.now = clock.Now
	return c, clock
}

func sampleFunds() []model.FundInfo {
	return []model.FundInfo{
		{Code: "000001", Name: "华夏成长混合", Type: model.FundTypeMix, Value: 1.234},
		{Code: "110022", Name: "易方达消费行业股票", Type: model.FundTypeStock, Value: 2.456},
	}
}

func TestMemoryCacheEmpty(t *testing.T) {
	c, _ := newTestCache(time.Hour)
	if _, ok := c.Get(context.Background()); ok {
		t.Fatal("empty cache should miss")
	}
}

func TestMemoryCacheHitWithinTTL(t *testing.T) {
	c, clock := newTestCache(time.Hour)
	ctx := context.Background()

	if err := c.Set(ctx, sampleFunds()); err != nil {
		t.Fatal(err)
	}

	clock.Advance(59 * time.Minute)
	got, ok := c.Get(ctx)
	if !ok {
		t.Fatal("expected hit within TTL")
	}
	if len(got) != 2 || got[0].Code != "000001" {
		t.Errorf("unexpected cached list: %v", got)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c, clock := newTestCache(time.Hour)
	ctx := context.Background()

	c.Set(ctx, sampleFunds())
	clock.Advance(time.Hour)

	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
}

func TestMemoryCacheOverwrite(t *testing.T) {
	c, _ := newTestCache(time.Hour)
	ctx := context.Background()

	c.Set(ctx, sampleFunds())
	c.Set(ctx, []model.FundInfo{{Code: "161725", Name: "招商中证白酒指数"}})

	got, ok := c.Get(ctx)
	if !ok || len(got) != 1 || got[0].Code != "161725" {
		t.Fatalf("slot not overwritten wholesale: %v", got)
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c, _ := newTestCache(time.Hour)
	ctx := context.Background()

	c.Set(ctx, sampleFunds())
	if err := c.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected miss after Clear")
	}
}

// 返回的是快照，调用方修改不应影响缓存内容
func TestMemoryCacheSnapshot(t *testing.T) {
	c, _ := newTestCache(time.Hour)
	ctx := context.Background()

	c.Set(ctx, sampleFunds())
	got, _ := c.Get(ctx)
	got[0].Code = "mutated"

	again, _ := c.Get(ctx)
	if again[0].Code != "000001" {
		t.Error("cache content mutated through returned slice")
	}
}

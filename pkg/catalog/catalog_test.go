package catalog

import (
	"testing"
)

func TestLookup(t *testing.T) {
	c := New()

	f, ok := c.Lookup("000001")
	if !ok {
		t.Fatal("expected 000001 in default catalog")
	}
	if f.Name != "华夏成长混合" {
		t.Errorf("unexpected name: %s", f.Name)
	}

	if _, ok := c.Lookup("0000000000"); ok {
		t.Error("expected unknown code to miss")
	}
}

func TestFilter(t *testing.T) {
	c := New()

	got := c.Filter("000001", 10)
	if len(got) != 1 || got[0].Code != "000001" {
		t.Fatalf("Filter(000001) = %v", got)
	}

	// 名称子串匹配
	got = c.Filter("易方达", 10)
	if len(got) == 0 {
		t.Fatal("expected matches for 易方达")
	}
	for _, f := range got {
		if f.Company != "易方达基金" {
			t.Errorf("unexpected match: %+v", f)
		}
	}

	// limit截断
	got = c.Filter("混合", 3)
	if len(got) != 3 {
		t.Errorf("expected 3 results, got %d", len(got))
	}
}

func TestSize(t *testing.T) {
	c := New()
	if c.Size() < 20 {
		t.Errorf("default catalog too small: %d", c.Size())
	}
}

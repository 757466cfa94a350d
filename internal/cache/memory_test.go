package cache

import (
	"context"
	"testing"
	"time"
)

type cachedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.SetJSON(ctx, "k", cachedThing{Name: "siswa", Count: 3}, 0); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	var got cachedThing
	ok, err := c.GetJSON(ctx, "k", &got)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Name != "siswa" || got.Count != 3 {
		t.Errorf("got %+v, want {siswa 3}", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	var got cachedThing
	ok, err := c.GetJSON(context.Background(), "absent", &got)
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if ok {
		t.Error("expected cache miss for absent key")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.SetJSON(ctx, "k", cachedThing{Name: "x"}, time.Millisecond); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	var got cachedThing
	ok, _ := c.GetJSON(ctx, "k", &got)
	if ok {
		t.Error("expected entry to be expired")
	}
}

func TestMemoryCacheInvalidate(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_ = c.SetJSON(ctx, "a", cachedThing{}, 0)
	_ = c.SetJSON(ctx, "b", cachedThing{}, 0)

	if err := c.Invalidate(ctx, "a", "b"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	var got cachedThing
	if ok, _ := c.GetJSON(ctx, "a", &got); ok {
		t.Error("key a should be gone after Invalidate")
	}
	if ok, _ := c.GetJSON(ctx, "b", &got); ok {
		t.Error("key b should be gone after Invalidate")
	}
}

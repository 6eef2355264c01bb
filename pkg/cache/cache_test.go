package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCache_RoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Errorf("Get(missing) = hit=%v err=%v, want miss", hit, err)
	}

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit {
		t.Fatalf("Get = hit=%v err=%v, want hit", hit, err)
	}
	if string(data) != "v" {
		t.Errorf("Get = %q, want %q", data, "v")
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("deleted key should miss")
	}
}

func TestFileCache_Expiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCache_UnsafeKeys(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	key := "quote:../../etc/passwd"
	if err := c.Set(ctx, key, []byte("v"), 0); err != nil {
		t.Fatalf("Set with unsafe key: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); !hit {
		t.Error("unsafe key should round-trip through hashing")
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("null cache must never hit")
	}
}

func TestQuoteKey_Deterministic(t *testing.T) {
	type payload struct {
		LengthMm int
		WidthMm  int
	}

	a := QuoteKey(payload{2000, 900})
	b := QuoteKey(payload{2000, 900})
	if a != b {
		t.Error("equal payloads must produce equal keys")
	}

	c := QuoteKey(payload{2000, 901})
	if a == c {
		t.Error("different payloads must produce different keys")
	}
}

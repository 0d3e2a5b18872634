package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLoadHooks{}
	l.OnLoadStart(ctx, "mats.xlsx", "")
	l.OnLoadComplete(ctx, "mats.xlsx", "", 120, false, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "grid")
	c.OnCacheMiss(ctx, "grid")
	c.OnCacheSet(ctx, "grid", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Load() should return NoopLoadHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customLoad := &testLoadHooks{}
	SetLoadHooks(customLoad)
	if Load() != customLoad {
		t.Error("SetLoadHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Load().OnLoadStart(context.Background(), "a.csv", "")
	if customLoad.starts != 1 {
		t.Errorf("starts = %d, want 1", customLoad.starts)
	}

	Reset()
	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Reset() should restore NoopLoadHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLoadHooks{}
	SetLoadHooks(custom)
	SetLoadHooks(nil)

	if Load() != custom {
		t.Error("SetLoadHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLoadHooks struct {
	NoopLoadHooks
	starts int
}

func (h *testLoadHooks) OnLoadStart(context.Context, string, string) { h.starts++ }

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

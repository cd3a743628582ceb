package cache

import (
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	key := "test-set-get"
	c.Set(key, "val", 0, nil)
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
	c.Delete(key)
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	_, ok := c.Get("nonexistent-key-xyz")
	if ok {
		t.Error("Get missing key: want false")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	key := "test-expired"
	c.Set(key, "v", 1, nil)
	// Force the stored item past its expiry instead of sleeping.
	c.m.Store(key, cacheItem{Value: "v", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get(key); ok {
		t.Error("Get expired key: want false")
	}
	// Expired read evicts the entry.
	if _, loaded := c.m.Load(key); loaded {
		t.Error("expired entry should be evicted on read")
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	key := "test-delete"
	c.Set(key, "x", 0, nil)
	c.Delete(key)
	_, ok := c.Get(key)
	if ok {
		t.Error("Delete: key should be gone")
	}
}

func TestGetOrDef(t *testing.T) {
	c := NewCache()
	key := "test-default"
	def := "default"
	if got := c.GetOrDef(key, def); got != def {
		t.Errorf("GetOrDef missing = %v, want %v", got, def)
	}
	c.Set(key, "stored", 0, nil)
	if got := c.GetOrDef(key, def); got != "stored" {
		t.Errorf("GetOrDef found = %v, want stored", got)
	}
	c.Delete(key)
}

func TestDeleteMany(t *testing.T) {
	c := NewCache()
	c.Set("dm1", 1, 0, nil)
	c.Set("dm2", 2, 0, nil)
	c.DeleteMany("dm1", "dm2")
	if _, ok := c.Get("dm1"); ok {
		t.Error("DeleteMany: dm1 should be gone")
	}
	if _, ok := c.Get("dm2"); ok {
		t.Error("DeleteMany: dm2 should be gone")
	}
}

func TestSetN_GetN_DeleteN(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"a", "b"}, "composite-val", 0, nil)
	got, ok := c.GetN("a", "b")
	if !ok || got != "composite-val" {
		t.Errorf("GetN = %v, %v; want composite-val, true", got, ok)
	}
	c.DeleteN("a", "b")
	_, ok = c.GetN("a", "b")
	if ok {
		t.Error("DeleteN: key should be gone")
	}
}

func TestTagKey_GetKeysByTag_DeleteByTag(t *testing.T) {
	c := NewCache()
	key1, key2 := "tag-k1", "tag-k2"
	c.Set(key1, "v1", 0, nil)
	c.Set(key2, "v2", 0, nil)
	c.TagKey(key1, []string{"t1"})
	c.TagKey(key2, []string{"t1"})

	keys := c.GetKeysByTag("t1")
	if len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}

	c.DeleteByTag("t1")
	if _, ok := c.Get(key1); ok {
		t.Error("DeleteByTag: key1 should be gone")
	}
	if _, ok := c.Get(key2); ok {
		t.Error("DeleteByTag: key2 should be gone")
	}
	if keys := c.GetKeysByTag("t1"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after DeleteByTag = %d keys, want 0", len(keys))
	}
}

func TestSet_WithTags(t *testing.T) {
	c := NewCache()
	c.Set("st1", "v", 0, []string{"stats"})
	c.Set("st2", "v", 0, []string{"stats"})
	c.DeleteByTag("stats")
	if _, ok := c.Get("st1"); ok {
		t.Error("DeleteByTag: st1 should be gone")
	}
	if _, ok := c.Get("st2"); ok {
		t.Error("DeleteByTag: st2 should be gone")
	}
}

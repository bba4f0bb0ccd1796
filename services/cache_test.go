package services

import (
	"fmt"
	"sync"
	"testing"
)

func TestMenuCacheSetGet(t *testing.T) {
	cache := NewMenuCache()

	if _, ok := cache.Get("menu:es"); ok {
		t.Fatal("empty cache returned a value")
	}

	cache.Set("menu:es", "menu")
	v, ok := cache.Get("menu:es")
	if !ok || v != "menu" {
		t.Fatalf("Get(menu:es) = %v, %v, want menu, true", v, ok)
	}
	if cache.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cache.Len())
	}
}

func TestMenuCacheFlushDropsEverything(t *testing.T) {
	cache := NewMenuCache()
	cache.Set("menu:es", 1)
	cache.Set("menu:en", 2)
	cache.Set("featured:es", 3)

	cache.Flush()

	if cache.Len() != 0 {
		t.Fatalf("Len() after Flush = %d, want 0", cache.Len())
	}
	if _, ok := cache.Get("menu:es"); ok {
		t.Fatal("Get returned a value after Flush")
	}
}

func TestMenuCacheConcurrentAccess(t *testing.T) {
	cache := NewMenuCache()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key:%d", i%4)
			cache.Set(key, i)
			cache.Get(key)
			if i%8 == 0 {
				cache.Flush()
			}
		}(i)
	}
	wg.Wait()
}

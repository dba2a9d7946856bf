package scenariocache

import (
	"sync"
	"testing"
)

type list struct {
	items []string
}

func TestGetOrCreate(t *testing.T) {
	cache := New("test")
	calls := 0
	factory := func() any {
		calls++
		return &list{items: []string{}}
	}

	first := cache.Get(ResourcesKey, factory)
	second := cache.Get(ResourcesKey, factory)

	if calls != 1 {
		t.Fatalf("expected factory to be called once, got %d", calls)
	}
	if first.(*list) != second.(*list) {
		t.Fatalf("expected the same value on the second call")
	}
	if len(first.(*list).items) != 0 {
		t.Fatalf("expected an empty list")
	}
}

func TestPutOverwrites(t *testing.T) {
	cache := New("test")
	cache.Put(NamespaceKey, "default")
	cache.Put(NamespaceKey, "kube-system")

	value, ok := cache.Lookup(NamespaceKey)
	if !ok || value != "kube-system" {
		t.Fatalf("expected last write to win, got %v", value)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected one entry, got %d", cache.Len())
	}

	got := cache.Get(NamespaceKey, func() any {
		t.Fatalf("factory must not run for a live entry")
		return nil
	})
	if got != "kube-system" {
		t.Fatalf("expected kube-system, got %v", got)
	}
}

func TestLookupMiss(t *testing.T) {
	cache := New("test")
	if _, ok := cache.Lookup(ResourcesKey); ok {
		t.Fatalf("expected a miss on a fresh cache")
	}
	if _, ok := cache.Lookup(NamespaceKey); ok {
		t.Fatalf("expected a miss on a fresh cache")
	}
}

func TestManagerIsolatesScenarios(t *testing.T) {
	manager := NewManager("cucumber")

	first := manager.Open("scenario-1")
	second := manager.Open("scenario-2")
	if first.Name() != "cucumber/scenario-1" {
		t.Fatalf("unexpected cache name %s", first.Name())
	}

	first.Put(NamespaceKey, "default")
	if _, ok := second.Lookup(NamespaceKey); ok {
		t.Fatalf("expected scenario caches to be independent")
	}
	if manager.Open("scenario-1") != first {
		t.Fatalf("expected Open to return the live cache")
	}

	manager.Close("scenario-1")
	if len(manager.Names()) != 1 {
		t.Fatalf("expected one open cache, got %v", manager.Names())
	}
	if _, ok := first.Lookup(NamespaceKey); ok {
		t.Fatalf("expected a closed cache to be empty")
	}
	if _, ok := manager.Open("scenario-1").Lookup(NamespaceKey); ok {
		t.Fatalf("expected a reopened cache to start empty")
	}
}

func TestPutWaitsForPendingGet(t *testing.T) {
	cache := New("test")
	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		cache.Get(ResourcesKey, func() any {
			close(started)
			<-release
			return "default"
		})
	}()
	<-started
	go func() {
		defer wg.Done()
		cache.Put(ResourcesKey, "fetched")
	}()
	close(release)
	wg.Wait()

	got, ok := cache.Lookup(ResourcesKey)
	if !ok || got != "fetched" {
		t.Fatalf("expected the put to win over the pending default, got %v", got)
	}
}

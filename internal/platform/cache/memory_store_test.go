package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	ctx := context.Background()

	if !store.Set(ctx, "team:1", []byte(`{"id":1}`), time.Minute) {
		t.Fatalf("expected set to succeed")
	}
	got, ok := store.Get(ctx, "team:1")
	if !ok {
		t.Fatalf("expected hit")
	}
	if string(got) != `{"id":1}` {
		t.Fatalf("unexpected value %q", got)
	}

	if _, ok := store.Get(ctx, "team:2"); ok {
		t.Fatalf("expected miss for absent key")
	}
}

func TestMemoryStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(nil).WithClock(func() time.Time { return now })
	ctx := context.Background()

	store.Set(ctx, "livescores:today", []byte(`[]`), 60*time.Second)

	now = now.Add(59 * time.Second)
	if _, ok := store.Get(ctx, "livescores:today"); !ok {
		t.Fatalf("expected hit before ttl")
	}

	now = now.Add(time.Second)
	if _, ok := store.Get(ctx, "livescores:today"); ok {
		t.Fatalf("expected miss at ttl boundary")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be swept, len=%d", store.Len())
	}
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(nil).WithClock(func() time.Time { return now })
	store.Set(context.Background(), "k", []byte("v"), 0)

	now = now.Add(365 * 24 * time.Hour)
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected entry without ttl to persist")
	}
}

func TestMemoryStore_DeleteAndDeleteByPattern(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	ctx := context.Background()
	for _, key := range []string{
		"fixtures:league:8:current",
		"fixtures:league:564:current",
		"fixtures:team:53:upcoming",
		"standings:league:8:current",
	} {
		store.Set(ctx, key, []byte("[]"), time.Hour)
	}

	if !store.Delete(ctx, "standings:league:8:current") {
		t.Fatalf("expected delete to report removal")
	}
	if store.Delete(ctx, "standings:league:8:current") {
		t.Fatalf("expected second delete to report nothing removed")
	}

	if got := store.DeleteByPattern(ctx, "fixtures:league:*"); got != 2 {
		t.Fatalf("expected 2 keys removed, got %d", got)
	}
	if _, ok := store.Get(ctx, "fixtures:team:53:upcoming"); !ok {
		t.Fatalf("expected unmatched key to survive")
	}
	if got := store.DeleteByPattern(ctx, "[bad"); got != 0 {
		t.Fatalf("expected malformed pattern to remove nothing, got %d", got)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	ctx := context.Background()
	store.Set(ctx, "k", []byte("abc"), time.Minute)

	got, _ := store.Get(ctx, "k")
	got[0] = 'x'

	again, _ := store.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value was mutated through Get result: %q", again)
	}
}

package cache

import (
	"testing"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	return &Cache{dir: t.TempDir()}
}

func TestKey_DeterministicForSameInputs(t *testing.T) {
	a := Key([]byte("let x = 1 in x"), 0, 4, false, 100)
	b := Key([]byte("let x = 1 in x"), 0, 4, false, 100)
	if a != b {
		t.Error("Key should be deterministic for identical inputs")
	}
}

func TestKey_DiffersOnEachConfigField(t *testing.T) {
	base := Key([]byte("x"), 0, 4, false, 100)
	variants := []Digest{
		Key([]byte("x"), 1, 4, false, 100),
		Key([]byte("x"), 0, 8, false, 100),
		Key([]byte("x"), 0, 4, true, 100),
		Key([]byte("x"), 0, 4, false, 80),
		Key([]byte("y"), 0, 4, false, 100),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d should differ from the base digest but didn't", i)
		}
	}
}

func TestCache_PutThenGetRoundTrips(t *testing.T) {
	c := newTestCache(t)
	key := Key([]byte("source"), 0, 4, false, 100)
	payload := Payload{Formatted: []byte("formatted output\n"), Changed: true}

	if err := c.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected a cache hit after Put")
	}
	if string(got.Formatted) != string(payload.Formatted) {
		t.Errorf("Formatted = %q, want %q", got.Formatted, payload.Formatted)
	}
	if got.Changed != payload.Changed {
		t.Errorf("Changed = %v, want %v", got.Changed, payload.Changed)
	}
}

func TestCache_GetMissOnUnknownKey(t *testing.T) {
	c := newTestCache(t)
	_, ok := c.Get(Key([]byte("never put"), 0, 4, false, 100))
	if ok {
		t.Error("expected a miss for a key that was never written")
	}
}

func TestCache_PutOverwritesPriorEntry(t *testing.T) {
	c := newTestCache(t)
	key := Key([]byte("source"), 0, 4, false, 100)

	if err := c.Put(key, Payload{Formatted: []byte("first")}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put(key, Payload{Formatted: []byte("second")}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected a hit")
	}
	if string(got.Formatted) != "second" {
		t.Errorf("Formatted = %q, want %q", got.Formatted, "second")
	}
}

func TestCache_DropAllClearsEntries(t *testing.T) {
	c := newTestCache(t)
	key := Key([]byte("source"), 0, 4, false, 100)
	if err := c.Put(key, Payload{Formatted: []byte("x")}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}

	if _, ok := c.Get(key); ok {
		t.Error("expected a miss after DropAll")
	}
}

func TestCache_NilReceiverIsSafe(t *testing.T) {
	var c *Cache

	if _, ok := c.Get(Key([]byte("x"), 0, 4, false, 100)); ok {
		t.Error("a nil cache should always miss")
	}
	if err := c.Put(Key([]byte("x"), 0, 4, false, 100), Payload{}); err != nil {
		t.Errorf("Put on a nil cache should be a no-op, got error: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Errorf("DropAll on a nil cache should be a no-op, got error: %v", err)
	}
}

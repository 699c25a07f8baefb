package memory

import (
	"context"
	"testing"
)

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, ok, err := s.Get(ctx, "missing")
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || string(raw) != "v1" {
		t.Fatalf("get after set: %q ok=%v err=%v", raw, ok, err)
	}

	if err := s.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	raw, _, _ = s.Get(ctx, "k")
	if string(raw) != "v2" {
		t.Fatalf("expected overwrite, got %q", raw)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, _ = s.Get(ctx, "k")
	if ok {
		t.Fatalf("key survived delete")
	}

	// Deleting an absent key is a no-op.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	in := []byte("original")
	if err := s.Set(ctx, "k", in); err != nil {
		t.Fatalf("set: %v", err)
	}
	in[0] = 'X'

	raw, _, _ := s.Get(ctx, "k")
	if string(raw) != "original" {
		t.Fatalf("store shares caller's buffer: %q", raw)
	}

	raw[0] = 'Y'
	again, _, _ := s.Get(ctx, "k")
	if string(again) != "original" {
		t.Fatalf("store handed out its internal buffer: %q", again)
	}
}

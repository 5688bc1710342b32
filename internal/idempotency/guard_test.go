package idempotency

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryGuard_ReserveThenSuccess(t *testing.T) {
	g := NewMemoryGuard()
	ctx := context.Background()

	prior, err := g.Reserve(ctx, "key-1")
	if err != nil || prior != nil {
		t.Fatalf("first reserve must acquire: prior=%v err=%v", prior, err)
	}

	if _, err := g.Reserve(ctx, "key-1"); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second reserve while processing must return ErrInFlight, got %v", err)
	}

	if err := g.MarkSuccess(ctx, "key-1", "booking-42"); err != nil {
		t.Fatalf("mark success: %v", err)
	}

	prior, err = g.Reserve(ctx, "key-1")
	if err != nil {
		t.Fatalf("replay reserve: %v", err)
	}
	if prior == nil || prior.BookingID != "booking-42" {
		t.Fatalf("expected recorded booking id, got %+v", prior)
	}
}

func TestMemoryGuard_FailureFreesKey(t *testing.T) {
	g := NewMemoryGuard()
	ctx := context.Background()

	if _, err := g.Reserve(ctx, "key-1"); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := g.MarkFailure(ctx, "key-1"); err != nil {
		t.Fatalf("mark failure: %v", err)
	}

	prior, err := g.Reserve(ctx, "key-1")
	if err != nil || prior != nil {
		t.Fatalf("key must be reusable after failure: prior=%v err=%v", prior, err)
	}
}

func TestMemoryGuard_IndependentKeys(t *testing.T) {
	g := NewMemoryGuard()
	ctx := context.Background()

	if _, err := g.Reserve(ctx, "key-1"); err != nil {
		t.Fatalf("reserve key-1: %v", err)
	}
	if prior, err := g.Reserve(ctx, "key-2"); err != nil || prior != nil {
		t.Fatalf("key-2 must be unaffected: prior=%v err=%v", prior, err)
	}
}

package goLaunch

import (
	"context"
	"errors"
	"testing"
)

func TestRegistryDefaultLifecycle(t *testing.T) {
	if prev := ResetDefault(); prev != nil {
		t.Fatalf("expected empty registry at test start, got %p", prev)
	}

	ex := &countingExchanger{
		result: Result{User: User{ID: "u1"}},
	}
	c, done := buildTestCoordinator(t, defaultConfig(), ex)
	defer done()

	SetDefault(c)
	defer ResetDefault()

	if got := Default(); got != c {
		t.Fatal("expected Default to return the registered coordinator")
	}

	if err := Initialize(context.Background()); err != nil {
		t.Fatalf("package Initialize failed: %v", err)
	}
	if got := ex.calls.Load(); got != 1 {
		t.Fatalf("expected one exchange via registry, got %d", got)
	}

	if err := Reinitialize(context.Background()); err != nil {
		t.Fatalf("package Reinitialize failed: %v", err)
	}
	c.WaitDetached()
	if got := ex.calls.Load(); got != 2 {
		t.Fatalf("expected reinitialize to run a fresh exchange, got %d", got)
	}

	if prev := ResetDefault(); prev != c {
		t.Fatal("expected ResetDefault to hand back the registered coordinator")
	}
	if Default() != nil {
		t.Fatal("expected registry to be empty after reset")
	}
}

func TestRegistryUnsetOperationsNotReady(t *testing.T) {
	ResetDefault()

	if err := Initialize(context.Background()); !errors.Is(err, ErrCoordinatorNotReady) {
		t.Fatalf("expected ErrCoordinatorNotReady, got %v", err)
	}
	if err := Reinitialize(context.Background()); !errors.Is(err, ErrCoordinatorNotReady) {
		t.Fatalf("expected ErrCoordinatorNotReady, got %v", err)
	}
}

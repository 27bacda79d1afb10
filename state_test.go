package goLaunch

import (
	"context"
	"testing"
	"time"
)

func TestStateGuestClassification(t *testing.T) {
	tests := []struct {
		name  string
		state State
		guest bool
	}{
		{name: "zero value", state: State{}, guest: true},
		{name: "ready", state: State{Ready: true}, guest: false},
		{name: "loading", state: State{Loading: true}, guest: false},
		{name: "user without flags", state: State{User: &User{ID: "u1"}}, guest: false},
		{name: "error", state: State{Err: ErrResponseMalformed}, guest: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Guest(); got != tc.guest {
				t.Fatalf("Guest() = %v, want %v", got, tc.guest)
			}
		})
	}
}

func TestStateCellLoadStoreRoundTrip(t *testing.T) {
	cell := newStateCell()

	if got := cell.Load(); !got.Guest() {
		t.Fatalf("expected empty initial state, got %+v", got)
	}

	cell.Store(State{Ready: true, User: &User{ID: "u1"}})
	got := cell.Load()
	if !got.Ready || got.User == nil || got.User.ID != "u1" {
		t.Fatalf("expected stored state back, got %+v", got)
	}
}

func TestStateCellSubscriberReceivesInOrder(t *testing.T) {
	cell := newStateCell()
	ch, cancel := cell.Subscribe(4)
	defer cancel()

	cell.Store(State{Loading: true})
	cell.Store(State{Ready: true})

	first := <-ch
	if !first.Loading {
		t.Fatalf("expected loading first, got %+v", first)
	}
	second := <-ch
	if !second.Ready {
		t.Fatalf("expected ready second, got %+v", second)
	}
}

func TestStateCellLaggingSubscriberGetsLatest(t *testing.T) {
	cell := newStateCell()
	ch, cancel := cell.Subscribe(1)
	defer cancel()

	// The subscriber never drains while three replacements land. The oldest
	// pending value is evicted each time; only the freshest survives.
	cell.Store(State{Loading: true})
	cell.Store(State{Err: ErrExchangeUnavailable})
	cell.Store(State{Ready: true, User: &User{ID: "u1"}})

	got := <-ch
	if !got.Ready || got.User == nil || got.User.ID != "u1" {
		t.Fatalf("expected only the latest state, got %+v", got)
	}

	select {
	case extra, ok := <-ch:
		if ok {
			t.Fatalf("expected no further pending states, got %+v", extra)
		}
	default:
	}
}

func TestStateCellCancelIdempotentAndCloses(t *testing.T) {
	cell := newStateCell()
	ch, cancel := cell.Subscribe(1)

	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected subscription channel to be closed")
	}

	// A store after cancel must not panic or deliver.
	cell.Store(State{Ready: true})
}

func TestCoordinatorSubscribeObservesLifecycle(t *testing.T) {
	ex := &countingExchanger{
		result: Result{User: User{ID: "u1"}},
	}
	c, done := buildTestCoordinator(t, defaultConfig(), ex)
	defer done()

	ch, cancel := c.Subscribe(8)
	defer cancel()

	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	sawLoading := false
	deadline := time.After(2 * time.Second)
	for {
		select {
		case state := <-ch:
			if state.Loading {
				sawLoading = true
			}
			if state.Ready && state.User != nil {
				if !sawLoading {
					t.Fatal("ready state arrived without a loading publication")
				}
				return
			}
			if state.Err != nil {
				t.Fatalf("unexpected error state: %v", state.Err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for ready state")
		}
	}
}

func TestNilCoordinatorSubscribeClosed(t *testing.T) {
	var c *Coordinator
	ch, cancel := c.Subscribe(1)
	defer cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel from nil coordinator")
	}
}

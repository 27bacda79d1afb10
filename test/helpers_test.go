//go:build integration
// +build integration

package test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	goLaunch "github.com/MrEthical07/goLaunch"
	"github.com/MrEthical07/goLaunch/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newIntegrationRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return rdb, mr, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

// integrationExchanger returns an ExchangerFunc that serves user, plus a
// counter of how many exchanges actually ran.
func integrationExchanger(user goLaunch.User) (goLaunch.ExchangerFunc, *atomic.Int64) {
	calls := &atomic.Int64{}
	fn := goLaunch.ExchangerFunc(func(ctx context.Context, req goLaunch.Request) (goLaunch.Result, error) {
		calls.Add(1)
		return goLaunch.Result{User: user, Mode: req.Mode}, nil
	})
	return fn, calls
}

// newRedisCoordinator wires a coordinator against the given Redis client with
// subsidiary warming disabled, so Redis traffic maps 1:1 to cache operations.
func newRedisCoordinator(t *testing.T, rdb redis.UniversalClient, user goLaunch.User) (*goLaunch.Coordinator, *atomic.Int64) {
	t.Helper()

	ex, calls := integrationExchanger(user)

	cfg := goLaunch.DefaultConfig()
	cfg.Session.WarmSubsidiary = false

	c, err := goLaunch.New().
		WithConfig(cfg).
		WithExchanger(ex).
		WithCache(cache.NewRedis(rdb, "it", time.Hour)).
		Build()
	if err != nil {
		t.Fatalf("build coordinator: %v", err)
	}
	t.Cleanup(c.Close)

	return c, calls
}

func makeUser(id string) goLaunch.User {
	return goLaunch.User{
		ID:          id,
		Username:    "user-" + id,
		DisplayName: "User " + id,
		AvatarURL:   "https://cdn.example.com/avatars/" + id + ".png",
	}
}

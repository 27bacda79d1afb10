package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goLaunch "github.com/MrEthical07/goLaunch"
	"github.com/MrEthical07/goLaunch/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		coordinators    = flag.Int("coordinators", 2000, "number of coordinators to build")
		concurrency     = flag.Int("concurrency", 128, "number of concurrent workers")
		ops             = flag.Int("ops", 100000, "short-circuit operations after the bootstrap phase")
		redisAddr       = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		exchangeLatency = flag.Duration("exchange-latency", 0, "artificial latency per exchange call")
	)
	flag.Parse()

	if *coordinators <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "coordinators, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	var exchanges atomic.Int64
	delay := *exchangeLatency

	fmt.Printf("building %d coordinators...\n", *coordinators)
	startBuild := time.Now()
	pool := make([]*goLaunch.Coordinator, *coordinators)
	for i := 0; i < *coordinators; i++ {
		userID := fmt.Sprintf("user-%d", i)
		exchanger := goLaunch.ExchangerFunc(func(ctx context.Context, _ goLaunch.Request) (goLaunch.Result, error) {
			exchanges.Add(1)
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return goLaunch.Result{}, ctx.Err()
				}
			}
			return goLaunch.Result{User: goLaunch.User{ID: userID}}, nil
		})

		cfg := goLaunch.DefaultConfig()
		cfg.Session.WarmSubsidiary = false
		cfg.Metrics.Enabled = true

		c, err := goLaunch.New().
			WithConfig(cfg).
			WithExchanger(exchanger).
			WithCache(cache.NewRedis(client, fmt.Sprintf("lt%d", i), time.Hour)).
			WithTokenSource(goLaunch.StaticTokenSource{Token: "i-load-r-test"}).
			Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
			os.Exit(1)
		}
		pool[i] = c
	}
	fmt.Printf("built in %s\n", time.Since(startBuild).Round(time.Millisecond))

	defer func() {
		for _, c := range pool {
			c.Close()
		}
	}()

	bootstrapStats := runBootstrapPhase(ctx, pool, *concurrency)
	shortCircuitStats := runShortCircuitPhase(ctx, pool, *ops, *concurrency)

	fmt.Println("---- results ----")
	printStats("bootstrap", bootstrapStats)
	printStats("short-circuit", shortCircuitStats)
	fmt.Printf("exchange calls: %d (want %d, one per coordinator)\n", exchanges.Load(), *coordinators)
}

func runBootstrapPhase(ctx context.Context, pool []*goLaunch.Coordinator, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, len(pool))
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= len(pool) {
					return
				}
				t0 := time.Now()
				err := pool[i].Initialize(ctx)
				d := time.Since(t0)
				if err != nil || !pool[i].State().Ready {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runShortCircuitPhase(ctx context.Context, pool []*goLaunch.Coordinator, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				idx := r.Intn(len(pool))
				t0 := time.Now()
				err := pool[idx].Initialize(ctx)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}

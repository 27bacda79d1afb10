package goLaunch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MrEthical07/goLaunch/credential"
	"github.com/MrEthical07/goLaunch/launchparams"
)

// Initialize runs the bootstrap sequence exactly once per session. The first
// caller executes the exchange; concurrent callers return nil immediately
// while the run proceeds; callers after a completed run get the cached user
// republished without a new exchange.
//
// A nil return does not imply an authenticated session: guest outcomes and
// duplicate triggers both return nil. The error paths are contract
// violations ([ErrResponseMalformed]), persistence failures
// ([ErrSessionCachePersist]), and recovered panics ([ErrBootstrapPanic]).
//
//	Docs: docs/coordinator.md
func (c *Coordinator) Initialize(ctx context.Context) error {
	if c == nil || c.exchanger == nil {
		return ErrCoordinatorNotReady
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	if c.hasCompleted {
		c.mu.Unlock()
		c.metricInc(MetricBootstrapShortCircuit)
		return c.republishCached(ctx)
	}
	if c.isRunning {
		c.mu.Unlock()
		c.metricInc(MetricBootstrapDuplicate)
		return nil
	}
	c.isRunning = true
	c.generation++
	gen := c.generation
	prior := c.state.Load()
	c.mu.Unlock()

	c.publish(gen, State{Ready: prior.Ready, Loading: true, User: prior.User})
	return c.run(ctx, gen)
}

// Reinitialize discards the completed session and starts a fresh bootstrap
// run in the background. It returns without waiting and never reports an
// error; the outcome arrives through the published [State].
//
//	Docs: docs/coordinator.md
func (c *Coordinator) Reinitialize(ctx context.Context) {
	if c == nil || c.exchanger == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	c.metricInc(MetricBootstrapReinitialize)

	c.mu.Lock()
	c.hasCompleted = false
	c.isRunning = true
	c.generation++
	gen := c.generation
	prior := c.state.Load()
	c.mu.Unlock()

	c.publish(gen, State{Ready: prior.Ready, Loading: true, User: prior.User})

	// Values such as the launch token override survive; the caller's
	// cancellation does not, since the run outlives the call.
	runCtx := context.WithoutCancel(ctx)
	c.detached.Go("reinitialize", func() error {
		return c.run(runCtx, gen)
	})
}

// run executes the guarded bootstrap sequence for one generation. Every exit
// path publishes a terminal state or leaves the short-circuit path to do so,
// and releases the running flag for its own generation only.
func (c *Coordinator) run(ctx context.Context, gen uint64) (err error) {
	attemptID := uuid.NewString()

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrBootstrapPanic, rec)
			c.logger.Error("bootstrap sequence panicked",
				zap.String("attempt_id", attemptID),
				zap.Any("panic", rec),
			)
			c.metricInc(MetricBootstrapFailure)
			c.publish(gen, State{Err: err})
		}

		c.mu.Lock()
		if gen == c.generation {
			c.isRunning = false
		}
		c.mu.Unlock()
	}()

	channel := c.detector.Detect()
	token := c.launchToken(ctx)
	params := launchparams.Decode(token)

	req := Request{
		InviteCode: params.Get(launchparams.KeyInvite),
		ReferalID:  params.Get(launchparams.KeyReferal),
		Mode:       params.Get(launchparams.KeyMode),
		Page:       params.Get(launchparams.KeyPage),
		Timezone:   c.timezone(ctx),
	}

	c.logger.Debug("bootstrap exchange starting",
		zap.String("attempt_id", attemptID),
		zap.String("channel", channel.Kind.String()),
		zap.Int("params", params.Len()),
	)

	exchangeCtx := WithAuthChannel(ctx, channel)
	start := time.Now()
	result, exchErr := c.exchanger.Exchange(exchangeCtx, req)
	c.metricObserve(MetricExchangeLatency, time.Since(start))

	if exchErr != nil {
		if errors.Is(exchErr, ErrResponseMalformed) {
			wrapped := fmt.Errorf("bootstrap exchange: %w", exchErr)
			c.metricInc(MetricBootstrapFailure)
			c.logger.Error("bootstrap exchange result malformed",
				zap.String("attempt_id", attemptID),
				zap.Error(exchErr),
			)
			c.publish(gen, State{Err: wrapped})
			return wrapped
		}

		// Anything else folds into a guest session. Auth rejections are the
		// expected shape; infrastructure failures are logged and counted so
		// they stay distinguishable upstream.
		if !errors.Is(exchErr, ErrUnauthenticated) {
			c.metricInc(MetricExchangeError)
			c.logger.Warn("bootstrap exchange failed, continuing as guest",
				zap.String("attempt_id", attemptID),
				zap.Error(exchErr),
			)
		} else {
			c.logger.Debug("bootstrap exchange declined credentials",
				zap.String("attempt_id", attemptID),
			)
		}
		c.metricInc(MetricBootstrapGuest)
		c.publish(gen, State{})
		return nil
	}

	// The exchange is the only suspension point; a run that resumes after
	// Reinitialize bumped the generation must not persist, emit, or route.
	if c.superseded(gen) {
		c.logger.Debug("abandoning superseded bootstrap run",
			zap.String("attempt_id", attemptID),
		)
		return nil
	}

	user := result.User
	if user.ID == "" {
		wrapped := fmt.Errorf("%w: exchange result missing user id", ErrResponseMalformed)
		c.metricInc(MetricBootstrapFailure)
		c.logger.Error("bootstrap exchange result malformed",
			zap.String("attempt_id", attemptID),
			zap.Error(wrapped),
		)
		c.publish(gen, State{Err: wrapped})
		return wrapped
	}

	if err := c.persistUser(ctx, user); err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrSessionCachePersist, err)
		c.metricInc(MetricBootstrapFailure)
		c.logger.Error("session cache persist failed",
			zap.String("attempt_id", attemptID),
			zap.Error(err),
		)
		c.publish(gen, State{Err: wrapped})
		return wrapped
	}

	c.setCompleted(gen)

	c.emitIdentify(ctx, user.ID, channel, attemptID)
	c.emitBootstrapCompleted(ctx, user.ID, attemptID, channel, token, params)

	if result.Mode != "" {
		c.routeMode(ctx, result.Mode)
	}

	c.warmSubsidiary(attemptID, channel)

	if page := params.Get(launchparams.KeyPage); page != "" && c.config.Routing.FollowPageParam {
		c.metricInc(MetricPageFollowed)
		c.navigate(ctx, normalizeTarget(page))
	}

	c.publish(gen, State{Ready: true, User: &user})
	c.metricInc(MetricBootstrapSuccess)

	c.logger.Info("bootstrap completed",
		zap.String("attempt_id", attemptID),
		zap.String("user_id", user.ID),
		zap.String("channel", channel.Kind.String()),
	)
	return nil
}

// republishCached re-emits the completed outcome from the session cache. No
// exchange call happens on this path; a cache miss or read failure degrades
// to a ready state without a user.
func (c *Coordinator) republishCached(ctx context.Context) error {
	var userPtr *User
	data, ok, err := c.cache.Get(ctx, c.config.Session.UserCacheKey)
	switch {
	case err != nil:
		c.logger.Warn("cached user read failed", zap.Error(err))
	case ok:
		u, decodeErr := decodeUser(data)
		if decodeErr != nil {
			c.logger.Warn("cached user blob invalid", zap.Error(decodeErr))
		} else {
			userPtr = &u
		}
	}

	c.state.Store(State{Ready: true, User: userPtr})
	return nil
}

// publish applies a state replacement only while gen is the live generation.
// The flag mutex spans both the check and the store so a reinitialized
// coordinator can never be overwritten by the run it abandoned.
func (c *Coordinator) publish(gen uint64, next State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("dropping stale bootstrap publication",
			zap.Uint64("generation", gen),
			zap.Uint64("current", c.generation),
		)
		return
	}
	c.state.Store(next)
}

func (c *Coordinator) setCompleted(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.generation {
		c.hasCompleted = true
	}
}

func (c *Coordinator) superseded(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen != c.generation
}

func (c *Coordinator) launchToken(ctx context.Context) string {
	if token, ok := launchTokenFromContext(ctx); ok {
		return token
	}
	if c.tokens != nil {
		return c.tokens.LaunchToken()
	}
	return ""
}

func (c *Coordinator) timezone(ctx context.Context) string {
	if tz := timezoneFromContext(ctx); tz != "" {
		return tz
	}
	if c.config.Session.Timezone != "" {
		return c.config.Session.Timezone
	}
	return time.Local.String()
}

func (c *Coordinator) persistUser(ctx context.Context, u User) error {
	blob, err := encodeUser(u)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.config.Session.UserCacheKey, blob)
}

func (c *Coordinator) routeMode(ctx context.Context, mode string) {
	target, ok := c.modes.Target(mode)
	if !ok {
		c.metricInc(MetricModeUnknown)
		c.logger.Debug("unknown launch mode ignored", zap.String("mode", mode))
		return
	}
	c.metricInc(MetricModeRouted)
	c.navigate(ctx, target)
}

func (c *Coordinator) navigate(ctx context.Context, target string) {
	if c.router == nil {
		return
	}
	if err := c.router.Navigate(ctx, target); err != nil {
		c.metricInc(MetricNavigationFailed)
		c.logger.Warn("navigation failed",
			zap.String("target", target),
			zap.Error(err),
		)
	}
}

func (c *Coordinator) warmSubsidiary(attemptID string, channel credential.Channel) {
	if !c.config.Session.WarmSubsidiary || c.subsidiary == nil {
		return
	}

	c.detached.Go("subsidiary-warm", func() error {
		// The warm task outlives the bootstrap call, so it starts from a fresh
		// context and carries only the detected channel for transport auth.
		ctx := WithAuthChannel(context.Background(), channel)

		payload, err := c.subsidiary.LoadSubsidiary(ctx)
		if err != nil {
			c.metricInc(MetricSubsidiaryWarmFailed)
			return fmt.Errorf("load subsidiary (attempt %s): %w", attemptID, err)
		}
		if err := c.cache.Set(ctx, c.config.Session.SubsidiaryCacheKey, payload); err != nil {
			c.metricInc(MetricSubsidiaryWarmFailed)
			return fmt.Errorf("cache subsidiary (attempt %s): %w", attemptID, err)
		}

		c.metricInc(MetricSubsidiaryWarmed)
		return nil
	})
}

func normalizeTarget(page string) string {
	if strings.HasPrefix(page, "/") {
		return page
	}
	return "/" + page
}

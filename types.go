package goLaunch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// User is the profile returned by the bootstrap exchange. The zero ID marks
// an absent user; everything else is presentation data.
//
//	Docs: docs/exchange.md
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Request is the bootstrap exchange payload assembled from the decoded
// launch parameters and the caller's timezone.
//
//	Docs: docs/exchange.md
type Request struct {
	InviteCode string `json:"invite_code"`
	ReferalID  string `json:"referal_id"`
	Mode       string `json:"mode,omitempty"`
	Page       string `json:"page"`
	Timezone   string `json:"timezone"`
}

// Result is the bootstrap exchange response: the authenticated user plus an
// optional server-directed launch mode.
//
//	Docs: docs/exchange.md
type Result struct {
	User User   `json:"current_user"`
	Mode string `json:"mode,omitempty"`
}

// Exchanger defines a public type used by goLaunch APIs.
//
// Exchanger instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Exchanger interface {
	Exchange(ctx context.Context, req Request) (Result, error)
}

// ExchangerFunc defines a public type used by goLaunch APIs.
//
// ExchangerFunc instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ExchangerFunc func(ctx context.Context, req Request) (Result, error)

// Exchange describes the exchange operation and its observable behavior.
//
// Exchange may return an error when input validation, dependency calls, or security checks fail.
// Exchange does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f ExchangerFunc) Exchange(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

// SubsidiaryLoader fetches the non-critical payload warmed in the background
// after a successful bootstrap. The returned bytes are cached verbatim.
//
//	Docs: docs/exchange.md
type SubsidiaryLoader interface {
	LoadSubsidiary(ctx context.Context) ([]byte, error)
}

// SubsidiaryLoaderFunc defines a public type used by goLaunch APIs.
//
// SubsidiaryLoaderFunc instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SubsidiaryLoaderFunc func(ctx context.Context) ([]byte, error)

// LoadSubsidiary describes the loadsubsidiary operation and its observable behavior.
//
// LoadSubsidiary may return an error when input validation, dependency calls, or security checks fail.
// LoadSubsidiary does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f SubsidiaryLoaderFunc) LoadSubsidiary(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// TokenSource defines a public type used by goLaunch APIs.
//
// TokenSource instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TokenSource interface {
	LaunchToken() string
}

// StaticTokenSource defines a public type used by goLaunch APIs.
//
// StaticTokenSource instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StaticTokenSource struct {
	Token string
}

// LaunchToken describes the launchtoken operation and its observable behavior.
//
// LaunchToken may return an error when input validation, dependency calls, or security checks fail.
// LaunchToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s StaticTokenSource) LaunchToken() string {
	return s.Token
}

type envToken struct {
	Token string `env:"LAUNCH_TOKEN"`
}

// EnvTokenSource defines a public type used by goLaunch APIs.
//
// EnvTokenSource instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EnvTokenSource struct{}

// LaunchToken describes the launchtoken operation and its observable behavior.
//
// LaunchToken may return an error when input validation, dependency calls, or security checks fail.
// LaunchToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (EnvTokenSource) LaunchToken() string {
	var payload envToken
	if err := env.Parse(&payload); err != nil {
		return ""
	}
	return payload.Token
}

// HealthStatus defines a public type used by goLaunch APIs.
//
// HealthStatus instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HealthStatus struct {
	CacheAvailable bool
	CacheLatency   time.Duration
}

// Cached user blobs carry a leading version byte so the layout can migrate
// without poisoning old entries.
const userBlobVersion = 1

func encodeUser(u User) ([]byte, error) {
	body, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(body)+1)
	out = append(out, userBlobVersion)
	out = append(out, body...)
	return out, nil
}

func decodeUser(data []byte) (User, error) {
	if len(data) < 2 {
		return User{}, errors.New("user blob too short")
	}
	if data[0] != userBlobVersion {
		return User{}, fmt.Errorf("unknown user blob version %d", data[0])
	}

	var u User
	if err := json.Unmarshal(data[1:], &u); err != nil {
		return User{}, err
	}
	return u, nil
}

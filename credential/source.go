package credential

import (
	"github.com/caarlos0/env/v11"
)

// Source defines a public type used by goLaunch APIs.
//
// Source instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Source interface {
	EmbeddedCredential() string
}

// StaticSource defines a public type used by goLaunch APIs.
//
// StaticSource instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StaticSource struct {
	Credential string
}

// EmbeddedCredential describes the embeddedcredential operation and its observable behavior.
//
// EmbeddedCredential may return an error when input validation, dependency calls, or security checks fail.
// EmbeddedCredential does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s StaticSource) EmbeddedCredential() string {
	return s.Credential
}

type envCredential struct {
	Blob string `env:"LAUNCH_EMBEDDED_CREDENTIAL"`
}

// EnvSource defines a public type used by goLaunch APIs.
//
// EnvSource instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EnvSource struct{}

// EmbeddedCredential describes the embeddedcredential operation and its observable behavior.
//
// EmbeddedCredential may return an error when input validation, dependency calls, or security checks fail.
// EmbeddedCredential does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (EnvSource) EmbeddedCredential() string {
	var payload envCredential
	if err := env.Parse(&payload); err != nil {
		return ""
	}
	return payload.Blob
}

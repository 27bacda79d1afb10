package credential

import (
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Detector defines a public type used by goLaunch APIs.
//
// Detector instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Detector struct {
	source Source
	logger *zap.Logger
}

// NewDetector describes the newdetector operation and its observable behavior.
//
// NewDetector may return an error when input validation, dependency calls, or security checks fail.
// NewDetector does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewDetector(source Source, logger *zap.Logger) *Detector {
	if source == nil {
		source = EnvSource{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{
		source: source,
		logger: logger,
	}
}

// Detect describes the detect operation and its observable behavior.
//
// Detect may return an error when input validation, dependency calls, or security checks fail.
// Detect does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (d *Detector) Detect() Channel {
	blob := d.source.EmbeddedCredential()
	if blob == "" {
		return Channel{Kind: KindWeb}
	}

	ch := Channel{
		Kind: KindEmbedded,
		Blob: blob,
	}
	ch.ExternalID = d.externalID(blob)
	return ch
}

// externalID extracts the unverified subject claim. Best effort: a credential
// that is not a JWS, or carries no subject, yields an empty ID.
func (d *Detector) externalID(blob string) string {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(blob, claims); err != nil {
		d.logger.Debug("embedded credential is not a parseable JWS", zap.Error(err))
		return ""
	}
	return claims.Subject
}

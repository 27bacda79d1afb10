package credential

// Kind defines a public type used by goLaunch APIs.
//
// Kind instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Kind uint8

const (
	// KindWeb is an exported constant or variable used by the bootstrap coordinator.
	KindWeb Kind = iota

	// KindEmbedded is an exported constant or variable used by the bootstrap coordinator.
	KindEmbedded
)

// String describes the string operation and its observable behavior.
//
// String may return an error when input validation, dependency calls, or security checks fail.
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k Kind) String() string {
	switch k {
	case KindEmbedded:
		return "embedded"
	default:
		return "web"
	}
}

// Channel defines a public type used by goLaunch APIs.
//
// Channel instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Channel struct {
	Kind Kind

	// Blob is the raw embedded platform credential. Empty on the web channel.
	Blob string

	// ExternalID is the subject read from the credential without signature
	// verification. Telemetry association only, never authorization.
	ExternalID string
}

// Embedded describes the embedded operation and its observable behavior.
//
// Embedded may return an error when input validation, dependency calls, or security checks fail.
// Embedded does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Channel) Embedded() bool {
	return c.Kind == KindEmbedded
}

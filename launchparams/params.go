package launchparams

import (
	"strings"
)

// Key defines a public type used by goLaunch APIs.
//
// Key instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Key string

const (
	// KeyInvite is an exported constant or variable used by the bootstrap coordinator.
	KeyInvite Key = "invite"

	// KeyReferal is an exported constant or variable used by the bootstrap coordinator.
	// The spelling matches the exchange wire field referal_id.
	KeyReferal Key = "referal"

	// KeyMode is an exported constant or variable used by the bootstrap coordinator.
	KeyMode Key = "mode"

	// KeyPage is an exported constant or variable used by the bootstrap coordinator.
	KeyPage Key = "page"
)

const delimiter = "-"

// Short codes are the on-wire spelling of each key. The set is closed: tokens
// minted with codes outside this table decode to fewer parameters.
var shortCodes = map[string]Key{
	"i": KeyInvite,
	"r": KeyReferal,
	"m": KeyMode,
	"p": KeyPage,
}

var codeOrder = []string{"i", "r", "m", "p"}

// Params defines a public type used by goLaunch APIs.
//
// Params instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Params struct {
	values map[Key]string
	raw    string
}

// Decode describes the decode operation and its observable behavior.
//
// Decode may return an error when input validation, dependency calls, or security checks fail.
// Decode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Decode(token string) Params {
	p := Params{
		values: map[Key]string{},
		raw:    token,
	}
	if token == "" {
		return p
	}

	fields := strings.Split(token, delimiter)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := shortCodes[fields[i]]
		if !ok {
			continue
		}
		p.values[key] = fields[i+1]
	}
	return p
}

// Encode describes the encode operation and its observable behavior.
//
// Encode may return an error when input validation, dependency calls, or security checks fail.
// Encode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Encode(values map[Key]string) string {
	var b strings.Builder
	for _, code := range codeOrder {
		value, ok := values[shortCodes[code]]
		if !ok || value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(code)
		b.WriteString(delimiter)
		b.WriteString(value)
	}
	return b.String()
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (p Params) Get(key Key) string {
	return p.values[key]
}

// Has describes the has operation and its observable behavior.
//
// Has may return an error when input validation, dependency calls, or security checks fail.
// Has does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (p Params) Has(key Key) bool {
	_, ok := p.values[key]
	return ok
}

// Len describes the len operation and its observable behavior.
//
// Len may return an error when input validation, dependency calls, or security checks fail.
// Len does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (p Params) Len() int {
	return len(p.values)
}

// Raw describes the raw operation and its observable behavior.
//
// Raw may return an error when input validation, dependency calls, or security checks fail.
// Raw does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (p Params) Raw() string {
	return p.raw
}

// Map describes the map operation and its observable behavior.
//
// Map may return an error when input validation, dependency calls, or security checks fail.
// Map does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (p Params) Map() map[Key]string {
	out := make(map[Key]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	goLaunch "github.com/MrEthical07/goLaunch"
)

const (
	// DefaultTimeout bounds each request when no custom client is supplied.
	DefaultTimeout = 10 * time.Second

	// DefaultCredentialHeader carries embedded credential blobs.
	DefaultCredentialHeader = "X-Launch-Credential"
)

// Config controls the HTTP exchange transport.
type Config struct {
	// Endpoint receives the POSTed launch parameters.
	Endpoint string

	// SubsidiaryEndpoint serves the warm-cache payload via GET. Optional;
	// LoadSubsidiary fails when empty.
	SubsidiaryEndpoint string

	// CredentialHeader overrides DefaultCredentialHeader.
	CredentialHeader string

	// Timeout applies when Client is nil. Zero means DefaultTimeout.
	Timeout time.Duration

	// Client overrides the constructed http.Client, including its cookie jar
	// for web-session channels.
	Client *http.Client
}

// HTTP exchanges launch parameters for the current user session over JSON.
// It implements goLaunch.Exchanger and goLaunch.SubsidiaryLoader.
type HTTP struct {
	cfg    Config
	client *http.Client
}

// NewHTTP validates cfg and returns a ready transport.
func NewHTTP(cfg Config) (*HTTP, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("exchange Endpoint must not be empty")
	}
	if cfg.CredentialHeader == "" {
		cfg.CredentialHeader = DefaultCredentialHeader
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTP{cfg: cfg, client: client}, nil
}

// Exchange POSTs the request and maps the response onto coordinator semantics:
// 401 and 403 become [goLaunch.ErrUnauthenticated] (guest outcome), other
// non-2xx statuses and transport failures become
// [goLaunch.ErrExchangeUnavailable], and undecodable or incomplete bodies
// become [goLaunch.ErrResponseMalformed].
func (h *HTTP) Exchange(ctx context.Context, req goLaunch.Request) (goLaunch.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return goLaunch.Result{}, fmt.Errorf("encode exchange request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return goLaunch.Result{}, fmt.Errorf("build exchange request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	h.applyChannel(ctx, httpReq)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return goLaunch.Result{}, fmt.Errorf("%w: %v", goLaunch.ErrExchangeUnavailable, err)
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return goLaunch.Result{}, fmt.Errorf("%w: status %d", goLaunch.ErrUnauthenticated, resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode > 299:
		return goLaunch.Result{}, fmt.Errorf("%w: status %d", goLaunch.ErrExchangeUnavailable, resp.StatusCode)
	}

	var result goLaunch.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return goLaunch.Result{}, fmt.Errorf("%w: %v", goLaunch.ErrResponseMalformed, err)
	}
	if result.User.ID == "" {
		return goLaunch.Result{}, fmt.Errorf("%w: missing user id", goLaunch.ErrResponseMalformed)
	}

	return result, nil
}

// LoadSubsidiary GETs the configured subsidiary endpoint and returns the raw
// payload for the coordinator to cache.
func (h *HTTP) LoadSubsidiary(ctx context.Context) ([]byte, error) {
	if h.cfg.SubsidiaryEndpoint == "" {
		return nil, errors.New("exchange SubsidiaryEndpoint must not be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.cfg.SubsidiaryEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build subsidiary request: %w", err)
	}
	h.applyChannel(ctx, req)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", goLaunch.ErrExchangeUnavailable, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", goLaunch.ErrExchangeUnavailable, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read subsidiary payload: %w", err)
	}

	return payload, nil
}

func (h *HTTP) applyChannel(ctx context.Context, req *http.Request) {
	if ch, ok := goLaunch.AuthChannelFromContext(ctx); ok {
		ChannelFor(ch, h.cfg.CredentialHeader).Apply(req)
	}
}

// drainAndClose keeps the connection reusable by the client pool.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

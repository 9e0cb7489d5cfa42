package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// proxyEnvelope is the JSON body the proxy front accepts.
type proxyEnvelope struct {
	Endpoint string `json:"endpoint"`
	Data     string `json:"data"`
	IsTest   bool   `json:"isTest"`
}

// ProxyTransport implements ports.Transport by relaying through the proxy
// front instead of calling the gateway directly. Browser-side callers use it
// when they cannot reach the gateway cross-origin.
type ProxyTransport struct {
	client HTTPClient
	url    string
	token  string
	log    zerolog.Logger
}

// NewProxyTransport creates a transport that posts envelopes to proxyURL.
// An empty token omits the Authorization header.
func NewProxyTransport(proxyURL, token string, client HTTPClient, log zerolog.Logger) *ProxyTransport {
	return &ProxyTransport{
		client: client,
		url:    proxyURL,
		token:  token,
		log:    log,
	}
}

// Send wraps xmlBody in a proxy envelope and returns the relayed gateway text.
func (p *ProxyTransport) Send(ctx context.Context, op domain.Operation, xmlBody string, useSandbox bool) (string, error) {
	payload, err := json.Marshal(proxyEnvelope{
		Endpoint: op.Path(),
		Data:     xmlBody,
		IsTest:   useSandbox,
	})
	if err != nil {
		return "", &apperror.TransportError{Operation: op.Path(), Err: fmt.Errorf("encoding envelope: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return "", &apperror.TransportError{Operation: op.Path(), Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Warn().Err(err).Str("operation", op.Path()).Msg("proxy call failed")
		return "", &apperror.TransportError{Operation: op.Path(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperror.TransportError{
			Operation:  op.Path(),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	p.log.Debug().
		Str("operation", op.Path()).
		Bool("sandbox", useSandbox).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("proxy call completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &apperror.TransportError{
			Operation:  op.Path(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	return string(body), nil
}

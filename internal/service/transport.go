package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gaps-gateway/config"
	"gaps-gateway/internal/core/domain"
	"gaps-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	// ContentTypeXML is sent with every gateway call.
	ContentTypeXML = "text/xml; charset=UTF-8"
	// HeaderSOAPAction carries namespace + operation name.
	HeaderSOAPAction = "SOAPAction"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportRouter implements ports.Transport and ports.Dispatcher against the
// bank gateway. The environment is picked from a two-entry table keyed by the
// sandbox flag; nothing else selects it. No retries, no caching.
type TransportRouter struct {
	client          HTTPClient
	baseURLs        map[bool]string
	actionNamespace string
	log             zerolog.Logger
}

// NewTransportRouter creates a router for the configured gateway pair.
func NewTransportRouter(cfg config.GatewayConfig, client HTTPClient, log zerolog.Logger) *TransportRouter {
	return &TransportRouter{
		client: client,
		baseURLs: map[bool]string{
			true:  strings.TrimRight(cfg.SandboxURL, "/"),
			false: strings.TrimRight(cfg.ProductionURL, "/"),
		},
		actionNamespace: cfg.ActionNamespace,
		log:             log,
	}
}

// NewGatewayHTTPClient returns the client used for gateway calls. A zero
// timeout leaves the transport defaults in place.
func NewGatewayHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// URL composes {base}/{operation} for the selected environment.
func (r *TransportRouter) URL(op domain.Operation, useSandbox bool) string {
	return r.baseURLs[useSandbox] + "/" + op.Path()
}

// Action returns the SOAPAction header value for op.
func (r *TransportRouter) Action(op domain.Operation) string {
	return r.actionNamespace + op.Path()
}

// Send posts xmlBody and returns the raw response text.
func (r *TransportRouter) Send(ctx context.Context, op domain.Operation, xmlBody string, useSandbox bool) (string, error) {
	reply, err := r.Dispatch(ctx, op, xmlBody, useSandbox)
	if err != nil {
		return "", err
	}
	return reply.Body, nil
}

// Dispatch posts xmlBody and returns the gateway's reply untouched. Non-2xx
// answers become a *apperror.TransportError that keeps the full body.
func (r *TransportRouter) Dispatch(ctx context.Context, op domain.Operation, xmlBody string, useSandbox bool) (*domain.RawReply, error) {
	url := r.URL(op, useSandbox)
	env := domain.EnvironmentName(useSandbox)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(xmlBody))
	if err != nil {
		return nil, &apperror.TransportError{Operation: op.Path(), Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", ContentTypeXML)
	req.Header.Set(HeaderSOAPAction, r.Action(op))

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warn().Err(err).Str("operation", op.Path()).Str("environment", env).Msg("gateway call failed")
		return nil, &apperror.TransportError{Operation: op.Path(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperror.TransportError{
			Operation:  op.Path(),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	r.log.Info().
		Str("operation", op.Path()).
		Str("environment", env).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("gateway call completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apperror.TransportError{
			Operation:  op.Path(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return &domain.RawReply{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}, nil
}

package service

import (
	"context"
	"strings"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports"
	"gaps-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// RelayServiceImpl implements ports.RelayService. It picks the endpoint and
// forwards the payload; the XML is never parsed or rewritten.
type RelayServiceImpl struct {
	dispatcher ports.Dispatcher
	log        zerolog.Logger
}

// NewRelayService creates a relay over dispatcher.
func NewRelayService(dispatcher ports.Dispatcher, log zerolog.Logger) *RelayServiceImpl {
	return &RelayServiceImpl{dispatcher: dispatcher, log: log}
}

// Relay checks the envelope and dispatches its payload unchanged.
func (s *RelayServiceImpl) Relay(ctx context.Context, env domain.ProxyEnvelope) (*domain.RawReply, error) {
	if strings.TrimSpace(env.Endpoint) == "" {
		return nil, apperror.ErrMissingField("endpoint")
	}
	op, ok := domain.ParseOperation(env.Endpoint)
	if !ok {
		return nil, apperror.ErrUnknownOperation(env.Endpoint)
	}
	if strings.TrimSpace(env.Payload) == "" {
		return nil, apperror.ErrMissingField("data")
	}

	reply, err := s.dispatcher.Dispatch(ctx, op, env.Payload, env.UseSandbox)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("operation", op.Path()).
			Str("environment", domain.EnvironmentName(env.UseSandbox)).
			Msg("relay failed")
		return nil, err
	}
	return reply, nil
}

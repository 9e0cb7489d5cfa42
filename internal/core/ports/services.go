package ports

import (
	"context"
	"time"

	"gaps-gateway/internal/core/domain"
)

// Signer computes the integrity digest over ordered field values.
type Signer interface {
	Sign(orderedValues []string) string
}

// RequestBuilder assembles signed request payloads for each gateway operation.
type RequestBuilder interface {
	AccountValidation(accountNumber string) (*domain.SignedRequest, error)
	BalanceRetrieval(accountNumber string) (*domain.SignedRequest, error)
	SingleTransfer(tx domain.TransactionDetails, customerAcctNumber string) (*domain.SignedRequest, error)
	BulkTransfer(txs []domain.TransactionDetails) (*domain.SignedRequest, error)
	TransactionReQuery(reference string) (*domain.SignedRequest, error)
}

// Transport carries one XML request to the gateway and returns its raw answer.
type Transport interface {
	Send(ctx context.Context, op domain.Operation, xmlBody string, useSandbox bool) (string, error)
}

// Dispatcher is the transport surface the proxy relays through; it keeps the
// upstream content type.
type Dispatcher interface {
	Dispatch(ctx context.Context, op domain.Operation, xmlBody string, useSandbox bool) (*domain.RawReply, error)
}

// ResponseParser turns raw gateway XML into a typed result. It never fails.
type ResponseParser interface {
	Parse(raw string) domain.GatewayResponse
}

// OutcomeClassifier maps response codes onto caller-side outcomes.
type OutcomeClassifier interface {
	Classify(resp domain.GatewayResponse) domain.Outcome
}

// GatewayClient is the application-facing facade: build, send, parse.
type GatewayClient interface {
	ValidateAccount(ctx context.Context, accountNumber string) (*domain.GatewayResponse, error)
	GetAccountBalance(ctx context.Context, accountNumber string) (*domain.GatewayResponse, error)
	SingleTransfer(ctx context.Context, tx domain.TransactionDetails, customerAcctNumber string) (*domain.GatewayResponse, error)
	BulkTransfer(ctx context.Context, txs []domain.TransactionDetails) (*domain.GatewayResponse, error)
	ReQueryTransaction(ctx context.Context, reference string) (*domain.GatewayResponse, error)
}

// RelayService validates a proxy envelope and forwards its payload.
type RelayService interface {
	Relay(ctx context.Context, env domain.ProxyEnvelope) (*domain.RawReply, error)
}

// TokenService issues and validates bearer tokens for the relay.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Issuer  string
}

// AuditService records relay audits without blocking the request.
type AuditService interface {
	Log(ctx context.Context, entry *domain.RelayAudit)
}

// AuditRepository persists relay audits.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.RelayAudit) error
}

// AuditReader lists recorded relay audits, newest first.
type AuditReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.RelayAudit, error)
}

// HealthChecker reports whether an infrastructure dependency is reachable.
type HealthChecker interface {
	// Ping returns nil when the dependency answers.
	Ping(ctx context.Context) error
	// Name identifies the dependency in health output ("redis", "postgresql").
	Name() string
}

package service

import (
	"context"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// GatewayClientImpl implements ports.GatewayClient: build, send, parse.
// It holds no mutable state; one instance can serve concurrent callers.
type GatewayClientImpl struct {
	builder     ports.RequestBuilder
	transport   ports.Transport
	parser      ports.ResponseParser
	useSandbox  bool
	concurrency int
	log         zerolog.Logger
}

// NewGatewayClient creates a client bound to one environment.
func NewGatewayClient(
	builder ports.RequestBuilder,
	transport ports.Transport,
	parser ports.ResponseParser,
	useSandbox bool,
	concurrency int,
	log zerolog.Logger,
) *GatewayClientImpl {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &GatewayClientImpl{
		builder:     builder,
		transport:   transport,
		parser:      parser,
		useSandbox:  useSandbox,
		concurrency: concurrency,
		log:         log,
	}
}

// UseSandbox reports which environment the client targets.
func (c *GatewayClientImpl) UseSandbox() bool {
	return c.useSandbox
}

func (c *GatewayClientImpl) ValidateAccount(ctx context.Context, accountNumber string) (*domain.GatewayResponse, error) {
	req, err := c.builder.AccountValidation(accountNumber)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(ctx, req)
}

func (c *GatewayClientImpl) GetAccountBalance(ctx context.Context, accountNumber string) (*domain.GatewayResponse, error) {
	req, err := c.builder.BalanceRetrieval(accountNumber)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(ctx, req)
}

func (c *GatewayClientImpl) SingleTransfer(ctx context.Context, tx domain.TransactionDetails, customerAcctNumber string) (*domain.GatewayResponse, error) {
	req, err := c.builder.SingleTransfer(tx, customerAcctNumber)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(ctx, req)
}

func (c *GatewayClientImpl) BulkTransfer(ctx context.Context, txs []domain.TransactionDetails) (*domain.GatewayResponse, error) {
	req, err := c.builder.BulkTransfer(txs)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(ctx, req)
}

func (c *GatewayClientImpl) ReQueryTransaction(ctx context.Context, reference string) (*domain.GatewayResponse, error) {
	req, err := c.builder.TransactionReQuery(reference)
	if err != nil {
		return nil, err
	}
	return c.roundTrip(ctx, req)
}

// roundTrip sends one signed request. Transport failures are returned as
// errors; anything the gateway answered is parsed into a response.
func (c *GatewayClientImpl) roundTrip(ctx context.Context, req *domain.SignedRequest) (*domain.GatewayResponse, error) {
	raw, err := c.transport.Send(ctx, req.Operation, req.Body, c.useSandbox)
	if err != nil {
		return nil, err
	}

	resp := c.parser.Parse(raw)
	c.log.Debug().
		Str("operation", req.Operation.Path()).
		Str("code", resp.Code).
		Bool("has_reference", resp.HasReference()).
		Msg("gateway response parsed")

	return &resp, nil
}

// BatchResult is the outcome of one item of a fan-out call. Exactly one of
// Response and Err is set.
type BatchResult struct {
	Index    int
	Key      string
	Response *domain.GatewayResponse
	Err      error
}

// ReQueryMany re-queries each reference as its own round trip. Results keep
// the input order; one failure does not stop the others.
func (c *GatewayClientImpl) ReQueryMany(ctx context.Context, references []string) []BatchResult {
	return c.fanOut(ctx, len(references), func(i int) (string, *domain.GatewayResponse, error) {
		resp, err := c.ReQueryTransaction(ctx, references[i])
		return references[i], resp, err
	})
}

// TransferEach submits every instruction as a separate single transfer, for
// callers that want per-line results instead of one bulk reply.
func (c *GatewayClientImpl) TransferEach(ctx context.Context, txs []domain.TransactionDetails, customerAcctNumber string) []BatchResult {
	return c.fanOut(ctx, len(txs), func(i int) (string, *domain.GatewayResponse, error) {
		resp, err := c.SingleTransfer(ctx, txs[i], customerAcctNumber)
		return txs[i].Reference, resp, err
	})
}

func (c *GatewayClientImpl) fanOut(ctx context.Context, n int, call func(i int) (string, *domain.GatewayResponse, error)) []BatchResult {
	results := make([]BatchResult, n)

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			results[i].Index = i
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			key, resp, err := call(i)
			results[i].Key = key
			results[i].Response = resp
			results[i].Err = err
			return nil
		})
	}
	_ = g.Wait()

	return results
}

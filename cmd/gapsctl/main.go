// Command gapsctl talks to the GAPS gateway from a trusted host, either
// directly or through the relay.
//
//	gapsctl [flags] validate <account>
//	gapsctl [flags] balance <account>
//	gapsctl [flags] requery <reference>...
//	gapsctl [flags] transfer <instructions.json>
//	gapsctl [flags] token <subject>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gaps-gateway/config"
	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports"
	"gaps-gateway/internal/service"
	"gaps-gateway/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

type options struct {
	configPath   string
	viaProxy     bool
	production   bool
	bulk         bool
	customerAcct string
}

// result is one line of output.
type result struct {
	Key       string  `json:"key,omitempty"`
	Code      string  `json:"code,omitempty"`
	Message   string  `json:"message,omitempty"`
	Reference *string `json:"reference,omitempty"`
	Outcome   string  `json:"outcome,omitempty"`
	Error     string  `json:"error,omitempty"`
}

var errUsage = errors.New("usage: gapsctl [flags] validate|balance|requery|transfer|token <args>")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := pflag.NewFlagSet("gapsctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	fs.BoolVar(&opts.viaProxy, "via-proxy", false, "send through the relay at proxy.url instead of calling the gateway")
	fs.BoolVar(&opts.production, "production", false, "target production even if gateway.use_sandbox is set")
	fs.BoolVar(&opts.bulk, "bulk", false, "transfer: submit all instructions in one BulkTransfers call")
	fs.StringVar(&opts.customerAcct, "customer-acct", "", "transfer: debit account for single transfers")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return errUsage
	}
	command, params := rest[0], rest[1:]

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.NewWithWriter(cfg.Log.Level, stderr)

	if command == "token" {
		return issueToken(cfg, params[0], stdout)
	}

	client, err := newClient(cfg, opts, log)
	if err != nil {
		return err
	}
	classifier := service.NewOutcomeClassifier(cfg.Gateway.PendingCodes)
	enc := json.NewEncoder(stdout)

	emit := func(key string, resp *domain.GatewayResponse, err error) error {
		out := result{Key: key}
		if err != nil {
			out.Error = err.Error()
		} else {
			out.Code = resp.Code
			out.Message = resp.Message
			out.Reference = resp.Reference
			out.Outcome = string(classifier.Classify(*resp))
		}
		return enc.Encode(out)
	}
	emitBatch := func(results []service.BatchResult) error {
		for _, r := range results {
			if err := emit(r.Key, r.Response, r.Err); err != nil {
				return err
			}
		}
		return nil
	}

	switch command {
	case "validate":
		resp, err := client.ValidateAccount(ctx, params[0])
		return emit(params[0], resp, err)
	case "balance":
		resp, err := client.GetAccountBalance(ctx, params[0])
		return emit(params[0], resp, err)
	case "requery":
		return emitBatch(client.ReQueryMany(ctx, params))
	case "transfer":
		txs, err := readInstructions(params[0])
		if err != nil {
			return err
		}
		if opts.bulk {
			resp, err := client.BulkTransfer(ctx, txs)
			return emit(params[0], resp, err)
		}
		if len(txs) == 1 {
			resp, err := client.SingleTransfer(ctx, txs[0], opts.customerAcct)
			return emit(txs[0].Reference, resp, err)
		}
		return emitBatch(client.TransferEach(ctx, txs, opts.customerAcct))
	default:
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
}

func newClient(cfg *config.Config, opts options, log zerolog.Logger) (*service.GatewayClientImpl, error) {
	builder, err := service.NewRequestBuilder(domain.CredentialContext{
		AccessCode: cfg.Credentials.AccessCode,
		Username:   cfg.Credentials.Username,
		Password:   cfg.Credentials.Password,
	}, service.NewSHA512Signer())
	if err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}

	httpClient := service.NewGatewayHTTPClient(cfg.Gateway.Timeout)

	var transport ports.Transport
	if opts.viaProxy {
		transport = service.NewProxyTransport(cfg.Proxy.URL, cfg.Proxy.Token, httpClient, logger.Component(log, "proxy-transport"))
	} else {
		transport = service.NewTransportRouter(cfg.Gateway, httpClient, logger.Component(log, "transport"))
	}

	useSandbox := cfg.Gateway.UseSandbox && !opts.production

	return service.NewGatewayClient(
		builder,
		transport,
		service.NewResponseParser(),
		useSandbox,
		cfg.Gateway.Concurrency,
		logger.Component(log, "client"),
	), nil
}

func readInstructions(path string) ([]domain.TransactionDetails, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instructions: %w", err)
	}
	var txs []domain.TransactionDetails
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, fmt.Errorf("decoding instructions: %w", err)
	}
	return txs, nil
}

func issueToken(cfg *config.Config, subject string, w io.Writer) error {
	if cfg.Auth.Secret == "" {
		return errors.New("auth.secret is not configured")
	}
	tokenSvc := service.NewJWTTokenService(cfg.Auth.Secret, cfg.Auth.Expiry, cfg.Auth.Issuer)
	token, expiresAt, err := tokenSvc.Generate(subject)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(map[string]any{
		"token":      token,
		"expires_at": expiresAt.Unix(),
	})
}

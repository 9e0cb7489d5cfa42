package service

import (
	"strings"
	"unicode/utf8"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports"
	"gaps-gateway/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// Element names shared by several request documents.
const (
	fieldCustomerID         = "customerid"
	fieldUsername           = "username"
	fieldPassword           = "password"
	fieldAccountNumber      = "accountnumber"
	fieldAccessCode         = "accesscode"
	fieldTransDetails       = "transdetails"
	fieldCustomerAcctNumber = "customeracctnumber"
	fieldReference          = "reference"
	fieldHash               = "hash"
)

// textEscaper covers what element content requires. Anything else is written
// as given so the body carries the same bytes the digest was computed over.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// RequestBuilder implements ports.RequestBuilder. Every request is validated
// first, then signed over its fields in document order, then rendered with the
// hash element last.
type RequestBuilder struct {
	creds    domain.CredentialContext
	signer   ports.Signer
	validate *validator.Validate
}

// NewRequestBuilder creates a builder bound to one credential context.
func NewRequestBuilder(creds domain.CredentialContext, signer ports.Signer) (*RequestBuilder, error) {
	if !creds.Complete() {
		return nil, apperror.ErrMissingField("credentials")
	}
	if err := checkText(
		domain.Field{Name: "accessCode", Value: creds.AccessCode},
		domain.Field{Name: "username", Value: creds.Username},
		domain.Field{Name: "password", Value: creds.Password},
	); err != nil {
		return nil, err
	}
	return &RequestBuilder{
		creds:    creds,
		signer:   signer,
		validate: newValidator(),
	}, nil
}

// AccountValidation builds a GetAccountInGTB request.
func (b *RequestBuilder) AccountValidation(accountNumber string) (*domain.SignedRequest, error) {
	return b.accountRequest(domain.OperationGetAccountInGTB, accountNumber)
}

// BalanceRetrieval builds an AccountBalanceRetrieval request.
func (b *RequestBuilder) BalanceRetrieval(accountNumber string) (*domain.SignedRequest, error) {
	return b.accountRequest(domain.OperationAccountBalanceRetrieval, accountNumber)
}

func (b *RequestBuilder) accountRequest(op domain.Operation, accountNumber string) (*domain.SignedRequest, error) {
	if accountNumber == "" {
		return nil, apperror.ErrMissingField("accountNumber")
	}
	if err := checkText(domain.Field{Name: "accountNumber", Value: accountNumber}); err != nil {
		return nil, err
	}
	return b.sign(op, []domain.Field{
		{Name: fieldCustomerID, Value: b.creds.AccessCode},
		{Name: fieldUsername, Value: b.creds.Username},
		{Name: fieldPassword, Value: b.creds.Password},
		{Name: fieldAccountNumber, Value: accountNumber},
	}), nil
}

// SingleTransfer builds a SingleTransfers request. customerAcctNumber is
// optional; when empty it is left out of both the body and the digest.
func (b *RequestBuilder) SingleTransfer(tx domain.TransactionDetails, customerAcctNumber string) (*domain.SignedRequest, error) {
	if err := validateTransaction(b.validate, tx, -1); err != nil {
		return nil, err
	}
	if err := checkText(domain.Field{Name: "customerAcctNumber", Value: customerAcctNumber}); err != nil {
		return nil, err
	}

	fields := b.transferFields(encodeTransactions([]domain.TransactionDetails{tx}))
	if customerAcctNumber != "" {
		fields = append(fields, domain.Field{Name: fieldCustomerAcctNumber, Value: customerAcctNumber})
	}
	return b.sign(domain.OperationSingleTransfers, fields), nil
}

// BulkTransfer builds a BulkTransfers request carrying every instruction.
func (b *RequestBuilder) BulkTransfer(txs []domain.TransactionDetails) (*domain.SignedRequest, error) {
	if len(txs) == 0 {
		return nil, apperror.ErrEmptyBatch()
	}
	for i, tx := range txs {
		if err := validateTransaction(b.validate, tx, i); err != nil {
			return nil, err
		}
	}
	return b.sign(domain.OperationBulkTransfers, b.transferFields(encodeTransactions(txs))), nil
}

// TransactionReQuery builds a TransactionReQuery request for one reference.
func (b *RequestBuilder) TransactionReQuery(reference string) (*domain.SignedRequest, error) {
	if reference == "" {
		return nil, apperror.ErrMissingField("reference")
	}
	if err := checkText(domain.Field{Name: "reference", Value: reference}); err != nil {
		return nil, err
	}
	return b.sign(domain.OperationTransactionReQuery, []domain.Field{
		{Name: fieldReference, Value: reference},
		{Name: fieldAccessCode, Value: b.creds.AccessCode},
		{Name: fieldUsername, Value: b.creds.Username},
		{Name: fieldPassword, Value: b.creds.Password},
	}), nil
}

func (b *RequestBuilder) transferFields(details string) []domain.Field {
	return []domain.Field{
		{Name: fieldTransDetails, Value: details, Fragment: true},
		{Name: fieldAccessCode, Value: b.creds.AccessCode},
		{Name: fieldUsername, Value: b.creds.Username},
		{Name: fieldPassword, Value: b.creds.Password},
	}
}

func (b *RequestBuilder) sign(op domain.Operation, fields []domain.Field) *domain.SignedRequest {
	req := &domain.SignedRequest{Operation: op, Fields: fields}
	req.Digest = b.signer.Sign(req.Values())
	req.Body = renderDocument(op.RequestElement(), fields, req.Digest)
	return req
}

// encodeTransactions serializes instructions as one <transaction> block each,
// wrapped in <transactions>, with no whitespace between elements. The result
// is signed exactly as it is embedded.
func encodeTransactions(txs []domain.TransactionDetails) string {
	var sb strings.Builder
	sb.WriteString("<transactions>")
	for _, tx := range txs {
		sb.WriteString("<transaction>")
		for _, f := range tx.Fields() {
			writeElement(&sb, f)
		}
		sb.WriteString("</transaction>")
	}
	sb.WriteString("</transactions>")
	return sb.String()
}

func renderDocument(root string, fields []domain.Field, digest string) string {
	var sb strings.Builder
	sb.WriteString("<" + root + ">")
	for _, f := range fields {
		writeElement(&sb, f)
	}
	writeElement(&sb, domain.Field{Name: fieldHash, Value: digest})
	sb.WriteString("</" + root + ">")
	return sb.String()
}

func writeElement(sb *strings.Builder, f domain.Field) {
	sb.WriteString("<" + f.Name + ">")
	if f.Fragment {
		sb.WriteString(f.Value)
	} else {
		_, _ = textEscaper.WriteString(sb, f.Value)
	}
	sb.WriteString("</" + f.Name + ">")
}

// checkText rejects values that cannot be carried in the document unchanged.
func checkText(fields ...domain.Field) error {
	for _, f := range fields {
		if !utf8.ValidString(f.Value) {
			return apperror.ErrInvalidField(f.Name, "utf8")
		}
	}
	return nil
}

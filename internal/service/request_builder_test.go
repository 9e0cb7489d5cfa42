package service

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports/mocks"
	"gaps-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCreds = domain.CredentialContext{AccessCode: "ACC01", Username: "corp", Password: "s3cret"}

func sha512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

func newTestBuilder(t *testing.T) *RequestBuilder {
	t.Helper()
	b, err := NewRequestBuilder(testCreds, NewSHA512Signer())
	require.NoError(t, err)
	return b
}

func sampleTransaction(ref string) domain.TransactionDetails {
	return domain.TransactionDetails{
		Amount:           "1500.00",
		PaymentDate:      "2024-03-01",
		Reference:        ref,
		Remarks:          "March rent",
		VendorCode:       "V001",
		VendorName:       "Acme Ltd",
		VendorAcctNumber: "0123456789",
		VendorBankCode:   "058",
	}
}

func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err, "document should be well-formed XML")
	}
}

func TestNewRequestBuilder_RequiresCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds domain.CredentialContext
	}{
		{"no access code", domain.CredentialContext{Username: "u", Password: "p"}},
		{"no username", domain.CredentialContext{AccessCode: "a", Password: "p"}},
		{"no password", domain.CredentialContext{AccessCode: "a", Username: "u"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequestBuilder(tt.creds, NewSHA512Signer())
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestRequestBuilder_AccountValidation(t *testing.T) {
	req, err := newTestBuilder(t).AccountValidation("0123456789")
	require.NoError(t, err)

	assert.Equal(t, domain.OperationGetAccountInGTB, req.Operation)
	assert.Equal(t, []string{"customerid", "username", "password", "accountnumber"}, req.FieldOrder())
	assert.Equal(t, sha512Hex("ACC01corps3cret0123456789"), req.Digest)

	expected := "<GetAccountInGTBRequest>" +
		"<customerid>ACC01</customerid>" +
		"<username>corp</username>" +
		"<password>s3cret</password>" +
		"<accountnumber>0123456789</accountnumber>" +
		"<hash>" + req.Digest + "</hash>" +
		"</GetAccountInGTBRequest>"
	assert.Equal(t, expected, req.Body)
}

func TestRequestBuilder_BalanceRetrieval(t *testing.T) {
	req, err := newTestBuilder(t).BalanceRetrieval("0123456789")
	require.NoError(t, err)

	assert.Equal(t, domain.OperationAccountBalanceRetrieval, req.Operation)
	assert.Equal(t, []string{"customerid", "username", "password", "accountnumber"}, req.FieldOrder())
	assert.True(t, strings.HasPrefix(req.Body, "<AccountBalanceRetrievalRequest><customerid>ACC01</customerid>"))
	assert.True(t, strings.HasSuffix(req.Body, "<hash>"+req.Digest+"</hash></AccountBalanceRetrievalRequest>"))
}

func TestRequestBuilder_AccountRequests_RequireAccountNumber(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.AccountValidation("")
	assert.True(t, apperror.IsValidation(err))

	_, err = b.BalanceRetrieval("")
	assert.True(t, apperror.IsValidation(err))
}

func TestRequestBuilder_TransactionReQuery(t *testing.T) {
	req, err := newTestBuilder(t).TransactionReQuery("TRX123")
	require.NoError(t, err)

	assert.Equal(t, []string{"reference", "accesscode", "username", "password"}, req.FieldOrder())
	assert.Equal(t, sha512Hex("TRX123ACC01corps3cret"), req.Digest)
	assert.Equal(t, "<TransactionReQueryRequest>"+
		"<reference>TRX123</reference>"+
		"<accesscode>ACC01</accesscode>"+
		"<username>corp</username>"+
		"<password>s3cret</password>"+
		"<hash>"+req.Digest+"</hash>"+
		"</TransactionReQueryRequest>", req.Body)
}

func TestRequestBuilder_TransactionReQuery_EmptyReference(t *testing.T) {
	_, err := newTestBuilder(t).TransactionReQuery("")

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VAL_001", appErr.Code)
}

func TestRequestBuilder_SingleTransfer_WithoutCustomerAccount(t *testing.T) {
	req, err := newTestBuilder(t).SingleTransfer(sampleTransaction("REF1"), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"transdetails", "accesscode", "username", "password"}, req.FieldOrder())
	assert.NotContains(t, req.Body, "customeracctnumber")

	details, ok := req.Value("transdetails")
	require.True(t, ok)
	assert.Equal(t, "<transactions><transaction>"+
		"<amount>1500.00</amount>"+
		"<paymentdate>2024-03-01</paymentdate>"+
		"<reference>REF1</reference>"+
		"<remarks>March rent</remarks>"+
		"<vendorcode>V001</vendorcode>"+
		"<vendorname>Acme Ltd</vendorname>"+
		"<vendoracctnumber>0123456789</vendoracctnumber>"+
		"<vendorbankcode>058</vendorbankcode>"+
		"</transaction></transactions>", details)

	assert.Equal(t, sha512Hex(details+"ACC01corps3cret"), req.Digest)
	assert.Contains(t, req.Body, "<transdetails>"+details+"</transdetails>")
	assertWellFormed(t, req.Body)
}

func TestRequestBuilder_SingleTransfer_WithCustomerAccount(t *testing.T) {
	req, err := newTestBuilder(t).SingleTransfer(sampleTransaction("REF1"), "9876543210")
	require.NoError(t, err)

	assert.Equal(t, []string{"transdetails", "accesscode", "username", "password", "customeracctnumber"}, req.FieldOrder())

	details, _ := req.Value("transdetails")
	assert.Equal(t, sha512Hex(details+"ACC01corps3cret9876543210"), req.Digest)
	assert.Contains(t, req.Body, "<password>s3cret</password><customeracctnumber>9876543210</customeracctnumber><hash>")
}

func TestRequestBuilder_SingleTransfer_ShortAccountFailsBeforeSigning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Sign expectation: any call fails the test.
	signer := mocks.NewMockSigner(ctrl)
	b, err := NewRequestBuilder(testCreds, signer)
	require.NoError(t, err)

	tx := sampleTransaction("REF1")
	tx.VendorAcctNumber = "12345"

	req, err := b.SingleTransfer(tx, "")
	assert.Nil(t, req)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VAL_002", appErr.Code)
	assert.Contains(t, appErr.Message, "vendorAcctNumber")
}

func TestRequestBuilder_SingleTransfer_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.TransactionDetails)
		field  string
	}{
		{"amount", func(tx *domain.TransactionDetails) { tx.Amount = "" }, "amount"},
		{"payment date", func(tx *domain.TransactionDetails) { tx.PaymentDate = "" }, "paymentDate"},
		{"reference", func(tx *domain.TransactionDetails) { tx.Reference = "" }, "reference"},
		{"remarks", func(tx *domain.TransactionDetails) { tx.Remarks = "" }, "remarks"},
		{"vendor code", func(tx *domain.TransactionDetails) { tx.VendorCode = "" }, "vendorCode"},
		{"vendor name", func(tx *domain.TransactionDetails) { tx.VendorName = "" }, "vendorName"},
		{"vendor account", func(tx *domain.TransactionDetails) { tx.VendorAcctNumber = "" }, "vendorAcctNumber"},
		{"bank code", func(tx *domain.TransactionDetails) { tx.VendorBankCode = "" }, "vendorBankCode"},
	}

	b := newTestBuilder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := sampleTransaction("REF1")
			tt.mutate(&tx)

			_, err := b.SingleTransfer(tx, "")

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VAL_001", appErr.Code)
			assert.Equal(t, tt.field+" is required", appErr.Message)
		})
	}
}

func TestRequestBuilder_SingleTransfer_NonNumericAmount(t *testing.T) {
	tx := sampleTransaction("REF1")
	tx.Amount = "ten"

	_, err := newTestBuilder(t).SingleTransfer(tx, "")

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VAL_005", appErr.Code)
}

func TestRequestBuilder_BulkTransfer_TwoBlocks(t *testing.T) {
	req, err := newTestBuilder(t).BulkTransfer([]domain.TransactionDetails{
		sampleTransaction("REF1"),
		sampleTransaction("REF2"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OperationBulkTransfers, req.Operation)
	assert.Equal(t, []string{"transdetails", "accesscode", "username", "password"}, req.FieldOrder())

	details, _ := req.Value("transdetails")
	assert.Equal(t, 2, strings.Count(details, "<transaction>"))
	assert.Equal(t, 2, strings.Count(details, "</transaction>"))
	assert.Contains(t, details, "</transaction><transaction>", "blocks are concatenated with no separator")
	assert.Less(t, strings.Index(details, "REF1"), strings.Index(details, "REF2"))

	assert.True(t, strings.HasPrefix(req.Body, "<BulkTransferRequest><transdetails><transactions><transaction><amount>"))
	assert.Equal(t, sha512Hex(details+"ACC01corps3cret"), req.Digest)
	assertWellFormed(t, req.Body)
}

func TestRequestBuilder_BulkTransfer_Empty(t *testing.T) {
	_, err := newTestBuilder(t).BulkTransfer(nil)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VAL_004", appErr.Code)
}

func TestRequestBuilder_BulkTransfer_ReportsFailingLine(t *testing.T) {
	bad := sampleTransaction("REF2")
	bad.VendorAcctNumber = "01234567AB"

	_, err := newTestBuilder(t).BulkTransfer([]domain.TransactionDetails{sampleTransaction("REF1"), bad})

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VAL_002", appErr.Code)
	assert.Contains(t, appErr.Message, "transactions[1].vendorAcctNumber")
}

func TestRequestBuilder_EscapesTextButSignsRawValues(t *testing.T) {
	creds := domain.CredentialContext{AccessCode: "ACC01", Username: "corp", Password: "p<&>"}
	b, err := NewRequestBuilder(creds, NewSHA512Signer())
	require.NoError(t, err)

	req, err := b.TransactionReQuery("REF&1")
	require.NoError(t, err)

	assert.Contains(t, req.Body, "<reference>REF&amp;1</reference>")
	assert.Contains(t, req.Body, "<password>p&lt;&amp;&gt;</password>")
	assert.Equal(t, sha512Hex("REF&1ACC01corpp<&>"), req.Digest)
	assertWellFormed(t, req.Body)
}

func TestRequestBuilder_SingleTransfer_KeepsQuotesAndNewlines(t *testing.T) {
	tx := sampleTransaction("T-1")
	tx.VendorName = "O'Brien"
	tx.Remarks = "John's \"rent\"\nline2\tend"

	req, err := newTestBuilder(t).SingleTransfer(tx, "")
	require.NoError(t, err)

	fragment := "<transactions><transaction>" +
		"<amount>1500.00</amount><paymentdate>2024-03-01</paymentdate><reference>T-1</reference>" +
		"<remarks>John's \"rent\"\nline2\tend</remarks><vendorcode>V001</vendorcode>" +
		"<vendorname>O'Brien</vendorname><vendoracctnumber>0123456789</vendoracctnumber>" +
		"<vendorbankcode>058</vendorbankcode></transaction></transactions>"

	assert.Contains(t, req.Body, "<transdetails>"+fragment+"</transdetails>")
	assert.Equal(t, sha512Hex(fragment+"ACC01corps3cret"), req.Digest)
	assertWellFormed(t, req.Body)
}

func TestRequestBuilder_EscapesMarkupInsideFragment(t *testing.T) {
	tx := sampleTransaction("T-2")
	tx.VendorName = "Ada & Co <Ltd>"

	req, err := newTestBuilder(t).SingleTransfer(tx, "")
	require.NoError(t, err)

	assert.Contains(t, req.Body, "<vendorname>Ada &amp; Co &lt;Ltd&gt;</vendorname>")
	assertWellFormed(t, req.Body)
}

func TestRequestBuilder_RejectsInvalidUTF8(t *testing.T) {
	t.Run("credentials", func(t *testing.T) {
		creds := testCreds
		creds.Username = "bad\xffuser"
		_, err := NewRequestBuilder(creds, NewSHA512Signer())

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VAL_005", appErr.Code)
		assert.Contains(t, appErr.Message, "username")
	})

	t.Run("reference", func(t *testing.T) {
		_, err := newTestBuilder(t).TransactionReQuery("REF\xfe")
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("account number", func(t *testing.T) {
		_, err := newTestBuilder(t).AccountValidation("01234\xff6789")
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("customer account", func(t *testing.T) {
		_, err := newTestBuilder(t).SingleTransfer(sampleTransaction("T-3"), "\xff")
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("bulk line", func(t *testing.T) {
		bad := sampleTransaction("T-5")
		bad.Remarks = "caf\xe9"
		_, err := newTestBuilder(t).BulkTransfer([]domain.TransactionDetails{sampleTransaction("T-4"), bad})

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VAL_005", appErr.Code)
		assert.Contains(t, appErr.Message, "transactions[1].remarks")
	})
}

func TestRequestBuilder_UsesSignerWithFieldOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	signer := mocks.NewMockSigner(ctrl)
	signer.EXPECT().Sign([]string{"REF9", "ACC01", "corp", "s3cret"}).Return("fixed-digest")

	b, err := NewRequestBuilder(testCreds, signer)
	require.NoError(t, err)

	req, err := b.TransactionReQuery("REF9")
	require.NoError(t, err)
	assert.Equal(t, "fixed-digest", req.Digest)
	assert.True(t, strings.HasSuffix(req.Body, "<hash>fixed-digest</hash></TransactionReQueryRequest>"))
}

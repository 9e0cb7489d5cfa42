package domain

import "strings"

// Operation is a gateway endpoint name. The vocabulary is fixed.
type Operation string

const (
	OperationTransactionReQuery      Operation = "TransactionReQuery"
	OperationBulkTransfers           Operation = "BulkTransfers"
	OperationSingleTransfers         Operation = "SingleTransfers"
	OperationGetAccountInGTB         Operation = "GetAccountInGTB"
	OperationAccountBalanceRetrieval Operation = "AccountBalanceRetrieval"
)

var requestElements = map[Operation]string{
	OperationTransactionReQuery:      "TransactionReQueryRequest",
	OperationBulkTransfers:           "BulkTransferRequest",
	OperationSingleTransfers:         "SingleTransferRequest",
	OperationGetAccountInGTB:         "GetAccountInGTBRequest",
	OperationAccountBalanceRetrieval: "AccountBalanceRetrievalRequest",
}

// RequestElement returns the root element name of the operation's request document.
func (o Operation) RequestElement() string {
	return requestElements[o]
}

// IsValid reports whether o belongs to the gateway vocabulary.
func (o Operation) IsValid() bool {
	_, ok := requestElements[o]
	return ok
}

// Path returns the operation name without leading slashes, ready to append
// to a base address.
func (o Operation) Path() string {
	return strings.TrimLeft(string(o), "/")
}

// ParseOperation normalizes a caller-supplied endpoint name and checks it
// against the vocabulary.
func ParseOperation(name string) (Operation, bool) {
	op := Operation(strings.TrimLeft(strings.TrimSpace(name), "/"))
	return op, op.IsValid()
}

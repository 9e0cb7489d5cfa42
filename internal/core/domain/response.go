package domain

// Response codes with fixed meaning.
const (
	// CodeSuccess is the only code the gateway uses for a completed operation.
	CodeSuccess = "1000"
	// CodeSystemError is synthesized locally when a response cannot be parsed.
	CodeSystemError = "1008"
	// MessageParseFailure accompanies CodeSystemError.
	MessageParseFailure = "failed to parse response"
)

// GatewayResponse is the parsed outcome of one round trip. Code is never empty.
type GatewayResponse struct {
	Code      string  `json:"code"`
	Message   string  `json:"message"`
	Reference *string `json:"reference,omitempty"` // nil = no reference assigned
}

// Succeeded reports whether the gateway accepted the operation.
func (r GatewayResponse) Succeeded() bool {
	return r.Code == CodeSuccess
}

// HasReference reports whether the gateway assigned a reference.
func (r GatewayResponse) HasReference() bool {
	return r.Reference != nil
}

// Outcome is the caller-side reading of a response code.
type Outcome string

const (
	OutcomeSucceeded Outcome = "SUCCESS"
	OutcomePending   Outcome = "PENDING"
	OutcomeFailed    Outcome = "FAILED"
)

// IsTerminal returns true if no further re-query can change the outcome.
func (o Outcome) IsTerminal() bool {
	return o == OutcomeSucceeded || o == OutcomeFailed
}

package domain

// ProxyEnvelope is the message an application sends to the proxy front.
// Payload is relayed byte-for-byte; the proxy never parses it.
type ProxyEnvelope struct {
	Endpoint   string
	Payload    string
	UseSandbox bool
}

// RawReply is the gateway's unmodified answer to one relayed call.
type RawReply struct {
	StatusCode  int
	ContentType string
	Body        string
}

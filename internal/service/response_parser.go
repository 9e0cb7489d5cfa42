package service

import (
	"html"
	"regexp"
	"strings"

	"gaps-gateway/internal/core/domain"
)

var (
	codePattern      = regexp.MustCompile(`<Code>\s*(\d+)\s*</Code>`)
	messagePattern   = regexp.MustCompile(`(?s)<Message>(.*?)</Message>`)
	referencePattern = regexp.MustCompile(`(?s)<Reference>(.*?)</Reference>`)
)

// ResponseParser pulls Code, Message and Reference out of gateway text with
// independent scalar lookups. No document tree is built, so truncated or
// non-conforming replies still yield whatever fields are present.
type ResponseParser struct{}

// NewResponseParser creates a ResponseParser.
func NewResponseParser() *ResponseParser {
	return &ResponseParser{}
}

// Parse never fails. A missing code becomes domain.CodeSystemError, a missing
// message becomes domain.MessageParseFailure, a missing reference stays nil.
func (p *ResponseParser) Parse(raw string) domain.GatewayResponse {
	text := raw
	// The service wraps its result in a string element, so the interesting
	// markup often arrives entity-escaped.
	if !codePattern.MatchString(text) && strings.Contains(text, "&lt;") {
		text = html.UnescapeString(text)
	}

	resp := domain.GatewayResponse{
		Code:    domain.CodeSystemError,
		Message: domain.MessageParseFailure,
	}

	if m := codePattern.FindStringSubmatch(text); m != nil {
		resp.Code = m[1]
	}
	if m := messagePattern.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		resp.Message = m[1]
	}
	if m := referencePattern.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		ref := m[1]
		resp.Reference = &ref
	}

	return resp
}

package service

import (
	"testing"

	"gaps-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeClassifier_Default(t *testing.T) {
	c := NewOutcomeClassifier(nil)

	assert.Equal(t, domain.OutcomeSucceeded, c.Classify(domain.GatewayResponse{Code: "1000"}))
	assert.Equal(t, domain.OutcomeFailed, c.Classify(domain.GatewayResponse{Code: "1001"}))
	assert.Equal(t, domain.OutcomeFailed, c.Classify(domain.GatewayResponse{Code: domain.CodeSystemError}))
	assert.Equal(t, domain.OutcomeFailed, c.Classify(domain.GatewayResponse{Code: "9999"}))
}

func TestOutcomeClassifier_ConfiguredPending(t *testing.T) {
	c := NewOutcomeClassifier([]string{"1100", "1000", ""})

	assert.Equal(t, domain.OutcomePending, c.Classify(domain.GatewayResponse{Code: "1100"}))
	assert.False(t, c.Classify(domain.GatewayResponse{Code: "1100"}).IsTerminal())
	assert.Equal(t, domain.OutcomeSucceeded, c.Classify(domain.GatewayResponse{Code: "1000"}), "success cannot be demoted")
	assert.Equal(t, domain.OutcomeFailed, c.Classify(domain.GatewayResponse{Code: ""}))
}

package service

import "gaps-gateway/internal/core/domain"

// OutcomeClassifier reads a response code the way callers need it. Only
// domain.CodeSuccess means success; codes listed as pending are reported as
// such; everything else, including unknown codes, is a failure.
type OutcomeClassifier struct {
	pending map[string]struct{}
}

// NewOutcomeClassifier creates a classifier. pendingCodes comes from
// configuration and is empty unless the deployment knows better.
func NewOutcomeClassifier(pendingCodes []string) *OutcomeClassifier {
	pending := make(map[string]struct{}, len(pendingCodes))
	for _, code := range pendingCodes {
		if code == domain.CodeSuccess || code == "" {
			continue
		}
		pending[code] = struct{}{}
	}
	return &OutcomeClassifier{pending: pending}
}

func (c *OutcomeClassifier) Classify(resp domain.GatewayResponse) domain.Outcome {
	if resp.Succeeded() {
		return domain.OutcomeSucceeded
	}
	if _, ok := c.pending[resp.Code]; ok {
		return domain.OutcomePending
	}
	return domain.OutcomeFailed
}

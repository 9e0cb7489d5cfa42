package dto

import (
	"errors"
	"testing"

	"gaps-gateway/pkg/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyRequest_ToEnvelope_DefaultsToSandbox(t *testing.T) {
	env := ProxyRequest{Endpoint: "SingleTransfers", Data: "<x/>"}.ToEnvelope()

	assert.True(t, env.UseSandbox)
	assert.Equal(t, "SingleTransfers", env.Endpoint)
	assert.Equal(t, "<x/>", env.Payload)
}

func TestProxyRequest_ToEnvelope_Production(t *testing.T) {
	live := false
	env := ProxyRequest{Endpoint: "BulkTransfers", Data: "<x/>", IsTest: &live}.ToEnvelope()

	assert.False(t, env.UseSandbox)
}

func TestProxyRequest_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  ProxyRequest
		code string
	}{
		{"valid", ProxyRequest{Endpoint: "TransactionReQuery", Data: "<x/>"}, ""},
		{"leading slash is accepted", ProxyRequest{Endpoint: "/GetAccountInGTB", Data: "<x/>"}, ""},
		{"missing endpoint", ProxyRequest{Data: "<x/>"}, "VAL_001"},
		{"missing data", ProxyRequest{Endpoint: "SingleTransfers"}, "VAL_001"},
		{"unknown endpoint", ProxyRequest{Endpoint: "Withdraw", Data: "<x/>"}, "VAL_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, BindingError(err).Code)
		})
	}
}

func TestBindingError_NamesField(t *testing.T) {
	err := binding.Validator.ValidateStruct(&ProxyRequest{Endpoint: "SingleTransfers"})
	require.Error(t, err)

	appErr := BindingError(err)
	assert.Contains(t, appErr.Message, "data")
}

func TestBindingError_MalformedJSON(t *testing.T) {
	appErr := BindingError(errors.New("invalid character '}' looking for beginning of value"))

	assert.Equal(t, "PRX_001", appErr.Code)
	assert.False(t, apperror.IsValidation(appErr))
}

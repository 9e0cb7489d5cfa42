package service

import (
	"context"
	"net/http"
	"testing"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/internal/core/ports/mocks"
	"gaps-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRelayService_Relay(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctrl)

	payload := "<SingleTransferRequest><hash>abc</hash></SingleTransferRequest>"
	want := &domain.RawReply{StatusCode: http.StatusOK, ContentType: "text/xml", Body: "<Code>1000</Code>"}
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), domain.OperationSingleTransfers, payload, false).
		Return(want, nil)

	svc := NewRelayService(dispatcher, newTestLogger())
	reply, err := svc.Relay(context.Background(), domain.ProxyEnvelope{
		Endpoint: "/SingleTransfers",
		Payload:  payload,
	})

	require.NoError(t, err)
	assert.Same(t, want, reply)
}

func TestRelayService_Relay_RejectsEnvelope(t *testing.T) {
	tests := []struct {
		name string
		env  domain.ProxyEnvelope
		code string
	}{
		{"missing endpoint", domain.ProxyEnvelope{Payload: "<x/>"}, "VAL_001"},
		{"unknown endpoint", domain.ProxyEnvelope{Endpoint: "DeleteEverything", Payload: "<x/>"}, "VAL_003"},
		{"missing payload", domain.ProxyEnvelope{Endpoint: "BulkTransfers", Payload: "  "}, "VAL_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dispatcher := mocks.NewMockDispatcher(ctrl) // must not be called

			_, err := NewRelayService(dispatcher, newTestLogger()).Relay(context.Background(), tt.env)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestRelayService_Relay_PassesTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	upstream := &apperror.TransportError{Operation: "GetAccountInGTB", StatusCode: 503, Body: "busy"}
	dispatcher.EXPECT().Dispatch(gomock.Any(), domain.OperationGetAccountInGTB, "<x/>", true).Return(nil, upstream)

	_, err := NewRelayService(dispatcher, newTestLogger()).Relay(context.Background(), domain.ProxyEnvelope{
		Endpoint:   "GetAccountInGTB",
		Payload:    "<x/>",
		UseSandbox: true,
	})

	assert.ErrorIs(t, err, upstream)
}

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gearxp/internal/config"
	"github.com/GlebRadaev/gearxp/pkg/clients"
)

func NewMock(t *testing.T, apiKey string) (*Service, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{MailAPIURL: "https://mail.test", MailAPIKey: apiKey, MailFrom: "rewards@gearxp.gg"}
	return New(cfg, client), client
}

func TestService_LevelUp(t *testing.T) {
	service, client := NewMock(t, "key-1")

	client.EXPECT().PostJSON(gomock.Any(), "https://mail.test/emails", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers http.Header, body []byte) (int, []byte, error) {
			assert.Equal(t, "Bearer key-1", headers.Get("Authorization"))
			var msg message
			require.NoError(t, json.Unmarshal(body, &msg))
			assert.Equal(t, []string{"gamer@example.com"}, msg.To)
			assert.Equal(t, "rewards@gearxp.gg", msg.From)
			assert.Contains(t, msg.Subject, "level 7")
			return http.StatusOK, nil, nil
		})

	service.LevelUp("gamer@example.com", 7)
	service.Close()
}

func TestService_Disabled(t *testing.T) {
	service, _ := NewMock(t, "")

	assert.False(t, service.Enabled())
	service.LevelUp("gamer@example.com", 2)
	service.Close()
}

func TestService_send(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		err       error
		expectErr bool
	}{
		{name: "Accepted", status: http.StatusAccepted},
		{name: "Rejected", status: http.StatusUnprocessableEntity, expectErr: true},
		{name: "Transport error", err: errors.New("dial tcp: refused"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := NewMock(t, "key-1")
			defer service.Close()
			client.EXPECT().PostJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.status, nil, tt.err)

			err := service.send(context.Background(), message{Subject: "hi"})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

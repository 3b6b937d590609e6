package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_PostJSON(t *testing.T) {
	var gotBody string
	var gotAuth, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Authorization", "Bearer key")

	code, body, err := client.PostJSON(context.Background(), srv.URL+"/emails", headers, []byte(`{"to":"a@b.c"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, code)
	assert.JSONEq(t, `{"id":"msg-1"}`, string(body))
	assert.Equal(t, `{"to":"a@b.c"}`, gotBody)
	assert.Equal(t, "Bearer key", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Empty(t, headers.Get("Content-Type"))
}

func TestHTTPClient_PostJSON_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, _, err := NewHTTPClient().PostJSON(context.Background(), url, nil, nil)
	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	client := NewHTTPClient()
	client.SetClient(mock)

	mock.EXPECT().PostJSON(gomock.Any(), "http://mail/emails", gomock.Nil(), []byte("{}")).Return(http.StatusOK, nil, nil)
	code, _, err := client.PostJSON(context.Background(), "http://mail/emails", nil, []byte("{}"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
}

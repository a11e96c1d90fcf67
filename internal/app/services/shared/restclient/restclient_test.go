package restclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHeaderProvider struct {
	token string
}

func (p *staticHeaderProvider) ApplyHeaders(ctx context.Context, header http.Header) error {
	header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+p.token)
	return nil
}

func TestRestClientDo(t *testing.T) {
	t.Run("Non-2xx Response Resolves Normally", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"resourceType":"OperationOutcome"}`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL)
		resp, err := client.Get(context.Background(), "/Patient/missing")
		require.NoError(t, err)
		assert.False(t, resp.OK())
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "OperationOutcome")
	})

	t.Run("Endpoint Is Anchored Under The Base Path", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL + "/fhir")
		_, err := client.Get(context.Background(), "Patient")
		require.NoError(t, err)
		assert.Equal(t, "/fhir/Patient", gotPath)

		client = NewRestClient(server.URL + "/fhir/")
		_, err = client.Get(context.Background(), "/Patient")
		require.NoError(t, err)
		assert.Equal(t, "/fhir/Patient", gotPath)
	})

	t.Run("Deadline Exhaustion Is A Distinct Timeout Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer server.Close()

		client := NewRestClient(server.URL, WithTimeout(20*time.Millisecond))
		_, err := client.Get(context.Background(), "/Patient")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
	})

	t.Run("Header Provider Decorates The Request", func(t *testing.T) {
		var gotAuthorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuthorization = r.Header.Get(constvars.HeaderAuthorization)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewRestClient(server.URL, WithHeaderProvider(&staticHeaderProvider{token: "abc123"}))
		resp, err := client.Post(context.Background(), "/Patient", []byte(`{}`), constvars.MIMEApplicationJSON)
		require.NoError(t, err)
		assert.True(t, resp.OK())
		assert.Equal(t, "Bearer abc123", gotAuthorization)
	})

	t.Run("Connection Refused Is Not A Timeout", func(t *testing.T) {
		client := NewRestClient("http://127.0.0.1:1", WithTimeout(time.Second))
		_, err := client.Get(context.Background(), "/Patient")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

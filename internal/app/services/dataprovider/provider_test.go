package dataprovider

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-care-service/internal/app/config"
	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/app/services/core/appointments"
	"agenda-care-service/internal/app/services/shared/ratelimiter"
	"agenda-care-service/internal/app/services/shared/restclient"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopSlotClient struct{}

func (noopSlotClient) FindSlotByID(ctx context.Context, slotID string) (*fhir_dto.Slot, error) {
	return &fhir_dto.Slot{ID: slotID}, nil
}

func newProvider(t *testing.T, handler http.Handler) (*FhirDataProvider, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	cfg := &config.InternalConfig{}
	cfg.FHIR.MaxRequestsPerSecond = 1000
	cfg.FHIR.MaxBurstRequests = 1000
	provider := NewFhirDataProvider(
		restclient.NewRestClient(server.URL),
		ratelimiter.NewOutboundLimiter(cfg),
		zap.NewNop(),
		DefaultTransformers(appointments.NewAppointmentController(noopSlotClient{})),
	)
	return provider, server.Close
}

func TestGetList(t *testing.T) {
	ctx := context.Background()

	t.Run("Unwraps Bundle And Applies Transformer", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Patient", r.URL.Path)
			assert.Equal(t, "Silva", r.URL.Query().Get("name"))
			io.WriteString(w, `{
				"resourceType": "Bundle",
				"total": 2,
				"entry": [
					{"resource": {"resourceType": "Patient", "id": "pt-1", "name": [{"family": "Silva"}]}},
					{"resource": {"resourceType": "Patient", "id": "pt-2", "name": [{"family": "Silva", "given": ["Rui"]}]}}
				]
			}`)
		}))
		defer close()

		result, total, err := provider.GetList(ctx, constvars.ResourcePatient, listFilters("name", "Silva"))
		require.NoError(t, err)
		assert.Equal(t, 2, total)

		shows, ok := result.([]any)
		require.True(t, ok)
		require.Len(t, shows, 2)
		first, ok := shows[0].(responses.PatientShow)
		require.True(t, ok)
		assert.Equal(t, "Silva", first.ProcessedName)
	})

	t.Run("Unregistered Type Passes Through Raw", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"resourceType":"Bundle","entry":[{"resource":{"resourceType":"Coverage","id":"cov-1"}}]}`)
		}))
		defer close()

		result, total, err := provider.GetList(ctx, "Coverage", listFilters("", ""))
		require.NoError(t, err)
		assert.Equal(t, 1, total)

		raws, ok := result.([]json.RawMessage)
		require.True(t, ok)
		assert.JSONEq(t, `{"resourceType":"Coverage","id":"cov-1"}`, string(raws[0]))
	})

	t.Run("Empty Bundle Yields Empty List", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"resourceType":"Bundle","total":0}`)
		}))
		defer close()

		result, total, err := provider.GetList(ctx, constvars.ResourcePatient, listFilters("", ""))
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, result)
	})
}

func TestGetOneAndMany(t *testing.T) {
	ctx := context.Background()

	t.Run("GetOne Applies Show Transform", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Patient/pt-1", r.URL.Path)
			io.WriteString(w, `{"resourceType":"Patient","id":"pt-1","name":[{"family":"Silva"}]}`)
		}))
		defer close()

		result, err := provider.GetOne(ctx, constvars.ResourcePatient, "pt-1")
		require.NoError(t, err)
		show, ok := result.(responses.PatientShow)
		require.True(t, ok)
		assert.Equal(t, "Silva", show.ProcessedName)
	})

	t.Run("GetMany Queries By Id List", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "pt-1,pt-2", r.URL.Query().Get(constvars.QueryParamID))
			io.WriteString(w, `{"resourceType":"Bundle","entry":[{"resource":{"resourceType":"Patient","id":"pt-1"}},{"resource":{"resourceType":"Patient","id":"pt-2"}}]}`)
		}))
		defer close()

		result, err := provider.GetMany(ctx, constvars.ResourcePatient, []string{"pt-1", "pt-2"})
		require.NoError(t, err)
		shows, ok := result.([]any)
		require.True(t, ok)
		assert.Len(t, shows, 2)
	})
}

func TestCreateAndUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Re-Asserts Resource Type", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Patient", payload["resourceType"])
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"resourceType":"Patient","id":"pt-1","name":[{"family":"Silva"}]}`)
		}))
		defer close()

		result, err := provider.Create(ctx, constvars.ResourcePatient, map[string]any{
			"resourceType": "Garbage",
			"name":         []any{map[string]any{"family": "Silva"}},
		})
		require.NoError(t, err)
		show, ok := result.(responses.PatientShow)
		require.True(t, ok)
		assert.Equal(t, "pt-1", show.ID)
	})

	t.Run("Update Merges Previous Data Under New Fields", func(t *testing.T) {
		var putBody map[string]any
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				io.WriteString(w, `{"resourceType":"Patient","id":"pt-1","gender":"female","birthDate":"1990-04-12"}`)
			case http.MethodPut:
				require.NoError(t, json.NewDecoder(r.Body).Decode(&putBody))
				io.WriteString(w, `{"resourceType":"Patient","id":"pt-1","gender":"female","birthDate":"1991-01-01"}`)
			}
		}))
		defer close()

		_, err := provider.Update(ctx, constvars.ResourcePatient, "pt-1", map[string]any{"birthDate": "1991-01-01"})
		require.NoError(t, err)
		// untouched field survives, edited field wins, identity re-asserted
		assert.Equal(t, "female", putBody["gender"])
		assert.Equal(t, "1991-01-01", putBody["birthDate"])
		assert.Equal(t, "Patient", putBody["resourceType"])
		assert.Equal(t, "pt-1", putBody["id"])
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Bad Request Maps To Still-Referenced Error", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer close()

		err := provider.Delete(ctx, constvars.ResourceOrganization, "org-1")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.ErrClientResourceStillReferenced, customErr.ClientMessage)
	})

	t.Run("DeleteMany Stops On First Failure And Reports Progress", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/Organization/org-2" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer close()

		deleted, err := provider.DeleteMany(ctx, constvars.ResourceOrganization, []string{"org-1", "org-2", "org-3"})
		require.Error(t, err)
		assert.Equal(t, []string{"org-1"}, deleted)
	})

	t.Run("DeleteMany Succeeds Over All Ids", func(t *testing.T) {
		provider, close := newProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer close()

		deleted, err := provider.DeleteMany(ctx, constvars.ResourceOrganization, []string{"org-1", "org-2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"org-1", "org-2"}, deleted)
	})
}

func listFilters(key, value string) contracts.ListParams {
	if key == "" {
		return contracts.ListParams{}
	}
	return contracts.ListParams{Filters: map[string]string{key: value}}
}

package reconciler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/field-service/internal/model"
)

func testPayload() *model.ReconciliationPayload {
	return &model.ReconciliationPayload{
		WorkOrderID:        "WO-000042",
		CompletedAt:        time.Now().UTC().Add(-time.Minute),
		AssigneeIdentifier: "tech-7",
		Interventions: []model.ReconciliationIntervention{
			{LocalID: 1, Type: "battery_swap", Payload: json.RawMessage(`{"cells":4}`)},
		},
		PartUsages: []model.ReconciliationPartUsage{
			{LocalID: 10, InterventionLocalID: 1, Name: "cell pack", Quantity: 4},
		},
	}
}

func TestClientDeliver(t *testing.T) {
	t.Parallel()

	t.Run("success: posts payload with token header and stamps deliveredAt", func(t *testing.T) {
		t.Parallel()

		var got model.ReconciliationPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "secret-token", r.Header.Get("X-Webhook-Token"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "secret-token", 2*time.Second)

		payload := testPayload()
		err := c.Deliver(context.Background(), payload)
		require.NoError(t, err)

		assert.Equal(t, "WO-000042", got.WorkOrderID)
		assert.Equal(t, "tech-7", got.AssigneeIdentifier)
		assert.Len(t, got.Interventions, 1)
		assert.Len(t, got.PartUsages, 1)
		assert.False(t, got.DeliveredAt.IsZero())
	})

	t.Run("non-2xx response maps to ErrDeliveryFailed with cause", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "workflow unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "secret-token", 2*time.Second)

		err := c.Deliver(context.Background(), testPayload())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDeliveryFailed)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "workflow unavailable")
	})

	t.Run("unreachable endpoint maps to ErrDeliveryFailed", func(t *testing.T) {
		t.Parallel()

		// Reserved TEST-NET-1 address, nothing listens there.
		c := NewClient("http://192.0.2.1:9/", "secret-token", 200*time.Millisecond)

		err := c.Deliver(context.Background(), testPayload())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDeliveryFailed)
	})

	t.Run("timeout maps to ErrDeliveryFailed", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "secret-token", 100*time.Millisecond)

		err := c.Deliver(context.Background(), testPayload())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDeliveryFailed)
	})
}

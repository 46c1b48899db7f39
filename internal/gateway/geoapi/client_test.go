//go:build unit

package geoapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barberbook/internal/gateway"
	"barberbook/internal/gateway/geoapi"
	"barberbook/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *geoapi.Client {
	return geoapi.NewClient(config.GeoConfig{
		BaseURL: serverURL,
		Where:   "BUSINESS_TYPE='Barber Shop'",
		Timeout: 2 * time.Second,
	})
}

func TestClient_BarberShops(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the provider's feature collection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "BUSINESS_TYPE='Barber Shop'", q.Get("where"))
			assert.Equal(t, "json", q.Get("f"))
			assert.Equal(t, "4326", q.Get("outSR"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"features": []map[string]any{
					{
						"attributes": map[string]any{
							"OBJECTID":    1,
							"NAME":        "Federal Fades",
							"FULLADDRESS": "123 K St NW",
							"PHONE":       "(202) 555-0101",
							"WEBSITE":     "https://federalfades.example",
						},
						"geometry": map[string]any{"x": -77.0365, "y": 38.8977},
					},
				},
			})
		}))
		defer server.Close()

		shops, err := newTestClient(server.URL).BarberShops(ctx)
		require.NoError(t, err)
		require.Len(t, shops, 1)
		assert.Equal(t, int64(1), shops[0].ID)
		assert.Equal(t, "Federal Fades", shops[0].Name)
		assert.Equal(t, 38.8977, shops[0].Location.Lat)
		assert.Equal(t, -77.0365, shops[0].Location.Lng)
	})

	t.Run("empty collection is an empty slice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"features": []any{}})
		}))
		defer server.Close()

		shops, err := newTestClient(server.URL).BarberShops(ctx)
		require.NoError(t, err)
		assert.Empty(t, shops)
	})

	t.Run("provider error status classifies as rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).BarberShops(ctx)
		assert.True(t, gateway.IsKind(err, gateway.KindRejected))
	})

	t.Run("unreachable provider classifies as network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server.URL).BarberShops(ctx)
		assert.True(t, gateway.IsNetwork(err))
	})
}

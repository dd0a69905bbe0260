package geo_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"veggo/internal/adapters/out/geo"
	"veggo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(28.6139, 77.2090)
	require.NoError(t, err)
	return p
}

func destinationPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(28.7041, 77.1025)
	require.NoError(t, err)
	return p
}

func TestRouterClient_Distance_UsesRoutedDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":14200.0}]}`)
	}))
	defer server.Close()

	client := geo.NewRouterClient(server.URL, slog.Default())

	km, meters := client.Distance(context.Background(), storePoint(t), destinationPoint(t))

	assert.InDelta(t, 14.2, km, 0.001)
	assert.InDelta(t, 14200, meters, 0.001)
}

func TestRouterClient_Distance_ServiceDown_FallsBackToHaversine(t *testing.T) {
	origin := storePoint(t)
	destination := destinationPoint(t)

	client := geo.NewRouterClient("http://127.0.0.1:1", slog.Default())

	km, meters := client.Distance(context.Background(), origin, destination)

	wantKm, wantMeters := origin.HaversineTo(destination)
	assert.InDelta(t, wantKm, km, 0.0001)
	assert.InDelta(t, wantMeters, meters, 0.001)
}

func TestRouterClient_Distance_NoRoute_FallsBackToHaversine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"code":"NoRoute","routes":[]}`)
	}))
	defer server.Close()

	origin := storePoint(t)
	destination := destinationPoint(t)

	client := geo.NewRouterClient(server.URL, slog.Default())

	km, _ := client.Distance(context.Background(), origin, destination)

	wantKm, _ := origin.HaversineTo(destination)
	assert.InDelta(t, wantKm, km, 0.0001)
}

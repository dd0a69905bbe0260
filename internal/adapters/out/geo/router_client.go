// Package geo resolves driving distances through an OSRM-compatible routing
// service. The upstream is treated as an optional enhancement: every failure
// mode, including an open circuit breaker, degrades to the great-circle
// distance so checkout never blocks on the routing service.
package geo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/pkg/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const (
	requestTimeout = 5 * time.Second
	breakerTimeout = 30 * time.Second
)

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

// RouterClient implements ports.DistanceProvider against an OSRM-style
// routing endpoint, guarded by a circuit breaker.
type RouterClient struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
	logger  *slog.Logger
}

// NewRouterClient creates a distance provider for the given routing base
// URL, such as "https://router.project-osrm.org".
func NewRouterClient(baseURL string, logger *slog.Logger) *RouterClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "routing",
		Timeout: breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &RouterClient{
		client:  resty.New().SetTimeout(requestTimeout).SetRetryCount(0),
		breaker: breaker,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Distance resolves the driving distance between origin and destination.
// When the routing service is unreachable, answers with an error, or the
// breaker is open, it falls back to the haversine great-circle distance.
func (c *RouterClient) Distance(ctx context.Context, origin, destination kernel.GeoPoint) (float64, float64) {
	result, err := c.breaker.Execute(func() (any, error) {
		return c.route(ctx, origin, destination)
	})
	if err != nil {
		km, meters := origin.HaversineTo(destination)
		metrics.DistanceFallback.Inc()
		c.logger.Warn("routing unavailable, using great-circle distance",
			"error", err, "distance_km", km)
		return km, meters
	}

	meters := result.(float64)
	return meters / 1000, meters
}

func (c *RouterClient) route(ctx context.Context, origin, destination kernel.GeoPoint) (float64, error) {
	// OSRM takes lng,lat pairs.
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f",
		c.baseURL, origin.Lng(), origin.Lat(), destination.Lng(), destination.Lat())

	var body routeResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("overview", "false").
		SetResult(&body).
		Get(url)
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, fmt.Errorf("routing service returned %s", resp.Status())
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return 0, fmt.Errorf("routing service found no route: %q", body.Code)
	}

	return body.Routes[0].Distance, nil
}

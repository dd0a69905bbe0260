package agent_test

import (
	"testing"
	"time"

	"veggo/internal/core/domain/model/agent"
	"veggo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgent(t *testing.T) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(
		kernel.NewUUID(), "Ravi", "ravi@example.com", "+919876543210",
		"$2a$10$hash", agent.VehicleBike, "DL-123", time.Now().UTC(),
	)
	require.NoError(t, err)
	return a
}

func TestParseVehicleKind(t *testing.T) {
	for _, s := range []string{"bike", "car"} {
		kind, err := agent.ParseVehicleKind(s)
		require.NoError(t, err)
		assert.Equal(t, s, kind.String())
	}

	for _, s := range []string{"", "Bike", "truck"} {
		_, err := agent.ParseVehicleKind(s)
		require.Error(t, err, s)
	}
}

func TestNewAgent(t *testing.T) {
	t.Run("starts_unapproved_with_no_location", func(t *testing.T) {
		a := newTestAgent(t)

		assert.NoError(t, a.Validate())
		assert.False(t, a.IsApproved())
		assert.Nil(t, a.Location())
	})

	t.Run("requires_contact_details", func(t *testing.T) {
		_, err := agent.NewAgent(
			kernel.NewUUID(), "", "ravi@example.com", "123", "hash",
			agent.VehicleBike, "", time.Now().UTC(),
		)
		require.Error(t, err)

		_, err = agent.NewAgent(
			kernel.NewUUID(), "Ravi", "", "123", "hash",
			agent.VehicleBike, "", time.Now().UTC(),
		)
		require.Error(t, err)
	})
}

func TestAgent_SetApproval(t *testing.T) {
	a := newTestAgent(t)
	now := time.Now().UTC()

	a.SetApproval(true, now)
	assert.True(t, a.IsApproved())
	assert.Equal(t, now, a.UpdatedAt())

	a.SetApproval(false, now.Add(time.Hour))
	assert.False(t, a.IsApproved())
}

func TestAgent_ReportLocation(t *testing.T) {
	a := newTestAgent(t)
	now := time.Now().UTC()
	point, err := kernel.NewGeoPoint(28.65, 77.20)
	require.NoError(t, err)

	require.NoError(t, a.ReportLocation(point, now))

	require.NotNil(t, a.Location())
	assert.Equal(t, point, a.Location().Point)
	assert.Equal(t, now, a.Location().ReportedAt)

	var zero kernel.GeoPoint
	require.Error(t, a.ReportLocation(zero, now))
}

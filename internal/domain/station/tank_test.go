package station

import (
	"testing"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTank(t *testing.T, capacity, volume int64) *Tank {
	t.Helper()
	tank, err := NewTank("T-01", uuid.New(), decimal.NewFromInt(capacity))
	require.NoError(t, err)
	if volume > 0 {
		require.NoError(t, tank.Fill(decimal.NewFromInt(volume)))
	}
	return tank
}

func TestNewTank(t *testing.T) {
	t.Run("creates empty tank", func(t *testing.T) {
		tank, err := NewTank("T-01", uuid.New(), decimal.NewFromInt(5000))
		require.NoError(t, err)
		assert.True(t, tank.CurrentVolume.IsZero())
		assert.Equal(t, "5000", tank.Headroom().String())
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := NewTank("T-01", uuid.New(), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects empty product", func(t *testing.T) {
		_, err := NewTank("T-01", uuid.Nil, decimal.NewFromInt(5000))
		assert.Error(t, err)
	})
}

func TestTank_Fill(t *testing.T) {
	t.Run("fills within capacity", func(t *testing.T) {
		tank := newTestTank(t, 1200, 0)
		require.NoError(t, tank.Fill(decimal.NewFromInt(300)))
		assert.Equal(t, "300", tank.CurrentVolume.String())
	})

	t.Run("rejects overfill with headroom in message", func(t *testing.T) {
		tank := newTestTank(t, 1200, 300)

		err := tank.Fill(decimal.NewFromInt(1000))
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CAPACITY_EXCEEDED", domainErr.Code)
		assert.Contains(t, domainErr.Message, "T-01")
		assert.Contains(t, domainErr.Message, "900")

		// rejected fill must leave the volume untouched
		assert.Equal(t, "300", tank.CurrentVolume.String())
	})

	t.Run("fill to exact capacity is allowed", func(t *testing.T) {
		tank := newTestTank(t, 1200, 300)
		require.NoError(t, tank.Fill(decimal.NewFromInt(900)))
		assert.Equal(t, "1200", tank.CurrentVolume.String())
	})

	t.Run("rejects non-positive fill", func(t *testing.T) {
		tank := newTestTank(t, 1200, 0)
		assert.Error(t, tank.Fill(decimal.Zero))
	})
}

func TestTank_Dispense(t *testing.T) {
	t.Run("decrements volume", func(t *testing.T) {
		tank := newTestTank(t, 5000, 1000)
		require.NoError(t, tank.Dispense(decimal.NewFromInt(10)))
		assert.Equal(t, "990", tank.CurrentVolume.String())
	})

	t.Run("no floor on dispensing", func(t *testing.T) {
		tank := newTestTank(t, 5000, 5)
		require.NoError(t, tank.Dispense(decimal.NewFromInt(10)))
		assert.Equal(t, "-5", tank.CurrentVolume.String())
		assert.True(t, tank.IsDepleted())
	})

	t.Run("rejects negative liters", func(t *testing.T) {
		tank := newTestTank(t, 5000, 100)
		assert.Error(t, tank.Dispense(decimal.NewFromInt(-1)))
	})
}

func TestTank_NewReading(t *testing.T) {
	tank := newTestTank(t, 5000, 1000)
	require.NoError(t, tank.Dispense(decimal.NewFromInt(10)))

	reading := tank.NewReading()
	assert.Equal(t, tank.ID, reading.TankID)
	assert.Equal(t, "990", reading.Volume.String())
	assert.False(t, reading.RecordedAt.IsZero())
}

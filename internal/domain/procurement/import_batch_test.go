package procurement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fuelLine(amount, unitPrice int64) ImportLineItem {
	tankID := uuid.New()
	return ImportLineItem{
		ProductID: uuid.New(),
		TankID:    &tankID,
		Amount:    decimal.NewFromInt(amount),
		UnitPrice: decimal.NewFromInt(unitPrice),
	}
}

func TestNewImportBatch(t *testing.T) {
	t.Run("totals derived from lines", func(t *testing.T) {
		batch, err := NewImportBatch("Petrolimex", "PO-2024-001", decimal.NewFromInt(500), []ImportLineItem{
			fuelLine(5000, 18),
			fuelLine(2000, 20),
		})
		require.NoError(t, err)
		assert.Equal(t, BatchStatusPending, batch.Status)
		assert.Equal(t, ProfitStatusUncalculated, batch.ProfitStatus)
		assert.True(t, batch.LineTotal().Equal(decimal.NewFromInt(130000)))
		assert.True(t, batch.TotalCost().Equal(decimal.NewFromInt(130500)))
		assert.Len(t, batch.Items, 2)
		for _, item := range batch.Items {
			assert.Equal(t, batch.ID, item.BatchID)
			assert.True(t, item.Total.Equal(item.Amount.Mul(item.UnitPrice)))
		}
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		_, err := NewImportBatch("Petrolimex", "", decimal.Zero, nil)
		assert.Error(t, err)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		line := fuelLine(0, 18)
		_, err := NewImportBatch("Petrolimex", "", decimal.Zero, []ImportLineItem{line})
		assert.Error(t, err)
	})

	t.Run("negative shipping cost rejected", func(t *testing.T) {
		_, err := NewImportBatch("Petrolimex", "", decimal.NewFromInt(-1), []ImportLineItem{fuelLine(100, 18)})
		assert.Error(t, err)
	})

	t.Run("missing supplier rejected", func(t *testing.T) {
		_, err := NewImportBatch("", "", decimal.Zero, []ImportLineItem{fuelLine(100, 18)})
		assert.Error(t, err)
	})
}

func TestMarkReceived(t *testing.T) {
	batch, err := NewImportBatch("Petrolimex", "", decimal.Zero, []ImportLineItem{fuelLine(100, 18)})
	require.NoError(t, err)

	at := time.Now()
	require.NoError(t, batch.MarkReceived(at))
	assert.True(t, batch.IsReceived())
	require.NotNil(t, batch.ReceivedAt)
	assert.True(t, batch.ReceivedAt.Equal(at))
	assert.Equal(t, 2, batch.GetVersion())

	err = batch.MarkReceived(time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already been received")
}

func TestRecordProfit(t *testing.T) {
	batch, err := NewImportBatch("Petrolimex", "", decimal.Zero, []ImportLineItem{fuelLine(100, 18)})
	require.NoError(t, err)

	batch.RecordProfit(decimal.NewFromInt(3000), decimal.NewFromInt(1200))
	assert.Equal(t, ProfitStatusCalculated, batch.ProfitStatus)
	assert.True(t, batch.TotalSales.Equal(decimal.NewFromInt(3000)))
	assert.True(t, batch.NetProfit.Equal(decimal.NewFromInt(1200)))

	// recalculation overwrites
	batch.RecordProfit(decimal.NewFromInt(2500), decimal.NewFromInt(-300))
	assert.True(t, batch.NetProfit.Equal(decimal.NewFromInt(-300)))
}

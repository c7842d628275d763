package procurement

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportLineRequest is one line of a new import batch
type ImportLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	TankID    *uuid.UUID      `json:"tank_id"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateBatchRequest creates a pending import batch
type CreateBatchRequest struct {
	SupplierName string              `json:"supplier_name" binding:"required"`
	Reference    string              `json:"reference"`
	ShippingCost decimal.Decimal     `json:"shipping_cost"`
	Items        []ImportLineRequest `json:"items" binding:"required"`
}

// ImportLineResponse represents a batch line in API responses
type ImportLineResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	TankID    *uuid.UUID      `json:"tank_id"`
	Amount    decimal.Decimal `json:"amount"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// BatchResponse represents an import batch in API responses
type BatchResponse struct {
	ID           uuid.UUID            `json:"id"`
	SupplierName string               `json:"supplier_name"`
	Reference    string               `json:"reference"`
	ShippingCost decimal.Decimal      `json:"shipping_cost"`
	Status       string               `json:"status"`
	ImportDate   time.Time            `json:"import_date"`
	ReceivedAt   *time.Time           `json:"received_at"`
	TotalCost    decimal.Decimal      `json:"total_cost"`
	TotalSales   decimal.Decimal      `json:"total_sales"`
	NetProfit    decimal.Decimal      `json:"net_profit"`
	ProfitStatus string               `json:"profit_status"`
	Items        []ImportLineResponse `json:"items"`
}

// ToBatchResponse converts a domain batch to a response DTO
func ToBatchResponse(batch *procurement.ImportBatch) BatchResponse {
	items := make([]ImportLineResponse, 0, len(batch.Items))
	for _, item := range batch.Items {
		items = append(items, ImportLineResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			TankID:    item.TankID,
			Amount:    item.Amount,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	return BatchResponse{
		ID:           batch.ID,
		SupplierName: batch.SupplierName,
		Reference:    batch.Reference,
		ShippingCost: batch.ShippingCost,
		Status:       string(batch.Status),
		ImportDate:   batch.ImportDate,
		ReceivedAt:   batch.ReceivedAt,
		TotalCost:    batch.TotalCost(),
		TotalSales:   batch.TotalSales,
		NetProfit:    batch.NetProfit,
		ProfitStatus: string(batch.ProfitStatus),
		Items:        items,
	}
}

// ProfitResponse is the result of a profit reconciliation run
type ProfitResponse struct {
	TargetBatchID uuid.UUID       `json:"target_batch_id"`
	WindowStart   time.Time       `json:"window_start"`
	WindowEnd     time.Time       `json:"window_end"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	NetProfit     decimal.Decimal `json:"net_profit"`
}

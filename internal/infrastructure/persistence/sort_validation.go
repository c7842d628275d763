package persistence

import (
	"strings"

	"github.com/fuelstation/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC.
// Returns "DESC" if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist.
// Returns defaultField if the input is empty or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// applySort orders and paginates a query from the filter. The OrderBy field
// is checked against the whitelist so user input never reaches the ORDER BY
// clause unvalidated.
func applySort(query *gorm.DB, filter shared.Filter, allowedFields map[string]bool, defaultField string) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, allowedFields, defaultField)
	query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"kind":           true,
	"unit_price":     true,
	"stock_quantity": true,
	"active":         true,
}

// TankSortFields contains allowed sort fields for tanks
var TankSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"product_id":     true,
	"capacity":       true,
	"current_volume": true,
}

// TankReadingSortFields contains allowed sort fields for tank readings
var TankReadingSortFields = map[string]bool{
	"id":          true,
	"recorded_at": true,
	"volume":      true,
}

// DispenserSortFields contains allowed sort fields for dispensers
var DispenserSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
}

// TransactionSortFields contains allowed sort fields for transactions
var TransactionSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"amount":       true,
	"liters":       true,
	"payment_type": true,
	"status":       true,
}

// ShiftSortFields contains allowed sort fields for shifts
var ShiftSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"cashier_name": true,
	"status":       true,
	"opened_at":    true,
	"closed_at":    true,
}

// PromotionSortFields contains allowed sort fields for promotions
var PromotionSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"kind":       true,
	"start_date": true,
	"end_date":   true,
	"active":     true,
}

// ImportBatchSortFields contains allowed sort fields for import batches
var ImportBatchSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"supplier_name": true,
	"status":        true,
	"import_date":   true,
	"received_at":   true,
}

package reports

import (
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"github.com/shopspring/decimal"
)

type StockMovementEntry struct {
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

type InventorySummaryResponse struct {
	TotalValue    decimal.Decimal                                        `json:"totalValue"`
	LowStockKeys  []string                                               `json:"lowStockKeys"`
	ReorderKeys   []string                                               `json:"reorderKeys"`
	StockMovement map[models.InventoryTransactionType]StockMovementEntry `json:"stockMovement"`
}

// GetStockByLocation groups stock levels per location, keyed by
// product and variant within each location.
func GetStockByLocation(levels map[string]models.StockLevel) map[string]map[string]models.StockLevel {
	grouped := map[string]map[string]models.StockLevel{}
	for _, level := range levels {
		if level.LocationId == "" {
			continue
		}
		byProduct, ok := grouped[level.LocationId]
		if !ok {
			byProduct = map[string]models.StockLevel{}
			grouped[level.LocationId] = byProduct
		}
		byProduct[level.ProductId+"-"+level.VariantId] = level
	}
	return grouped
}

// GetLowStockKeys lists the stock-level keys whose on-hand quantity
// has fallen to the reorder point.
func GetLowStockKeys(levels map[string]models.StockLevel) []string {
	var keys []string
	for key, level := range levels {
		if level.LowStock() {
			keys = append(keys, key)
		}
	}
	return keys
}

// GetReorderKeys narrows low stock to levels where even quantity plus
// reserved stays under the reorder quantity.
func GetReorderKeys(levels map[string]models.StockLevel) []string {
	var keys []string
	for key, level := range levels {
		if level.NeedsReorder() {
			keys = append(keys, key)
		}
	}
	return keys
}

// GetInventoryTotalValue folds the transaction log: purchases and
// transfers add their cost, sales and returns subtract it.
func GetInventoryTotalValue(transactions map[string]models.InventoryTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case models.InventoryTransactionTypePurchase, models.InventoryTransactionTypeTransfer:
			total = total.Add(tx.TotalCost)
		case models.InventoryTransactionTypeSale, models.InventoryTransactionTypeReturn:
			total = total.Sub(tx.TotalCost)
		}
	}
	return total
}

// GetStockMovementReport sums quantity and value per transaction type
// over the whole log. Every type gets an entry even when no
// transaction of that type exists.
func GetStockMovementReport(transactions map[string]models.InventoryTransaction) map[models.InventoryTransactionType]StockMovementEntry {
	movement := map[models.InventoryTransactionType]StockMovementEntry{
		models.InventoryTransactionTypePurchase:   {},
		models.InventoryTransactionTypeSale:       {},
		models.InventoryTransactionTypeReturn:     {},
		models.InventoryTransactionTypeAdjustment: {},
		models.InventoryTransactionTypeTransfer:   {},
	}
	for _, tx := range transactions {
		entry := movement[tx.Type]
		entry.Quantity = entry.Quantity.Add(tx.Quantity)
		entry.Value = entry.Value.Add(tx.TotalCost)
		movement[tx.Type] = entry
	}
	return movement
}

func GetInventorySummaryReport(levels map[string]models.StockLevel, transactions map[string]models.InventoryTransaction) *InventorySummaryResponse {
	return &InventorySummaryResponse{
		TotalValue:    GetInventoryTotalValue(transactions),
		LowStockKeys:  GetLowStockKeys(levels),
		ReorderKeys:   GetReorderKeys(levels),
		StockMovement: GetStockMovementReport(transactions),
	}
}

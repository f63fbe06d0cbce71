package reports

import (
	"testing"

	"bitbucket.org/pawhaus/backoffice_backend/models"
)

func stockLevel(productId string, qty, reserved, reorderPoint, reorderQty int64) models.StockLevel {
	level := models.StockLevel{
		ProductId:        productId,
		LocationId:       "loc-main",
		Quantity:         dec(qty),
		ReservedQuantity: dec(reserved),
		ReorderPoint:     dec(reorderPoint),
		ReorderQuantity:  dec(reorderQty),
	}
	level.Id = level.Key()
	return level
}

func TestLowStockAndReorderKeys(t *testing.T) {
	levels := map[string]models.StockLevel{}
	for _, level := range []models.StockLevel{
		stockLevel("prd-ok", 50, 0, 10, 20),
		stockLevel("prd-low", 8, 0, 10, 5),
		stockLevel("prd-reorder", 4, 2, 10, 20),
	} {
		levels[level.Key()] = level
	}

	low := GetLowStockKeys(levels)
	if len(low) != 2 {
		t.Fatalf("low stock = %v", low)
	}

	reorder := GetReorderKeys(levels)
	// prd-low is low but 8+0 >= its reorder quantity of 5.
	if len(reorder) != 1 || reorder[0] != models.StockLevelKey("prd-reorder", "", "loc-main") {
		t.Fatalf("reorder = %v", reorder)
	}
}

func TestStockByLocationGrouping(t *testing.T) {
	main := stockLevel("prd-1", 10, 0, 0, 0)
	wh := stockLevel("prd-1", 4, 0, 0, 0)
	wh.LocationId = "loc-wh"
	wh.Id = wh.Key()
	levels := map[string]models.StockLevel{
		main.Key(): main,
		wh.Key():   wh,
	}

	grouped := GetStockByLocation(levels)
	if len(grouped) != 2 {
		t.Fatalf("locations = %d", len(grouped))
	}
	if got := grouped["loc-wh"]["prd-1-"]; !got.Quantity.Equal(dec(4)) {
		t.Fatalf("warehouse quantity = %s", got.Quantity)
	}
}

func TestInventoryTotalValueSigns(t *testing.T) {
	transactions := map[string]models.InventoryTransaction{
		"tx-1": {Base: models.Base{Id: "tx-1"}, Type: models.InventoryTransactionTypePurchase, TotalCost: dec(100)},
		"tx-2": {Base: models.Base{Id: "tx-2"}, Type: models.InventoryTransactionTypeSale, TotalCost: dec(30)},
		"tx-3": {Base: models.Base{Id: "tx-3"}, Type: models.InventoryTransactionTypeTransfer, TotalCost: dec(20)},
		"tx-4": {Base: models.Base{Id: "tx-4"}, Type: models.InventoryTransactionTypeReturn, TotalCost: dec(10)},
		"tx-5": {Base: models.Base{Id: "tx-5"}, Type: models.InventoryTransactionTypeAdjustment, TotalCost: dec(999)},
	}

	// 100 + 20 - 30 - 10; adjustments carry no cost effect.
	if got := GetInventoryTotalValue(transactions); !got.Equal(dec(80)) {
		t.Fatalf("total value = %s, want 80", got)
	}
}

func TestStockMovementCoversAllTypes(t *testing.T) {
	transactions := map[string]models.InventoryTransaction{
		"tx-1": {Base: models.Base{Id: "tx-1"}, Type: models.InventoryTransactionTypePurchase, Quantity: dec(5), TotalCost: dec(100)},
		"tx-2": {Base: models.Base{Id: "tx-2"}, Type: models.InventoryTransactionTypePurchase, Quantity: dec(3), TotalCost: dec(60)},
	}

	movement := GetStockMovementReport(transactions)
	if len(movement) != 5 {
		t.Fatalf("movement types = %d, want 5", len(movement))
	}
	purchase := movement[models.InventoryTransactionTypePurchase]
	if !purchase.Quantity.Equal(dec(8)) || !purchase.Value.Equal(dec(160)) {
		t.Fatalf("purchase movement = %+v", purchase)
	}
	if !movement[models.InventoryTransactionTypeSale].Quantity.IsZero() {
		t.Fatal("sale movement not zero")
	}
}

package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StockLevelKey addresses a stock level by product, variant and
// location.
func StockLevelKey(productId, variantId, locationId string) string {
	return fmt.Sprintf("%s:%s:%s", productId, variantId, locationId)
}

type Location struct {
	Base
	Name     string `json:"name" validate:"required"`
	IsActive bool   `json:"isActive"`
	Notes    string `json:"notes"`
}

// StockLevel is the materialized view of the transaction log for one
// (product, variant, location). Available quantity is never stored; it
// is always Quantity minus ReservedQuantity. Invariant: Reserved never
// exceeds Quantity.
type StockLevel struct {
	Base
	ProductId        string          `json:"productId" validate:"required"`
	VariantId        string          `json:"variantId"`
	LocationId       string          `json:"locationId" validate:"required"`
	Quantity         decimal.Decimal `json:"quantity"`
	ReservedQuantity decimal.Decimal `json:"reservedQuantity"`
	ReorderPoint     decimal.Decimal `json:"reorderPoint"`
	ReorderQuantity  decimal.Decimal `json:"reorderQuantity"`
}

func (s *StockLevel) Key() string {
	return StockLevelKey(s.ProductId, s.VariantId, s.LocationId)
}

func (s *StockLevel) Available() decimal.Decimal {
	return s.Quantity.Sub(s.ReservedQuantity)
}

// LowStock reports whether on-hand quantity has fallen to the reorder
// point.
func (s *StockLevel) LowStock() bool {
	return s.Quantity.LessThanOrEqual(s.ReorderPoint)
}

// NeedsReorder is low stock where even quantity plus what is already
// reserved stays under the reorder quantity.
func (s *StockLevel) NeedsReorder() bool {
	return s.LowStock() && s.Quantity.Add(s.ReservedQuantity).LessThan(s.ReorderQuantity)
}

// InventoryTransaction is an immutable record of a stock-affecting
// event; the transaction log is append-only and stock levels are
// derived from it.
type InventoryTransaction struct {
	Base
	TransactionNumber string                   `json:"transactionNumber"`
	Type              InventoryTransactionType `json:"type" validate:"required"`
	ProductId         string                   `json:"productId" validate:"required"`
	VariantId         string                   `json:"variantId"`
	FromLocationId    string                   `json:"fromLocationId"`
	ToLocationId      string                   `json:"toLocationId" validate:"required"`
	Quantity          decimal.Decimal          `json:"quantity"`
	UnitCost          decimal.Decimal          `json:"unitCost"`
	TotalCost         decimal.Decimal          `json:"totalCost"`
	Reference         string                   `json:"reference"`
	Notes             string                   `json:"notes"`
	PerformedBy       string                   `json:"performedBy"`
}

type AdjustmentItem struct {
	ProductId string          `json:"productId" validate:"required"`
	VariantId string          `json:"variantId"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	TotalCost decimal.Decimal `json:"totalCost"`
}

// InventoryAdjustment is a user-initiated correction. Posting it
// expands into one adjustment transaction per item; the record itself
// is retained for audit.
type InventoryAdjustment struct {
	Base
	AdjustmentNumber string           `json:"adjustmentNumber"`
	LocationId       string           `json:"locationId" validate:"required"`
	Reason           AdjustmentReason `json:"reason" validate:"required,oneof=damage loss theft expiry correction other"`
	Description      string           `json:"description"`
	Items            []AdjustmentItem `json:"items" validate:"dive"`
	PostedBy         string           `json:"postedBy"`
}

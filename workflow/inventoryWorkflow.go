package workflow

import (
	"fmt"

	"bitbucket.org/pawhaus/backoffice_backend/config"
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/store"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
	"github.com/shopspring/decimal"
)

// InventoryWorkflow keeps the append-only transaction log and the
// stock levels it materializes into. Transactions are never edited;
// corrections go through adjustments, which expand into new
// transactions.
type InventoryWorkflow struct {
	locations    *store.Store[models.Location]
	levels       *store.Store[models.StockLevel]
	transactions *store.Store[models.InventoryTransaction]
	adjustments  *store.Store[models.InventoryAdjustment]
}

func NewInventoryWorkflow() *InventoryWorkflow {
	return &InventoryWorkflow{
		locations:    store.New[models.Location](),
		levels:       store.New[models.StockLevel](),
		transactions: store.New[models.InventoryTransaction](),
		adjustments:  store.New[models.InventoryAdjustment](),
	}
}

func (w *InventoryWorkflow) Locations() *store.Store[models.Location] {
	return w.locations
}

func (w *InventoryWorkflow) StockLevels() *store.Store[models.StockLevel] {
	return w.levels
}

func (w *InventoryWorkflow) Transactions() *store.Store[models.InventoryTransaction] {
	return w.transactions
}

func (w *InventoryWorkflow) Adjustments() *store.Store[models.InventoryAdjustment] {
	return w.adjustments
}

func (w *InventoryWorkflow) AddLocation(location models.Location) {
	w.locations.Set(location.Id, location)
}

func (w *InventoryWorkflow) UpdateLocation(id string, mutate func(*models.Location)) error {
	current, ok := w.locations.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id
	w.locations.Set(id, updated)
	return nil
}

func (w *InventoryWorkflow) DeleteLocation(id string) error {
	if _, ok := w.locations.Lookup(id); !ok {
		return utils.ErrorRecordNotFound
	}
	w.locations.Delete(id)
	return nil
}

// UpsertStockLevel creates or replaces the stock level at its
// composite key.
func (w *InventoryWorkflow) UpsertStockLevel(level models.StockLevel) {
	if level.Id == "" {
		level.Id = level.Key()
	}
	w.levels.Set(level.Key(), level)
}

func (w *InventoryWorkflow) UpdateStockLevel(productId, variantId, locationId string, mutate func(*models.StockLevel)) error {
	key := models.StockLevelKey(productId, variantId, locationId)
	current, ok := w.levels.Lookup(key)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.ProductId = current.ProductId
	updated.VariantId = current.VariantId
	updated.LocationId = current.LocationId
	w.levels.Set(key, updated)
	return nil
}

// AddTransaction appends tx to the log and applies its effect to the
// addressed stock levels. Purchase and return add quantity, sale
// subtracts, transfer moves quantity between locations. A transfer
// that would overdraw the source's available quantity is rejected with
// ErrorInsufficientStock before anything is written.
func (w *InventoryWorkflow) AddTransaction(tx models.InventoryTransaction) error {
	if tx.Type == models.InventoryTransactionTypeTransfer {
		sourceKey := models.StockLevelKey(tx.ProductId, tx.VariantId, tx.FromLocationId)
		source, ok := w.levels.Lookup(sourceKey)
		if !ok {
			return utils.ErrorRecordNotFound
		}
		if tx.Quantity.GreaterThan(source.Available()) {
			return utils.ErrorInsufficientStock
		}
	}

	w.transactions.Set(tx.Id, tx)

	switch tx.Type {
	case models.InventoryTransactionTypePurchase, models.InventoryTransactionTypeReturn:
		w.applyQuantity(tx.ProductId, tx.VariantId, tx.ToLocationId, tx.Quantity)
	case models.InventoryTransactionTypeSale:
		w.applyQuantity(tx.ProductId, tx.VariantId, tx.ToLocationId, tx.Quantity.Neg())
	case models.InventoryTransactionTypeAdjustment:
		w.applyQuantity(tx.ProductId, tx.VariantId, tx.ToLocationId, tx.Quantity)
	case models.InventoryTransactionTypeTransfer:
		// Source first, then destination; the availability check above
		// already guaranteed the source cannot go negative.
		w.applyQuantity(tx.ProductId, tx.VariantId, tx.FromLocationId, tx.Quantity.Neg())
		w.applyQuantity(tx.ProductId, tx.VariantId, tx.ToLocationId, tx.Quantity)
	}
	return nil
}

// AddAdjustment stores the adjustment for audit and synthesizes one
// adjustment transaction per line item.
func (w *InventoryWorkflow) AddAdjustment(adjustment models.InventoryAdjustment) error {
	w.adjustments.Set(adjustment.Id, adjustment)

	for _, item := range adjustment.Items {
		tx := models.InventoryTransaction{
			Base: models.Base{
				Id:        fmt.Sprintf("adj-%s-%s", adjustment.Id, item.ProductId),
				CreatedAt: adjustment.CreatedAt,
				UpdatedAt: adjustment.UpdatedAt,
			},
			TransactionNumber: fmt.Sprintf("ADJ-%s-%s", adjustment.AdjustmentNumber, item.ProductId),
			Type:              models.InventoryTransactionTypeAdjustment,
			ProductId:         item.ProductId,
			VariantId:         item.VariantId,
			ToLocationId:      adjustment.LocationId,
			Quantity:          item.Quantity,
			UnitCost:          item.UnitCost,
			TotalCost:         item.TotalCost,
			Reference:         adjustment.AdjustmentNumber,
			Notes:             adjustment.Description,
			PerformedBy:       postedByOrSystem(adjustment.PostedBy),
		}
		if err := w.AddTransaction(tx); err != nil {
			return err
		}
	}
	return nil
}

// ReserveStock increments the reservation only when enough quantity is
// available; otherwise nothing changes.
func (w *InventoryWorkflow) ReserveStock(productId, variantId, locationId string, qty decimal.Decimal) error {
	key := models.StockLevelKey(productId, variantId, locationId)
	current, ok := w.levels.Lookup(key)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	if current.Available().LessThan(qty) {
		return utils.ErrorInsufficientAvailableStock
	}
	current.ReservedQuantity = current.ReservedQuantity.Add(qty)
	w.levels.Set(key, current)
	return nil
}

// ReleaseStock gives back reserved quantity; releasing more than is
// reserved fails without change.
func (w *InventoryWorkflow) ReleaseStock(productId, variantId, locationId string, qty decimal.Decimal) error {
	key := models.StockLevelKey(productId, variantId, locationId)
	current, ok := w.levels.Lookup(key)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	if current.ReservedQuantity.LessThan(qty) {
		return utils.ErrorOverRelease
	}
	current.ReservedQuantity = current.ReservedQuantity.Sub(qty)
	w.levels.Set(key, current)
	return nil
}

func (w *InventoryWorkflow) applyQuantity(productId, variantId, locationId string, delta decimal.Decimal) {
	key := models.StockLevelKey(productId, variantId, locationId)
	current, ok := w.levels.Lookup(key)
	if !ok {
		// A transaction against an untracked level starts one at zero.
		config.LogWarn(config.GetLogger(), "workflow", "applyQuantity", key, "stock level created by transaction")
		current = models.StockLevel{
			Base:       models.Base{Id: key},
			ProductId:  productId,
			VariantId:  variantId,
			LocationId: locationId,
		}
	}
	current.Quantity = current.Quantity.Add(delta)
	w.levels.Set(key, current)
}

func postedByOrSystem(postedBy string) string {
	if postedBy == "" {
		return "system"
	}
	return postedBy
}

type InventorySnapshot struct {
	Locations    map[string]models.Location             `json:"locations"`
	StockLevels  map[string]models.StockLevel           `json:"stockLevels"`
	Transactions map[string]models.InventoryTransaction `json:"transactions"`
	Adjustments  map[string]models.InventoryAdjustment  `json:"adjustments"`
}

func (w *InventoryWorkflow) Load(snapshot InventorySnapshot) {
	w.locations.Replace(snapshot.Locations)
	w.levels.Replace(snapshot.StockLevels)
	w.transactions.Replace(snapshot.Transactions)
	w.adjustments.Replace(snapshot.Adjustments)
}

func (w *InventoryWorkflow) Snapshot() InventorySnapshot {
	return InventorySnapshot{
		Locations:    w.locations.Get(),
		StockLevels:  w.levels.Get(),
		Transactions: w.transactions.Get(),
		Adjustments:  w.adjustments.Get(),
	}
}

package workflow

import (
	"time"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/store"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
	"github.com/shopspring/decimal"
)

type PurchaseWorkflow struct {
	orders          *store.Store[models.PurchaseOrder]
	byStatus        *store.Index
	byPaymentStatus *store.Index
	byVendor        *store.Index
}

func NewPurchaseWorkflow() *PurchaseWorkflow {
	return &PurchaseWorkflow{
		orders:          store.New[models.PurchaseOrder](),
		byStatus:        store.NewIndex(),
		byPaymentStatus: store.NewIndex(),
		byVendor:        store.NewIndex(),
	}
}

func (w *PurchaseWorkflow) Store() *store.Store[models.PurchaseOrder] {
	return w.orders
}

func (w *PurchaseWorkflow) ByStatus(status models.OrderStatus) []string {
	return w.byStatus.Bucket(string(status))
}

func (w *PurchaseWorkflow) ByPaymentStatus(status models.PaymentStatus) []string {
	return w.byPaymentStatus.Bucket(string(status))
}

func (w *PurchaseWorkflow) ByVendor(vendorId string) []string {
	return w.byVendor.Bucket(vendorId)
}

func (w *PurchaseWorkflow) AddOrder(order models.PurchaseOrder) {
	w.orders.Set(order.Id, order)
	w.byStatus.Add(string(order.Status), order.Id)
	w.byPaymentStatus.Add(string(order.PaymentStatus), order.Id)
	w.byVendor.Add(order.VendorId, order.Id)
}

func (w *PurchaseWorkflow) UpdateOrder(id string, mutate func(*models.PurchaseOrder)) error {
	current, ok := w.orders.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id

	w.byStatus.Move(string(current.Status), string(updated.Status), id)
	w.byPaymentStatus.Move(string(current.PaymentStatus), string(updated.PaymentStatus), id)
	w.byVendor.Move(current.VendorId, updated.VendorId, id)
	w.orders.Set(id, updated)
	return nil
}

func (w *PurchaseWorkflow) DeleteOrder(id string) error {
	current, ok := w.orders.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	w.orders.Delete(id)
	w.byStatus.Remove(string(current.Status), id)
	w.byPaymentStatus.Remove(string(current.PaymentStatus), id)
	w.byVendor.Remove(current.VendorId, id)
	return nil
}

// UpdateStatus moves the order along the finite progression; skipping
// states or leaving a terminal state (other than returning a fulfilled
// order) is rejected.
func (w *PurchaseWorkflow) UpdateStatus(id string, status models.OrderStatus) error {
	current, ok := w.orders.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	if !validOrderTransition(current.Status, status) {
		return utils.ErrorInvalidStatusTransition
	}
	return w.UpdateOrder(id, func(o *models.PurchaseOrder) {
		o.Status = status
	})
}

func (w *PurchaseWorkflow) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	return w.UpdateOrder(id, func(o *models.PurchaseOrder) {
		o.PaymentStatus = status
	})
}

// ReceivedQuantityDelta identifies how much of one product arrived in
// a delivery.
type ReceivedQuantityDelta struct {
	ProductId string
	Quantity  decimal.Decimal
}

// ReceiveItems records a (possibly partial) delivery. Received
// quantities clamp at the ordered quantity; the order becomes received
// when every line is full, partial when any line has progress.
func (w *PurchaseWorkflow) ReceiveItems(id string, received []ReceivedQuantityDelta, details models.ReceivingDetails) error {
	current, ok := w.orders.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}

	items := append([]models.PurchaseOrderItem{}, current.Items...)
	for i := range items {
		for _, delta := range received {
			if delta.ProductId != items[i].ProductId {
				continue
			}
			next := items[i].ReceivedQuantity.Add(delta.Quantity)
			items[i].ReceivedQuantity = decimal.Min(items[i].Quantity, next)
		}
	}

	allReceived := true
	anyReceived := false
	for _, item := range items {
		if !item.FullyReceived() {
			allReceived = false
		}
		if item.ReceivedQuantity.IsPositive() {
			anyReceived = true
		}
	}

	status := current.Status
	if allReceived {
		status = models.OrderStatusReceived
	} else if anyReceived {
		status = models.OrderStatusPartial
	}

	return w.UpdateOrder(id, func(o *models.PurchaseOrder) {
		o.Items = items
		o.Status = status
		o.ReceivingDetails = &details
		o.UpdatedAt = details.ReceivedAt
	})
}

// PendingReceival values the quantity still on the way for ordered and
// partially received orders.
func (w *PurchaseWorkflow) PendingReceival() decimal.Decimal {
	total := decimal.Zero
	for _, order := range w.orders.Get() {
		if order.Status != models.OrderStatusOrdered && order.Status != models.OrderStatusPartial {
			continue
		}
		for _, item := range order.Items {
			outstanding := item.Quantity.Sub(item.ReceivedQuantity)
			total = total.Add(outstanding.Mul(item.UnitPrice))
		}
	}
	return total
}

func (w *PurchaseWorkflow) Load(items map[string]models.PurchaseOrder) {
	w.orders.Replace(items)
	w.byStatus.Rebuild(func(yield func(key, id string)) {
		for id, o := range items {
			yield(string(o.Status), id)
		}
	})
	w.byPaymentStatus.Rebuild(func(yield func(key, id string)) {
		for id, o := range items {
			yield(string(o.PaymentStatus), id)
		}
	})
	w.byVendor.Rebuild(func(yield func(key, id string)) {
		for id, o := range items {
			yield(o.VendorId, id)
		}
	})
}

// ExpectedBy derives a delivery expectation from the vendor lead time
// when the order itself does not carry one.
func ExpectedBy(order models.PurchaseOrder, vendor models.Vendor) time.Time {
	if order.ExpectedDeliveryDate != nil {
		return *order.ExpectedDeliveryDate
	}
	return order.OrderDate.AddDate(0, 0, vendor.LeadTimeDays)
}

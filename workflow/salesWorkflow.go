package workflow

import (
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/store"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
	"github.com/shopspring/decimal"
)

type SalesWorkflow struct {
	orders          *store.Store[models.SalesOrder]
	byStatus        *store.Index
	byPaymentStatus *store.Index
	byCustomer      *store.Index
}

func NewSalesWorkflow() *SalesWorkflow {
	return &SalesWorkflow{
		orders:          store.New[models.SalesOrder](),
		byStatus:        store.NewIndex(),
		byPaymentStatus: store.NewIndex(),
		byCustomer:      store.NewIndex(),
	}
}

func (w *SalesWorkflow) Store() *store.Store[models.SalesOrder] {
	return w.orders
}

func (w *SalesWorkflow) ByStatus(status models.OrderStatus) []string {
	return w.byStatus.Bucket(string(status))
}

func (w *SalesWorkflow) ByPaymentStatus(status models.PaymentStatus) []string {
	return w.byPaymentStatus.Bucket(string(status))
}

func (w *SalesWorkflow) ByCustomer(customerId string) []string {
	return w.byCustomer.Bucket(customerId)
}

func (w *SalesWorkflow) AddOrder(order models.SalesOrder) {
	w.orders.Set(order.Id, order)
	w.byStatus.Add(string(order.Status), order.Id)
	w.byPaymentStatus.Add(string(order.PaymentStatus), order.Id)
	w.byCustomer.Add(order.CustomerId, order.Id)
}

func (w *SalesWorkflow) UpdateOrder(id string, mutate func(*models.SalesOrder)) error {
	current, ok := w.orders.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id

	w.byStatus.Move(string(current.Status), string(updated.Status), id)
	w.byPaymentStatus.Move(string(current.PaymentStatus), string(updated.PaymentStatus), id)
	w.byCustomer.Move(current.CustomerId, updated.CustomerId, id)
	w.orders.Set(id, updated)
	return nil
}

func (w *SalesWorkflow) DeleteOrder(id string) error {
	current, ok := w.orders.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	w.orders.Delete(id)
	w.byStatus.Remove(string(current.Status), id)
	w.byPaymentStatus.Remove(string(current.PaymentStatus), id)
	w.byCustomer.Remove(current.CustomerId, id)
	return nil
}

func (w *SalesWorkflow) UpdateStatus(id string, status models.OrderStatus) error {
	current, ok := w.orders.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	if !validOrderTransition(current.Status, status) {
		return utils.ErrorInvalidStatusTransition
	}
	return w.UpdateOrder(id, func(o *models.SalesOrder) {
		o.Status = status
	})
}

func (w *SalesWorkflow) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	return w.UpdateOrder(id, func(o *models.SalesOrder) {
		o.PaymentStatus = status
	})
}

// ShipItems mirrors purchase receiving: shipped quantities clamp at
// the ordered quantity, the order becomes delivered when every line is
// fully shipped, partial when any line has progress.
func (w *SalesWorkflow) ShipItems(id string, shipped []ReceivedQuantityDelta, details models.ShippingDetails) error {
	current, ok := w.orders.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}

	items := append([]models.SalesOrderItem{}, current.Items...)
	for i := range items {
		for _, delta := range shipped {
			if delta.ProductId != items[i].ProductId {
				continue
			}
			next := items[i].ShippedQuantity.Add(delta.Quantity)
			items[i].ShippedQuantity = decimal.Min(items[i].Quantity, next)
		}
	}

	allShipped := true
	anyShipped := false
	for _, item := range items {
		if item.ShippedQuantity.LessThan(item.Quantity) {
			allShipped = false
		}
		if item.ShippedQuantity.IsPositive() {
			anyShipped = true
		}
	}

	status := current.Status
	if allShipped {
		status = models.OrderStatusDelivered
	} else if anyShipped {
		status = models.OrderStatusPartial
	}

	return w.UpdateOrder(id, func(o *models.SalesOrder) {
		o.Items = items
		o.Status = status
		o.ShippingDetails = &details
		o.UpdatedAt = details.ShippedAt
	})
}

func (w *SalesWorkflow) Load(items map[string]models.SalesOrder) {
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
	w.byCustomer.Rebuild(func(yield func(key, id string)) {
		for id, o := range items {
			yield(o.CustomerId, id)
		}
	})
}

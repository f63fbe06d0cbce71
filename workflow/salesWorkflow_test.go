package workflow

import (
	"testing"
	"time"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"github.com/shopspring/decimal"
)

func newSalesOrder(id, customerId string, status models.OrderStatus) models.SalesOrder {
	return models.SalesOrder{
		Base:          models.Base{Id: id},
		OrderNumber:   "SO-" + id,
		CustomerId:    customerId,
		Status:        status,
		PaymentStatus: models.PaymentStatusPending,
		OrderDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: []models.SalesOrderItem{
			{ProductId: "prd-kibble", Quantity: dec(6), UnitPrice: dec(25), TaxRate: decimal.NewFromFloat(0.1)},
			{ProductId: "prd-leash", Quantity: dec(2), UnitPrice: dec(15)},
		},
	}
}

func TestSalesOrderTotals(t *testing.T) {
	order := newSalesOrder("so-1", "cus-1", models.OrderStatusDraft)

	if got := order.Subtotal(); !got.Equal(dec(180)) {
		t.Fatalf("subtotal = %s, want 180", got)
	}
	if got := order.TaxTotal(); !got.Equal(dec(15)) {
		t.Fatalf("tax total = %s, want 15", got)
	}
	if got := order.Total(); !got.Equal(dec(195)) {
		t.Fatalf("total = %s, want 195", got)
	}
}

func TestShipItemsPartialThenDelivered(t *testing.T) {
	w := NewSalesWorkflow()
	w.AddOrder(newSalesOrder("so-1", "cus-1", models.OrderStatusOrdered))

	if err := w.ShipItems("so-1", []ReceivedQuantityDelta{
		{ProductId: "prd-kibble", Quantity: dec(6)},
	}, models.ShippingDetails{
		ShippedAt: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
		ShippedBy: "staff-2",
	}); err != nil {
		t.Fatalf("first shipment: %v", err)
	}

	order, _ := w.Store().Lookup("so-1")
	if order.Status != models.OrderStatusPartial {
		t.Fatalf("status after first shipment = %s", order.Status)
	}

	if err := w.ShipItems("so-1", []ReceivedQuantityDelta{
		{ProductId: "prd-leash", Quantity: dec(5)},
	}, models.ShippingDetails{
		ShippedAt:  time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC),
		ShippedBy:  "staff-2",
		TrackingNo: "TRK-001",
	}); err != nil {
		t.Fatalf("second shipment: %v", err)
	}

	order, _ = w.Store().Lookup("so-1")
	if order.Status != models.OrderStatusDelivered {
		t.Fatalf("status after second shipment = %s", order.Status)
	}
	// Shipped clamps at the ordered 2 even though 5 were sent.
	if !order.Items[1].ShippedQuantity.Equal(dec(2)) {
		t.Fatalf("leash shipped = %s, want 2", order.Items[1].ShippedQuantity)
	}
	if order.ShippingDetails == nil || order.ShippingDetails.TrackingNo != "TRK-001" {
		t.Fatal("shipping details not recorded")
	}
}

func TestCustomerIndexFollowsReassignment(t *testing.T) {
	w := NewSalesWorkflow()
	w.AddOrder(newSalesOrder("so-1", "cus-1", models.OrderStatusDraft))
	w.AddOrder(newSalesOrder("so-2", "cus-1", models.OrderStatusDraft))

	if err := w.UpdateOrder("so-2", func(o *models.SalesOrder) {
		o.CustomerId = "cus-2"
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if got := w.ByCustomer("cus-1"); len(got) != 1 || got[0] != "so-1" {
		t.Fatalf("cus-1 bucket = %v", got)
	}
	if got := w.ByCustomer("cus-2"); len(got) != 1 || got[0] != "so-2" {
		t.Fatalf("cus-2 bucket = %v", got)
	}
}

func TestSalesLoadRebuildsIndexes(t *testing.T) {
	w := NewSalesWorkflow()
	w.Load(map[string]models.SalesOrder{
		"so-1": newSalesOrder("so-1", "cus-1", models.OrderStatusOrdered),
		"so-2": newSalesOrder("so-2", "cus-2", models.OrderStatusDraft),
	})

	if got := w.ByStatus(models.OrderStatusOrdered); len(got) != 1 || got[0] != "so-1" {
		t.Fatalf("ordered bucket = %v", got)
	}
	if got := w.ByPaymentStatus(models.PaymentStatusPending); len(got) != 2 {
		t.Fatalf("pending bucket = %v", got)
	}
}

package workflow

import (
	"errors"
	"testing"
	"time"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
)

func newPurchaseOrder(id string, status models.OrderStatus, qty int64) models.PurchaseOrder {
	return models.PurchaseOrder{
		Base:          models.Base{Id: id},
		OrderNumber:   "PO-" + id,
		VendorId:      "ven-1",
		Status:        status,
		PaymentStatus: models.PaymentStatusPending,
		OrderDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Items: []models.PurchaseOrderItem{
			{ProductId: "prd-kibble", Quantity: dec(qty), UnitPrice: dec(20)},
		},
	}
}

// A 100-unit order receives 40, then another 70. The first delivery
// leaves the order partial; the second clamps at the ordered quantity
// and completes it.
func TestReceiveItemsClampsAndTracksStatus(t *testing.T) {
	w := NewPurchaseWorkflow()
	w.AddOrder(newPurchaseOrder("po-1", models.OrderStatusOrdered, 100))

	firstDelivery := models.ReceivingDetails{
		ReceivedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		ReceivedBy: "staff-1",
		LocationId: "loc-wh",
	}
	if err := w.ReceiveItems("po-1", []ReceivedQuantityDelta{
		{ProductId: "prd-kibble", Quantity: dec(40)},
	}, firstDelivery); err != nil {
		t.Fatalf("first delivery: %v", err)
	}

	order, _ := w.Store().Lookup("po-1")
	if order.Status != models.OrderStatusPartial {
		t.Fatalf("status after first delivery = %s", order.Status)
	}
	if !order.Items[0].ReceivedQuantity.Equal(dec(40)) {
		t.Fatalf("received = %s, want 40", order.Items[0].ReceivedQuantity)
	}

	if err := w.ReceiveItems("po-1", []ReceivedQuantityDelta{
		{ProductId: "prd-kibble", Quantity: dec(70)},
	}, models.ReceivingDetails{
		ReceivedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		ReceivedBy: "staff-1",
		LocationId: "loc-wh",
	}); err != nil {
		t.Fatalf("second delivery: %v", err)
	}

	order, _ = w.Store().Lookup("po-1")
	if order.Status != models.OrderStatusReceived {
		t.Fatalf("status after second delivery = %s", order.Status)
	}
	if !order.Items[0].ReceivedQuantity.Equal(dec(100)) {
		t.Fatalf("received = %s, want clamp at 100", order.Items[0].ReceivedQuantity)
	}
	if order.ReceivingDetails == nil || order.ReceivingDetails.ReceivedBy != "staff-1" {
		t.Fatal("receiving details not recorded")
	}
}

func TestUpdateStatusValidatesTransitions(t *testing.T) {
	w := NewPurchaseWorkflow()
	w.AddOrder(newPurchaseOrder("po-1", models.OrderStatusDraft, 10))

	for _, status := range []models.OrderStatus{
		models.OrderStatusSubmitted,
		models.OrderStatusApproved,
		models.OrderStatusOrdered,
	} {
		if err := w.UpdateStatus("po-1", status); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}

	if err := w.UpdateStatus("po-1", models.OrderStatusDraft); !errors.Is(err, utils.ErrorInvalidStatusTransition) {
		t.Fatalf("ordered back to draft: %v", err)
	}
	order, _ := w.Store().Lookup("po-1")
	if order.Status != models.OrderStatusOrdered {
		t.Fatalf("status after rejected transition = %s", order.Status)
	}
}

func TestReturnOnlyAfterReceipt(t *testing.T) {
	w := NewPurchaseWorkflow()
	w.AddOrder(newPurchaseOrder("po-1", models.OrderStatusOrdered, 10))
	if err := w.UpdateStatus("po-1", models.OrderStatusReturned); !errors.Is(err, utils.ErrorInvalidStatusTransition) {
		t.Fatalf("return before receipt: %v", err)
	}

	if err := w.UpdateStatus("po-1", models.OrderStatusReceived); err != nil {
		t.Fatalf("receive: %v", err)
	}
	if err := w.UpdateStatus("po-1", models.OrderStatusReturned); err != nil {
		t.Fatalf("return after receipt: %v", err)
	}
}

func TestStatusIndexFollowsUpdates(t *testing.T) {
	w := NewPurchaseWorkflow()
	w.AddOrder(newPurchaseOrder("po-1", models.OrderStatusDraft, 10))
	w.AddOrder(newPurchaseOrder("po-2", models.OrderStatusDraft, 5))

	if err := w.UpdateStatus("po-1", models.OrderStatusSubmitted); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := w.DeleteOrder("po-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got := w.ByStatus(models.OrderStatusDraft); len(got) != 0 {
		t.Fatalf("draft bucket = %v", got)
	}
	if got := w.ByStatus(models.OrderStatusSubmitted); len(got) != 1 || got[0] != "po-1" {
		t.Fatalf("submitted bucket = %v", got)
	}
	if got := w.ByVendor("ven-1"); len(got) != 1 {
		t.Fatalf("vendor bucket = %v", got)
	}
}

func TestPendingReceivalValuesOutstandingQuantity(t *testing.T) {
	w := NewPurchaseWorkflow()
	w.AddOrder(newPurchaseOrder("po-1", models.OrderStatusOrdered, 10))

	partial := newPurchaseOrder("po-2", models.OrderStatusPartial, 8)
	partial.Items[0].ReceivedQuantity = dec(3)
	w.AddOrder(partial)

	// Draft orders are not yet on the way.
	w.AddOrder(newPurchaseOrder("po-3", models.OrderStatusDraft, 50))

	// 10*20 + (8-3)*20
	if got := w.PendingReceival(); !got.Equal(dec(300)) {
		t.Fatalf("pending receival = %s, want 300", got)
	}
}

func TestExpectedByFallsBackToVendorLeadTime(t *testing.T) {
	vendor := models.Vendor{LeadTimeDays: 7}
	order := newPurchaseOrder("po-1", models.OrderStatusOrdered, 10)

	if got := ExpectedBy(order, vendor); !got.Equal(time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected by = %s", got)
	}

	explicit := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	order.ExpectedDeliveryDate = &explicit
	if got := ExpectedBy(order, vendor); !got.Equal(explicit) {
		t.Fatalf("expected by = %s, want explicit date", got)
	}
}

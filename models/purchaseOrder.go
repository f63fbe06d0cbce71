package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrderItem struct {
	ProductId        string          `json:"productId" validate:"required"`
	VariantId        string          `json:"variantId"`
	Quantity         decimal.Decimal `json:"quantity"`
	ReceivedQuantity decimal.Decimal `json:"receivedQuantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	TaxRate          decimal.Decimal `json:"taxRate"`
	Discount         decimal.Decimal `json:"discount"`
	Notes            string          `json:"notes"`
}

func (i PurchaseOrderItem) LineSubtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice).Sub(i.Discount)
}

func (i PurchaseOrderItem) LineTax() decimal.Decimal {
	return i.LineSubtotal().Mul(i.TaxRate)
}

func (i PurchaseOrderItem) LineTotal() decimal.Decimal {
	return i.LineSubtotal().Add(i.LineTax())
}

func (i PurchaseOrderItem) FullyReceived() bool {
	return i.ReceivedQuantity.GreaterThanOrEqual(i.Quantity)
}

type ReceivingDetails struct {
	ReceivedAt time.Time `json:"receivedAt"`
	ReceivedBy string    `json:"receivedBy"`
	LocationId string    `json:"locationId"`
	Notes      string    `json:"notes"`
}

type PurchaseOrder struct {
	Base
	OrderNumber          string              `json:"orderNumber" validate:"required"`
	VendorId             string              `json:"vendorId" validate:"required"`
	Status               OrderStatus         `json:"status" validate:"required"`
	PaymentStatus        PaymentStatus       `json:"paymentStatus"`
	OrderDate            time.Time           `json:"orderDate"`
	ExpectedDeliveryDate *time.Time          `json:"expectedDeliveryDate"`
	Items                []PurchaseOrderItem `json:"items" validate:"dive"`
	ReceivingDetails     *ReceivingDetails   `json:"receivingDetails"`
	Notes                string              `json:"notes"`
	Tags                 []string            `json:"tags"`
}

func (o *PurchaseOrder) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineSubtotal())
	}
	return total
}

func (o *PurchaseOrder) TaxTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTax())
	}
	return total
}

func (o *PurchaseOrder) Total() decimal.Decimal {
	return o.Subtotal().Add(o.TaxTotal())
}

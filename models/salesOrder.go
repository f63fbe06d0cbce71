package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesOrderItem struct {
	ProductId       string          `json:"productId" validate:"required"`
	VariantId       string          `json:"variantId"`
	Quantity        decimal.Decimal `json:"quantity"`
	ShippedQuantity decimal.Decimal `json:"shippedQuantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	Discount        decimal.Decimal `json:"discount"`
	Notes           string          `json:"notes"`
}

// LineSubtotal is quantity times unit price less the line discount.
func (i SalesOrderItem) LineSubtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice).Sub(i.Discount)
}

func (i SalesOrderItem) LineTax() decimal.Decimal {
	return i.LineSubtotal().Mul(i.TaxRate)
}

func (i SalesOrderItem) LineTotal() decimal.Decimal {
	return i.LineSubtotal().Add(i.LineTax())
}

type ShippingDetails struct {
	ShippedAt  time.Time `json:"shippedAt"`
	ShippedBy  string    `json:"shippedBy"`
	LocationId string    `json:"locationId"`
	TrackingNo string    `json:"trackingNo"`
	Notes      string    `json:"notes"`
}

type PaymentDetails struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	PaidAt    time.Time       `json:"paidAt"`
	Reference string          `json:"reference"`
}

type SalesOrder struct {
	Base
	OrderNumber     string           `json:"orderNumber" validate:"required"`
	CustomerId      string           `json:"customerId" validate:"required"`
	Status          OrderStatus      `json:"status" validate:"required"`
	PaymentStatus   PaymentStatus    `json:"paymentStatus"`
	OrderDate       time.Time        `json:"orderDate"`
	Items           []SalesOrderItem `json:"items" validate:"dive"`
	ShippingDetails *ShippingDetails `json:"shippingDetails"`
	PaymentDetails  *PaymentDetails  `json:"paymentDetails"`
	Notes           string           `json:"notes"`
	Tags            []string         `json:"tags"`
}

// AmountPaid is what has been collected so far, zero when no payment
// is recorded yet.
func (o *SalesOrder) AmountPaid() decimal.Decimal {
	if o.PaymentDetails == nil {
		return decimal.Zero
	}
	return o.PaymentDetails.Amount
}

// Subtotal, TaxTotal and Total are computed from the line items on
// every read; they are never stored.
func (o *SalesOrder) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineSubtotal())
	}
	return total
}

func (o *SalesOrder) TaxTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTax())
	}
	return total
}

func (o *SalesOrder) Total() decimal.Decimal {
	return o.Subtotal().Add(o.TaxTotal())
}

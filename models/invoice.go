package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

type InvoicePayment struct {
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

// Receivable is an open customer invoice. Balance decreases as
// payments are applied; the amount never changes after creation.
type Receivable struct {
	Base
	InvoiceNumber  string           `json:"invoiceNumber" validate:"required"`
	CustomerId     string           `json:"customerId" validate:"required"`
	Date           time.Time        `json:"date"`
	DueDate        time.Time        `json:"dueDate"`
	Amount         decimal.Decimal  `json:"amount"`
	Balance        decimal.Decimal  `json:"balance"`
	Status         InvoiceStatus    `json:"status"`
	Items          []InvoiceItem    `json:"items"`
	Payments       []InvoicePayment `json:"payments"`
	JournalEntryId string           `json:"journalEntryId"`
	Notes          string           `json:"notes"`
	Tags           []string         `json:"tags"`
}

// Payable is the vendor-side mirror of Receivable.
type Payable struct {
	Base
	InvoiceNumber  string           `json:"invoiceNumber" validate:"required"`
	VendorId       string           `json:"vendorId" validate:"required"`
	Date           time.Time        `json:"date"`
	DueDate        time.Time        `json:"dueDate"`
	Amount         decimal.Decimal  `json:"amount"`
	Balance        decimal.Decimal  `json:"balance"`
	Status         InvoiceStatus    `json:"status"`
	Items          []InvoiceItem    `json:"items"`
	Payments       []InvoicePayment `json:"payments"`
	JournalEntryId string           `json:"journalEntryId"`
	Notes          string           `json:"notes"`
	Tags           []string         `json:"tags"`
}

// DaysOverdue is the whole number of days now is past the due date;
// zero or negative means not yet due.
func DaysOverdue(dueDate, now time.Time) int {
	return int(now.Sub(dueDate).Hours() / 24)
}

// BucketFor classifies an overdue age into its aging bucket.
func BucketFor(daysOverdue int) AgingBucket {
	switch {
	case daysOverdue <= 0:
		return AgingBucketCurrent
	case daysOverdue <= 30:
		return AgingBucket1To30
	case daysOverdue <= 60:
		return AgingBucket31To60
	case daysOverdue <= 90:
		return AgingBucket61To90
	default:
		return AgingBucket90Plus
	}
}

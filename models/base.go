// Package models holds the entity shapes of every back-office domain:
// parties, catalog, inventory, orders and accounting. Cross-references
// between entities are always by id; stores never embed live objects
// of another domain.
package models

import "time"

// Base carries the fields shared by every entity. Ids are opaque
// strings supplied by the caller at creation; the core never generates
// or reuses them. Timestamps are likewise caller-supplied.
type Base struct {
	Id        string    `json:"id" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b Base) GetId() string {
	return b.Id
}

// CalculateDueDate resolves an invoice due date from payment terms.
func CalculateDueDate(date time.Time, paymentTerms PaymentTerms, customDays int) time.Time {
	var dueDate time.Time
	switch terms := paymentTerms; terms {
	case PaymentTermsDueOnReceipt:
		dueDate = date
	case PaymentTermsNet15:
		dueDate = date.AddDate(0, 0, 15)
	case PaymentTermsNet30:
		dueDate = date.AddDate(0, 0, 30)
	case PaymentTermsNet45:
		dueDate = date.AddDate(0, 0, 45)
	case PaymentTermsNet60:
		dueDate = date.AddDate(0, 0, 60)
	case PaymentTermsDueEndOfMonth:
		year, month, _ := date.Date()
		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, date.Location())
		dueDate = firstOfMonth.AddDate(0, 1, -1)
	case PaymentTermsDueEndOfNextMonth:
		year, month, _ := date.Date()
		firstOfNextMonth := time.Date(year, month+1, 1, 0, 0, 0, 0, date.Location())
		dueDate = firstOfNextMonth.AddDate(0, 1, -1)
	case PaymentTermsCustom:
		dueDate = date.AddDate(0, 0, customDays)
	default:
		dueDate = date
	}
	return dueDate
}

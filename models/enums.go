package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

func (t *AccountType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("account type must be string")
	}
	switch AccountType(str) {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		*t = AccountType(str)
	default:
		return fmt.Errorf("invalid account type %q", str)
	}
	return nil
}

type AccountCategory string

const (
	AccountCategoryCurrentAsset      AccountCategory = "current-asset"
	AccountCategoryFixedAsset        AccountCategory = "fixed-asset"
	AccountCategoryCurrentLiability  AccountCategory = "current-liability"
	AccountCategoryLongTermLiability AccountCategory = "long-term-liability"
	AccountCategoryOwnerEquity       AccountCategory = "owner-equity"
	AccountCategoryOperatingRevenue  AccountCategory = "operating-revenue"
	AccountCategoryOtherRevenue      AccountCategory = "other-revenue"
	AccountCategoryOperatingExpense  AccountCategory = "operating-expense"
	AccountCategoryOtherExpense      AccountCategory = "other-expense"
)

func (c *AccountCategory) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("account category must be string")
	}
	categories := map[string]AccountCategory{
		"current-asset":       AccountCategoryCurrentAsset,
		"fixed-asset":         AccountCategoryFixedAsset,
		"current-liability":   AccountCategoryCurrentLiability,
		"long-term-liability": AccountCategoryLongTermLiability,
		"owner-equity":        AccountCategoryOwnerEquity,
		"operating-revenue":   AccountCategoryOperatingRevenue,
		"other-revenue":       AccountCategoryOtherRevenue,
		"operating-expense":   AccountCategoryOperatingExpense,
		"other-expense":       AccountCategoryOtherExpense,
	}
	category, ok := categories[str]
	if !ok {
		return fmt.Errorf("invalid account category %q", str)
	}
	*c = category
	return nil
}

type JournalEntryStatus string

const (
	JournalEntryStatusDraft  JournalEntryStatus = "draft"
	JournalEntryStatusPosted JournalEntryStatus = "posted"
	JournalEntryStatusVoided JournalEntryStatus = "voided"
)

type InvoiceStatus string

const (
	InvoiceStatusOpen    InvoiceStatus = "open"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

// Outstanding reports whether the invoice still carries a collectible
// balance (void and fully paid invoices do not age).
func (s InvoiceStatus) Outstanding() bool {
	return s == InvoiceStatusOpen || s == InvoiceStatusPartial || s == InvoiceStatusOverdue
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank-transfer"
	PaymentMethodCreditCard   PaymentMethod = "credit-card"
	PaymentMethodDebitCard    PaymentMethod = "debit-card"
	PaymentMethodOther        PaymentMethod = "other"
)

type PartyStatus string

const (
	PartyStatusActive   PartyStatus = "active"
	PartyStatusInactive PartyStatus = "inactive"
	PartyStatusBlocked  PartyStatus = "blocked"
)

func (s *PartyStatus) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("party status must be string")
	}
	switch PartyStatus(str) {
	case PartyStatusActive, PartyStatusInactive, PartyStatusBlocked:
		*s = PartyStatus(str)
	default:
		return fmt.Errorf("invalid party status %q", str)
	}
	return nil
}

type VendorCategory string

const (
	VendorCategorySupplier     VendorCategory = "supplier"
	VendorCategoryManufacturer VendorCategory = "manufacturer"
	VendorCategoryDistributor  VendorCategory = "distributor"
	VendorCategoryService      VendorCategory = "service"
)

type AddressType string

const (
	AddressTypeBilling  AddressType = "billing"
	AddressTypeShipping AddressType = "shipping"
)

type ContactType string

const (
	ContactTypePhone ContactType = "phone"
	ContactTypeEmail ContactType = "email"
	ContactTypeOther ContactType = "other"
)

type PaymentTerms string

const (
	PaymentTermsDueOnReceipt      PaymentTerms = "DueOnReceipt"
	PaymentTermsNet15             PaymentTerms = "Net15"
	PaymentTermsNet30             PaymentTerms = "Net30"
	PaymentTermsNet45             PaymentTerms = "Net45"
	PaymentTermsNet60             PaymentTerms = "Net60"
	PaymentTermsDueEndOfMonth     PaymentTerms = "DueMonthEnd"
	PaymentTermsDueEndOfNextMonth PaymentTerms = "DueNextMonthEnd"
	PaymentTermsCustom            PaymentTerms = "Custom"
)

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusPartial   OrderStatus = "partial"
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusReturned  OrderStatus = "returned"
)

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusReceived, OrderStatusDelivered, OrderStatusCancelled, OrderStatusReturned:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusVoid     PaymentStatus = "void"
)

type InventoryTransactionType string

const (
	InventoryTransactionTypePurchase   InventoryTransactionType = "purchase"
	InventoryTransactionTypeSale       InventoryTransactionType = "sale"
	InventoryTransactionTypeReturn     InventoryTransactionType = "return"
	InventoryTransactionTypeAdjustment InventoryTransactionType = "adjustment"
	InventoryTransactionTypeTransfer   InventoryTransactionType = "transfer"
)

func (t *InventoryTransactionType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("inventory transaction type must be string")
	}
	switch InventoryTransactionType(str) {
	case InventoryTransactionTypePurchase, InventoryTransactionTypeSale,
		InventoryTransactionTypeReturn, InventoryTransactionTypeAdjustment,
		InventoryTransactionTypeTransfer:
		*t = InventoryTransactionType(str)
	default:
		return fmt.Errorf("invalid inventory transaction type %q", str)
	}
	return nil
}

type AdjustmentReason string

const (
	AdjustmentReasonDamage     AdjustmentReason = "damage"
	AdjustmentReasonLoss       AdjustmentReason = "loss"
	AdjustmentReasonTheft      AdjustmentReason = "theft"
	AdjustmentReasonExpiry     AdjustmentReason = "expiry"
	AdjustmentReasonCorrection AdjustmentReason = "correction"
	AdjustmentReasonOther      AdjustmentReason = "other"
)

type AgingBucket string

const (
	AgingBucketCurrent AgingBucket = "current"
	AgingBucket1To30   AgingBucket = "1-30"
	AgingBucket31To60  AgingBucket = "31-60"
	AgingBucket61To90  AgingBucket = "61-90"
	AgingBucket90Plus  AgingBucket = "90+"
)

var AgingBuckets = []AgingBucket{
	AgingBucketCurrent,
	AgingBucket1To30,
	AgingBucket31To60,
	AgingBucket61To90,
	AgingBucket90Plus,
}

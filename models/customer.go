package models

import "github.com/shopspring/decimal"

// Address is typed billing or shipping. At most one address per party
// may carry IsDefault; the party workflows renormalize the flag on
// every address mutation.
type Address struct {
	Type       AddressType `json:"type" validate:"required,oneof=billing shipping"`
	Address    string      `json:"address"`
	City       string      `json:"city"`
	State      string      `json:"state"`
	Country    string      `json:"country"`
	PostalCode string      `json:"postalCode"`
	IsDefault  bool        `json:"isDefault"`
}

// Contact is a tagged variant: the Type discriminates how Value is
// interpreted (phone number, email address, or free-form).
type Contact struct {
	Type      ContactType `json:"type" validate:"required,oneof=phone email other"`
	Value     string      `json:"value" validate:"required"`
	IsPrimary bool        `json:"isPrimary"`
}

type NotificationSettings struct {
	OrderUpdates bool `json:"orderUpdates"`
	Promotions   bool `json:"promotions"`
	Newsletter   bool `json:"newsletter"`
}

type CustomerPreferences struct {
	PreferredContactMethod ContactType          `json:"preferredContactMethod"`
	MarketingOptIn         bool                 `json:"marketingOptIn"`
	NotificationSettings   NotificationSettings `json:"notificationSettings"`
}

type Customer struct {
	Base
	Code                   string              `json:"code"`
	FirstName              string              `json:"firstName" validate:"required"`
	LastName               string              `json:"lastName"`
	Company                string              `json:"company"`
	Status                 PartyStatus         `json:"status" validate:"required"`
	Addresses              []Address           `json:"addresses" validate:"dive"`
	Contacts               []Contact           `json:"contacts" validate:"dive"`
	Preferences            CustomerPreferences `json:"preferences"`
	PaymentTerms           PaymentTerms        `json:"paymentTerms"`
	PaymentTermsCustomDays int                 `json:"paymentTermsCustomDays"`
	TaxId                  string              `json:"taxId"`
	Notes                  string              `json:"notes"`
	Tags                   []string            `json:"tags"`
	CreditLimit            *decimal.Decimal    `json:"creditLimit"`
	Balance                decimal.Decimal     `json:"balance"`
}

// DefaultAddress returns the address flagged default, if any.
func (c *Customer) DefaultAddress() *Address {
	for i := range c.Addresses {
		if c.Addresses[i].IsDefault {
			return &c.Addresses[i]
		}
	}
	return nil
}

func (c *Customer) Name() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

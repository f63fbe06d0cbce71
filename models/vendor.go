package models

import "github.com/shopspring/decimal"

type Vendor struct {
	Base
	Name                   string           `json:"name" validate:"required"`
	Category               VendorCategory   `json:"category" validate:"required,oneof=supplier manufacturer distributor service"`
	Status                 PartyStatus      `json:"status" validate:"required"`
	Addresses              []Address        `json:"addresses" validate:"dive"`
	Contacts               []Contact        `json:"contacts" validate:"dive"`
	PaymentTerms           PaymentTerms     `json:"paymentTerms"`
	PaymentTermsCustomDays int              `json:"paymentTermsCustomDays"`
	LeadTimeDays           int              `json:"leadTimeDays"`
	TaxId                  string           `json:"taxId"`
	Notes                  string           `json:"notes"`
	Tags                   []string         `json:"tags"`
	CreditLimit            *decimal.Decimal `json:"creditLimit"`
	Balance                decimal.Decimal  `json:"balance"`
}

func (v *Vendor) DefaultAddress() *Address {
	for i := range v.Addresses {
		if v.Addresses[i].IsDefault {
			return &v.Addresses[i]
		}
	}
	return nil
}

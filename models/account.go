package models

import "github.com/shopspring/decimal"

// Account is one entry in the chart of accounts. Balance is the net
// effect of every journal line currently posted against it; the
// accounting workflow is the only writer.
type Account struct {
	Base
	Code        string          `json:"code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Type        AccountType     `json:"type" validate:"required"`
	Category    AccountCategory `json:"category" validate:"required"`
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	Balance     decimal.Decimal `json:"balance"`
	ParentId    string          `json:"parentId"`
	Tags        []string        `json:"tags"`
}

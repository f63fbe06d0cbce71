package models

import "github.com/shopspring/decimal"

type ProductAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductVariant belongs to exactly one product; stock bookkeeping is
// keyed by variant id in the inventory ledger.
type ProductVariant struct {
	Base
	Sku             string             `json:"sku" validate:"required"`
	Barcode         string             `json:"barcode"`
	Price           decimal.Decimal    `json:"price"`
	CostPrice       decimal.Decimal    `json:"costPrice"`
	Attributes      []ProductAttribute `json:"attributes"`
	StockQuantity   decimal.Decimal    `json:"stockQuantity"`
	ReorderPoint    decimal.Decimal    `json:"reorderPoint"`
	ReorderQuantity decimal.Decimal    `json:"reorderQuantity"`
}

type Product struct {
	Base
	Name             string           `json:"name" validate:"required"`
	Description      string           `json:"description"`
	CategoryId       string           `json:"categoryId"`
	Brand            string           `json:"brand"`
	IsActive         bool             `json:"isActive"`
	Images           []string         `json:"images"`
	Variants         []ProductVariant `json:"variants"`
	DefaultVariantId string           `json:"defaultVariantId"`
	Tags             []string         `json:"tags"`
}

// Variant returns the variant with the given id, if present.
func (p *Product) Variant(variantId string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].Id == variantId {
			return &p.Variants[i]
		}
	}
	return nil
}

// HasValidDefaultVariant reports whether DefaultVariantId, when set,
// references one of the product's own variants.
func (p *Product) HasValidDefaultVariant() bool {
	if p.DefaultVariantId == "" {
		return true
	}
	return p.Variant(p.DefaultVariantId) != nil
}

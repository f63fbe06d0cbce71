package workflow

import (
	"errors"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/store"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
)

var errDanglingDefaultVariant = errors.New("defaultVariantId does not reference a variant of the product")

type ProductWorkflow struct {
	products   *store.Store[models.Product]
	byCategory *store.Index
}

func NewProductWorkflow() *ProductWorkflow {
	return &ProductWorkflow{
		products:   store.New[models.Product](),
		byCategory: store.NewIndex(),
	}
}

func (w *ProductWorkflow) Store() *store.Store[models.Product] {
	return w.products
}

func (w *ProductWorkflow) ByCategory(categoryId string) []string {
	return w.byCategory.Bucket(categoryId)
}

func (w *ProductWorkflow) Add(product models.Product) error {
	if !product.HasValidDefaultVariant() {
		return errDanglingDefaultVariant
	}
	w.products.Set(product.Id, product)
	w.byCategory.Add(product.CategoryId, product.Id)
	return nil
}

func (w *ProductWorkflow) Update(id string, mutate func(*models.Product)) error {
	current, ok := w.products.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id
	if !updated.HasValidDefaultVariant() {
		return errDanglingDefaultVariant
	}

	w.byCategory.Move(current.CategoryId, updated.CategoryId, id)
	w.products.Set(id, updated)
	return nil
}

func (w *ProductWorkflow) Delete(id string) error {
	current, ok := w.products.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	w.products.Delete(id)
	w.byCategory.Remove(current.CategoryId, id)
	return nil
}

func (w *ProductWorkflow) SetActive(id string, active bool) error {
	return w.Update(id, func(p *models.Product) {
		p.IsActive = active
	})
}

// ActiveProducts returns products currently flagged active.
func (w *ProductWorkflow) ActiveProducts() []models.Product {
	var active []models.Product
	for _, p := range w.products.Get() {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active
}

func (w *ProductWorkflow) Load(items map[string]models.Product) {
	w.products.Replace(items)
	w.byCategory.Rebuild(func(yield func(key, id string)) {
		for id, p := range items {
			yield(p.CategoryId, id)
		}
	})
}

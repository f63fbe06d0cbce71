package workflow

import (
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/store"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
	"github.com/shopspring/decimal"
)

type VendorWorkflow struct {
	vendors    *store.Store[models.Vendor]
	byStatus   *store.Index
	byCategory *store.Index
}

func NewVendorWorkflow() *VendorWorkflow {
	return &VendorWorkflow{
		vendors:    store.New[models.Vendor](),
		byStatus:   store.NewIndex(),
		byCategory: store.NewIndex(),
	}
}

func (w *VendorWorkflow) Store() *store.Store[models.Vendor] {
	return w.vendors
}

func (w *VendorWorkflow) ByStatus(status models.PartyStatus) []string {
	return w.byStatus.Bucket(string(status))
}

func (w *VendorWorkflow) ByCategory(category models.VendorCategory) []string {
	return w.byCategory.Bucket(string(category))
}

func (w *VendorWorkflow) Add(vendor models.Vendor) {
	vendor.Addresses = normalizeDefaultAddresses(vendor.Addresses, -1)
	w.vendors.Set(vendor.Id, vendor)
	w.byStatus.Add(string(vendor.Status), vendor.Id)
	w.byCategory.Add(string(vendor.Category), vendor.Id)
}

func (w *VendorWorkflow) Update(id string, mutate func(*models.Vendor)) error {
	current, ok := w.vendors.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id

	w.byStatus.Move(string(current.Status), string(updated.Status), id)
	w.byCategory.Move(string(current.Category), string(updated.Category), id)
	w.vendors.Set(id, updated)
	return nil
}

func (w *VendorWorkflow) Delete(id string) error {
	current, ok := w.vendors.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	w.vendors.Delete(id)
	w.byStatus.Remove(string(current.Status), id)
	w.byCategory.Remove(string(current.Category), id)
	return nil
}

func (w *VendorWorkflow) UpdateStatus(id string, status models.PartyStatus) error {
	return w.Update(id, func(v *models.Vendor) {
		v.Status = status
	})
}

func (w *VendorWorkflow) UpdateBalance(id string, delta decimal.Decimal) error {
	return w.Update(id, func(v *models.Vendor) {
		v.Balance = v.Balance.Add(delta)
	})
}

func (w *VendorWorkflow) UpdateCreditLimit(id string, limit *decimal.Decimal) error {
	return w.Update(id, func(v *models.Vendor) {
		v.CreditLimit = limit
	})
}

func (w *VendorWorkflow) UpdatePaymentTerms(id string, terms models.PaymentTerms, customDays int) error {
	return w.Update(id, func(v *models.Vendor) {
		v.PaymentTerms = terms
		v.PaymentTermsCustomDays = customDays
	})
}

func (w *VendorWorkflow) UpdateLeadTime(id string, days int) error {
	return w.Update(id, func(v *models.Vendor) {
		v.LeadTimeDays = days
	})
}

func (w *VendorWorkflow) AddAddress(id string, address models.Address) error {
	return w.Update(id, func(v *models.Vendor) {
		addresses := append(append([]models.Address{}, v.Addresses...), address)
		v.Addresses = normalizeDefaultAddresses(addresses, len(addresses)-1)
	})
}

func (w *VendorWorkflow) UpdateAddress(id string, index int, mutate func(*models.Address)) error {
	var missing bool
	err := w.Update(id, func(v *models.Vendor) {
		if index < 0 || index >= len(v.Addresses) {
			missing = true
			return
		}
		addresses := append([]models.Address{}, v.Addresses...)
		mutate(&addresses[index])
		v.Addresses = normalizeDefaultAddresses(addresses, index)
	})
	if err != nil {
		return err
	}
	if missing {
		return utils.ErrorRecordNotFound
	}
	return nil
}

func (w *VendorWorkflow) RemoveAddress(id string, index int) error {
	return w.Update(id, func(v *models.Vendor) {
		if index < 0 || index >= len(v.Addresses) {
			return
		}
		v.Addresses = append(append([]models.Address{}, v.Addresses[:index]...), v.Addresses[index+1:]...)
	})
}

func (w *VendorWorkflow) Load(items map[string]models.Vendor) {
	w.vendors.Replace(items)
	w.byStatus.Rebuild(func(yield func(key, id string)) {
		for id, v := range items {
			yield(string(v.Status), id)
		}
	})
	w.byCategory.Rebuild(func(yield func(key, id string)) {
		for id, v := range items {
			yield(string(v.Category), id)
		}
	})
}

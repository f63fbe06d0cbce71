// Package workflow holds the mutation actions of every domain. Each
// workflow owns its primary store plus the secondary indexes derived
// from it, and keeps both consistent inside one synchronous call.
// Unknown ids are reported with utils.ErrorRecordNotFound instead of
// the silent no-op a UI layer might expect; callers that want to
// ignore missing records check errors.Is.
package workflow

import (
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/store"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
	"github.com/shopspring/decimal"
)

type CustomerWorkflow struct {
	customers *store.Store[models.Customer]
	byStatus  *store.Index
}

func NewCustomerWorkflow() *CustomerWorkflow {
	return &CustomerWorkflow{
		customers: store.New[models.Customer](),
		byStatus:  store.NewIndex(),
	}
}

// Store exposes the primary map for reads and subscriptions.
func (w *CustomerWorkflow) Store() *store.Store[models.Customer] {
	return w.customers
}

// ByStatus returns the ids currently holding the given status.
func (w *CustomerWorkflow) ByStatus(status models.PartyStatus) []string {
	return w.byStatus.Bucket(string(status))
}

func (w *CustomerWorkflow) Add(customer models.Customer) {
	customer.Addresses = normalizeDefaultAddresses(customer.Addresses, -1)
	w.customers.Set(customer.Id, customer)
	w.byStatus.Add(string(customer.Status), customer.Id)
}

// Update applies a partial mutation through mutate. The id is
// immutable; index maintenance runs on the observed status change.
func (w *CustomerWorkflow) Update(id string, mutate func(*models.Customer)) error {
	current, ok := w.customers.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id

	w.byStatus.Move(string(current.Status), string(updated.Status), id)
	w.customers.Set(id, updated)
	return nil
}

func (w *CustomerWorkflow) Delete(id string) error {
	current, ok := w.customers.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	w.customers.Delete(id)
	w.byStatus.Remove(string(current.Status), id)
	return nil
}

func (w *CustomerWorkflow) UpdateStatus(id string, status models.PartyStatus) error {
	return w.Update(id, func(c *models.Customer) {
		c.Status = status
	})
}

// UpdateBalance applies a delta rather than an absolute value so two
// consecutive postings cannot lose each other's effect.
func (w *CustomerWorkflow) UpdateBalance(id string, delta decimal.Decimal) error {
	return w.Update(id, func(c *models.Customer) {
		c.Balance = c.Balance.Add(delta)
	})
}

func (w *CustomerWorkflow) UpdateCreditLimit(id string, limit *decimal.Decimal) error {
	return w.Update(id, func(c *models.Customer) {
		c.CreditLimit = limit
	})
}

func (w *CustomerWorkflow) AddAddress(id string, address models.Address) error {
	return w.Update(id, func(c *models.Customer) {
		addresses := append(append([]models.Address{}, c.Addresses...), address)
		c.Addresses = normalizeDefaultAddresses(addresses, len(addresses)-1)
	})
}

func (w *CustomerWorkflow) UpdateAddress(id string, index int, mutate func(*models.Address)) error {
	return w.updateAddressAt(id, index, mutate)
}

func (w *CustomerWorkflow) RemoveAddress(id string, index int) error {
	err := w.Update(id, func(c *models.Customer) {
		if index < 0 || index >= len(c.Addresses) {
			return
		}
		c.Addresses = append(append([]models.Address{}, c.Addresses[:index]...), c.Addresses[index+1:]...)
	})
	return err
}

func (w *CustomerWorkflow) AddContact(id string, contact models.Contact) error {
	return w.Update(id, func(c *models.Customer) {
		contacts := append([]models.Contact{}, c.Contacts...)
		if contact.IsPrimary {
			for i := range contacts {
				contacts[i].IsPrimary = false
			}
		}
		c.Contacts = append(contacts, contact)
	})
}

func (w *CustomerWorkflow) updateAddressAt(id string, index int, mutate func(*models.Address)) error {
	var missing bool
	err := w.Update(id, func(c *models.Customer) {
		if index < 0 || index >= len(c.Addresses) {
			missing = true
			return
		}
		addresses := append([]models.Address{}, c.Addresses...)
		mutate(&addresses[index])
		c.Addresses = normalizeDefaultAddresses(addresses, index)
	})
	if err != nil {
		return err
	}
	if missing {
		return utils.ErrorRecordNotFound
	}
	return nil
}

// Load replaces the store from a persisted snapshot and rebuilds the
// derived index.
func (w *CustomerWorkflow) Load(items map[string]models.Customer) {
	w.customers.Replace(items)
	w.byStatus.Rebuild(func(yield func(key, id string)) {
		for id, c := range items {
			yield(string(c.Status), id)
		}
	})
}

// normalizeDefaultAddresses enforces the single-default invariant: if
// the address at keep is default, every other default flag is cleared.
// keep = -1 retains the first default encountered.
func normalizeDefaultAddresses(addresses []models.Address, keep int) []models.Address {
	if keep < 0 || keep >= len(addresses) || !addresses[keep].IsDefault {
		keep = -1
		for i := range addresses {
			if addresses[i].IsDefault {
				keep = i
				break
			}
		}
	}
	for i := range addresses {
		addresses[i].IsDefault = i == keep
	}
	return addresses
}

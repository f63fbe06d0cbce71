package workflow

import (
	"errors"
	"testing"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
	"github.com/shopspring/decimal"
)

func newCustomer(id, firstName string) models.Customer {
	return models.Customer{
		Base:      models.Base{Id: id},
		FirstName: firstName,
		Status:    models.PartyStatusActive,
	}
}

// Three active customers; one is blocked, one is deleted. The status
// index must track every change without stale entries.
func TestCustomerStatusIndexConsistency(t *testing.T) {
	w := NewCustomerWorkflow()
	w.Add(newCustomer("cus-1", "Ana"))
	w.Add(newCustomer("cus-2", "Ben"))
	w.Add(newCustomer("cus-3", "Cleo"))

	if err := w.UpdateStatus("cus-2", models.PartyStatusBlocked); err != nil {
		t.Fatalf("block: %v", err)
	}
	if err := w.Delete("cus-3"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got := w.ByStatus(models.PartyStatusActive); len(got) != 1 || got[0] != "cus-1" {
		t.Fatalf("active bucket = %v", got)
	}
	if got := w.ByStatus(models.PartyStatusBlocked); len(got) != 1 || got[0] != "cus-2" {
		t.Fatalf("blocked bucket = %v", got)
	}
}

// Adding an address flagged default demotes any previous default, so
// at most one default remains.
func TestDefaultAddressUniqueness(t *testing.T) {
	w := NewCustomerWorkflow()
	customer := newCustomer("cus-1", "Ana")
	customer.Addresses = []models.Address{
		{Type: models.AddressTypeShipping, Address: "1 Bark St", IsDefault: true},
	}
	w.Add(customer)

	if err := w.AddAddress("cus-1", models.Address{
		Type:      models.AddressTypeBilling,
		Address:   "2 Purr Ave",
		IsDefault: true,
	}); err != nil {
		t.Fatalf("add address: %v", err)
	}

	stored, _ := w.Store().Lookup("cus-1")
	defaults := 0
	for _, a := range stored.Addresses {
		if a.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Fatalf("default count = %d, want 1", defaults)
	}
	if d := stored.DefaultAddress(); d == nil || d.Address != "2 Purr Ave" {
		t.Fatalf("default address = %+v", d)
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	w := NewCustomerWorkflow()
	w.Add(newCustomer("cus-1", "Ana"))

	if err := w.Update("cus-1", func(c *models.Customer) {
		c.Id = "hijacked"
		c.LastName = "Morales"
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, ok := w.Store().Lookup("cus-1")
	if !ok || stored.Id != "cus-1" {
		t.Fatalf("identity changed: %+v", stored)
	}
	if stored.Name() != "Ana Morales" {
		t.Fatalf("name = %s", stored.Name())
	}
}

func TestBalanceAndCreditLimit(t *testing.T) {
	w := NewCustomerWorkflow()
	w.Add(newCustomer("cus-1", "Ana"))

	if err := w.UpdateBalance("cus-1", dec(120)); err != nil {
		t.Fatalf("balance up: %v", err)
	}
	if err := w.UpdateBalance("cus-1", dec(-50)); err != nil {
		t.Fatalf("balance down: %v", err)
	}
	limit := decimal.NewFromInt(1000)
	if err := w.UpdateCreditLimit("cus-1", &limit); err != nil {
		t.Fatalf("credit limit: %v", err)
	}

	stored, _ := w.Store().Lookup("cus-1")
	if !stored.Balance.Equal(dec(70)) {
		t.Fatalf("balance = %s, want 70", stored.Balance)
	}
	if stored.CreditLimit == nil || !stored.CreditLimit.Equal(dec(1000)) {
		t.Fatalf("credit limit = %v", stored.CreditLimit)
	}

	if err := w.UpdateCreditLimit("cus-1", nil); err != nil {
		t.Fatalf("clear credit limit: %v", err)
	}
	stored, _ = w.Store().Lookup("cus-1")
	if stored.CreditLimit != nil {
		t.Fatal("credit limit not cleared")
	}
}

func TestCustomerNotFound(t *testing.T) {
	w := NewCustomerWorkflow()
	if err := w.Update("missing", func(c *models.Customer) {}); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("update: %v", err)
	}
	if err := w.Delete("missing"); !errors.Is(err, utils.ErrorRecordNotFound) {
		t.Fatalf("delete: %v", err)
	}
}

func TestCustomerLoadRebuildsStatusIndex(t *testing.T) {
	w := NewCustomerWorkflow()
	blocked := newCustomer("cus-2", "Ben")
	blocked.Status = models.PartyStatusBlocked
	w.Load(map[string]models.Customer{
		"cus-1": newCustomer("cus-1", "Ana"),
		"cus-2": blocked,
	})

	if got := w.ByStatus(models.PartyStatusActive); len(got) != 1 || got[0] != "cus-1" {
		t.Fatalf("active bucket = %v", got)
	}
	if got := w.ByStatus(models.PartyStatusBlocked); len(got) != 1 {
		t.Fatalf("blocked bucket = %v", got)
	}
}

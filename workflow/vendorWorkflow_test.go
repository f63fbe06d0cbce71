package workflow

import (
	"testing"

	"bitbucket.org/pawhaus/backoffice_backend/models"
)

func newVendor(id, name string, category models.VendorCategory) models.Vendor {
	return models.Vendor{
		Base:     models.Base{Id: id},
		Name:     name,
		Category: category,
		Status:   models.PartyStatusActive,
	}
}

func TestVendorCategoryIndex(t *testing.T) {
	w := NewVendorWorkflow()
	w.Add(newVendor("ven-1", "Happy Paws Supply", models.VendorCategorySupplier))
	w.Add(newVendor("ven-2", "Kibble Works", models.VendorCategoryManufacturer))

	if err := w.Update("ven-2", func(v *models.Vendor) {
		v.Category = models.VendorCategoryDistributor
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	if got := w.ByCategory(models.VendorCategoryManufacturer); len(got) != 0 {
		t.Fatalf("manufacturer bucket = %v", got)
	}
	if got := w.ByCategory(models.VendorCategoryDistributor); len(got) != 1 || got[0] != "ven-2" {
		t.Fatalf("distributor bucket = %v", got)
	}
}

func TestVendorPaymentTermsAndLeadTime(t *testing.T) {
	w := NewVendorWorkflow()
	w.Add(newVendor("ven-1", "Happy Paws Supply", models.VendorCategorySupplier))

	if err := w.UpdatePaymentTerms("ven-1", models.PaymentTermsCustom, 21); err != nil {
		t.Fatalf("payment terms: %v", err)
	}
	if err := w.UpdateLeadTime("ven-1", 10); err != nil {
		t.Fatalf("lead time: %v", err)
	}

	stored, _ := w.Store().Lookup("ven-1")
	if stored.PaymentTerms != models.PaymentTermsCustom || stored.PaymentTermsCustomDays != 21 {
		t.Fatalf("terms = %s/%d", stored.PaymentTerms, stored.PaymentTermsCustomDays)
	}
	if stored.LeadTimeDays != 10 {
		t.Fatalf("lead time = %d", stored.LeadTimeDays)
	}
}

// seed-demo fills a fresh snapshot directory with a small pet-store
// dataset: customers, vendors, products, stock, orders, a chart of
// accounts with journal entries, and open invoices. It then writes the
// snapshot and exports the AR aging and financial metrics workbooks.
//
// Usage:
//
//	SNAPSHOT_DIR=./data go run ./cmd/seed-demo
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bitbucket.org/pawhaus/backoffice_backend/app"
	"bitbucket.org/pawhaus/backoffice_backend/config"
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/reports"
	"bitbucket.org/pawhaus/backoffice_backend/workflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func main() {
	a := app.Create(nil)
	now := time.Now()

	customerId := seedCustomers(a, now)
	vendorId := seedVendors(a, now)
	productId := seedProducts(a, now)
	seedInventory(a, productId, now)
	seedOrders(a, customerId, vendorId, productId, now)
	seedAccounting(a, customerId, vendorId, now)

	dir := config.GetSnapshotDir()
	if err := a.SaveTo(dir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("snapshot written to %s\n", dir)

	aging := reports.GetARAgingSummaryReport(
		a.Accounting().Receivables().Get(), a.Customers().Store().Get(), now)
	agingFile := filepath.Join(dir, "ar-aging.xlsx")
	if err := reports.ExportAgingSummaryExcel(aging, "AR Aging Summary", agingFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to export aging workbook: %v\n", err)
		os.Exit(1)
	}

	metrics := reports.GetFinancialMetricsReport(a.Accounting().Accounts().Get())
	metricsFile := filepath.Join(dir, "financial-metrics.xlsx")
	if err := reports.ExportFinancialMetricsExcel(metrics, metricsFile); err != nil {
		fmt.Fprintf(os.Stderr, "failed to export metrics workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("exported %s and %s\n", agingFile, metricsFile)
}

func newId(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func stamped(id string, now time.Time) models.Base {
	return models.Base{Id: id, CreatedAt: now, UpdatedAt: now}
}

func seedCustomers(a *app.App, now time.Time) string {
	id := newId("cus")
	a.Customers().Add(models.Customer{
		Base:         stamped(id, now),
		FirstName:    "Maria",
		LastName:     "Santos",
		Status:       models.PartyStatusActive,
		PaymentTerms: models.PaymentTermsNet30,
		Addresses: []models.Address{
			{Type: models.AddressTypeShipping, Address: "12 Collar Lane", City: "Springfield", IsDefault: true},
		},
		Contacts: []models.Contact{
			{Type: models.ContactTypeEmail, Value: "maria@example.com", IsPrimary: true},
		},
	})
	a.Customers().Add(models.Customer{
		Base:      stamped(newId("cus"), now),
		FirstName: "Devon",
		Status:    models.PartyStatusActive,
	})
	return id
}

func seedVendors(a *app.App, now time.Time) string {
	id := newId("ven")
	a.Vendors().Add(models.Vendor{
		Base:         stamped(id, now),
		Name:         "Happy Paws Supply Co",
		Category:     models.VendorCategorySupplier,
		Status:       models.PartyStatusActive,
		PaymentTerms: models.PaymentTermsNet15,
		LeadTimeDays: 7,
	})
	return id
}

func seedProducts(a *app.App, now time.Time) string {
	id := newId("prd")
	variantId := id + "-v1"
	if err := a.Products().Add(models.Product{
		Base:       stamped(id, now),
		Name:       "Salmon Feast Dry Kibble 5kg",
		CategoryId: "cat-food",
		IsActive:   true,
		Variants: []models.ProductVariant{
			{
				Base:      stamped(variantId, now),
				Sku:       "KIB-SAL-5KG",
				Price:     decimal.NewFromInt(45),
				CostPrice: decimal.NewFromInt(28),
			},
		},
		DefaultVariantId: variantId,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed product: %v\n", err)
		os.Exit(1)
	}
	return id
}

func seedInventory(a *app.App, productId string, now time.Time) {
	a.Inventory().AddLocation(models.Location{
		Base: stamped("loc-main", now), Name: "Main Store", IsActive: true,
	})
	a.Inventory().UpsertStockLevel(models.StockLevel{
		ProductId:    productId,
		LocationId:   "loc-main",
		ReorderPoint: decimal.NewFromInt(10),
	})
	if err := a.Inventory().AddTransaction(models.InventoryTransaction{
		Base:              stamped(newId("tx"), now),
		TransactionNumber: "TX-0001",
		Type:              models.InventoryTransactionTypePurchase,
		ProductId:         productId,
		ToLocationId:      "loc-main",
		Quantity:          decimal.NewFromInt(60),
		UnitCost:          decimal.NewFromInt(28),
		TotalCost:         decimal.NewFromInt(1680),
		PerformedBy:       "seed",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed inventory: %v\n", err)
		os.Exit(1)
	}
}

func seedOrders(a *app.App, customerId, vendorId, productId string, now time.Time) {
	a.Sales().AddOrder(models.SalesOrder{
		Base:          stamped(newId("so"), now),
		OrderNumber:   "SO-1001",
		CustomerId:    customerId,
		Status:        models.OrderStatusOrdered,
		PaymentStatus: models.PaymentStatusPaid,
		OrderDate:     now,
		Items: []models.SalesOrderItem{
			{ProductId: productId, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(45)},
		},
		PaymentDetails: &models.PaymentDetails{
			Amount: decimal.NewFromInt(90),
			Method: models.PaymentMethodCreditCard,
			PaidAt: now,
		},
	})

	poId := newId("po")
	a.Purchases().AddOrder(models.PurchaseOrder{
		Base:          stamped(poId, now),
		OrderNumber:   "PO-2001",
		VendorId:      vendorId,
		Status:        models.OrderStatusOrdered,
		PaymentStatus: models.PaymentStatusPending,
		OrderDate:     now,
		Items: []models.PurchaseOrderItem{
			{ProductId: productId, Quantity: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(28)},
		},
	})
	if err := a.Purchases().ReceiveItems(poId, []workflow.ReceivedQuantityDelta{
		{ProductId: productId, Quantity: decimal.NewFromInt(40)},
	}, models.ReceivingDetails{ReceivedAt: now, ReceivedBy: "seed", LocationId: "loc-main"}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to receive purchase order: %v\n", err)
		os.Exit(1)
	}
}

func seedAccounting(a *app.App, customerId, vendorId string, now time.Time) {
	accounts := []models.Account{
		{Base: stamped("acc-cash", now), Code: "1000", Name: "Cash", Type: models.AccountTypeAsset, Category: models.AccountCategoryCurrentAsset, IsActive: true},
		{Base: stamped("acc-ar", now), Code: "1100", Name: "Accounts Receivable", Type: models.AccountTypeAsset, Category: models.AccountCategoryCurrentAsset, IsActive: true},
		{Base: stamped("acc-sales", now), Code: "4000", Name: "Product Sales", Type: models.AccountTypeRevenue, Category: models.AccountCategoryOperatingRevenue, IsActive: true},
		{Base: stamped("acc-cogs", now), Code: "5000", Name: "Cost of Goods Sold", Type: models.AccountTypeExpense, Category: models.AccountCategoryOperatingExpense, IsActive: true},
	}
	for _, account := range accounts {
		a.Accounting().AddAccount(account)
	}

	a.Accounting().AddJournalEntry(models.JournalEntry{
		Base:        stamped(newId("je"), now),
		EntryNumber: "JE-0001",
		Date:        now,
		Description: "Kibble sale",
		Status:      models.JournalEntryStatusPosted,
		Lines: []models.JournalLine{
			{AccountId: "acc-cash", Description: "Payment received", Debit: decimal.NewFromInt(90)},
			{AccountId: "acc-sales", Description: "Kibble sale", Credit: decimal.NewFromInt(90)},
		},
	})

	a.Accounting().AddReceivable(models.Receivable{
		Base:          stamped(newId("ar"), now),
		InvoiceNumber: "INV-3001",
		CustomerId:    customerId,
		Date:          now.AddDate(0, 0, -50),
		DueDate:       now.AddDate(0, 0, -45),
		Amount:        decimal.NewFromInt(300),
		Balance:       decimal.NewFromInt(300),
		Status:        models.InvoiceStatusOverdue,
	})
	a.Accounting().AddPayable(models.Payable{
		Base:          stamped(newId("ap"), now),
		InvoiceNumber: "BILL-4001",
		VendorId:      vendorId,
		Date:          now,
		DueDate:       models.CalculateDueDate(now, models.PaymentTermsNet15, 0),
		Amount:        decimal.NewFromInt(1120),
		Balance:       decimal.NewFromInt(1120),
		Status:        models.InvoiceStatusOpen,
	})
}

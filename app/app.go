// Package app assembles the domain workflows behind one value. All
// state lives inside the App; nothing here is package-level.
package app

import (
	"bitbucket.org/pawhaus/backoffice_backend/persist"
	"bitbucket.org/pawhaus/backoffice_backend/workflow"
)

type App struct {
	customers  *workflow.CustomerWorkflow
	vendors    *workflow.VendorWorkflow
	products   *workflow.ProductWorkflow
	sales      *workflow.SalesWorkflow
	purchases  *workflow.PurchaseWorkflow
	inventory  *workflow.InventoryWorkflow
	accounting *workflow.AccountingWorkflow
}

// Create builds every workflow and, when initial is given, loads its
// buckets. A bucket only merges into a store that is still empty;
// state already present wins.
func Create(initial *persist.Snapshot) *App {
	a := &App{
		customers:  workflow.NewCustomerWorkflow(),
		vendors:    workflow.NewVendorWorkflow(),
		products:   workflow.NewProductWorkflow(),
		sales:      workflow.NewSalesWorkflow(),
		purchases:  workflow.NewPurchaseWorkflow(),
		inventory:  workflow.NewInventoryWorkflow(),
		accounting: workflow.NewAccountingWorkflow(),
	}
	if initial != nil {
		a.merge(initial)
	}
	return a
}

func (a *App) Customers() *workflow.CustomerWorkflow    { return a.customers }
func (a *App) Vendors() *workflow.VendorWorkflow        { return a.vendors }
func (a *App) Products() *workflow.ProductWorkflow      { return a.products }
func (a *App) Sales() *workflow.SalesWorkflow           { return a.sales }
func (a *App) Purchases() *workflow.PurchaseWorkflow    { return a.purchases }
func (a *App) Inventory() *workflow.InventoryWorkflow   { return a.inventory }
func (a *App) Accounting() *workflow.AccountingWorkflow { return a.accounting }

// LoadFrom reads a snapshot from dir and merges it, bucket by bucket,
// into the stores that are still empty.
func (a *App) LoadFrom(dir string) error {
	snapshot, err := persist.Load(dir)
	if err != nil {
		return err
	}
	a.merge(snapshot)
	return nil
}

// SaveTo writes the current state of every store to dir.
func (a *App) SaveTo(dir string) error {
	return persist.Save(dir, a.Snapshot())
}

func (a *App) Snapshot() *persist.Snapshot {
	return &persist.Snapshot{
		Customers:  a.customers.Store().Get(),
		Vendors:    a.vendors.Store().Get(),
		Products:   a.products.Store().Get(),
		Sales:      a.sales.Store().Get(),
		Purchases:  a.purchases.Store().Get(),
		Inventory:  a.inventory.Snapshot(),
		Accounting: a.accounting.Snapshot(),
	}
}

func (a *App) merge(snapshot *persist.Snapshot) {
	if a.customers.Store().Len() == 0 && len(snapshot.Customers) > 0 {
		a.customers.Load(snapshot.Customers)
	}
	if a.vendors.Store().Len() == 0 && len(snapshot.Vendors) > 0 {
		a.vendors.Load(snapshot.Vendors)
	}
	if a.products.Store().Len() == 0 && len(snapshot.Products) > 0 {
		a.products.Load(snapshot.Products)
	}
	if a.sales.Store().Len() == 0 && len(snapshot.Sales) > 0 {
		a.sales.Load(snapshot.Sales)
	}
	if a.purchases.Store().Len() == 0 && len(snapshot.Purchases) > 0 {
		a.purchases.Load(snapshot.Purchases)
	}
	if a.inventory.StockLevels().Len() == 0 && a.inventory.Transactions().Len() == 0 {
		a.inventory.Load(snapshot.Inventory)
	}
	if a.accounting.Accounts().Len() == 0 && a.accounting.JournalEntries().Len() == 0 {
		a.accounting.Load(snapshot.Accounting)
	}
}

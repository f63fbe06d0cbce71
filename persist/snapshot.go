// Package persist saves and restores the full domain state as one
// JSON file per bucket under a directory. Buckets are independent;
// writing them is not transactional.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bitbucket.org/pawhaus/backoffice_backend/config"
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/workflow"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Snapshot holds every bucket of domain state. Zero-value buckets are
// simply absent on disk.
type Snapshot struct {
	Customers  map[string]models.Customer      `json:"customers"`
	Vendors    map[string]models.Vendor        `json:"vendors"`
	Products   map[string]models.Product       `json:"products"`
	Sales      map[string]models.SalesOrder    `json:"sales"`
	Purchases  map[string]models.PurchaseOrder `json:"purchases"`
	Inventory  workflow.InventorySnapshot      `json:"inventory"`
	Accounting workflow.AccountingSnapshot     `json:"accounting"`
}

// Save writes every bucket to dir, creating it if needed. A failing
// bucket does not stop the others; all failures are joined into the
// returned error.
func Save(dir string, snapshot *Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	errs := []error{
		saveBucket(dir, "customers", snapshot.Customers),
		saveBucket(dir, "vendors", snapshot.Vendors),
		saveBucket(dir, "products", snapshot.Products),
		saveBucket(dir, "sales", snapshot.Sales),
		saveBucket(dir, "purchases", snapshot.Purchases),
		saveBucket(dir, "inventory", snapshot.Inventory),
		saveBucket(dir, "accounting", snapshot.Accounting),
	}
	return errors.Join(errs...)
}

// Load reads whatever buckets exist under dir. A missing directory or
// missing files are a cold start, not an error. Corrupt JSON or records
// failing validation abort the load.
func Load(dir string) (*Snapshot, error) {
	snapshot := &Snapshot{}

	if err := loadBucket(dir, "customers", &snapshot.Customers); err != nil {
		return nil, err
	}
	if err := loadBucket(dir, "vendors", &snapshot.Vendors); err != nil {
		return nil, err
	}
	if err := loadBucket(dir, "products", &snapshot.Products); err != nil {
		return nil, err
	}
	if err := loadBucket(dir, "sales", &snapshot.Sales); err != nil {
		return nil, err
	}
	if err := loadBucket(dir, "purchases", &snapshot.Purchases); err != nil {
		return nil, err
	}
	if err := loadBucket(dir, "inventory", &snapshot.Inventory); err != nil {
		return nil, err
	}
	if err := loadBucket(dir, "accounting", &snapshot.Accounting); err != nil {
		return nil, err
	}

	if err := validateSnapshot(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func saveBucket(dir, bucket string, data any) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		config.LogError(config.GetLogger(), "persist", "saveBucket", bucket, nil, err)
		return fmt.Errorf("encode bucket %s: %w", bucket, err)
	}
	filename := filepath.Join(dir, bucket+".json")
	if err := os.WriteFile(filename, payload, 0o644); err != nil {
		config.LogError(config.GetLogger(), "persist", "saveBucket", bucket, nil, err)
		return fmt.Errorf("write bucket %s: %w", bucket, err)
	}
	return nil
}

func loadBucket(dir, bucket string, out any) error {
	filename := filepath.Join(dir, bucket+".json")
	payload, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		config.LogError(config.GetLogger(), "persist", "loadBucket", bucket, nil, err)
		return fmt.Errorf("read bucket %s: %w", bucket, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		config.LogError(config.GetLogger(), "persist", "loadBucket", bucket, nil, err)
		return fmt.Errorf("decode bucket %s: %w", bucket, err)
	}
	return nil
}

func validateSnapshot(snapshot *Snapshot) error {
	if err := validateBucket("customers", snapshot.Customers); err != nil {
		return err
	}
	if err := validateBucket("vendors", snapshot.Vendors); err != nil {
		return err
	}
	if err := validateBucket("products", snapshot.Products); err != nil {
		return err
	}
	if err := validateBucket("sales", snapshot.Sales); err != nil {
		return err
	}
	if err := validateBucket("purchases", snapshot.Purchases); err != nil {
		return err
	}
	if err := validateBucket("stockLevels", snapshot.Inventory.StockLevels); err != nil {
		return err
	}
	if err := validateBucket("transactions", snapshot.Inventory.Transactions); err != nil {
		return err
	}
	if err := validateBucket("adjustments", snapshot.Inventory.Adjustments); err != nil {
		return err
	}
	if err := validateBucket("accounts", snapshot.Accounting.Accounts); err != nil {
		return err
	}
	if err := validateBucket("receivables", snapshot.Accounting.Receivables); err != nil {
		return err
	}
	return validateBucket("payables", snapshot.Accounting.Payables)
}

func validateBucket[T any](bucket string, items map[string]T) error {
	for id, item := range items {
		if err := validate.Struct(item); err != nil {
			return fmt.Errorf("bucket %s record %s: %w", bucket, id, err)
		}
	}
	return nil
}

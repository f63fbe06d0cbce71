package reports

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bitbucket.org/pawhaus/backoffice_backend/models"
)

func TestExportAgingSummaryExcel(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	receivables := map[string]models.Receivable{
		"ar-1": receivable("ar-1", "cus-1", now.AddDate(0, 0, -45), 300, models.InvoiceStatusOpen),
	}
	report := GetARAgingSummaryReport(receivables, nil, now)

	filename := filepath.Join(t.TempDir(), "ar-aging.xlsx")
	if err := ExportAgingSummaryExcel(report, "AR Aging Summary", filename); err != nil {
		t.Fatalf("export: %v", err)
	}
	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("exported file is empty")
	}
}

func TestExportFinancialMetricsExcel(t *testing.T) {
	metrics := GetFinancialMetricsReport(map[string]models.Account{
		"acc-1": {Base: models.Base{Id: "acc-1"}, Type: models.AccountTypeAsset, Balance: dec(1000)},
	})

	filename := filepath.Join(t.TempDir(), "metrics.xlsx")
	if err := ExportFinancialMetricsExcel(metrics, filename); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

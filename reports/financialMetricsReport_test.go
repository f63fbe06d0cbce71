package reports

import (
	"testing"

	"bitbucket.org/pawhaus/backoffice_backend/models"
)

func TestFinancialMetricsBuckets(t *testing.T) {
	accounts := map[string]models.Account{
		"acc-1": {Base: models.Base{Id: "acc-1"}, Type: models.AccountTypeAsset, Balance: dec(1000)},
		"acc-2": {Base: models.Base{Id: "acc-2"}, Type: models.AccountTypeAsset, Balance: dec(500)},
		"acc-3": {Base: models.Base{Id: "acc-3"}, Type: models.AccountTypeLiability, Balance: dec(400)},
		"acc-4": {Base: models.Base{Id: "acc-4"}, Type: models.AccountTypeEquity, Balance: dec(300)},
		"acc-5": {Base: models.Base{Id: "acc-5"}, Type: models.AccountTypeRevenue, Balance: dec(900)},
		"acc-6": {Base: models.Base{Id: "acc-6"}, Type: models.AccountTypeExpense, Balance: dec(250)},
	}

	metrics := GetFinancialMetricsReport(accounts)

	if !metrics.TotalAssets.Equal(dec(1500)) {
		t.Fatalf("assets = %s", metrics.TotalAssets)
	}
	if !metrics.TotalLiabilities.Equal(dec(400)) {
		t.Fatalf("liabilities = %s", metrics.TotalLiabilities)
	}
	if !metrics.TotalEquity.Equal(dec(300)) {
		t.Fatalf("equity = %s", metrics.TotalEquity)
	}
	if !metrics.TotalRevenue.Equal(dec(900)) {
		t.Fatalf("revenue = %s", metrics.TotalRevenue)
	}
	if !metrics.TotalExpenses.Equal(dec(250)) {
		t.Fatalf("expenses = %s", metrics.TotalExpenses)
	}
	if !metrics.NetIncome.Equal(dec(650)) {
		t.Fatalf("net income = %s", metrics.NetIncome)
	}
}

func TestFinancialMetricsEmpty(t *testing.T) {
	metrics := GetFinancialMetricsReport(nil)
	if !metrics.NetIncome.IsZero() || !metrics.TotalAssets.IsZero() {
		t.Fatalf("empty metrics = %+v", metrics)
	}
}

package reports

import (
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"github.com/shopspring/decimal"
)

type FinancialMetricsResponse struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetIncome        decimal.Decimal `json:"netIncome"`
}

// GetFinancialMetricsReport sums account balances into the five
// account-type buckets. Balances are taken as stored, signs included,
// and NetIncome is revenue less expenses.
func GetFinancialMetricsReport(accounts map[string]models.Account) *FinancialMetricsResponse {
	response := &FinancialMetricsResponse{}
	for _, account := range accounts {
		switch account.Type {
		case models.AccountTypeAsset:
			response.TotalAssets = response.TotalAssets.Add(account.Balance)
		case models.AccountTypeLiability:
			response.TotalLiabilities = response.TotalLiabilities.Add(account.Balance)
		case models.AccountTypeEquity:
			response.TotalEquity = response.TotalEquity.Add(account.Balance)
		case models.AccountTypeRevenue:
			response.TotalRevenue = response.TotalRevenue.Add(account.Balance)
		case models.AccountTypeExpense:
			response.TotalExpenses = response.TotalExpenses.Add(account.Balance)
		}
	}
	response.NetIncome = response.TotalRevenue.Sub(response.TotalExpenses)
	return response
}

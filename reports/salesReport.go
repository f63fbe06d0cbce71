package reports

import (
	"sort"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"github.com/shopspring/decimal"
)

// GetTotalRevenue sums the order totals of paid and partially paid
// sales orders.
func GetTotalRevenue(orders map[string]models.SalesOrder) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		if order.PaymentStatus == models.PaymentStatusPaid || order.PaymentStatus == models.PaymentStatusPartial {
			total = total.Add(order.Total())
		}
	}
	return total
}

// GetUnpaidAmount sums what is still owed on pending and partially
// paid orders.
func GetUnpaidAmount(orders map[string]models.SalesOrder) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		if order.PaymentStatus == models.PaymentStatusPending || order.PaymentStatus == models.PaymentStatusPartial {
			total = total.Add(order.Total().Sub(order.AmountPaid()))
		}
	}
	return total
}

// GetRecentSalesOrders returns the n most recently created orders,
// newest first.
func GetRecentSalesOrders(orders map[string]models.SalesOrder, n int) []models.SalesOrder {
	recent := make([]models.SalesOrder, 0, len(orders))
	for _, order := range orders {
		recent = append(recent, order)
	}
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

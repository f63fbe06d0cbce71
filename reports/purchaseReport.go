package reports

import (
	"sort"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"github.com/shopspring/decimal"
)

// GetTotalExpenses sums the order totals of received and partially
// received purchase orders.
func GetTotalExpenses(orders map[string]models.PurchaseOrder) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		if order.Status == models.OrderStatusReceived || order.Status == models.OrderStatusPartial {
			total = total.Add(order.Total())
		}
	}
	return total
}

// GetPendingPayments values goods already received on received and
// partially received orders, the amount the vendor will bill for.
func GetPendingPayments(orders map[string]models.PurchaseOrder) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		if order.Status != models.OrderStatusReceived && order.Status != models.OrderStatusPartial {
			continue
		}
		for _, item := range order.Items {
			total = total.Add(item.ReceivedQuantity.Mul(item.UnitPrice))
		}
	}
	return total
}

// GetPendingReceival values the quantity still on the way for ordered
// and partially received orders.
func GetPendingReceival(orders map[string]models.PurchaseOrder) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		if order.Status != models.OrderStatusOrdered && order.Status != models.OrderStatusPartial {
			continue
		}
		for _, item := range order.Items {
			outstanding := item.Quantity.Sub(item.ReceivedQuantity)
			total = total.Add(outstanding.Mul(item.UnitPrice))
		}
	}
	return total
}

// GetRecentPurchaseOrders returns the n most recently created orders,
// newest first.
func GetRecentPurchaseOrders(orders map[string]models.PurchaseOrder, n int) []models.PurchaseOrder {
	recent := make([]models.PurchaseOrder, 0, len(orders))
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

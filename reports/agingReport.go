// Package reports computes pull-based views over the current state of
// the stores. Every function takes the data it needs and a point in
// time; nothing here caches or mutates.
package reports

import (
	"sort"
	"time"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"github.com/shopspring/decimal"
)

type AgingSummaryRow struct {
	PartyId      string                                 `json:"partyId"`
	PartyName    string                                 `json:"partyName"`
	Buckets      map[models.AgingBucket]decimal.Decimal `json:"buckets"`
	Total        decimal.Decimal                        `json:"total"`
	InvoiceCount int                                    `json:"invoiceCount"`
}

type AgingSummaryResponse struct {
	AsOf   time.Time                              `json:"asOf"`
	Rows   []AgingSummaryRow                      `json:"rows"`
	Totals map[models.AgingBucket]decimal.Decimal `json:"totals"`
	Total  decimal.Decimal                        `json:"total"`
}

// GetARAgingSummaryReport buckets the outstanding receivable balances
// by how far past due they are at now, one row per customer. Paid and
// void invoices never appear.
func GetARAgingSummaryReport(receivables map[string]models.Receivable, customers map[string]models.Customer, now time.Time) *AgingSummaryResponse {
	report := newAgingSummary(now)
	for _, ar := range receivables {
		if !ar.Status.Outstanding() {
			continue
		}
		name := ar.CustomerId
		if customer, ok := customers[ar.CustomerId]; ok {
			name = customer.Name()
		}
		report.add(ar.CustomerId, name, ar.DueDate, ar.Balance)
	}
	return report.finish()
}

// GetAPAgingSummaryReport is the vendor-side mirror over payables.
func GetAPAgingSummaryReport(payables map[string]models.Payable, vendors map[string]models.Vendor, now time.Time) *AgingSummaryResponse {
	report := newAgingSummary(now)
	for _, ap := range payables {
		if !ap.Status.Outstanding() {
			continue
		}
		name := ap.VendorId
		if vendor, ok := vendors[ap.VendorId]; ok {
			name = vendor.Name
		}
		report.add(ap.VendorId, name, ap.DueDate, ap.Balance)
	}
	return report.finish()
}

type agingAccumulator struct {
	now  time.Time
	rows map[string]*AgingSummaryRow
}

func newAgingSummary(now time.Time) *agingAccumulator {
	return &agingAccumulator{now: now, rows: map[string]*AgingSummaryRow{}}
}

func (a *agingAccumulator) add(partyId, partyName string, dueDate time.Time, balance decimal.Decimal) {
	row, ok := a.rows[partyId]
	if !ok {
		row = &AgingSummaryRow{
			PartyId:   partyId,
			PartyName: partyName,
			Buckets:   map[models.AgingBucket]decimal.Decimal{},
		}
		a.rows[partyId] = row
	}
	bucket := models.BucketFor(models.DaysOverdue(dueDate, a.now))
	row.Buckets[bucket] = row.Buckets[bucket].Add(balance)
	row.Total = row.Total.Add(balance)
	row.InvoiceCount++
}

func (a *agingAccumulator) finish() *AgingSummaryResponse {
	response := &AgingSummaryResponse{
		AsOf:   a.now,
		Totals: map[models.AgingBucket]decimal.Decimal{},
	}
	for _, row := range a.rows {
		response.Rows = append(response.Rows, *row)
		for bucket, amount := range row.Buckets {
			response.Totals[bucket] = response.Totals[bucket].Add(amount)
		}
		response.Total = response.Total.Add(row.Total)
	}
	sort.Slice(response.Rows, func(i, j int) bool {
		return response.Rows[i].PartyName < response.Rows[j].PartyName
	})
	return response
}

package reports

import (
	"fmt"

	"bitbucket.org/pawhaus/backoffice_backend/models"
	"github.com/xuri/excelize/v2"
)

// ExportAgingSummaryExcel writes one aging summary to filename with a
// column per bucket in order and a totals row at the bottom.
func ExportAgingSummaryExcel(report *AgingSummaryResponse, sheetTitle, filename string) error {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	f.SetCellValue(sheetName, "A1", sheetTitle)
	f.SetCellValue(sheetName, "B1", report.AsOf.Format("2006-01-02"))

	headings := []string{"Party", "Invoices"}
	for _, bucket := range models.AgingBuckets {
		headings = append(headings, string(bucket))
	}
	headings = append(headings, "Total")
	col := 'A'
	for _, h := range headings {
		f.SetCellValue(sheetName, string(col)+"2", h)
		col++
	}

	rowNo := 3
	for _, row := range report.Rows {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(rowNo), row.PartyName)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(rowNo), row.InvoiceCount)
		col := 'C'
		for _, bucket := range models.AgingBuckets {
			f.SetCellValue(sheetName, string(col)+fmt.Sprint(rowNo), row.Buckets[bucket].InexactFloat64())
			col++
		}
		f.SetCellValue(sheetName, string(col)+fmt.Sprint(rowNo), row.Total.InexactFloat64())
		rowNo++
	}

	f.SetCellValue(sheetName, "A"+fmt.Sprint(rowNo), "Total")
	col = 'C'
	for _, bucket := range models.AgingBuckets {
		f.SetCellValue(sheetName, string(col)+fmt.Sprint(rowNo), report.Totals[bucket].InexactFloat64())
		col++
	}
	f.SetCellValue(sheetName, string(col)+fmt.Sprint(rowNo), report.Total.InexactFloat64())

	return f.SaveAs(filename)
}

// ExportFinancialMetricsExcel writes the five metric buckets and net
// income as label/value rows.
func ExportFinancialMetricsExcel(metrics *FinancialMetricsResponse, filename string) error {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	rows := []struct {
		label string
		value float64
	}{
		{"TotalAssets", metrics.TotalAssets.InexactFloat64()},
		{"TotalLiabilities", metrics.TotalLiabilities.InexactFloat64()},
		{"TotalEquity", metrics.TotalEquity.InexactFloat64()},
		{"TotalRevenue", metrics.TotalRevenue.InexactFloat64()},
		{"TotalExpenses", metrics.TotalExpenses.InexactFloat64()},
		{"NetIncome", metrics.NetIncome.InexactFloat64()},
	}
	for i, r := range rows {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+1), r.label)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+1), r.value)
	}

	return f.SaveAs(filename)
}

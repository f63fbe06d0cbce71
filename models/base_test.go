package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCalculateDueDate(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		terms      PaymentTerms
		customDays int
		want       time.Time
	}{
		{PaymentTermsDueOnReceipt, 0, date},
		{PaymentTermsNet15, 0, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)},
		{PaymentTermsNet30, 0, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)},
		{PaymentTermsDueEndOfMonth, 0, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{PaymentTermsDueEndOfNextMonth, 0, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{PaymentTermsCustom, 21, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		if got := CalculateDueDate(date, c.terms, c.customDays); !got.Equal(c.want) {
			t.Errorf("CalculateDueDate(%s) = %s, want %s", c.terms, got, c.want)
		}
	}
}

func TestDaysOverdueAndBuckets(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		daysAgo int
		want    AgingBucket
	}{
		{-5, AgingBucketCurrent},
		{0, AgingBucketCurrent},
		{15, AgingBucket1To30},
		{45, AgingBucket31To60},
		{75, AgingBucket61To90},
		{120, AgingBucket90Plus},
	}
	for _, c := range cases {
		due := now.AddDate(0, 0, -c.daysAgo)
		if got := BucketFor(DaysOverdue(due, now)); got != c.want {
			t.Errorf("%d days overdue classified %s, want %s", c.daysAgo, got, c.want)
		}
	}
}

func TestAccountTypeRejectsUnknownValue(t *testing.T) {
	var account Account
	if err := json.Unmarshal([]byte(`{"id":"acc-1","type":"treasure"}`), &account); err == nil {
		t.Fatal("expected decode error for unknown account type")
	}
	if err := json.Unmarshal([]byte(`{"id":"acc-1","type":"asset"}`), &account); err != nil {
		t.Fatalf("valid type rejected: %v", err)
	}
}

func TestInvoiceStatusOutstanding(t *testing.T) {
	outstanding := map[InvoiceStatus]bool{
		InvoiceStatusOpen:    true,
		InvoiceStatusPartial: true,
		InvoiceStatusOverdue: true,
		InvoiceStatusPaid:    false,
		InvoiceStatusVoid:    false,
	}
	for status, want := range outstanding {
		if got := status.Outstanding(); got != want {
			t.Errorf("%s.Outstanding() = %v, want %v", status, got, want)
		}
	}
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type JournalLine struct {
	AccountId   string          `json:"accountId" validate:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Effect is the signed balance contribution of the line.
func (l JournalLine) Effect() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// JournalEntry is treated as history once posted: it is never mutated
// in place, only replaced through the reverse-then-reapply protocol in
// the accounting workflow.
type JournalEntry struct {
	Base
	EntryNumber string             `json:"entryNumber"`
	Date        time.Time          `json:"date"`
	Reference   string             `json:"reference"`
	Description string             `json:"description"`
	Status      JournalEntryStatus `json:"status"`
	Lines       []JournalLine      `json:"lines" validate:"required,dive"`
}

func (e *JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

func (e *JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Credit)
	}
	return total
}

// IsBalanced reports whether debits equal credits. Posting does not
// enforce this; callers that want strict double entry check it first.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebit().Equal(e.TotalCredit())
}

// Imbalance is TotalDebit minus TotalCredit, zero for balanced entries.
func (e *JournalEntry) Imbalance() decimal.Decimal {
	return e.TotalDebit().Sub(e.TotalCredit())
}

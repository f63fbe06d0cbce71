package workflow

import (
	"errors"
	"fmt"

	"bitbucket.org/pawhaus/backoffice_backend/config"
	"bitbucket.org/pawhaus/backoffice_backend/models"
	"bitbucket.org/pawhaus/backoffice_backend/store"
	"bitbucket.org/pawhaus/backoffice_backend/utils"
	"github.com/shopspring/decimal"
)

var errPaymentOnVoidInvoice = errors.New("cannot record payment on a void invoice")

// AccountingWorkflow owns the chart of accounts, the journal and the
// AR/AP invoices. Account balances are kept equal to the net effect of
// the entries currently in the store through the posting protocol:
// add applies, update reverses then reapplies, delete reverses.
//
// Unbalanced entries are accepted (the dashboard posts single-sided
// corrections); the imbalance is logged so strict callers can audit.
type AccountingWorkflow struct {
	accounts       *store.Store[models.Account]
	journalEntries *store.Store[models.JournalEntry]
	receivables    *store.Store[models.Receivable]
	payables       *store.Store[models.Payable]
	byType         *store.Index
	byCategory     *store.Index
}

func NewAccountingWorkflow() *AccountingWorkflow {
	return &AccountingWorkflow{
		accounts:       store.New[models.Account](),
		journalEntries: store.New[models.JournalEntry](),
		receivables:    store.New[models.Receivable](),
		payables:       store.New[models.Payable](),
		byType:         store.NewIndex(),
		byCategory:     store.NewIndex(),
	}
}

func (w *AccountingWorkflow) Accounts() *store.Store[models.Account] {
	return w.accounts
}

func (w *AccountingWorkflow) JournalEntries() *store.Store[models.JournalEntry] {
	return w.journalEntries
}

func (w *AccountingWorkflow) Receivables() *store.Store[models.Receivable] {
	return w.receivables
}

func (w *AccountingWorkflow) Payables() *store.Store[models.Payable] {
	return w.payables
}

func (w *AccountingWorkflow) AccountsByType(t models.AccountType) []string {
	return w.byType.Bucket(string(t))
}

func (w *AccountingWorkflow) AccountsByCategory(c models.AccountCategory) []string {
	return w.byCategory.Bucket(string(c))
}

func (w *AccountingWorkflow) AddAccount(account models.Account) {
	w.accounts.Set(account.Id, account)
	w.byType.Add(string(account.Type), account.Id)
	w.byCategory.Add(string(account.Category), account.Id)
}

// UpdateAccount applies a partial mutation. Reclassifying type or
// category moves the account between index buckets; balance
// bookkeeping is independent of that.
func (w *AccountingWorkflow) UpdateAccount(id string, mutate func(*models.Account)) error {
	current, ok := w.accounts.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id

	w.byType.Move(string(current.Type), string(updated.Type), id)
	w.byCategory.Move(string(current.Category), string(updated.Category), id)
	w.accounts.Set(id, updated)
	return nil
}

func (w *AccountingWorkflow) DeleteAccount(id string) error {
	current, ok := w.accounts.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	w.accounts.Delete(id)
	w.byType.Remove(string(current.Type), id)
	w.byCategory.Remove(string(current.Category), id)
	return nil
}

// AddJournalEntry stores the entry and applies every line's effect to
// its account. All lines are applied in one uninterrupted pass.
func (w *AccountingWorkflow) AddJournalEntry(entry models.JournalEntry) {
	if !entry.IsBalanced() {
		config.LogWarn(config.GetLogger(), "workflow", "AddJournalEntry", entry.Id,
			fmt.Sprintf("posting unbalanced entry, imbalance=%s", entry.Imbalance()))
	}
	w.journalEntries.Set(entry.Id, entry)
	w.applyLines(entry.Lines, decimal.NewFromInt(1))
}

// UpdateJournalEntry reverses the stored entry's effect, replaces it,
// then reapplies the new lines. The sequence is mandatory: applying a
// delta directly would double-count whenever the line set changed.
func (w *AccountingWorkflow) UpdateJournalEntry(id string, mutate func(*models.JournalEntry)) error {
	current, ok := w.journalEntries.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id

	w.applyLines(current.Lines, decimal.NewFromInt(-1))
	w.journalEntries.Set(id, updated)
	w.applyLines(updated.Lines, decimal.NewFromInt(1))
	return nil
}

// DeleteJournalEntry reverses the entry's effect and removes it.
func (w *AccountingWorkflow) DeleteJournalEntry(id string) error {
	current, ok := w.journalEntries.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	w.applyLines(current.Lines, decimal.NewFromInt(-1))
	w.journalEntries.Delete(id)
	return nil
}

// applyLines adds sign * (debit - credit) to each referenced account.
// A line against an account that has since been deleted is logged and
// skipped; the remaining lines still apply.
func (w *AccountingWorkflow) applyLines(lines []models.JournalLine, sign decimal.Decimal) {
	for _, line := range lines {
		account, ok := w.accounts.Lookup(line.AccountId)
		if !ok {
			config.LogWarn(config.GetLogger(), "workflow", "applyLines", line.AccountId,
				"journal line references a missing account, effect skipped")
			continue
		}
		account.Balance = account.Balance.Add(line.Effect().Mul(sign))
		w.accounts.Set(account.Id, account)
	}
}

func (w *AccountingWorkflow) AddReceivable(ar models.Receivable) {
	w.receivables.Set(ar.Id, ar)
}

func (w *AccountingWorkflow) UpdateReceivable(id string, mutate func(*models.Receivable)) error {
	current, ok := w.receivables.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id
	w.receivables.Set(id, updated)
	return nil
}

func (w *AccountingWorkflow) DeleteReceivable(id string) error {
	if _, ok := w.receivables.Lookup(id); !ok {
		return utils.ErrorRecordNotFound
	}
	w.receivables.Delete(id)
	return nil
}

func (w *AccountingWorkflow) AddPayable(ap models.Payable) {
	w.payables.Set(ap.Id, ap)
}

func (w *AccountingWorkflow) UpdatePayable(id string, mutate func(*models.Payable)) error {
	current, ok := w.payables.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	updated := current
	mutate(&updated)
	updated.Id = current.Id
	w.payables.Set(id, updated)
	return nil
}

func (w *AccountingWorkflow) DeletePayable(id string) error {
	if _, ok := w.payables.Lookup(id); !ok {
		return utils.ErrorRecordNotFound
	}
	w.payables.Delete(id)
	return nil
}

// RecordReceivablePayment appends a payment to the invoice history and
// reduces the balance. Void invoices do not accept payments.
func (w *AccountingWorkflow) RecordReceivablePayment(id string, payment models.InvoicePayment) error {
	current, ok := w.receivables.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	if current.Status == models.InvoiceStatusVoid {
		return errPaymentOnVoidInvoice
	}
	return w.UpdateReceivable(id, func(ar *models.Receivable) {
		ar.Payments = append(append([]models.InvoicePayment{}, ar.Payments...), payment)
		ar.Balance = ar.Balance.Sub(payment.Amount)
		ar.Status = invoiceStatusAfterPayment(ar.Balance, ar.Amount)
	})
}

func (w *AccountingWorkflow) RecordPayablePayment(id string, payment models.InvoicePayment) error {
	current, ok := w.payables.Lookup(id)
	if !ok {
		return utils.ErrorRecordNotFound
	}
	if current.Status == models.InvoiceStatusVoid {
		return errPaymentOnVoidInvoice
	}
	return w.UpdatePayable(id, func(ap *models.Payable) {
		ap.Payments = append(append([]models.InvoicePayment{}, ap.Payments...), payment)
		ap.Balance = ap.Balance.Sub(payment.Amount)
		ap.Status = invoiceStatusAfterPayment(ap.Balance, ap.Amount)
	})
}

func invoiceStatusAfterPayment(balance, amount decimal.Decimal) models.InvoiceStatus {
	switch {
	case !balance.IsPositive():
		return models.InvoiceStatusPaid
	case balance.LessThan(amount):
		return models.InvoiceStatusPartial
	default:
		return models.InvoiceStatusOpen
	}
}

type AccountingSnapshot struct {
	Accounts       map[string]models.Account      `json:"accounts"`
	JournalEntries map[string]models.JournalEntry `json:"journalEntries"`
	Receivables    map[string]models.Receivable   `json:"receivables"`
	Payables       map[string]models.Payable      `json:"payables"`
}

func (w *AccountingWorkflow) Load(snapshot AccountingSnapshot) {
	w.accounts.Replace(snapshot.Accounts)
	w.journalEntries.Replace(snapshot.JournalEntries)
	w.receivables.Replace(snapshot.Receivables)
	w.payables.Replace(snapshot.Payables)
	w.byType.Rebuild(func(yield func(key, id string)) {
		for id, a := range snapshot.Accounts {
			yield(string(a.Type), id)
		}
	})
	w.byCategory.Rebuild(func(yield func(key, id string)) {
		for id, a := range snapshot.Accounts {
			yield(string(a.Category), id)
		}
	})
}

func (w *AccountingWorkflow) Snapshot() AccountingSnapshot {
	return AccountingSnapshot{
		Accounts:       w.accounts.Get(),
		JournalEntries: w.journalEntries.Get(),
		Receivables:    w.receivables.Get(),
		Payables:       w.payables.Get(),
	}
}

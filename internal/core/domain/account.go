package domain

import (
	"github.com/shopspring/decimal"
)

// BalanceSnapshot is one entry of an account's balance history: the account's
// balance as recorded on a given date.
type BalanceSnapshot struct {
	Date    Date            `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// Account represents a named ledger account within the core domain.
// This is the primary representation used by services.
//
// Balance always equals the value of the most recently applied debit or
// credit; History is an audit trail and is not authoritative for the current
// balance.
type Account struct {
	Name    string            `json:"name"`
	Balance decimal.Decimal   `json:"balance"`
	History []BalanceSnapshot `json:"balanceHistory"`
}

// NewAccount creates an account with an opening balance and a history seeded
// with today's snapshot.
func NewAccount(name string, balance decimal.Decimal) Account {
	return Account{
		Name:    name,
		Balance: balance,
		History: []BalanceSnapshot{{Date: Today(), Balance: balance}},
	}
}

// Debit increases the balance by amount (funds received, personal-account
// convention).
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Credit decreases the balance by amount (funds paid out).
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

// RecordBalance stores balance as the snapshot for date. History holds at
// most one entry per date: any existing entry for the same date is replaced,
// so a later read is never served a stale same-day value.
func (a *Account) RecordBalance(date Date, balance decimal.Decimal) {
	kept := make([]BalanceSnapshot, 0, len(a.History)+1)
	for _, snap := range a.History {
		if snap.Date != date {
			kept = append(kept, snap)
		}
	}
	a.History = append(kept, BalanceSnapshot{Date: date, Balance: balance})
}

// BalanceOn returns the balance recorded for date. The second return value is
// false when no snapshot exists for that date.
func (a *Account) BalanceOn(date Date) (decimal.Decimal, bool) {
	for _, snap := range a.History {
		if snap.Date == date {
			return snap.Balance, true
		}
	}
	return decimal.Decimal{}, false
}

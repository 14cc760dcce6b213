package domain

import "github.com/shopspring/decimal"

// Transaction represents a single transfer between two accounts.
//
// PayerName and RecipientName reference accounts by value; no foreign-key
// check is made, the accounts are trusted to exist by the time the
// transaction is read back. ID is assigned at construction, never by the
// store, and never changes across updates.
type Transaction struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PayerName     string          `json:"payerName"`
	RecipientName string          `json:"recipientName"`
	Date          Date            `json:"date"`
}

// Involves reports whether name participates in the transaction as payer or
// recipient.
func (t Transaction) Involves(name string) bool {
	return t.PayerName == name || t.RecipientName == name
}

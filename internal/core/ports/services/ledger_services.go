package services

import (
	"context"
	"io"

	"github.com/moazna/moazna/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc is the orchestration surface over the account and transaction
// repositories: double-entry recording, batch import, and read delegation.
type LedgerSvc interface {
	// RecordTransaction applies one double-entry transaction: payer and
	// recipient are resolved or auto-provisioned at zero balance, the
	// transaction is persisted, then the payer is credited and the recipient
	// debited by amount, each with a balance snapshot at date. The sequence
	// is not atomic; a mid-sequence failure surfaces apperrors.ErrPartialUpdate
	// and leaves the earlier writes committed.
	RecordTransaction(ctx context.Context, amount decimal.Decimal, payerName, recipientName string, date domain.Date) (*domain.Transaction, error)

	// ImportTransactions reads CSV rows of the form
	// "date,payer,recipient,amount" (no header) and records them in order.
	// A malformed row aborts the batch with apperrors.ErrMalformedInput
	// without rolling back prior rows. On success it returns the full
	// current transaction listing.
	ImportTransactions(ctx context.Context, r io.Reader) ([]domain.Transaction, error)

	// GetAccountBalance returns the named account's balance recorded for date.
	GetAccountBalance(ctx context.Context, name string, date domain.Date) (decimal.Decimal, error)

	// GetAccountByName returns one account or apperrors.ErrNotFound.
	GetAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// Accounts returns the full account listing.
	Accounts(ctx context.Context) ([]domain.Account, error)

	// Transactions returns the full transaction listing.
	Transactions(ctx context.Context) ([]domain.Transaction, error)

	// GetTransactionByID returns one transaction or apperrors.ErrNotFound.
	GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error)

	// ListTransactionsByName lists transactions where name is payer or
	// recipient.
	ListTransactionsByName(ctx context.Context, name string) ([]domain.Transaction, error)

	// ListTransactionsByPayer lists transactions where name is the payer.
	ListTransactionsByPayer(ctx context.Context, name string) ([]domain.Transaction, error)

	// ListTransactionsByRecipient lists transactions where name is the
	// recipient.
	ListTransactionsByRecipient(ctx context.Context, name string) ([]domain.Transaction, error)
}

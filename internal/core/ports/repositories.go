package ports

import (
	"context"

	"github.com/moazna/moazna/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IDGenerator produces unique identifiers for newly constructed transactions.
// It is pluggable so tests can make ids deterministic.
type IDGenerator func() string

// AccountRepository defines the persistence operations for Accounts.
type AccountRepository interface {
	// Create persists a new account and returns it round-tripped through the
	// store. It fails with apperrors.ErrDuplicate when the name is taken.
	Create(ctx context.Context, name string, balance decimal.Decimal) (*domain.Account, error)

	// List returns every account in the store's current order. Callers must
	// not depend on that order.
	List(ctx context.Context) ([]domain.Account, error)

	// GetByName returns the account or apperrors.ErrNotFound.
	GetByName(ctx context.Context, name string) (*domain.Account, error)

	// Update overwrites the stored account matching account.Name and returns
	// the refreshed domain object.
	Update(ctx context.Context, account domain.Account) (*domain.Account, error)

	// Delete removes the account by name.
	Delete(ctx context.Context, account domain.Account) error

	// GetBalance returns the balance recorded for date. "account not found"
	// and "no entry for that date" are distinct apperrors.ErrNotFound
	// wrappings.
	GetBalance(ctx context.Context, name string, date domain.Date) (decimal.Decimal, error)

	// UpdateBalanceHistory records a balance snapshot for date on the named
	// account and persists it.
	UpdateBalanceHistory(ctx context.Context, name string, balance decimal.Decimal, date domain.Date) error
}

// TransactionRepository defines the persistence operations for Transactions.
type TransactionRepository interface {
	// Create constructs a transaction with a freshly generated id, persists
	// it, and returns it round-tripped through the store.
	Create(ctx context.Context, amount decimal.Decimal, payerName, recipientName string, date domain.Date) (*domain.Transaction, error)

	// List returns every saved transaction.
	List(ctx context.Context) ([]domain.Transaction, error)

	// GetByID returns the transaction or apperrors.ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)

	// ListByPayer returns the transactions where name is the payer.
	ListByPayer(ctx context.Context, name string) ([]domain.Transaction, error)

	// ListByRecipient returns the transactions where name is the recipient.
	ListByRecipient(ctx context.Context, name string) ([]domain.Transaction, error)

	// ListByName returns the union of ListByPayer and ListByRecipient, in
	// payer-then-recipient order. A transaction whose payer and recipient are
	// the same name appears twice; no deduplication is applied.
	ListByName(ctx context.Context, name string) ([]domain.Transaction, error)

	// Update overwrites the stored transaction matching txn.ID. The id never
	// changes across updates.
	Update(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// Delete removes the transaction by id.
	Delete(ctx context.Context, txn domain.Transaction) error
}

// Package record adapts domain objects to and from the generic record
// datastore. It plays the role a SQL adapter would for a relational backend:
// the repositories own the collection names and identifier attributes and
// translate store-level absence into apperrors sentinels.
package record

import (
	"context"
	"fmt"

	"github.com/moazna/moazna/internal/apperrors"
	"github.com/moazna/moazna/internal/core/domain"
	"github.com/moazna/moazna/internal/core/ports"
	"github.com/moazna/moazna/internal/models"
	"github.com/shopspring/decimal"
)

const accountsEntity = "accounts"

// AccountRepository persists accounts in the "accounts" collection keyed by
// name.
type AccountRepository struct {
	store ports.Datastore
}

// NewAccountRepository creates a repository over the given store, declaring
// the accounts collection.
func NewAccountRepository(store ports.Datastore) *AccountRepository {
	store.AddEntity(accountsEntity)
	return &AccountRepository{store: store}
}

var _ ports.AccountRepository = (*AccountRepository)(nil)

// Create persists a new account and returns it round-tripped through the
// store. Names are unique: an existing account with the same name fails fast
// with ErrDuplicate.
func (r *AccountRepository) Create(ctx context.Context, name string, balance decimal.Decimal) (*domain.Account, error) {
	if _, ok := r.store.Retrieve(accountsEntity, models.AccountNameAttr, name); ok {
		return nil, fmt.Errorf("%w: account %q", apperrors.ErrDuplicate, name)
	}
	account := domain.NewAccount(name, balance)
	stored := r.store.Create(accountsEntity, models.AccountToRecord(account))
	created, err := models.AccountFromRecord(stored)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns every account in the store's current order.
func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	records := r.store.Filter(accountsEntity, models.AccountNameAttr)
	accounts := make([]domain.Account, 0, len(records))
	for _, rec := range records {
		account, err := models.AccountFromRecord(rec)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// GetByName returns the matching account or ErrNotFound.
func (r *AccountRepository) GetByName(ctx context.Context, name string) (*domain.Account, error) {
	rec, ok := r.store.Retrieve(accountsEntity, models.AccountNameAttr, name)
	if !ok {
		return nil, fmt.Errorf("%w: account %q", apperrors.ErrNotFound, name)
	}
	account, err := models.AccountFromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Update overwrites the stored account matching account.Name and returns the
// refreshed domain object.
func (r *AccountRepository) Update(ctx context.Context, account domain.Account) (*domain.Account, error) {
	rec, ok := r.store.Update(accountsEntity, models.AccountToRecord(account), models.AccountNameAttr)
	if !ok {
		return nil, fmt.Errorf("%w: account %q", apperrors.ErrNotFound, account.Name)
	}
	updated, err := models.AccountFromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the account by name. No-op when absent.
func (r *AccountRepository) Delete(ctx context.Context, account domain.Account) error {
	r.store.Delete(accountsEntity, models.AccountNameAttr, account.Name)
	return nil
}

// GetBalance returns the balance recorded for date. A missing account and a
// missing snapshot are both ErrNotFound, distinguished by the wrapped message.
func (r *AccountRepository) GetBalance(ctx context.Context, name string, date domain.Date) (decimal.Decimal, error) {
	account, err := r.GetByName(ctx, name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	balance, ok := account.BalanceOn(date)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: account %q has no balance entry for %s", apperrors.ErrNotFound, name, date)
	}
	return balance, nil
}

// UpdateBalanceHistory records a balance snapshot for date on the named
// account and persists the updated account.
func (r *AccountRepository) UpdateBalanceHistory(ctx context.Context, name string, balance decimal.Decimal, date domain.Date) error {
	account, err := r.GetByName(ctx, name)
	if err != nil {
		return err
	}
	account.RecordBalance(date, balance)
	_, err = r.Update(ctx, *account)
	return err
}

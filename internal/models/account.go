// Package models maps domain objects to and from the flat records held by the
// datastore. The attribute names here are the storage schema; repositories
// filter and key on them.
package models

import (
	"fmt"

	"github.com/moazna/moazna/internal/apperrors"
	"github.com/moazna/moazna/internal/core/domain"
	"github.com/moazna/moazna/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Attribute names of the accounts collection.
const (
	AccountNameAttr    = "name"
	AccountBalanceAttr = "balance"
	AccountHistoryAttr = "balance_history"
)

// AccountToRecord flattens an account into a datastore record. The history
// slice is copied so the stored record never aliases the domain object.
func AccountToRecord(a domain.Account) ports.Record {
	history := make([]domain.BalanceSnapshot, len(a.History))
	copy(history, a.History)
	return ports.Record{
		AccountNameAttr:    a.Name,
		AccountBalanceAttr: a.Balance,
		AccountHistoryAttr: history,
	}
}

// AccountFromRecord rebuilds an account from a stored record.
func AccountFromRecord(rec ports.Record) (domain.Account, error) {
	name, ok := rec[AccountNameAttr].(string)
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account record has no name attribute", apperrors.ErrValidation)
	}
	balance, ok := rec[AccountBalanceAttr].(decimal.Decimal)
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account record %q has no balance attribute", apperrors.ErrValidation, name)
	}
	stored, ok := rec[AccountHistoryAttr].([]domain.BalanceSnapshot)
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: account record %q has no balance history attribute", apperrors.ErrValidation, name)
	}
	history := make([]domain.BalanceSnapshot, len(stored))
	copy(history, stored)
	return domain.Account{
		Name:    name,
		Balance: balance,
		History: history,
	}, nil
}

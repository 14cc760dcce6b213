package dto

import (
	"github.com/moazna/moazna/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSnapshotResponse is one balance-history entry of an account.
type BalanceSnapshotResponse struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Name           string                    `json:"name"`
	Balance        decimal.Decimal           `json:"balance"`
	BalanceHistory []BalanceSnapshotResponse `json:"balanceHistory"`
}

// AccountBalanceResponse defines the data returned for a point-in-time
// balance query.
type AccountBalanceResponse struct {
	Name    string          `json:"name"`
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	history := make([]BalanceSnapshotResponse, len(acc.History))
	for i, snap := range acc.History {
		history[i] = BalanceSnapshotResponse{Date: snap.Date, Balance: snap.Balance}
	}
	return AccountResponse{
		Name:           acc.Name,
		Balance:        acc.Balance,
		BalanceHistory: history,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}

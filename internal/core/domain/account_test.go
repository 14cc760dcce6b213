package domain_test

import (
	"testing"

	"github.com/moazna/moazna/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_SeedsHistory(t *testing.T) {
	account := domain.NewAccount("mr payer", decimal.NewFromInt(50))

	require.Len(t, account.History, 1)
	assert.Equal(t, domain.Today(), account.History[0].Date)
	assert.True(t, account.History[0].Balance.Equal(decimal.NewFromInt(50)))
}

func TestAccount_DebitThenCreditRestoresBalance(t *testing.T) {
	account := domain.NewAccount("mr payer", decimal.NewFromInt(10))
	amount := decimal.RequireFromString("42.50")

	account.Debit(amount)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("52.50")))

	account.Credit(amount)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(10)))
}

func TestAccount_RecordBalance(t *testing.T) {
	tests := []struct {
		name        string
		writes      []domain.BalanceSnapshot
		wantEntries int
		wantDate    domain.Date
		wantBalance decimal.Decimal
	}{
		{
			name: "distinct dates accumulate",
			writes: []domain.BalanceSnapshot{
				{Date: "2017-09-01", Balance: decimal.NewFromInt(100)},
				{Date: "2017-09-02", Balance: decimal.NewFromInt(80)},
			},
			wantEntries: 2,
			wantDate:    "2017-09-02",
			wantBalance: decimal.NewFromInt(80),
		},
		{
			name: "same date replaces instead of duplicating",
			writes: []domain.BalanceSnapshot{
				{Date: "2017-09-01", Balance: decimal.NewFromInt(100)},
				{Date: "2017-09-01", Balance: decimal.NewFromInt(77)},
			},
			wantEntries: 1,
			wantDate:    "2017-09-01",
			wantBalance: decimal.NewFromInt(77),
		},
		{
			name: "differently formatted date is a different date",
			writes: []domain.BalanceSnapshot{
				{Date: "2017-09-01", Balance: decimal.NewFromInt(100)},
				{Date: "2017-9-1", Balance: decimal.NewFromInt(77)},
			},
			wantEntries: 2,
			wantDate:    "2017-9-1",
			wantBalance: decimal.NewFromInt(77),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := domain.Account{Name: "mr payer"}
			for _, w := range tt.writes {
				account.RecordBalance(w.Date, w.Balance)
			}

			assert.Len(t, account.History, tt.wantEntries)
			got, ok := account.BalanceOn(tt.wantDate)
			require.True(t, ok)
			assert.True(t, got.Equal(tt.wantBalance))
		})
	}
}

func TestAccount_BalanceOnMissingDate(t *testing.T) {
	account := domain.Account{Name: "mr payer"}
	account.RecordBalance("2017-09-01", decimal.NewFromInt(100))

	_, ok := account.BalanceOn("2017-09-02")
	assert.False(t, ok)
}

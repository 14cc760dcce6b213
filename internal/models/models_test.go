package models_test

import (
	"testing"

	"github.com/moazna/moazna/internal/core/domain"
	"github.com/moazna/moazna/internal/core/ports"
	"github.com/moazna/moazna/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRecordRoundTrip(t *testing.T) {
	account := domain.Account{
		Name:    "mr payer",
		Balance: decimal.RequireFromString("-100"),
		History: []domain.BalanceSnapshot{
			{Date: "2017-09-01", Balance: decimal.NewFromInt(-123)},
			{Date: "2017-09-02", Balance: decimal.NewFromInt(-100)},
		},
	}

	got, err := models.AccountFromRecord(models.AccountToRecord(account))
	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountToRecordCopiesHistory(t *testing.T) {
	account := domain.NewAccount("mr payer", decimal.Zero)
	rec := models.AccountToRecord(account)

	account.History[0].Balance = decimal.NewFromInt(999)

	stored := rec[models.AccountHistoryAttr].([]domain.BalanceSnapshot)
	assert.True(t, stored[0].Balance.Equal(decimal.Zero))
}

func TestAccountFromRecordRejectsBadShape(t *testing.T) {
	_, err := models.AccountFromRecord(ports.Record{models.AccountNameAttr: "mr payer"})
	assert.Error(t, err)
}

func TestTransactionRecordRoundTrip(t *testing.T) {
	txn := domain.Transaction{
		ID:            "txn-1",
		Amount:        decimal.RequireFromString("42.50"),
		PayerName:     "mr payer",
		RecipientName: "mr recipient",
		Date:          "2017-09-01",
	}

	got, err := models.TransactionFromRecord(models.TransactionToRecord(txn))
	require.NoError(t, err)
	assert.Equal(t, txn, got)
}

func TestTransactionFromRecordRejectsBadShape(t *testing.T) {
	_, err := models.TransactionFromRecord(ports.Record{models.TxnIDAttr: "txn-1"})
	assert.Error(t, err)
}

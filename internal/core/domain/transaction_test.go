package domain_test

import (
	"testing"

	"github.com/moazna/moazna/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Involves(t *testing.T) {
	txn := domain.Transaction{
		ID:            "txn-1",
		Amount:        decimal.NewFromInt(123),
		PayerName:     "mr payer",
		RecipientName: "mr recipient",
		Date:          "2017-09-01",
	}

	assert.True(t, txn.Involves("mr payer"))
	assert.True(t, txn.Involves("mr recipient"))
	assert.False(t, txn.Involves("mr stranger"))
}

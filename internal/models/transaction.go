package models

import (
	"fmt"

	"github.com/moazna/moazna/internal/apperrors"
	"github.com/moazna/moazna/internal/core/domain"
	"github.com/moazna/moazna/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Attribute names of the transactions collection.
const (
	TxnIDAttr        = "id"
	TxnAmountAttr    = "amount"
	TxnPayerAttr     = "payer_name"
	TxnRecipientAttr = "recipient_name"
	TxnDateAttr      = "date"
)

// TransactionToRecord flattens a transaction into a datastore record.
func TransactionToRecord(t domain.Transaction) ports.Record {
	return ports.Record{
		TxnIDAttr:        t.ID,
		TxnAmountAttr:    t.Amount,
		TxnPayerAttr:     t.PayerName,
		TxnRecipientAttr: t.RecipientName,
		TxnDateAttr:      t.Date,
	}
}

// TransactionFromRecord rebuilds a transaction from a stored record.
func TransactionFromRecord(rec ports.Record) (domain.Transaction, error) {
	id, ok := rec[TxnIDAttr].(string)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: transaction record has no id attribute", apperrors.ErrValidation)
	}
	amount, ok := rec[TxnAmountAttr].(decimal.Decimal)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: transaction record %s has no amount attribute", apperrors.ErrValidation, id)
	}
	payer, ok := rec[TxnPayerAttr].(string)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: transaction record %s has no payer attribute", apperrors.ErrValidation, id)
	}
	recipient, ok := rec[TxnRecipientAttr].(string)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: transaction record %s has no recipient attribute", apperrors.ErrValidation, id)
	}
	date, ok := rec[TxnDateAttr].(string)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("%w: transaction record %s has no date attribute", apperrors.ErrValidation, id)
	}
	return domain.Transaction{
		ID:            id,
		Amount:        amount,
		PayerName:     payer,
		RecipientName: recipient,
		Date:          date,
	}, nil
}

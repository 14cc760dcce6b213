package dto

import (
	"github.com/moazna/moazna/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a transaction.
// The date is an opaque ISO-formatted day; the API requires the strict
// zero-padded form even though the ledger compares dates by string equality.
type RecordTransactionRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PayerName     string          `json:"payerName" binding:"required"`
	RecipientName string          `json:"recipientName" binding:"required"`
	Date          string          `json:"date" binding:"required,isodate"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	PayerName     string          `json:"payerName"`
	RecipientName string          `json:"recipientName"`
	Date          string          `json:"date"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ImportTransactionsResponse reports an import batch: how many rows now make
// up the ledger and the full listing after the batch.
type ImportTransactionsResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.ID,
		Amount:        txn.Amount,
		PayerName:     txn.PayerName,
		RecipientName: txn.RecipientName,
		Date:          txn.Date,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

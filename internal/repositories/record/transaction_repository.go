package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/moazna/moazna/internal/apperrors"
	"github.com/moazna/moazna/internal/core/domain"
	"github.com/moazna/moazna/internal/core/ports"
	"github.com/moazna/moazna/internal/models"
	"github.com/shopspring/decimal"
)

const transactionsEntity = "transactions"

// TransactionRepository persists transactions in the "transactions"
// collection keyed by id.
type TransactionRepository struct {
	store ports.Datastore
	newID ports.IDGenerator
}

// TransactionRepositoryOption is a functional option for configuring the
// transaction repository.
type TransactionRepositoryOption func(*TransactionRepository)

// WithIDGenerator overrides the transaction id generator, e.g. to make ids
// deterministic in tests.
func WithIDGenerator(gen ports.IDGenerator) TransactionRepositoryOption {
	return func(r *TransactionRepository) {
		r.newID = gen
	}
}

// NewTransactionRepository creates a repository over the given store,
// declaring the transactions collection. Ids default to random UUIDs.
func NewTransactionRepository(store ports.Datastore, options ...TransactionRepositoryOption) *TransactionRepository {
	store.AddEntity(transactionsEntity)
	r := &TransactionRepository{store: store, newID: uuid.NewString}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ ports.TransactionRepository = (*TransactionRepository)(nil)

// Create constructs a transaction with a freshly generated id, persists it,
// and returns it round-tripped through the store.
func (r *TransactionRepository) Create(ctx context.Context, amount decimal.Decimal, payerName, recipientName string, date domain.Date) (*domain.Transaction, error) {
	txn := domain.Transaction{
		ID:            r.newID(),
		Amount:        amount,
		PayerName:     payerName,
		RecipientName: recipientName,
		Date:          date,
	}
	stored := r.store.Create(transactionsEntity, models.TransactionToRecord(txn))
	created, err := models.TransactionFromRecord(stored)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns every saved transaction.
func (r *TransactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.listBy(models.TxnIDAttr)
}

// GetByID returns the matching transaction or ErrNotFound.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	rec, ok := r.store.Retrieve(transactionsEntity, models.TxnIDAttr, id)
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, id)
	}
	txn, err := models.TransactionFromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListByPayer returns the transactions where name is the payer.
func (r *TransactionRepository) ListByPayer(ctx context.Context, name string) ([]domain.Transaction, error) {
	return r.listBy(models.TxnPayerAttr, name)
}

// ListByRecipient returns the transactions where name is the recipient.
func (r *TransactionRepository) ListByRecipient(ctx context.Context, name string) ([]domain.Transaction, error) {
	return r.listBy(models.TxnRecipientAttr, name)
}

// ListByName returns every transaction where name is payer or recipient, in
// payer-then-recipient order. A self-payment appears twice.
func (r *TransactionRepository) ListByName(ctx context.Context, name string) ([]domain.Transaction, error) {
	asPayer, err := r.ListByPayer(ctx, name)
	if err != nil {
		return nil, err
	}
	asRecipient, err := r.ListByRecipient(ctx, name)
	if err != nil {
		return nil, err
	}
	return append(asPayer, asRecipient...), nil
}

// Update overwrites the stored transaction matching txn.ID and returns the
// refreshed domain object. The id never changes across updates.
func (r *TransactionRepository) Update(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	rec, ok := r.store.Update(transactionsEntity, models.TransactionToRecord(txn), models.TxnIDAttr)
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txn.ID)
	}
	updated, err := models.TransactionFromRecord(rec)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the transaction by id. No-op when absent.
func (r *TransactionRepository) Delete(ctx context.Context, txn domain.Transaction) error {
	r.store.Delete(transactionsEntity, models.TxnIDAttr, txn.ID)
	return nil
}

func (r *TransactionRepository) listBy(key string, values ...any) ([]domain.Transaction, error) {
	records := r.store.Filter(transactionsEntity, key, values...)
	txns := make([]domain.Transaction, 0, len(records))
	for _, rec := range records {
		txn, err := models.TransactionFromRecord(rec)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/moazna/moazna/internal/apperrors"
	"github.com/moazna/moazna/internal/core/domain"
	"github.com/moazna/moazna/internal/core/ports"
	portssvc "github.com/moazna/moazna/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// importFieldCount is the number of positional fields in an import row:
// date, payer, recipient, amount.
const importFieldCount = 4

// LedgerService enforces double-entry recording semantics across the account
// and transaction repositories. The ledger owns both repositories; each holds
// a shared reference to one datastore instance.
type LedgerService struct {
	BaseService
	accountRepo ports.AccountRepository
	txnRepo     ports.TransactionRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo ports.AccountRepository, txnRepo ports.TransactionRepository) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.LedgerSvc = (*LedgerService)(nil)

// RecordTransaction records one double-entry transaction: the payer's balance
// decreases by amount and the recipient's increases by amount, each persisted
// with a balance snapshot at date. Participants unknown to the ledger are
// auto-provisioned at zero balance; payers may legitimately go negative.
//
// The sequence (create transaction, apply payer entry, apply recipient entry)
// is not atomic. A failure after the transaction row is committed surfaces
// ErrPartialUpdate and leaves the earlier writes in place.
func (s *LedgerService) RecordTransaction(ctx context.Context, amount decimal.Decimal, payerName, recipientName string, date domain.Date) (*domain.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive, got %s", apperrors.ErrValidation, amount)
	}

	if _, err := s.resolveAccount(ctx, payerName); err != nil {
		return nil, err
	}
	if _, err := s.resolveAccount(ctx, recipientName); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.Create(ctx, amount, payerName, recipientName, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction",
			slog.String("payer", payerName),
			slog.String("recipient", recipientName))
		return nil, err
	}

	// Payer entry first, then recipient. Each applies against a fresh read so
	// a self-payment nets to zero instead of clobbering one side.
	if err := s.applyEntry(ctx, payerName, amount.Neg(), date); err != nil {
		return nil, fmt.Errorf("%w: transaction %s recorded but payer %q entry not applied: %v", apperrors.ErrPartialUpdate, txn.ID, payerName, err)
	}
	if err := s.applyEntry(ctx, recipientName, amount, date); err != nil {
		return nil, fmt.Errorf("%w: transaction %s recorded and payer %q credited but recipient %q entry not applied: %v", apperrors.ErrPartialUpdate, txn.ID, payerName, recipientName, err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.ID),
		slog.String("payer", payerName),
		slog.String("recipient", recipientName),
		slog.String("amount", amount.String()),
		slog.String("date", date))
	return txn, nil
}

// ImportTransactions reads CSV rows of the form "date,payer,recipient,amount"
// (no header) and records them in file order. A malformed row aborts the
// batch without rolling back rows already committed. On success it returns
// the full current transaction listing.
func (s *LedgerService) ImportTransactions(ctx context.Context, r io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = importFieldCount
	reader.TrimLeadingSpace = true

	line := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", apperrors.ErrMalformedInput, line, err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad amount %q: %v", apperrors.ErrMalformedInput, line, row[3], err)
		}
		if _, err := s.RecordTransaction(ctx, amount, row[1], row[2], row[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	s.LogInfo(ctx, "Import completed", slog.Int("rows", line))
	return s.txnRepo.List(ctx)
}

// GetAccountBalance returns the named account's balance recorded for date.
func (s *LedgerService) GetAccountBalance(ctx context.Context, name string, date domain.Date) (decimal.Decimal, error) {
	return s.accountRepo.GetBalance(ctx, name, date)
}

// GetAccountByName returns one account or ErrNotFound.
func (s *LedgerService) GetAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	return s.accountRepo.GetByName(ctx, name)
}

// Accounts returns the full account listing.
func (s *LedgerService) Accounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.List(ctx)
}

// Transactions returns the full transaction listing.
func (s *LedgerService) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.List(ctx)
}

// GetTransactionByID returns one transaction or ErrNotFound.
func (s *LedgerService) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.txnRepo.GetByID(ctx, id)
}

// ListTransactionsByName lists transactions where name is payer or recipient.
func (s *LedgerService) ListTransactionsByName(ctx context.Context, name string) ([]domain.Transaction, error) {
	return s.txnRepo.ListByName(ctx, name)
}

// ListTransactionsByPayer lists transactions where name is the payer.
func (s *LedgerService) ListTransactionsByPayer(ctx context.Context, name string) ([]domain.Transaction, error) {
	return s.txnRepo.ListByPayer(ctx, name)
}

// ListTransactionsByRecipient lists transactions where name is the recipient.
func (s *LedgerService) ListTransactionsByRecipient(ctx context.Context, name string) ([]domain.Transaction, error) {
	return s.txnRepo.ListByRecipient(ctx, name)
}

// resolveAccount returns the named account, creating it at zero balance the
// first time the name appears.
func (s *LedgerService) resolveAccount(ctx context.Context, name string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByName(ctx, name)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	s.LogDebug(ctx, "Auto-provisioning account", slog.String("name", name))
	return s.accountRepo.Create(ctx, name, decimal.Zero)
}

// applyEntry adjusts the named account's balance by delta, persists it, and
// records a balance snapshot at date.
func (s *LedgerService) applyEntry(ctx context.Context, name string, delta decimal.Decimal, date domain.Date) error {
	account, err := s.accountRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if delta.IsNegative() {
		account.Credit(delta.Neg())
	} else {
		account.Debit(delta)
	}
	if _, err := s.accountRepo.Update(ctx, *account); err != nil {
		return err
	}
	return s.accountRepo.UpdateBalanceHistory(ctx, name, account.Balance, date)
}

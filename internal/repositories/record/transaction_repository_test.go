package record_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/moazna/moazna/internal/apperrors"
	"github.com/moazna/moazna/internal/datastore/memory"
	"github.com/moazna/moazna/internal/repositories/record"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *record.TransactionRepository
}

func (suite *TransactionRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	// Deterministic ids so tests can reference them.
	seq := 0
	suite.repo = record.NewTransactionRepository(memory.NewStore(), record.WithIDGenerator(func() string {
		seq++
		return fmt.Sprintf("txn-%d", seq)
	}))
}

func (suite *TransactionRepositoryTestSuite) TestCreate() {
	txn, err := suite.repo.Create(suite.ctx, decimal.NewFromInt(123), "mr payer", "mr recipient", "2017-09-01")

	suite.Require().NoError(err)
	suite.Equal("txn-1", txn.ID)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(123)))
	suite.Equal("mr payer", txn.PayerName)
	suite.Equal("mr recipient", txn.RecipientName)
	suite.Equal("2017-09-01", txn.Date)
}

func (suite *TransactionRepositoryTestSuite) TestGetByID() {
	created, err := suite.repo.Create(suite.ctx, decimal.NewFromInt(123), "mr payer", "mr recipient", "2017-09-01")
	suite.Require().NoError(err)

	txn, err := suite.repo.GetByID(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.Equal(created.ID, txn.ID)

	_, err = suite.repo.GetByID(suite.ctx, "txn-404")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionRepositoryTestSuite) TestListByRoles() {
	_, err := suite.repo.Create(suite.ctx, decimal.NewFromInt(1), "alice", "bob", "2017-09-01")
	suite.Require().NoError(err)
	_, err = suite.repo.Create(suite.ctx, decimal.NewFromInt(2), "bob", "carol", "2017-09-02")
	suite.Require().NoError(err)
	_, err = suite.repo.Create(suite.ctx, decimal.NewFromInt(3), "carol", "alice", "2017-09-03")
	suite.Require().NoError(err)

	asPayer, err := suite.repo.ListByPayer(suite.ctx, "bob")
	suite.Require().NoError(err)
	suite.Require().Len(asPayer, 1)
	suite.Equal("txn-2", asPayer[0].ID)

	asRecipient, err := suite.repo.ListByRecipient(suite.ctx, "bob")
	suite.Require().NoError(err)
	suite.Require().Len(asRecipient, 1)
	suite.Equal("txn-1", asRecipient[0].ID)

	// Union comes back payer entries first.
	byName, err := suite.repo.ListByName(suite.ctx, "bob")
	suite.Require().NoError(err)
	suite.Require().Len(byName, 2)
	suite.Equal("txn-2", byName[0].ID)
	suite.Equal("txn-1", byName[1].ID)
}

func (suite *TransactionRepositoryTestSuite) TestListByNameSelfPaymentDuplicated() {
	created, err := suite.repo.Create(suite.ctx, decimal.NewFromInt(5), "alice", "alice", "2017-09-01")
	suite.Require().NoError(err)

	byName, err := suite.repo.ListByName(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Require().Len(byName, 2)
	suite.Equal(created.ID, byName[0].ID)
	suite.Equal(created.ID, byName[1].ID)
}

func (suite *TransactionRepositoryTestSuite) TestUpdateKeepsID() {
	created, err := suite.repo.Create(suite.ctx, decimal.NewFromInt(123), "mr payer", "mr recipient", "2017-09-01")
	suite.Require().NoError(err)

	created.Amount = decimal.NewFromInt(321)
	updated, err := suite.repo.Update(suite.ctx, *created)
	suite.Require().NoError(err)
	suite.Equal(created.ID, updated.ID)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(321)))

	reloaded, err := suite.repo.GetByID(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.True(reloaded.Amount.Equal(decimal.NewFromInt(321)))
}

func (suite *TransactionRepositoryTestSuite) TestUpdateUnknownTransaction() {
	txn, err := suite.repo.Create(suite.ctx, decimal.NewFromInt(1), "alice", "bob", "2017-09-01")
	suite.Require().NoError(err)

	txn.ID = "txn-404"
	_, err = suite.repo.Update(suite.ctx, *txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionRepositoryTestSuite) TestDelete() {
	created, err := suite.repo.Create(suite.ctx, decimal.NewFromInt(1), "alice", "bob", "2017-09-01")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Delete(suite.ctx, *created))

	txns, err := suite.repo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(txns)
}

func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

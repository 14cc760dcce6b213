package memory_test

import (
	"testing"

	"github.com/moazna/moazna/internal/core/ports"
	"github.com/moazna/moazna/internal/datastore/memory"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *memory.Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.store = memory.NewStore()
}

func (suite *StoreTestSuite) TestCreateAndRetrieve() {
	created := suite.store.Create("accounts", ports.Record{"name": "groceries", "kind": "expense"})
	suite.Equal("groceries", created["name"])

	rec, ok := suite.store.Retrieve("accounts", "name", "groceries")
	suite.True(ok)
	suite.Equal("expense", rec["kind"])

	_, ok = suite.store.Retrieve("accounts", "name", "rent")
	suite.False(ok)

	// Undeclared collection is absence, not a panic.
	_, ok = suite.store.Retrieve("nothing", "name", "groceries")
	suite.False(ok)
}

func (suite *StoreTestSuite) TestRetrieveReturnsACopy() {
	suite.store.Create("accounts", ports.Record{"name": "groceries", "kind": "expense"})

	rec, ok := suite.store.Retrieve("accounts", "name", "groceries")
	suite.Require().True(ok)
	rec["kind"] = "mutated"

	again, ok := suite.store.Retrieve("accounts", "name", "groceries")
	suite.Require().True(ok)
	suite.Equal("expense", again["kind"])
}

func (suite *StoreTestSuite) TestFilter() {
	suite.store.Create("accounts", ports.Record{"name": "groceries", "kind": "expense"})
	suite.store.Create("accounts", ports.Record{"name": "salary", "kind": "income"})
	suite.store.Create("accounts", ports.Record{"name": "rent", "kind": "expense"})

	suite.Len(suite.store.Filter("accounts", "kind", "expense"), 2)
	suite.Len(suite.store.Filter("accounts", "kind", "expense", "income"), 3)
	suite.Empty(suite.store.Filter("accounts", "kind", "transfer"))

	// Empty key or no values means "everything".
	suite.Len(suite.store.Filter("accounts", ""), 3)
	suite.Len(suite.store.Filter("accounts", "kind"), 3)

	suite.Nil(suite.store.Filter("nothing", "kind", "expense"))
}

func (suite *StoreTestSuite) TestUpdateMergesInPlace() {
	suite.store.Create("accounts", ports.Record{"name": "a", "balance": 1})
	suite.store.Create("accounts", ports.Record{"name": "b", "balance": 2})
	suite.store.Create("accounts", ports.Record{"name": "c", "balance": 3})

	updated, ok := suite.store.Update("accounts", ports.Record{"name": "b", "balance": 20, "note": "raise"}, "name")
	suite.Require().True(ok)
	suite.Equal(20, updated["balance"])
	suite.Equal("raise", updated["note"])

	// Updating keeps the record at its original position.
	all := suite.store.Filter("accounts", "")
	suite.Require().Len(all, 3)
	suite.Equal("a", all[0]["name"])
	suite.Equal("b", all[1]["name"])
	suite.Equal(20, all[1]["balance"])
	suite.Equal("c", all[2]["name"])
}

func (suite *StoreTestSuite) TestUpdateUnknownRecord() {
	suite.store.AddEntity("accounts")

	_, ok := suite.store.Update("accounts", ports.Record{"name": "ghost"}, "name")
	suite.False(ok)
	suite.Zero(suite.store.Count("accounts"))
}

func (suite *StoreTestSuite) TestDelete() {
	suite.store.Create("accounts", ports.Record{"name": "a"})
	suite.store.Create("accounts", ports.Record{"name": "b"})
	suite.store.Create("accounts", ports.Record{"name": "c"})

	suite.store.Delete("accounts", "name", "b")
	suite.Equal(2, suite.store.Count("accounts"))
	_, ok := suite.store.Retrieve("accounts", "name", "b")
	suite.False(ok)

	// Deleting something absent is a no-op.
	suite.store.Delete("accounts", "name", "b")
	suite.store.Delete("nothing", "name", "b")
	suite.Equal(2, suite.store.Count("accounts"))
}

func (suite *StoreTestSuite) TestAddEntityIdempotent() {
	suite.store.AddEntity("accounts")
	suite.store.Create("accounts", ports.Record{"name": "a"})
	suite.store.AddEntity("accounts")

	suite.Equal(1, suite.store.Count("accounts"))
}

func (suite *StoreTestSuite) TestCountUndeclared() {
	suite.Zero(suite.store.Count("nothing"))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

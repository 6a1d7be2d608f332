package memtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID   string
	Name string
}

func newTestTable() *Table[string, row] {
	return New(func(r row) string { return r.ID })
}

func TestTx_CommitAppliesInOrder(t *testing.T) {
	table := newTestTable()

	tx := table.Begin()
	tx.Put(row{ID: "a", Name: "first"})
	tx.Put(row{ID: "b", Name: "second"})
	tx.Put(row{ID: "a", Name: "renamed"})

	assert.Equal(t, 0, table.Len(), "nothing visible before commit")

	tx.Commit()

	assert.Equal(t, []row{{ID: "a", Name: "renamed"}, {ID: "b", Name: "second"}}, table.All())
}

func TestTx_RollbackDiscards(t *testing.T) {
	table := newTestTable()
	seed := table.Begin()
	seed.Put(row{ID: "a", Name: "kept"})
	seed.Commit()

	tx := table.Begin()
	tx.Put(row{ID: "b", Name: "dropped"})
	tx.Delete("a")
	tx.Rollback()

	assert.Equal(t, []row{{ID: "a", Name: "kept"}}, table.All())
}

func TestTx_GetReadsThroughStagedChanges(t *testing.T) {
	table := newTestTable()
	seed := table.Begin()
	seed.Put(row{ID: "a", Name: "committed"})
	seed.Commit()

	tx := table.Begin()
	tx.Put(row{ID: "b", Name: "staged"})
	tx.Delete("a")

	_, ok := tx.Get("a")
	assert.False(t, ok, "staged delete hides committed row")

	got, ok := tx.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "staged", got.Name)

	_, ok = table.Get("b")
	assert.False(t, ok, "table does not see staged row")
}

func TestTable_DeleteReindexes(t *testing.T) {
	table := newTestTable()
	tx := table.Begin()
	tx.Put(row{ID: "a"})
	tx.Put(row{ID: "b"})
	tx.Put(row{ID: "c"})
	tx.Delete("a")
	tx.Commit()

	got, ok := table.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "c", got.ID)
	assert.Equal(t, 2, table.Len())
}

// Package memtable provides an insertion-ordered in-memory table with
// staged transactions. Tables are not synchronized; the owning storage
// serializes access.
package memtable

// Table holds rows of V keyed by K, in insertion order.
type Table[K comparable, V any] struct {
	keyOf func(V) K
	rows  []V
	index map[K]int
}

// New creates an empty table that derives each row's key with keyOf.
func New[K comparable, V any](keyOf func(V) K) *Table[K, V] {
	return &Table[K, V]{
		keyOf: keyOf,
		index: make(map[K]int),
	}
}

// Get returns the row stored under k.
func (t *Table[K, V]) Get(k K) (V, bool) {
	i, ok := t.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return t.rows[i], true
}

// All returns a copy of every row in insertion order.
func (t *Table[K, V]) All() []V {
	out := make([]V, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len returns the number of rows.
func (t *Table[K, V]) Len() int {
	return len(t.rows)
}

// Begin starts a transaction against the table.
func (t *Table[K, V]) Begin() *Tx[K, V] {
	return &Tx[K, V]{
		table:  t,
		staged: make(map[K]*V),
	}
}

func (t *Table[K, V]) upsert(v V) {
	k := t.keyOf(v)
	if i, ok := t.index[k]; ok {
		t.rows[i] = v
		return
	}
	t.index[k] = len(t.rows)
	t.rows = append(t.rows, v)
}

func (t *Table[K, V]) delete(k K) {
	i, ok := t.index[k]
	if !ok {
		return
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	delete(t.index, k)
	for j := i; j < len(t.rows); j++ {
		t.index[t.keyOf(t.rows[j])] = j
	}
}

type op[K comparable, V any] struct {
	key     K
	value   V
	deleted bool
}

// Tx stages puts and deletes. Nothing reaches the table until Commit.
type Tx[K comparable, V any] struct {
	table  *Table[K, V]
	staged map[K]*V // nil marks a staged delete
	ops    []op[K, V]
}

// Get reads through staged changes to the committed table.
func (tx *Tx[K, V]) Get(k K) (V, bool) {
	if v, ok := tx.staged[k]; ok {
		if v == nil {
			var zero V
			return zero, false
		}
		return *v, true
	}
	return tx.table.Get(k)
}

// Put stages an insert or replacement of v.
func (tx *Tx[K, V]) Put(v V) {
	k := tx.table.keyOf(v)
	tx.staged[k] = &v
	tx.ops = append(tx.ops, op[K, V]{key: k, value: v})
}

// Delete stages removal of the row stored under k.
func (tx *Tx[K, V]) Delete(k K) {
	tx.staged[k] = nil
	tx.ops = append(tx.ops, op[K, V]{key: k, deleted: true})
}

// Commit applies staged changes in the order they were made.
func (tx *Tx[K, V]) Commit() {
	for _, o := range tx.ops {
		if o.deleted {
			tx.table.delete(o.key)
			continue
		}
		tx.table.upsert(o.value)
	}
	tx.reset()
}

// Rollback discards staged changes.
func (tx *Tx[K, V]) Rollback() {
	tx.reset()
}

func (tx *Tx[K, V]) reset() {
	tx.staged = make(map[K]*V)
	tx.ops = nil
}

package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billbook/internal/domain"
)

func TestUpsert_AppendsNewID(t *testing.T) {
	items := []domain.Expense{{ID: "a"}, {ID: "b"}}
	out := Upsert(items, domain.Expense{ID: "c", Vendor: "new"})

	assert.Len(t, out, 3)
	assert.Equal(t, "c", out[2].ID)
	assert.Len(t, items, 2, "input must not be modified")
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	items := []domain.Expense{{ID: "a"}, {ID: "b", Vendor: "old"}, {ID: "c"}}
	out := Upsert(items, domain.Expense{ID: "b", Vendor: "new"})

	assert.Len(t, out, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, "new", out[1].Vendor)
	assert.Equal(t, "old", items[1].Vendor)
}

func TestReplace_NeverAppends(t *testing.T) {
	items := []domain.Expense{{ID: "a"}, {ID: "b", Vendor: "old"}}

	out, ok := Replace(items, domain.Expense{ID: "b", Vendor: "new"})
	assert.True(t, ok)
	assert.Equal(t, "new", out[1].Vendor)
	assert.Equal(t, "old", items[1].Vendor)

	out, ok = Replace(items, domain.Expense{ID: "z"})
	assert.False(t, ok)
	assert.Len(t, out, 2)
}

func TestRemove(t *testing.T) {
	items := []domain.Bill{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	out, removed := Remove(items, "b")
	assert.True(t, removed)
	assert.Equal(t, []domain.Bill{{ID: "a"}, {ID: "c"}}, out)

	out, removed = Remove(items, "zzz")
	assert.False(t, removed)
	assert.Len(t, out, 3)
}

func TestFind(t *testing.T) {
	items := []domain.Bill{{ID: "a", CustomerName: "A"}, {ID: "b", CustomerName: "B"}}

	b, ok := Find(items, "b")
	assert.True(t, ok)
	assert.Equal(t, "B", b.CustomerName)

	_, ok = Find(items, "x")
	assert.False(t, ok)
}

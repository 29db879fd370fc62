package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
)

func TestLedgerRepository_MissingFile(t *testing.T) {
	repo := NewLedgerRepository(filepath.Join(t.TempDir(), "ledger.json"))

	res, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.False(t, res.Recovered)
	assert.Equal(t, domain.NewLedger(), res.Ledger)
}

func TestLedgerRepository_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.json")
	repo := NewLedgerRepository(path)
	ctx := context.Background()

	doc := &domain.Ledger{
		Bills:    []domain.Bill{{ID: "b1", CustomerName: "A", Quantity: 2, UnitPrice: 3.5, PaymentStatus: domain.PaymentPaid}},
		Expenses: []domain.Expense{{ID: "e1", Vendor: "V", Amount: 10}},
	}
	require.NoError(t, repo.Save(ctx, doc))

	res, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.False(t, res.Recovered)
	assert.Equal(t, doc, res.Ledger)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestLedgerRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	res, err := NewLedgerRepository(path).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.True(t, res.Recovered)
	assert.Empty(t, res.Ledger.Bills)
}

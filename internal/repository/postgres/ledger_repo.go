package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"billbook/internal/domain"
	"billbook/internal/ledger"
	"billbook/internal/port"
)

type ledgerRepo struct {
	db  *sqlx.DB
	key string
}

// NewLedgerRepo creates a PostgreSQL-backed LedgerRepository keeping the
// document in one ledger_documents row.
func NewLedgerRepo(db *sqlx.DB, storageKey string) port.LedgerRepository {
	return &ledgerRepo{db: db, key: storageKey}
}

func (r *ledgerRepo) Load(ctx context.Context) (*port.LoadResult, error) {
	var body []byte
	err := r.db.GetContext(ctx, &body,
		"SELECT body FROM ledger_documents WHERE storage_key = $1", r.key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &port.LoadResult{Ledger: domain.NewLedger()}, nil
		}
		return nil, fmt.Errorf("ledgerRepo.Load: %w", err)
	}
	doc, recovered := ledger.Decode(body)
	return &port.LoadResult{Ledger: doc, Found: true, Recovered: recovered}, nil
}

func (r *ledgerRepo) Save(ctx context.Context, doc *domain.Ledger) error {
	data, err := ledger.Encode(doc)
	if err != nil {
		return err
	}

	query := `INSERT INTO ledger_documents (storage_key, body, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (storage_key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, r.key, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("ledgerRepo.Save: %w", err)
	}
	return nil
}

func (r *ledgerRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

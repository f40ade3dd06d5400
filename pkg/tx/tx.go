package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager opens pgx transactions and stores them in the context for querier.Querier.
type Manager struct {
	trm *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		trm: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do runs fn in a serializable transaction. A nested call joins the outer one.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (m *Manager) do(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	s := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(opts),
	)
	return m.trm.DoWithSettings(ctx, s, fn)
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/pocketfin/pocket_finance_app/internal/core/ports/repositories"
	"github.com/pocketfin/pocket_finance_app/internal/models"
)

type PgxWatchlistRepository struct {
	db *pgxpool.Pool
}

func newPgxWatchlistRepository(db *pgxpool.Pool) portsrepo.WatchlistRepositoryFacade {
	return &PgxWatchlistRepository{db: db}
}

var _ portsrepo.WatchlistRepositoryFacade = (*PgxWatchlistRepository)(nil)

// AddSymbol appends a symbol at the next position. ON CONFLICT DO NOTHING
// keeps the no-duplicates invariant without surfacing an error.
func (r *PgxWatchlistRepository) AddSymbol(ctx context.Context, userID string, entry domain.WatchlistEntry) error {
	query := `
        INSERT INTO watchlist_symbols (user_id, symbol, custom_name, position, added_at)
        VALUES ($1, $2, $3,
            (SELECT COALESCE(MAX(position), 0) + 1 FROM watchlist_symbols WHERE user_id = $1),
            NOW())
        ON CONFLICT (user_id, symbol) DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query, userID, entry.Symbol, entry.CustomName)
	if err != nil {
		return fmt.Errorf("failed to add watchlist symbol: %w", err)
	}
	return nil
}

// RemoveSymbol removes a symbol. Removing an absent symbol is not an error.
func (r *PgxWatchlistRepository) RemoveSymbol(ctx context.Context, userID string, symbol string) error {
	query := `DELETE FROM watchlist_symbols WHERE user_id = $1 AND symbol = $2;`
	_, err := r.db.Exec(ctx, query, userID, symbol)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist symbol: %w", err)
	}
	return nil
}

// ListSymbols returns the user's symbols in insertion order.
func (r *PgxWatchlistRepository) ListSymbols(ctx context.Context, userID string) ([]domain.WatchlistEntry, error) {
	query := `
		SELECT user_id, symbol, custom_name, position, added_at
		FROM watchlist_symbols
		WHERE user_id = $1
		ORDER BY position ASC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist symbols: %w", err)
	}
	defer rows.Close()

	var entries []domain.WatchlistEntry
	for rows.Next() {
		var m models.WatchlistSymbol
		if err := rows.Scan(&m.UserID, &m.Symbol, &m.CustomName, &m.Position, &m.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist symbol: %w", err)
		}
		entries = append(entries, domain.WatchlistEntry{Symbol: m.Symbol, CustomName: m.CustomName})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watchlist symbols: %w", err)
	}
	return entries, nil
}

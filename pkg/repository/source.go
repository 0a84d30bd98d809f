package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vidscope/vidscope/pkg/domain"
)

// SourceRepository handles tracked-creator database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID         int64     `db:"id"`
	AccountID  int64     `db:"account_id"`
	UpstreamID int64     `db:"upstream_id"`
	Name       string    `db:"name"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// CreateSource inserts a new tracked creator for an account
func (r *SourceRepository) CreateSource(ctx context.Context, source *domain.Source) error {
	query := `
		INSERT INTO sources (account_id, upstream_id, name, active)
		VALUES (:account_id, :upstream_id, :name, :active)
	`
	result, err := r.db.NamedExecContext(ctx, query, &sourceSQL{
		AccountID:  source.AccountID,
		UpstreamID: source.UpstreamID,
		Name:       source.Name,
		Active:     source.Active,
	})
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	source.ID = id
	return nil
}

// GetSources retrieves all sources for an account
func (r *SourceRepository) GetSources(ctx context.Context, accountID int64) ([]domain.Source, error) {
	var sqlSources []sourceSQL
	err := r.db.SelectContext(ctx, &sqlSources, "SELECT * FROM sources WHERE account_id = ? ORDER BY id", accountID)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}
	return r.toDomainSources(sqlSources), nil
}

// GetActiveSources retrieves the active sources for an account, in
// creation order. The pipeline visits them in this order.
func (r *SourceRepository) GetActiveSources(ctx context.Context, accountID int64) ([]domain.Source, error) {
	var sqlSources []sourceSQL
	err := r.db.SelectContext(ctx, &sqlSources,
		"SELECT * FROM sources WHERE account_id = ? AND active = 1 ORDER BY id", accountID)
	if err != nil {
		return nil, fmt.Errorf("get active sources: %w", err)
	}
	return r.toDomainSources(sqlSources), nil
}

// DeleteSource removes a tracked creator
func (r *SourceRepository) DeleteSource(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("source %d not found", id)
	}
	return nil
}

// toDomainSources converts sourceSQL rows to domain.Source values
func (r *SourceRepository) toDomainSources(sqlSources []sourceSQL) []domain.Source {
	sources := make([]domain.Source, len(sqlSources))
	for i, s := range sqlSources {
		sources[i] = domain.Source{
			ID:         s.ID,
			AccountID:  s.AccountID,
			UpstreamID: s.UpstreamID,
			Name:       s.Name,
			Active:     s.Active,
			CreatedAt:  s.CreatedAt,
		}
	}
	return sources
}

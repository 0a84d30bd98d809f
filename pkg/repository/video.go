package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vidscope/vidscope/pkg/domain"
)

// VideoRepository handles persisted-video database operations
type VideoRepository struct {
	db *sqlx.DB
}

// videoSQL represents a video for SQL operations
type videoSQL struct {
	ID        int64     `db:"id"`
	AccountID int64     `db:"account_id"`
	SourceID  int64     `db:"source_id"`
	Platform  string    `db:"platform"`
	DedupKey  string    `db:"dedup_key"`
	Title     string    `db:"title"`
	Cover     string    `db:"cover"`
	Duration  int       `db:"duration"`
	Published time.Time `db:"published"`
	Views     int64     `db:"views"`
	Likes     int64     `db:"likes"`
	CreatedAt time.Time `db:"created_at"`
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(database *sqlx.DB) *VideoRepository {
	return &VideoRepository{db: database}
}

// ExistingKeys returns which of the candidate dedup keys are already
// persisted for the account. The query is restricted to the candidate
// set, so it stays bounded regardless of table size.
func (r *VideoRepository) ExistingKeys(ctx context.Context, accountID int64, platform string, keys []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(keys))
	if len(keys) == 0 {
		return existing, nil
	}

	query, args, err := sqlx.In(
		"SELECT dedup_key FROM videos WHERE account_id = ? AND platform = ? AND dedup_key IN (?)",
		accountID, platform, keys)
	if err != nil {
		return nil, fmt.Errorf("build existing keys query: %w", err)
	}

	var found []string
	if err := r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get existing keys: %w", err)
	}

	for _, k := range found {
		existing[k] = struct{}{}
	}
	return existing, nil
}

// UpsertVideos persists videos in one bulk statement, keyed on
// (account_id, platform, dedup_key). Duplicate rows are silently skipped:
// the uniqueness constraint is the source of truth, so a race between the
// existence check and the write reconciles here instead of erroring.
// Returns the number actually inserted.
func (r *VideoRepository) UpsertVideos(ctx context.Context, videos []domain.Video) (int64, error) {
	if len(videos) == 0 {
		return 0, nil
	}

	rows := make([]videoSQL, len(videos))
	for i, v := range videos {
		rows[i] = videoSQL{
			AccountID: v.AccountID,
			SourceID:  v.SourceID,
			Platform:  v.Platform,
			DedupKey:  v.Key,
			Title:     v.Title,
			Cover:     v.Cover,
			Duration:  v.Duration,
			Published: v.Published,
			Views:     v.Views,
			Likes:     v.Likes,
		}
	}

	query := `
		INSERT INTO videos (
			account_id, source_id, platform, dedup_key, title, cover,
			duration, published, views, likes
		) VALUES (
			:account_id, :source_id, :platform, :dedup_key, :title, :cover,
			:duration, :published, :views, :likes
		)
		ON CONFLICT(account_id, platform, dedup_key) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, rows)
	if err != nil {
		return 0, fmt.Errorf("upsert videos: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return inserted, nil
}

// GetVideos retrieves persisted videos for an account, newest first
func (r *VideoRepository) GetVideos(ctx context.Context, accountID int64, limit, offset int) ([]domain.Video, error) {
	query := `
		SELECT * FROM videos
		WHERE account_id = ?
		ORDER BY published DESC
		LIMIT ? OFFSET ?
	`
	var sqlVideos []videoSQL
	err := r.db.SelectContext(ctx, &sqlVideos, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get videos: %w", err)
	}

	videos := make([]domain.Video, len(sqlVideos))
	for i, v := range sqlVideos {
		videos[i] = domain.Video{
			ID:        v.ID,
			AccountID: v.AccountID,
			SourceID:  v.SourceID,
			Platform:  v.Platform,
			Key:       v.DedupKey,
			Title:     v.Title,
			Cover:     v.Cover,
			Duration:  v.Duration,
			Published: v.Published,
			Views:     v.Views,
			Likes:     v.Likes,
			CreatedAt: v.CreatedAt,
		}
	}
	return videos, nil
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidscope/vidscope/pkg/domain"
)

func makeVideo(accountID int64, key, title string) domain.Video {
	return domain.Video{
		AccountID: accountID,
		SourceID:  1,
		Platform:  "video",
		Key:       key,
		Title:     title,
		Cover:     "https://img.example.com/" + key + ".jpg",
		Duration:  120,
		Published: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestVideoRepository_UpsertVideos(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	inserted, err := repos.Video.UpsertVideos(ctx, []domain.Video{
		makeVideo(acc.ID, "k1", "First"),
		makeVideo(acc.ID, "k2", "Second"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	videos, err := repos.Video.GetVideos(ctx, acc.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, int64(0), videos[0].Views, "engagement counters start at zero")
	assert.Equal(t, int64(0), videos[0].Likes)
}

func TestVideoRepository_UpsertVideos_Idempotent(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	batch := []domain.Video{
		makeVideo(acc.ID, "k1", "First"),
		makeVideo(acc.ID, "k2", "Second"),
	}

	inserted, err := repos.Video.UpsertVideos(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	// re-running the same batch inserts nothing and does not error
	inserted, err = repos.Video.UpsertVideos(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)

	videos, err := repos.Video.GetVideos(ctx, acc.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, videos, 2)
}

func TestVideoRepository_UpsertVideos_PartialOverlap(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	_, err := repos.Video.UpsertVideos(ctx, []domain.Video{makeVideo(acc.ID, "k1", "First")})
	require.NoError(t, err)

	inserted, err := repos.Video.UpsertVideos(ctx, []domain.Video{
		makeVideo(acc.ID, "k1", "First"),
		makeVideo(acc.ID, "k3", "Third"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted, "only the genuinely new row is written")
}

func TestVideoRepository_UpsertVideos_Empty(t *testing.T) {
	repos := setupTestRepos(t)

	inserted, err := repos.Video.UpsertVideos(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)
}

func TestVideoRepository_SameKeyDifferentAccounts(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	alice := makeAccount(t, repos, "alice")
	bob := makeAccount(t, repos, "bob")

	inserted, err := repos.Video.UpsertVideos(ctx, []domain.Video{
		makeVideo(alice.ID, "k1", "First"),
		makeVideo(bob.ID, "k1", "First"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted, "dedup key is scoped per account")
}

func TestVideoRepository_ExistingKeys(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	_, err := repos.Video.UpsertVideos(ctx, []domain.Video{
		makeVideo(acc.ID, "k1", "First"),
		makeVideo(acc.ID, "k2", "Second"),
	})
	require.NoError(t, err)

	existing, err := repos.Video.ExistingKeys(ctx, acc.ID, "video", []string{"k1", "k3"})
	require.NoError(t, err)
	assert.Len(t, existing, 1)
	assert.Contains(t, existing, "k1")
	assert.NotContains(t, existing, "k2", "query is restricted to the candidate key set")
	assert.NotContains(t, existing, "k3")
}

func TestVideoRepository_ExistingKeys_EmptySet(t *testing.T) {
	repos := setupTestRepos(t)
	acc := makeAccount(t, repos, "alice")

	existing, err := repos.Video.ExistingKeys(context.Background(), acc.ID, "video", nil)
	require.NoError(t, err)
	assert.Empty(t, existing)
}

func TestVideoRepository_GetVideos_Ordering(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	older := makeVideo(acc.ID, "old", "Older")
	older.Published = time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	newer := makeVideo(acc.ID, "new", "Newer")
	newer.Published = time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)

	_, err := repos.Video.UpsertVideos(ctx, []domain.Video{older, newer})
	require.NoError(t, err)

	videos, err := repos.Video.GetVideos(ctx, acc.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "new", videos[0].Key, "newest first")
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidscope/vidscope/pkg/domain"
)

func TestSourceRepository_CreateAndGet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	src := domain.Source{AccountID: acc.ID, UpstreamID: 42, Name: "creator", Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, &src))
	assert.Positive(t, src.ID)

	sources, err := repos.Source.GetSources(ctx, acc.ID)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, int64(42), sources[0].UpstreamID)
	assert.Equal(t, "creator", sources[0].Name)
}

func TestSourceRepository_GetActiveSources(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	active := domain.Source{AccountID: acc.ID, UpstreamID: 1, Name: "active", Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, &active))

	inactive := domain.Source{AccountID: acc.ID, UpstreamID: 2, Name: "inactive", Active: false}
	require.NoError(t, repos.Source.CreateSource(ctx, &inactive))

	// another account's source must not leak in
	other := makeAccount(t, repos, "bob")
	otherSrc := domain.Source{AccountID: other.ID, UpstreamID: 3, Name: "other", Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, &otherSrc))

	sources, err := repos.Source.GetActiveSources(ctx, acc.ID)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "active", sources[0].Name)
}

func TestSourceRepository_DeleteSource(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	src := domain.Source{AccountID: acc.ID, UpstreamID: 42, Name: "creator", Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, &src))

	require.NoError(t, repos.Source.DeleteSource(ctx, src.ID))

	sources, err := repos.Source.GetSources(ctx, acc.ID)
	require.NoError(t, err)
	assert.Empty(t, sources)

	err = repos.Source.DeleteSource(ctx, src.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSourceRepository_DuplicateUpstreamID(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	acc := makeAccount(t, repos, "alice")

	first := domain.Source{AccountID: acc.ID, UpstreamID: 42, Name: "creator", Active: true}
	require.NoError(t, repos.Source.CreateSource(ctx, &first))

	dup := domain.Source{AccountID: acc.ID, UpstreamID: 42, Name: "again", Active: true}
	assert.Error(t, repos.Source.CreateSource(ctx, &dup), "same creator can't be tracked twice per account")
}

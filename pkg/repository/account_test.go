package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidscope/vidscope/pkg/domain"
)

func TestAccountRepository_CreateAndGet(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	acc := domain.Account{Username: "alice", Credential: "session=abc"}
	require.NoError(t, repos.Account.CreateAccount(ctx, &acc))
	assert.Positive(t, acc.ID)

	got, err := repos.Account.GetAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "session=abc", got.Credential)
	assert.True(t, got.HasCredential())
}

func TestAccountRepository_GetAccountsWithCredential(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	withCred := domain.Account{Username: "alice", Credential: "session=abc"}
	require.NoError(t, repos.Account.CreateAccount(ctx, &withCred))

	noCred := domain.Account{Username: "bob"}
	require.NoError(t, repos.Account.CreateAccount(ctx, &noCred))

	accounts, err := repos.Account.GetAccountsWithCredential(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1, "accounts without a credential are not synced")
	assert.Equal(t, "alice", accounts[0].Username)
}

func TestAccountRepository_UpdateCredential(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	acc := makeAccount(t, repos, "alice")

	require.NoError(t, repos.Account.UpdateCredential(ctx, acc.ID, "session=new"))

	got, err := repos.Account.GetAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "session=new", got.Credential)
}

func TestAccountRepository_UpdateCredential_NotFound(t *testing.T) {
	repos := setupTestRepos(t)

	err := repos.Account.UpdateCredential(context.Background(), 12345, "session=x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAccountRepository_DuplicateUsername(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	first := domain.Account{Username: "alice"}
	require.NoError(t, repos.Account.CreateAccount(ctx, &first))

	second := domain.Account{Username: "alice"}
	assert.Error(t, repos.Account.CreateAccount(ctx, &second))
}

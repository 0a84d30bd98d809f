package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidscope/vidscope/pkg/domain"
	"github.com/vidscope/vidscope/pkg/feed"
	"github.com/vidscope/vidscope/pkg/syncer/mocks"
)

// noon on a fixed date, all published timestamps in tests are relative to it
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func testItem(key, title string, published time.Time) domain.RemoteItem {
	return domain.RemoteItem{Key: key, Title: title, Cover: "https://img.example.com/" + key + ".jpg", Duration: 60, Published: published}
}

func TestOrchestrator_Run(t *testing.T) {
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{{ID: 1, Username: "alice", Credential: "c1"}}, nil
		},
		GetActiveSourcesFunc: func(ctx context.Context, accountID int64) ([]domain.Source, error) {
			return []domain.Source{
				{ID: 10, AccountID: 1, UpstreamID: 101, Name: "creator one"},
				{ID: 11, AccountID: 1, UpstreamID: 102, Name: "creator two"},
			}, nil
		},
	}
	fetcher := &mocks.FetcherMock{
		SourceItemsFunc: func(ctx context.Context, src domain.Source, credential string) feed.Result {
			switch src.ID {
			case 10:
				return feed.Result{Items: []domain.RemoteItem{
					testItem("k1", "fresh video", testNow.Add(-time.Hour)),
					testItem("k2", "old video", testNow.Add(-48*time.Hour)),
				}}
			default:
				return feed.Result{Items: []domain.RemoteItem{testItem("k3", "another fresh", testNow.Add(-2*time.Hour))}}
			}
		},
	}
	persister := &mocks.PersisterMock{
		ReconcileFunc: func(ctx context.Context, accountID int64, candidates []domain.Video) int {
			return len(candidates)
		},
	}
	notifier := &mocks.NotifierMock{
		EmitFunc: func(ctx context.Context, accountID int64, newItems []domain.RemoteItem, titles []string) {},
	}

	orch := NewOrchestrator(Params{Store: store, Fetcher: fetcher, Persister: persister, Notifier: notifier,
		Platform: "video", SourceDelay: time.Millisecond})
	orch.now = func() time.Time { return testNow }

	report, err := orch.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, testNow, report.Timestamp)
	require.Len(t, report.Accounts, 1)
	assert.Equal(t, int64(1), report.Accounts[0].AccountID)
	assert.Equal(t, 2, report.Accounts[0].NewItems, "yesterday's video filtered out")
	assert.Empty(t, report.Accounts[0].Error)

	// credential passed through to each fetch
	calls := fetcher.SourceItemsCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "c1", calls[0].Credential)

	// reconciled candidates carry account and platform
	recCalls := persister.ReconcileCalls()
	require.Len(t, recCalls, 1)
	require.Len(t, recCalls[0].Candidates, 2)
	assert.Equal(t, int64(1), recCalls[0].Candidates[0].AccountID)
	assert.Equal(t, "video", recCalls[0].Candidates[0].Platform)
	assert.Equal(t, "k1", recCalls[0].Candidates[0].Key)
	assert.Equal(t, int64(10), recCalls[0].Candidates[0].SourceID, "source id stamped by the adapter is preserved")

	// one notification with the original remote items and titles
	emitCalls := notifier.EmitCalls()
	require.Len(t, emitCalls, 1)
	assert.Equal(t, int64(1), emitCalls[0].AccountID)
	assert.Len(t, emitCalls[0].NewItems, 2)
	assert.Equal(t, []string{"fresh video", "another fresh"}, emitCalls[0].Titles)
}

func TestOrchestrator_Run_DayBoundary(t *testing.T) {
	startOfToday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{{ID: 1, Credential: "c"}}, nil
		},
		GetActiveSourcesFunc: func(ctx context.Context, accountID int64) ([]domain.Source, error) {
			return []domain.Source{{ID: 10, AccountID: 1, UpstreamID: 101}}, nil
		},
	}
	fetcher := &mocks.FetcherMock{
		SourceItemsFunc: func(ctx context.Context, src domain.Source, credential string) feed.Result {
			return feed.Result{Items: []domain.RemoteItem{
				testItem("late", "late last night", startOfToday.Add(-time.Second)), // 23:59:59 yesterday
				testItem("early", "early today", startOfToday.Add(time.Second)),     // 00:00:01 today
				testItem("exact", "exactly midnight", startOfToday),
			}}
		},
	}
	persister := &mocks.PersisterMock{
		ReconcileFunc: func(ctx context.Context, accountID int64, candidates []domain.Video) int { return len(candidates) },
	}
	notifier := &mocks.NotifierMock{
		EmitFunc: func(ctx context.Context, accountID int64, newItems []domain.RemoteItem, titles []string) {},
	}

	orch := NewOrchestrator(Params{Store: store, Fetcher: fetcher, Persister: persister, Notifier: notifier, SourceDelay: time.Millisecond})
	orch.now = func() time.Time { return testNow }

	report, err := orch.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Accounts, 1)
	assert.Equal(t, 2, report.Accounts[0].NewItems)

	recCalls := persister.ReconcileCalls()
	require.Len(t, recCalls, 1)
	keys := []string{recCalls[0].Candidates[0].Key, recCalls[0].Candidates[1].Key}
	assert.Contains(t, keys, "early")
	assert.Contains(t, keys, "exact", "midnight itself belongs to today")
	assert.NotContains(t, keys, "late")
}

func TestOrchestrator_Run_AccountIsolation(t *testing.T) {
	// middle account fails on source load, the others must still complete
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{{ID: 1, Credential: "c"}, {ID: 2, Credential: "c"}, {ID: 3, Credential: "c"}}, nil
		},
		GetActiveSourcesFunc: func(ctx context.Context, accountID int64) ([]domain.Source, error) {
			if accountID == 2 {
				return nil, errors.New("database locked")
			}
			return []domain.Source{{ID: accountID * 10, AccountID: accountID, UpstreamID: 1}}, nil
		},
	}
	fetcher := &mocks.FetcherMock{
		SourceItemsFunc: func(ctx context.Context, src domain.Source, credential string) feed.Result {
			return feed.Result{Items: []domain.RemoteItem{testItem("k", "t", testNow.Add(-time.Hour))}}
		},
	}
	persister := &mocks.PersisterMock{
		ReconcileFunc: func(ctx context.Context, accountID int64, candidates []domain.Video) int { return len(candidates) },
	}
	notifier := &mocks.NotifierMock{
		EmitFunc: func(ctx context.Context, accountID int64, newItems []domain.RemoteItem, titles []string) {},
	}

	orch := NewOrchestrator(Params{Store: store, Fetcher: fetcher, Persister: persister, Notifier: notifier, SourceDelay: time.Millisecond})
	orch.now = func() time.Time { return testNow }

	report, err := orch.Run(context.Background())
	require.NoError(t, err, "one bad account never fails the run")
	assert.True(t, report.Success)
	require.Len(t, report.Accounts, 3)

	assert.Equal(t, 1, report.Accounts[0].NewItems)
	assert.Empty(t, report.Accounts[0].Error)

	assert.Equal(t, 0, report.Accounts[1].NewItems)
	assert.Contains(t, report.Accounts[1].Error, "load sources")

	assert.Equal(t, 1, report.Accounts[2].NewItems)
	assert.Empty(t, report.Accounts[2].Error)
}

func TestOrchestrator_Run_PanicIsolation(t *testing.T) {
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{{ID: 1, Credential: "c"}, {ID: 2, Credential: "c"}}, nil
		},
		GetActiveSourcesFunc: func(ctx context.Context, accountID int64) ([]domain.Source, error) {
			return []domain.Source{{ID: accountID, AccountID: accountID, UpstreamID: 1}}, nil
		},
	}
	fetcher := &mocks.FetcherMock{
		SourceItemsFunc: func(ctx context.Context, src domain.Source, credential string) feed.Result {
			if src.AccountID == 1 {
				panic("boom")
			}
			return feed.Result{Items: []domain.RemoteItem{testItem("k", "t", testNow.Add(-time.Hour))}}
		},
	}
	persister := &mocks.PersisterMock{
		ReconcileFunc: func(ctx context.Context, accountID int64, candidates []domain.Video) int { return len(candidates) },
	}
	notifier := &mocks.NotifierMock{
		EmitFunc: func(ctx context.Context, accountID int64, newItems []domain.RemoteItem, titles []string) {},
	}

	orch := NewOrchestrator(Params{Store: store, Fetcher: fetcher, Persister: persister, Notifier: notifier, SourceDelay: time.Millisecond})
	orch.now = func() time.Time { return testNow }

	report, err := orch.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Accounts, 2)
	assert.Contains(t, report.Accounts[0].Error, "unexpected failure")
	assert.Contains(t, report.Accounts[0].Error, "boom")
	assert.Equal(t, 1, report.Accounts[1].NewItems)
}

func TestOrchestrator_Run_DegradedSourceContinues(t *testing.T) {
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{{ID: 1, Credential: "c"}}, nil
		},
		GetActiveSourcesFunc: func(ctx context.Context, accountID int64) ([]domain.Source, error) {
			return []domain.Source{
				{ID: 10, AccountID: 1, UpstreamID: 101, Name: "broken"},
				{ID: 11, AccountID: 1, UpstreamID: 102, Name: "working"},
			}, nil
		},
	}
	fetcher := &mocks.FetcherMock{
		SourceItemsFunc: func(ctx context.Context, src domain.Source, credential string) feed.Result {
			if src.ID == 10 {
				return feed.Result{Degraded: "request throttled (code -352)"}
			}
			return feed.Result{Items: []domain.RemoteItem{testItem("k", "t", testNow.Add(-time.Hour))}}
		},
	}
	persister := &mocks.PersisterMock{
		ReconcileFunc: func(ctx context.Context, accountID int64, candidates []domain.Video) int { return len(candidates) },
	}
	notifier := &mocks.NotifierMock{
		EmitFunc: func(ctx context.Context, accountID int64, newItems []domain.RemoteItem, titles []string) {},
	}

	orch := NewOrchestrator(Params{Store: store, Fetcher: fetcher, Persister: persister, Notifier: notifier, SourceDelay: time.Millisecond})
	orch.now = func() time.Time { return testNow }

	report, err := orch.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Accounts, 1)
	assert.Equal(t, 1, report.Accounts[0].NewItems, "degraded source skipped, working one synced")
	assert.Empty(t, report.Accounts[0].Error, "degraded fetch is not an account failure")
}

func TestOrchestrator_Run_NoNotificationWithoutInserts(t *testing.T) {
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{{ID: 1, Credential: "c"}}, nil
		},
		GetActiveSourcesFunc: func(ctx context.Context, accountID int64) ([]domain.Source, error) {
			return []domain.Source{{ID: 10, AccountID: 1, UpstreamID: 101}}, nil
		},
	}
	fetcher := &mocks.FetcherMock{
		SourceItemsFunc: func(ctx context.Context, src domain.Source, credential string) feed.Result {
			return feed.Result{Items: []domain.RemoteItem{testItem("k", "t", testNow.Add(-time.Hour))}}
		},
	}
	persister := &mocks.PersisterMock{
		// everything already persisted from an earlier pass
		ReconcileFunc: func(ctx context.Context, accountID int64, candidates []domain.Video) int { return 0 },
	}
	notifier := &mocks.NotifierMock{
		EmitFunc: func(ctx context.Context, accountID int64, newItems []domain.RemoteItem, titles []string) {},
	}

	orch := NewOrchestrator(Params{Store: store, Fetcher: fetcher, Persister: persister, Notifier: notifier, SourceDelay: time.Millisecond})
	orch.now = func() time.Time { return testNow }

	report, err := orch.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Accounts[0].NewItems)
	assert.Empty(t, notifier.EmitCalls(), "no notification when nothing was inserted")
}

func TestOrchestrator_Run_NoAccounts(t *testing.T) {
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{}, nil
		},
	}

	orch := NewOrchestrator(Params{Store: store})
	report, err := orch.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Empty(t, report.Accounts)
}

func TestOrchestrator_Run_AccountListFailure(t *testing.T) {
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return nil, errors.New("connection refused")
		},
	}

	orch := NewOrchestrator(Params{Store: store})
	report, err := orch.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "load accounts")
}

func TestOrchestrator_Run_NoActiveSources(t *testing.T) {
	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{{ID: 1, Credential: "c"}}, nil
		},
		GetActiveSourcesFunc: func(ctx context.Context, accountID int64) ([]domain.Source, error) {
			return []domain.Source{}, nil
		},
	}

	orch := NewOrchestrator(Params{Store: store})
	report, err := orch.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Accounts, 1)
	assert.Equal(t, "no active sources", report.Accounts[0].Error)
}

func TestOrchestrator_Run_CanceledBetweenSources(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	store := &mocks.StoreMock{
		GetAccountsWithCredentialFunc: func(ctx context.Context) ([]domain.Account, error) {
			return []domain.Account{{ID: 1, Credential: "c"}}, nil
		},
		GetActiveSourcesFunc: func(ctx context.Context, accountID int64) ([]domain.Source, error) {
			return []domain.Source{{ID: 10, AccountID: 1, UpstreamID: 101}, {ID: 11, AccountID: 1, UpstreamID: 102}}, nil
		},
	}
	fetcher := &mocks.FetcherMock{
		SourceItemsFunc: func(ctx context.Context, src domain.Source, credential string) feed.Result {
			cancel() // cancel during the first fetch, the inter-source pause must notice
			return feed.Result{Items: []domain.RemoteItem{testItem("k", "t", testNow.Add(-time.Hour))}}
		},
	}

	orch := NewOrchestrator(Params{Store: store, Fetcher: fetcher, SourceDelay: time.Minute})
	orch.now = func() time.Time { return testNow }

	report, err := orch.Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Accounts, 1)
	assert.Contains(t, report.Accounts[0].Error, "sync interrupted")
	assert.Len(t, fetcher.SourceItemsCalls(), 1)
}

func TestNewOrchestrator_Defaults(t *testing.T) {
	orch := NewOrchestrator(Params{})
	assert.Equal(t, "video", orch.platform)
	assert.Equal(t, 400*time.Millisecond, orch.sourceDelay)
	assert.NotNil(t, orch.now)
}

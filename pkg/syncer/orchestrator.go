package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/vidscope/vidscope/pkg/domain"
	"github.com/vidscope/vidscope/pkg/feed"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Orchestrator drives one sync pass: for every account with a stored
// credential it pulls each tracked creator's feed, keeps items published
// today, reconciles them against storage and emits a digest notification.
// Accounts and sources are processed strictly sequentially; concurrent
// fetches against the same upstream credential would amplify rate-limit
// risk, so the design trades wall-clock time for predictability.
type Orchestrator struct {
	store     Store
	fetcher   Fetcher
	persister Persister
	notifier  Notifier

	platform    string
	sourceDelay time.Duration
	now         func() time.Time // replaced in tests
}

// Store provides account and source reads for the orchestrator
type Store interface {
	GetAccountsWithCredential(ctx context.Context) ([]domain.Account, error)
	GetActiveSources(ctx context.Context, accountID int64) ([]domain.Source, error)
}

// Fetcher retrieves one creator's feed, degrading instead of failing
type Fetcher interface {
	SourceItems(ctx context.Context, src domain.Source, credential string) feed.Result
}

// Persister reconciles a candidate batch against storage and reports
// how many videos were actually inserted
type Persister interface {
	Reconcile(ctx context.Context, accountID int64, candidates []domain.Video) int
}

// Notifier emits a best-effort digest notification for an account
type Notifier interface {
	Emit(ctx context.Context, accountID int64, newItems []domain.RemoteItem, titles []string)
}

// Params holds orchestrator dependencies and settings
type Params struct {
	Store       Store
	Fetcher     Fetcher
	Persister   Persister
	Notifier    Notifier
	Platform    string
	SourceDelay time.Duration
}

// NewOrchestrator creates the sync orchestrator
func NewOrchestrator(p Params) *Orchestrator {
	if p.Platform == "" {
		p.Platform = "video"
	}
	if p.SourceDelay == 0 {
		p.SourceDelay = 400 * time.Millisecond
	}

	return &Orchestrator{
		store:       p.Store,
		fetcher:     p.Fetcher,
		persister:   p.Persister,
		notifier:    p.Notifier,
		platform:    p.Platform,
		sourceDelay: p.SourceDelay,
		now:         time.Now,
	}
}

// Run executes one full sync pass and returns per-account outcomes.
// The only whole-run failure is being unable to load the account list;
// everything else is contained at the account or source scope.
func (o *Orchestrator) Run(ctx context.Context) (*domain.RunReport, error) {
	accounts, err := o.store.GetAccountsWithCredential(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	report := &domain.RunReport{Success: true, Timestamp: o.now(), Accounts: []domain.AccountReport{}}
	if len(accounts) == 0 {
		lgr.Printf("[INFO] no accounts with credentials, nothing to sync")
		return report, nil
	}

	lgr.Printf("[INFO] syncing %d accounts", len(accounts))
	for _, acc := range accounts {
		report.Accounts = append(report.Accounts, o.syncAccount(ctx, acc))
	}

	return report, nil
}

// syncAccount processes a single account. A panic anywhere inside is
// converted into an error entry so the remaining accounts still run.
func (o *Orchestrator) syncAccount(ctx context.Context, acc domain.Account) (rep domain.AccountReport) {
	rep = domain.AccountReport{AccountID: acc.ID}
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] account %d sync failed: %v", acc.ID, r)
			rep = domain.AccountReport{AccountID: acc.ID, Error: fmt.Sprintf("unexpected failure: %v", r)}
		}
	}()

	sources, err := o.store.GetActiveSources(ctx, acc.ID)
	if err != nil {
		rep.Error = fmt.Sprintf("load sources: %v", err)
		return rep
	}
	if len(sources) == 0 {
		rep.Error = "no active sources"
		return rep
	}

	// all accounts share the scheduler's local day boundary
	startOfDay := o.startOfDay()

	var (
		candidates []domain.Video      // insertable records
		fresh      []domain.RemoteItem // kept for the notification payload
		titles     []string            // kept for the notification summary
		degraded   int
	)

	for i, src := range sources {
		res := o.fetcher.SourceItems(ctx, src, acc.Credential)
		if res.IsDegraded() {
			lgr.Printf("[WARN] account %d source %s: %s", acc.ID, src.Name, res.Degraded)
			degraded++
		}

		for _, item := range res.Items {
			if item.Published.Before(startOfDay) {
				continue
			}
			candidates = append(candidates, o.toVideo(acc.ID, item))
			fresh = append(fresh, item)
			titles = append(titles, item.Title)
		}

		// fixed pause between creators to stay under upstream rate limits
		if i < len(sources)-1 {
			if err := sleepCtx(ctx, o.sourceDelay); err != nil {
				rep.Error = fmt.Sprintf("sync interrupted: %v", err)
				return rep
			}
		}
	}

	if len(candidates) == 0 {
		lgr.Printf("[DEBUG] account %d: nothing published today (%d sources, %d degraded)", acc.ID, len(sources), degraded)
		return rep
	}

	inserted := o.persister.Reconcile(ctx, acc.ID, candidates)
	rep.NewItems = inserted

	if inserted > 0 {
		o.notifier.Emit(ctx, acc.ID, fresh, titles)
	}

	lgr.Printf("[INFO] account %d: %d candidates, %d new (%d sources, %d degraded)",
		acc.ID, len(candidates), inserted, len(sources), degraded)
	return rep
}

// startOfDay returns the beginning of the current local day
func (o *Orchestrator) startOfDay() time.Time {
	now := o.now()
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// toVideo normalizes a remote item into an insertable record
func (o *Orchestrator) toVideo(accountID int64, item domain.RemoteItem) domain.Video {
	return domain.Video{
		AccountID: accountID,
		SourceID:  item.SourceID,
		Platform:  o.platform,
		Key:       item.Key,
		Title:     item.Title,
		Cover:     item.Cover,
		Duration:  item.Duration,
		Published: item.Published,
	}
}

// sleepCtx pauses for d unless the context ends first
func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package syncer

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/vidscope/vidscope/pkg/domain"
)

//go:generate moq -out mocks/video_store.go -pkg mocks -skip-ensure -fmt goimports . VideoStore

// Reconciler persists candidate batches with at-most-one-write-per-key
// semantics. A key already present in storage is skipped before the
// insert, and the insert itself ignores conflicts, so re-running the
// same batch never duplicates rows.
type Reconciler struct {
	store      VideoStore
	retryDelay time.Duration
}

// VideoStore provides the two storage operations reconciliation needs
type VideoStore interface {
	ExistingKeys(ctx context.Context, accountID int64, platform string, keys []string) (map[string]struct{}, error)
	UpsertVideos(ctx context.Context, videos []domain.Video) (int64, error)
}

// NewReconciler creates a reconciler over the given store
func NewReconciler(store VideoStore) *Reconciler {
	return &Reconciler{store: store, retryDelay: time.Second}
}

// Reconcile filters candidates against already-persisted keys and bulk
// inserts the rest, returning the inserted count. Storage hiccups are
// retried twice with a fixed pause; exhausting retries resolves to 0 so
// the caller's run report still completes for the remaining accounts.
func (r *Reconciler) Reconcile(ctx context.Context, accountID int64, candidates []domain.Video) int {
	if len(candidates) == 0 {
		return 0
	}

	platform := candidates[0].Platform
	keys := make([]string, len(candidates))
	for i, v := range candidates {
		keys[i] = v.Key
	}

	var existing map[string]struct{}
	err := repeater.NewFixed(3, r.retryDelay).Do(ctx, func() error {
		var e error
		existing, e = r.store.ExistingKeys(ctx, accountID, platform, keys)
		return e
	})
	if err != nil {
		lgr.Printf("[WARN] account %d: existence check failed after retries: %v", accountID, err)
		return 0
	}

	fresh := make([]domain.Video, 0, len(candidates))
	for _, v := range candidates {
		if _, ok := existing[v.Key]; !ok {
			fresh = append(fresh, v)
		}
	}
	if len(fresh) == 0 {
		lgr.Printf("[DEBUG] account %d: all %d candidates already persisted", accountID, len(candidates))
		return 0
	}

	var inserted int64
	err = repeater.NewFixed(3, r.retryDelay).Do(ctx, func() error {
		var e error
		inserted, e = r.store.UpsertVideos(ctx, fresh)
		return e
	})
	if err != nil {
		lgr.Printf("[WARN] account %d: persist failed after retries: %v", accountID, err)
		return 0
	}

	return int(inserted)
}

package syncer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/vidscope/vidscope/pkg/domain"
)

//go:generate moq -out mocks/notification_store.go -pkg mocks -skip-ensure -fmt goimports . NotificationStore

// Emitter writes per-account digest notifications. Notifications are
// advisory, a write failure is logged and swallowed so it never fails
// the sync pass that produced it.
type Emitter struct {
	store      NotificationStore
	maxTitles  int
	maxPayload int
	retryDelay time.Duration
}

// NotificationStore persists notifications
type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *domain.Notification) error
}

// NewEmitter creates a notification emitter. maxTitles bounds the
// summary body, maxPayload bounds the structured payload.
func NewEmitter(store NotificationStore, maxTitles, maxPayload int) *Emitter {
	if maxTitles <= 0 {
		maxTitles = 5
	}
	if maxPayload <= 0 {
		maxPayload = 10
	}
	return &Emitter{store: store, maxTitles: maxTitles, maxPayload: maxPayload, retryDelay: 500 * time.Millisecond}
}

// Emit writes a single digest notification covering all new items found
// for the account in one sync pass. Nothing is written for an empty batch.
func (e *Emitter) Emit(ctx context.Context, accountID int64, newItems []domain.RemoteItem, titles []string) {
	if len(newItems) == 0 {
		return
	}

	title := fmt.Sprintf("%d new videos from your creators", len(newItems))
	if len(newItems) == 1 {
		title = "1 new video from your creators"
	}

	notification := &domain.Notification{
		AccountID: accountID,
		Type:      domain.NotificationTypeNewVideos,
		Title:     title,
		Body:      e.body(titles),
		Payload:   e.payload(newItems),
		Unread:    true,
	}

	err := repeater.NewFixed(3, e.retryDelay).Do(ctx, func() error {
		return e.store.CreateNotification(ctx, notification)
	})
	if err != nil {
		lgr.Printf("[WARN] account %d: notification write failed after retries: %v", accountID, err)
		return
	}
	lgr.Printf("[DEBUG] account %d: notification emitted for %d items", accountID, len(newItems))
}

// body joins the first maxTitles titles, noting how many were cut
func (e *Emitter) body(titles []string) string {
	shown := titles
	if len(shown) > e.maxTitles {
		shown = shown[:e.maxTitles]
	}
	body := strings.Join(shown, "\n")
	if rest := len(titles) - len(shown); rest > 0 {
		body += fmt.Sprintf("\nand %d more", rest)
	}
	return body
}

// payload keeps the newest maxPayload items
func (e *Emitter) payload(items []domain.RemoteItem) []domain.NotificationItem {
	sorted := make([]domain.RemoteItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Published.After(sorted[j].Published) })
	if len(sorted) > e.maxPayload {
		sorted = sorted[:e.maxPayload]
	}

	payload := make([]domain.NotificationItem, len(sorted))
	for i, item := range sorted {
		payload[i] = domain.NotificationItem{
			Key:       item.Key,
			Title:     item.Title,
			Cover:     item.Cover,
			Published: item.Published,
		}
	}
	return payload
}

package domain

import "time"

// RemoteItem is a video as returned by the upstream creator feed.
// It exists only in memory during one sync pass.
type RemoteItem struct {
	ID          string // provider item id
	Key         string // natural dedup key
	Title       string
	Cover       string
	Description string
	Duration    int // seconds
	Published   time.Time
	SourceID    int64
}

// Video is the durable record for a synced video. The pair
// (AccountID, Platform, Key) is unique; re-running the sync can never
// insert the same video twice. Engagement counters start at zero and
// are owned by a different subsystem after creation.
type Video struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	SourceID  int64     `json:"source_id"`
	Platform  string    `json:"platform"`
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Cover     string    `json:"cover"`
	Duration  int       `json:"duration"` // seconds
	Published time.Time `json:"published"`
	Views     int64     `json:"views"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

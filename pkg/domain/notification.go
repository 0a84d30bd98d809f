package domain

import "time"

// NotificationTypeNewVideos tags digest notifications produced by the sync pipeline
const NotificationTypeNewVideos = "new_videos"

// Notification is a per-account digest written once per sync run when
// new videos were persisted. Never updated by the pipeline afterwards.
type Notification struct {
	ID        int64              `json:"id"`
	AccountID int64              `json:"account_id"`
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	Body      string             `json:"body"`
	Payload   []NotificationItem `json:"payload"`
	Unread    bool               `json:"unread"`
	CreatedAt time.Time          `json:"created_at"`
}

// NotificationItem is one entry of the structured digest payload
type NotificationItem struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Cover     string    `json:"cover"`
	Published time.Time `json:"published"`
}

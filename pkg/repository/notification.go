package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vidscope/vidscope/pkg/domain"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *sqlx.DB
}

// notificationSQL represents a notification for SQL operations
type notificationSQL struct {
	ID        int64      `db:"id"`
	AccountID int64      `db:"account_id"`
	Type      string     `db:"type"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	Payload   payloadSQL `db:"payload"`
	Unread    bool       `db:"unread"`
	CreatedAt time.Time  `db:"created_at"`
}

// payloadSQL is a JSON array of digest items for SQL operations
type payloadSQL []domain.NotificationItem

// Value implements driver.Valuer for database storage
func (p payloadSQL) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *payloadSQL) Scan(value interface{}) error {
	if value == nil {
		*p = payloadSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported payload type %T", value)
	}

	return json.Unmarshal(data, p)
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(database *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: database}
}

// CreateNotification inserts a new notification row
func (r *NotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (account_id, type, title, body, payload, unread)
		VALUES (:account_id, :type, :title, :body, :payload, :unread)
	`
	result, err := r.db.NamedExecContext(ctx, query, &notificationSQL{
		AccountID: n.AccountID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		Payload:   payloadSQL(n.Payload),
		Unread:    n.Unread,
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	n.ID = id
	return nil
}

// GetNotifications retrieves notifications for an account, newest first
func (r *NotificationRepository) GetNotifications(ctx context.Context, accountID int64, limit int) ([]domain.Notification, error) {
	query := `
		SELECT * FROM notifications
		WHERE account_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	var sqlNotifications []notificationSQL
	err := r.db.SelectContext(ctx, &sqlNotifications, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	notifications := make([]domain.Notification, len(sqlNotifications))
	for i, n := range sqlNotifications {
		notifications[i] = domain.Notification{
			ID:        n.ID,
			AccountID: n.AccountID,
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Body,
			Payload:   n.Payload,
			Unread:    n.Unread,
			CreatedAt: n.CreatedAt,
		}
	}
	return notifications, nil
}

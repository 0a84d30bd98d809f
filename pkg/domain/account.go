package domain

import "time"

// Account represents a dashboard user with a stored upstream credential.
// The credential is an opaque cookie/token string set at registration and
// mutated by the user; the sync pipeline only reads it.
type Account struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Credential string    `json:"-"` // opaque secret, never serialized
	CreatedAt  time.Time `json:"created_at"`
}

// HasCredential reports whether the account can be synced at all
func (a *Account) HasCredential() bool { return a.Credential != "" }

// Source is a tracked upstream creator scoped to one account.
// Sources are created and deleted by the user outside the pipeline;
// the pipeline only reads active ones.
type Source struct {
	ID         int64     `json:"id"`
	AccountID  int64     `json:"account_id"`
	UpstreamID int64     `json:"upstream_id"` // provider-side creator id
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

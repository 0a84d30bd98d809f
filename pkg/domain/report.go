package domain

import "time"

// AccountReport is the outcome of syncing one account: either a count
// of newly persisted videos or an error string, never both.
type AccountReport struct {
	AccountID int64  `json:"account_id"`
	NewItems  int    `json:"new_items"`
	Error     string `json:"error,omitempty"`
}

// RunReport aggregates per-account outcomes for one pipeline invocation.
// It is returned to the caller and not persisted.
type RunReport struct {
	Success   bool            `json:"success"`
	Timestamp time.Time       `json:"timestamp"`
	Accounts  []AccountReport `json:"accounts"`
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vidscope/vidscope/pkg/domain"
)

// AccountRepository handles account-related database operations
type AccountRepository struct {
	db *sqlx.DB
}

// accountSQL represents an account for SQL operations
type accountSQL struct {
	ID         int64     `db:"id"`
	Username   string    `db:"username"`
	Credential string    `db:"credential"`
	CreatedAt  time.Time `db:"created_at"`
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(database *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: database}
}

// CreateAccount inserts a new account
func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (username, credential) VALUES (:username, :credential)`
	result, err := r.db.NamedExecContext(ctx, query, &accountSQL{
		Username:   account.Username,
		Credential: account.Credential,
	})
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	account.ID = id
	return nil
}

// GetAccount retrieves an account by ID
func (r *AccountRepository) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	var sqlAccount accountSQL
	err := r.db.GetContext(ctx, &sqlAccount, "SELECT * FROM accounts WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return r.toDomainAccount(&sqlAccount), nil
}

// GetAccountsWithCredential retrieves accounts eligible for syncing,
// i.e. those with a stored upstream credential
func (r *AccountRepository) GetAccountsWithCredential(ctx context.Context) ([]domain.Account, error) {
	var sqlAccounts []accountSQL
	err := r.db.SelectContext(ctx, &sqlAccounts, "SELECT * FROM accounts WHERE credential != '' ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("get accounts with credential: %w", err)
	}

	accounts := make([]domain.Account, len(sqlAccounts))
	for i, a := range sqlAccounts {
		accounts[i] = *r.toDomainAccount(&a)
	}
	return accounts, nil
}

// UpdateCredential replaces the stored upstream credential for an account
func (r *AccountRepository) UpdateCredential(ctx context.Context, accountID int64, credential string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE accounts SET credential = ? WHERE id = ?", credential, accountID)
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account %d not found", accountID)
	}
	return nil
}

// toDomainAccount converts accountSQL to domain.Account
func (r *AccountRepository) toDomainAccount(a *accountSQL) *domain.Account {
	return &domain.Account{
		ID:         a.ID,
		Username:   a.Username,
		Credential: a.Credential,
		CreatedAt:  a.CreatedAt,
	}
}

package core

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mdobak/go-xerrors"
	"github.com/nexusclub/nexus-board/internal/utils/databaseutils"
	"github.com/nexusclub/nexus-board/models"
)

func scanAccount(rows *sql.Rows) (*models.Account, error) {
	var account = &models.Account{}

	if err := rows.Scan(
		&account.ID,
		&account.AccountName,
		&account.UserID,
		&account.CreatedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return account, nil
}

func (c *Core) GetAccounts(ctx context.Context) ([]*models.Account, error) {
	query := `
		SELECT id, account_name, user_id, created_at
		FROM accounts
		ORDER BY created_at DESC
	`

	accountList, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, query, scanAccount)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return accountList, nil
}

func (c *Core) GetAccountByUserID(ctx context.Context, userID string) (*models.Account, error) {
	query := `
		SELECT id, account_name, user_id, created_at
		FROM accounts
		WHERE user_id = $1
	`

	account, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanAccount, userID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return account, nil
}

func (c *Core) CreateAccount(ctx context.Context, accountName, userID string) (*models.Account, error) {
	query := `
		INSERT INTO accounts (id, account_name, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, account_name, user_id, created_at
	`

	args := []any{uuid.New().String(), accountName, userID, time.Now()}
	account, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanAccount, args...)
	if err != nil {
		return nil, xerrors.New(err)
	}

	c.log.Info("Account created", "account_id", account.ID, "user_id", account.UserID)
	return account, nil
}

func (c *Core) DeleteAccount(ctx context.Context, id string) error {
	query := `
		DELETE FROM accounts
		WHERE id = $1
	`

	// Owned content is intentionally left in place; the board keeps
	// orphaned rows queryable.
	if _, err := databaseutils.ExecuteUpdate(c.sqlTemplate, ctx, query, id); err != nil {
		return xerrors.New(err)
	}

	return nil
}

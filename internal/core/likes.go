package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mdobak/go-xerrors"
	"github.com/nexusclub/nexus-board/internal/utils/databaseutils"
	"github.com/nexusclub/nexus-board/models"
)

// LikeUpdate carries the fields of a partial moderation update. Nil pointers
// are left untouched in the store.
type LikeUpdate struct {
	Notes        *string
	DisplayOrder *int64
}

const likeColumns = "id, content_id, notes, display_order, liked_at"

func scanAdminLike(rows *sql.Rows) (*models.AdminLike, error) {
	var like = &models.AdminLike{}

	if err := rows.Scan(
		&like.ID,
		&like.ContentID,
		&like.Notes,
		&like.DisplayOrder,
		&like.LikedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return like, nil
}

// GetLike returns the moderation entry for the given content. Absence is a
// normal outcome and surfaces as NoRecordFound for the caller to interpret.
func (c *Core) GetLike(ctx context.Context, contentID string) (*models.AdminLike, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM admin_likes
		WHERE content_id = $1
	`, likeColumns)

	like, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanAdminLike, contentID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return like, nil
}

func (c *Core) CreateLike(ctx context.Context, contentID string, notes *string, displayOrder int64) (*models.AdminLike, error) {
	query := fmt.Sprintf(`
		INSERT INTO admin_likes (id, content_id, notes, display_order, liked_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, likeColumns)

	args := []any{uuid.New().String(), contentID, notes, displayOrder, time.Now()}
	like, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanAdminLike, args...)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), `duplicate key value violates unique constraint`):
			// Two admins raced on the same content; the entry that won
			// the insert is the one that counts.
			return c.GetLike(ctx, contentID)
		default:
			return nil, xerrors.New(err)
		}
	}

	c.log.Info("Content featured", "content_id", like.ContentID, "display_order", like.DisplayOrder)
	return like, nil
}

func likeUpdateQuery(contentID string, update LikeUpdate) (string, []any) {
	var sets []string
	var args []any

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Notes != nil {
		appendSet("notes", *update.Notes)
	}
	if update.DisplayOrder != nil {
		appendSet("display_order", *update.DisplayOrder)
	}

	args = append(args, contentID)
	query := fmt.Sprintf(`UPDATE admin_likes SET %s WHERE content_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), likeColumns)

	return query, args
}

func (c *Core) UpdateLike(ctx context.Context, contentID string, update LikeUpdate) (*models.AdminLike, error) {
	if update.Notes == nil && update.DisplayOrder == nil {
		return c.GetLike(ctx, contentID)
	}

	query, args := likeUpdateQuery(contentID, update)

	like, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanAdminLike, args...)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return like, nil
}

func (c *Core) DeleteLike(ctx context.Context, contentID string) error {
	query := `
		DELETE FROM admin_likes
		WHERE content_id = $1
	`

	if _, err := databaseutils.ExecuteUpdate(c.sqlTemplate, ctx, query, contentID); err != nil {
		return xerrors.New(err)
	}

	return nil
}

func (c *Core) GetShowcased(ctx context.Context) ([]*models.ShowcasedItem, error) {
	query := `
		SELECT content_id, user_id, account_name, content_type, title, description, url, tags, notes, display_order, liked_at, created_at
		FROM showcased_content
		ORDER BY display_order DESC, liked_at DESC
	`

	showcased, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, query, func(rows *sql.Rows) (*models.ShowcasedItem, error) {
		var item = &models.ShowcasedItem{}

		if err := rows.Scan(
			&item.ContentID,
			&item.UserID,
			&item.AccountName,
			&item.ContentType,
			&item.Title,
			&item.Description,
			&item.URL,
			(*pq.StringArray)(&item.Tags),
			&item.Notes,
			&item.DisplayOrder,
			&item.LikedAt,
			&item.CreatedAt,
		); err != nil {
			return nil, xerrors.New(err)
		}
		return item, nil
	})

	if err != nil {
		return nil, xerrors.New(err)
	}

	return showcased, nil
}

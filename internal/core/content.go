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

// ContentFilter holds optional equality predicates for listing content.
// Zero-valued fields mean no constraint; set fields are ANDed.
type ContentFilter struct {
	UserID      string
	ContentID   string
	ContentType string
}

// ContentUpdate carries the fields of a partial update. Nil pointers are
// left untouched in the store.
type ContentUpdate struct {
	Title       *string
	Description *string
	URL         *string
	Tags        *[]string
}

const contentColumns = "id, user_id, content_type, title, description, url, tags, created_at, updated_at"

func scanContentItem(rows *sql.Rows) (*models.ContentItem, error) {
	var item = &models.ContentItem{}

	if err := rows.Scan(
		&item.ID,
		&item.UserID,
		&item.ContentType,
		&item.Title,
		&item.Description,
		&item.URL,
		(*pq.StringArray)(&item.Tags),
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return item, nil
}

func contentListQuery(filter ContentFilter) (string, []any) {
	var conditions []string
	var args []any

	appendCondition := func(column, value string) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.UserID != "" {
		appendCondition("user_id", filter.UserID)
	}
	if filter.ContentID != "" {
		appendCondition("id", filter.ContentID)
	}
	if filter.ContentType != "" {
		appendCondition("content_type", filter.ContentType)
	}

	query := fmt.Sprintf("SELECT %s FROM user_content", contentColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return query, args
}

func (c *Core) GetContent(ctx context.Context, filter ContentFilter) ([]*models.ContentItem, error) {
	query, args := contentListQuery(filter)

	contentList, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, query, scanContentItem, args...)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return contentList, nil
}

func (c *Core) GetContentByID(ctx context.Context, id string) (*models.ContentItem, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM user_content
		WHERE id = $1
	`, contentColumns)

	item, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanContentItem, id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return item, nil
}

func (c *Core) CreateContent(ctx context.Context, item *models.ContentItem) (*models.ContentItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO user_content (id, user_id, content_type, title, description, url, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, contentColumns)

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	args := []any{uuid.New().String(), item.UserID, item.ContentType, item.Title, item.Description, item.URL, pq.Array(tags), now, now}
	created, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanContentItem, args...)
	if err != nil {
		return nil, xerrors.New(err)
	}

	c.log.Info("Content created", "content_id", created.ID, "user_id", created.UserID, "content_type", created.ContentType)
	return created, nil
}

func contentUpdateQuery(id string, update ContentUpdate, now time.Time) (string, []any) {
	sets := []string{"updated_at = $1"}
	args := []any{now}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title != nil {
		appendSet("title", *update.Title)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.URL != nil {
		appendSet("url", *update.URL)
	}
	if update.Tags != nil {
		appendSet("tags", pq.Array(*update.Tags))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE user_content SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), contentColumns)

	return query, args
}

func (c *Core) UpdateContent(ctx context.Context, id string, update ContentUpdate) (*models.ContentItem, error) {
	query, args := contentUpdateQuery(id, update, time.Now())

	item, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, query, scanContentItem, args...)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return item, nil
}

func (c *Core) DeleteContent(ctx context.Context, id string) error {
	query := `
		DELETE FROM user_content
		WHERE id = $1
	`

	if _, err := databaseutils.ExecuteUpdate(c.sqlTemplate, ctx, query, id); err != nil {
		return xerrors.New(err)
	}

	return nil
}

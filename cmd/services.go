package main

import (
	"context"

	"github.com/nexusclub/nexus-board/internal/core"
	"github.com/nexusclub/nexus-board/models"
)

// The handler layer talks to the store through these interfaces; *core.Core
// satisfies all three.

type accountService interface {
	GetAccounts(ctx context.Context) ([]*models.Account, error)
	GetAccountByUserID(ctx context.Context, userID string) (*models.Account, error)
	CreateAccount(ctx context.Context, accountName, userID string) (*models.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

type contentService interface {
	GetContent(ctx context.Context, filter core.ContentFilter) ([]*models.ContentItem, error)
	GetContentByID(ctx context.Context, id string) (*models.ContentItem, error)
	CreateContent(ctx context.Context, item *models.ContentItem) (*models.ContentItem, error)
	UpdateContent(ctx context.Context, id string, update core.ContentUpdate) (*models.ContentItem, error)
	DeleteContent(ctx context.Context, id string) error
}

type likeService interface {
	GetLike(ctx context.Context, contentID string) (*models.AdminLike, error)
	CreateLike(ctx context.Context, contentID string, notes *string, displayOrder int64) (*models.AdminLike, error)
	UpdateLike(ctx context.Context, contentID string, update core.LikeUpdate) (*models.AdminLike, error)
	DeleteLike(ctx context.Context, contentID string) error
	GetShowcased(ctx context.Context) ([]*models.ShowcasedItem, error)
}

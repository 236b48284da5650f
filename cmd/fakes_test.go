package main

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nexusclub/nexus-board/internal/core"
	"github.com/nexusclub/nexus-board/models"
)

// fakeStore is a stateful in-memory stand-in for core.Core. It mirrors the
// store's semantics: created_at ordering on lists, partial updates, the
// showcased join ordered by display_order desc then liked_at desc, and
// core.NoRecordFound for absent rows.
type fakeStore struct {
	accounts map[string]*models.Account     // by id
	content  map[string]*models.ContentItem // by id
	likes    map[string]*models.AdminLike   // by content id
	now      time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[string]*models.Account),
		content:  make(map[string]*models.ContentItem),
		likes:    make(map[string]*models.AdminLike),
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick advances the fake clock so successive writes get strictly increasing
// timestamps.
func (f *fakeStore) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeStore) GetAccounts(ctx context.Context) ([]*models.Account, error) {
	var accounts []*models.Account
	for _, account := range f.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})
	return accounts, nil
}

func (f *fakeStore) GetAccountByUserID(ctx context.Context, userID string) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.UserID == userID {
			return account, nil
		}
	}
	return nil, core.NoRecordFound
}

func (f *fakeStore) CreateAccount(ctx context.Context, accountName, userID string) (*models.Account, error) {
	account := &models.Account{
		ID:          uuid.New().String(),
		AccountName: accountName,
		UserID:      userID,
		CreatedAt:   f.tick(),
	}
	f.accounts[account.ID] = account
	return account, nil
}

func (f *fakeStore) DeleteAccount(ctx context.Context, id string) error {
	delete(f.accounts, id)
	return nil
}

func (f *fakeStore) GetContent(ctx context.Context, filter core.ContentFilter) ([]*models.ContentItem, error) {
	var items []*models.ContentItem
	for _, item := range f.content {
		if filter.UserID != "" && item.UserID != filter.UserID {
			continue
		}
		if filter.ContentID != "" && item.ID != filter.ContentID {
			continue
		}
		if filter.ContentType != "" && item.ContentType != filter.ContentType {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (f *fakeStore) GetContentByID(ctx context.Context, id string) (*models.ContentItem, error) {
	item, ok := f.content[id]
	if !ok {
		return nil, core.NoRecordFound
	}
	return item, nil
}

func (f *fakeStore) CreateContent(ctx context.Context, item *models.ContentItem) (*models.ContentItem, error) {
	now := f.tick()
	created := &models.ContentItem{
		ID:          uuid.New().String(),
		UserID:      item.UserID,
		ContentType: item.ContentType,
		Title:       item.Title,
		Description: item.Description,
		URL:         item.URL,
		Tags:        item.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if created.Tags == nil {
		created.Tags = []string{}
	}
	f.content[created.ID] = created
	return created, nil
}

func (f *fakeStore) UpdateContent(ctx context.Context, id string, update core.ContentUpdate) (*models.ContentItem, error) {
	item, ok := f.content[id]
	if !ok {
		return nil, core.NoRecordFound
	}
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = update.Description
	}
	if update.URL != nil {
		item.URL = update.URL
	}
	if update.Tags != nil {
		item.Tags = *update.Tags
	}
	item.UpdatedAt = f.tick()
	return item, nil
}

func (f *fakeStore) DeleteContent(ctx context.Context, id string) error {
	delete(f.content, id)
	return nil
}

func (f *fakeStore) GetLike(ctx context.Context, contentID string) (*models.AdminLike, error) {
	like, ok := f.likes[contentID]
	if !ok {
		return nil, core.NoRecordFound
	}
	return like, nil
}

func (f *fakeStore) CreateLike(ctx context.Context, contentID string, notes *string, displayOrder int64) (*models.AdminLike, error) {
	if existing, ok := f.likes[contentID]; ok {
		return existing, nil
	}
	like := &models.AdminLike{
		ID:           uuid.New().String(),
		ContentID:    contentID,
		Notes:        notes,
		DisplayOrder: displayOrder,
		LikedAt:      f.tick(),
	}
	f.likes[contentID] = like
	return like, nil
}

func (f *fakeStore) UpdateLike(ctx context.Context, contentID string, update core.LikeUpdate) (*models.AdminLike, error) {
	like, ok := f.likes[contentID]
	if !ok {
		return nil, core.NoRecordFound
	}
	if update.Notes != nil {
		like.Notes = update.Notes
	}
	if update.DisplayOrder != nil {
		like.DisplayOrder = *update.DisplayOrder
	}
	return like, nil
}

func (f *fakeStore) DeleteLike(ctx context.Context, contentID string) error {
	delete(f.likes, contentID)
	return nil
}

func (f *fakeStore) GetShowcased(ctx context.Context) ([]*models.ShowcasedItem, error) {
	var showcased []*models.ShowcasedItem
	for contentID, like := range f.likes {
		item, ok := f.content[contentID]
		if !ok {
			continue
		}
		var accountName string
		if account, err := f.GetAccountByUserID(ctx, item.UserID); err == nil {
			accountName = account.AccountName
		}
		showcased = append(showcased, &models.ShowcasedItem{
			ContentID:    item.ID,
			UserID:       item.UserID,
			AccountName:  accountName,
			ContentType:  item.ContentType,
			Title:        item.Title,
			Description:  item.Description,
			URL:          item.URL,
			Tags:         item.Tags,
			Notes:        like.Notes,
			DisplayOrder: like.DisplayOrder,
			LikedAt:      like.LikedAt,
			CreatedAt:    item.CreatedAt,
		})
	}
	sort.Slice(showcased, func(i, j int) bool {
		if showcased[i].DisplayOrder != showcased[j].DisplayOrder {
			return showcased[i].DisplayOrder > showcased[j].DisplayOrder
		}
		return showcased[i].LikedAt.After(showcased[j].LikedAt)
	})
	return showcased, nil
}

package models

import "time"

const (
	ContentTypeThought = "thought"
	ContentTypeRepo    = "repo"
	ContentTypeBlog    = "blog"
)

// IsValidContentType reports whether kind is one of the three content kinds
// the board accepts.
func IsValidContentType(kind string) bool {
	switch kind {
	case ContentTypeThought, ContentTypeRepo, ContentTypeBlog:
		return true
	default:
		return false
	}
}

type Account struct {
	ID          string    `json:"id"`
	AccountName string    `json:"account_name"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContentItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ContentType string    `json:"content_type"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	URL         *string   `json:"url"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AdminLike struct {
	ID           string    `json:"id"`
	ContentID    string    `json:"content_id"`
	Notes        *string   `json:"notes"`
	DisplayOrder int64     `json:"display_order"`
	LikedAt      time.Time `json:"liked_at"`
}

// ShowcasedItem is one row of the showcased_content view: a liked content
// item joined with its owning account and the moderation entry.
type ShowcasedItem struct {
	ContentID    string    `json:"content_id"`
	UserID       string    `json:"user_id"`
	AccountName  string    `json:"account_name"`
	ContentType  string    `json:"content_type"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	URL          *string   `json:"url"`
	Tags         []string  `json:"tags"`
	Notes        *string   `json:"notes"`
	DisplayOrder int64     `json:"display_order"`
	LikedAt      time.Time `json:"liked_at"`
	CreatedAt    time.Time `json:"created_at"`
}

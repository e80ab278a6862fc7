package model

import (
	"time"
)

// Link types
const (
	LinkTypeRedirect = "redirect"
	LinkTypeBio      = "bio"
)

// Link represents a short link entity
type Link struct {
	ID             int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID        string       `json:"owner_id" gorm:"type:varchar(64);index"`
	ShortCode      string       `json:"short_code" gorm:"type:varchar(16);uniqueIndex;not null"`
	Type           string       `json:"type" gorm:"type:varchar(16);not null"`
	DestinationURL string       `json:"destination_url" gorm:"type:varchar(2048);not null"`
	Settings       LinkSettings `json:"settings" gorm:"embedded;embeddedPrefix:settings_"`
	ClickCount     int64        `json:"click_count" gorm:"not null;default:0"`
	CreatedAt      time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// LinkSettings holds the access policy of a link
type LinkSettings struct {
	ExpiresAt    *time.Time `json:"expires_at,omitempty" gorm:"index"`
	MaxClicks    *int64     `json:"max_clicks,omitempty"`
	PasswordHash string     `json:"-" gorm:"type:varchar(128)"`
	AllowBots    bool       `json:"allow_bots"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// IsExpired reports whether the link expired at the given instant
func (s LinkSettings) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// IsCapped reports whether clickCount reached the configured cap
func (s LinkSettings) IsCapped(clickCount int64) bool {
	return s.MaxClicks != nil && clickCount >= *s.MaxClicks
}

// HasPassword reports whether the link is password protected
func (s LinkSettings) HasPassword() bool {
	return s.PasswordHash != ""
}

// CachedLink is the snapshot of a link kept in the resolution cache.
// ClickCount is not cached; the cap check reads it live.
type CachedLink struct {
	ID             int64        `json:"id"`
	Type           string       `json:"type"`
	DestinationURL string       `json:"destination_url"`
	Settings       CachedPolicy `json:"settings"`
}

// CachedPolicy mirrors LinkSettings including the password hash
type CachedPolicy struct {
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	MaxClicks    *int64     `json:"max_clicks,omitempty"`
	PasswordHash string     `json:"password_hash,omitempty"`
	AllowBots    bool       `json:"allow_bots"`
}

// Snapshot builds the cacheable view of the link
func (l *Link) Snapshot() *CachedLink {
	return &CachedLink{
		ID:             l.ID,
		Type:           l.Type,
		DestinationURL: l.DestinationURL,
		Settings: CachedPolicy{
			ExpiresAt:    l.Settings.ExpiresAt,
			MaxClicks:    l.Settings.MaxClicks,
			PasswordHash: l.Settings.PasswordHash,
			AllowBots:    l.Settings.AllowBots,
		},
	}
}

// Policy returns the link settings carried by the snapshot
func (c *CachedLink) Policy() LinkSettings {
	return LinkSettings{
		ExpiresAt:    c.Settings.ExpiresAt,
		MaxClicks:    c.Settings.MaxClicks,
		PasswordHash: c.Settings.PasswordHash,
		AllowBots:    c.Settings.AllowBots,
	}
}

// CreateLinkRequest represents the request to create a short link
type CreateLinkRequest struct {
	URL       string `json:"url" binding:"required,url"`
	Type      string `json:"type" binding:"omitempty,oneof=redirect bio"`
	ExpiresAt string `json:"expires_at"`
	MaxClicks *int64 `json:"max_clicks" binding:"omitempty,min=1"`
	Password  string `json:"password"`
	AllowBots *bool  `json:"allow_bots"`
	OwnerID   string `json:"-"`
}

// CreateLinkResponse represents the response of short link creation
type CreateLinkResponse struct {
	ShortLink      string     `json:"short_link"`
	ShortCode      string     `json:"short_code"`
	DestinationURL string     `json:"destination_url"`
	Type           string     `json:"type"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// ResolveRequest carries a redirect attempt and the request metadata recorded with it
type ResolveRequest struct {
	ShortCode  string
	Password   string
	SourceIP   string
	UserAgent  string
	Referrer   string
	RequestURL string
}

// Resolution is the outcome of a successful redirect resolution
type Resolution struct {
	DestinationURL string `json:"destination_url"`
	LinkID         int64  `json:"link_id"`
	EventID        string `json:"event_id"`
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLink_TableName(t *testing.T) {
	l := Link{}
	assert.Equal(t, "links", l.TableName())
}

func TestLinkSettings_IsExpired(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name      string
		expiresAt *time.Time
		expected  bool
	}{
		{
			name:      "no expiration",
			expiresAt: nil,
			expected:  false,
		},
		{
			name:      "future expiration",
			expiresAt: &future,
			expected:  false,
		},
		{
			name:      "expired",
			expiresAt: &past,
			expected:  true,
		},
		{
			name:      "just now expiration",
			expiresAt: &now,
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := LinkSettings{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expected, s.IsExpired(now))
		})
	}
}

func TestLinkSettings_IsCapped(t *testing.T) {
	limit := int64(3)

	tests := []struct {
		name       string
		maxClicks  *int64
		clickCount int64
		expected   bool
	}{
		{name: "no cap", maxClicks: nil, clickCount: 1000, expected: false},
		{name: "below cap", maxClicks: &limit, clickCount: 2, expected: false},
		{name: "at cap", maxClicks: &limit, clickCount: 3, expected: true},
		{name: "above cap", maxClicks: &limit, clickCount: 4, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := LinkSettings{MaxClicks: tt.maxClicks}
			assert.Equal(t, tt.expected, s.IsCapped(tt.clickCount))
		})
	}
}

func TestLink_Snapshot(t *testing.T) {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	limit := int64(10)

	l := &Link{
		ID:             7,
		ShortCode:      "AbCd123",
		Type:           LinkTypeBio,
		DestinationURL: "https://example.com",
		ClickCount:     5,
		Settings: LinkSettings{
			ExpiresAt:    &expires,
			MaxClicks:    &limit,
			PasswordHash: "$2a$10$hash",
			AllowBots:    true,
		},
	}

	snap := l.Snapshot()
	assert.Equal(t, int64(7), snap.ID)
	assert.Equal(t, LinkTypeBio, snap.Type)
	assert.Equal(t, "https://example.com", snap.DestinationURL)
	assert.Equal(t, l.Settings, snap.Policy())
	assert.True(t, snap.Policy().HasPassword())
}

package model

import (
	"time"
)

// Click represents one processed click, written once and never updated
type Click struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	EventID   string     `json:"-" gorm:"type:varchar(36);uniqueIndex;not null"`
	LinkID    int64      `json:"link_id" gorm:"index:idx_clicks_link_time,priority:1;not null"`
	ShortCode string     `json:"short_code" gorm:"type:varchar(16);not null"`
	Timestamp time.Time  `json:"timestamp" gorm:"index:idx_clicks_link_time,priority:2;not null"`
	HashedIP  string     `json:"-" gorm:"type:varchar(16)"`
	Geo       GeoInfo    `json:"geo" gorm:"embedded;embeddedPrefix:geo_"`
	Device    DeviceInfo `json:"device" gorm:"embedded;embeddedPrefix:device_"`
	Referrer  string     `json:"referrer,omitempty" gorm:"type:varchar(512)"`
	UTM       *UTMParams `json:"utm,omitempty" gorm:"serializer:json"`
	IsBot     bool       `json:"is_bot" gorm:"index"`
}

// TableName returns the table name for Click
func (Click) TableName() string {
	return "clicks"
}

// GeoInfo is the location resolved from the source IP
type GeoInfo struct {
	Country string   `json:"country" gorm:"type:varchar(64)"`
	Region  string   `json:"region,omitempty" gorm:"type:varchar(128)"`
	City    string   `json:"city,omitempty" gorm:"type:varchar(128)"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
}

// DeviceInfo is the heuristic decomposition of a user agent
type DeviceInfo struct {
	Type         string `json:"type" gorm:"type:varchar(32)"`
	OS           string `json:"os" gorm:"type:varchar(64)"`
	Browser      string `json:"browser" gorm:"type:varchar(64)"`
	RawUserAgent string `json:"raw_user_agent" gorm:"type:varchar(512)"`
}

// UTMParams holds campaign parameters taken from the request URL
type UTMParams struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Term     string `json:"term,omitempty"`
	Content  string `json:"content,omitempty"`
}

// ClickEvent is the raw click published on every successful redirect
type ClickEvent struct {
	EventID    string    `json:"event_id"`
	ShortCode  string    `json:"short_code"`
	LinkID     int64     `json:"link_id"`
	SourceIP   string    `json:"source_ip"`
	UserAgent  string    `json:"user_agent"`
	Referrer   string    `json:"referrer,omitempty"`
	RequestURL string    `json:"request_url,omitempty"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

package model

import (
	"time"
)

const (
	// DateLayout is the layout of DailyRollup.Date
	DateLayout = "2006-01-02"
	// TopListSize bounds the top countries/browsers/devices lists
	TopListSize = 10
	// RecentClicksLimit bounds the recent clicks returned by analytics
	RecentClicksLimit = 100
)

// HourlyRollup is the non-bot click count of one link in one UTC hour
type HourlyRollup struct {
	ID          int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	LinkID      int64     `json:"link_id" gorm:"uniqueIndex:uk_hourly_link_hour,priority:1;not null"`
	Hour        time.Time `json:"hour" gorm:"uniqueIndex:uk_hourly_link_hour,priority:2;not null"`
	TotalClicks int64     `json:"total_clicks"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for HourlyRollup
func (HourlyRollup) TableName() string {
	return "analytics_hourly"
}

// DailyRollup is the summary of one link's non-bot clicks in one UTC day
type DailyRollup struct {
	ID           int64       `json:"-" gorm:"primaryKey;autoIncrement"`
	LinkID       int64       `json:"link_id" gorm:"uniqueIndex:uk_daily_link_date,priority:1;not null"`
	Date         string      `json:"date" gorm:"type:char(10);uniqueIndex:uk_daily_link_date,priority:2;not null"`
	TotalClicks  int64       `json:"total_clicks"`
	UniqueClicks int64       `json:"unique_clicks"`
	TopCountries []CountStat `json:"top_countries" gorm:"serializer:json"`
	TopBrowsers  []CountStat `json:"top_browsers" gorm:"serializer:json"`
	TopDevices   []CountStat `json:"top_devices" gorm:"serializer:json"`
	ClicksByHour []int64     `json:"clicks_by_hour" gorm:"serializer:json"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for DailyRollup
func (DailyRollup) TableName() string {
	return "analytics_daily"
}

// CountStat is one entry of a top-N list
type CountStat struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// AnalyticsResponse represents the analytics of one link
type AnalyticsResponse struct {
	ShortCode     string         `json:"short_code"`
	TotalClicks   int64          `json:"total_clicks"`
	DailyRollups  []DailyRollup  `json:"daily_rollups"`
	HourlyRollups []HourlyRollup `json:"hourly_rollups"`
	RecentClicks  []Click        `json:"recent_clicks"`
}

// AnalyticsQuery narrows the rollups returned by analytics.
// Zero values mean unbounded.
type AnalyticsQuery struct {
	From time.Time
	To   time.Time
}

// HourBucket returns the UTC hour containing ts
func HourBucket(ts time.Time) time.Time {
	return ts.UTC().Truncate(time.Hour)
}

// DayBucket returns the UTC midnight starting the day containing ts
func DayBucket(ts time.Time) time.Time {
	t := ts.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

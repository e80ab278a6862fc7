package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"linkpulse/internal/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

var linkColumns = []string{
	"id", "owner_id", "short_code", "type", "destination_url",
	"settings_expires_at", "settings_max_clicks", "settings_password_hash", "settings_allow_bots",
	"click_count", "created_at", "updated_at",
}

func TestSQLRepository_SaveLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	ctx := context.Background()

	t.Run("save link successfully", func(t *testing.T) {
		l := &model.Link{
			ShortCode:      "AbCd123",
			Type:           model.LinkTypeRedirect,
			DestinationURL: "https://example.com",
			Settings:       model.LinkSettings{AllowBots: true},
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.SaveLink(ctx, l)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), l.ID)
	})

	t.Run("duplicate short code", func(t *testing.T) {
		l := &model.Link{ShortCode: "AbCd123", DestinationURL: "https://example.com"}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnError(gorm.ErrDuplicatedKey)
		mock.ExpectRollback()

		err := repo.SaveLink(ctx, l)
		assert.ErrorIs(t, err, ErrDuplicateCode)
	})

	t.Run("save link with error", func(t *testing.T) {
		l := &model.Link{ShortCode: "AbCd123", DestinationURL: "https://example.com"}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.SaveLink(ctx, l)
		assert.ErrorIs(t, err, assert.AnError)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_FindByShortCode(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	ctx := context.Background()

	t.Run("existing link", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(linkColumns).
			AddRow(1, "owner-1", "AbCd123", "redirect", "https://example.com", nil, 5, "", true, 2, now, now)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE short_code = ? ORDER BY `links`.`id` LIMIT ?")).
			WithArgs("AbCd123", 1).
			WillReturnRows(rows)

		l, err := repo.FindByShortCode(ctx, "AbCd123")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", l.DestinationURL)
		assert.Equal(t, int64(2), l.ClickCount)
		require.NotNil(t, l.Settings.MaxClicks)
		assert.Equal(t, int64(5), *l.Settings.MaxClicks)
		assert.True(t, l.Settings.AllowBots)
		assert.Nil(t, l.Settings.ExpiresAt)
	})

	t.Run("missing link", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE short_code = ? ORDER BY `links`.`id` LIMIT ?")).
			WithArgs("missing", 1).
			WillReturnRows(sqlmock.NewRows(linkColumns))

		l, err := repo.FindByShortCode(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, l)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE short_code = ?")).
			WithArgs("AbCd123", 1).
			WillReturnError(assert.AnError)

		l, err := repo.FindByShortCode(ctx, "AbCd123")
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, l)
	})
}

func TestSQLRepository_CheckExistsByCode(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	ctx := context.Background()

	t.Run("code exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `links` WHERE short_code = ?")).
			WithArgs("AbCd123").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.CheckExistsByCode(ctx, "AbCd123")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("code does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `links` WHERE short_code = ?")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.CheckExistsByCode(ctx, "missing")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestSQLRepository_GetClickCount(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	ctx := context.Background()

	t.Run("existing link", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM `links` WHERE id = ?")).
			WithArgs(int64(7), 1).
			WillReturnRows(sqlmock.NewRows([]string{"click_count"}).AddRow(42))

		count, err := repo.GetClickCount(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), count)
	})

	t.Run("missing link", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM `links` WHERE id = ?")).
			WithArgs(int64(8), 1).
			WillReturnRows(sqlmock.NewRows([]string{"click_count"}))

		_, err := repo.GetClickCount(ctx, 8)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLRepository_IncrementClickCount(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	ctx := context.Background()

	t.Run("increments counter", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `click_count`=click_count + ? WHERE id = ?")).
			WithArgs(1, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.IncrementClickCount(ctx, 7))
	})

	t.Run("missing link", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `click_count`=click_count + ? WHERE id = ?")).
			WithArgs(1, int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, repo.IncrementClickCount(ctx, 8), ErrNotFound)
	})
}

func TestSQLRepository_CountByOwner(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `links` WHERE owner_id = ?")).
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByOwner(context.Background(), "owner-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSQLRepository_DeleteLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	ctx := context.Background()

	t.Run("delete existing link", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `links` WHERE short_code = ?")).
			WithArgs("AbCd123").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.DeleteLink(ctx, "AbCd123"))
	})

	t.Run("delete missing link", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `links` WHERE short_code = ?")).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, repo.DeleteLink(ctx, "missing"), ErrNotFound)
	})
}

func newTestClick() *model.Click {
	return &model.Click{
		EventID:   "6f1c1f5e-9a55-4c39-9d43-2f5b4a1f2c11",
		LinkID:    7,
		ShortCode: "AbCd123",
		Timestamp: time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC),
		HashedIP:  "0123456789abcdef",
		Geo:       model.GeoInfo{Country: "Unknown"},
		Device:    model.DeviceInfo{Type: "desktop", OS: "Windows", Browser: "Chrome"},
	}
}

func TestSQLRepository_RecordClick(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	ctx := context.Background()

	t.Run("first delivery inserts and increments", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `clicks`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links` SET `click_count`=click_count + ? WHERE id = ?")).
			WithArgs(1, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		inserted, err := repo.RecordClick(ctx, newTestClick())
		assert.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("redelivered event is a no-op", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `clicks`")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		inserted, err := repo.RecordClick(ctx, newTestClick())
		assert.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("increment failure rolls back the insert", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `clicks`")).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `links`")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		inserted, err := repo.RecordClick(ctx, newTestClick())
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, inserted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_CountClicks(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	from := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	t.Run("excluding bots", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `clicks` WHERE (link_id = ? AND timestamp >= ? AND timestamp < ?) AND is_bot = ?")).
			WithArgs(int64(7), from, to, false).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		count, err := repo.CountClicks(context.Background(), 7, from, to, true)
		assert.NoError(t, err)
		assert.Equal(t, int64(12), count)
	})

	t.Run("including bots", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `clicks` WHERE link_id = ? AND timestamp >= ? AND timestamp < ?")).
			WithArgs(int64(7), from, to).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

		count, err := repo.CountClicks(context.Background(), 7, from, to, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(15), count)
	})
}

func TestSQLRepository_GetRecentClicks(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "link_id", "short_code", "timestamp", "geo_country", "is_bot"}).
		AddRow(2, 7, "AbCd123", now, "DE", false).
		AddRow(1, 7, "AbCd123", now.Add(-time.Minute), "Unknown", true)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `clicks` WHERE link_id = ? ORDER BY timestamp DESC,id DESC LIMIT ?")).
		WithArgs(int64(7), 100).
		WillReturnRows(rows)

	clicks, err := repo.GetRecentClicks(context.Background(), 7, model.RecentClicksLimit)
	require.NoError(t, err)
	require.Len(t, clicks, 2)
	assert.Equal(t, "DE", clicks[0].Geo.Country)
	assert.True(t, clicks[1].IsBot)
}

func TestSQLRepository_UpsertRollups(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	ctx := context.Background()

	t.Run("hourly", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `analytics_hourly`") + ".*" + regexp.QuoteMeta("ON DUPLICATE KEY UPDATE")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.UpsertHourlyRollup(ctx, &model.HourlyRollup{
			LinkID:      7,
			Hour:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			TotalClicks: 4,
		})
		assert.NoError(t, err)
	})

	t.Run("daily", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `analytics_daily`") + ".*" + regexp.QuoteMeta("ON DUPLICATE KEY UPDATE")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.UpsertDailyRollup(ctx, &model.DailyRollup{
			LinkID:       7,
			Date:         "2026-03-01",
			TotalClicks:  4,
			UniqueClicks: 2,
			TopCountries: []model.CountStat{{Name: "DE", Count: 4}},
			ClicksByHour: make([]int64, 24),
		})
		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRepository_GetDailyRollups(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "link_id", "date", "total_clicks", "unique_clicks", "top_countries", "clicks_by_hour"}).
		AddRow(1, 7, "2026-03-01", 4, 2, `[{"name":"DE","count":4}]`, `[0,0,0,0,0,0,0,0,0,0,4,0,0,0,0,0,0,0,0,0,0,0,0,0]`)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `analytics_daily` WHERE link_id = ? AND date >= ? AND date < ? ORDER BY date ASC")).
		WithArgs(int64(7), "2026-03-01", "2026-03-08").
		WillReturnRows(rows)

	rollups, err := repo.GetDailyRollups(context.Background(), 7, from, to)
	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.Equal(t, []model.CountStat{{Name: "DE", Count: 4}}, rollups[0].TopCountries)
	assert.Equal(t, int64(4), rollups[0].ClicksByHour[10])
}

func TestSQLRepository_GetHourlyRollups_OpenRange(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	hour := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `analytics_hourly` WHERE link_id = ? ORDER BY hour ASC")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "link_id", "hour", "total_clicks"}).AddRow(1, 7, hour, 4))

	rollups, err := repo.GetHourlyRollups(context.Background(), 7, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.Equal(t, int64(4), rollups[0].TotalClicks)
}

func TestSQLRepository_GetDB(t *testing.T) {
	db, _ := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)
	assert.Equal(t, db, repo.GetDB())
}

func TestSQLRepository_Close(t *testing.T) {
	db, mock := newTestDB(t)

	repo := NewSQLRepositoryWithDB(db)

	mock.ExpectClose()

	err := repo.Close()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

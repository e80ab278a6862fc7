package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateCode is returned when a short code is already taken
	ErrDuplicateCode = errors.New("short code already exists")
)

// SQLRepository persists links, clicks and rollups through GORM
type SQLRepository struct {
	db *gorm.DB
}

// NewSQLRepository opens the configured database and migrates the schema
func NewSQLRepository(cfg *config.DatabaseConfig) (*SQLRepository, error) {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Postgres.DSN)
	default:
		dialector = mysql.Open(cfg.MySQL.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	if err := db.AutoMigrate(&model.Link{}, &model.Click{}, &model.HourlyRollup{}, &model.DailyRollup{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("driver", cfg.Driver).Msg("Database connected successfully")

	return &SQLRepository{db: db}, nil
}

// NewSQLRepositoryWithDB wraps an already opened GORM handle
func NewSQLRepositoryWithDB(db *gorm.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *SQLRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveLink saves a link. A taken short code yields ErrDuplicateCode.
func (r *SQLRepository) SaveLink(ctx context.Context, l *model.Link) error {
	err := r.db.WithContext(ctx).Create(l).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCode
	}
	return err
}

// FindByShortCode retrieves a link by short code
func (r *SQLRepository) FindByShortCode(ctx context.Context, shortCode string) (*model.Link, error) {
	var l model.Link
	err := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CheckExistsByCode checks if a short code exists
func (r *SQLRepository) CheckExistsByCode(ctx context.Context, shortCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("short_code = ?", shortCode).
		Count(&count).Error
	return count > 0, err
}

// GetClickCount reads the live click counter of a link
func (r *SQLRepository) GetClickCount(ctx context.Context, linkID int64) (int64, error) {
	var l model.Link
	err := r.db.WithContext(ctx).
		Select("click_count").
		Where("id = ?", linkID).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrNotFound
	}
	return l.ClickCount, err
}

// IncrementClickCount atomically adds one to the click counter
func (r *SQLRepository) IncrementClickCount(ctx context.Context, linkID int64) error {
	return incrementClickCount(r.db.WithContext(ctx), linkID)
}

func incrementClickCount(db *gorm.DB, linkID int64) error {
	result := db.Model(&model.Link{}).
		Where("id = ?", linkID).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByOwner returns the number of links an owner holds
func (r *SQLRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}

// DeleteLink removes a link by short code. Its clicks and rollups are kept.
func (r *SQLRepository) DeleteLink(ctx context.Context, shortCode string) error {
	result := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		Delete(&model.Link{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertClick stores a click once per event id. It reports false when
// the event was already recorded.
func (r *SQLRepository) InsertClick(ctx context.Context, click *model.Click) (bool, error) {
	return insertClick(r.db.WithContext(ctx), click)
}

func insertClick(db *gorm.DB, click *model.Click) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoNothing: true,
	}).Create(click)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RecordClick inserts the click and increments the link counter in one
// transaction. A redelivered event neither inserts nor increments.
func (r *SQLRepository) RecordClick(ctx context.Context, click *model.Click) (bool, error) {
	var inserted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := insertClick(tx, click)
		if err != nil {
			return fmt.Errorf("insert click: %w", err)
		}
		if !ok {
			return nil
		}
		if err := incrementClickCount(tx, click.LinkID); err != nil {
			return fmt.Errorf("increment click count: %w", err)
		}
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *SQLRepository) clicksInRange(ctx context.Context, linkID int64, from, to time.Time, excludeBots bool) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&model.Click{}).
		Where("link_id = ? AND timestamp >= ? AND timestamp < ?", linkID, from, to)
	if excludeBots {
		query = query.Where("is_bot = ?", false)
	}
	return query
}

// CountClicks counts the clicks of a link in [from, to)
func (r *SQLRepository) CountClicks(ctx context.Context, linkID int64, from, to time.Time, excludeBots bool) (int64, error) {
	var count int64
	err := r.clicksInRange(ctx, linkID, from, to, excludeBots).Count(&count).Error
	return count, err
}

// ListClicks returns the clicks of a link in [from, to), oldest first
func (r *SQLRepository) ListClicks(ctx context.Context, linkID int64, from, to time.Time, excludeBots bool) ([]model.Click, error) {
	var clicks []model.Click
	err := r.clicksInRange(ctx, linkID, from, to, excludeBots).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&clicks).Error
	return clicks, err
}

// GetRecentClicks returns the latest clicks of a link, newest first
func (r *SQLRepository) GetRecentClicks(ctx context.Context, linkID int64, limit int) ([]model.Click, error) {
	var clicks []model.Click
	query := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("timestamp DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&clicks).Error
	return clicks, err
}

// UpsertHourlyRollup writes the hourly bucket, replacing any previous value
func (r *SQLRepository) UpsertHourlyRollup(ctx context.Context, rollup *model.HourlyRollup) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "link_id"}, {Name: "hour"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_clicks", "updated_at"}),
	}).Create(rollup).Error
}

// UpsertDailyRollup writes the daily bucket, replacing any previous value
func (r *SQLRepository) UpsertDailyRollup(ctx context.Context, rollup *model.DailyRollup) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "link_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_clicks",
			"unique_clicks",
			"top_countries",
			"top_browsers",
			"top_devices",
			"clicks_by_hour",
			"updated_at",
		}),
	}).Create(rollup).Error
}

// GetHourlyRollups returns the hourly buckets of a link in [from, to).
// Zero bounds are open.
func (r *SQLRepository) GetHourlyRollups(ctx context.Context, linkID int64, from, to time.Time) ([]model.HourlyRollup, error) {
	var rollups []model.HourlyRollup
	query := r.db.WithContext(ctx).Where("link_id = ?", linkID)
	if !from.IsZero() {
		query = query.Where("hour >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("hour < ?", to)
	}
	err := query.Order("hour ASC").Find(&rollups).Error
	return rollups, err
}

// GetDailyRollups returns the daily buckets of a link in [from, to).
// Zero bounds are open.
func (r *SQLRepository) GetDailyRollups(ctx context.Context, linkID int64, from, to time.Time) ([]model.DailyRollup, error) {
	var rollups []model.DailyRollup
	query := r.db.WithContext(ctx).Where("link_id = ?", linkID)
	if !from.IsZero() {
		query = query.Where("date >= ?", from.UTC().Format(model.DateLayout))
	}
	if !to.IsZero() {
		query = query.Where("date < ?", to.UTC().Format(model.DateLayout))
	}
	err := query.Order("date ASC").Find(&rollups).Error
	return rollups, err
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clickgate/internal/config"
	"clickgate/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SQLRepository stores links, analytics and click logs through GORM (MySQL or PostgreSQL)
type SQLRepository struct {
	db *gorm.DB
}

// NewSQLRepository opens the configured database and migrates the tables
func NewSQLRepository(cfg *config.DatabaseConfig) (*SQLRepository, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported SQL driver %q", cfg.Driver)
	}

	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(&model.Link{}, &model.Analytics{}, &model.ClickLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("driver", cfg.Driver).Msg("Database connected successfully")

	return &SQLRepository{db: db}, nil
}

// GetDB returns the GORM DB instance
func (r *SQLRepository) GetDB() *gorm.DB {
	return r.db
}

// CreateLink inserts a link and its empty analytics in one transaction
func (r *SQLRepository) CreateLink(ctx context.Context, link *model.Link, analytics *model.Analytics) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		return tx.Create(analytics).Error
	})
}

// GetLinkByCode retrieves a link by short code, whatever its state
func (r *SQLRepository) GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	var l model.Link
	err := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&l).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

// CheckExistsByCode checks if a short code is taken
func (r *SQLRepository) CheckExistsByCode(ctx context.Context, shortCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("short_code = ?", shortCode).
		Count(&count).Error
	return count > 0, err
}

// SetActive toggles the active flag
func (r *SQLRepository) SetActive(ctx context.Context, shortCode string, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("short_code = ?", shortCode).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLink removes a link together with its analytics
func (r *SQLRepository) DeleteLink(ctx context.Context, shortCode string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("short_code = ?", shortCode).Delete(&model.Link{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("short_code = ?", shortCode).Delete(&model.Analytics{}).Error
	})
}

// GetAnalyticsByCode retrieves the analytics of a short code
func (r *SQLRepository) GetAnalyticsByCode(ctx context.Context, shortCode string) (*model.Analytics, error) {
	var a model.Analytics
	err := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&a).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

// AnalyticsExists reports whether the companion analytics row exists
func (r *SQLRepository) AnalyticsExists(ctx context.Context, shortCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Analytics{}).
		Where("short_code = ?", shortCode).
		Count(&count).Error
	return count > 0, err
}

// RecordClick decrements the transfer quota if it is enabled and positive,
// locks the analytics row, applies fn and commits both together.
//
// Rows are locked links first, then link_analytics, the same order DeleteLink
// takes them in.
func (r *SQLRepository) RecordClick(ctx context.Context, shortCode string, fn func(a *model.Analytics)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Link{}).
			Where("short_code = ? AND transfer_enabled = ? AND transfer_remaining > 0", shortCode, true).
			UpdateColumn("transfer_remaining", gorm.Expr("transfer_remaining - ?", 1)).Error
		if err != nil {
			return err
		}

		var a model.Analytics
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("short_code = ?", shortCode).
			First(&a).Error
		if err != nil {
			return notFound(err)
		}

		fn(&a)
		return tx.Save(&a).Error
	})
}

// ListLinksByWorkspace returns every link of a workspace
func (r *SQLRepository) ListLinksByWorkspace(ctx context.Context, workspaceID string) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id").
		Find(&links).Error
	return links, err
}

// ListAnalyticsByWorkspace returns the analytics of every link of a workspace
func (r *SQLRepository) ListAnalyticsByWorkspace(ctx context.Context, workspaceID string) ([]model.Analytics, error) {
	var list []model.Analytics
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id").
		Find(&list).Error
	return list, err
}

// SaveClickLog stores a click log; a duplicate event id is ignored
func (r *SQLRepository) SaveClickLog(ctx context.Context, clickLog *model.ClickLog) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(clickLog).Error
}

// ClickLogExists reports whether an event was already logged
func (r *SQLRepository) ClickLogExists(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ClickLog{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count > 0, err
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"usagebar/internal/config"
	"usagebar/internal/domain"
	"usagebar/internal/ports"
)

const maxRetries = 5

// SQLiteRepository implements ports.SnapshotRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SnapshotRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (and creates if needed) the history database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// The daemon writes while `usagebar history` reads
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := db.AutoMigrate(&UsageSnapshotModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate usage_snapshots schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForHome opens history.db under the given usagebar home
func NewSQLiteRepositoryForHome(home string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(home, "history.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save inserts a snapshot
func (r *SQLiteRepository) Save(ctx context.Context, snapshot domain.UsageSnapshot) error {
	model := domainToSnapshotModel(snapshot)
	model.ID = 0
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to save usage snapshot: %w", err)
		}
		return nil
	}, maxRetries)
}

// List returns up to limit snapshots, newest first
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]domain.UsageSnapshot, error) {
	var models []UsageSnapshotModel
	err := withRetry(func() error {
		q := r.db.WithContext(ctx).Order("captured_at DESC").Order("id DESC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage snapshots: %w", err)
	}

	snapshots := make([]domain.UsageSnapshot, 0, len(models))
	for _, m := range models {
		snapshots = append(snapshots, snapshotModelToDomain(m))
	}
	return snapshots, nil
}

// Prune deletes everything but the newest keep snapshots
func (r *SQLiteRepository) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return fmt.Errorf("keep must not be negative, got %d", keep)
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			newest := tx.Model(&UsageSnapshotModel{}).
				Select("id").
				Order("captured_at DESC").
				Order("id DESC").
				Limit(keep)

			result := tx.Where("id NOT IN (?)", newest).Delete(&UsageSnapshotModel{})
			if result.Error != nil {
				return fmt.Errorf("failed to prune usage snapshots: %w", result.Error)
			}
			return nil
		})
	}, maxRetries)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

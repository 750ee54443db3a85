package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = "file::memory:"

// MaxUsernameLength bounds stored names; longer names are truncated.
const MaxUsernameLength = 32

// ErrEmptyUsername is returned when a score is recorded without a name.
var ErrEmptyUsername = errors.New("empty username")

// Score is one finished run.
type Score struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Username  string    `gorm:"size:32;index" json:"username"`
	Points    int       `gorm:"index" json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists finished runs in SQLite.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the leaderboard database at path and migrates it.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open scores db: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps
	// an in-memory database alive across calls.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("scores db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Score{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate scores: %w", err)
	}
	return &Store{db: db}, nil
}

// Record stores a finished run.
func (s *Store) Record(ctx context.Context, username string, points int) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) > MaxUsernameLength {
		username = username[:MaxUsernameLength]
	}
	row := Score{Username: username, Points: points}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// Top returns the n best runs, highest first. Ties go to the earlier run.
func (s *Store) Top(ctx context.Context, n int) ([]Score, error) {
	if n <= 0 {
		return nil, nil
	}
	var rows []Score
	err := s.db.WithContext(ctx).
		Order("points desc").
		Order("id asc").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	return rows, nil
}

// Best returns the highest score recorded for username, or 0.
func (s *Store) Best(ctx context.Context, username string) (int, error) {
	var best sql.NullInt64
	row := s.db.WithContext(ctx).
		Model(&Score{}).
		Where("username = ?", username).
		Select("MAX(points)").
		Row()
	if err := row.Scan(&best); err != nil {
		return 0, fmt.Errorf("best score: %w", err)
	}
	return int(best.Int64), nil
}

// Count returns the number of recorded runs.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Score{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count scores: %w", err)
	}
	return n, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Package database implements the relational user-record gateway with
// GORM. Production runs on Postgres; tests use an embedded SQLite
// dialector.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/skystore/skystore/internal/domain"
	"github.com/skystore/skystore/internal/infrastructure/logging"
)

// UserRecord is the relational shape of a user account.
type UserRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName pins the table name independent of pluralization settings.
func (UserRecord) TableName() string { return "users" }

// Config holds the Postgres connection string.
type Config struct {
	DSN string
}

// Store owns the database handle and migrates the schema on startup.
type Store struct {
	db     *gorm.DB
	logger *logging.Logger
}

// NewPostgres opens a Postgres-backed store and runs migrations.
func NewPostgres(cfg Config, logger *logging.Logger) (*Store, error) {
	return Open(postgres.Open(cfg.DSN), logger)
}

// Open builds a store on any GORM dialector and runs migrations.
// Tests pass an embedded SQLite dialector here.
func Open(dialector gorm.Dialector, logger *logging.Logger) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&UserRecord{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Users returns an autocommitting gateway for read paths.
func (s *Store) Users() *Users {
	return &Users{db: s.db}
}

// Begin starts a transaction whose commit the caller controls.
func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return &Tx{db: tx}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Tx is an open transaction. Users() reads and writes inside it;
// Commit makes the writes durable; Rollback discards them and is safe
// to defer after Commit.
type Tx struct {
	db       *gorm.DB
	finished bool
}

func (t *Tx) Users() *Users {
	return &Users{db: t.db}
}

func (t *Tx) Commit(ctx context.Context) error {
	if t.finished {
		return nil
	}
	t.finished = true
	if err := t.db.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *Tx) Rollback() {
	if t.finished {
		return
	}
	t.finished = true
	t.db.Rollback()
}

// Users resolves and persists user records. Lookups return (nil, nil)
// when no record exists.
type Users struct {
	db *gorm.DB
}

func (u *Users) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var record UserRecord
	err := u.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user by id: %w", err)
	}
	return toDomain(record), nil
}

func (u *Users) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	var record UserRecord
	err := u.db.WithContext(ctx).First(&record, "login = ?", login).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user by login: %w", err)
	}
	return toDomain(record), nil
}

func (u *Users) Save(ctx context.Context, user *domain.User) error {
	record := UserRecord{
		ID:             user.ID,
		Login:          user.Login,
		HashedPassword: user.HashedPassword,
	}
	if err := u.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func toDomain(record UserRecord) *domain.User {
	return &domain.User{
		ID:             record.ID,
		Login:          record.Login,
		HashedPassword: record.HashedPassword,
	}
}

package saves

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

// saveRecord is one row of the saves table
type saveRecord struct {
	Slot      string         `gorm:"primaryKey;size:64"`
	Version   int            `gorm:"not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	SavedAt   time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (saveRecord) TableName() string { return "saves" }

// OpenSQLite opens a SQLite database for the save repository
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to open sqlite database %s", path)
	}
	return db, nil
}

type sqliteRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// SQLiteConfig contains configuration for the SQLite save repository
type SQLiteConfig struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a gorm-backed save repository and migrates its table
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.DB.AutoMigrate(&saveRecord{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate saves table")
	}

	l := cfg.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &sqliteRepository{db: cfg.DB, logger: l}, nil
}

func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := checkSave(input); err != nil {
		return nil, err
	}

	data, err := Encode(input.Data)
	if err != nil {
		return nil, err
	}

	rec := saveRecord{
		Slot:    input.Slot,
		Version: input.Data.Version,
		Payload: datatypes.JSON(data),
		SavedAt: input.Data.SavedAt(),
	}
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %s", input.Slot)
	}

	r.logger.Debug("save written", zap.String("slot", input.Slot), zap.Int("bytes", len(data)))
	return &SaveOutput{Data: input.Data}, nil
}

func (r *sqliteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	var rec saveRecord
	err := r.db.WithContext(ctx).First(&rec, "slot = ?", input.Slot).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("save slot %s not found", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to load slot %s", input.Slot)
	}

	d, err := Decode(rec.Payload)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Data: d}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Delete(&saveRecord{}, "slot = ?", input.Slot)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to delete slot %s", input.Slot)
	}
	if result.RowsAffected == 0 {
		return nil, errors.NotFoundf("save slot %s not found", input.Slot)
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error) {
	if err := checkSlot(input.Slot); err != nil {
		return nil, err
	}

	var n int64
	err := r.db.WithContext(ctx).Model(&saveRecord{}).Where("slot = ?", input.Slot).Count(&n).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check slot %s", input.Slot)
	}

	return &ExistsOutput{Exists: n > 0}, nil
}

func (r *sqliteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	var slots []string
	err := r.db.WithContext(ctx).Model(&saveRecord{}).Order("slot").Pluck("slot", &slots).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list save slots")
	}

	return &ListOutput{Slots: slots}, nil
}

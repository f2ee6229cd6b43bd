package backend

import (
	"context"
	"time"

	"agenda/internal/domain/repository"
	"agenda/internal/errors"
	"agenda/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStore keeps each key as one row of the kv_entries table.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore migrates kv_entries and returns a store over db.
func NewGormStore(ctx context.Context, db *gorm.DB) (repository.KeyValueStore, error) {
	if err := db.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate kv_entries")
	}

	return &gormStore{db: db}, nil
}

func (s *gormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entries []model.KVEntryModel

	if err := s.db.WithContext(ctx).
		Where(&model.KVEntryModel{Key: key}).
		Limit(1).
		Find(&entries).Error; err != nil {
		return "", false, errors.Wrapf(err, "failed to read %s", key)
	}

	if len(entries) == 0 {
		return "", false, nil
	}

	return entries[0].Value, true, nil
}

func (s *gormStore) Set(ctx context.Context, key, value string) error {
	entry := &model.KVEntryModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entry).Error

	return errors.Wrapf(err, "failed to write %s", key)
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where(&model.KVEntryModel{Key: key}).
		Delete(&model.KVEntryModel{}).Error

	return errors.Wrapf(err, "failed to delete %s", key)
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return errors.WithStack(sqlDB.Close())
}

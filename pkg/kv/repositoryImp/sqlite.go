package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lifeplan/entities"
	"lifeplan/pkg/kv/repository"
)

type sqliteStore struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) repository.Store { return &sqliteStore{db: db} }

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, nil
	}
	var rec entities.KVRecord
	err := s.db.WithContext(ctx).Where(&entities.KVRecord{Key: key}).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	rec := entities.KVRecord{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvModel struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

// KVRepository is a string-keyed blob store. The reminder list lives here
// under one reserved key as a single JSON document.
type KVRepository struct {
	db *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get returns the stored value and whether the key exists.
func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var m kvModel
	err := r.db.WithContext(ctx).Table("kv_entries").
		Where("key = ?", key).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return m.Value, true, nil
}

// Set overwrites the value for key, creating the row if needed.
func (r *KVRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.db.WithContext(ctx).Table("kv_entries").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&kvModel{Key: key, Value: value}).Error
}

package repository

import (
	"context"
	"fmt"

	pushdomain "howler-relay/internal/push/domain"

	"gorm.io/gorm"
)

// RecordRepository persists delivered-notification records.
type RecordRepository interface {
	InsertRecords(ctx context.Context, records []pushdomain.NotificationRecord) (int64, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) InsertRecords(ctx context.Context, records []pushdomain.NotificationRecord) (int64, error) {
	if len(records) == 0 {
		// some drivers error on an empty VALUES list; callers short-circuit
		// before getting here, this guard keeps the contract honest anyway
		return 0, nil
	}
	tx := r.db.WithContext(ctx).Create(&records)
	if tx.Error != nil {
		return 0, fmt.Errorf("insert %d notification records: %w", len(records), tx.Error)
	}
	return tx.RowsAffected, nil
}

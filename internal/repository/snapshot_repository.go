package repository

import (
	"fmt"

	"github.com/yukikurage/kerja-workspace/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository is a GORM implementation of SnapshotRepository
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Get finds the snapshot for key
func (r *GormSnapshotRepository) Get(key string) (string, error) {
	var snapshot models.Snapshot
	result := r.db.Where("snapshot_key = ?", key).Limit(1).Find(&snapshot)
	if result.Error != nil {
		return "", fmt.Errorf("failed to read snapshot %q: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return "", ErrSnapshotNotFound
	}
	return snapshot.Value, nil
}

// Put upserts the snapshot for key, overwriting any previous value
func (r *GormSnapshotRepository) Put(key, value string) error {
	snapshot := models.Snapshot{Key: key, Value: value}
	err := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "snapshot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot for key
func (r *GormSnapshotRepository) Delete(key string) error {
	if err := r.db.Where("snapshot_key = ?", key).Delete(&models.Snapshot{}).Error; err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", key, err)
	}
	return nil
}

// Keys lists all stored snapshot keys
func (r *GormSnapshotRepository) Keys() ([]string, error) {
	var keys []string
	if err := r.db.Model(&models.Snapshot{}).Order("snapshot_key ASC").Pluck("snapshot_key", &keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshot keys: %w", err)
	}
	return keys, nil
}

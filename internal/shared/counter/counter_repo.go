package counter

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, managerID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetNextValue increments and returns the sequence for one manager and
// counter type. Raw UPSERT keeps the increment atomic under concurrent
// registrations.
func (r *repository) GetNextValue(ctx context.Context, managerID string, counterType string) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO manager_counters (manager_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (manager_id, counter_type) DO UPDATE
		SET last_value = manager_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, managerID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

package shift

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	FindByStaff(ctx context.Context, staffID uuid.UUID) (*Shift, error)
	Create(ctx context.Context, s *Shift) error
	Update(ctx context.Context, s *Shift) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindByStaff(ctx context.Context, staffID uuid.UUID) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).Where("staff_id = ?", staffID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).
		Model(&Shift{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"shift_name": s.ShiftName,
			"start_time": s.StartTime,
			"end_time":   s.EndTime,
			"updated_at": s.UpdatedAt,
		}).Error
}

package attendance

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	FindPresentByStaffAndDate(ctx context.Context, staffID uuid.UUID, date string) (*Attendance, error)
	ListByStaff(ctx context.Context, staffID uuid.UUID) ([]Attendance, error)
	Create(ctx context.Context, a *Attendance) error
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

func (r *repository) FindPresentByStaffAndDate(ctx context.Context, staffID uuid.UUID, date string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Where("attendance_date = ?", date).
		Where("status = ?", StatusPresent).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListByStaff(ctx context.Context, staffID uuid.UUID) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

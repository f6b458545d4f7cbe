package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindStaffByID(ctx context.Context, id uuid.UUID) (*User, error)
	ListStaffByManager(ctx context.Context, managerID string) ([]User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindStaffByID only matches users whose role is staff; a manager id passed
// here is a not-found, not a type error.
func (r *repository) FindStaffByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("role = ?", RoleStaff).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) ListStaffByManager(ctx context.Context, managerID string) ([]User, error) {
	var rows []User
	err := r.db.WithContext(ctx).
		Scopes(OwnedBy(managerID)).
		Where("role = ?", RoleStaff).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

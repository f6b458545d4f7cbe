package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	usererrors "github.com/shreyansh404/attendanceManagment/internal/user/errors"
)

// Role is a closed enumeration. Anything else is rejected when the value is
// constructed, never discovered at comparison time.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStaff:
		return RoleStaff, nil
	case RoleManager:
		return RoleManager, nil
	default:
		return "", usererrors.ErrInvalidRole
	}
}

type User struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Username    string         `gorm:"column:username;type:varchar(100);not null"`
	FullName    string         `gorm:"column:full_name;type:varchar(255);not null"`
	Email       string         `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password    string         `gorm:"column:password;type:varchar(255);not null"`
	Role        Role           `gorm:"column:role;type:varchar(20);not null"`
	ManagerID   *uuid.UUID     `gorm:"column:manager_id;type:uuid;index"`
	StaffNumber string         `gorm:"column:staff_number;type:varchar(20)"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}

// Validate enforces the ownership invariant: staff always reference their
// manager, managers never reference one.
func (u *User) Validate() error {
	if _, err := ParseRole(string(u.Role)); err != nil {
		return err
	}
	if u.Role == RoleStaff && (u.ManagerID == nil || *u.ManagerID == uuid.Nil) {
		return usererrors.ErrStaffWithoutManager
	}
	if u.Role == RoleManager && u.ManagerID != nil {
		return usererrors.ErrManagerWithManager
	}
	return nil
}

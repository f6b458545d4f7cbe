package user

import "gorm.io/gorm"

// OwnedBy scopes a staff query to one manager's staff.
func OwnedBy(managerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("manager_id = ?", managerID)
	}
}

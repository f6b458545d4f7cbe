package shift

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a staff member's recurring daily window. Times are wall-clock
// "HH:MM" strings; EndTime earlier than StartTime means the shift crosses
// midnight. One row per staff member, enforced by the unique index.
type Shift struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID   uuid.UUID `gorm:"column:staff_id;type:uuid;uniqueIndex;not null"`
	ManagerID uuid.UUID `gorm:"column:manager_id;type:uuid;index;not null"`
	ShiftName string    `gorm:"column:shift_name;type:varchar(50);not null"`
	StartTime string    `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime   string    `gorm:"column:end_time;type:varchar(5);not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Shift) TableName() string {
	return "shifts"
}

// Overnight is derived from the raw times, never stored.
func (s *Shift) Overnight() bool {
	return s.EndTime < s.StartTime
}

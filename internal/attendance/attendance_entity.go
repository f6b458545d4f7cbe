package attendance

import (
	"time"

	"github.com/google/uuid"
)

const StatusPresent = "Present"

// Attendance is append-only: rows are created by a successful check-in and
// never mutated. The composite unique index is the final arbiter for
// concurrent check-ins on the same day.
type Attendance struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StaffID        uuid.UUID `gorm:"column:staff_id;type:uuid;not null;uniqueIndex:uniq_attendance_day,priority:1"`
	AttendanceDate string    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uniq_attendance_day,priority:2"`
	Status         string    `gorm:"column:status;type:varchar(20);not null;uniqueIndex:uniq_attendance_day,priority:3"`
	TimeIn         string    `gorm:"column:time_in;type:varchar(8);not null"`
	ImageURL       string    `gorm:"column:image_url;type:text;not null"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

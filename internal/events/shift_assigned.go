package events

import "time"

const ShiftAssignedTopic = "attendance.shift.assigned.v1"

type ShiftAssignedEvent struct {
	EventType  string    `json:"event_type"`
	StaffID    string    `json:"staff_id"`
	ManagerID  string    `json:"manager_id"`
	ShiftName  string    `json:"shift_name"`
	Outcome    string    `json:"outcome"` // created | updated
	OccurredAt time.Time `json:"occurred_at"`
}

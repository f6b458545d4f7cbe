package events

import "time"

const CheckInRecordedTopic = "attendance.checkin.recorded.v1"

type CheckInRecordedEvent struct {
	EventType    string    `json:"event_type"`
	AttendanceID string    `json:"attendance_id"`
	StaffID      string    `json:"staff_id"`
	Date         string    `json:"date"`
	TimeIn       string    `json:"time_in"`
	OccurredAt   time.Time `json:"occurred_at"`
}

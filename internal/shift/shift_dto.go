package shift

type AssignShiftRequest struct {
	StaffID   string `json:"staff_id" binding:"required,uuid"`
	ShiftName string `json:"shift_name" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// AssignOutcome tags how an assignment was applied.
type AssignOutcome string

const (
	OutcomeCreated AssignOutcome = "created"
	OutcomeUpdated AssignOutcome = "updated"
)

type ShiftResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	ShiftName string `json:"shift_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Overnight bool   `json:"overnight"`
}

type AssignShiftResponse struct {
	Outcome AssignOutcome `json:"outcome"`
	Shift   ShiftResponse `json:"shift"`
}

func ToResponse(s *Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID.String(),
		StaffID:   s.StaffID.String(),
		ShiftName: s.ShiftName,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Overnight: s.Overnight(),
	}
}

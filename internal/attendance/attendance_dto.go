package attendance

import "io"

// CheckInRequest carries the uploaded photo; the actor and timestamp come
// from the request context.
type CheckInRequest struct {
	Filename    string
	ContentType string
	Image       io.Reader
}

type AttendanceResponse struct {
	ID       string `json:"id"`
	StaffID  string `json:"staff_id"`
	Date     string `json:"date"`
	TimeIn   string `json:"time_in"`
	Status   string `json:"status"`
	ImageURL string `json:"image_url"`
}

func ToResponse(a *Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:       a.ID.String(),
		StaffID:  a.StaffID.String(),
		Date:     a.AttendanceDate,
		TimeIn:   a.TimeIn,
		Status:   a.Status,
		ImageURL: a.ImageURL,
	}
}

package user

type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ManagerID   string `json:"manager_id,omitempty"`
	StaffNumber string `json:"staff_number,omitempty"`
}

func ToResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        string(u.Role),
		StaffNumber: u.StaffNumber,
	}
	if u.ManagerID != nil {
		resp.ManagerID = u.ManagerID.String()
	}
	return resp
}

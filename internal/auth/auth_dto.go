package auth

type RegisterStaffRequest struct {
	Username        string `json:"username" binding:"required"`
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role" binding:"required"`
}

type RegisterManagerRequest struct {
	Username         string `json:"username" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	ConfirmPassword  string `json:"confirm_password" binding:"required"`
	Role             string `json:"role" binding:"required"`
	ManagerSecretKey string `json:"manager_secret_key" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

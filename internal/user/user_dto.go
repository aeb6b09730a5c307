package user

type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	FullName     string `json:"fullName" binding:"required"`
	Role         string `json:"role" binding:"required"`
	EmployeeCode string `json:"employeeCode"`
	Password     string `json:"password"`
}

type UpdateUserRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	Role         string `json:"role" binding:"required"`
	EmployeeCode string `json:"employeeCode"`
}

type UpdateStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	EmployeeCode string `json:"employeeCode,omitempty"`
	Active       bool   `json:"active"`
	LastLogin    string `json:"lastLogin"`
	CreatedAt    string `json:"createdAt"`
}

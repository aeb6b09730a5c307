package employee

type CreateEmployeeRequest struct {
	EmployeeCode   string   `json:"employeeCode" binding:"required"`
	FullName       string   `json:"fullName" binding:"required"`
	Title          *string  `json:"title"`
	BirthDate      string   `json:"birthDate"`
	Gender         *string  `json:"gender"`
	SalaryGrade    *float64 `json:"salaryGrade"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Status         *string  `json:"status"`
	DepartmentCode *string  `json:"departmentCode"`
}

type UpdateEmployeeRequest struct {
	EmployeeCode   string   `json:"employeeCode" binding:"required"`
	FullName       string   `json:"fullName" binding:"required"`
	Title          *string  `json:"title"`
	BirthDate      string   `json:"birthDate"`
	Gender         *string  `json:"gender"`
	SalaryGrade    *float64 `json:"salaryGrade"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Status         *string  `json:"status"`
	DepartmentCode *string  `json:"departmentCode"`
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	EmployeeCode   string   `json:"employeeCode"`
	FullName       string   `json:"fullName"`
	Title          *string  `json:"title,omitempty"`
	BirthDate      string   `json:"birthDate,omitempty"`
	Gender         *string  `json:"gender,omitempty"`
	SalaryGrade    *float64 `json:"salaryGrade,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	AvatarURL      *string  `json:"avatarUrl,omitempty"`
	Status         *string  `json:"status,omitempty"`
	DepartmentCode *string  `json:"departmentCode,omitempty"`
	CreatedAt      string   `json:"createdAt"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

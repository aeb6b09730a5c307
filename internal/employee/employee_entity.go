package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode   string     `gorm:"column:employee_code;type:varchar(50);not null;uniqueIndex:uq_employee_code"`
	FullName       string     `gorm:"column:full_name;type:varchar(255);not null"`
	Title          *string    `gorm:"column:title;type:varchar(255)"`
	BirthDate      *time.Time `gorm:"column:birth_date;type:date"`
	Gender         *string    `gorm:"column:gender;type:varchar(20)"`
	SalaryGrade    *float64   `gorm:"column:salary_grade"`
	Email          *string    `gorm:"column:email;type:text"`
	Phone          *string    `gorm:"column:phone;type:varchar(50)"`
	AvatarURL      *string    `gorm:"column:avatar_url;type:text"`
	Status         *string    `gorm:"column:status;type:varchar(50)"`
	DepartmentCode *string    `gorm:"column:department_code;type:varchar(50)"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// Statistics are the dashboard headline counts.
type Statistics struct {
	Total    int64 `json:"total"`
	Male     int64 `json:"male"`
	Female   int64 `json:"female"`
	NoSalary int64 `json:"noSalary"`
}

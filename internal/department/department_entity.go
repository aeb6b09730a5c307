package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"column:code;type:varchar(50);not null;uniqueIndex:uq_department_code"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Department) TableName() string {
	return "departments"
}

// DepartmentWithHeadcount is the list projection: a department plus how
// many employees currently reference its code.
type DepartmentWithHeadcount struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Headcount   int64
}

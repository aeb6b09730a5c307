package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExplainStatusPending   = "PENDING"
	ExplainStatusExplained = "EXPLAINED"
)

// Attendance holds one employee's record for one calendar day. The
// composite unique key (employee_code, work_date) makes upsert the
// only write path besides delete.
type Attendance struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode  string    `gorm:"column:employee_code;type:varchar(50);not null;uniqueIndex:uq_attendance_employee_work_date"`
	WorkDate      time.Time `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_attendance_employee_work_date"`
	ShiftCode     *string   `gorm:"column:shift_code;type:varchar(20)"`
	ShiftTime     *string   `gorm:"column:shift_time;type:varchar(20)"`
	CheckIn       *string   `gorm:"column:check_in;type:varchar(10)"`
	CheckOut      *string   `gorm:"column:check_out;type:varchar(10)"`
	ExplainStatus string    `gorm:"column:explain_status;type:varchar(20);not null;default:PENDING"`
	Note          *string   `gorm:"column:note;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

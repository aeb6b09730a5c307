package events

import "time"

const AttendanceRecordedTopic = "hr.attendance.recorded.v1"

type AttendanceRecordedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	AttendanceID string    `json:"attendance_id"`
	EmployeeCode string    `json:"employee_code"`
	WorkDate     string    `json:"work_date"`
	OccurredAt   time.Time `json:"occurred_at"`
}

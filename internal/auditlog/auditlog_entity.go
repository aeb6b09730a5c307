package auditlog

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is one append-only entry of who did what, and when.
type AuditLog struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Actor    string    `gorm:"column:actor;type:varchar(255);not null"`
	Action   string    `gorm:"column:action;type:text;not null"`
	LoggedAt time.Time `gorm:"column:logged_at;autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

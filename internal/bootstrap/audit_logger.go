package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records lifecycle events that must not be lost in normal
// request logging (startup, shutdown).
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

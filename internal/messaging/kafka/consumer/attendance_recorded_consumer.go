package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-hrm/internal/auditlog"
	"go-hrm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeAttendanceRecorded appends an audit entry for every attendance
// upsert published through the outbox. Offsets are committed only after
// the audit row is written; undecodable messages are committed and
// skipped so they cannot wedge the partition.
func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader *kafkago.Reader,
	auditService auditlog.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance recorded consumer stopped")
				return
			}
			log.Error("fetch attendance recorded message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance_recorded event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		action := fmt.Sprintf("attendance recorded for %s on %s", event.EmployeeCode, event.WorkDate)
		_, err = auditService.Record(ctx, auditlog.CreateLogRequest{
			Actor:  "system",
			Action: action,
		})
		if err != nil {
			log.Error("append audit entry failed",
				zap.String("attendance_id", event.AttendanceID),
				zap.String("employee_code", event.EmployeeCode),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance recorded message failed", zap.Error(err))
			continue
		}

		log.Info("audit entry appended from attendance_recorded event",
			zap.String("attendance_id", event.AttendanceID),
			zap.String("employee_code", event.EmployeeCode),
		)
	}
}

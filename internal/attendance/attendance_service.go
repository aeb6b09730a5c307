package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	attendanceerrors "go-hrm/internal/attendance/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const workDateLayout = "2006-01-02"

type Service interface {
	Query(ctx context.Context, employeeCode, from, to string) ([]AttendanceResponse, error)
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Query(ctx context.Context, employeeCode, from, to string) ([]AttendanceResponse, error) {
	if employeeCode == "" || from == "" || to == "" {
		return nil, attendanceerrors.ErrMissingQueryParams
	}

	fromDate, err := time.Parse(workDateLayout, from)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateRange
	}
	toDate, err := time.Parse(workDateLayout, to)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByEmployeeAndRange(ctx, employeeCode, fromDate, toDate)
	if err != nil {
		s.logger.Error("query attendance failed",
			zap.String("employee_code", employeeCode),
			zap.Error(err),
		)
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if req.EmployeeCode == "" || req.WorkDate == "" {
		return AttendanceResponse{}, attendanceerrors.ErrMissingUpsertFields
	}

	workDate, err := time.Parse(workDateLayout, req.WorkDate)
	if err != nil {
		s.logger.Warn("upsert attendance invalid work date",
			zap.String("request_id", rid),
			zap.String("work_date", req.WorkDate),
		)
		return AttendanceResponse{}, attendanceerrors.ErrInvalidWorkDate
	}

	explainStatus := req.ExplainStatus
	if explainStatus == "" {
		explainStatus = ExplainStatusPending
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert attendance begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Attendance{
		ID:            uuid.New(),
		EmployeeCode:  req.EmployeeCode,
		WorkDate:      workDate,
		ShiftCode:     req.ShiftCode,
		ShiftTime:     req.ShiftTime,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		ExplainStatus: explainStatus,
		Note:          req.Note,
	}

	if err := qtx.Upsert(ctx, row); err != nil {
		s.logger.Error("upsert attendance persist failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	// Re-fetch by key: on the update path the incoming row's generated id
	// is discarded, the stored row keeps its original id and created_at.
	stored, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeCode, workDate)
	if err != nil {
		s.logger.Error("upsert attendance re-fetch failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	if s.outbox != nil {
		event := events.AttendanceRecordedEvent{
			EventType:    "attendance_recorded",
			RequestID:    rid,
			AttendanceID: stored.ID.String(),
			EmployeeCode: stored.EmployeeCode,
			WorkDate:     stored.WorkDate.Format(workDateLayout),
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return AttendanceResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "attendance",
			AggregateID:   stored.ID.String(),
			EventType:     event.EventType,
			Topic:         events.AttendanceRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("upsert attendance outbox persist failed",
				zap.String("attendance_id", stored.ID.String()),
				zap.Error(err),
			)
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("upsert attendance success",
		zap.String("request_id", rid),
		zap.String("attendance_id", stored.ID.String()),
		zap.String("employee_code", stored.EmployeeCode),
	)

	return mapToResponse(*stored), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrInvalidAttendanceID
	}

	affected, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error("delete attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return attendanceerrors.ErrAttendanceNotFound
	}

	s.logger.Info("delete attendance success", zap.String("attendance_id", id))
	return nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID.String(),
		EmployeeCode:  a.EmployeeCode,
		WorkDate:      a.WorkDate.Format(workDateLayout),
		ShiftCode:     a.ShiftCode,
		ShiftTime:     a.ShiftTime,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		ExplainStatus: a.ExplainStatus,
		Note:          a.Note,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

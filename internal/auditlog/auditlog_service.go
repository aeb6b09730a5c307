package auditlog

import (
	"context"
	"strings"
	"time"

	auditlogerrors "go-hrm/internal/auditlog/errors"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultPageLimit = 50

type Service interface {
	Record(ctx context.Context, req CreateLogRequest) (LogResponse, error)
	GetLatest(ctx context.Context, page, limit int) ([]LogResponse, response.PaginationMeta, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auditlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auditlog.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, req CreateLogRequest) (LogResponse, error) {
	actor := strings.TrimSpace(req.Actor)
	if actor == "" {
		actor = strings.TrimSpace(contextutil.GetActor(ctx))
	}
	action := strings.TrimSpace(req.Action)
	if actor == "" || action == "" {
		return LogResponse{}, auditlogerrors.ErrMissingRequiredFields
	}

	entry := &AuditLog{
		ID:     uuid.New(),
		Actor:  actor,
		Action: action,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("append audit entry failed", zap.Error(err))
		return LogResponse{}, err
	}

	return mapToResponse(*entry), nil
}

func (s *service) GetLatest(ctx context.Context, page, limit int) ([]LogResponse, response.PaginationMeta, error) {
	if page < 1 || limit < 0 {
		return nil, response.PaginationMeta{}, auditlogerrors.ErrInvalidPagination
	}
	if limit == 0 {
		limit = defaultPageLimit
	}

	log := contextutil.GetLogger(ctx, s.logger)

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.Error("count audit entries failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	entries, err := s.repo.FindLatest(ctx, limit, (page-1)*limit)
	if err != nil {
		log.Error("list audit entries failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	res := make([]LogResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res, response.NewPaginationMeta(total, page, limit), nil
}

func mapToResponse(e AuditLog) LogResponse {
	return LogResponse{
		ID:       e.ID.String(),
		Actor:    e.Actor,
		Action:   e.Action,
		LoggedAt: e.LoggedAt.Format(time.RFC3339),
	}
}

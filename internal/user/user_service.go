package user

import (
	"context"
	"database/sql"
	"strings"
	"time"

	usererrors "go-hrm/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (UserResponse, error)
	UpdateStatus(ctx context.Context, username string, req UpdateStatusRequest) (UserResponse, error)
	ResetPassword(ctx context.Context, username string, req ResetPasswordRequest) error
	Delete(ctx context.Context, username string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	fullName := strings.TrimSpace(req.FullName)
	role := strings.TrimSpace(req.Role)
	if username == "" || fullName == "" || role == "" {
		return UserResponse{}, usererrors.ErrMissingRequiredFields
	}

	u := &User{
		Username:     username,
		FullName:     fullName,
		Role:         role,
		EmployeeCode: strings.TrimSpace(req.EmployeeCode),
		Active:       true,
		LastLogin:    "-",
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.Password = string(hash)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("create user success", zap.String("username", u.Username))

	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res, nil
}

func (s *service) Update(ctx context.Context, username string, req UpdateUserRequest) (UserResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	role := strings.TrimSpace(req.Role)
	if fullName == "" || role == "" {
		return UserResponse{}, usererrors.ErrMissingRequiredFields
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByUsername(ctx, username)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.FullName = fullName
	u.Role = role
	u.EmployeeCode = strings.TrimSpace(req.EmployeeCode)

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("update user success", zap.String("username", username))

	return mapToResponse(*u), nil
}

func (s *service) UpdateStatus(ctx context.Context, username string, req UpdateStatusRequest) (UserResponse, error) {
	if req.Active == nil {
		return UserResponse{}, usererrors.ErrMissingRequiredFields
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByUsername(ctx, username)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.Active = *req.Active

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("update user status persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("update user status success",
		zap.String("username", username),
		zap.Bool("active", u.Active))

	return mapToResponse(*u), nil
}

func (s *service) ResetPassword(ctx context.Context, username string, req ResetPasswordRequest) error {
	if strings.TrimSpace(req.NewPassword) == "" {
		return usererrors.ErrMissingNewPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByUsername(ctx, username)
	if err != nil {
		return mapRepositoryError(err)
	}

	u.Password = string(hash)

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("reset password persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("reset password success", zap.String("username", username))
	return nil
}

func (s *service) Delete(ctx context.Context, username string) error {
	affected, err := s.repo.Delete(ctx, username)
	if err != nil {
		s.logger.Error("delete user failed", zap.String("username", username), zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return usererrors.ErrUserNotFound
	}

	s.logger.Info("delete user success", zap.String("username", username))
	return nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		Username:     u.Username,
		FullName:     u.FullName,
		Role:         u.Role,
		EmployeeCode: u.EmployeeCode,
		Active:       u.Active,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
	}
}

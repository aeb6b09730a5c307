package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	usererrors "go-hrm/internal/user/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn         func(tx *sql.Tx) Repository
	createFn         func(ctx context.Context, u *User) error
	findAllFn        func(ctx context.Context) ([]User, error)
	findByUsernameFn func(ctx context.Context, username string) (*User, error)
	updateFn         func(ctx context.Context, u *User) error
	deleteFn         func(ctx context.Context, username string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) Create(ctx context.Context, u *User) error   { return f.createFn(ctx, u) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]User, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	return f.findByUsernameFn(ctx, username)
}
func (f *fakeRepo) Update(ctx context.Context, u *User) error { return f.updateFn(ctx, u) }
func (f *fakeRepo) Delete(ctx context.Context, username string) (int64, error) {
	return f.deleteFn(ctx, username)
}

func TestService_Create_HashesPasswordAndDefaults(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved User
	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error {
			saved = *u
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "alice",
		FullName: "Alice Nguyen",
		Role:     "admin",
		Password: "s3cret",
	})
	assert.NoError(t, err)
	assert.True(t, saved.Active)
	assert.Equal(t, "-", saved.LastLogin)
	assert.NotEqual(t, "s3cret", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("s3cret")))
	assert.Equal(t, "alice", resp.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_MissingFields(t *testing.T) {
	svc := NewService(nil, &fakeRepo{})

	_, err := svc.Create(context.Background(), CreateUserRequest{Username: "alice", FullName: "Alice"})
	assert.ErrorIs(t, err, usererrors.ErrMissingRequiredFields)
}

func TestService_Create_DuplicateUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "alice",
		FullName: "Alice Nguyen",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, usererrors.ErrUsernameAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateStatus(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	stored := User{Username: "alice", FullName: "Alice Nguyen", Role: "admin", Active: true, LastLogin: "-"}
	repo := &fakeRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*User, error) {
			return &stored, nil
		},
		updateFn: func(ctx context.Context, u *User) error {
			stored = *u
			return nil
		},
	}

	svc := NewService(db, repo)

	inactive := false
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.UpdateStatus(context.Background(), "alice", UpdateStatusRequest{Active: &inactive})
	assert.NoError(t, err)
	assert.False(t, resp.Active)
	assert.False(t, stored.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ResetPassword(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	stored := User{Username: "alice", Password: "old-hash"}
	repo := &fakeRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*User, error) {
			return &stored, nil
		},
		updateFn: func(ctx context.Context, u *User) error {
			stored = *u
			return nil
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	err := svc.ResetPassword(context.Background(), "alice", ResetPasswordRequest{NewPassword: "n3w-pass"})
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("n3w-pass")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ResetPassword_MissingPassword(t *testing.T) {
	svc := NewService(nil, &fakeRepo{})
	err := svc.ResetPassword(context.Background(), "alice", ResetPasswordRequest{NewPassword: "  "})
	assert.ErrorIs(t, err, usererrors.ErrMissingNewPassword)
}

func TestService_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		findByUsernameFn: func(ctx context.Context, username string) (*User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Update(context.Background(), "ghost", UpdateUserRequest{FullName: "Ghost", Role: "viewer"})
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, username string) (int64, error) { return 0, nil },
	}

	svc := NewService(nil, repo)
	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}

func TestResponse_NeverSerializesPassword(t *testing.T) {
	resp := mapToResponse(User{Username: "alice", Password: "super-secret-hash"})
	payload, err := json.Marshal(resp)
	assert.NoError(t, err)
	assert.NotContains(t, string(payload), "super-secret-hash")
	assert.NotContains(t, string(payload), "password")
}

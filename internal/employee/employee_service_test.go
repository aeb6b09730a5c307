package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	employeeerrors "go-hrm/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn          func(tx *sql.Tx) Repository
	createFn          func(ctx context.Context, e *Employee) error
	findAllFn         func(ctx context.Context) ([]Employee, error)
	findOptionsFn     func(ctx context.Context) ([]Employee, error)
	findByIDFn        func(ctx context.Context, id string) (*Employee, error)
	updateFn          func(ctx context.Context, e *Employee) error
	deleteFn          func(ctx context.Context, id string) (int64, error)
	updateAvatarURLFn func(ctx context.Context, id, avatarURL string) (int64, error)
	countStatisticsFn func(ctx context.Context) (Statistics, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}
func (f *fakeRepo) Create(ctx context.Context, e *Employee) error   { return f.createFn(ctx, e) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindOptions(ctx context.Context) ([]Employee, error) {
	return f.findOptionsFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, e *Employee) error { return f.updateFn(ctx, e) }
func (f *fakeRepo) Delete(ctx context.Context, id string) (int64, error) {
	return f.deleteFn(ctx, id)
}
func (f *fakeRepo) UpdateAvatarURL(ctx context.Context, id, avatarURL string) (int64, error) {
	return f.updateAvatarURLFn(ctx, id, avatarURL)
}
func (f *fakeRepo) CountStatistics(ctx context.Context) (Statistics, error) {
	return f.countStatisticsFn(ctx)
}

func TestService_Create_MissingFields(t *testing.T) {
	svc := NewService(nil, &fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{FullName: "Alice"})
	assert.ErrorIs(t, err, employeeerrors.ErrMissingRequiredFields)

	_, err = svc.Create(context.Background(), CreateEmployeeRequest{EmployeeCode: "NV001"})
	assert.ErrorIs(t, err, employeeerrors.ErrMissingRequiredFields)
}

func TestService_Create_InvalidBirthDate(t *testing.T) {
	svc := NewService(nil, &fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		EmployeeCode: "NV001",
		FullName:     "Alice",
		BirthDate:    "01/02/1990",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidBirthDate)
}

func TestService_Create_Success(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Employee
	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *Employee) error {
			saved = *e
			return nil
		},
	}

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		EmployeeCode: "NV001",
		FullName:     "Alice",
		BirthDate:    "1990-02-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, "NV001", resp.EmployeeCode)
	assert.Equal(t, "1990-02-01", resp.BirthDate)
	assert.Equal(t, saved.ID.String(), resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_DuplicateCode(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, e *Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_code"}
		},
	}

	svc := NewService(db, repo, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		EmployeeCode: "NV001",
		FullName:     "Alice",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GetOptions_CacheHit(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	cached := []EmployeeResponse{{ID: uuid.NewString(), EmployeeCode: "NV001", FullName: "Alice"}}
	payload, _ := json.Marshal(cached)
	redisMock.ExpectGet(EmployeeOptionsKey).SetVal(string(payload))

	repo := &fakeRepo{
		findOptionsFn: func(ctx context.Context) ([]Employee, error) {
			t.Fatal("repository must not be hit on cache hit")
			return nil, nil
		},
	}

	svc := NewService(nil, repo, rdb)
	resp, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, resp)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetOptions_CacheMissFillsCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()

	id := uuid.New()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		findOptionsFn: func(ctx context.Context) ([]Employee, error) {
			return []Employee{{ID: id, EmployeeCode: "NV001", FullName: "Alice", CreatedAt: created}}, nil
		},
	}

	expected, _ := json.Marshal([]EmployeeResponse{{
		ID:           id.String(),
		EmployeeCode: "NV001",
		FullName:     "Alice",
		CreatedAt:    created.Format(time.RFC3339),
	}})

	redisMock.ExpectGet(EmployeeOptionsKey).RedisNil()
	redisMock.ExpectSet(EmployeeOptionsKey, expected, 1*time.Hour).SetVal("OK")

	svc := NewService(nil, repo, rdb)
	resp, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "NV001", resp[0].EmployeeCode)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Delete_InvalidatesOptionsCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	redisMock.ExpectDel(EmployeeOptionsKey).SetVal(1)

	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id string) (int64, error) { return 1, nil },
	}

	svc := NewService(nil, repo, rdb)
	assert.NoError(t, svc.Delete(context.Background(), uuid.NewString()))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id string) (int64, error) { return 0, nil },
	}

	svc := NewService(nil, repo, nil)
	err := svc.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(nil, repo, nil)
	_, err := svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_UpdateAvatar_NotFound(t *testing.T) {
	repo := &fakeRepo{
		updateAvatarURLFn: func(ctx context.Context, id, avatarURL string) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(nil, repo, nil)
	err := svc.UpdateAvatar(context.Background(), uuid.NewString(), "/uploads/a.jpg")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_Statistics(t *testing.T) {
	repo := &fakeRepo{
		countStatisticsFn: func(ctx context.Context) (Statistics, error) {
			return Statistics{Total: 10, Male: 6, Female: 4, NoSalary: 2}, nil
		},
	}

	svc := NewService(nil, repo, nil)
	stats, err := svc.Statistics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(2), stats.NoSalary)
}

package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByEmployeeAndRange(ctx context.Context, employeeCode string, from, to time.Time) ([]Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeCode string, workDate time.Time) (*Attendance, error)
	Upsert(ctx context.Context, a *Attendance) error
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn returns a session bound to the enclosing transaction when one
// is set, the shared pool otherwise.
func (r *repository) conn() *gorm.DB {
	if r.tx != nil {
		db := r.db.Session(&gorm.Session{NewDB: true})
		db.Statement.ConnPool = r.tx
		return db
	}
	return r.db
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeCode string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn().WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Where("work_date >= ?", from.Format("2006-01-02")).
		Where("work_date <= ?", to.Format("2006-01-02")).
		Order("work_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeCode string, workDate time.Time) (*Attendance, error) {
	var a Attendance
	err := r.conn().WithContext(ctx).
		Where("employee_code = ?", employeeCode).
		Where("work_date = ?", workDate.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

// Upsert inserts or, on the (employee_code, work_date) key, replaces
// every mutable column in place. id and created_at stay untouched.
func (r *repository) Upsert(ctx context.Context, a *Attendance) error {
	return r.conn().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_code"}, {Name: "work_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"shift_code", "shift_time", "check_in", "check_out",
				"explain_status", "note", "updated_at",
			}),
		}).
		Create(a).Error
}

func (r *repository) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := r.conn().WithContext(ctx).
		Where("id = ?", id).
		Delete(&Attendance{})
	return res.RowsAffected, res.Error
}

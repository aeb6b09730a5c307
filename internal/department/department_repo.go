package department

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAllWithHeadcount(ctx context.Context) ([]DepartmentWithHeadcount, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.conn().WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAllWithHeadcount(ctx context.Context) ([]DepartmentWithHeadcount, error) {
	var rows []DepartmentWithHeadcount
	err := r.conn().WithContext(ctx).Raw(`
		SELECT
			d.id, d.code, d.name, d.description, d.created_at, d.updated_at,
			(SELECT COUNT(*) FROM employees e WHERE e.department_code = d.code) AS headcount
		FROM departments d
		ORDER BY d.code ASC
	`).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.conn().WithContext(ctx).First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.conn().WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.conn().WithContext(ctx).
		Where("id = ?", id).
		Delete(&Department{})
	return res.RowsAffected, res.Error
}

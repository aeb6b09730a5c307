package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Listing orders by the numeric suffix of the employee code so NV2
// sorts before NV10; codes without digits sink to the end.
const orderByCodeNumber = "NULLIF(regexp_replace(employee_code, '[^0-9]', '', 'g'), '')::int ASC NULLS LAST, employee_code ASC"

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) (int64, error)
	UpdateAvatarURL(ctx context.Context, id, avatarURL string) (int64, error)
	CountStatistics(ctx context.Context) (Statistics, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn().WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn().WithContext(ctx).
		Order(orderByCodeNumber).
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.conn().WithContext(ctx).
		Select("id", "employee_code", "full_name").
		Order(orderByCodeNumber).
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.conn().WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.conn().WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.conn().WithContext(ctx).
		Where("id = ?", id).
		Delete(&Employee{})
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateAvatarURL(ctx context.Context, id, avatarURL string) (int64, error) {
	res := r.conn().WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL)
	return res.RowsAffected, res.Error
}

func (r *repository) CountStatistics(ctx context.Context) (Statistics, error) {
	var stats Statistics
	db := r.conn().WithContext(ctx).Model(&Employee{})

	if err := db.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return Statistics{}, err
	}
	if err := db.Session(&gorm.Session{}).Where("gender = ?", GenderMale).Count(&stats.Male).Error; err != nil {
		return Statistics{}, err
	}
	if err := db.Session(&gorm.Session{}).Where("gender = ?", GenderFemale).Count(&stats.Female).Error; err != nil {
		return Statistics{}, err
	}
	if err := db.Session(&gorm.Session{}).Where("salary_grade IS NULL").Count(&stats.NoSalary).Error; err != nil {
		return Statistics{}, err
	}

	return stats, nil
}

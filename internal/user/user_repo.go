package user

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, username string) (int64, error)
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.conn().WithContext(ctx).Create(u).Error
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.conn().WithContext(ctx).
		Order("username ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.conn().WithContext(ctx).First(&u, "username = ?", username).Error
	return &u, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.conn().WithContext(ctx).Save(u).Error
}

func (r *repository) Delete(ctx context.Context, username string) (int64, error) {
	res := r.conn().WithContext(ctx).
		Where("username = ?", username).
		Delete(&User{})
	return res.RowsAffected, res.Error
}

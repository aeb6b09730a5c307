package user

import "time"

// User is an account row keyed by its natural username.
type User struct {
	Username     string    `gorm:"column:username;type:varchar(100);primaryKey"`
	FullName     string    `gorm:"column:full_name;type:varchar(255);not null"`
	Role         string    `gorm:"column:role;type:varchar(50);not null"`
	EmployeeCode string    `gorm:"column:employee_code;type:varchar(50)"`
	Password     string    `gorm:"column:password;type:varchar(255)"`
	Active       bool      `gorm:"column:active;default:true"`
	LastLogin    string    `gorm:"column:last_login;type:varchar(50);default:'-'"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

package app

import (
	"go-hrm/internal/attendance"
	"go-hrm/internal/auditlog"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/middleware"
	"go-hrm/internal/storage"
	"go-hrm/internal/timesheet"
	"go-hrm/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store storage.Storage,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	auditLogRepo := auditlog.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	userRepo := user.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, outboxRepo)
	auditLogService := auditlog.NewService(auditLogRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewService(db, employeeRepo, rdb)
	timesheetService := timesheet.NewService(attendanceRepo)
	userService := user.NewService(db, userRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	auditLogHandler := auditlog.NewHandler(auditLogService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, store)
	timesheetHandler := timesheet.NewHandler(timesheetService)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		attendance.RegisterRoutes(api, attendanceHandler, middleware.Idempotency(rdb))
		auditlog.RegisterRoutes(api, auditLogHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		timesheet.RegisterRoutes(api, timesheetHandler)
		user.RegisterRoutes(api, userHandler)
	}

	return nil
}

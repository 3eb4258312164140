package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/deployappsa/absensi/internal/attendance"
	"github.com/deployappsa/absensi/internal/auth"
	"github.com/deployappsa/absensi/internal/bootstrap"
	"github.com/deployappsa/absensi/internal/department"
	"github.com/deployappsa/absensi/internal/events"
	"github.com/deployappsa/absensi/internal/leave"
	"github.com/deployappsa/absensi/internal/messaging/kafka"
	"github.com/deployappsa/absensi/internal/middleware"
	"github.com/deployappsa/absensi/internal/notifier"
	"github.com/deployappsa/absensi/internal/payroll"
	"github.com/deployappsa/absensi/internal/rbac"
	"github.com/deployappsa/absensi/internal/seed"
	"github.com/deployappsa/absensi/internal/session"
	"github.com/deployappsa/absensi/internal/shift"
	"github.com/deployappsa/absensi/internal/timeline"
	"github.com/deployappsa/absensi/internal/user"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	inf infra,
	audit bootstrap.AuditLogger,
) error {
	// --- Repositories ---
	var (
		userRepo       user.Repository
		shiftRepo      shift.Repository
		departmentRepo department.Repository
		attendanceRepo attendance.Repository
		leaveRepo      leave.Repository
		payrollRepo    payroll.Repository
		timelineRepo   timeline.Repository
	)
	if inf.gormDB != nil {
		userRepo = user.NewRepository(inf.gormDB)
		shiftRepo = shift.NewRepository(inf.gormDB)
		departmentRepo = department.NewRepository(inf.gormDB)
		attendanceRepo = attendance.NewRepository(inf.gormDB)
		leaveRepo = leave.NewRepository(inf.gormDB)
		payrollRepo = payroll.NewRepository(inf.gormDB)
		timelineRepo = timeline.NewRepository(inf.gormDB)
	} else {
		userRepo = user.NewMemoryRepository()
		shiftRepo = shift.NewMemoryRepository()
		departmentRepo = department.NewMemoryRepository()
		attendanceRepo = attendance.NewMemoryRepository()
		leaveRepo = leave.NewMemoryRepository()
		payrollRepo = payroll.NewMemoryRepository()
		timelineRepo = timeline.NewMemoryRepository()
	}

	// --- Sessions & RBAC ---
	var sessions session.Store
	if inf.rdb != nil {
		sessions = session.NewRedisStore(inf.rdb, cfg.SessionTTL)
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}
	codec := session.NewCookieCodec(cfg.SessionSecret, cfg.Production())

	authz, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Events & Mail ---
	// Outbox butuh Postgres; mode memory cukup log saja.
	var publisher events.Publisher
	if inf.sqlDB != nil {
		publisher = kafka.NewOutboxPublisher(kafka.NewOutboxRepository(inf.sqlDB))
	} else {
		publisher = events.NewLogPublisher()
	}

	var mailer notifier.Mailer
	if cfg.SMTPHost != "" {
		mailer = notifier.NewSMTPMailer(notifier.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	} else {
		mailer = notifier.NewNoopMailer()
	}

	// --- Services ---
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo, sessions)
	shiftService := shift.NewService(shiftRepo)
	departmentService := department.NewService(departmentRepo)
	attendanceService := attendance.NewService(
		attendanceRepo,
		userRepo,
		shiftRepo,
		publisher,
		attendance.Config{
			Redis:         inf.rdb,
			LateThreshold: cfg.LateThreshold,
		},
	)
	leaveService := leave.NewService(leaveRepo, userRepo, publisher, mailer)
	payrollService := payroll.NewService(payrollRepo, userRepo)
	timelineService := timeline.NewService(timelineRepo, userRepo)

	if err := seed.EnsureAdmin(context.Background(), userRepo, zap.L().Named("seed")); err != nil {
		return err
	}

	// --- Handlers ---
	userHandler := user.NewHandler(userService)
	authHandler := auth.NewHandler(authService, codec, audit)
	shiftHandler := shift.NewHandler(shiftService)
	departmentHandler := department.NewHandler(departmentService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, inf.rdb)
	timelineHandler := timeline.NewHandler(timelineService)

	// --- Middleware ---
	router.Use(middleware.RequestID())
	requireAuth := middleware.RequireAuth(codec, sessions, userService)
	loginRateLimit := middleware.RateLimitByIP(rate.Limit(1), 5)

	var idempotency gin.HandlerFunc
	if inf.rdb != nil {
		idempotency = middleware.Idempotency(inf.rdb)
	}

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, loginRateLimit, requireAuth)
		user.RegisterRoutes(api, userHandler, requireAuth, authz)
		shift.RegisterRoutes(api, shiftHandler, requireAuth, authz)
		department.RegisterRoutes(api, departmentHandler, requireAuth, authz)
		attendance.RegisterRoutes(api, attendanceHandler, requireAuth, authz)
		leave.RegisterRoutes(api, leaveHandler, requireAuth, authz)
		payroll.RegisterRoutes(api, payrollHandler, requireAuth, authz, idempotency)
		timeline.RegisterRoutes(api, timelineHandler, requireAuth, authz)
	}

	return nil
}

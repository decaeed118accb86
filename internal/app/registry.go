package app

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/attendance"
	"github.com/bruno-marques98/CoreCrewApp/internal/auditlog"
	"github.com/bruno-marques98/CoreCrewApp/internal/auth"
	"github.com/bruno-marques98/CoreCrewApp/internal/benefit"
	"github.com/bruno-marques98/CoreCrewApp/internal/config"
	"github.com/bruno-marques98/CoreCrewApp/internal/department"
	"github.com/bruno-marques98/CoreCrewApp/internal/employee"
	"github.com/bruno-marques98/CoreCrewApp/internal/employeebenefit"
	"github.com/bruno-marques98/CoreCrewApp/internal/employeeproject"
	"github.com/bruno-marques98/CoreCrewApp/internal/employeerole"
	"github.com/bruno-marques98/CoreCrewApp/internal/employeetraining"
	"github.com/bruno-marques98/CoreCrewApp/internal/leaverequest"
	"github.com/bruno-marques98/CoreCrewApp/internal/messaging/kafka"
	"github.com/bruno-marques98/CoreCrewApp/internal/middleware"
	"github.com/bruno-marques98/CoreCrewApp/internal/notification"
	"github.com/bruno-marques98/CoreCrewApp/internal/performancereview"
	"github.com/bruno-marques98/CoreCrewApp/internal/project"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac"
	"github.com/bruno-marques98/CoreCrewApp/internal/rbac/infra"
	"github.com/bruno-marques98/CoreCrewApp/internal/role"
	"github.com/bruno-marques98/CoreCrewApp/internal/salary"
	"github.com/bruno-marques98/CoreCrewApp/internal/setting"
	"github.com/bruno-marques98/CoreCrewApp/internal/trainingprogram"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// registerModules wires every repository, service and handler and mounts
// them under /api. It returns the auth service for the admin bootstrap.
func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) (auth.Service, error) {
	logger := zap.L()

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(db)
	auditLogRepo := auditlog.NewRepository(db)
	authRepo := auth.NewRepository(db)
	benefitRepo := benefit.NewRepository(db)
	departmentRepo := department.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	employeeBenefitRepo := employeebenefit.NewRepository(db)
	employeeProjectRepo := employeeproject.NewRepository(db)
	employeeRoleRepo := employeerole.NewRepository(db)
	employeeTrainingRepo := employeetraining.NewRepository(db)
	leaveRequestRepo := leaverequest.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	performanceReviewRepo := performancereview.NewRepository(db)
	projectRepo := project.NewRepository(db)
	roleRepo := role.NewRepository(db)
	salaryRepo := salary.NewRepository(db)
	settingRepo := setting.NewRepository(db)
	trainingProgramRepo := trainingprogram.NewRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicies(), rbac.DefaultGroupings(), logger)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	authService := auth.NewService(db, authRepo, outboxRepo, auth.TokenConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.AccessTokenTTL,
	}, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, logger)
	auditLogService := auditlog.NewService(db, auditLogRepo, logger)
	benefitService := benefit.NewService(db, benefitRepo, logger)
	departmentService := department.NewService(db, departmentRepo, logger)
	employeeService := employee.NewService(db, employeeRepo, logger)
	employeeBenefitService := employeebenefit.NewService(db, employeeBenefitRepo, logger)
	employeeProjectService := employeeproject.NewService(db, employeeProjectRepo, logger)
	employeeRoleService := employeerole.NewService(db, employeeRoleRepo, logger)
	employeeTrainingService := employeetraining.NewService(db, employeeTrainingRepo, logger)
	leaveRequestService := leaverequest.NewService(db, leaveRequestRepo, logger)
	notificationService := notification.NewService(db, notificationRepo, logger)
	performanceReviewService := performancereview.NewService(db, performanceReviewRepo, logger)
	projectService := project.NewService(db, projectRepo, logger)
	roleService := role.NewService(db, roleRepo, logger)
	salaryService := salary.NewService(db, salaryRepo, logger)
	settingService := setting.NewService(db, settingRepo, logger)
	trainingProgramService := trainingprogram.NewService(db, trainingProgramRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	auditLogHandler := auditlog.NewHandler(auditLogService, logger)
	benefitHandler := benefit.NewHandler(benefitService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	employeeBenefitHandler := employeebenefit.NewHandler(employeeBenefitService, logger)
	employeeProjectHandler := employeeproject.NewHandler(employeeProjectService, logger)
	employeeRoleHandler := employeerole.NewHandler(employeeRoleService, logger)
	employeeTrainingHandler := employeetraining.NewHandler(employeeTrainingService, logger)
	leaveRequestHandler := leaverequest.NewHandler(leaveRequestService, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)
	performanceReviewHandler := performancereview.NewHandler(performanceReviewService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	roleHandler := role.NewHandler(roleService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)
	settingHandler := setting.NewHandler(settingService, logger)
	trainingProgramHandler := trainingprogram.NewHandler(trainingProgramService, logger)

	// --- Middleware ---
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)
	stack := middleware.Stack{
		Auth:        authMiddleware,
		Logger:      middleware.ContextLogger(logger),
		RateLimit:   middleware.RateLimitByUser(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		Idempotency: middleware.Idempotency(rdb, cfg.IdempotencyTTL),
	}

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, stack)
		auditlog.RegisterRoutes(api, auditLogHandler, rbacService, stack)
		benefit.RegisterRoutes(api, benefitHandler, rbacService, stack)
		department.RegisterRoutes(api, departmentHandler, rbacService, stack)
		employee.RegisterRoutes(api, employeeHandler, rbacService, stack)
		employeebenefit.RegisterRoutes(api, employeeBenefitHandler, rbacService, stack)
		employeeproject.RegisterRoutes(api, employeeProjectHandler, rbacService, stack)
		employeerole.RegisterRoutes(api, employeeRoleHandler, rbacService, stack)
		employeetraining.RegisterRoutes(api, employeeTrainingHandler, rbacService, stack)
		leaverequest.RegisterRoutes(api, leaveRequestHandler, rbacService, stack)
		notification.RegisterRoutes(api, notificationHandler, rbacService, stack)
		performancereview.RegisterRoutes(api, performanceReviewHandler, rbacService, stack)
		project.RegisterRoutes(api, projectHandler, rbacService, stack)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, authMiddleware)
		role.RegisterRoutes(api, roleHandler, rbacService, stack)
		salary.RegisterRoutes(api, salaryHandler, rbacService, stack)
		setting.RegisterRoutes(api, settingHandler, rbacService, stack)
		trainingprogram.RegisterRoutes(api, trainingProgramHandler, rbacService, stack)
	}

	return authService, nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/VictorGlez97/almperms/api/swagger" // swagger docs
	"github.com/VictorGlez97/almperms/internal/config"
	"github.com/VictorGlez97/almperms/internal/database"
	"github.com/VictorGlez97/almperms/internal/graphql"
	"github.com/VictorGlez97/almperms/internal/handler"
	"github.com/VictorGlez97/almperms/internal/middleware"
	"github.com/VictorGlez97/almperms/internal/repository"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Warehouse Permissions API
// @version         1.0
// @description     Maintains warehouse movement permissions, seller sales targets and the catalogs around them.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, envLoaded, err := config.Load("configs/.env")
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := setupLogger(cfg)
	if !envLoaded {
		logger.Info("No configs/.env file found, using process environment")
	}

	db, err := database.NewConnection(cfg.DSN(), database.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		AutoMigrate:     cfg.DBAutoMigrate,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Database connection failed")
	}
	logger.WithField("host", cfg.DBHost).Info("Connected to PostgreSQL successfully")

	// Set up WebSocket Hub
	stop := make(chan struct{})
	wsHub := websocket.NewHub(logger)
	go wsHub.Run(stop)

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	parameterRepo := repository.NewParameterRepository(db)
	identifierRepo := repository.NewIdentifierRepository(db)
	personRepo := repository.NewPersonRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	targetRepo := repository.NewSalesTargetRepository(db)
	targetDetailRepo := repository.NewSalesTargetDetailRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	permissionService := service.NewPermissionService(assignmentRepo, parameterRepo, auditRepo, txManager, wsHub, logger, cfg.DefaultParameterType)
	assignmentService := service.NewAssignmentService(assignmentRepo, parameterRepo, personRepo, auditRepo, txManager)
	parameterService := service.NewParameterService(parameterRepo, txManager)
	auditService := service.NewAuditService(auditRepo)
	catalogService := service.NewCatalogService(identifierRepo, personRepo, statusRepo, userRepo)
	salesTargetService := service.NewSalesTargetService(targetRepo, targetDetailRepo, txManager, wsHub, logger)
	roleService := service.NewRoleService(roleRepo)

	schema, err := graphql.NewSchema(graphql.Services{
		Permissions:  permissionService,
		Assignments:  assignmentService,
		Parameters:   parameterService,
		Audit:        auditService,
		Catalog:      catalogService,
		SalesTargets: salesTargetService,
		Roles:        roleService,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build GraphQL schema")
	}

	// Initialize Handlers
	permissionHandler := handler.NewPermissionHandler(permissionService, assignmentService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	parameterHandler := handler.NewParameterHandler(parameterService)
	auditHandler := handler.NewAuditHandler(auditService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	salesTargetHandler := handler.NewSalesTargetHandler(salesTargetService)
	roleHandler := handler.NewRoleHandler(roleService)

	// Set up Gin Router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger), middleware.Metrics())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Request-ID"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "ws_clients": wsHub.ClientCount()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authenticator := middleware.NewAuthenticator(cfg.JWTSecret, cfg.AuthRequired, logger)

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, authenticator, c)
	})

	// API Routing
	api := router.Group("")
	api.Use(authenticator.Operator())
	api.Any("/graphql", gin.WrapH(schema.Handler(cfg.IsDevelopment())))
	permissionHandler.RegisterRoutes(api)
	assignmentHandler.RegisterRoutes(api)
	parameterHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)
	salesTargetHandler.RegisterRoutes(api)
	roleHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	close(stop)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.IsDevelopment() {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

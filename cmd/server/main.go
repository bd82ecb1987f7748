package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/webgigs/work-tracker-api/internal/access"
	"github.com/webgigs/work-tracker-api/internal/config"
	"github.com/webgigs/work-tracker-api/internal/constants"
	"github.com/webgigs/work-tracker-api/internal/database"
	"github.com/webgigs/work-tracker-api/internal/handlers"
	"github.com/webgigs/work-tracker-api/internal/middleware"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/repository"
	"github.com/webgigs/work-tracker-api/internal/services"
	"github.com/webgigs/work-tracker-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// File storage
	blobs, err := storage.NewDiskStore(cfg.StorageDir)
	if err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	entryRepo := repository.NewTimeEntryRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Authorization checker
	checker := access.NewChecker(repository.NewAccessStore(db))

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	clientService := services.NewClientService(clientRepo, checker)
	projectService := services.NewProjectService(projectRepo, checker)
	categoryService := services.NewCategoryService(categoryRepo, checker)
	taskService := services.NewTaskService(taskRepo, projectRepo, categoryRepo, checker)
	entryService := services.NewTimeEntryService(entryRepo, checker)
	teamService := services.NewTeamService(memberRepo, projectRepo, userRepo, notificationRepo, checker)
	notificationService := services.NewNotificationService(notificationRepo)
	reportService := services.NewReportService(reportRepo, projectRepo, clientRepo)
	attachmentService := services.NewAttachmentService(attachmentRepo, blobs, checker)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService)
	projectHandler := handlers.NewProjectHandler(projectService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	taskHandler := handlers.NewTaskHandler(taskService)
	entryHandler := handlers.NewTimeEntryHandler(entryService)
	teamHandler := handlers.NewTeamMemberHandler(teamService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	reportHandler := handlers.NewReportHandler(reportService)
	fileHandler := handlers.NewFileHandler(attachmentService)

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"",
		"",
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Work Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Client routes (protected)
		clients := api.Group("/clients")
		clients.Use(requireAuth)
		{
			clients.POST("", clientHandler.CreateClient)
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
			clients.POST("/:id/attachments", fileHandler.Upload(models.AttachmentParentClient))
			clients.GET("/:id/attachments", fileHandler.List(models.AttachmentParentClient))
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/tasks", taskHandler.CreateTask)
			projects.GET("/:id/tasks", taskHandler.ListTasks)
			projects.GET("/:id/team", teamHandler.ListTeam)
			projects.POST("/:id/team", teamHandler.AddMember)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("/active", taskHandler.ListActiveTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/time-entries", entryHandler.CreateTimeEntry)
			tasks.GET("/:id/time-entries", entryHandler.ListTimeEntries)
		}

		// Time entry routes (protected)
		entries := api.Group("/time-entries")
		entries.Use(requireAuth)
		{
			entries.GET("/:id", entryHandler.GetTimeEntry)
			entries.PUT("/:id", entryHandler.UpdateTimeEntry)
			entries.DELETE("/:id", entryHandler.DeleteTimeEntry)
			entries.POST("/:id/attachments", fileHandler.Upload(models.AttachmentParentTimeEntry))
			entries.GET("/:id/attachments", fileHandler.List(models.AttachmentParentTimeEntry))
		}

		// Category routes (protected)
		categories := api.Group("/categories")
		categories.Use(requireAuth)
		{
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Team member routes (protected)
		team := api.Group("/team-members")
		team.Use(requireAuth)
		{
			team.GET("", teamHandler.ListMemberships)
			team.PUT("/:id", teamHandler.UpdateMember)
			team.DELETE("/:id", teamHandler.RemoveMember)
		}

		// Report routes (protected)
		reports := api.Group("/reports")
		reports.Use(requireAuth)
		{
			reports.POST("/time-tracking", reportHandler.TimeTracking)
			reports.POST("/project-stats", reportHandler.ProjectStats)
			reports.POST("/team-productivity", reportHandler.TeamProductivity)
			reports.POST("/client-billing", reportHandler.ClientBilling)
			reports.GET("/clients-full-report", reportHandler.ClientsFullReport)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(requireAuth)
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/mark-read", notificationHandler.MarkRead)
			notifications.POST("/archive", notificationHandler.Archive)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		// Attachment routes (protected)
		attachments := api.Group("/attachments")
		attachments.Use(requireAuth)
		{
			attachments.GET("/:id/download", fileHandler.Download)
			attachments.DELETE("/:id", fileHandler.Delete)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

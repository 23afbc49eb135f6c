package routes

import (
	"studio-manager-backend/internal/api/handlers"
	"studio-manager-backend/internal/api/middleware"
	"studio-manager-backend/internal/auth"
	"studio-manager-backend/internal/config"
	"studio-manager-backend/internal/queue"
	"studio-manager-backend/internal/repository"
	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. redisClient may
// be nil, in which case assignment saves skip the notification outbox.
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	firmRepo := repository.NewFirmRepository(db)
	clientRepo := repository.NewClientRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	freelancerRepo := repository.NewFreelancerRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	accountingRepo := repository.NewAccountingEntryRepository(db)

	// Initialize services
	firmService := service.NewFirmService(firmRepo, validator)
	clientService := service.NewClientService(clientRepo, validator)
	staffService := service.NewStaffService(staffRepo, validator)
	freelancerService := service.NewFreelancerService(freelancerRepo, validator)
	quotationService := service.NewQuotationService(quotationRepo, clientRepo, validator)
	eventService := service.NewEventService(eventRepo, quotationRepo, clientRepo, assignmentRepo, validator)
	personService := service.NewPersonService(staffRepo, freelancerRepo)
	paymentService := service.NewPaymentService(paymentRepo, eventRepo, accountingRepo, validator)
	accountingService := service.NewAccountingService(accountingRepo, validator)

	var dispatcher service.NotificationDispatcher
	if redisClient != nil {
		dispatcher = queue.NewOutbox(redisClient, personService)
	}
	assignmentService := service.NewAssignmentService(assignmentRepo, eventRepo, quotationRepo, personService, dispatcher, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg, staffRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	firmHandler := handlers.NewFirmHandler(firmService)
	clientHandler := handlers.NewClientHandler(clientService)
	staffHandler := handlers.NewStaffHandler(staffService)
	freelancerHandler := handlers.NewFreelancerHandler(freelancerService)
	personHandler := handlers.NewPersonHandler(personService)
	quotationHandler := handlers.NewQuotationHandler(quotationService)
	eventHandler := handlers.NewEventHandler(eventService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, eventService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	accountingHandler := handlers.NewAccountingHandler(accountingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.Validate)
	}

	// Firm signup is open; everything else requires a token
	v1.POST("/firms", firmHandler.CreateFirm)

	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		firms := protected.Group("/firms")
		{
			firms.GET("/me", firmHandler.GetMyFirm)
			firms.PUT("/me", firmHandler.UpdateMyFirm)
		}

		clients := protected.Group("/clients")
		{
			clients.POST("", clientHandler.CreateClient)
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
		}

		staff := protected.Group("/staff")
		{
			staff.POST("", staffHandler.CreateStaff)
			staff.GET("", staffHandler.ListStaff)
			staff.GET("/:id", staffHandler.GetStaff)
			staff.PUT("/:id", staffHandler.UpdateStaff)
			staff.DELETE("/:id", staffHandler.DeleteStaff)
		}

		freelancers := protected.Group("/freelancers")
		{
			freelancers.POST("", freelancerHandler.CreateFreelancer)
			freelancers.GET("", freelancerHandler.ListFreelancers)
			freelancers.GET("/:id", freelancerHandler.GetFreelancer)
			freelancers.PUT("/:id", freelancerHandler.UpdateFreelancer)
			freelancers.DELETE("/:id", freelancerHandler.DeleteFreelancer)
		}

		protected.GET("/people", personHandler.ListPeople)

		quotations := protected.Group("/quotations")
		{
			quotations.POST("", quotationHandler.CreateQuotation)
			quotations.GET("", quotationHandler.ListQuotations)
			quotations.GET("/:id", quotationHandler.GetQuotation)
			quotations.PUT("/:id", quotationHandler.UpdateQuotation)
			quotations.PATCH("/:id/status", quotationHandler.UpdateQuotationStatus)
			quotations.DELETE("/:id", quotationHandler.DeleteQuotation)
		}

		events := protected.Group("/events")
		{
			events.POST("", eventHandler.CreateEvent)
			events.GET("", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)

			events.GET("/:id/assignments", assignmentHandler.GetDaySlots)
			events.PUT("/:id/assignments", assignmentHandler.SaveAssignments)
			events.GET("/:id/assignments/conflicts", assignmentHandler.CheckConflicts)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("", paymentHandler.CreatePayment)
			payments.GET("", paymentHandler.ListPayments)
			payments.DELETE("/:id", paymentHandler.DeletePayment)
		}

		accounting := protected.Group("/accounting")
		{
			accounting.POST("/entries", accountingHandler.CreateEntry)
			accounting.GET("/entries", accountingHandler.ListEntries)
			accounting.GET("/summary", accountingHandler.Summary)
			accounting.DELETE("/entries/:id", accountingHandler.DeleteEntry)
		}
	}

	return router
}

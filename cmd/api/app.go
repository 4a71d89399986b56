package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hmelo/inventario-api/docs"
	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/internal/adapter/api/route"
	"github.com/hmelo/inventario-api/internal/adapter/repository"
	"github.com/hmelo/inventario-api/internal/infrastructure/database"
	"github.com/hmelo/inventario-api/internal/service"
	"github.com/hmelo/inventario-api/pkg/auth"
	"github.com/hmelo/inventario-api/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router        *gin.Engine
	db            *pgxpool.Pool
	logger        logger.Logger
	cleanup       *service.NotificationCleanup
	cancelCleanup context.CancelFunc
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositórios
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Serviços
	notifier := service.NewNotificationService(notificationRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, discountRepo, notifier, log)
	cleanup := service.NewNotificationCleanup(notificationRepo, log)

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, log)
	userController := controller.NewUserController(userRepo, log)
	categoryController := controller.NewCategoryController(categoryRepo, log)
	brandController := controller.NewBrandController(brandRepo, log)
	supplierController := controller.NewSupplierController(supplierRepo, log)
	productController := controller.NewProductController(productRepo, log)
	discountController := controller.NewDiscountController(discountRepo, log)
	saleController := controller.NewSaleController(saleService, saleRepo, saleRepo, log)
	notificationController := controller.NewNotificationController(notificationRepo, log)

	// Router e middlewares globais
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas da API
	api := router.Group("/api/v1")
	route.SetupAuthRoutes(api, authController, jwtService)
	route.SetupUserRoutes(api, userController, jwtService)
	route.SetupCategoryRoutes(api, categoryController, jwtService)
	route.SetupBrandRoutes(api, brandController, jwtService)
	route.SetupSupplierRoutes(api, supplierController, jwtService)
	route.SetupProductRoutes(api, productController, jwtService)
	route.SetupDiscountRoutes(api, discountController, jwtService)
	route.SetupSaleRoutes(api, saleController, jwtService)
	route.SetupNotificationRoutes(api, notificationController, jwtService)

	return &App{
		router:  router,
		db:      db,
		logger:  log,
		cleanup: cleanup,
	}, nil
}

// Start inicia a limpeza periódica de notificações e o servidor HTTP
func (a *App) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelCleanup = cancel
	go a.cleanup.Run(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.cancelCleanup != nil {
		a.cancelCleanup()
	}
	if a.db != nil {
		a.db.Close()
	}
}

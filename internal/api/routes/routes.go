package routes

import (
	"net/http"

	"product-catalog-backend/internal/api/handlers"
	"product-catalog-backend/internal/api/middleware"
	"product-catalog-backend/internal/config"
	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, m *metrics.Metrics, version string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(m))

	// Repositories
	productRepo := repository.NewProductRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, version)
	productHandler := handlers.NewProductHandler(productRepo, m)
	componentHandler := handlers.NewComponentHandler(componentRepo, m)
	tenantHandler := handlers.NewTenantHandler(tenantRepo, m)
	userHandler := handlers.NewUserHandler(userRepo, m)
	relationshipHandler := handlers.NewRelationshipHandler(relationshipRepo, m)
	environmentHandler := handlers.NewCatalogHandler[models.Environment, *models.Environment](
		repository.NewEnvironmentRepository(db), "environment", "/api/environments", m)
	awsAccountHandler := handlers.NewCatalogHandler[models.AwsAccount, *models.AwsAccount](
		repository.NewAwsAccountRepository(db), "aws account", "/api/awsaccounts", m)
	teamHandler := handlers.NewCatalogHandler[models.Team, *models.Team](
		repository.NewTeamRepository(db), "team", "/api/teams", m)
	roleHandler := handlers.NewCatalogHandler[models.Role, *models.Role](
		repository.NewRoleRepository(db), "role", "/api/roles", m)
	privilegeHandler := handlers.NewCatalogHandler[models.Privilege, *models.Privilege](
		repository.NewPrivilegeRepository(db), "privilege", "/api/privileges", m)
	moduleHandler := handlers.NewCatalogHandler[models.Module, *models.Module](
		repository.NewModuleRepository(db), "module", "/api/modules", m)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		products := api.Group("/products")
		productHandler.Register(products)
		products.PUT("/:id/environments/:environmentId", relationshipHandler.RecordDeployment)

		tenants := api.Group("/tenants")
		tenantHandler.Register(tenants)
		tenants.POST("/:id/products/:productId", relationshipHandler.Subscribe)
		tenants.DELETE("/:id/products/:productId", relationshipHandler.Unsubscribe)
		tenants.POST("/:id/components/:componentId", relationshipHandler.ActivateComponent)
		tenants.DELETE("/:id/components/:componentId", relationshipHandler.DeactivateComponent)

		componentHandler.Register(api.Group("/components"))
		environmentHandler.Register(api.Group("/environments"))
		awsAccountHandler.Register(api.Group("/awsaccounts"))
		teamHandler.Register(api.Group("/teams"))

		// Security scaffold, read-only
		userHandler.Register(api.Group("/users"))
		roleHandler.RegisterReadOnly(api.Group("/roles"))
		privilegeHandler.RegisterReadOnly(api.Group("/privileges"))
		moduleHandler.RegisterReadOnly(api.Group("/modules"))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "route not found"})
	})

	return router
}

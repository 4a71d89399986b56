package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/internal/domain/user"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupCategoryRoutes configura as rotas para o módulo de categorias
func SetupCategoryRoutes(router *gin.RouterGroup, categoryController *controller.CategoryController, jwtService *auth.JWTService) {
	categoryRouter := router.Group("/categories")
	categoryRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		categoryRouter.GET("", categoryController.List)
		categoryRouter.GET("/:id", categoryController.GetByID)

		writeRouter := categoryRouter.Group("")
		writeRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleManager), string(user.RoleInventoryController)))
		{
			writeRouter.POST("", categoryController.Create)
			writeRouter.PUT("/:id", categoryController.Update)
			writeRouter.DELETE("/:id", categoryController.Delete)
		}
	}
}

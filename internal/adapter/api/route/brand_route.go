package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/internal/domain/user"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupBrandRoutes configura as rotas para o módulo de marcas
func SetupBrandRoutes(router *gin.RouterGroup, brandController *controller.BrandController, jwtService *auth.JWTService) {
	brandRouter := router.Group("/brands")
	brandRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		brandRouter.GET("", brandController.List)
		brandRouter.GET("/:id", brandController.GetByID)

		writeRouter := brandRouter.Group("")
		writeRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleManager), string(user.RoleInventoryController)))
		{
			writeRouter.POST("", brandController.Create)
			writeRouter.PUT("/:id", brandController.Update)
			writeRouter.DELETE("/:id", brandController.Delete)
		}
	}
}

package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/internal/domain/user"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupSupplierRoutes configura as rotas para o módulo de fornecedores
func SetupSupplierRoutes(router *gin.RouterGroup, supplierController *controller.SupplierController, jwtService *auth.JWTService) {
	supplierRouter := router.Group("/suppliers")
	supplierRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		supplierRouter.GET("", supplierController.List)
		supplierRouter.GET("/:id", supplierController.GetByID)

		writeRouter := supplierRouter.Group("")
		writeRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleManager), string(user.RoleInventoryController)))
		{
			writeRouter.POST("", supplierController.Create)
			writeRouter.PUT("/:id", supplierController.Update)
			writeRouter.DELETE("/:id", supplierController.Delete)
		}
	}
}

package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/internal/domain/user"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController, jwtService *auth.JWTService) {
	productRouter := router.Group("/products")
	productRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		// Leitura é permitida a qualquer usuário autenticado
		productRouter.GET("", productController.List)
		productRouter.GET("/:id", productController.GetByID)
		productRouter.GET("/slug/:slug", productController.GetBySlug)

		// Escrita é restrita aos papéis de gestão de estoque
		writeRouter := productRouter.Group("")
		writeRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleManager), string(user.RoleInventoryController)))
		{
			writeRouter.POST("", productController.Create)
			writeRouter.PUT("/:id", productController.Update)
			writeRouter.DELETE("/:id", productController.Delete)
		}
	}
}

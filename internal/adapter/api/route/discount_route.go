package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/internal/domain/user"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupDiscountRoutes configura as rotas para o módulo de descontos
func SetupDiscountRoutes(router *gin.RouterGroup, discountController *controller.DiscountController, jwtService *auth.JWTService) {
	discountRouter := router.Group("/discounts")
	discountRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		discountRouter.GET("", discountController.List)
		discountRouter.GET("/:id", discountController.GetByID)
		discountRouter.GET("/code/:code", discountController.GetByCode)

		// Gestão de descontos é restrita a administradores e gerentes
		writeRouter := discountRouter.Group("")
		writeRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleManager)))
		{
			writeRouter.POST("", discountController.Create)
			writeRouter.PUT("/:id", discountController.Update)
			writeRouter.DELETE("/:id", discountController.Delete)
		}
	}
}

package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/internal/domain/user"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupSaleRoutes configura as rotas para o módulo de vendas
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController, jwtService *auth.JWTService) {
	saleRouter := router.Group("/sales")
	saleRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		// Registro de vendas é restrito a administradores e vendedores
		createRouter := saleRouter.Group("")
		createRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleSalesRep)))
		{
			createRouter.POST("", saleController.Create)
		}

		// Consulta de vendas é permitida a qualquer usuário autenticado
		saleRouter.GET("", saleController.List)
		saleRouter.GET("/:id", saleController.GetByID)
		saleRouter.GET("/invoice/:invoiceNo", saleController.GetByInvoiceNo)

		// Relatórios agregados são restritos a administradores e gerentes
		analyticsRouter := saleRouter.Group("/analytics")
		analyticsRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin), string(user.RoleManager)))
		{
			analyticsRouter.GET("/summary", saleController.Summary)
			analyticsRouter.GET("/by-category", saleController.ByCategory)
		}
	}
}

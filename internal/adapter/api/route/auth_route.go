package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRouter := router.Group("/auth")
	{
		// Rota de login (não requer autenticação)
		authRouter.POST("/login", authController.Login)

		// Rota para obter informações do usuário logado (requer autenticação)
		authRouter.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}

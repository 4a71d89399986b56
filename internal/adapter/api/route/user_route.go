package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/internal/domain/user"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupUserRoutes configura as rotas para o módulo de usuários
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController, jwtService *auth.JWTService) {
	userRouter := router.Group("/users")
	userRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		// Alteração da própria senha (qualquer usuário autenticado)
		userRouter.PUT("/me/password", userController.ChangePassword)

		// Gestão de usuários é restrita a administradores
		adminRouter := userRouter.Group("")
		adminRouter.Use(auth.RoleAuthMiddleware(string(user.RoleAdmin)))
		{
			adminRouter.POST("", userController.Create)
			adminRouter.GET("", userController.List)
			adminRouter.GET("/:id", userController.GetByID)
			adminRouter.PUT("/:id", userController.Update)
			adminRouter.DELETE("/:id", userController.Delete)
		}
	}
}

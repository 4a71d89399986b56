package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/controller"
	"github.com/hmelo/inventario-api/pkg/auth"
)

// SetupNotificationRoutes configura as rotas para o módulo de notificações
func SetupNotificationRoutes(router *gin.RouterGroup, notificationController *controller.NotificationController, jwtService *auth.JWTService) {
	notificationRouter := router.Group("/notifications")
	notificationRouter.Use(auth.JWTAuthMiddleware(jwtService))
	{
		notificationRouter.GET("", notificationController.ListUnread)
		notificationRouter.PUT("/:id/read", notificationController.MarkAsRead)
	}
}

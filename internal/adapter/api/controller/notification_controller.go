package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/dto"
	"github.com/hmelo/inventario-api/internal/domain/notification"
	"github.com/hmelo/inventario-api/pkg/logger"
)

// NotificationController gerencia as requisições relacionadas a notificações
type NotificationController struct {
	notificationRepository notification.Repository
	logger                 logger.Logger
}

// NewNotificationController cria uma nova instância de NotificationController
func NewNotificationController(notificationRepository notification.Repository, logger logger.Logger) *NotificationController {
	return &NotificationController{
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

// ListUnread lista as notificações não lidas
// @Summary Lista as notificações não lidas
// @Description Lista as notificações de estoque ainda não lidas, da mais recente para a mais antiga
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.NotificationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) ListUnread(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	notifications, err := c.notificationRepository.ListUnread(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar notificações", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications))
}

// MarkAsRead marca uma notificação como lida
// @Summary Marca uma notificação como lida
// @Description Marca uma notificação como lida
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da notificação"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [put]
func (c *NotificationController) MarkAsRead(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	if err := c.notificationRepository.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Notificação não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao marcar notificação como lida", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Notificação marcada como lida", nil))
}

package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/dto"
	"github.com/hmelo/inventario-api/internal/domain/discount"
	"github.com/hmelo/inventario-api/pkg/logger"
)

// DiscountController gerencia as requisições relacionadas a descontos
type DiscountController struct {
	discountRepository discount.Repository
	logger             logger.Logger
}

// NewDiscountController cria uma nova instância de DiscountController
func NewDiscountController(discountRepository discount.Repository, logger logger.Logger) *DiscountController {
	return &DiscountController{
		discountRepository: discountRepository,
		logger:             logger,
	}
}

// Create cria um novo desconto
// @Summary Cria um novo desconto
// @Description Cria um novo desconto; quando o código não é informado, um código aleatório é gerado
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param discount body dto.DiscountRequest true "Dados do desconto"
// @Success 201 {object} dto.DiscountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discounts [post]
func (c *DiscountController) Create(ctx *gin.Context) {
	var request dto.DiscountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	code := request.Code
	if code == "" {
		code = discount.GenerateCode()
	}

	d, err := discount.NewDiscount(code, request.Percentage, request.StartDate, request.EndDate, request.Description)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.discountRepository.Create(ctx, d); err != nil {
		if errors.Is(err, discount.ErrDuplicateCode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Desconto com mesmo código já existe", ""))
			return
		}
		c.logger.Error("erro ao criar desconto", "code", code, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar desconto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDiscountResponse(d))
}

// GetByID busca um desconto pelo ID
// @Summary Busca um desconto pelo ID
// @Description Busca um desconto pelo seu ID
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do desconto"
// @Success 200 {object} dto.DiscountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discounts/{id} [get]
func (c *DiscountController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	d, err := c.discountRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, discount.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Desconto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar desconto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDiscountResponse(d))
}

// GetByCode busca um desconto pelo código
// @Summary Busca um desconto pelo código
// @Description Busca um desconto pelo seu código
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código do desconto"
// @Success 200 {object} dto.DiscountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discounts/code/{code} [get]
func (c *DiscountController) GetByCode(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Código não fornecido", ""))
		return
	}

	d, err := c.discountRepository.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, discount.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Desconto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar desconto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDiscountResponse(d))
}

// List lista os descontos de forma paginada
// @Summary Lista os descontos
// @Description Lista os descontos de forma paginada
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.DiscountListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discounts [get]
func (c *DiscountController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	discounts, err := c.discountRepository.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar descontos", err.Error()))
		return
	}

	totalCount, err := c.discountRepository.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar descontos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDiscountListResponse(discounts, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza um desconto existente
// @Summary Atualiza um desconto
// @Description Atualiza os dados de um desconto existente
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do desconto"
// @Param discount body dto.DiscountRequest true "Dados do desconto"
// @Success 200 {object} dto.DiscountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discounts/{id} [put]
func (c *DiscountController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.DiscountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	d, err := c.discountRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, discount.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Desconto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar desconto", err.Error()))
		return
	}

	if err := d.Update(request.Percentage, request.StartDate, request.EndDate, request.Description); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.discountRepository.Update(ctx, d); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar desconto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDiscountResponse(d))
}

// Delete remove um desconto
// @Summary Remove um desconto
// @Description Remove um desconto
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do desconto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discounts/{id} [delete]
func (c *DiscountController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	if err := c.discountRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, discount.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Desconto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover desconto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Desconto removido com sucesso", nil))
}

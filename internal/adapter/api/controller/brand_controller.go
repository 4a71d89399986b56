package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/dto"
	"github.com/hmelo/inventario-api/internal/domain/brand"
	"github.com/hmelo/inventario-api/pkg/logger"
)

// BrandController gerencia as requisições relacionadas a marcas
type BrandController struct {
	brandRepository brand.Repository
	logger          logger.Logger
}

// NewBrandController cria uma nova instância de BrandController
func NewBrandController(brandRepository brand.Repository, logger logger.Logger) *BrandController {
	return &BrandController{
		brandRepository: brandRepository,
		logger:          logger,
	}
}

// Create cria uma nova marca
// @Summary Cria uma nova marca
// @Description Cria uma nova marca de produtos
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body dto.BrandRequest true "Dados da marca"
// @Success 201 {object} dto.BrandResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands [post]
func (c *BrandController) Create(ctx *gin.Context) {
	var request dto.BrandRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := brand.NewBrand(request.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.brandRepository.Create(ctx, b); err != nil {
		if errors.Is(err, brand.ErrDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Marca com mesmo nome já existe", ""))
			return
		}
		c.logger.Error("erro ao criar marca", "name", request.Name, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar marca", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBrandResponse(b))
}

// GetByID busca uma marca pelo ID
// @Summary Busca uma marca pelo ID
// @Description Busca uma marca pelo seu ID
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da marca"
// @Success 200 {object} dto.BrandResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [get]
func (c *BrandController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	b, err := c.brandRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, brand.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Marca não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar marca", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(b))
}

// List lista as marcas de forma paginada
// @Summary Lista as marcas
// @Description Lista as marcas de forma paginada
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.BrandListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands [get]
func (c *BrandController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	brands, err := c.brandRepository.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar marcas", err.Error()))
		return
	}

	totalCount, err := c.brandRepository.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar marcas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandListResponse(brands, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza uma marca existente
// @Summary Atualiza uma marca
// @Description Atualiza os dados de uma marca existente
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da marca"
// @Param brand body dto.BrandRequest true "Dados da marca"
// @Success 200 {object} dto.BrandResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [put]
func (c *BrandController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.BrandRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := c.brandRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, brand.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Marca não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar marca", err.Error()))
		return
	}

	if err := b.Update(request.Name); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.brandRepository.Update(ctx, b); err != nil {
		if errors.Is(err, brand.ErrDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Marca com mesmo nome já existe", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar marca", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(b))
}

// Delete remove uma marca
// @Summary Remove uma marca
// @Description Remove uma marca do catálogo
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da marca"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [delete]
func (c *BrandController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	if err := c.brandRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, brand.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Marca não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover marca", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Marca removida com sucesso", nil))
}

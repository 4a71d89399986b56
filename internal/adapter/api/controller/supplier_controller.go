package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/dto"
	"github.com/hmelo/inventario-api/internal/domain/supplier"
	"github.com/hmelo/inventario-api/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepository supplier.Repository
	logger             logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepository supplier.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepository: supplierRepository,
		logger:             logger,
	}
}

// Create cria um novo fornecedor
// @Summary Cria um novo fornecedor
// @Description Cria um novo fornecedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var request dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := supplier.NewSupplier(request.Name, request.Email, request.Phone, request.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.supplierRepository.Create(ctx, s); err != nil {
		c.logger.Error("erro ao criar fornecedor", "name", request.Name, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSupplierResponse(s))
}

// GetByID busca um fornecedor pelo ID
// @Summary Busca um fornecedor pelo ID
// @Description Busca um fornecedor pelo seu ID
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	s, err := c.supplierRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplier.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// List lista os fornecedores de forma paginada
// @Summary Lista os fornecedores
// @Description Lista os fornecedores de forma paginada
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.SupplierListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	suppliers, err := c.supplierRepository.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar fornecedores", err.Error()))
		return
	}

	totalCount, err := c.supplierRepository.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza um fornecedor existente
// @Summary Atualiza um fornecedor
// @Description Atualiza os dados de um fornecedor existente
// @Tags suppliers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do fornecedor"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	var request dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := c.supplierRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplier.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar fornecedor", err.Error()))
		return
	}

	if err := s.Update(request.Name, request.Email, request.Phone, request.Address); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.supplierRepository.Update(ctx, s); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSupplierResponse(s))
}

// Delete remove um fornecedor
// @Summary Remove um fornecedor
// @Description Remove um fornecedor
// @Tags suppliers
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	if err := c.supplierRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, supplier.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Fornecedor não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Fornecedor removido com sucesso", nil))
}

package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hmelo/inventario-api/internal/adapter/api/dto"
	"github.com/hmelo/inventario-api/internal/domain/discount"
	"github.com/hmelo/inventario-api/internal/domain/product"
	"github.com/hmelo/inventario-api/internal/domain/sale"
	"github.com/hmelo/inventario-api/internal/service"
	"github.com/hmelo/inventario-api/pkg/auth"
	"github.com/hmelo/inventario-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleService    *service.SaleService
	saleRepository sale.Repository
	analytics      sale.AnalyticsRepository
	logger         logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleService *service.SaleService, saleRepository sale.Repository, analytics sale.AnalyticsRepository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleService:    saleService,
		saleRepository: saleRepository,
		analytics:      analytics,
		logger:         logger,
	}
}

// Create registra uma nova venda
// @Summary Registra uma venda
// @Description Valida estoque e desconto, baixa o estoque e registra a venda de forma atômica
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body dto.CreateSaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var request dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	items := make([]service.SaleItemInput, len(request.Items))
	for i, it := range request.Items {
		items[i] = service.SaleItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
	}

	input := service.CreateSaleInput{
		Items:         items,
		PaymentMethod: request.PaymentMethod,
		DiscountCode:  request.DiscountCode,
		Note:          request.Note,
		PosNumber:     request.PosNumber,
	}

	s, err := c.saleService.CreateSale(ctx, input, auth.CurrentUserID(ctx))
	if err != nil {
		c.respondCreateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(s))
}

// respondCreateError traduz os erros do registro de venda em respostas HTTP
func (c *SaleController) respondCreateError(ctx *gin.Context, err error) {
	var stockErr *sale.InsufficientStockError
	var notActiveErr *discount.NotActiveError

	switch {
	case errors.Is(err, sale.ErrEmptyItems),
		errors.Is(err, sale.ErrInvalidQuantity),
		errors.Is(err, sale.ErrEmptyPaymentMethod):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Venda inválida", err.Error()))
	case errors.As(err, &stockErr):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Estoque insuficiente", stockErr.Error()))
	case errors.As(err, &notActiveErr):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Desconto fora de vigência", notActiveErr.Error()))
	case errors.Is(err, product.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", err.Error()))
	case errors.Is(err, discount.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Desconto não encontrado", err.Error()))
	default:
		c.logger.Error("erro ao registrar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar venda", err.Error()))
	}
}

// GetByID busca uma venda pelo ID
// @Summary Busca uma venda pelo ID
// @Description Busca uma venda com seus itens pelo ID
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	s, err := c.saleRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// GetByInvoiceNo busca uma venda pelo número da fatura
// @Summary Busca uma venda pela fatura
// @Description Busca uma venda com seus itens pelo número da fatura
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param invoiceNo path string true "Número da fatura"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/invoice/{invoiceNo} [get]
func (c *SaleController) GetByInvoiceNo(ctx *gin.Context) {
	invoiceNo := ctx.Param("invoiceNo")
	if invoiceNo == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Número de fatura não fornecido", ""))
		return
	}

	s, err := c.saleRepository.FindByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(s))
}

// List lista as vendas de forma paginada
// @Summary Lista as vendas
// @Description Lista as vendas de forma paginada, da mais recente para a mais antiga
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.saleRepository.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	totalCount, err := c.saleRepository.Count(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, totalCount, pagination.Page, pagination.PageSize))
}

// Summary retorna os totais de vendas em um período
// @Summary Totais de vendas no período
// @Description Retorna o valor total e a quantidade total vendida entre as datas informadas
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param start query string true "Data inicial (YYYY-MM-DD)"
// @Param end query string true "Data final (YYYY-MM-DD)"
// @Success 200 {object} dto.SalesSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/analytics/summary [get]
func (c *SaleController) Summary(ctx *gin.Context) {
	start, end, err := parsePeriod(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	totalAmount, err := c.analytics.TotalAmountBetween(ctx, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao calcular total de vendas", err.Error()))
		return
	}

	totalQuantity, err := c.analytics.TotalQuantityBetween(ctx, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao calcular quantidade vendida", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SalesSummaryResponse{
		Start:         start,
		End:           end,
		TotalAmount:   totalAmount,
		TotalQuantity: totalQuantity,
	})
}

// ByCategory retorna os totais de vendas por categoria em um período
// @Summary Totais de vendas por categoria
// @Description Retorna o valor vendido por categoria entre as datas informadas
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param start query string true "Data inicial (YYYY-MM-DD)"
// @Param end query string true "Data final (YYYY-MM-DD)"
// @Success 200 {object} dto.SalesByCategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/analytics/by-category [get]
func (c *SaleController) ByCategory(ctx *gin.Context) {
	start, end, err := parsePeriod(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Período inválido", err.Error()))
		return
	}

	totals, err := c.analytics.AmountByCategoryBetween(ctx, start, end)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao calcular vendas por categoria", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesByCategoryResponse(start, end, totals))
}

// parsePeriod lê as datas start e end da query string.
// A data final é tratada como inclusiva: o período cobre o dia inteiro.
func parsePeriod(ctx *gin.Context) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, ctx.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("data inicial deve estar no formato YYYY-MM-DD")
	}

	end, err := time.Parse(dateLayout, ctx.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("data final deve estar no formato YYYY-MM-DD")
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("data final deve ser posterior à data inicial")
	}

	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hmelo/inventario-api/internal/domain/sale"
)

// SaleItemRequest representa uma linha de venda na requisição
type SaleItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateSaleRequest representa os dados para registrar uma venda
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	DiscountCode  string            `json:"discount_code"`
	Note          string            `json:"note"`
	PosNumber     string            `json:"pos_number"`
}

// SaleItemResponse representa uma linha de venda na resposta
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Description string          `json:"description,omitempty"`
}

// SaleResponse representa a resposta com dados de uma venda
type SaleResponse struct {
	ID             string             `json:"id"`
	InvoiceNo      string             `json:"invoice_no"`
	CashierID      string             `json:"cashier_id"`
	TotalQuantity  int                `json:"total_quantity"`
	GrossTotal     decimal.Decimal    `json:"gross_total"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	DiscountID     string             `json:"discount_id,omitempty"`
	PaymentMethod  string             `json:"payment_method"`
	PosNumber      string             `json:"pos_number,omitempty"`
	Note           string             `json:"note,omitempty"`
	Items          []SaleItemResponse `json:"items"`
	CreatedAt      time.Time          `json:"created_at"`
}

// SaleListResponse representa a resposta com a lista de vendas paginada
type SaleListResponse struct {
	Data       []SaleResponse `json:"data"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// SalesSummaryResponse representa os totais de vendas em um período
type SalesSummaryResponse struct {
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity int             `json:"total_quantity"`
}

// CategoryTotalResponse representa o total vendido de uma categoria
type CategoryTotalResponse struct {
	CategoryName string          `json:"category_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// SalesByCategoryResponse representa os totais de vendas por categoria em um período
type SalesByCategoryResponse struct {
	Start      time.Time               `json:"start"`
	End        time.Time               `json:"end"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToSaleResponse converte uma venda do domínio para DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalAmount: it.TotalAmount,
			Description: it.Description,
		}
	}

	return SaleResponse{
		ID:             s.ID,
		InvoiceNo:      s.InvoiceNo,
		CashierID:      s.CashierID,
		TotalQuantity:  s.TotalQuantity,
		GrossTotal:     s.GrossTotal,
		DiscountAmount: s.DiscountAmount,
		TotalAmount:    s.TotalAmount,
		DiscountID:     s.DiscountID,
		PaymentMethod:  s.PaymentMethod,
		PosNumber:      s.PosNumber,
		Note:           s.Note,
		Items:          items,
		CreatedAt:      s.CreatedAt,
	}
}

// ToSaleListResponse converte uma lista de vendas do domínio para DTO de resposta paginada
func ToSaleListResponse(sales []*sale.Sale, totalCount, page, pageSize int) SaleListResponse {
	data := make([]SaleResponse, len(sales))
	for i, s := range sales {
		data[i] = ToSaleResponse(s)
	}

	return SaleListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToSalesByCategoryResponse converte os totais por categoria para DTO de resposta
func ToSalesByCategoryResponse(start, end time.Time, totals []sale.CategoryTotal) SalesByCategoryResponse {
	categories := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		categories[i] = CategoryTotalResponse{
			CategoryName: t.CategoryName,
			TotalAmount:  t.TotalAmount,
		}
	}

	return SalesByCategoryResponse{
		Start:      start,
		End:        end,
		Categories: categories,
	}
}

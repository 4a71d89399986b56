package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hmelo/inventario-api/internal/domain/discount"
)

// DiscountRequest representa os dados de um desconto para criação ou atualização
type DiscountRequest struct {
	Code        string          `json:"code"`
	Percentage  decimal.Decimal `json:"percentage" binding:"required"`
	StartDate   time.Time       `json:"start_date" binding:"required"`
	EndDate     time.Time       `json:"end_date" binding:"required"`
	Description string          `json:"description"`
}

// DiscountResponse representa a resposta com dados de um desconto
type DiscountResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Percentage  decimal.Decimal `json:"percentage"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DiscountListResponse representa a resposta com a lista de descontos paginada
type DiscountListResponse struct {
	Data       []DiscountResponse `json:"data"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToDiscountResponse converte um desconto do domínio para DTO de resposta
func ToDiscountResponse(d *discount.Discount) DiscountResponse {
	return DiscountResponse{
		ID:          d.ID,
		Code:        d.Code,
		Percentage:  d.Percentage,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToDiscountListResponse converte uma lista de descontos do domínio para DTO de resposta paginada
func ToDiscountListResponse(discounts []*discount.Discount, totalCount, page, pageSize int) DiscountListResponse {
	data := make([]DiscountResponse, len(discounts))
	for i, d := range discounts {
		data[i] = ToDiscountResponse(d)
	}

	return DiscountListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

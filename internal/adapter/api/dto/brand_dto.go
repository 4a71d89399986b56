package dto

import (
	"time"

	"github.com/hmelo/inventario-api/internal/domain/brand"
)

// BrandRequest representa os dados de uma marca para criação ou atualização
type BrandRequest struct {
	Name string `json:"name" binding:"required"`
}

// BrandResponse representa a resposta com dados de uma marca
type BrandResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandListResponse representa a resposta com a lista de marcas paginada
type BrandListResponse struct {
	Data       []BrandResponse `json:"data"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// ToBrandResponse converte uma marca do domínio para DTO de resposta
func ToBrandResponse(b *brand.Brand) BrandResponse {
	return BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Slug:      b.Slug,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBrandListResponse converte uma lista de marcas do domínio para DTO de resposta paginada
func ToBrandListResponse(brands []*brand.Brand, totalCount, page, pageSize int) BrandListResponse {
	data := make([]BrandResponse, len(brands))
	for i, b := range brands {
		data[i] = ToBrandResponse(b)
	}

	return BrandListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

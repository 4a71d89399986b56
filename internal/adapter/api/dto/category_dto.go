package dto

import (
	"time"

	"github.com/hmelo/inventario-api/internal/domain/category"
)

// CategoryRequest representa os dados de uma categoria para criação ou atualização
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryResponse representa a resposta com dados de uma categoria
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse representa a resposta com a lista de categorias paginada
type CategoryListResponse struct {
	Data       []CategoryResponse `json:"data"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToCategoryResponse converte uma categoria do domínio para DTO de resposta
func ToCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias do domínio para DTO de resposta paginada
func ToCategoryListResponse(categories []*category.Category, totalCount, page, pageSize int) CategoryListResponse {
	data := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		data[i] = ToCategoryResponse(c)
	}

	return CategoryListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hmelo/inventario-api/internal/domain/product"
)

// ProductRequest representa os dados de um produto para criação ou atualização
type ProductRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	Quantity        int             `json:"quantity" binding:"min=0"`
	MinimumQuantity int             `json:"minimum_quantity" binding:"min=0"`
	CategoryID      string          `json:"category_id" binding:"required"`
	BrandID         string          `json:"brand_id"`
	SupplierID      string          `json:"supplier_id"`
}

// ProductResponse representa a resposta com dados de um produto
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	QuantitySold    int             `json:"quantity_sold"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Status          string          `json:"status"`
	CategoryID      string          `json:"category_id"`
	BrandID         string          `json:"brand_id,omitempty"`
	SupplierID      string          `json:"supplier_id,omitempty"`
	AddedByID       string          `json:"added_by_id"`
	UpdatedByID     string          `json:"updated_by_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta com a lista de produtos paginada
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto do domínio para DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		Quantity:        p.Quantity,
		QuantitySold:    p.QuantitySold,
		MinimumQuantity: p.MinimumQuantity,
		Status:          string(p.Status),
		CategoryID:      p.CategoryID,
		BrandID:         p.BrandID,
		SupplierID:      p.SupplierID,
		AddedByID:       p.AddedByID,
		UpdatedByID:     p.UpdatedByID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO de resposta paginada
func ToProductListResponse(products []*product.Product, totalCount, page, pageSize int) ProductListResponse {
	data := make([]ProductResponse, len(products))
	for i, p := range products {
		data[i] = ToProductResponse(p)
	}

	return ProductListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

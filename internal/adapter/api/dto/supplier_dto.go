package dto

import (
	"time"

	"github.com/hmelo/inventario-api/internal/domain/supplier"
)

// SupplierRequest representa os dados de um fornecedor para criação ou atualização
type SupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SupplierResponse representa a resposta com dados de um fornecedor
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse representa a resposta com a lista de fornecedores paginada
type SupplierListResponse struct {
	Data       []SupplierResponse `json:"data"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToSupplierResponse converte um fornecedor do domínio para DTO de resposta
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierListResponse converte uma lista de fornecedores do domínio para DTO de resposta paginada
func ToSupplierListResponse(suppliers []*supplier.Supplier, totalCount, page, pageSize int) SupplierListResponse {
	data := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		data[i] = ToSupplierResponse(s)
	}

	return SupplierListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

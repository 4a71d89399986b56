package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hmelo/inventario-api/pkg/slug"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice    = errors.New("preço do produto não pode ser negativo")
	ErrInvalidQuantity = errors.New("quantidade do produto não pode ser negativa")
	ErrNotFound        = errors.New("produto não encontrado")
	ErrDuplicateName   = errors.New("já existe um produto com este nome na categoria")
)

// Status representa a classificação de estoque do produto
type Status string

const (
	StatusAvailable Status = "AVAILABLE" // Estoque acima do mínimo
	StatusLow       Status = "LOW"       // Estoque abaixo do mínimo
	StatusOut       Status = "OUT"       // Sem estoque
)

// StatusFor classifica o nível de estoque de um produto.
// A função é pura: mesma entrada produz sempre o mesmo status.
func StatusFor(quantity, minimumQuantity int) Status {
	switch {
	case quantity == 0:
		return StatusOut
	case quantity < minimumQuantity:
		return StatusLow
	default:
		return StatusAvailable
	}
}

// Product representa um produto do catálogo
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	QuantitySold    int             `json:"quantity_sold"`
	MinimumQuantity int             `json:"minimum_quantity"`
	Status          Status          `json:"status"`
	CategoryID      string          `json:"category_id"`
	BrandID         string          `json:"brand_id,omitempty"`
	SupplierID      string          `json:"supplier_id,omitempty"`
	AddedByID       string          `json:"added_by_id"`
	UpdatedByID     string          `json:"updated_by_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto com slug derivado do nome e
// status derivado da quantidade inicial
func NewProduct(name, description string, price decimal.Decimal, quantity, minimumQuantity int, categoryID, addedByID string) (*Product, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 || minimumQuantity < 0 {
		return nil, ErrInvalidQuantity
	}

	now := time.Now()
	return &Product{
		ID:              uuid.New().String(),
		Name:            name,
		Slug:            slug.Make(name),
		Description:     description,
		Price:           price,
		Quantity:        quantity,
		MinimumQuantity: minimumQuantity,
		Status:          StatusFor(quantity, minimumQuantity),
		CategoryID:      categoryID,
		AddedByID:       addedByID,
		UpdatedByID:     addedByID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Update atualiza os dados do produto e rederiva slug e status
func (p *Product) Update(name, description string, price decimal.Decimal, quantity, minimumQuantity int, categoryID, updatedByID string) error {
	name = normalizeName(name)
	if name == "" {
		return ErrEmptyName
	}
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	if quantity < 0 || minimumQuantity < 0 {
		return ErrInvalidQuantity
	}

	p.Name = name
	p.Slug = slug.Make(name)
	p.Description = description
	p.Price = price
	p.Quantity = quantity
	p.MinimumQuantity = minimumQuantity
	p.Status = StatusFor(quantity, minimumQuantity)
	p.CategoryID = categoryID
	p.UpdatedByID = updatedByID
	p.UpdatedAt = time.Now()

	return nil
}

// HasStock verifica se há estoque suficiente para a quantidade solicitada
func (p *Product) HasStock(quantity int) bool {
	return p.Quantity >= quantity
}

// normalizeName normaliza o nome do produto para comparação de unicidade
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

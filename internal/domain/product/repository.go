package product

import "context"

// StockChange descreve o efeito de uma baixa de estoque sobre um produto,
// usado para decidir quais alertas de estoque emitir
type StockChange struct {
	ProductID      string
	Name           string
	NewQuantity    int
	PreviousStatus Status
	NewStatus      Status
}

// Repository define as operações de persistência para produtos
type Repository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, limit, offset int) ([]*Product, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
	ExistsByNameInCategory(ctx context.Context, name, categoryID string) (bool, error)
}

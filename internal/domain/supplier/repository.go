package supplier

import "context"

// Repository define as operações de persistência para fornecedores
type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	FindByID(ctx context.Context, id string) (*Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*Supplier, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, id string) error
}

package category

import "context"

// Repository define as operações de persistência para categorias
type Repository interface {
	Create(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context, limit, offset int) ([]*Category, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

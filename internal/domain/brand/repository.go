package brand

import "context"

// Repository define as operações de persistência para marcas
type Repository interface {
	Create(ctx context.Context, b *Brand) error
	FindByID(ctx context.Context, id string) (*Brand, error)
	List(ctx context.Context, limit, offset int) ([]*Brand, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, b *Brand) error
	Delete(ctx context.Context, id string) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

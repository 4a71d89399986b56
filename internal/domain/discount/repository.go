package discount

import "context"

// Repository define as operações de persistência para descontos
type Repository interface {
	Create(ctx context.Context, d *Discount) error
	FindByID(ctx context.Context, id string) (*Discount, error)
	FindByCode(ctx context.Context, code string) (*Discount, error)
	List(ctx context.Context, limit, offset int) ([]*Discount, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, d *Discount) error
	Delete(ctx context.Context, id string) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

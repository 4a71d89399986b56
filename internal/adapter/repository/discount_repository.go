package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hmelo/inventario-api/internal/domain/discount"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DiscountRepository implementa a interface discount.Repository
type DiscountRepository struct {
	db *pgxpool.Pool
}

// NewDiscountRepository cria uma nova instância de DiscountRepository
func NewDiscountRepository(db *pgxpool.Pool) discount.Repository {
	return &DiscountRepository{db: db}
}

// Create implementa discount.Repository.Create
func (r *DiscountRepository) Create(ctx context.Context, d *discount.Discount) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO discounts (
			id, code, percentage, start_date, end_date, description, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, d.Code, d.Percentage, d.StartDate, d.EndDate, d.Description, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return discount.ErrDuplicateCode
		}
		return fmt.Errorf("erro ao criar desconto: %w", err)
	}
	return nil
}

// FindByID implementa discount.Repository.FindByID
func (r *DiscountRepository) FindByID(ctx context.Context, id string) (*discount.Discount, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindByCode implementa discount.Repository.FindByCode
func (r *DiscountRepository) FindByCode(ctx context.Context, code string) (*discount.Discount, error) {
	return r.findOne(ctx, "code = $1", code)
}

func (r *DiscountRepository) findOne(ctx context.Context, where string, arg any) (*discount.Discount, error) {
	var d discount.Discount
	err := r.db.QueryRow(ctx,
		`SELECT id, code, percentage, start_date, end_date, description, created_at, updated_at
		FROM discounts WHERE `+where,
		arg).Scan(&d.ID, &d.Code, &d.Percentage, &d.StartDate, &d.EndDate,
		&d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, discount.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar desconto: %w", err)
	}
	return &d, nil
}

// List implementa discount.Repository.List
func (r *DiscountRepository) List(ctx context.Context, limit, offset int) ([]*discount.Discount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, code, percentage, start_date, end_date, description, created_at, updated_at
		FROM discounts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar descontos: %w", err)
	}
	defer rows.Close()

	discounts := make([]*discount.Discount, 0)
	for rows.Next() {
		var d discount.Discount
		if err := rows.Scan(&d.ID, &d.Code, &d.Percentage, &d.StartDate,
			&d.EndDate, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler desconto: %w", err)
		}
		discounts = append(discounts, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return discounts, nil
}

// Count implementa discount.Repository.Count
func (r *DiscountRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM discounts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar descontos: %w", err)
	}
	return count, nil
}

// Update implementa discount.Repository.Update
func (r *DiscountRepository) Update(ctx context.Context, d *discount.Discount) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE discounts SET
			percentage = $2, start_date = $3, end_date = $4, description = $5, updated_at = $6
		WHERE id = $1`,
		d.ID, d.Percentage, d.StartDate, d.EndDate, d.Description, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar desconto: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return discount.ErrNotFound
	}
	return nil
}

// Delete implementa discount.Repository.Delete
func (r *DiscountRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM discounts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir desconto: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return discount.ErrNotFound
	}
	return nil
}

// ExistsByCode implementa discount.Repository.ExistsByCode
func (r *DiscountRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM discounts WHERE code = $1)",
		code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar código de desconto: %w", err)
	}
	return exists, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hmelo/inventario-api/internal/domain/brand"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BrandRepository implementa a interface brand.Repository
type BrandRepository struct {
	db *pgxpool.Pool
}

// NewBrandRepository cria uma nova instância de BrandRepository
func NewBrandRepository(db *pgxpool.Pool) brand.Repository {
	return &BrandRepository{db: db}
}

// Create implementa brand.Repository.Create
func (r *BrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	exists, err := r.ExistsByName(ctx, b.Name)
	if err != nil {
		return err
	}
	if exists {
		return brand.ErrDuplicateName
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO brands (id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Name, b.Slug, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return brand.ErrDuplicateName
		}
		return fmt.Errorf("erro ao criar marca: %w", err)
	}
	return nil
}

// FindByID implementa brand.Repository.FindByID
func (r *BrandRepository) FindByID(ctx context.Context, id string) (*brand.Brand, error) {
	var b brand.Brand
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, created_at, updated_at FROM brands WHERE id = $1`,
		id).Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, brand.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar marca: %w", err)
	}
	return &b, nil
}

// List implementa brand.Repository.List
func (r *BrandRepository) List(ctx context.Context, limit, offset int) ([]*brand.Brand, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, created_at, updated_at
		FROM brands
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar marcas: %w", err)
	}
	defer rows.Close()

	brands := make([]*brand.Brand, 0)
	for rows.Next() {
		var b brand.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler marca: %w", err)
		}
		brands = append(brands, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return brands, nil
}

// Count implementa brand.Repository.Count
func (r *BrandRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM brands").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar marcas: %w", err)
	}
	return count, nil
}

// Update implementa brand.Repository.Update
func (r *BrandRepository) Update(ctx context.Context, b *brand.Brand) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE brands SET name = $2, slug = $3, updated_at = $4 WHERE id = $1`,
		b.ID, b.Name, b.Slug, b.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return brand.ErrDuplicateName
		}
		return fmt.Errorf("erro ao atualizar marca: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return brand.ErrNotFound
	}
	return nil
}

// Delete implementa brand.Repository.Delete
func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM brands WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir marca: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return brand.ErrNotFound
	}
	return nil
}

// ExistsByName implementa brand.Repository.ExistsByName
func (r *BrandRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM brands WHERE name = $1)",
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência da marca: %w", err)
	}
	return exists, nil
}

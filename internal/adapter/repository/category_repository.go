package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hmelo/inventario-api/internal/domain/category"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implementa a interface category.Repository
type CategoryRepository struct {
	db *pgxpool.Pool
}

// NewCategoryRepository cria uma nova instância de CategoryRepository
func NewCategoryRepository(db *pgxpool.Pool) category.Repository {
	return &CategoryRepository{db: db}
}

// Create implementa category.Repository.Create
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	exists, err := r.ExistsByName(ctx, c.Name)
	if err != nil {
		return err
	}
	if exists {
		return category.ErrDuplicateName
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO categories (id, name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return category.ErrDuplicateName
		}
		return fmt.Errorf("erro ao criar categoria: %w", err)
	}
	return nil
}

// FindByID implementa category.Repository.FindByID
func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	var c category.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name, slug, description, created_at, updated_at
		FROM categories WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria: %w", err)
	}
	return &c, nil
}

// List implementa category.Repository.List
func (r *CategoryRepository) List(ctx context.Context, limit, offset int) ([]*category.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, description, created_at, updated_at
		FROM categories
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return categories, nil
}

// Count implementa category.Repository.Count
func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM categories").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar categorias: %w", err)
	}
	return count, nil
}

// Update implementa category.Repository.Update
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $2, slug = $3, description = $4, updated_at = $5
		WHERE id = $1`,
		c.ID, c.Name, c.Slug, c.Description, c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return category.ErrDuplicateName
		}
		return fmt.Errorf("erro ao atualizar categoria: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return category.ErrNotFound
	}
	return nil
}

// Delete implementa category.Repository.Delete
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir categoria: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return category.ErrNotFound
	}
	return nil
}

// ExistsByName implementa category.Repository.ExistsByName
func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)",
		name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência da categoria: %w", err)
	}
	return exists, nil
}

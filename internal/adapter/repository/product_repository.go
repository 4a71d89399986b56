package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hmelo/inventario-api/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, slug, description, price, quantity, quantity_sold,
	minimum_quantity, status, category_id, brand_id, supplier_id,
	added_by_id, updated_by_id, created_at, updated_at`

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	exists, err := r.ExistsByNameInCategory(ctx, p.Name, p.CategoryID)
	if err != nil {
		return err
	}
	if exists {
		return product.ErrDuplicateName
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, slug, description, price, quantity, quantity_sold,
			minimum_quantity, status, category_id, brand_id, supplier_id,
			added_by_id, updated_by_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.Quantity, p.QuantitySold,
		p.MinimumQuantity, p.Status, p.CategoryID, nullIfEmpty(p.BrandID),
		nullIfEmpty(p.SupplierID), nullIfEmpty(p.AddedByID), nullIfEmpty(p.UpdatedByID),
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return product.ErrDuplicateName
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindBySlug implementa product.Repository.FindBySlug
func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*product.Product, error) {
	return r.findOne(ctx, "slug = $1", slug)
}

func (r *ProductRepository) findOne(ctx context.Context, where string, arg any) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE `+where, arg)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+`
		FROM products
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return products, nil
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $2, slug = $3, description = $4, price = $5, quantity = $6,
			quantity_sold = $7, minimum_quantity = $8, status = $9,
			category_id = $10, brand_id = $11, supplier_id = $12,
			updated_by_id = $13, updated_at = $14
		WHERE id = $1`,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.Quantity,
		p.QuantitySold, p.MinimumQuantity, p.Status, p.CategoryID,
		nullIfEmpty(p.BrandID), nullIfEmpty(p.SupplierID), nullIfEmpty(p.UpdatedByID), p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return product.ErrDuplicateName
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return product.ErrNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

// ExistsByNameInCategory implementa product.Repository.ExistsByNameInCategory
func (r *ProductRepository) ExistsByNameInCategory(ctx context.Context, name, categoryID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM products WHERE name = $1 AND category_id = $2)",
		name, categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do produto: %w", err)
	}
	return exists, nil
}

// scanProduct lê um produto a partir de uma linha de resultado
func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var brandID, supplierID, addedByID, updatedByID *string

	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price,
		&p.Quantity, &p.QuantitySold, &p.MinimumQuantity, &p.Status,
		&p.CategoryID, &brandID, &supplierID, &addedByID, &updatedByID,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if brandID != nil {
		p.BrandID = *brandID
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	if addedByID != nil {
		p.AddedByID = *addedByID
	}
	if updatedByID != nil {
		p.UpdatedByID = *updatedByID
	}

	return &p, nil
}

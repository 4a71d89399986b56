package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmelo/inventario-api/internal/domain/supplier"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{db: db}
}

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO suppliers (id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.Email, s.Phone, s.Address, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}
	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, phone, address, created_at, updated_at
		FROM suppliers WHERE id = $1`,
		id).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, supplier.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}
	return &s, nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, limit, offset int) ([]*supplier.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, phone, address, created_at, updated_at
		FROM suppliers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := make([]*supplier.Supplier, 0)
	for rows.Next() {
		var s supplier.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return suppliers, nil
}

// Count implementa supplier.Repository.Count
func (r *SupplierRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM suppliers").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar fornecedores: %w", err)
	}
	return count, nil
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE suppliers SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1`,
		s.ID, s.Name, s.Email, s.Phone, s.Address, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return supplier.ErrNotFound
	}
	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir fornecedor: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return supplier.ErrNotFound
	}
	return nil
}

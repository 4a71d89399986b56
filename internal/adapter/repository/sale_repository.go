package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hmelo/inventario-api/internal/domain/product"
	"github.com/hmelo/inventario-api/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// SaleRepository implementa sale.Repository e sale.AnalyticsRepository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create grava a venda, seus itens e as baixas de estoque em uma única
// transação. Cada produto é bloqueado (FOR UPDATE) antes da verificação de
// estoque, de modo que vendas concorrentes sobre o mesmo produto são
// serializadas e nunca deixam a quantidade negativa.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale, decrements []sale.StockDecrement) ([]product.StockChange, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	changes := make([]product.StockChange, 0, len(decrements))

	for _, d := range decrements {
		var (
			name       string
			quantity   int
			minimum    int
			prevStatus product.Status
		)
		err := tx.QueryRow(ctx,
			`SELECT name, quantity, minimum_quantity, status
			FROM products WHERE id = $1 FOR UPDATE`,
			d.ProductID).Scan(&name, &quantity, &minimum, &prevStatus)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("produto %s: %w", d.ProductID, product.ErrNotFound)
			}
			return nil, fmt.Errorf("erro ao bloquear produto: %w", err)
		}

		if quantity < d.Quantity {
			return nil, &sale.InsufficientStockError{
				ProductID:   d.ProductID,
				ProductName: name,
				Requested:   d.Quantity,
				Available:   quantity,
			}
		}

		newQuantity := quantity - d.Quantity
		newStatus := product.StatusFor(newQuantity, minimum)

		ct, err := tx.Exec(ctx,
			`UPDATE products
			SET quantity = quantity - $2, quantity_sold = quantity_sold + $2,
				status = $3, updated_at = $4
			WHERE id = $1 AND quantity >= $2`,
			d.ProductID, d.Quantity, newStatus, now)
		if err != nil {
			return nil, fmt.Errorf("erro ao baixar estoque: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return nil, &sale.InsufficientStockError{
				ProductID:   d.ProductID,
				ProductName: name,
				Requested:   d.Quantity,
				Available:   quantity,
			}
		}

		changes = append(changes, product.StockChange{
			ProductID:      d.ProductID,
			Name:           name,
			NewQuantity:    newQuantity,
			PreviousStatus: prevStatus,
			NewStatus:      newStatus,
		})
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO sales (
			id, invoice_no, cashier_id, total_quantity, gross_total,
			discount_amount, total_amount, discount_id, payment_method,
			pos_number, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.InvoiceNo, nullIfEmpty(s.CashierID), s.TotalQuantity, s.GrossTotal,
		s.DiscountAmount, s.TotalAmount, nullIfEmpty(s.DiscountID),
		s.PaymentMethod, s.PosNumber, s.Note, s.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "invoice_no") {
			return nil, sale.ErrDuplicateInvoiceNo
		}
		return nil, fmt.Errorf("erro ao criar venda: %w", err)
	}

	for _, it := range s.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO sale_items (
				id, sale_id, product_id, quantity, unit_price, total_amount, description
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, it.SaleID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalAmount, it.Description)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar item da venda: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit da venda: %w", err)
	}

	return changes, nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindByInvoiceNo implementa sale.Repository.FindByInvoiceNo
func (r *SaleRepository) FindByInvoiceNo(ctx context.Context, invoiceNo string) (*sale.Sale, error) {
	return r.findOne(ctx, "invoice_no = $1", invoiceNo)
}

func (r *SaleRepository) findOne(ctx context.Context, where string, arg any) (*sale.Sale, error) {
	var s sale.Sale
	var cashierID, discountID *string

	err := r.db.QueryRow(ctx,
		`SELECT id, invoice_no, cashier_id, total_quantity, gross_total,
			discount_amount, total_amount, discount_id, payment_method,
			pos_number, note, created_at
		FROM sales WHERE `+where,
		arg).Scan(
		&s.ID, &s.InvoiceNo, &cashierID, &s.TotalQuantity, &s.GrossTotal,
		&s.DiscountAmount, &s.TotalAmount, &discountID, &s.PaymentMethod,
		&s.PosNumber, &s.Note, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if cashierID != nil {
		s.CashierID = *cashierID
	}
	if discountID != nil {
		s.DiscountID = *discountID
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, sale_id, product_id, quantity, unit_price, total_amount, description
		FROM sale_items WHERE sale_id = $1`,
		s.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it sale.Item
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.TotalAmount, &it.Description); err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, invoice_no, cashier_id, total_quantity, gross_total,
			discount_amount, total_amount, discount_id, payment_method,
			pos_number, note, created_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		var s sale.Sale
		var cashierID, discountID *string
		if err := rows.Scan(&s.ID, &s.InvoiceNo, &cashierID, &s.TotalQuantity,
			&s.GrossTotal, &s.DiscountAmount, &s.TotalAmount, &discountID,
			&s.PaymentMethod, &s.PosNumber, &s.Note, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		if cashierID != nil {
			s.CashierID = *cashierID
		}
		if discountID != nil {
			s.DiscountID = *discountID
		}
		sales = append(sales, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return sales, nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM sales").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return count, nil
}

// InvoiceNoExists implementa sale.Repository.InvoiceNoExists
func (r *SaleRepository) InvoiceNoExists(ctx context.Context, invoiceNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM sales WHERE invoice_no = $1)",
		invoiceNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar número de fatura: %w", err)
	}
	return exists, nil
}

// TotalAmountBetween implementa sale.AnalyticsRepository.TotalAmountBetween
func (r *SaleRepository) TotalAmountBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM sales
		WHERE created_at BETWEEN $1 AND $2`,
		start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao somar vendas: %w", err)
	}
	return total, nil
}

// TotalQuantityBetween implementa sale.AnalyticsRepository.TotalQuantityBetween
func (r *SaleRepository) TotalQuantityBetween(ctx context.Context, start, end time.Time) (int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_quantity), 0) FROM sales
		WHERE created_at BETWEEN $1 AND $2`,
		start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("erro ao somar quantidades vendidas: %w", err)
	}
	return total, nil
}

// AmountByCategoryBetween implementa sale.AnalyticsRepository.AmountByCategoryBetween
func (r *SaleRepository) AmountByCategoryBetween(ctx context.Context, start, end time.Time) ([]sale.CategoryTotal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.name, COALESCE(SUM(si.total_amount), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE s.created_at BETWEEN $1 AND $2
		GROUP BY c.name
		ORDER BY c.name`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao agrupar vendas por categoria: %w", err)
	}
	defer rows.Close()

	totals := make([]sale.CategoryTotal, 0)
	for rows.Next() {
		var t sale.CategoryTotal
		if err := rows.Scan(&t.CategoryName, &t.TotalAmount); err != nil {
			return nil, fmt.Errorf("erro ao ler total por categoria: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return totals, nil
}

// nullIfEmpty converte string vazia em NULL para colunas opcionais
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

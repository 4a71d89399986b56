package sale

import (
	"context"
	"time"

	"github.com/hmelo/inventario-api/internal/domain/product"
	"github.com/shopspring/decimal"
)

// StockDecrement descreve a baixa total de estoque de um produto em uma venda
// (linhas repetidas do mesmo produto já agregadas)
type StockDecrement struct {
	ProductID string
	Quantity  int
}

// Repository define as operações de persistência para vendas.
// Create grava a venda, seus itens e as baixas de estoque em uma única
// transação: ou tudo é aplicado, ou nada. Retorna as mudanças de estoque
// efetivadas para que o chamador decida quais alertas emitir.
type Repository interface {
	Create(ctx context.Context, s *Sale, decrements []StockDecrement) ([]product.StockChange, error)
	FindByID(ctx context.Context, id string) (*Sale, error)
	FindByInvoiceNo(ctx context.Context, invoiceNo string) (*Sale, error)
	List(ctx context.Context, limit, offset int) ([]*Sale, error)
	Count(ctx context.Context) (int, error)
	InvoiceNoExists(ctx context.Context, invoiceNo string) (bool, error)
}

// CategoryTotal é o total vendido de uma categoria em um período
type CategoryTotal struct {
	CategoryName string          `json:"category_name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// AnalyticsRepository define consultas agregadas sobre vendas históricas
type AnalyticsRepository interface {
	TotalAmountBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	TotalQuantityBetween(ctx context.Context, start, end time.Time) (int, error)
	AmountByCategoryBetween(ctx context.Context, start, end time.Time) ([]CategoryTotal, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hmelo/inventario-api/internal/domain/discount"
	"github.com/hmelo/inventario-api/internal/domain/product"
	"github.com/hmelo/inventario-api/internal/domain/sale"
	"github.com/hmelo/inventario-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Notifier emite alertas de estoque. A emissão é melhor-esforço: falhas
// nunca alteram o resultado de uma venda já efetivada.
type Notifier interface {
	Notify(ctx context.Context, message, productID string) error
}

// SaleItemInput representa uma linha de venda solicitada
type SaleItemInput struct {
	ProductID string
	Quantity  int
}

// CreateSaleInput representa os dados de entrada para criação de uma venda
type CreateSaleInput struct {
	Items         []SaleItemInput
	PaymentMethod string
	DiscountCode  string
	Note          string
	PosNumber     string
}

// SaleService orquestra a criação de vendas: validação de estoque,
// precificação, aplicação de desconto, persistência atômica e alertas
type SaleService struct {
	sales     sale.Repository
	products  product.Repository
	discounts discount.Repository
	notifier  Notifier
	logger    logger.Logger
	now       func() time.Time
}

// NewSaleService cria uma nova instância de SaleService
func NewSaleService(sales sale.Repository, products product.Repository, discounts discount.Repository, notifier Notifier, log logger.Logger) *SaleService {
	return &SaleService{
		sales:     sales,
		products:  products,
		discounts: discounts,
		notifier:  notifier,
		logger:    log,
		now:       time.Now,
	}
}

// WithClock substitui a fonte de tempo do serviço (usado em testes)
func (s *SaleService) WithClock(now func() time.Time) *SaleService {
	s.now = now
	return s
}

const maxInvoiceAttempts = 5

// CreateSale cria uma venda a partir dos itens solicitados.
//
// As linhas são validadas na ordem de entrada; o primeiro erro encontrado
// aborta a operação inteira. A gravação da venda, dos itens e das baixas de
// estoque é uma única transação: nenhuma mutação parcial é observável em
// caso de falha. Alertas de transição de status são emitidos após o commit
// e não afetam o resultado da venda.
func (s *SaleService) CreateSale(ctx context.Context, input CreateSaleInput, cashierID string) (*sale.Sale, error) {
	if len(input.Items) == 0 {
		return nil, sale.ErrEmptyItems
	}
	if input.PaymentMethod == "" {
		return nil, sale.ErrEmptyPaymentMethod
	}

	grossTotal := decimal.Zero
	items := make([]sale.Item, 0, len(input.Items))
	decrements := make([]sale.StockDecrement, 0, len(input.Items))
	decrementIdx := make(map[string]int)

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, sale.ErrInvalidQuantity
		}

		p, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return nil, fmt.Errorf("produto %s: %w", line.ProductID, product.ErrNotFound)
			}
			return nil, err
		}

		if !p.HasStock(line.Quantity) {
			return nil, &sale.InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Requested:   line.Quantity,
				Available:   p.Quantity,
			}
		}

		// Preço unitário congelado no momento da venda
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		grossTotal = grossTotal.Add(lineTotal)

		items = append(items, sale.Item{
			ProductID:   p.ID,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
			TotalAmount: lineTotal,
			Description: p.Description,
		})

		// Linhas repetidas do mesmo produto são agregadas em uma única baixa
		if idx, ok := decrementIdx[p.ID]; ok {
			decrements[idx].Quantity += line.Quantity
		} else {
			decrementIdx[p.ID] = len(decrements)
			decrements = append(decrements, sale.StockDecrement{ProductID: p.ID, Quantity: line.Quantity})
		}
	}

	discountAmount := decimal.Zero
	discountID := ""
	if input.DiscountCode != "" {
		d, err := s.discounts.FindByCode(ctx, input.DiscountCode)
		if err != nil {
			return nil, err
		}
		if err := d.ActiveAt(s.now()); err != nil {
			return nil, err
		}
		// Percentual armazenado como 0-100; arredondado ao centavo
		discountAmount = grossTotal.Mul(d.Percentage).Div(decimal.NewFromInt(100)).Round(2)
		discountID = d.ID
	}

	var created *sale.Sale
	var changes []product.StockChange
	for attempt := 0; ; attempt++ {
		if attempt == maxInvoiceAttempts {
			return nil, sale.ErrInvoiceCollision
		}

		invoiceNo := sale.GenerateInvoiceNo(s.now())
		exists, err := s.sales.InvoiceNoExists(ctx, invoiceNo)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		created = sale.NewSale(invoiceNo, cashierID, input.PaymentMethod, input.PosNumber, input.Note,
			items, grossTotal, discountAmount, discountID)

		changes, err = s.sales.Create(ctx, created, decrements)
		if err != nil {
			// Colisão entre a verificação e o insert: gerar outro número
			if errors.Is(err, sale.ErrDuplicateInvoiceNo) {
				continue
			}
			return nil, err
		}
		break
	}

	s.emitStockAlerts(ctx, changes)

	return created, nil
}

// emitStockAlerts emite um alerta para cada produto cujo status de estoque
// mudou com a venda. Falhas são registradas e ignoradas.
func (s *SaleService) emitStockAlerts(ctx context.Context, changes []product.StockChange) {
	for _, ch := range changes {
		if ch.NewStatus == ch.PreviousStatus {
			continue
		}

		var msg string
		switch ch.NewStatus {
		case product.StatusOut:
			msg = fmt.Sprintf("Produto %s está sem estoque.", ch.Name)
		case product.StatusLow:
			msg = fmt.Sprintf("Produto %s está com estoque baixo.", ch.Name)
		case product.StatusAvailable:
			msg = fmt.Sprintf("Produto %s voltou a ficar disponível em estoque.", ch.Name)
		}

		if err := s.notifier.Notify(ctx, msg, ch.ProductID); err != nil {
			s.logger.Error("erro ao emitir alerta de estoque", "product_id", ch.ProductID, "error", err)
		}
	}
}

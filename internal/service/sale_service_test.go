package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmelo/inventario-api/internal/domain/discount"
	"github.com/hmelo/inventario-api/internal/domain/product"
	"github.com/hmelo/inventario-api/internal/domain/sale"
)

// memProducts é um product.Repository em memória; apenas os métodos
// usados pelo serviço de vendas são implementados
type memProducts struct {
	product.Repository
	mu    sync.Mutex
	items map[string]*product.Product
}

func newMemProducts(products ...*product.Product) *memProducts {
	m := &memProducts{items: make(map[string]*product.Product)}
	for _, p := range products {
		m.items[p.ID] = p
	}
	return m
}

func (m *memProducts) FindByID(ctx context.Context, id string) (*product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.items[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) get(id string) product.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.items[id]
}

// memSales emula o repositório de vendas: Create aplica as baixas de
// estoque de forma atômica contra o memProducts compartilhado
type memSales struct {
	sale.Repository
	products *memProducts

	mu          sync.Mutex
	sales       map[string]*sale.Sale
	reserved    map[string]bool
	failCreates int
	alwaysExist bool
	createCalls int
}

func newMemSales(products *memProducts) *memSales {
	return &memSales{
		products: products,
		sales:    make(map[string]*sale.Sale),
		reserved: make(map[string]bool),
	}
}

func (m *memSales) InvoiceNoExists(ctx context.Context, invoiceNo string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.alwaysExist || m.reserved[invoiceNo] {
		return true, nil
	}
	_, ok := m.sales[invoiceNo]
	return ok, nil
}

func (m *memSales) Create(ctx context.Context, s *sale.Sale, decrements []sale.StockDecrement) ([]product.StockChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createCalls++
	if m.failCreates > 0 {
		m.failCreates--
		return nil, sale.ErrDuplicateInvoiceNo
	}

	m.products.mu.Lock()
	defer m.products.mu.Unlock()

	// Revalidação dentro da "transação": ou todas as baixas cabem, ou nada muda
	for _, d := range decrements {
		p, ok := m.products.items[d.ProductID]
		if !ok {
			return nil, product.ErrNotFound
		}
		if p.Quantity < d.Quantity {
			return nil, &sale.InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Requested:   d.Quantity,
				Available:   p.Quantity,
			}
		}
	}

	changes := make([]product.StockChange, 0, len(decrements))
	for _, d := range decrements {
		p := m.products.items[d.ProductID]
		prev := p.Status
		p.Quantity -= d.Quantity
		p.QuantitySold += d.Quantity
		p.Status = product.StatusFor(p.Quantity, p.MinimumQuantity)
		changes = append(changes, product.StockChange{
			ProductID:      p.ID,
			Name:           p.Name,
			NewQuantity:    p.Quantity,
			PreviousStatus: prev,
			NewStatus:      p.Status,
		})
	}

	m.sales[s.InvoiceNo] = s
	return changes, nil
}

type memDiscounts struct {
	discount.Repository
	byCode map[string]*discount.Discount
}

func (m *memDiscounts) FindByCode(ctx context.Context, code string) (*discount.Discount, error) {
	d, ok := m.byCode[code]
	if !ok {
		return nil, discount.ErrNotFound
	}
	return d, nil
}

type memNotifier struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (m *memNotifier) Notify(ctx context.Context, message, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, message)
	return nil
}

func (m *memNotifier) all() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

func newProduct(t *testing.T, name, price string, quantity, minimum int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, "", decimal.RequireFromString(price), quantity, minimum, "cat-1", "user-1")
	require.NoError(t, err)
	return p
}

type saleFixture struct {
	svc       *SaleService
	products  *memProducts
	sales     *memSales
	discounts *memDiscounts
	notifier  *memNotifier
}

func newSaleFixture(products ...*product.Product) *saleFixture {
	memP := newMemProducts(products...)
	memS := newMemSales(memP)
	memD := &memDiscounts{byCode: make(map[string]*discount.Discount)}
	notifier := &memNotifier{}

	return &saleFixture{
		svc:       NewSaleService(memS, memP, memD, notifier, noopLogger{}),
		products:  memP,
		sales:     memS,
		discounts: memD,
		notifier:  notifier,
	}
}

func TestCreateSaleComputesTotalsAndDecrementsStock(t *testing.T) {
	p := newProduct(t, "café", "19.99", 10, 3)
	f := newSaleFixture(p)

	s, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 2}},
		PaymentMethod: "cash",
	}, "cashier-1")
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("39.98").Equal(s.GrossTotal))
	assert.True(t, s.GrossTotal.Equal(s.TotalAmount))
	assert.True(t, s.DiscountAmount.IsZero())
	assert.Equal(t, 2, s.TotalQuantity)
	assert.Equal(t, "cashier-1", s.CashierID)
	assert.Regexp(t, `^INV-\d{8}-[A-Z0-9]{6}$`, s.InvoiceNo)

	require.Len(t, s.Items, 1)
	assert.True(t, decimal.RequireFromString("19.99").Equal(s.Items[0].UnitPrice))

	got := f.products.get(p.ID)
	assert.Equal(t, 8, got.Quantity)
	assert.Equal(t, 2, got.QuantitySold)
	assert.Equal(t, product.StatusAvailable, got.Status)

	// Status não mudou, nenhum alerta
	assert.Empty(t, f.notifier.all())
}

func TestCreateSaleValidation(t *testing.T) {
	p := newProduct(t, "café", "10.00", 10, 3)
	f := newSaleFixture(p)
	ctx := context.Background()

	_, err := f.svc.CreateSale(ctx, CreateSaleInput{PaymentMethod: "cash"}, "cashier-1")
	assert.ErrorIs(t, err, sale.ErrEmptyItems)

	_, err = f.svc.CreateSale(ctx, CreateSaleInput{
		Items: []SaleItemInput{{ProductID: p.ID, Quantity: 1}},
	}, "cashier-1")
	assert.ErrorIs(t, err, sale.ErrEmptyPaymentMethod)

	_, err = f.svc.CreateSale(ctx, CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 0}},
		PaymentMethod: "cash",
	}, "cashier-1")
	assert.ErrorIs(t, err, sale.ErrInvalidQuantity)
}

func TestCreateSaleProductNotFound(t *testing.T) {
	f := newSaleFixture()

	_, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: "nope", Quantity: 1}},
		PaymentMethod: "cash",
	}, "cashier-1")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	p := newProduct(t, "café", "10.00", 10, 3)
	f := newSaleFixture(p)

	_, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 11}},
		PaymentMethod: "cash",
	}, "cashier-1")

	var stockErr *sale.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, p.ID, stockErr.ProductID)
	assert.Equal(t, 11, stockErr.Requested)
	assert.Equal(t, 10, stockErr.Available)

	// Venda rejeitada não deixa rastro
	got := f.products.get(p.ID)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, 0, got.QuantitySold)
	assert.Empty(t, f.sales.sales)
	assert.Empty(t, f.notifier.all())
}

func TestCreateSaleFirstInvalidLineAbortsAll(t *testing.T) {
	p1 := newProduct(t, "café", "10.00", 10, 3)
	p2 := newProduct(t, "leite", "5.00", 1, 0)
	f := newSaleFixture(p1, p2)

	_, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: p1.ID, Quantity: 2},
			{ProductID: p2.ID, Quantity: 5},
		},
		PaymentMethod: "cash",
	}, "cashier-1")

	var stockErr *sale.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, p2.ID, stockErr.ProductID)

	// A linha válida anterior também não foi aplicada
	assert.Equal(t, 10, f.products.get(p1.ID).Quantity)
}

func TestCreateSaleStatusTransitionsEmitAlerts(t *testing.T) {
	p := newProduct(t, "café", "10.00", 10, 3)
	f := newSaleFixture(p)
	ctx := context.Background()

	// 10 -> 2: abaixo do mínimo, um alerta de estoque baixo
	_, err := f.svc.CreateSale(ctx, CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 8}},
		PaymentMethod: "cash",
	}, "cashier-1")
	require.NoError(t, err)

	messages := f.notifier.all()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "estoque baixo")
	assert.Equal(t, product.StatusLow, f.products.get(p.ID).Status)

	// 2 -> 0: esgotado, segundo alerta
	_, err = f.svc.CreateSale(ctx, CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 2}},
		PaymentMethod: "cash",
	}, "cashier-1")
	require.NoError(t, err)

	messages = f.notifier.all()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[1], "sem estoque")
	assert.Equal(t, product.StatusOut, f.products.get(p.ID).Status)
}

func TestCreateSaleAppliesPercentageDiscount(t *testing.T) {
	p := newProduct(t, "café", "19.99", 10, 3)
	f := newSaleFixture(p)

	now := time.Now()
	d, err := discount.NewDiscount("PROMO15", decimal.NewFromInt(15), now.Add(-time.Hour), now.Add(time.Hour), "")
	require.NoError(t, err)
	f.discounts.byCode[d.Code] = d

	s, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 2}},
		PaymentMethod: "cash",
		DiscountCode:  "PROMO15",
	}, "cashier-1")
	require.NoError(t, err)

	// 39.98 * 15% = 5.997, arredondado ao centavo
	assert.True(t, decimal.RequireFromString("39.98").Equal(s.GrossTotal))
	assert.True(t, decimal.RequireFromString("6.00").Equal(s.DiscountAmount), "got %s", s.DiscountAmount)
	assert.True(t, decimal.RequireFromString("33.98").Equal(s.TotalAmount))
	assert.True(t, s.GrossTotal.Sub(s.TotalAmount).Equal(s.DiscountAmount))
	assert.Equal(t, d.ID, s.DiscountID)
}

func TestCreateSaleDiscountOutOfWindow(t *testing.T) {
	p := newProduct(t, "café", "10.00", 10, 3)
	f := newSaleFixture(p)
	ctx := context.Background()

	now := time.Now()
	future, err := discount.NewDiscount("FUTURO", decimal.NewFromInt(10), now.Add(time.Hour), now.Add(2*time.Hour), "")
	require.NoError(t, err)
	past, err := discount.NewDiscount("PASSADO", decimal.NewFromInt(10), now.Add(-2*time.Hour), now.Add(-time.Hour), "")
	require.NoError(t, err)
	f.discounts.byCode[future.Code] = future
	f.discounts.byCode[past.Code] = past

	input := CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 1}},
		PaymentMethod: "cash",
	}

	input.DiscountCode = "FUTURO"
	_, err = f.svc.CreateSale(ctx, input, "cashier-1")
	var notActive *discount.NotActiveError
	require.ErrorAs(t, err, &notActive)
	assert.Equal(t, discount.ReasonNotStarted, notActive.Reason)

	input.DiscountCode = "PASSADO"
	_, err = f.svc.CreateSale(ctx, input, "cashier-1")
	require.ErrorAs(t, err, &notActive)
	assert.Equal(t, discount.ReasonExpired, notActive.Reason)

	input.DiscountCode = "INEXISTENTE"
	_, err = f.svc.CreateSale(ctx, input, "cashier-1")
	assert.ErrorIs(t, err, discount.ErrNotFound)

	// Nenhuma tentativa mexeu no estoque
	assert.Equal(t, 10, f.products.get(p.ID).Quantity)
}

func TestCreateSaleAggregatesRepeatedLines(t *testing.T) {
	p := newProduct(t, "café", "10.00", 10, 3)
	f := newSaleFixture(p)

	s, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items: []SaleItemInput{
			{ProductID: p.ID, Quantity: 2},
			{ProductID: p.ID, Quantity: 3},
		},
		PaymentMethod: "cash",
	}, "cashier-1")
	require.NoError(t, err)

	// Duas linhas na venda, uma única baixa agregada no estoque
	assert.Len(t, s.Items, 2)
	assert.Equal(t, 5, s.TotalQuantity)
	assert.Equal(t, 5, f.products.get(p.ID).Quantity)
}

func TestCreateSaleRetriesOnDuplicateInvoice(t *testing.T) {
	p := newProduct(t, "café", "10.00", 10, 3)
	f := newSaleFixture(p)
	f.sales.failCreates = 1

	s, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 1}},
		PaymentMethod: "cash",
	}, "cashier-1")
	require.NoError(t, err)

	assert.Equal(t, 2, f.sales.createCalls)
	assert.NotEmpty(t, s.InvoiceNo)
	assert.Equal(t, 9, f.products.get(p.ID).Quantity)
}

func TestCreateSaleInvoiceCollisionExhausted(t *testing.T) {
	p := newProduct(t, "café", "10.00", 10, 3)
	f := newSaleFixture(p)
	f.sales.alwaysExist = true

	_, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 1}},
		PaymentMethod: "cash",
	}, "cashier-1")

	assert.ErrorIs(t, err, sale.ErrInvoiceCollision)
	assert.Equal(t, 10, f.products.get(p.ID).Quantity)
}

func TestCreateSaleNotifierFailureDoesNotFailSale(t *testing.T) {
	p := newProduct(t, "café", "10.00", 3, 3)
	f := newSaleFixture(p)
	f.notifier.err = errors.New("indisponível")

	// 3 -> 1: transição para LOW dispara alerta, que falha
	s, err := f.svc.CreateSale(context.Background(), CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 2}},
		PaymentMethod: "cash",
	}, "cashier-1")

	require.NoError(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, 1, f.products.get(p.ID).Quantity)
}

func TestCreateSaleConcurrentOversellPrevented(t *testing.T) {
	p := newProduct(t, "café", "10.00", 5, 0)
	f := newSaleFixture(p)

	input := CreateSaleInput{
		Items:         []SaleItemInput{{ProductID: p.ID, Quantity: 3}},
		PaymentMethod: "cash",
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.CreateSale(context.Background(), input, "cashier-1")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var stockErr *sale.InsufficientStockError
		assert.ErrorAs(t, err, &stockErr)
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 2, f.products.get(p.ID).Quantity)
}

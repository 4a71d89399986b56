package sale

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyItems         = errors.New("venda deve conter ao menos um item")
	ErrInvalidQuantity    = errors.New("quantidade do item deve ser maior que zero")
	ErrEmptyPaymentMethod = errors.New("forma de pagamento não informada")
	ErrInvoiceCollision   = errors.New("não foi possível gerar um número de fatura único")
	ErrDuplicateInvoiceNo = errors.New("número de fatura já existe")
	ErrSaleNotFound       = errors.New("venda não encontrada")
)

// InsufficientStockError indica que um item solicitou mais unidades
// do que o estoque disponível do produto
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para o produto %s: solicitado %d, disponível %d",
		e.ProductName, e.Requested, e.Available)
}

// Item representa uma linha de uma venda. O preço unitário é uma cópia
// congelada do preço do produto no momento da venda.
type Item struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"sale_id"`
	ProductID   string          `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Description string          `json:"description,omitempty"`
}

// Sale representa uma venda concluída. Imutável após a criação.
type Sale struct {
	ID             string          `json:"id"`
	InvoiceNo      string          `json:"invoice_no"`
	CashierID      string          `json:"cashier_id"`
	TotalQuantity  int             `json:"total_quantity"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountID     string          `json:"discount_id,omitempty"`
	PaymentMethod  string          `json:"payment_method"`
	PosNumber      string          `json:"pos_number,omitempty"`
	Note           string          `json:"note,omitempty"`
	Items          []Item          `json:"items"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewSale monta o agregado de venda a partir dos itens já precificados.
// Invariantes: TotalQuantity é a soma das quantidades dos itens e
// TotalAmount = GrossTotal - DiscountAmount.
func NewSale(invoiceNo, cashierID, paymentMethod, posNumber, note string, items []Item, grossTotal, discountAmount decimal.Decimal, discountID string) *Sale {
	totalQuantity := 0
	for _, it := range items {
		totalQuantity += it.Quantity
	}

	s := &Sale{
		ID:             uuid.New().String(),
		InvoiceNo:      invoiceNo,
		CashierID:      cashierID,
		TotalQuantity:  totalQuantity,
		GrossTotal:     grossTotal,
		DiscountAmount: discountAmount,
		TotalAmount:    grossTotal.Sub(discountAmount),
		DiscountID:     discountID,
		PaymentMethod:  paymentMethod,
		PosNumber:      posNumber,
		Note:           note,
		CreatedAt:      time.Now(),
	}

	for i := range items {
		items[i].ID = uuid.New().String()
		items[i].SaleID = s.ID
	}
	s.Items = items

	return s
}

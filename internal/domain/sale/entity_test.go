package sale

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale(t *testing.T) {
	items := []Item{
		{ProductID: "p1", Quantity: 2, UnitPrice: decimal.RequireFromString("19.99"), TotalAmount: decimal.RequireFromString("39.98")},
		{ProductID: "p2", Quantity: 1, UnitPrice: decimal.RequireFromString("5.50"), TotalAmount: decimal.RequireFromString("5.50")},
	}
	gross := decimal.RequireFromString("45.48")
	discount := decimal.RequireFromString("4.55")

	s := NewSale("INV-20260301-ABC123", "user-1", "cash", "pos-2", "", items, gross, discount, "disc-1")

	assert.Equal(t, 3, s.TotalQuantity)
	assert.True(t, gross.Equal(s.GrossTotal))
	assert.True(t, discount.Equal(s.DiscountAmount))
	assert.True(t, decimal.RequireFromString("40.93").Equal(s.TotalAmount))
	assert.True(t, s.GrossTotal.Sub(s.TotalAmount).Equal(s.DiscountAmount))

	require.Len(t, s.Items, 2)
	for _, it := range s.Items {
		assert.NotEmpty(t, it.ID)
		assert.Equal(t, s.ID, it.SaleID)
	}
}

func TestGenerateInvoiceNo(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	invoiceNo := GenerateInvoiceNo(now)
	assert.Regexp(t, regexp.MustCompile(`^INV-20260315-[A-Z0-9]{6}$`), invoiceNo)

	// Sufixo aleatório torna colisões improváveis entre chamadas consecutivas
	other := GenerateInvoiceNo(now)
	assert.NotEqual(t, invoiceNo, other)
}

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{ProductID: "p1", ProductName: "arroz", Requested: 11, Available: 10}
	assert.Contains(t, err.Error(), "arroz")
	assert.Contains(t, err.Error(), "11")
	assert.Contains(t, err.Error(), "10")
}

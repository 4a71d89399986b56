package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name            string
		quantity        int
		minimumQuantity int
		want            Status
	}{
		{"sem estoque", 0, 5, StatusOut},
		{"sem estoque e sem mínimo", 0, 0, StatusOut},
		{"abaixo do mínimo", 3, 5, StatusLow},
		{"um abaixo do mínimo", 4, 5, StatusLow},
		{"exatamente no mínimo", 5, 5, StatusAvailable},
		{"acima do mínimo", 10, 5, StatusAvailable},
		{"mínimo zero com estoque", 1, 0, StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.quantity, tt.minimumQuantity))
		})
	}
}

func TestNewProduct(t *testing.T) {
	price := decimal.RequireFromString("19.99")

	p, err := NewProduct("Café Torrado 500g", "moído", price, 10, 3, "cat-1", "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "café torrado 500g", p.Name)
	assert.Equal(t, "caf-torrado-500g", p.Slug)
	assert.Equal(t, StatusAvailable, p.Status)
	assert.Equal(t, 0, p.QuantitySold)
	assert.Equal(t, "user-1", p.AddedByID)
	assert.True(t, price.Equal(p.Price))
}

func TestNewProductValidation(t *testing.T) {
	price := decimal.NewFromInt(10)

	_, err := NewProduct("", "", price, 1, 0, "cat-1", "user-1")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewProduct("Arroz", "", decimal.NewFromInt(-1), 1, 0, "cat-1", "user-1")
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewProduct("Arroz", "", price, -1, 0, "cat-1", "user-1")
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestProductUpdateRederivesStatus(t *testing.T) {
	p, err := NewProduct("Feijão", "", decimal.NewFromInt(8), 10, 3, "cat-1", "user-1")
	require.NoError(t, err)
	require.Equal(t, StatusAvailable, p.Status)

	err = p.Update("Feijão", "", decimal.NewFromInt(8), 2, 3, "cat-1", "user-2")
	require.NoError(t, err)

	assert.Equal(t, StatusLow, p.Status)
	assert.Equal(t, "user-2", p.UpdatedByID)
}

func TestHasStock(t *testing.T) {
	p, err := NewProduct("Leite", "", decimal.NewFromInt(5), 4, 1, "cat-1", "user-1")
	require.NoError(t, err)

	assert.True(t, p.HasStock(4))
	assert.False(t, p.HasStock(5))
}

package discount

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscountValidation(t *testing.T) {
	now := time.Now()

	_, err := NewDiscount("PROMO10", decimal.NewFromInt(101), now, now.Add(time.Hour), "")
	assert.ErrorIs(t, err, ErrInvalidPercentage)

	_, err = NewDiscount("PROMO10", decimal.NewFromInt(-1), now, now.Add(time.Hour), "")
	assert.ErrorIs(t, err, ErrInvalidPercentage)

	_, err = NewDiscount("PROMO10", decimal.NewFromInt(10), now.Add(time.Hour), now, "")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	d, err := NewDiscount("PROMO10", decimal.NewFromInt(10), now, now.Add(time.Hour), "promoção")
	require.NoError(t, err)
	assert.Equal(t, "PROMO10", d.Code)
	assert.NotEmpty(t, d.ID)
}

func TestActiveAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	d, err := NewDiscount("MARCO", decimal.NewFromInt(15), start, end, "")
	require.NoError(t, err)

	t.Run("antes da vigência", func(t *testing.T) {
		err := d.ActiveAt(start.Add(-time.Minute))
		var notActive *NotActiveError
		require.ErrorAs(t, err, &notActive)
		assert.Equal(t, ReasonNotStarted, notActive.Reason)
		assert.Equal(t, start, notActive.Boundary)
	})

	t.Run("após a vigência", func(t *testing.T) {
		err := d.ActiveAt(end.Add(time.Minute))
		var notActive *NotActiveError
		require.ErrorAs(t, err, &notActive)
		assert.Equal(t, ReasonExpired, notActive.Reason)
		assert.Equal(t, end, notActive.Boundary)
	})

	t.Run("dentro da vigência", func(t *testing.T) {
		assert.NoError(t, d.ActiveAt(start.Add(24*time.Hour)))
	})

	t.Run("limites são inclusivos", func(t *testing.T) {
		assert.NoError(t, d.ActiveAt(start))
		assert.NoError(t, d.ActiveAt(end))
	})
}

func TestDiscountUpdate(t *testing.T) {
	now := time.Now()
	d, err := NewDiscount("PROMO", decimal.NewFromInt(5), now, now.Add(time.Hour), "")
	require.NoError(t, err)

	err = d.Update(decimal.NewFromInt(200), now, now.Add(time.Hour), "")
	assert.ErrorIs(t, err, ErrInvalidPercentage)

	err = d.Update(decimal.NewFromInt(20), now, now.Add(2*time.Hour), "estendida")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(d.Percentage))
	assert.Equal(t, "PROMO", d.Code)
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateCode()
		assert.Len(t, code, 8)
		assert.Regexp(t, "^[A-Z0-9]{8}$", code)
		seen[code] = true
	}
	// Colisões em 50 códigos de 36^8 possibilidades indicariam gerador quebrado
	assert.Greater(t, len(seen), 45)
}

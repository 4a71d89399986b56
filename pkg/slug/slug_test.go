package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Arroz Integral", "arroz-integral"},
		{"  Café Torrado 500g  ", "caf-torrado-500g"},
		{"AÇÚCAR", "acar"},
		{"promo!@#2026", "promo2026"},
		{"ja-com-hifen", "ja-com-hifen"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.in), "entrada: %q", tt.in)
	}
}

package logistics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineValue(t *testing.T) {
	tests := []struct {
		price    string
		quantity int64
		want     string
	}{
		{"10.0", 50, "500"},
		{"0.1", 3, "0.3"},
		{"2.5", 0, "0"},
		{"19.9999", 7, "139.9993"},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			got := LineValue(decimal.RequireFromString(tt.price), tt.quantity)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

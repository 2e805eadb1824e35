package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "500", want: "500.00"},
		{in: "1102.5", want: "1102.50"},
		{in: "12.3456", want: "12.35"},
		{in: "-800", want: "-800.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
	assert.Equal(t, "12.346", FormatWithPrecision(decimal.RequireFromString("12.3456"), 3))
}

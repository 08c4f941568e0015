package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocketfin/pocket_finance_app/internal/core/domain"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aapl", "AAPL"},
		{"  AAPL  ", "AAPL"},
		{" tsla\t", "TSLA"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizeSymbol(tt.in), "input %q", tt.in)
	}
}

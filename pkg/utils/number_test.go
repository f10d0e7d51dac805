package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{name: "Crescimento junho para julho", current: "6494350", previous: "5092300", want: "27.53"},
		{name: "Queda", current: "50", previous: "100", want: "-50"},
		{name: "Sem base de comparação", current: "100", previous: "0", want: "0"},
		{name: "Sem variação", current: "100", previous: "100", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(decimal.RequireFromString(tt.current), decimal.RequireFromString(tt.previous))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestGeneratePrefixedID(t *testing.T) {
	id, err := GeneratePrefixedID("snap")

	require.NoError(t, err)
	assert.Regexp(t, `^snap_[A-Za-z0-9]{8}$`, id)
}

package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "209", FormatWithPrecision(decimal.RequireFromString("209.00"), 0))
	assert.Equal(t, "41.00", FormatWithPrecision(decimal.NewFromInt(41), 2))
}

func TestFormatGrouped(t *testing.T) {
	assert.Equal(t, "50,000", FormatGrouped(decimal.NewFromInt(50000), 0))
	assert.Equal(t, "1,234.5", FormatGrouped(decimal.RequireFromString("1234.5"), 2))
	assert.Equal(t, "600", FormatGrouped(decimal.NewFromInt(600), 2))
}

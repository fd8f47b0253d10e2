package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dlsventas/comisiones-api/internal/domain/stats"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "12,500.00", stats.FormatMoney(dec("12500")))
	assert.Equal(t, "1,234,567.89", stats.FormatMoney(dec("1234567.891")))
	assert.Equal(t, "0.00", stats.FormatMoney(dec("0")))
	assert.Equal(t, "999.90", stats.FormatMoney(dec("999.9")))
}

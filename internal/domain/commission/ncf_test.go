package commission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsventas/comisiones-api/internal/domain/commission"
)

func TestFormatNCF_RellenaConCeros(t *testing.T) {
	assert.Equal(t, "B0100000007", commission.FormatNCF(7))
	assert.Equal(t, "B0100000042", commission.FormatNCF(42))
	assert.Equal(t, "B0100001234", commission.FormatNCF(1234))
}

func TestParseNCFSuffix(t *testing.T) {
	n, err := commission.ParseNCFSuffix("B0100000129")
	require.NoError(t, err)
	assert.Equal(t, 129, n)

	_, err = commission.ParseNCFSuffix("B01000ABCD")
	assert.Error(t, err, "sufijo no numérico debe rechazarse")

	_, err = commission.ParseNCFSuffix("12")
	assert.Error(t, err, "un ncf con menos de cuatro caracteres debe rechazarse")
}

func TestValidNCFSuffixInput(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0042", true},
		{"7", true},
		{"", false},
		{"12345", false},
		{"12a4", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, commission.ValidNCFSuffixInput(c.in), "input %q", c.in)
	}
}

func TestNextNCFSuffix(t *testing.T) {
	assert.Equal(t, 130, commission.NextNCFSuffix(129))
}

package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dlsventas/comisiones-api/internal/domain/stats"
)

func TestParseDateSafe_SoloFechaAlMediodia(t *testing.T) {
	d := stats.ParseDateSafe("2026-03-15")
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, 12, d.Hour(), "las fechas sin hora se anclan al mediodía local")
}

func TestParseDateSafe_Timestamp(t *testing.T) {
	d := stats.ParseDateSafe("2026-03-15T08:30:00Z")
	assert.Equal(t, 15, d.UTC().Day())
	assert.Equal(t, 8, d.UTC().Hour())
}

// Una fecha corrupta nunca lanza error: cae a "ahora" para que un registro
// malo no tumbe la agregación completa.
func TestParseDateSafe_CorruptaCaeAAhora(t *testing.T) {
	before := time.Now()
	for _, s := range []string{"", "no-es-fecha", "2026-13-45", "15/03/2026"} {
		d := stats.ParseDateSafe(s)
		assert.False(t, d.Before(before.Add(-time.Minute)), "input %q debe caer a ahora", s)
	}
}

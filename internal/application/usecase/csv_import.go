package usecase

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/dlsventas/comisiones-api/internal/domain"
)

// ClientCSVRow fila ya limpia de la importación CSV: nombre, teléfono, email.
type ClientCSVRow struct {
	Name  string
	Phone string
	Email string
}

// ParseClientsCSV parsea un CSV de clientes con columnas nombre,teléfono,email.
// Si la primera fila contiene "nombre" se trata como encabezado y se salta.
// Las filas sin nombre cuentan como descartadas. Devuelve ErrInvalidInput si
// el archivo está vacío o no es CSV parseable.
func ParseClientsCSV(data []byte) (rows []ClientCSVRow, skipped int, err error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // filas con menos columnas son válidas
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, domain.ErrInvalidInput
	}
	if len(records) == 0 {
		return nil, 0, domain.ErrInvalidInput
	}

	start := 0
	if strings.Contains(strings.ToLower(records[0][0]), "nombre") {
		start = 1
	}

	for _, rec := range records[start:] {
		row := ClientCSVRow{Name: strings.TrimSpace(field(rec, 0))}
		if row.Name == "" {
			skipped++
			continue
		}
		row.Phone = strings.TrimSpace(field(rec, 1))
		row.Email = strings.TrimSpace(field(rec, 2))
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}

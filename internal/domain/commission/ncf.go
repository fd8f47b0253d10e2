package commission

import (
	"fmt"
	"strconv"
	"strings"
)

// NCFPrefix es el prefijo fijo del comprobante fiscal. El NCF completo es el
// prefijo más un sufijo numérico de 4 dígitos con ceros a la izquierda.
const NCFPrefix = "B010000"

// NCFSuffixDigits es el largo del sufijo numérico.
const NCFSuffixDigits = 4

// MaxNCFSuffix es el mayor sufijo representable con 4 dígitos.
const MaxNCFSuffix = 9999

// FormatNCF arma el NCF completo a partir del sufijo numérico.
func FormatNCF(suffix int) string {
	return fmt.Sprintf("%s%0*d", NCFPrefix, NCFSuffixDigits, suffix)
}

// ParseNCFSuffix extrae el sufijo numérico de un NCF completo.
// Acepta cualquier string cuyos últimos 4 caracteres sean dígitos, igual que
// hace la captura del consecutivo al guardar una factura.
func ParseNCFSuffix(ncf string) (int, error) {
	if len(ncf) < NCFSuffixDigits {
		return 0, fmt.Errorf("ncf %q demasiado corto", ncf)
	}
	n, err := strconv.Atoi(ncf[len(ncf)-NCFSuffixDigits:])
	if err != nil {
		return 0, fmt.Errorf("sufijo de ncf %q no numérico: %w", ncf, err)
	}
	return n, nil
}

// ValidNCFSuffixInput reporta si el texto ingresado puede usarse como sufijo:
// de 1 a 4 dígitos, solo números. El relleno con ceros lo hace FormatNCF.
func ValidNCFSuffixInput(s string) bool {
	if s == "" || len(s) > NCFSuffixDigits {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}

// NextNCFSuffix devuelve el sufijo sugerido: el último persistido más uno.
func NextNCFSuffix(last int) int {
	return last + 1
}

package repository

import "github.com/dlsventas/comisiones-api/internal/domain/entity"

// SettingsRepository define el puerto para la configuración clave/valor.
type SettingsRepository interface {
	// Get devuelve el ajuste o nil si la clave no existe.
	Get(key string) (*entity.Setting, error)
	List() ([]*entity.Setting, error)
	// Upsert crea o actualiza el valor de la clave.
	Upsert(key, value string) error
}

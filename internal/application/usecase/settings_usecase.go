package usecase

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/domain"
	"github.com/dlsventas/comisiones-api/internal/domain/commission"
	"github.com/dlsventas/comisiones-api/internal/domain/entity"
	"github.com/dlsventas/comisiones-api/internal/domain/repository"
)

// Valores por defecto cuando la clave todavía no existe en settings.
var defaultRestPercentage = decimal.NewFromInt(25)

// SettingsUseCase lee y actualiza la configuración global del calculador:
// porcentaje del resto y último número NCF usado.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente más el siguiente NCF sugerido.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	rest, err := uc.RestPercentage()
	if err != nil {
		return nil, err
	}
	last, err := uc.LastNCFNumber()
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		RestPercentage: rest,
		LastNCFNumber:  last,
		SuggestedNCF:   commission.FormatNCF(commission.NextNCFSuffix(last)),
	}, nil
}

// Update aplica los campos presentes del request.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.RestPercentage != nil {
		p := *in.RestPercentage
		if p.IsNegative() || p.GreaterThan(percentMax) {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.repo.Upsert(entity.SettingRestPercentage, p.String()); err != nil {
			return nil, err
		}
	}
	if in.LastNCFNumber != nil {
		n := *in.LastNCFNumber
		if n < 0 || n > commission.MaxNCFSuffix {
			return nil, domain.ErrInvalidNCF
		}
		if err := uc.repo.Upsert(entity.SettingLastNCFNumber, strconv.Itoa(n)); err != nil {
			return nil, err
		}
	}
	return uc.Get()
}

// RestPercentage devuelve el porcentaje del resto vigente (default 25 si no
// hay clave o el valor guardado no parsea).
func (uc *SettingsUseCase) RestPercentage() (decimal.Decimal, error) {
	s, err := uc.repo.Get(entity.SettingRestPercentage)
	if err != nil {
		return decimal.Zero, err
	}
	if s == nil {
		return defaultRestPercentage, nil
	}
	v, err := decimal.NewFromString(s.Value)
	if err != nil {
		return defaultRestPercentage, nil
	}
	return v, nil
}

// LastNCFNumber devuelve el último sufijo NCF usado (0 si no hay clave).
func (uc *SettingsUseCase) LastNCFNumber() (int, error) {
	s, err := uc.repo.Get(entity.SettingLastNCFNumber)
	if err != nil {
		return 0, err
	}
	if s == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(s.Value)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// Seed siembra las claves de configuración que todavía no existen. Se llama
// una vez al arrancar; en una base con datos no toca nada.
func (uc *SettingsUseCase) Seed(restPercentage string, initialSuffix int) error {
	if s, err := uc.repo.Get(entity.SettingRestPercentage); err != nil {
		return err
	} else if s == nil {
		if _, perr := decimal.NewFromString(restPercentage); perr != nil {
			restPercentage = defaultRestPercentage.String()
		}
		if err := uc.repo.Upsert(entity.SettingRestPercentage, restPercentage); err != nil {
			return err
		}
	}
	if s, err := uc.repo.Get(entity.SettingLastNCFNumber); err != nil {
		return err
	} else if s == nil && initialSuffix > 0 && initialSuffix <= commission.MaxNCFSuffix {
		if err := uc.repo.Upsert(entity.SettingLastNCFNumber, strconv.Itoa(initialSuffix)); err != nil {
			return err
		}
	}
	return nil
}

// AdvanceNCF registra el sufijo usado si supera al último guardado.
// Guardar una factura con un sufijo menor (histórica) no retrocede el contador.
func (uc *SettingsUseCase) AdvanceNCF(suffix int) error {
	last, err := uc.LastNCFNumber()
	if err != nil {
		return err
	}
	if suffix <= last {
		return nil
	}
	return uc.repo.Upsert(entity.SettingLastNCFNumber, strconv.Itoa(suffix))
}

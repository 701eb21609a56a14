package usecase

import (
	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

// SettingUseCase lectura y actualización de parámetros de la tienda.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase construye el caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// List lista todos los parámetros.
func (uc *SettingUseCase) List() ([]dto.SettingResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	settings := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		settings = append(settings, *toSettingResponse(s))
	}
	return settings, nil
}

// Update cambia el valor de un parámetro existente y lo devuelve.
func (uc *SettingUseCase) Update(key, value string) (*dto.SettingResponse, error) {
	if key == "" || value == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(key, value); err != nil {
		return nil, err
	}
	setting, err := uc.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingResponse(setting), nil
}

func toSettingResponse(s *entity.Setting) *dto.SettingResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Type:        s.Type,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

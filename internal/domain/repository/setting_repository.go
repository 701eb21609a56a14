package repository

import "github.com/jhoicas/pos-caja-api/internal/domain/entity"

// SettingRepository define el puerto de configuración clave/valor.
type SettingRepository interface {
	GetByKey(key string) (*entity.Setting, error)
	Update(key, value string) error
	List() ([]*entity.Setting, error)
}

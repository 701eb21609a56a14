package repository

import "github.com/jhoicas/pos-caja-api/internal/domain/entity"

// StaffRepository define el puerto de persistencia de empleados.
type StaffRepository interface {
	Create(staff *entity.Staff) error
	GetByID(id int) (*entity.Staff, error)
	Update(staff *entity.Staff) error
	Delete(id int) error
	List() ([]*entity.Staff, error)
}

package usecase

import (
	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// StaffUseCase casos de uso CRUD para empleados. La contraseña se hashea con
// bcrypt antes de persistir y storeId debe referenciar una tienda existente.
type StaffUseCase struct {
	repo      repository.StaffRepository
	storeRepo repository.StoreRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository, storeRepo repository.StoreRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo, storeRepo: storeRepo}
}

func (uc *StaffUseCase) validate(in dto.SaveStaffRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create valida, hashea la contraseña y persiste un empleado nuevo.
func (uc *StaffUseCase) Create(in dto.SaveStaffRequest) (*dto.StaffResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	staff := &entity.Staff{
		Code:         generateCode("STAFF"),
		Name:         in.Name,
		StoreID:      in.StoreID,
		PasswordHash: string(hash),
	}
	if err := uc.repo.Create(staff); err != nil {
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// GetByID obtiene un empleado por ID.
func (uc *StaffUseCase) GetByID(id int) (*dto.StaffResponse, error) {
	staff, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}
	return toStaffResponse(staff), nil
}

// Update valida y reemplaza los campos del empleado. Con contraseña vacía se
// conserva el hash vigente.
func (uc *StaffUseCase) Update(id int, in dto.SaveStaffRequest) (*dto.StaffResponse, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	passwordHash := current.PasswordHash
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}
	staff := &entity.Staff{
		ID:           id,
		Code:         current.Code,
		Name:         in.Name,
		StoreID:      in.StoreID,
		PasswordHash: passwordHash,
	}
	if err := uc.repo.Update(staff); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina un empleado por ID.
func (uc *StaffUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

// List lista todos los empleados.
func (uc *StaffUseCase) List() ([]dto.StaffResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	staff := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		staff = append(staff, *toStaffResponse(s))
	}
	return staff, nil
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		StoreID:   s.StoreID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

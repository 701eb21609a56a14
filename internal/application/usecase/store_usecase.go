package usecase

import (
	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create valida y persiste una tienda nueva. Sin código, se genera uno.
func (uc *StoreUseCase) Create(in dto.SaveStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	code := in.Code
	if code == "" {
		code = generateCode("STORE")
	}
	store := &entity.Store{Code: code, Name: in.Name}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(id int) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store), nil
}

// Update valida y reemplaza los campos de la tienda.
func (uc *StoreUseCase) Update(id int, in dto.SaveStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	code := in.Code
	if code == "" {
		code = current.Code
	}
	store := &entity.Store{ID: id, Code: code, Name: in.Name}
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina una tienda por ID.
func (uc *StoreUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

// List lista todas las tiendas.
func (uc *StoreUseCase) List() ([]dto.StoreResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	stores := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		stores = append(stores, *toStoreResponse(s))
	}
	return stores, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

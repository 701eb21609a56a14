package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos del inventario.
// El stock solo baja por ventas (ver sales.CreateSaleUseCase); aquí se fija
// el valor completo en create/update.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

func validateItem(in dto.SaveItemRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	if in.Price < 0 || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create valida y persiste un artículo nuevo. Sin código, se genera uno.
func (uc *ItemUseCase) Create(in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	code := in.Code
	if code == "" {
		code = generateCode("ITEM")
	}
	item := &entity.Item{
		Code:        code,
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(id int) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// GetByCode obtiene un artículo por su código (lector de código de barras).
func (uc *ItemUseCase) GetByCode(code string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update valida y reemplaza los campos del artículo.
func (uc *ItemUseCase) Update(id int, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	if err := validateItem(in); err != nil {
		return nil, err
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
	item := &entity.Item{
		ID:          id,
		Code:        code,
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		Description: in.Description,
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina un artículo por ID.
func (uc *ItemUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

// List lista todos los artículos.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return items, nil
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		Code:        it.Code,
		Name:        it.Name,
		Price:       it.Price,
		Stock:       it.Stock,
		Description: it.Description,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// generateCode genera un código de negocio corto con prefijo (ej. ITEM-1a2b3c4d).
func generateCode(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

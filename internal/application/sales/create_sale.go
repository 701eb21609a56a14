// Package sales implementa el motor de transacciones de venta: validación,
// reserva de stock artículo por artículo, compensación en caso de falla y
// registro en el libro de ventas.
package sales

import (
	"time"

	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

// CreateSaleUseCase coordina la creación de una venta en dos fases:
//
//	Fase de validación: solo lecturas, sin efectos. Líneas bien formadas,
//	tienda y empleado existentes, cada artículo existente y con stock
//	suficiente según el snapshot leído aquí.
//
//	Fase de commit: decrementa el stock de cada línea en orden de entrada
//	con el check-and-set atómico del repositorio. Si un decremento falla por
//	una mutación concurrente posterior a la validación, se re-incrementan
//	los decrementos ya aplicados y la venta falla completa. El libro de
//	ventas solo ve la venta cuando todos los decrementos quedaron firmes.
type CreateSaleUseCase struct {
	itemRepo  repository.ItemRepository
	storeRepo repository.StoreRepository
	staffRepo repository.StaffRepository
	saleRepo  repository.SaleRepository
}

// NewCreateSaleUseCase construye el coordinador.
func NewCreateSaleUseCase(
	itemRepo repository.ItemRepository,
	storeRepo repository.StoreRepository,
	staffRepo repository.StaffRepository,
	saleRepo repository.SaleRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		itemRepo:  itemRepo,
		storeRepo: storeRepo,
		staffRepo: staffRepo,
		saleRepo:  saleRepo,
	}
}

// validateTotals es el punto único donde se decidiría rechazar un totalPrice
// que no cuadre con la suma de las líneas. Hoy la caja registra los montos
// tal como los envía el cliente (totalPrice y deposit son del ticket físico);
// endurecer la regla es cambiar solo esta función.
func (uc *CreateSaleUseCase) validateTotals(_ dto.CreateSaleRequest) error {
	return nil
}

// Create ejecuta la transacción de venta completa y devuelve la venta persistida.
func (uc *CreateSaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	// ── Fase de validación (sin efectos) ──────────────────────────────────
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.Quantity <= 0 || line.Price < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := uc.validateTotals(in); err != nil {
		return nil, err
	}

	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	staff, err := uc.staffRepo.GetByID(in.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, domain.ErrNotFound
	}

	lines := make([]entity.SaleLineItem, len(in.Items))
	for i, line := range in.Items {
		item, err := uc.itemRepo.GetByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		if line.Quantity > item.Stock {
			return nil, domain.ErrInsufficientStock
		}
		price := line.Price
		if price == 0 {
			// Precio congelado del artículo al momento de la venta.
			price = item.Price
		}
		lines[i] = entity.SaleLineItem{ItemID: line.ItemID, Price: price, Quantity: line.Quantity}
	}

	// ── Fase de commit: decrementos atómicos por artículo, en orden ───────
	applied := make([]entity.SaleLineItem, 0, len(lines))
	rollback := func() {
		// Compensación en orden inverso; el incremento no puede fallar por
		// stock y un artículo borrado en la ventana ya no necesita reverso.
		for i := len(applied) - 1; i >= 0; i-- {
			_ = uc.itemRepo.IncrementStock(applied[i].ItemID, applied[i].Quantity)
		}
	}
	for _, line := range lines {
		if _, err := uc.itemRepo.DecrementStock(line.ItemID, line.Quantity); err != nil {
			rollback()
			return nil, err
		}
		applied = append(applied, line)
	}

	// ── Registro: el libro solo ve la venta con el stock ya firme ─────────
	sale := &entity.Sale{
		StoreID:    in.StoreID,
		StaffID:    in.StaffID,
		TotalPrice: in.TotalPrice,
		Deposit:    in.Deposit,
		SaleAt:     time.Now(),
		Items:      lines,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		rollback()
		return nil, err
	}
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	resp := &dto.SaleResponse{
		ID:         s.ID,
		StoreID:    s.StoreID,
		StaffID:    s.StaffID,
		TotalPrice: s.TotalPrice,
		Deposit:    s.Deposit,
		SaleAt:     s.SaleAt,
		Items:      make([]dto.SaleLineItemResponse, 0, len(s.Items)),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	for _, li := range s.Items {
		resp.Items = append(resp.Items, dto.SaleLineItemResponse{
			ID:       li.ID,
			ItemID:   li.ItemID,
			Price:    li.Price,
			Quantity: li.Quantity,
		})
	}
	return resp
}

package sales

import (
	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/repository"
)

// QueryUseCase lecturas del libro de ventas: detalle, listado y reporte.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(saleRepo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo}
}

// GetByID obtiene una venta con sus líneas embebidas.
func (uc *QueryUseCase) GetByID(id int) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List lista todas las ventas.
func (uc *QueryUseCase) List() ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	sales := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		sales = append(sales, *toSaleResponse(s))
	}
	return sales, nil
}

// Report arma el resumen de ventas: listado, cantidad y monto acumulado.
func (uc *QueryUseCase) Report() (*dto.SalesReportResponse, error) {
	sales, err := uc.List()
	if err != nil {
		return nil, err
	}
	totalAmount := 0
	for _, s := range sales {
		totalAmount += s.TotalPrice
	}
	return &dto.SalesReportResponse{
		Sales:       sales,
		TotalSales:  len(sales),
		TotalAmount: totalAmount,
	}, nil
}

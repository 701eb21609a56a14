package sales_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/application/sales"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type engine struct {
	uc    *sales.CreateSaleUseCase
	items *memory.ItemRepo
	sales *memory.SaleRepo
	store *entity.Store
	staff *entity.Staff
}

// newEngine arma el motor de ventas sobre repositorios en memoria con una
// tienda y un empleado ya registrados.
func newEngine(t *testing.T) *engine {
	t.Helper()
	itemRepo := memory.NewItemRepository()
	storeRepo := memory.NewStoreRepository()
	staffRepo := memory.NewStaffRepository()
	saleRepo := memory.NewSaleRepository()

	store := &entity.Store{Code: "STORE-TEST", Name: "Caja 1"}
	require.NoError(t, storeRepo.Create(store), "la tienda de prueba debe crearse")
	staff := &entity.Staff{Code: "STAFF-TEST", Name: "Cajero", StoreID: store.ID}
	require.NoError(t, staffRepo.Create(staff), "el empleado de prueba debe crearse")

	return &engine{
		uc:    sales.NewCreateSaleUseCase(itemRepo, storeRepo, staffRepo, saleRepo),
		items: itemRepo,
		sales: saleRepo,
		store: store,
		staff: staff,
	}
}

// seedItem registra un artículo con precio y stock dados.
func (e *engine) seedItem(t *testing.T, name string, price, stock int) *entity.Item {
	t.Helper()
	item := &entity.Item{Code: "ITEM-" + name, Name: name, Price: price, Stock: stock}
	require.NoError(t, e.items.Create(item), "el artículo de prueba debe crearse")
	return item
}

// stockOf lee el stock actual del artículo.
func (e *engine) stockOf(t *testing.T, id int) int {
	t.Helper()
	item, err := e.items.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, item, "el artículo debe existir")
	return item.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Camino feliz
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: venta de dos líneas descuenta el stock de cada artículo y registra
// la venta con los montos tal como llegaron.
func TestCreateSale_DosLineas_DescuentaStockYRegistra(t *testing.T) {
	e := newEngine(t)
	a := e.seedItem(t, "cafe", 100, 100)
	b := e.seedItem(t, "pan", 200, 100)

	out, err := e.uc.Create(dto.CreateSaleRequest{
		StoreID:    e.store.ID,
		StaffID:    e.staff.ID,
		TotalPrice: 500, // se guarda tal cual, aunque la suma de líneas sea 400
		Deposit:    1000,
		Items: []dto.SaleLineItemRequest{
			{ItemID: a.ID, Price: 100, Quantity: 2},
			{ItemID: b.ID, Price: 200, Quantity: 1},
		},
	})
	require.NoError(t, err, "la venta válida debe registrarse")
	require.NotNil(t, out)

	assert.Equal(t, 98, e.stockOf(t, a.ID), "el primer artículo debe bajar 2 unidades")
	assert.Equal(t, 99, e.stockOf(t, b.ID), "el segundo artículo debe bajar 1 unidad")

	assert.NotZero(t, out.ID, "la venta debe tener ID asignado")
	assert.Equal(t, 500, out.TotalPrice, "totalPrice se registra como lo envió la caja")
	assert.Equal(t, 1000, out.Deposit)
	require.Len(t, out.Items, 2)
	assert.Equal(t, a.ID, out.Items[0].ItemID, "las líneas conservan el orden de entrada")
	assert.Equal(t, b.ID, out.Items[1].ItemID)
	assert.False(t, out.SaleAt.IsZero(), "la venta debe llevar fecha")

	persisted, err := e.sales.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted, "la venta debe quedar en el libro")
	assert.Len(t, persisted.Items, 2)
}

// Caso 2: línea con precio 0 congela el precio vigente del artículo.
func TestCreateSale_PrecioCero_CongelaPrecioDelArticulo(t *testing.T) {
	e := newEngine(t)
	a := e.seedItem(t, "cafe", 350, 10)

	out, err := e.uc.Create(dto.CreateSaleRequest{
		StoreID: e.store.ID,
		StaffID: e.staff.ID,
		Items:   []dto.SaleLineItemRequest{{ItemID: a.ID, Price: 0, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 350, out.Items[0].Price, "precio 0 debe resolverse al precio del artículo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fase de validación: rechazos sin efectos
// ──────────────────────────────────────────────────────────────────────────────

// Caso 3: venta sin líneas → entrada inválida.
func TestCreateSale_SinLineas_Rechazada(t *testing.T) {
	e := newEngine(t)
	_, err := e.uc.Create(dto.CreateSaleRequest{
		StoreID: e.store.ID,
		StaffID: e.staff.ID,
		Items:   []dto.SaleLineItemRequest{},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "venta vacía debe rechazarse")
}

// Caso 4: cantidad cero o negativa → entrada inválida, sin tocar el stock.
func TestCreateSale_CantidadInvalida_Rechazada(t *testing.T) {
	e := newEngine(t)
	a := e.seedItem(t, "cafe", 100, 50)

	for _, qty := range []int{0, -3} {
		_, err := e.uc.Create(dto.CreateSaleRequest{
			StoreID: e.store.ID,
			StaffID: e.staff.ID,
			Items:   []dto.SaleLineItemRequest{{ItemID: a.ID, Quantity: qty}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, 50, e.stockOf(t, a.ID), "el stock no debe moverse en un rechazo de validación")
}

// Caso 5: tienda o empleado inexistente → 404 de dominio, sin tocar el stock.
func TestCreateSale_TiendaOEmpleadoInexistente_Rechazada(t *testing.T) {
	e := newEngine(t)
	a := e.seedItem(t, "cafe", 100, 50)
	line := []dto.SaleLineItemRequest{{ItemID: a.ID, Quantity: 1}}

	_, err := e.uc.Create(dto.CreateSaleRequest{StoreID: 9999, StaffID: e.staff.ID, Items: line})
	assert.ErrorIs(t, err, domain.ErrNotFound, "tienda inexistente debe rechazarse")

	_, err = e.uc.Create(dto.CreateSaleRequest{StoreID: e.store.ID, StaffID: 9999, Items: line})
	assert.ErrorIs(t, err, domain.ErrNotFound, "empleado inexistente debe rechazarse")

	assert.Equal(t, 50, e.stockOf(t, a.ID))
}

// Caso 6: artículo inexistente en una línea → rechazo sin decrementos.
func TestCreateSale_ArticuloInexistente_Rechazada(t *testing.T) {
	e := newEngine(t)
	a := e.seedItem(t, "cafe", 100, 50)

	_, err := e.uc.Create(dto.CreateSaleRequest{
		StoreID: e.store.ID,
		StaffID: e.staff.ID,
		Items: []dto.SaleLineItemRequest{
			{ItemID: a.ID, Quantity: 1},
			{ItemID: 9999, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 50, e.stockOf(t, a.ID), "la primera línea no debe descontarse si la segunda no valida")
}

// Caso 7: stock insuficiente en la segunda línea → rechazo completo; la
// primera línea conserva su stock y el libro queda vacío.
func TestCreateSale_StockInsuficiente_SinVentaParcial(t *testing.T) {
	e := newEngine(t)
	a := e.seedItem(t, "cafe", 100, 50)
	b := e.seedItem(t, "pan", 200, 1)

	_, err := e.uc.Create(dto.CreateSaleRequest{
		StoreID: e.store.ID,
		StaffID: e.staff.ID,
		Items: []dto.SaleLineItemRequest{
			{ItemID: a.ID, Quantity: 5},
			{ItemID: b.ID, Quantity: 3},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 50, e.stockOf(t, a.ID), "no debe haber venta parcial")
	assert.Equal(t, 1, e.stockOf(t, b.ID))

	ledger, err := e.sales.List()
	require.NoError(t, err)
	assert.Empty(t, ledger, "el libro de ventas no debe registrar la venta fallida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fase de commit: compensación
// ──────────────────────────────────────────────────────────────────────────────

// failingSaleRepo simula una falla al escribir el libro de ventas.
type failingSaleRepo struct{}

func (failingSaleRepo) Create(*entity.Sale) error         { return errors.New("disco lleno") }
func (failingSaleRepo) GetByID(int) (*entity.Sale, error) { return nil, nil }
func (failingSaleRepo) List() ([]*entity.Sale, error)     { return nil, nil }

// Caso 8: si el registro de la venta falla tras los decrementos, el stock de
// todas las líneas se repone.
func TestCreateSale_FallaEnElLibro_ReponeStock(t *testing.T) {
	itemRepo := memory.NewItemRepository()
	storeRepo := memory.NewStoreRepository()
	staffRepo := memory.NewStaffRepository()

	store := &entity.Store{Code: "STORE-TEST", Name: "Caja 1"}
	require.NoError(t, storeRepo.Create(store))
	staff := &entity.Staff{Code: "STAFF-TEST", Name: "Cajero", StoreID: store.ID}
	require.NoError(t, staffRepo.Create(staff))

	a := &entity.Item{Code: "ITEM-cafe", Name: "cafe", Price: 100, Stock: 50}
	require.NoError(t, itemRepo.Create(a))
	b := &entity.Item{Code: "ITEM-pan", Name: "pan", Price: 200, Stock: 30}
	require.NoError(t, itemRepo.Create(b))

	uc := sales.NewCreateSaleUseCase(itemRepo, storeRepo, staffRepo, failingSaleRepo{})
	_, err := uc.Create(dto.CreateSaleRequest{
		StoreID: store.ID,
		StaffID: staff.ID,
		Items: []dto.SaleLineItemRequest{
			{ItemID: a.ID, Quantity: 5},
			{ItemID: b.ID, Quantity: 3},
		},
	})
	require.Error(t, err, "la falla del libro debe propagarse")

	itemA, err := itemRepo.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, itemA.Stock, "el stock del primer artículo debe reponerse")
	itemB, err := itemRepo.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, itemB.Stock, "el stock del segundo artículo debe reponerse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Caso 9: N cajas compitiendo por el mismo artículo nunca venden más unidades
// de las que hay. El check-and-set por artículo garantiza stock >= 0.
func TestCreateSale_VentasConcurrentes_NoSobrevenden(t *testing.T) {
	e := newEngine(t)
	const stock = 30
	const cajas = 50
	a := e.seedItem(t, "cafe", 100, stock)

	var wg sync.WaitGroup
	results := make(chan error, cajas)
	for i := 0; i < cajas; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.uc.Create(dto.CreateSaleRequest{
				StoreID: e.store.ID,
				StaffID: e.staff.ID,
				Items:   []dto.SaleLineItemRequest{{ItemID: a.ID, Quantity: 1}},
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	ok := 0
	for err := range results {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInsufficientStock, "la única falla esperada es stock insuficiente")
	}

	assert.Equal(t, stock, ok, "deben venderse exactamente las unidades disponibles")
	assert.Equal(t, 0, e.stockOf(t, a.ID), "el stock debe terminar en cero, nunca negativo")

	ledger, err := e.sales.List()
	require.NoError(t, err)
	assert.Len(t, ledger, stock, "el libro debe tener una venta por unidad vendida")
}

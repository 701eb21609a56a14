package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/application/usecase"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/infrastructure/memory"
)

func newStaffUC(t *testing.T) (*usecase.StaffUseCase, int) {
	t.Helper()
	storeRepo := memory.NewStoreRepository()
	storeUC := usecase.NewStoreUseCase(storeRepo)
	store, err := storeUC.Create(dto.SaveStoreRequest{Name: "Caja 1"})
	require.NoError(t, err, "la tienda de prueba debe crearse")
	return usecase.NewStaffUseCase(memory.NewStaffRepository(), storeRepo), store.ID
}

// Caso 1: crear empleado con tienda válida; la respuesta nunca expone la contraseña.
func TestStaffCreate_ConTiendaValida(t *testing.T) {
	uc, storeID := newStaffUC(t)
	out, err := uc.Create(dto.SaveStaffRequest{Name: "Ana", StoreID: storeID, Password: "secreta"})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, storeID, out.StoreID)
	assert.NotEmpty(t, out.Code, "el código de empleado se genera solo")
}

// Caso 2: storeId inexistente → entrada inválida (la referencia no resuelve).
func TestStaffCreate_TiendaInexistente_Rechazado(t *testing.T) {
	uc, _ := newStaffUC(t)
	_, err := uc.Create(dto.SaveStaffRequest{Name: "Ana", StoreID: 9999, Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 3: nombre vacío → entrada inválida.
func TestStaffCreate_NombreVacio_Rechazado(t *testing.T) {
	uc, storeID := newStaffUC(t)
	_, err := uc.Create(dto.SaveStaffRequest{Name: "", StoreID: storeID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 4: update con contraseña vacía conserva el hash vigente.
func TestStaffUpdate_SinPassword_ConservaCredencial(t *testing.T) {
	uc, storeID := newStaffUC(t)
	created, err := uc.Create(dto.SaveStaffRequest{Name: "Ana", StoreID: storeID, Password: "secreta"})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.SaveStaffRequest{Name: "Ana María", StoreID: storeID})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

// Caso 5: get y delete de un ID inexistente → no encontrado.
func TestStaffGetDelete_Inexistente(t *testing.T) {
	uc, _ := newStaffUC(t)
	_, err := uc.GetByID(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(42), domain.ErrNotFound)
}

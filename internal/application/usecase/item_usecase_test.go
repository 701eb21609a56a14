package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-caja-api/internal/application/dto"
	"github.com/jhoicas/pos-caja-api/internal/application/usecase"
	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/infrastructure/memory"
)

func newItemUC() *usecase.ItemUseCase {
	return usecase.NewItemUseCase(memory.NewItemRepository())
}

// Caso 1: crear con todos los campos conserva los valores y asigna ID.
func TestItemCreate_CamposCompletos(t *testing.T) {
	uc := newItemUC()
	out, err := uc.Create(dto.SaveItemRequest{
		Name:        "Café molido",
		Price:       4500,
		Stock:       20,
		Code:        "7701234567890",
		Description: "Bolsa 500g",
	})
	require.NoError(t, err, "el artículo válido debe crearse")

	assert.NotZero(t, out.ID)
	assert.Equal(t, "Café molido", out.Name)
	assert.Equal(t, 4500, out.Price)
	assert.Equal(t, 20, out.Stock)
	assert.Equal(t, "7701234567890", out.Code)
	assert.False(t, out.CreatedAt.IsZero(), "debe llevar fecha de creación")
}

// Caso 2: sin código se genera uno con prefijo ITEM-.
func TestItemCreate_SinCodigo_GeneraUno(t *testing.T) {
	uc := newItemUC()
	out, err := uc.Create(dto.SaveItemRequest{Name: "Pan", Price: 300})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Code, "ITEM-"), "el código generado debe llevar prefijo ITEM-")
}

// Caso 3: nombre vacío, precio negativo o stock negativo → entrada inválida.
func TestItemCreate_EntradaInvalida(t *testing.T) {
	uc := newItemUC()
	cases := []dto.SaveItemRequest{
		{Name: "", Price: 100, Stock: 1},
		{Name: "Pan", Price: -100, Stock: 1},
		{Name: "Pan", Price: 100, Stock: -10},
	}
	for _, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Caso 4: código repetido → duplicado.
func TestItemCreate_CodigoRepetido_Duplicado(t *testing.T) {
	uc := newItemUC()
	_, err := uc.Create(dto.SaveItemRequest{Name: "Pan", Price: 300, Code: "PAN-1"})
	require.NoError(t, err)

	_, err = uc.Create(dto.SaveItemRequest{Name: "Otro pan", Price: 350, Code: "PAN-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el código de artículo es único")
}

// Caso 5: GetByID y GetByCode de un artículo inexistente → no encontrado.
func TestItemGet_Inexistente(t *testing.T) {
	uc := newItemUC()
	_, err := uc.GetByID(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByCode("NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 6: update reemplaza los campos y conserva la fecha de creación.
func TestItemUpdate_ReemplazaCampos(t *testing.T) {
	uc := newItemUC()
	created, err := uc.Create(dto.SaveItemRequest{Name: "Pan", Price: 300, Stock: 5, Code: "PAN-1"})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.SaveItemRequest{Name: "Pan integral", Price: 400, Stock: 8, Code: "PAN-1"})
	require.NoError(t, err)
	assert.Equal(t, "Pan integral", updated.Name)
	assert.Equal(t, 400, updated.Price)
	assert.Equal(t, 8, updated.Stock)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "la fecha de creación no cambia en update")
}

// Caso 7: update de un ID inexistente → no encontrado.
func TestItemUpdate_Inexistente(t *testing.T) {
	uc := newItemUC()
	_, err := uc.Update(42, dto.SaveItemRequest{Name: "Pan", Price: 300})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 8: delete elimina y la búsqueda posterior falla.
func TestItemDelete(t *testing.T) {
	uc := newItemUC()
	created, err := uc.Create(dto.SaveItemRequest{Name: "Pan", Price: 300})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound, "borrar dos veces debe fallar")
}

// Caso 9: list devuelve los artículos ordenados por ID.
func TestItemList_OrdenadaPorID(t *testing.T) {
	uc := newItemUC()
	for _, name := range []string{"a", "b", "c"} {
		_, err := uc.Create(dto.SaveItemRequest{Name: name, Price: 100})
		require.NoError(t, err)
	}
	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].ID < list[1].ID && list[1].ID < list[2].ID)
}

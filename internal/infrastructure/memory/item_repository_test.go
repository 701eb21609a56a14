package memory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-caja-api/internal/domain"
	"github.com/jhoicas/pos-caja-api/internal/domain/entity"
	"github.com/jhoicas/pos-caja-api/internal/infrastructure/memory"
)

// Caso 1: DecrementStock es un check-and-set: nunca deja stock negativo.
func TestItemRepo_DecrementStock(t *testing.T) {
	repo := memory.NewItemRepository()
	item := &entity.Item{Code: "A", Name: "cafe", Price: 100, Stock: 5}
	require.NoError(t, repo.Create(item))

	out, err := repo.DecrementStock(item.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Stock)

	_, err = repo.DecrementStock(item.ID, 3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "descontar más del stock debe fallar")

	current, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, current.Stock, "la falla no debe modificar el stock")

	_, err = repo.DecrementStock(9999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 2: IncrementStock repone unidades (compensación).
func TestItemRepo_IncrementStock(t *testing.T) {
	repo := memory.NewItemRepository()
	item := &entity.Item{Code: "A", Name: "cafe", Price: 100, Stock: 5}
	require.NoError(t, repo.Create(item))

	_, err := repo.DecrementStock(item.ID, 5)
	require.NoError(t, err)
	require.NoError(t, repo.IncrementStock(item.ID, 5))

	current, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, current.Stock)

	assert.ErrorIs(t, repo.IncrementStock(9999, 1), domain.ErrNotFound)
}

// Caso 3: decrementos concurrentes sobre el mismo artículo venden exactamente
// el stock disponible.
func TestItemRepo_DecrementStock_Concurrente(t *testing.T) {
	repo := memory.NewItemRepository()
	const stock = 100
	item := &entity.Item{Code: "A", Name: "cafe", Price: 100, Stock: stock}
	require.NoError(t, repo.Create(item))

	var wg sync.WaitGroup
	var ok int64
	var mu sync.Mutex
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.DecrementStock(item.ID, 1); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, stock, ok, "deben aplicarse exactamente stock decrementos")
	current, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Stock)
}

// Caso 4: los getters devuelven copias; mutar la copia no toca el repo.
func TestItemRepo_DevuelveCopias(t *testing.T) {
	repo := memory.NewItemRepository()
	item := &entity.Item{Code: "A", Name: "cafe", Price: 100, Stock: 5}
	require.NoError(t, repo.Create(item))

	got, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	got.Stock = 0

	again, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, again.Stock, "el repo no debe ver mutaciones externas")
}

// Caso 5: un artículo ausente se reporta como (nil, nil); el 404 lo decide el caso de uso.
func TestItemRepo_AusenteEsNilNil(t *testing.T) {
	repo := memory.NewItemRepository()
	got, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByCode("NO")
	require.NoError(t, err)
	assert.Nil(t, got)
}

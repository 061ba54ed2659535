package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yggdrasil/internal/application/dto"
	"yggdrasil/internal/application/usecase"
	"yggdrasil/internal/domain"
	"yggdrasil/internal/testutil"
)

func newCompanyUC() (*usecase.CompanyUseCase, *testutil.MemCompanyRepo) {
	repo := &testutil.MemCompanyRepo{}
	return usecase.NewCompanyUseCase(repo), repo
}

func TestCompanyCreate(t *testing.T) {
	uc, _ := newCompanyUC()

	out, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "1234567890"})
	require.NoError(t, err)

	assert.Len(t, out.ID, 24)
	assert.Equal(t, "Sony S/A", out.Name)
	assert.Equal(t, "1234567890", out.Document)
	assert.False(t, out.Deleted)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Nil(t, out.UpdatedAt, "updated_at debe ser null hasta la primera mutación")
}

func TestCompanyCreate_IdsDistintos(t *testing.T) {
	uc, _ := newCompanyUC()

	a, err := uc.Create(dto.CreateCompanyRequest{Name: "Empresa A", Document: "100"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateCompanyRequest{Name: "Empresa B", Document: "200"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCompanyCreate_Duplicados(t *testing.T) {
	uc, _ := newCompanyUC()
	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "1234567890"})
	require.NoError(t, err)

	t.Run("nombre duplicado", func(t *testing.T) {
		_, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "999"})
		assert.ErrorIs(t, err, domain.ErrDuplicateData)
	})

	t.Run("documento duplicado", func(t *testing.T) {
		_, err := uc.Create(dto.CreateCompanyRequest{Name: "Otra", Document: "1234567890"})
		assert.ErrorIs(t, err, domain.ErrDuplicateData)
	})

	// El orden de validación es nombre y luego documento: si ambos chocan,
	// el error reporta el nombre.
	t.Run("gana el primer chequeo", func(t *testing.T) {
		_, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "1234567890"})
		require.ErrorIs(t, err, domain.ErrDuplicateData)
		assert.Contains(t, err.Error(), "nombre")
	})
}

// Una empresa borrada lógicamente sigue bloqueando su nombre y documento.
func TestCompanyCreate_DuplicadoContraBorrada(t *testing.T) {
	uc, _ := newCompanyUC()
	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "1234567890"})
	require.NoError(t, err)
	require.NoError(t, uc.Remove(created.ID))

	_, err = uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "555"})
	assert.ErrorIs(t, err, domain.ErrDuplicateData)
}

func TestCompanyGetByID(t *testing.T) {
	uc, _ := newCompanyUC()
	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "1234567890"})
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)

	t.Run("id inexistente", func(t *testing.T) {
		_, err := uc.GetByID("tz4a98xxat96iws9zmbrgj3a")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("id malformado", func(t *testing.T) {
		_, err := uc.GetByID("99")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	// Una empresa borrada sigue siendo consultable por id.
	t.Run("borrada", func(t *testing.T) {
		require.NoError(t, uc.Remove(created.ID))
		out, err := uc.GetByID(created.ID)
		require.NoError(t, err)
		assert.True(t, out.Deleted)
	})
}

func TestCompanyUpdate(t *testing.T) {
	uc, _ := newCompanyUC()
	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "1234567890"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateCompanyRequest{Name: "Microsoft S/A", Document: "756348694"})
	require.NoError(t, err)

	assert.Equal(t, "Microsoft S/A", out.Name)
	assert.Equal(t, "756348694", out.Document)
	require.NotNil(t, out.UpdatedAt)
	assert.False(t, out.UpdatedAt.Before(out.CreatedAt), "updated_at debe ser >= created_at")
}

// Conservar el nombre o documento propio no es un duplicado.
func TestCompanyUpdate_MismosDatos(t *testing.T) {
	uc, _ := newCompanyUC()
	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "1234567890"})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateCompanyRequest{Name: "Sony S/A", Document: "1234567890"})
	assert.NoError(t, err)
}

func TestCompanyUpdate_DuplicadoContraOtra(t *testing.T) {
	uc, _ := newCompanyUC()
	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "100"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateCompanyRequest{Name: "Microsoft S/A", Document: "200"})
	require.NoError(t, err)

	_, err = uc.Update(b.ID, dto.UpdateCompanyRequest{Name: "Sony S/A", Document: "200"})
	assert.ErrorIs(t, err, domain.ErrDuplicateData)
}

// La existencia se verifica al final: un update sobre un id desconocido con
// datos duplicados reporta el duplicado, no el NotFound (comportamiento
// histórico reproducido a propósito).
func TestCompanyUpdate_OrdenDeValidacion(t *testing.T) {
	uc, _ := newCompanyUC()
	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "100"})
	require.NoError(t, err)

	_, err = uc.Update("tz4a98xxat96iws9zmbrgj3a", dto.UpdateCompanyRequest{Name: "Sony S/A", Document: "999"})
	assert.ErrorIs(t, err, domain.ErrDuplicateData)

	_, err = uc.Update("tz4a98xxat96iws9zmbrgj3a", dto.UpdateCompanyRequest{Name: "Libre", Document: "999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyRemove(t *testing.T) {
	uc, repo := newCompanyUC()
	created, err := uc.Create(dto.CreateCompanyRequest{Name: "Sony S/A", Document: "100"})
	require.NoError(t, err)

	require.NoError(t, uc.Remove(created.ID))

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "el borrado es lógico: la fila permanece")
	assert.True(t, stored.Deleted)
	assert.NotNil(t, stored.UpdatedAt)

	t.Run("segundo remove falla", func(t *testing.T) {
		err := uc.Remove(created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("id desconocido", func(t *testing.T) {
		err := uc.Remove("tz4a98xxat96iws9zmbrgj3a")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCompanyList_ExcluyeBorradas(t *testing.T) {
	uc, _ := newCompanyUC()
	a, err := uc.Create(dto.CreateCompanyRequest{Name: "Activa", Document: "100"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateCompanyRequest{Name: "Borrada", Document: "200"})
	require.NoError(t, err)
	require.NoError(t, uc.Remove(b.ID))

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
}

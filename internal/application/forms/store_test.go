package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-forms/internal/application/forms"
	"github.com/jhoicas/asset-forms/internal/domain"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestRowStore cubre los comandos de edición de la sesión: alta de filas en
// blanco con ID estable, baja tolerante, mutación por ID y el reemplazo masivo
// todo-o-nada de la importación. El orden de inserción es parte del contrato:
// es el orden en el que las filas terminan impresas.
// ──────────────────────────────────────────────────────────────────────────────

func validReceiptRow(code, desc string, qty int) entity.Row {
	r := entity.NewRow(entity.VariantReceipt)
	r.StoreCode = code
	r.Description = desc
	r.Qty = qty
	return r
}

func TestRowStore_AddRemoveUpdate(t *testing.T) {
	s := forms.NewRowStore(entity.VariantReceipt)

	id1 := s.AddRow()
	id2 := s.AddRow()
	require.Equal(t, 2, s.Len())

	err := s.Update(id2, func(r *entity.Row) {
		r.StoreCode = "SC-2"
		r.Description = "Monitor"
		r.Qty = 1
	})
	require.NoError(t, err)

	s.RemoveRow(id1)
	assert.Equal(t, 1, s.Len())

	// Quitar dos veces la misma fila no es un error (doble clic).
	s.RemoveRow(id1)
	assert.Equal(t, 1, s.Len())

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, id2, snap[0].ID)
	assert.Equal(t, "Monitor", snap[0].Description)
}

func TestRowStore_UpdateFilaInexistente(t *testing.T) {
	s := forms.NewRowStore(entity.VariantReceipt)

	err := s.Update(entity.NewRowID(), func(r *entity.Row) { r.Qty = 5 })

	assert.ErrorIs(t, err, domain.ErrRowNotFound)
}

func TestRowStore_UpdateNoMutaIdentidad(t *testing.T) {
	s := forms.NewRowStore(entity.VariantReceipt)
	id := s.AddRow()

	err := s.Update(id, func(r *entity.Row) {
		r.ID = entity.NewRowID()
		r.Variant = entity.VariantTransfer
	})
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, id, snap[0].ID, "la identidad no se muta desde la GUI")
	assert.Equal(t, entity.VariantReceipt, snap[0].Variant)
}

func TestRowStore_ReplaceAllPreservaOrden(t *testing.T) {
	s := forms.NewRowStore(entity.VariantReceipt)
	s.AddRow() // contenido previo que debe descartarse

	err := s.ReplaceAll([]entity.Row{
		validReceiptRow("SC-1", "Laptop", 1),
		validReceiptRow("SC-2", "Mouse", 2),
		validReceiptRow("SC-3", "Teclado", 1),
	})
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, []string{"Laptop", "Mouse", "Teclado"},
		[]string{snap[0].Description, snap[1].Description, snap[2].Description})
}

func TestRowStore_ReplaceAllEsTodoONada(t *testing.T) {
	s := forms.NewRowStore(entity.VariantReceipt)
	require.NoError(t, s.ReplaceAll([]entity.Row{validReceiptRow("SC-1", "Laptop", 1)}))

	invalid := validReceiptRow("SC-2", "Monitor", 1)
	invalid.Qty = 0 // viola el invariante de cantidad positiva

	err := s.ReplaceAll([]entity.Row{
		validReceiptRow("SC-3", "Mouse", 2),
		invalid,
	})

	require.Error(t, err)
	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)

	// El almacén conserva su último estado válido.
	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "Laptop", snap[0].Description)
}

func TestRowStore_SnapshotEsCopia(t *testing.T) {
	s := forms.NewRowStore(entity.VariantReceipt)
	require.NoError(t, s.ReplaceAll([]entity.Row{validReceiptRow("SC-1", "Laptop", 1)}))

	snap := s.Snapshot()
	snap[0].Description = "mutado"

	assert.Equal(t, "Laptop", s.Snapshot()[0].Description, "mutar el snapshot no toca el almacén")
}

package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-forms/internal/application/forms"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestRowsEditor verifica la ligadura entre widgets y RowStore con la app de
// prueba headless de Fyne: las entradas escriben en su fila vía el RowID
// estable y reload/clear mantienen la vista y el almacén sincronizados.
// ──────────────────────────────────────────────────────────────────────────────

func validReceiptRow(code, desc string, qty int) entity.Row {
	r := entity.NewRow(entity.VariantReceipt)
	r.StoreCode = code
	r.Description = desc
	r.Qty = qty
	return r
}

func TestRowsEditor_ReloadReflejaElAlmacen(t *testing.T) {
	test.NewApp()
	store := forms.NewRowStore(entity.VariantReceipt)
	e := newRowsEditor(store)

	require.NoError(t, store.ReplaceAll([]entity.Row{
		validReceiptRow("SC-1", "Laptop", 1),
		validReceiptRow("SC-2", "Mouse", 2),
	}))
	e.reload()

	assert.Len(t, e.box.Objects, 2)

	e.clear()
	assert.Zero(t, store.Len())
	assert.Empty(t, e.box.Objects)
}

func TestRowsEditor_EntradaEscribeEnSuFila(t *testing.T) {
	test.NewApp()
	store := forms.NewRowStore(entity.VariantReceipt)
	e := newRowsEditor(store)

	id := store.AddRow()
	line := e.rowWidget(entity.Row{ID: id, Variant: entity.VariantReceipt})

	grid, ok := line.(*fyne.Container)
	require.True(t, ok)
	storeCode, ok := grid.Objects[0].(*widget.Entry)
	require.True(t, ok)

	storeCode.SetText("SC-9")

	snap := store.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "SC-9", snap[0].StoreCode)
}

func TestParseQty(t *testing.T) {
	assert.Equal(t, 3, parseQty("3"))
	assert.Equal(t, 0, parseQty("dos"), "lo no numérico queda en cero y lo rechaza la validación")
	assert.Equal(t, 0, parseQty("-1"))
}

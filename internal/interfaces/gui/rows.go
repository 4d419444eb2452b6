package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jhoicas/asset-forms/internal/application/forms"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
)

// rowsEditor lista editable de filas ligada a un RowStore. Cada widget de
// entrada escribe directamente en su fila vía Update usando el RowID estable,
// así el re-ordenamiento interno del slice nunca desincroniza la vista.
type rowsEditor struct {
	store *forms.RowStore
	box   *fyne.Container
}

func newRowsEditor(store *forms.RowStore) *rowsEditor {
	e := &rowsEditor{store: store, box: container.NewVBox()}
	return e
}

// canvas devuelve el bloque completo: encabezados de columna, filas
// desplazables y el botón de agregar.
func (e *rowsEditor) canvas() fyne.CanvasObject {
	add := widget.NewButtonWithIcon("Add Row", theme.ContentAddIcon(), func() {
		id := e.store.AddRow()
		e.box.Add(e.rowWidget(entity.Row{ID: id, Variant: e.store.Variant()}))
	})

	scroll := container.NewVScroll(e.box)
	scroll.SetMinSize(fyne.NewSize(0, 260))

	return container.NewBorder(e.captionRow(), add, nil, nil, scroll)
}

// reload reconstruye los widgets desde el estado actual del almacén, por
// ejemplo después de una importación masiva.
func (e *rowsEditor) reload() {
	e.box.RemoveAll()
	for _, r := range e.store.Snapshot() {
		e.box.Add(e.rowWidget(r))
	}
	e.box.Refresh()
}

// clear vacía el almacén y la vista.
func (e *rowsEditor) clear() {
	_ = e.store.ReplaceAll(nil)
	e.reload()
}

func (e *rowsEditor) captionRow() fyne.CanvasObject {
	var captions []string
	if e.store.Variant() == entity.VariantReceipt {
		captions = []string{"Store Code", "Item Description", "Qty.", "Purchase Date / LPO", ""}
	} else {
		captions = []string{"Store Code", "Asset Name", "Description", "Old Asset No.", ""}
	}
	objs := make([]fyne.CanvasObject, 0, len(captions))
	for _, c := range captions {
		objs = append(objs, widget.NewLabelWithStyle(c, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	return container.NewGridWithColumns(len(captions), objs...)
}

// rowWidget una línea de entradas ligadas a la fila identificada.
func (e *rowsEditor) rowWidget(r entity.Row) fyne.CanvasObject {
	id := r.ID

	bind := func(initial string, set func(row *entity.Row, v string)) *widget.Entry {
		entry := widget.NewEntry()
		entry.SetText(initial)
		entry.OnChanged = func(v string) {
			_ = e.store.Update(id, func(row *entity.Row) { set(row, v) })
		}
		return entry
	}

	var remove *widget.Button
	var line fyne.CanvasObject

	remove = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		e.store.RemoveRow(id)
		e.box.Remove(line)
		e.box.Refresh()
	})

	var cells []fyne.CanvasObject
	if e.store.Variant() == entity.VariantReceipt {
		qty := ""
		if r.Qty > 0 {
			qty = strconv.Itoa(r.Qty)
		}
		cells = []fyne.CanvasObject{
			bind(r.StoreCode, func(row *entity.Row, v string) { row.StoreCode = v }),
			bind(r.Description, func(row *entity.Row, v string) { row.Description = v }),
			bind(qty, func(row *entity.Row, v string) { row.Qty = parseQty(v) }),
			bind(r.PurchaseDate, func(row *entity.Row, v string) { row.PurchaseDate = v }),
			remove,
		}
	} else {
		cells = []fyne.CanvasObject{
			bind(r.StoreCode, func(row *entity.Row, v string) { row.StoreCode = v }),
			bind(r.AssetName, func(row *entity.Row, v string) { row.AssetName = v }),
			bind(r.Description, func(row *entity.Row, v string) { row.Description = v }),
			bind(r.OldAssetNo, func(row *entity.Row, v string) { row.OldAssetNo = v }),
			remove,
		}
	}

	line = container.NewGridWithColumns(len(cells), cells...)
	return line
}

// parseQty las cantidades no numéricas quedan en cero y las rechaza la
// validación al generar, con un mensaje claro en lugar de un silencio.
func parseQty(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

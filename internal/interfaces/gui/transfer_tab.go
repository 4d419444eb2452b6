package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jhoicas/asset-forms/internal/application/forms"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
	"github.com/jhoicas/asset-forms/pkg/logger"
)

// newTransferTab pestaña del Asset Transfer Form: par de custodios
// origen/destino y la lista de activos transferidos.
func newTransferTab(w fyne.Window, ctrl *forms.Controller, samplesDir string, log *logger.Logger) fyne.CanvasObject {
	fromName := widget.NewEntry()
	fromEmpID := widget.NewEntry()
	fromDepartment := widget.NewEntry()

	toName := widget.NewEntry()
	toEmpID := widget.NewEntry()
	toDepartment := widget.NewEntry()

	editor := newRowsEditor(ctrl.Store())

	from := widget.NewForm(
		widget.NewFormItem("Custodian Name", fromName),
		widget.NewFormItem("Emp. ID", fromEmpID),
		widget.NewFormItem("Department", fromDepartment),
	)
	to := widget.NewForm(
		widget.NewFormItem("Custodian Name", toName),
		widget.NewFormItem("Emp. ID", toEmpID),
		widget.NewFormItem("Department", toDepartment),
	)

	pair := container.NewGridWithColumns(2,
		container.NewVBox(
			widget.NewLabelWithStyle("Transferred From", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			from,
		),
		container.NewVBox(
			widget.NewLabelWithStyle("Transferred To", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			to,
		),
	)

	header := func() entity.FormHeader {
		return entity.TransferHeader{
			FromName:       fromName.Text,
			FromEmpID:      fromEmpID.Text,
			FromDepartment: fromDepartment.Text,
			ToName:         toName.Text,
			ToEmpID:        toEmpID.Text,
			ToDepartment:   toDepartment.Text,
		}
	}

	clearAll := func() {
		for _, e := range []*widget.Entry{fromName, fromEmpID, fromDepartment, toName, toEmpID, toDepartment} {
			e.SetText("")
		}
		editor.clear()
	}

	actions := container.NewHBox(
		importButton(w, ctrl, editor, samplesDir, log),
		widget.NewButtonWithIcon("Clear Form", theme.ContentClearIcon(), clearAll),
		generateButton(w, ctrl, header, log),
	)

	content := container.NewVBox(
		pair,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Assets", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		editor.canvas(),
		actions,
	)
	return container.NewVScroll(content)
}

// importButton abre el diálogo de archivos filtrado a .xlsx y carga la
// planilla en el almacén; el contenido previo solo se reemplaza si la
// importación completa es válida.
func importButton(w fyne.Window, ctrl *forms.Controller, editor *rowsEditor, samplesDir string, log *logger.Logger) *widget.Button {
	return widget.NewButtonWithIcon("Import from Excel...", theme.FolderOpenIcon(), func() {
		fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if r == nil {
				return // cancelado
			}
			path := r.URI().Path()
			_ = r.Close()

			n, err := ctrl.ImportFromFile(path)
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			editor.reload()
			dialog.ShowInformation("Import complete", fmt.Sprintf("%d row(s) loaded.", n), w)
		}, w)

		fd.SetFilter(fynestorage.NewExtensionFileFilter([]string{".xlsx"}))
		if samplesDir != "" {
			if lister, err := fynestorage.ListerForURI(fynestorage.NewFileURI(samplesDir)); err == nil {
				fd.SetLocation(lister)
			}
		}
		fd.Show()
	})
}

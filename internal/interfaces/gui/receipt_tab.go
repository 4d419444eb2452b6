package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jhoicas/asset-forms/internal/application/forms"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
	"github.com/jhoicas/asset-forms/internal/infrastructure/pdf"
	"github.com/jhoicas/asset-forms/pkg/logger"
)

// newReceiptTab pestaña del Acknowledgment of Receipt: datos del custodio,
// ubicación, tipo de dispositivo y la lista de ítems.
func newReceiptTab(w fyne.Window, ctrl *forms.Controller, samplesDir string, log *logger.Logger) fyne.CanvasObject {
	name := widget.NewEntry()
	empID := widget.NewEntry()
	department := widget.NewEntry()

	buildingOther := widget.NewEntry()
	buildingOther.Disable()
	building := widget.NewSelect(pdf.BuildingOptions, func(v string) {
		if v == "Others" {
			buildingOther.Enable()
		} else {
			buildingOther.SetText("")
			buildingOther.Disable()
		}
	})

	floorOther := widget.NewEntry()
	floorOther.Disable()
	floor := widget.NewSelect(pdf.FloorOptions, func(v string) {
		if v == "Others" {
			floorOther.Enable()
		} else {
			floorOther.SetText("")
			floorOther.Disable()
		}
	})

	section := widget.NewSelect(pdf.SectionOptions, nil)

	device := widget.NewRadioGroup(pdf.DeviceOptions, nil)
	device.Horizontal = true
	device.SetSelected("Office")

	editor := newRowsEditor(ctrl.Store())

	custodian := widget.NewForm(
		widget.NewFormItem("Custodian Name", name),
		widget.NewFormItem("Emp. ID", empID),
		widget.NewFormItem("College/Department", department),
	)

	location := container.NewVBox(
		widget.NewLabelWithStyle("Location", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(4,
			widget.NewLabel("Building"), building,
			widget.NewLabel("Others"), buildingOther,
		),
		container.NewGridWithColumns(4,
			widget.NewLabel("Floor"), floor,
			widget.NewLabel("Others"), floorOther,
		),
		container.NewGridWithColumns(4,
			widget.NewLabel("Section"), section,
			widget.NewLabel(""), widget.NewLabel(""),
		),
		container.NewHBox(widget.NewLabel("Device Type:"), device),
	)

	header := func() entity.ReceiptHeader {
		return entity.ReceiptHeader{
			CustodianName: name.Text,
			EmpID:         empID.Text,
			Department:    department.Text,
			Building:      building.Selected,
			BuildingOther: buildingOther.Text,
			Floor:         floor.Selected,
			FloorOther:    floorOther.Text,
			Section:       section.Selected,
			DeviceType:    device.Selected,
		}
	}

	clearAll := func() {
		name.SetText("")
		empID.SetText("")
		department.SetText("")
		building.ClearSelected()
		buildingOther.SetText("")
		floor.ClearSelected()
		floorOther.SetText("")
		section.ClearSelected()
		device.SetSelected("Office")
		editor.clear()
	}

	actions := container.NewHBox(
		importButton(w, ctrl, editor, samplesDir, log),
		widget.NewButtonWithIcon("Clear Form", theme.ContentClearIcon(), clearAll),
		generateButton(w, ctrl, func() entity.FormHeader { return header() }, log),
	)

	content := container.NewVBox(
		custodian,
		widget.NewSeparator(),
		location,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Items", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		editor.canvas(),
		actions,
	)
	return container.NewVScroll(content)
}

// generateButton dispara el pipeline de generación y muestra el resultado.
// El estado del formulario no se toca: ante un error el usuario corrige y
// reintenta.
func generateButton(w fyne.Window, ctrl *forms.Controller, header func() entity.FormHeader, log *logger.Logger) *widget.Button {
	return widget.NewButtonWithIcon("Generate PDF", theme.DocumentCreateIcon(), func() {
		doc, err := ctrl.Generate(header())
		if err != nil {
			log.Warn().Err(err).Msg("generación rechazada")
			dialog.ShowError(err, w)
			return
		}
		dialog.ShowInformation("Document generated", "Saved as:\n"+doc.Path, w)
	})
}

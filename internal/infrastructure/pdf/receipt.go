package pdf

import (
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/asset-forms/internal/domain"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
)

// Opciones de ubicación y tipo de dispositivo tal como aparecen impresas en
// el formulario. La GUI ofrece las mismas listas.
var (
	BuildingOptions = []string{"SZH", "J1", "J2", "Student Hub", "Hostel", "Others"}
	FloorOptions    = []string{"Ground", "1st", "2nd", "3rd", "Others"}
	SectionOptions  = []string{"Male", "Female"}
	DeviceOptions   = []string{"Office", "Lab"}
)

const (
	receiptDeclaration = "I confirm that this device(s) is a property of the University and is to be " +
		"returned back to the Main Store after usage. This device(s) can't be shifted to " +
		"any other user/location without a written approval from the Store."
	receiptResponsibility = "I understand that I will be responsible for any misuse or damages that may occur. " +
		"I confirm that this device(s) will be used for work purpose only."
)

// receiptColumns columnas de la tabla de ítems (anchos en unidades de la
// grilla de 12 de Maroto).
var receiptColumns = []tableColumn{
	{title: "No.", size: 1, align: align.Center, value: numberCell},
	{title: "Store Code", size: 2, align: align.Center, value: func(r entity.Row, _ int) string { return r.StoreCode }},
	{title: "Item Description", size: 5, align: align.Left, value: func(r entity.Row, _ int) string { return r.Description }},
	{title: "Qty.", size: 1, align: align.Right, value: qtyCell},
	{title: "Purchase Date / LPO", size: 3, align: align.Center, value: func(r entity.Row, _ int) string { return r.PurchaseDate }},
}

// ReceiptRenderer genera el PDF del Acknowledgment of Receipt.
type ReceiptRenderer struct {
	layout Layout
	now    func() time.Time
}

// NewReceiptRenderer crea el generador con las constantes visuales dadas.
func NewReceiptRenderer(layout Layout) *ReceiptRenderer {
	return &ReceiptRenderer{layout: layout, now: time.Now}
}

// Render valida las precondiciones y produce el documento paginado. Devuelve
// RenderError (y ningún byte) si la cabecera está incompleta o no hay filas.
func (g *ReceiptRenderer) Render(header entity.FormHeader, rows []entity.Row) ([]byte, error) {
	h, ok := header.(entity.ReceiptHeader)
	if !ok {
		return nil, &domain.RenderError{Reason: "header does not match the form variant", Err: domain.ErrUnknownVariant}
	}
	if err := h.Validate(); err != nil {
		return nil, &domain.RenderError{Reason: "form header is incomplete", Err: err}
	}
	rows, err := usableRows(rows)
	if err != nil {
		return nil, err
	}

	p := &pager{}
	letterhead(p, g.layout.LogoPath, "Acknowledgement of Receipt")
	dateRow(p, g.now())

	g.layout.table(p, receiptColumns, rows, g.layout.FirstPageRows, g.layout.OverflowPageRows)

	custodianDetails(p, h)
	locationSection(p, h)

	p.add(12, row.New(12).Add(
		text.NewCol(12, receiptDeclaration, props.Text{
			Size:  9,
			Style: fontstyle.BoldItalic,
			Top:   2,
		}),
	))

	deviceSelection(p, h.DeviceType)
	signatureBlock(p, "Employee Signature")

	return render(p)
}

// custodianDetails bloque de datos del custodio.
func custodianDetails(p *pager, h entity.ReceiptHeader) {
	p.add(29,
		sectionTitle("Custodian Details:"),
		labeledField("Custodian Name", h.CustodianName, 3),
		labeledField("Emp. ID", h.EmpID, 3),
		labeledField("College/Department", h.Department, 3),
	)
}

// locationSection casillas de edificio, piso y sección. Cuando la elección es
// "Others" se imprime además el texto libre capturado.
func locationSection(p *pager, h entity.ReceiptHeader) {
	p.add(29,
		sectionTitle("Location:"),
		optionRow("Building", BuildingOptions, h.Building, h.BuildingOther),
		optionRow("Floor", FloorOptions, h.Floor, h.FloorOther),
		optionRow("Section", SectionOptions, h.Section, ""),
	)
}

// deviceSelection tipo de dispositivo y nota de responsabilidad.
func deviceSelection(p *pager, deviceType string) {
	p.add(25,
		sectionTitle("Device Type:"),
		optionRow("", []string{"Office Device", "Lab Device"}, deviceType+" Device", ""),
		row.New(10).Add(
			text.NewCol(12, receiptResponsibility, props.Text{
				Size:  8,
				Color: colorGray,
				Top:   1,
			}),
		),
	)
}

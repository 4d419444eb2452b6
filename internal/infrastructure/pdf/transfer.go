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

const transferDeclaration = "This device is a property of the University and is to be returned back to the " +
	"Main Store after usage; this device can't be shifted to any other user without a written approval " +
	"from the Store. I confirm that this device will be used for work purpose only. I also understand " +
	"that I will be responsible for any misuse or damages that may occur."

// transferColumns columnas de la tabla de activos del ATF.
var transferColumns = []tableColumn{
	{title: "No.", size: 1, align: align.Center, value: numberCell},
	{title: "Store Code", size: 2, align: align.Center, value: func(r entity.Row, _ int) string { return r.StoreCode }},
	{title: "Asset Name", size: 3, align: align.Left, value: func(r entity.Row, _ int) string { return r.AssetName }},
	{title: "Description", size: 4, align: align.Left, value: func(r entity.Row, _ int) string { return r.Description }},
	{title: "Old Asset No.", size: 2, align: align.Center, value: func(r entity.Row, _ int) string { return r.OldAssetNo }},
}

// TransferRenderer genera el PDF del Asset Transfer Form.
type TransferRenderer struct {
	layout Layout
	now    func() time.Time
}

// NewTransferRenderer crea el generador con las constantes visuales dadas.
func NewTransferRenderer(layout Layout) *TransferRenderer {
	return &TransferRenderer{layout: layout, now: time.Now}
}

// Render valida las precondiciones y produce el documento paginado. El par
// origen/destino completo es obligatorio.
func (g *TransferRenderer) Render(header entity.FormHeader, rows []entity.Row) ([]byte, error) {
	h, ok := header.(entity.TransferHeader)
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
	letterhead(p, g.layout.LogoPath, "ATF (Asset Transfer Form)")
	dateRow(p, g.now())

	custodianPair(p, "Transferred From:", h.FromName, h.FromEmpID, h.FromDepartment)

	g.layout.table(p, transferColumns, rows, g.layout.FirstPageRows, g.layout.OverflowPageRows)

	custodianPair(p, "Transferred To:", h.ToName, h.ToEmpID, h.ToDepartment)

	p.add(16,
		sectionTitle("Declaration:"),
		row.New(8).Add(
			text.NewCol(12, transferDeclaration, props.Text{
				Size:  9,
				Style: fontstyle.BoldItalic,
			}),
		),
	)

	signatureBlock(p, "Signature (receiving custodian)")

	return render(p)
}

// custodianPair bloque de custodio origen o destino del traslado.
func custodianPair(p *pager, title, name, empID, department string) {
	p.add(29,
		sectionTitle(title),
		labeledField("Custodian Name", name, 3),
		labeledField("Emp. ID", empID, 3),
		labeledField("Department", department, 3),
	)
}

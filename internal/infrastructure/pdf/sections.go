package pdf

import (
	"fmt"
	"os"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/asset-forms/internal/domain"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
)

const displayDateLayout = "02/01/2006"

// ── Membrete ──────────────────────────────────────────────────────────────────

// letterhead agrega el encabezado institucional. Usa el logo si el archivo
// existe; de lo contrario cae a un membrete de texto.
func letterhead(p *pager, logoPath, formTitle string) {
	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			p.add(20, image.NewFromFileRow(18, logoPath, props.Rect{
				Center:  true,
				Percent: 90,
			}))
		} else {
			textLetterhead(p)
		}
	} else {
		textLetterhead(p)
	}

	p.add(16,
		row.New(8).Add(
			text.NewCol(12, "MAIN STORE", props.Text{
				Size:  13,
				Style: fontstyle.Bold,
				Align: align.Center,
				Color: colorPrimary,
			}),
		),
		row.New(8).Add(
			text.NewCol(12, formTitle, props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
		),
	)
}

func textLetterhead(p *pager) {
	p.add(10, row.New(10).Add(
		text.NewCol(12, "OFFICE OF FACILITIES MANAGEMENT", props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Center,
			Color: colorPrimary,
		}),
	))
}

// dateRow fecha de emisión alineada a la derecha, formato DD/MM/YYYY.
func dateRow(p *pager, now time.Time) {
	p.add(8, row.New(8).Add(
		col.New(8),
		text.NewCol(4, "Date: "+now.Format(displayDateLayout), props.Text{
			Size:  10,
			Align: align.Right,
		}),
	))
}

// ── Campos etiquetados ────────────────────────────────────────────────────────

// labeledField "Etiqueta:" en negrita seguida del valor. labelSize en
// unidades de grilla.
func labeledField(label, value string, labelSize int) core.Row {
	return row.New(7).Add(
		text.NewCol(labelSize, label+":", props.Text{
			Size:  10,
			Style: fontstyle.Bold,
		}),
		text.NewCol(gridColumns-labelSize, value, props.Text{
			Size: 10,
		}),
	)
}

// sectionTitle subtítulo de sección en el color institucional.
func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		text.NewCol(12, title, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Color: colorPrimary,
			Top:   2,
		}),
	)
}

// optionRow etiqueta seguida de casillas "[X] Opción  [ ] Opción". Solo una
// opción puede estar marcada; la opción "Others" imprime además el texto
// libre capturado.
func optionRow(label string, options []string, selected, other string) core.Row {
	cols := make([]core.Col, 0, len(options)+1)
	if label != "" {
		cols = append(cols, text.NewCol(2, label+":", props.Text{
			Size:  10,
			Style: fontstyle.Bold,
		}))
	} else {
		cols = append(cols, col.New(2))
	}

	size := (gridColumns - 2) / len(options)
	if size < 1 {
		size = 1
	}
	for _, opt := range options {
		mark := "[  ]"
		caption := opt
		if opt == selected {
			mark = "[X]"
			if opt == "Others" && other != "" {
				caption = "Others: " + other
			}
		}
		cols = append(cols, text.NewCol(size, mark+" "+caption, props.Text{Size: 9}))
	}
	return row.New(7).Add(cols...)
}

// ── Tabla de filas ────────────────────────────────────────────────────────────

// tableColumn una columna de la tabla de activos. value extrae el texto de la
// celda para una fila dada y su posición 1-based.
type tableColumn struct {
	title string
	size  int
	align align.Type
	value func(r entity.Row, n int) string
}

var cellBorder = &props.Cell{
	BorderType:      border.Full,
	BorderThickness: 0.3,
	BorderColor:     &props.Color{Red: 60, Green: 60, Blue: 60},
}

// tableHeader fila de títulos de columna, repetida en cada página.
func tableHeader(cols []tableColumn) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cs = append(cs, text.NewCol(c.size, c.title, props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   2,
		}).WithStyle(cellBorder))
	}
	return row.New(tableHeadHeight).Add(cs...)
}

// dataRow una fila de datos; los textos que exceden la celda se truncan con
// elipsis.
func (l Layout) dataRow(cols []tableColumn, r entity.Row, n int) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cs = append(cs, text.NewCol(c.size, truncate(c.value(r, n), l.cellCapacity(c.size)), props.Text{
			Size:  9,
			Align: c.align,
			Top:   1.5,
			Left:  l.CellPaddingMM,
			Right: l.CellPaddingMM,
		}).WithStyle(cellBorder))
	}
	return row.New(dataRowHeightMM).Add(cs...)
}

// table pagina las filas de datos: capacidad firstCap bajo la cabecera del
// formulario y overflowCap en páginas de continuación, repitiendo los títulos
// de columna tras cada salto. El orden de inserción se preserva.
func (l Layout) table(p *pager, cols []tableColumn, rows []entity.Row, firstCap, overflowCap int) {
	p.add(tableHeadHeight, tableHeader(cols))
	capacity := firstCap
	onPage := 0
	for i, r := range rows {
		if onPage >= capacity || p.remaining() < dataRowHeightMM {
			p.breakPage()
			p.add(tableHeadHeight, tableHeader(cols))
			capacity = overflowCap
			onPage = 0
		}
		p.add(dataRowHeightMM, l.dataRow(cols, r, i+1))
		onPage++
	}
}

// ── Bloque de firma ───────────────────────────────────────────────────────────

// signatureBlock etiqueta, caja dibujada para la firma manuscrita y texto de
// ayuda sobre el campo digital. La caja se ancla al fondo de la página para
// coincidir con el rectángulo del campo interactivo que agrega el inyector.
func signatureBlock(p *pager, label string) {
	const blockHeight = 8 + sigBoxHeightMM + 6
	if p.remaining() < blockHeight {
		p.breakPage()
	}
	p.spacerTo(blockHeight)
	p.add(8, row.New(8).Add(
		text.NewCol(12, label+":", props.Text{
			Size:  10,
			Style: fontstyle.Bold,
		}),
	))
	p.add(sigBoxHeightMM, row.New(sigBoxHeightMM).Add(
		col.New(sigBoxCols).WithStyle(cellBorder),
		col.New(gridColumns-sigBoxCols),
	))
	p.add(6, row.New(6).Add(
		text.NewCol(12, "Sign digitally inside the box using a certificate, or print and sign by hand.", props.Text{
			Size:  8,
			Style: fontstyle.Italic,
			Color: colorGray,
		}),
	))
}

// numberCell formatea la columna No.
func numberCell(_ entity.Row, n int) string { return fmt.Sprintf("%d", n) }

// qtyCell formatea la cantidad; en blanco cuando la variante no la usa.
func qtyCell(r entity.Row, _ int) string {
	if r.Qty == 0 {
		return ""
	}
	return strconv.Itoa(r.Qty)
}

// usableRows descarta filas en blanco del editor y valida las restantes.
// Tras el filtrado debe quedar al menos una fila imprimible.
func usableRows(rows []entity.Row) ([]entity.Row, error) {
	out := make([]entity.Row, 0, len(rows))
	for _, r := range rows {
		if r.IsBlank() {
			continue
		}
		if err := r.Validate(); err != nil {
			return nil, &domain.RenderError{Reason: "line items are invalid", Err: err}
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, &domain.RenderError{Reason: "no line items to print", Err: domain.ErrEmptyRows}
	}
	return out, nil
}

// render ensambla las páginas acumuladas en el documento final con la
// numeración "Page N of M" al pie.
func render(p *pager) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(pageMarginMM).WithRightMargin(pageMarginMM).
		WithTopMargin(pageMarginMM).WithBottomMargin(pageMarginMM).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.Bottom,
			Size:    8,
			Color:   colorGray,
		}).
		Build()

	m := maroto.New(cfg)
	m.AddPages(p.flush()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, &domain.RenderError{Reason: "pdf engine failed", Err: err}
	}
	return doc.GetBytes(), nil
}

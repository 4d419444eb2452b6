// Package pdf implementa la generación de los formularios de activos de
// oficina (Acknowledgment of Receipt y Asset Transfer Form) usando Maroto v2,
// y la inyección del campo de firma digital con pdfcpu.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  MEMBRETE: logo centrado (o título de texto) + Main Store    │
//	│  Fecha                                                       │
//	│  BLOQUE DE CABECERA: campos etiquetados según la variante    │
//	│  ─────────────────────────────────────────────────────────   │
//	│  TABLA: No. | Store Code | ... (filas en orden de inserción) │
//	│  ─────────────────────────────────────────────────────────   │
//	│  SECCIONES FINALES: declaración, selección, caja de firma    │
//	│  Page N of M                                                 │
//	└─────────────────────────────────────────────────────────────┘
//
// Las páginas de continuación repiten solo la cabecera de columnas de la
// tabla, nunca el membrete. El orden de las filas se preserva entre páginas y
// ninguna fila se parte.
package pdf

import (
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Constantes de página ──────────────────────────────────────────────────────

const (
	// A4 con márgenes de 10mm; se reserva espacio para el pie "Page N of M".
	pageMarginMM    = 10.0
	usableWidthMM   = 210.0 - 2*pageMarginMM
	usableHeightMM  = 297.0 - 2*pageMarginMM - 7.0
	gridColumns     = 12
	gridColWidthMM  = usableWidthMM / gridColumns
	dataRowHeightMM = 7.0
	tableHeadHeight = 8.0

	// Caja de firma: 56mm x 24mm (aprox. 2.2in x 1in del formato original).
	sigBoxHeightMM = 24.0
	sigBoxCols     = 4

	// Ancho medio de carácter para Helvetica 9pt, usado para truncar celdas.
	charWidthMM = 1.7
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 152, Blue: 218}
	colorGray    = &props.Color{Red: 102, Green: 102, Blue: 102}
)

// Layout constantes visuales configurables (spec: parámetros, no números
// mágicos). Las capacidades fijan el máximo de filas de tabla por página.
type Layout struct {
	FirstPageRows    int     // capacidad bajo el bloque de cabecera
	OverflowPageRows int     // capacidad en páginas de continuación
	CellPaddingMM    float64 // margen interior al truncar texto de celdas
	LogoPath         string  // membrete; vacío = membrete de texto
}

// ── Paginador ─────────────────────────────────────────────────────────────────

// pager acumula filas en páginas explícitas llevando la cuenta de la altura
// usada. Las secciones se agregan de forma atómica: si no caben en el espacio
// restante, abren página nueva.
type pager struct {
	pages []core.Page
	cur   []core.Row
	used  float64
}

// add agrega filas que en conjunto miden h milímetros. No parte la sección:
// si no entra, la manda completa a una página nueva.
func (p *pager) add(h float64, rows ...core.Row) {
	if p.used+h > usableHeightMM && len(p.cur) > 0 {
		p.breakPage()
	}
	p.cur = append(p.cur, rows...)
	p.used += h
}

// breakPage cierra la página actual y arranca una vacía.
func (p *pager) breakPage() {
	pg := page.New()
	pg.Add(p.cur...)
	p.pages = append(p.pages, pg)
	p.cur = nil
	p.used = 0
}

// remaining espacio vertical libre en la página actual.
func (p *pager) remaining() float64 { return usableHeightMM - p.used }

// spacer empuja el contenido siguiente hacia el fondo de la página, dejando
// exactamente h milímetros ocupados al final.
func (p *pager) spacerTo(h float64) {
	if gap := p.remaining() - h; gap > 0 {
		p.cur = append(p.cur, row.New(gap))
		p.used += gap
	}
}

// flush devuelve todas las páginas, cerrando la última si tiene contenido.
func (p *pager) flush() []core.Page {
	if len(p.cur) > 0 {
		p.breakPage()
	}
	return p.pages
}

// ── Truncado de celdas ────────────────────────────────────────────────────────

// cellCapacity cantidad de caracteres que caben en una celda de size unidades
// de grilla, descontando el margen interior configurado.
func (l Layout) cellCapacity(size int) int {
	w := float64(size)*gridColWidthMM - 2*l.CellPaddingMM
	n := int(w / charWidthMM)
	if n < 4 {
		n = 4
	}
	return n
}

// truncate recorta el texto que excede la celda y lo marca con elipsis;
// nunca lo descarta en silencio.
func truncate(s string, max int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= max {
		return string(r)
	}
	return string(r[:max-3]) + "..."
}

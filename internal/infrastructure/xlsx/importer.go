// Package xlsx implementa la importación masiva de filas desde una planilla
// Excel: primera hoja, fila 1 como cabecera, columnas esperadas por variante
// (insensibles a mayúsculas, en cualquier orden). La importación es
// todo-o-nada: cualquier fila inválida aborta sin aplicar nada.
package xlsx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/asset-forms/internal/domain"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
	"github.com/jhoicas/asset-forms/pkg/logger"
)

// displayDateLayout formato fijo de fecha que termina impreso en el PDF.
const displayDateLayout = "02/01/2006"

// dateLayouts formatos aceptados en celdas de fecha, en orden de preferencia.
// Con separador "/" o "." se asume día primero (convención del producto);
// "1-2-06" cubre el formato corto por defecto con el que excelize presenta
// las celdas de fecha nativas (m-d-yy).
var dateLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2-1-2006",
	"2006-1-2",
	"2006/1/2",
	"2.1.2006",
	"1-2-06",
}

// dateLike distingue una fecha tentativa de una referencia LPO de texto libre.
var dateLike = regexp.MustCompile(`^\d{1,4}[./-]\d{1,2}[./-]\d{1,4}$`)

// column una columna esperada de la planilla.
type column struct {
	field    string // nombre canónico, usado en los mensajes de error
	aliases  []string
	required bool
}

// columnsFor esquema de columnas de cada variante.
func columnsFor(variant entity.FormVariant) []column {
	switch variant {
	case entity.VariantTransfer:
		return []column{
			{field: "store code", aliases: []string{"store code", "storecode", "code"}, required: true},
			{field: "asset name", aliases: []string{"asset name", "asset"}, required: true},
			{field: "description", aliases: []string{"description", "item description"}, required: true},
			{field: "old asset no", aliases: []string{"old asset no", "old asset no.", "old asset number", "prior asset id"}, required: false},
		}
	default: // receipt
		return []column{
			{field: "store code", aliases: []string{"store code", "storecode", "code"}, required: true},
			{field: "description", aliases: []string{"description", "item description", "item"}, required: true},
			{field: "qty", aliases: []string{"qty", "qty.", "quantity"}, required: true},
			{field: "purchase date", aliases: []string{"purchase date", "purchase date/lpo", "purchase date /lpo", "lpo", "date"}, required: true},
		}
	}
}

// Importer lee planillas .xlsx para una variante de formulario.
type Importer struct {
	variant entity.FormVariant
	log     *logger.Logger
}

// NewImporter construye el importador para la variante dada.
func NewImporter(variant entity.FormVariant, log *logger.Logger) *Importer {
	return &Importer{variant: variant, log: log}
}

// Import lee la primera hoja del archivo y devuelve las filas convertidas.
// Nunca devuelve una secuencia parcial: el primer error aborta la importación.
func (im *Importer) Import(filePath string) ([]entity.Row, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet %s: %w", filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.SchemaError{Missing: requiredFields(im.variant)}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &domain.SchemaError{Missing: requiredFields(im.variant)}
	}

	colIdx, err := mapHeader(rows[0], columnsFor(im.variant))
	if err != nil {
		return nil, err
	}

	out := make([]entity.Row, 0, len(rows)-1)
	for i, raw := range rows[1:] {
		rowNum := i + 2 // 1-based, contando la fila de cabecera

		if isBlankRow(raw) {
			continue
		}

		row, err := im.convertRow(raw, rowNum, colIdx)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	if len(out) == 0 {
		return nil, domain.ErrEmptyRows
	}

	im.log.Debug().
		Str("file", filePath).
		Str("sheet", sheets[0]).
		Int("rows", len(out)).
		Msg("planilla leída")

	return out, nil
}

// mapHeader valida la presencia de las columnas esperadas y devuelve el índice
// de cada campo. Insensible a mayúsculas e independiente del orden.
func mapHeader(header []string, cols []column) (map[string]int, error) {
	idx := make(map[string]int, len(cols))
	for _, c := range cols {
		for j, cell := range header {
			name := strings.ToLower(strings.TrimSpace(cell))
			for _, alias := range c.aliases {
				if name == alias {
					idx[c.field] = j
				}
			}
		}
	}

	var missing []string
	for _, c := range cols {
		if _, ok := idx[c.field]; !ok && c.required {
			missing = append(missing, c.field)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}
	return idx, nil
}

func requiredFields(variant entity.FormVariant) []string {
	var out []string
	for _, c := range columnsFor(variant) {
		if c.required {
			out = append(out, c.field)
		}
	}
	return out
}

// convertRow transforma una fila cruda en una entidad validada.
func (im *Importer) convertRow(raw []string, rowNum int, colIdx map[string]int) (entity.Row, error) {
	cell := func(field string) string {
		j, ok := colIdx[field]
		if !ok || j >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[j])
	}
	cellRef := func(field string) string {
		ref, err := excelize.CoordinatesToCellName(colIdx[field]+1, rowNum)
		if err != nil {
			return fmt.Sprintf("row %d", rowNum)
		}
		return ref
	}

	row := entity.NewRow(im.variant)
	row.StoreCode = cell("store code")
	row.Description = cell("description")

	switch im.variant {
	case entity.VariantReceipt:
		for _, field := range []string{"store code", "description", "qty"} {
			if cell(field) == "" {
				return entity.Row{}, &domain.RowValidationError{Row: rowNum, Field: field}
			}
		}

		qty, err := parseQty(cell("qty"))
		if err != nil {
			return entity.Row{}, &domain.TypeError{Cell: cellRef("qty"), Value: cell("qty"), Want: "positive integer"}
		}
		row.Qty = qty

		date, err := normalizeDate(cell("purchase date"))
		if err != nil {
			return entity.Row{}, &domain.DateFormatError{Cell: cellRef("purchase date"), Value: cell("purchase date")}
		}
		row.PurchaseDate = date

	case entity.VariantTransfer:
		for _, field := range []string{"store code", "asset name", "description"} {
			if cell(field) == "" {
				return entity.Row{}, &domain.RowValidationError{Row: rowNum, Field: field}
			}
		}
		row.AssetName = cell("asset name")
		row.OldAssetNo = cell("old asset no")
	}

	return row, nil
}

// isBlankRow una fila se descarta solo si todas sus celdas están en blanco.
func isBlankRow(raw []string) bool {
	for _, cell := range raw {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseQty coerciona la celda de cantidad a entero positivo. Acepta también
// la presentación decimal exacta de Excel ("3.0").
func parseQty(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, err
		}
		n = int(f)
	}
	if n < 1 {
		return 0, fmt.Errorf("quantity %d is not positive", n)
	}
	return n, nil
}

// normalizeDate normaliza una celda de fecha al formato de presentación
// DD/MM/YYYY. El texto libre que no parece fecha (una referencia LPO) pasa
// sin cambios; lo que parece fecha pero no se interpreta es un error.
func normalizeDate(s string) (string, error) {
	if s == "" || !dateLike.MatchString(s) {
		return s, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(displayDateLayout), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", s)
}

package forms

import (
	"github.com/jhoicas/asset-forms/internal/domain"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
)

// RowStore secuencia ordenada de filas de un formulario en edición. Es
// propiedad exclusiva de su controlador durante la sesión y el orden de
// inserción es significativo: determina el orden de las filas en el PDF.
// Sin sincronización: toda la aplicación corre en el hilo de eventos de la GUI.
type RowStore struct {
	variant entity.FormVariant
	rows    []entity.Row
}

// NewRowStore crea el almacén para una variante de formulario.
func NewRowStore(variant entity.FormVariant) *RowStore {
	return &RowStore{variant: variant}
}

// Variant devuelve la variante del formulario.
func (s *RowStore) Variant() entity.FormVariant { return s.variant }

// Len cantidad de filas actuales.
func (s *RowStore) Len() int { return len(s.rows) }

// AddRow agrega una fila en blanco de la variante activa y devuelve su
// identificador estable, que la GUI usa para ligar los widgets de entrada.
func (s *RowStore) AddRow() entity.RowID {
	row := entity.NewRow(s.variant)
	s.rows = append(s.rows, row)
	return row.ID
}

// RemoveRow elimina la fila con el identificador dado si existe. Si no existe
// no es un error: tolera el doble clic sobre el botón de quitar.
func (s *RowStore) RemoveRow(id entity.RowID) {
	for i, r := range s.rows {
		if r.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return
		}
	}
}

// Update aplica una mutación a la fila identificada. Devuelve
// domain.ErrRowNotFound si la fila ya no está (widget rezagado).
func (s *RowStore) Update(id entity.RowID, mutate func(*entity.Row)) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			mutate(&s.rows[i])
			// La identidad y la variante no se mutan desde la GUI.
			s.rows[i].ID = id
			s.rows[i].Variant = s.variant
			return nil
		}
	}
	return domain.ErrRowNotFound
}

// ReplaceAll carga masiva desde el importador: descarta el contenido previo.
// Todo-o-nada: si alguna fila viola el invariante de presencia de campos,
// devuelve el error de validación y el almacén queda intacto.
func (s *RowStore) ReplaceAll(rows []entity.Row) error {
	next := make([]entity.Row, 0, len(rows))
	for _, r := range rows {
		r.Variant = s.variant
		if r.ID == "" {
			r.ID = entity.NewRowID()
		}
		if err := r.Validate(); err != nil {
			return err
		}
		next = append(next, r)
	}
	s.rows = next
	return nil
}

// Snapshot copia de solo lectura para la generación, orden de inserción
// preservado. El motor de layout nunca muta el almacén.
func (s *RowStore) Snapshot() []entity.Row {
	out := make([]entity.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

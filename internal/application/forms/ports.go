package forms

import (
	"github.com/jhoicas/asset-forms/internal/domain/entity"
)

// RowImporter lee un archivo tabular externo y produce filas validadas.
// La implementación conoce el esquema de columnas de su variante.
type RowImporter interface {
	Import(filePath string) ([]entity.Row, error)
}

// FormRenderer convierte cabecera + filas en un PDF paginado.
// Falla con *domain.RenderError si no hay filas o la cabecera está incompleta;
// en caso de error no devuelve bytes parciales.
type FormRenderer interface {
	Render(header entity.FormHeader, rows []entity.Row) ([]byte, error)
}

// SignatureInjector pasa de post-proceso: agrega un campo de firma digital
// (certificado) al final de la última página. Entrada inmutable, salida nueva.
type SignatureInjector interface {
	AddSignatureField(pdf []byte) ([]byte, error)
}

// DocumentStore acceso al directorio de salida: nombres ocupados y escritura
// sin sobreescritura.
type DocumentStore interface {
	// ExistingNames devuelve el conjunto de nombres de archivo ya presentes.
	ExistingNames() (map[string]bool, error)
	// Write guarda el documento con el nombre dado y devuelve la ruta final.
	// Falla si el nombre ya existe (re-chequeo inmediatamente antes de escribir).
	Write(name string, data []byte) (string, error)
}

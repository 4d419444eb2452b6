package forms

import (
	"fmt"
	"strings"

	"github.com/jhoicas/asset-forms/internal/domain"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
	"github.com/jhoicas/asset-forms/internal/domain/naming"
	"github.com/jhoicas/asset-forms/pkg/logger"
)

// Plantillas de nombre de archivo por variante. Los marcadores {Campo} se
// sustituyen con los valores de la cabecera (y el primer ítem para el receipt).
const (
	receiptNameTemplate  = "{EmpID} - {Name} - acknowledgement form {Asset}.pdf"
	transferNameTemplate = "Asset Transfer - From {FromEmpID}-{FromName} to {ToEmpID}-{ToName}.pdf"

	// Largo máximo del nombre de activo dentro del nombre del archivo.
	maxAssetInFilename = 30
)

// Controller orquesta un formulario: posee su RowStore durante la sesión de
// edición, dispara la importación y ejecuta el pipeline de generación
// (snapshot → render → campo de firma → nombre → escritura).
type Controller struct {
	variant  entity.FormVariant
	store    *RowStore
	importer RowImporter
	renderer FormRenderer
	signer   SignatureInjector
	docs     DocumentStore
	log      *logger.Logger
}

// NewController construye el controlador inyectando sus dependencias.
func NewController(
	variant entity.FormVariant,
	importer RowImporter,
	renderer FormRenderer,
	signer SignatureInjector,
	docs DocumentStore,
	log *logger.Logger,
) *Controller {
	return &Controller{
		variant:  variant,
		store:    NewRowStore(variant),
		importer: importer,
		renderer: renderer,
		signer:   signer,
		docs:     docs,
		log:      log,
	}
}

// Store expone el almacén de filas para que la GUI ligue sus comandos
// (agregar, quitar, editar).
func (c *Controller) Store() *RowStore { return c.store }

// ImportFromFile importa la planilla y reemplaza el contenido del almacén.
// Todo-o-nada: ante cualquier error el almacén conserva su último estado
// válido. Devuelve la cantidad de filas cargadas.
func (c *Controller) ImportFromFile(path string) (int, error) {
	rows, err := c.importer.Import(path)
	if err != nil {
		c.log.Warn().Err(err).Str("file", path).Msg("importación rechazada")
		return 0, err
	}
	if err := c.store.ReplaceAll(rows); err != nil {
		return 0, err
	}
	c.log.Info().Int("rows", len(rows)).Str("file", path).Msg("planilla importada")
	return len(rows), nil
}

// Generate ejecuta el pipeline completo y devuelve el documento escrito.
// Ningún error es fatal: el almacén y la cabecera quedan como estaban para
// que el usuario corrija y reintente.
func (c *Controller) Generate(header entity.FormHeader) (*entity.OutputDocument, error) {
	if header.Variant() != c.variant {
		return nil, domain.ErrUnknownVariant
	}

	rows := c.store.Snapshot()

	pdf, err := c.renderer.Render(header, rows)
	if err != nil {
		return nil, err
	}

	signed, err := c.signer.AddSignatureField(pdf)
	if err != nil {
		return nil, err
	}

	existing, err := c.docs.ExistingNames()
	if err != nil {
		return nil, fmt.Errorf("listing existing documents: %w", err)
	}

	name := naming.Resolve(c.nameTemplate(), c.nameFields(header, rows), existing)

	path, err := c.docs.Write(name, signed)
	if err != nil {
		return nil, fmt.Errorf("saving %s: %w", name, err)
	}

	c.log.Info().
		Str("variant", string(c.variant)).
		Str("path", path).
		Int("rows", len(rows)).
		Msg("documento generado")

	return &entity.OutputDocument{Path: path, Bytes: signed}, nil
}

func (c *Controller) nameTemplate() string {
	if c.variant == entity.VariantTransfer {
		return transferNameTemplate
	}
	return receiptNameTemplate
}

// nameFields arma los valores de sustitución de la plantilla de nombre, con
// los mismos respaldos que usaba el formato original ("Unknown", "Asset").
func (c *Controller) nameFields(header entity.FormHeader, rows []entity.Row) map[string]string {
	switch h := header.(type) {
	case entity.ReceiptHeader:
		asset := "Asset"
		if len(rows) > 0 && strings.TrimSpace(rows[0].Description) != "" {
			asset = strings.TrimSpace(rows[0].Description)
			if len(asset) > maxAssetInFilename {
				asset = asset[:maxAssetInFilename]
			}
		}
		return map[string]string{
			"EmpID": orUnknown(h.EmpID),
			"Name":  orUnknown(h.CustodianName),
			"Asset": asset,
		}
	case entity.TransferHeader:
		return map[string]string{
			"FromEmpID": orUnknown(h.FromEmpID),
			"FromName":  orUnknown(h.FromName),
			"ToEmpID":   orUnknown(h.ToEmpID),
			"ToName":    orUnknown(h.ToName),
		}
	default:
		return nil
	}
}

func orUnknown(s string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return "Unknown"
}

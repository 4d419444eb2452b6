package entity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/asset-forms/internal/domain"
)

// FormVariant etiqueta del tipo de formulario. Las dos variantes difieren solo
// en la forma de los datos (unión etiquetada), no en el algoritmo.
type FormVariant string

const (
	VariantReceipt  FormVariant = "receipt"  // Acknowledgment of Receipt
	VariantTransfer FormVariant = "transfer" // Asset Transfer Form (ATF)
)

// RowID identificador estable de una fila; la GUI lo usa para ligar widgets.
type RowID string

// NewRowID genera un identificador único para una fila.
func NewRowID() RowID { return RowID(uuid.NewString()) }

// Row una línea del formulario (ítem o activo). Unión etiquetada: los campos
// usados dependen de Variant.
//
//	receipt:  StoreCode, Description, Qty, PurchaseDate (fecha DD/MM/YYYY o referencia LPO)
//	transfer: StoreCode, AssetName, Description, OldAssetNo (opcional)
type Row struct {
	ID      RowID
	Variant FormVariant

	StoreCode   string
	Description string

	Qty          int
	PurchaseDate string

	AssetName  string
	OldAssetNo string
}

// NewRow crea una fila en blanco de la variante dada, con ID asignado.
func NewRow(variant FormVariant) Row {
	return Row{ID: NewRowID(), Variant: variant}
}

// IsBlank indica si todos los campos de datos están vacíos. Las filas en
// blanco se toleran en el editor y se descartan al importar.
func (r Row) IsBlank() bool {
	return strings.TrimSpace(r.StoreCode) == "" &&
		strings.TrimSpace(r.Description) == "" &&
		strings.TrimSpace(r.AssetName) == "" &&
		strings.TrimSpace(r.PurchaseDate) == "" &&
		strings.TrimSpace(r.OldAssetNo) == "" &&
		r.Qty == 0
}

// Validate verifica los invariantes de la fila según su variante:
// código de bodega y descripción/nombre de activo no vacíos; la cantidad,
// cuando aplica, es un entero positivo.
func (r Row) Validate() error {
	if strings.TrimSpace(r.StoreCode) == "" {
		return &domain.ValidationError{Field: "store code"}
	}

	switch r.Variant {
	case VariantReceipt:
		if strings.TrimSpace(r.Description) == "" {
			return &domain.ValidationError{Field: "description"}
		}
		if r.Qty < 1 {
			return &domain.ValidationError{Field: "qty", Reason: "must be a positive integer"}
		}
	case VariantTransfer:
		if strings.TrimSpace(r.AssetName) == "" {
			return &domain.ValidationError{Field: "asset name"}
		}
		if strings.TrimSpace(r.Description) == "" {
			return &domain.ValidationError{Field: "description"}
		}
	default:
		return domain.ErrUnknownVariant
	}

	return nil
}

package entity

import (
	"strings"

	"github.com/jhoicas/asset-forms/internal/domain"
)

// FormHeader campos fijos (no repetidos) de un formulario. Todos los campos
// declarados requeridos deben estar presentes antes de permitir la generación.
type FormHeader interface {
	Variant() FormVariant
	Validate() error
}

// ReceiptHeader cabecera del Acknowledgment of Receipt.
type ReceiptHeader struct {
	CustodianName string
	EmpID         string
	Department    string

	// Ubicación: valor elegido + texto libre cuando se elige "Others".
	Building      string
	BuildingOther string
	Floor         string
	FloorOther    string
	Section       string // Male / Female

	DeviceType string // Office / Lab
}

func (h ReceiptHeader) Variant() FormVariant { return VariantReceipt }

// Validate exige custodio, ID de empleado y departamento.
func (h ReceiptHeader) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"custodian name", h.CustodianName},
		{"emp. id", h.EmpID},
		{"college/department", h.Department},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &domain.ValidationError{Field: f.name}
		}
	}
	return nil
}

// TransferHeader cabecera del Asset Transfer Form: par origen/destino.
type TransferHeader struct {
	FromName       string
	FromEmpID      string
	FromDepartment string

	ToName       string
	ToEmpID      string
	ToDepartment string
}

func (h TransferHeader) Variant() FormVariant { return VariantTransfer }

// Validate exige los seis campos del par origen/destino.
func (h TransferHeader) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"transferred from: custodian name", h.FromName},
		{"transferred from: emp. id", h.FromEmpID},
		{"transferred from: department", h.FromDepartment},
		{"transferred to: custodian name", h.ToName},
		{"transferred to: emp. id", h.ToEmpID},
		{"transferred to: department", h.ToDepartment},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &domain.ValidationError{Field: f.name}
		}
	}
	return nil
}

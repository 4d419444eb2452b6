package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas). Los mensajes son de cara al
// usuario: la GUI los muestra tal cual en un diálogo, por eso van en inglés
// (el idioma del producto).
var (
	ErrRowNotFound    = errors.New("row not found")
	ErrEmptyRows      = errors.New("at least one line item is required")
	ErrUnknownVariant = errors.New("unknown form variant")
)

// ValidationError campo requerido ausente o inválido en una fila o cabecera.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("field %q is required", e.Field)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// SchemaError la planilla importada no tiene las columnas esperadas.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("spreadsheet is missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// RowValidationError una fila de la planilla tiene celdas requeridas vacías.
// Row es 1-based, igual que lo muestra la hoja de cálculo.
type RowValidationError struct {
	Row   int
	Field string
}

func (e *RowValidationError) Error() string {
	return fmt.Sprintf("row %d: missing value for %q", e.Row, e.Field)
}

// TypeError una celda no pudo coercionarse al tipo esperado (ej. cantidad no numérica).
type TypeError struct {
	Cell  string // referencia estilo hoja de cálculo, ej. "C4"
	Value string
	Want  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cell %s: %q is not a valid %s", e.Cell, e.Value, e.Want)
}

// DateFormatError una celda de fecha no pudo interpretarse.
type DateFormatError struct {
	Cell  string
	Value string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("cell %s: %q is not a recognizable date", e.Cell, e.Value)
}

// RenderError precondiciones de generación no cumplidas (sin filas, cabecera incompleta).
type RenderError struct {
	Reason string
	Err    error // causa opcional
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot generate document: %s: %v", e.Reason, e.Err)
	}
	return "cannot generate document: " + e.Reason
}

func (e *RenderError) Unwrap() error { return e.Err }

// PdfStructureError el inyector de firma no reconoce el PDF de entrada.
type PdfStructureError struct {
	Err error
}

func (e *PdfStructureError) Error() string {
	return fmt.Sprintf("PDF structure is not valid: %v", e.Err)
}

func (e *PdfStructureError) Unwrap() error { return e.Err }

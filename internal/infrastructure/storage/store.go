// Package storage persiste los documentos generados en el directorio de
// salida configurado.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// PdfStore escribe los PDF generados en un directorio fijo, sin sobrescribir
// nunca un archivo existente: la resolución de nombres ya garantizó unicidad
// y una colisión aquí es un error de programación o una carrera con otro
// proceso.
type PdfStore struct {
	dir string
}

// NewPdfStore crea el almacén asegurando que el directorio exista.
func NewPdfStore(dir string) (*PdfStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return &PdfStore{dir: dir}, nil
}

// Dir directorio de salida absoluto.
func (s *PdfStore) Dir() string { return s.dir }

// ExistingNames nombres de archivo ya presentes en el directorio de salida,
// usados por la resolución de nombres para desambiguar.
func (s *PdfStore) ExistingNames() (map[string]bool, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing output directory: %w", err)
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names[e.Name()] = true
	}
	return names, nil
}

// Write guarda el documento con el nombre dado y devuelve la ruta absoluta.
// Falla si el nombre ya existe.
func (s *PdfStore) Write(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", name, err)
	}
	return path, nil
}

// Package naming resuelve el nombre de archivo de un documento generado:
// sustitución de plantilla, saneo de caracteres ilegales y desambiguación
// contra los nombres ya existentes. No toca el sistema de archivos; el caller
// provee el conjunto de nombres ocupados.
package naming

import (
	"fmt"
	"path"
	"strings"
)

// Caracteres no permitidos en nombres de archivo (Windows es el más estricto).
const illegalChars = `<>:"/\|?*`

// Resolve sustituye los campos en la plantilla (marcadores {Campo}), sanea el
// resultado y devuelve un nombre garantizado ausente de existing en el momento
// de la llamada. Determinista: con los mismos argumentos produce siempre el
// mismo nombre, y nunca un miembro de existing.
func Resolve(template string, fields map[string]string, existing map[string]bool) string {
	name := template
	for field, value := range fields {
		name = strings.ReplaceAll(name, "{"+field+"}", value)
	}
	name = Sanitize(name)

	if !existing[name] {
		return name
	}

	// Colisión: anexar " #2", " #3", ... antes de la extensión hasta
	// encontrar un nombre libre.
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s #%d%s", base, n, ext)
		if !existing[candidate] {
			return candidate
		}
	}
}

// Sanitize reemplaza por guion bajo los caracteres ilegales en nombres de archivo.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(illegalChars, r) || r < 0x20 {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

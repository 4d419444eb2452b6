package entity

// OutputDocument PDF generado y su ruta resuelta. Se crea una vez por acción
// de generación y es inmutable después de escribirse: regenerar produce un
// documento nuevo con nombre desambiguado, nunca sobreescribe.
type OutputDocument struct {
	Path  string
	Bytes []byte
}

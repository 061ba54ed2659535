package cuid

import "github.com/nrednav/cuid2"

// Generate produce un identificador cuid2 opaco (24 caracteres alfanuméricos
// en minúscula), resistente a colisiones y sin coordinación entre procesos.
// Es el formato de clave primaria de todos los recursos del sistema.
func Generate() string {
	return cuid2.Generate()
}

// IsValid informa si s tiene forma de cuid2. No garantiza que el id exista,
// solo que el formato es plausible; los servicios lo usan para descartar
// ids malformados sin tocar la base.
func IsValid(s string) bool {
	return cuid2.IsCuid(s)
}

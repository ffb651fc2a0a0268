// Package slug deriva identificadores canónicos aptos para URL a partir de nombres visibles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator separa las palabras del slug.
const Separator = '-'

// Make convierte un nombre en su slug canónico: minúsculas, sin diacríticos y con cada
// secuencia de caracteres no alfanuméricos reemplazada por un único separador.
// Entrada vacía produce slug vacío; validar el nombre es responsabilidad del llamador.
//
// Ej: "Parqueadero Central Nº 1" → "parqueadero-central-no-1", "Café Ñandú" → "cafe-nandu".
func Make(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	b.Grow(len(plain))
	pending := false
	for _, r := range strings.ToLower(plain) {
		if isSlugRune(r) {
			if pending && b.Len() > 0 {
				b.WriteRune(Separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// isSlugRune solo admite ASCII: letras sin transliteración conocida se descartan.
func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone a NFD, elimina las marcas diacríticas y
// recompone: "Condensádor" -> "Condensador".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza texto para búsqueda: sin acentos y en minúsculas. Los mpn y
// comentarios se capturan a mano, así que la búsqueda no puede depender de
// que el usuario teclee los acentos igual que quien registró la parte.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// matches indica si needle (ya normalizado) aparece en alguno de los campos.
func matches(needle string, fields ...*string) bool {
	for _, f := range fields {
		if f == nil {
			continue
		}
		if strings.Contains(Fold(*f), needle) {
			return true
		}
	}
	return false
}

package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Caso 1: Fold elimina acentos y baja a minúsculas.
func TestFold(t *testing.T) {
	cases := map[string]string{
		"Condensádor":        "condensador",
		"RESISTENCIA":        "resistencia",
		"película metálica":  "pelicula metalica",
		"Größe":              "große", // la diéresis cae, la ß se conserva
		"NE555":              "ne555",
		"":                   "",
		"sin acentos quedan": "sin acentos quedan",
	}
	for in, want := range cases {
		assert.Equal(t, want, Fold(in), "Fold(%q)", in)
	}
}

// Caso 2: matches encuentra la aguja sin importar acentos ni mayúsculas en
// el campo almacenado, e ignora campos en nil.
func TestMatches(t *testing.T) {
	comments := "Condensádor electrolítico 10uF"
	mpn := "ECA-1HM100"

	assert.True(t, matches(Fold("condensador"), &mpn, &comments))
	assert.True(t, matches(Fold("ELECTROLITICO"), nil, &comments))
	assert.True(t, matches(Fold("eca-1hm"), &mpn, nil))
	assert.False(t, matches(Fold("tantalio"), &mpn, &comments))
	assert.False(t, matches(Fold("algo"), nil, nil))
}

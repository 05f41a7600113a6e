package application

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks descompone a NFD y elimina las marcas diacríticas, de modo
// que "Educación" y "educacion" queden iguales tras normalizar.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lleva el texto del usuario a la forma canónica contra la que
// se comparan las palabras clave del guion: minúsculas, sin tildes, sin
// "/" (así "Ventas/Ecommerce" matchea "ventas ecommerce") y con el
// espaciado colapsado. Es total e idempotente.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// transform.String no falla con los transformers usados; si
		// fallara, seguimos con el texto en minúsculas sin más.
		stripped = lowered
	}

	stripped = strings.ReplaceAll(stripped, "/", " ")

	return strings.Join(strings.Fields(stripped), " ")
}

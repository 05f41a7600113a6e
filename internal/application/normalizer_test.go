package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsDiacritics(t *testing.T) {
	assert.Equal(t, "educacion", Normalize("Educación"))
	assert.Equal(t, "educacion", Normalize("educacion"))
	assert.Equal(t, "que facil", Normalize("QUÉ FÁCIL"))
	assert.Equal(t, "manana", Normalize("mañana"))
}

func TestNormalizeRemovesSlashes(t *testing.T) {
	assert.Equal(t, "ventas ecommerce", Normalize("Ventas / Ecommerce"))
	assert.Equal(t, "ventas ecommerce", Normalize("Ventas/Ecommerce"))
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "hola que tal", Normalize("  hola   qué\t tal \n"))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"Educación", "Ventas / Ecommerce", "  HOLA  ", "reiniciar simulación"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize no es idempotente para %q", in)
	}
}

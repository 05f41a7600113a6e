package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactWithIntroPhrase(t *testing.T) {
	name, email := ExtractContact("Soy Maria, mi email es maria@test.com")

	assert.Equal(t, "Maria", name)
	assert.Equal(t, "maria@test.com", email)
}

func TestExtractContactNameThenEmail(t *testing.T) {
	name, email := ExtractContact("Juan Pérez, juan@ejemplo.com")

	assert.Equal(t, "Juan", name)
	assert.Equal(t, "juan@ejemplo.com", email)
}

func TestExtractContactWithoutEmail(t *testing.T) {
	name, email := ExtractContact("no tengo email")

	assert.Equal(t, NombreClientePorDefecto, name)
	assert.Empty(t, email)
}

func TestExtractContactMeLlamo(t *testing.T) {
	name, email := ExtractContact("me llamo Carla y mi correo es carla@negocio.com.ar")

	assert.Equal(t, "Carla", name)
	assert.Equal(t, "carla@negocio.com.ar", email)
}

func TestExtractContactAccentedIntroPhrase(t *testing.T) {
	// La búsqueda de la frase es insensible a tildes, pero el nombre
	// conserva su forma original.
	name, email := ExtractContact("SOY Tomás, tomas@mail.com")

	assert.Equal(t, "Tomás", name)
	assert.Equal(t, "tomas@mail.com", email)
}

func TestExtractContactTruncatesLongNames(t *testing.T) {
	longName := strings.Repeat("a", 40)
	name, email := ExtractContact("soy " + longName + " contacto@mail.com")

	assert.Equal(t, "contacto@mail.com", email)
	assert.Len(t, []rune(name), 33) // 30 + "..."
	assert.True(t, strings.HasSuffix(name, "..."))
}

func TestExtractContactRejectsDegenerateNames(t *testing.T) {
	// "y" suelto no es un nombre; se cae al placeholder.
	name, email := ExtractContact("y, ana@test.com")

	assert.Equal(t, NombreClientePorDefecto, name)
	assert.Equal(t, "ana@test.com", email)
}

func TestExtractContactRejectsEmailFragmentsAsName(t *testing.T) {
	name, _ := ExtractContact("email ana@test.com")

	assert.Equal(t, NombreClientePorDefecto, name)
}

package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateEmail("ana@test.com"))
	assert.NoError(t, v.ValidateEmail("ana.perez+demo@sub.dominio.com.ar"))

	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("sin-arroba.com"))
	assert.Error(t, v.ValidateEmail("ana@sintld"))
}

func TestValidatePhone(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidatePhone("+54 11 4444-5555"))
	assert.NoError(t, v.ValidatePhone("1144445555"))

	assert.Error(t, v.ValidatePhone(""))
	assert.Error(t, v.ValidatePhone("123"))
	assert.Error(t, v.ValidatePhone("no-es-telefono"))
}

func TestValidateName(t *testing.T) {
	v := &Validator{}

	assert.NoError(t, v.ValidateName("María José", "nombre"))
	assert.NoError(t, v.ValidateName("O'Connor", "nombre"))

	assert.Error(t, v.ValidateName("", "nombre"))
	assert.Error(t, v.ValidateName("A", "nombre"))
	assert.Error(t, v.ValidateName("Robert; DROP TABLE", "nombre"))
}

package application

import (
	"fmt"
	"regexp"
	"strings"
)

// Validator contiene las validaciones del formulario de contacto y del
// checkout. Los mensajes van en castellano porque se muestran tal cual
// en la landing.
type Validator struct{}

var (
	emailFormatRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneFormatRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
	nameFormatRegex  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s\-']+$`)
)

// ValidateEmail valida el formato de un email
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("el email es requerido")
	}

	if !emailFormatRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}

	return nil
}

// ValidatePhone valida el formato de un teléfono
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("el teléfono es requerido")
	}

	// Limpiar espacios, guiones y paréntesis
	cleanPhone := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)

	if !phoneFormatRegex.MatchString(cleanPhone) {
		return fmt.Errorf("el teléfono '%s' debe tener entre 7 y 15 dígitos", phone)
	}

	return nil
}

// ValidateName valida que un nombre no esté vacío y tenga formato válido
func (v *Validator) ValidateName(name, fieldName string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("el %s es requerido", fieldName)
	}

	if len(name) < 2 {
		return fmt.Errorf("el %s debe tener al menos 2 caracteres", fieldName)
	}

	if len(name) > 50 {
		return fmt.Errorf("el %s no puede tener más de 50 caracteres", fieldName)
	}

	if !nameFormatRegex.MatchString(name) {
		return fmt.Errorf("el %s contiene caracteres no válidos", fieldName)
	}

	return nil
}

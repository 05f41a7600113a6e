package domain

import "time"

type EstadoFormulario string

const (
	EstadoNuevo      EstadoFormulario = "Nuevo"
	EstadoRespondido EstadoFormulario = "Respondido"
)

// CreateContactRequest es el payload del formulario de contacto de la
// landing. SelectedFeatures y TotalPrice llegan cuando el visitante armó
// un plan con add-ons antes de consultar.
type CreateContactRequest struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Plan             string   `json:"plan"`
	Message          string   `json:"message"`
	SelectedFeatures []string `json:"selectedFeatures"`
	TotalPrice       float64  `json:"totalPrice"`
}

type Contact struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Plan             string           `json:"plan"`
	Message          string           `json:"message"`
	SelectedFeatures []string         `json:"selectedFeatures"`
	TotalPrice       float64          `json:"totalPrice"`
	Estado           EstadoFormulario `json:"estado"`
	FechaEnvio       time.Time        `json:"fechaEnvio"`
	FechaRespuesta   *time.Time       `json:"fechaRespuesta,omitempty"`
}

package domain

import (
	"context"
	"time"
)

// StepID identifica la posición actual dentro del guion de la demo.
// Es un conjunto cerrado: cualquier valor fuera de él se trata como
// estado corrupto y el resolver vuelve al estado inicial.
type StepID string

const (
	StepWelcome           StepID = "welcome"
	StepAskBusinessType   StepID = "ask_business_type"
	StepSelectScenario    StepID = "select_scenario_for_business_type"
	StepFinalCallToAction StepID = "final_call_to_action"
	StepDemoEnd           StepID = "demo_end"
)

// SimulationStep construye el StepID de un paso de simulación para un
// par rubro+escenario (p.ej. "simulate_servicios_agendamiento").
func SimulationStep(v Vertical, scenarioSlug string) StepID {
	return StepID("simulate_" + string(v) + "_" + scenarioSlug)
}

// Vertical es el rubro de negocio que el visitante elige al inicio de la demo.
type Vertical string

const (
	VerticalServicios Vertical = "servicios"
	VerticalVentas    Vertical = "ventas"
	VerticalEducacion Vertical = "educacion"
	VerticalSalud     Vertical = "salud"
	VerticalFreelance Vertical = "freelance"
	VerticalOtro      Vertical = "otro"
)

// DialogueState es el estado completo de la demo guionada. Se reemplaza
// en cada turno, nunca se muta en el lugar: Resolve devuelve siempre un
// estado nuevo.
type DialogueState struct {
	Active      bool              `json:"active"`
	Step        StepID            `json:"step"`
	Vertical    Vertical          `json:"vertical,omitempty"`
	Scenario    string            `json:"scenario,omitempty"`
	ContextData map[string]string `json:"contextData,omitempty"`
}

// InitialDialogueState es el estado inactivo con el que arranca (y al que
// vuelve) toda sesión.
func InitialDialogueState() DialogueState {
	return DialogueState{
		Active: false,
		Step:   StepWelcome,
	}
}

// ActivatedDialogueState es el estado inmediatamente posterior a encender la demo.
func ActivatedDialogueState() DialogueState {
	return DialogueState{
		Active: true,
		Step:   StepAskBusinessType,
	}
}

// WithContext devuelve una copia del estado con un valor agregado al
// data bag. Copia el mapa para no compartir memoria entre turnos.
func (s DialogueState) WithContext(key, value string) DialogueState {
	data := make(map[string]string, len(s.ContextData)+1)
	for k, v := range s.ContextData {
		data[k] = v
	}
	data[key] = value
	s.ContextData = data
	return s
}

type ChatMessage struct {
	Sender string `json:"sender"` // "user" | "bot"
	Text   string `json:"text"`
}

// SuggestionChip es un botón de sugerencia: al hacer clic se envía Value
// como si el visitante lo hubiera tipeado.
type SuggestionChip struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DemoSession agrupa el transcript y el estado de una visita. Vive solo
// en memoria, con TTL; una sesión es un tab del navegador.
type DemoSession struct {
	ID        string        `json:"id"`
	State     DialogueState `json:"state"`
	Messages  []ChatMessage `json:"messages"`
	Turn      int           `json:"turn"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type DemoChatRequest struct {
	SessionID   *string `json:"sessionId,omitempty"`
	Message     string  `json:"message"`
	DemoEnabled bool    `json:"demoEnabled"`
}

type DemoChatResponse struct {
	SessionID     string           `json:"sessionId"`
	Reply         string           `json:"reply"`
	Suggestions   []SuggestionChip `json:"suggestions"`
	State         DialogueState    `json:"state"`
	TypingDelayMs int              `json:"typingDelayMs"`
}

// Lead es el par nombre+email capturado al final de la demo guionada.
type Lead struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Vertical  string    `json:"vertical,omitempty"`
	Scenario  string    `json:"scenario,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStore guarda sesiones de demo. La implementación es en memoria:
// el estado es de una sola sesión y no sobrevive al proceso.
type SessionStore interface {
	Get(sessionID string) (*DemoSession, bool)
	Save(session *DemoSession)
	Delete(sessionID string)
}

type LeadRepository interface {
	Save(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]Lead, error)
}

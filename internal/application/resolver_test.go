package application

import (
	"testing"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVerticalSelection(t *testing.T) {
	cases := map[string]domain.Vertical{
		"servicios": domain.VerticalServicios,
		"ventas":    domain.VerticalVentas,
		"educacion": domain.VerticalEducacion,
		"salud":     domain.VerticalSalud,
		"freelance": domain.VerticalFreelance,
		"otro":      domain.VerticalOtro,
	}

	for input, want := range cases {
		state := domain.ActivatedDialogueState()
		reply, next := Resolve(state, input)

		assert.Equal(t, domain.StepSelectScenario, next.Step, "input %q", input)
		assert.Equal(t, want, next.Vertical, "input %q", input)
		assert.NotEmpty(t, reply)
	}
}

func TestResolveVerticalWithSlashAndAccents(t *testing.T) {
	state := domain.ActivatedDialogueState()
	_, next := Resolve(state, "Ventas / Ecommerce")

	assert.Equal(t, domain.StepSelectScenario, next.Step)
	assert.Equal(t, domain.VerticalVentas, next.Vertical)

	state = domain.ActivatedDialogueState()
	_, next = Resolve(state, "Educación")
	assert.Equal(t, domain.VerticalEducacion, next.Vertical)
}

func TestResolveUnknownVerticalStays(t *testing.T) {
	state := domain.ActivatedDialogueState()
	reply, next := Resolve(state, "vendo criptomonedas interplanetarias")

	assert.Equal(t, domain.StepAskBusinessType, next.Step)
	assert.Empty(t, next.Vertical)
	assert.Equal(t, replyVerticalNotUnderstood, reply)
}

func TestResolveResetFromAnyState(t *testing.T) {
	states := []domain.DialogueState{
		domain.ActivatedDialogueState(),
		{Active: true, Step: domain.StepSelectScenario, Vertical: domain.VerticalSalud},
		{Active: true, Step: domain.SimulationStep(domain.VerticalVentas, "carritos"), Vertical: domain.VerticalVentas, Scenario: "carritos"},
		{Active: true, Step: domain.StepFinalCallToAction, Vertical: domain.VerticalOtro},
		{Active: true, Step: domain.StepDemoEnd, Vertical: domain.VerticalServicios},
		{Active: false, Step: domain.StepWelcome},
	}

	for _, state := range states {
		reply, next := Resolve(state, "reiniciar simulacion")

		assert.Equal(t, domain.InitialDialogueState(), next, "desde paso %s", state.Step)
		assert.Equal(t, replyReset, reply)
	}
}

func TestResolveMainMenuClearsVerticalAndScenario(t *testing.T) {
	state := domain.DialogueState{
		Active:      true,
		Step:        domain.SimulationStep(domain.VerticalSalud, "citas"),
		Vertical:    domain.VerticalSalud,
		Scenario:    "citas",
		ContextData: map[string]string{"tema": "agendamiento de citas"},
	}

	reply, next := Resolve(state, "menu principal")

	assert.Equal(t, domain.StepAskBusinessType, next.Step)
	assert.True(t, next.Active)
	assert.Empty(t, next.Vertical)
	assert.Empty(t, next.Scenario)
	assert.Empty(t, next.ContextData)
	assert.Equal(t, replyAskBusinessType, reply)
}

func TestResolveFinishCommandJumpsToCallToAction(t *testing.T) {
	state := domain.DialogueState{
		Active:   true,
		Step:     domain.StepSelectScenario,
		Vertical: domain.VerticalFreelance,
	}

	reply, next := Resolve(state, "finalizar demo y contactar")

	assert.Equal(t, domain.StepFinalCallToAction, next.Step)
	assert.Equal(t, domain.VerticalFreelance, next.Vertical)
	assert.Equal(t, replyFinalCallToAction, reply)
}

func TestResolveInactiveActivation(t *testing.T) {
	state := domain.InitialDialogueState()
	reply, next := Resolve(state, "iniciar demo")

	assert.Equal(t, domain.ActivatedDialogueState(), next)
	assert.Equal(t, replyWelcome, reply)
}

func TestResolveInactiveSmallTalkKeepsState(t *testing.T) {
	state := domain.InitialDialogueState()

	for _, input := range []string{"hola", "cuánto cuesta el plan", "gracias", "quiero hablar con un asesor"} {
		reply, next := Resolve(state, input)

		assert.Equal(t, state, next, "input %q", input)
		assert.NotEqual(t, replyInactiveFallback, reply, "input %q debería tener respuesta propia", input)
	}

	reply, next := Resolve(state, "xyzzy")
	assert.Equal(t, state, next)
	assert.Equal(t, replyInactiveFallback, reply)
}

func TestResolveScenarioSelection(t *testing.T) {
	state := domain.DialogueState{
		Active:   true,
		Step:     domain.StepSelectScenario,
		Vertical: domain.VerticalServicios,
	}

	reply, next := Resolve(state, "agendamiento de turnos")

	assert.Equal(t, domain.SimulationStep(domain.VerticalServicios, "agendamiento"), next.Step)
	assert.Equal(t, "agendamiento", next.Scenario)
	assert.NotEmpty(t, reply)

	// Entrada no reconocida: se queda pidiendo un tema válido.
	reply, stay := Resolve(state, "algo rarísimo")
	assert.Equal(t, state.Step, stay.Step)
	assert.Equal(t, replyScenarioNotUnderstood, reply)
}

func TestResolveSimulationRuleStaysInStep(t *testing.T) {
	state := domain.DialogueState{
		Active:   true,
		Step:     domain.SimulationStep(domain.VerticalServicios, "agendamiento"),
		Vertical: domain.VerticalServicios,
		Scenario: "agendamiento",
	}

	reply, next := Resolve(state, "¿Cómo se agenda un turno?")

	assert.Equal(t, state.Step, next.Step)
	assert.NotEqual(t, replySimulationNotUnderstood, reply)

	reply, next = Resolve(state, "frase que no existe en el guion")
	assert.Equal(t, state.Step, next.Step)
	assert.Equal(t, replySimulationNotUnderstood, reply)
}

func TestResolveSimulationAdvancesToCallToAction(t *testing.T) {
	state := domain.DialogueState{
		Active:   true,
		Step:     domain.SimulationStep(domain.VerticalVentas, "carritos"),
		Vertical: domain.VerticalVentas,
		Scenario: "carritos",
	}

	reply, next := Resolve(state, "¡Quiero esto para mi negocio!")

	assert.Equal(t, domain.StepFinalCallToAction, next.Step)
	assert.Contains(t, reply, "nombre y tu email")
}

func TestResolveFinalCallToActionCapturesLead(t *testing.T) {
	state := domain.DialogueState{
		Active:   true,
		Step:     domain.StepFinalCallToAction,
		Vertical: domain.VerticalServicios,
		Scenario: "precios",
	}

	reply, next := Resolve(state, "Juan Pérez, juan@ejemplo.com")

	require.Equal(t, domain.StepDemoEnd, next.Step)
	assert.Equal(t, "Juan", next.ContextData["nombre"])
	assert.Equal(t, "juan@ejemplo.com", next.ContextData["email"])
	assert.Contains(t, reply, "Juan")
	assert.Contains(t, reply, "juan@ejemplo.com")
}

func TestResolveFinalCallToActionRePrompt(t *testing.T) {
	state := domain.DialogueState{
		Active: true,
		Step:   domain.StepFinalCallToAction,
	}

	reply, next := Resolve(state, "quiero la demo completa")

	assert.Equal(t, domain.StepFinalCallToAction, next.Step)
	assert.Equal(t, replyFinalRePrompt, reply)
}

func TestResolveFinalCallToActionFormatError(t *testing.T) {
	state := domain.DialogueState{
		Active: true,
		Step:   domain.StepFinalCallToAction,
	}

	reply, next := Resolve(state, "no pienso darte mis datos")

	assert.Equal(t, domain.StepFinalCallToAction, next.Step)
	assert.Equal(t, replyFinalFormatError, reply)
}

func TestResolveDemoEndIsTerminal(t *testing.T) {
	state := domain.DialogueState{
		Active:   true,
		Step:     domain.StepDemoEnd,
		Vertical: domain.VerticalOtro,
	}

	for _, input := range []string{"hola", "servicios", "finalizar demo y contactar", "menu principal"} {
		reply, next := Resolve(state, input)

		assert.Equal(t, domain.StepDemoEnd, next.Step, "input %q", input)
		assert.Equal(t, replyDemoEnd, reply, "input %q", input)
	}

	// La única salida garantizada es el reset global.
	_, next := Resolve(state, "reset")
	assert.Equal(t, domain.InitialDialogueState(), next)
}

func TestResolveUnknownStepResets(t *testing.T) {
	state := domain.DialogueState{
		Active: true,
		Step:   domain.StepID("paso_que_no_existe"),
	}

	reply, next := Resolve(state, "hola")

	assert.Equal(t, domain.InitialDialogueState(), next)
	assert.Equal(t, replyUnknownStep, reply)
}

func TestResolveDoesNotMutateInputState(t *testing.T) {
	state := domain.DialogueState{
		Active:      true,
		Step:        domain.StepFinalCallToAction,
		ContextData: map[string]string{"tema": "precios"},
	}

	_, next := Resolve(state, "Ana, ana@test.com")

	assert.Equal(t, domain.StepFinalCallToAction, state.Step)
	assert.NotContains(t, state.ContextData, "email")
	assert.Contains(t, next.ContextData, "email")
	assert.Equal(t, "precios", next.ContextData["tema"])
}

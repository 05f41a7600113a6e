package application

import (
	"fmt"
	"strings"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
)

// Resolve es el corazón de la demo: recibe el estado actual y el texto
// crudo del visitante, y devuelve la respuesta del bot junto con el
// estado siguiente. Es una función pura: mismo estado + mismo texto,
// misma salida. Nunca falla; toda rama sin match degrada a una
// respuesta aclaratoria (una demo no puede quedarse sin salida).
//
// Orden de prioridad (la primera regla que matchea gana):
//  1. reiniciar simulación (en cualquier paso)
//  2. menú principal (con la demo activa)
//  3. finalizar demo y contactar (con la demo activa)
//  4. manejo con demo apagada (activación explícita o small talk)
//  5. despacho por paso contra las tablas del guion
func Resolve(state domain.DialogueState, raw string) (string, domain.DialogueState) {
	normalized := Normalize(raw)

	if matchesAny(normalized, resetTriggers) {
		return replyReset, domain.InitialDialogueState()
	}

	// Desde el cierre de la demo la única salida es el reset global.
	if state.Active && state.Step != domain.StepDemoEnd && matchesAny(normalized, menuTriggers) {
		return replyAskBusinessType, domain.ActivatedDialogueState()
	}

	if state.Active && state.Step != domain.StepDemoEnd && matchesAny(normalized, finishTriggers) {
		next := state
		next.Step = domain.StepFinalCallToAction
		return replyFinalCallToAction, next
	}

	if !state.Active {
		return resolveInactive(state, normalized)
	}

	switch state.Step {
	case domain.StepWelcome:
		// La activación deja el paso en ask_business_type, así que esto
		// solo se alcanza con un estado armado a mano.
		return replyWelcome, domain.ActivatedDialogueState()
	case domain.StepAskBusinessType:
		return resolveBusinessType(state, normalized)
	case domain.StepSelectScenario:
		return resolveScenarioSelection(state, normalized)
	case domain.StepFinalCallToAction:
		return resolveFinalCallToAction(state, raw, normalized)
	case domain.StepDemoEnd:
		return replyDemoEnd, state
	default:
		if _, sc := scenarioByStep(state.Step); sc != nil {
			return resolveSimulation(state, normalized)
		}
		// Paso desconocido: estado corrupto, volvemos al inicio.
		return replyUnknownStep, domain.InitialDialogueState()
	}
}

// resolveInactive maneja los mensajes con la demo apagada: la frase de
// arranque la enciende, el resto recibe respuestas de cortesía sin
// tocar el estado.
func resolveInactive(state domain.DialogueState, normalized string) (string, domain.DialogueState) {
	if matchesAny(normalized, startTriggers) {
		return replyWelcome, domain.ActivatedDialogueState()
	}

	for _, rule := range inactiveSmallTalk {
		if matchesAny(normalized, rule.Triggers) {
			return rule.Reply, state
		}
	}

	return replyInactiveFallback, state
}

func resolveBusinessType(state domain.DialogueState, normalized string) (string, domain.DialogueState) {
	vs := verticalByInput(normalized)
	if vs == nil {
		return replyVerticalNotUnderstood, state
	}

	next := state
	next.Vertical = vs.Vertical
	next.Step = domain.StepSelectScenario
	return vs.Framing, next
}

func resolveScenarioSelection(state domain.DialogueState, normalized string) (string, domain.DialogueState) {
	vs := verticalScriptFor(state.Vertical)
	if vs == nil {
		// Selección de escenario sin rubro elegido: no debería pasar.
		return replyUnknownStep, domain.InitialDialogueState()
	}

	for i := range vs.Scenarios {
		sc := &vs.Scenarios[i]
		if containsTrigger(normalized, sc.Keyword) {
			next := state.WithContext("tema", sc.Keyword)
			next.Scenario = sc.Slug
			next.Step = domain.SimulationStep(vs.Vertical, sc.Slug)
			return sc.Intro, next
		}
	}

	return replyScenarioNotUnderstood, state
}

func resolveSimulation(state domain.DialogueState, normalized string) (string, domain.DialogueState) {
	_, sc := scenarioByStep(state.Step)
	if sc == nil {
		return replyUnknownStep, domain.InitialDialogueState()
	}

	for _, rule := range sc.Rules {
		if !matchesAny(normalized, rule.Triggers) {
			continue
		}
		if rule.Next == "" {
			return rule.Reply, state
		}
		next := state
		next.Step = rule.Next
		reply := rule.Reply
		if rule.Next == domain.StepFinalCallToAction {
			reply = rule.Reply + "\n\n" + replyFinalCallToAction
		}
		return reply, next
	}

	return replySimulationNotUnderstood, state
}

// resolveFinalCallToAction corre el extractor de contacto sobre el texto
// crudo. Con un email usable cierra la demo y guarda el lead en el
// contexto; sin email, reitera el pedido o avisa del formato.
func resolveFinalCallToAction(state domain.DialogueState, raw, normalized string) (string, domain.DialogueState) {
	name, email := ExtractContact(raw)
	if email != "" {
		next := state.WithContext("nombre", name).WithContext("email", email)
		next.Step = domain.StepDemoEnd
		reply := fmt.Sprintf("¡Gracias, %s! 🎉 Registré tu contacto (%s) y el equipo de IABOT "+
			"te va a escribir muy pronto para armar tu demo personalizada.\n\n"+
			"Mientras tanto, podés mirar nuestros planes en la sección Planes. 😉", name, email)
		return reply, next
	}

	if matchesAny(normalized, finalRePromptTriggers) {
		return replyFinalRePrompt, state
	}

	return replyFinalFormatError, state
}

func containsTrigger(normalized, trigger string) bool {
	return strings.Contains(normalized, trigger)
}

func matchesAny(normalized string, triggers []string) bool {
	for _, t := range triggers {
		if containsTrigger(normalized, t) {
			return true
		}
	}
	return false
}

package application

import (
	"github.com/Maryncell/iabot-landing-page/internal/domain"
)

// Suggestions arma los chips de sugerencia para el estado dado. Lee las
// mismas tablas que el resolver, así todo chip produce una transición
// reconocida. Sin efectos secundarios: se puede llamar en cada render.
//
// El orden es estable y los chips se deduplican por Value (gana la
// primera aparición).
func Suggestions(state domain.DialogueState) []domain.SuggestionChip {
	if !state.Active {
		return dedupeChips([]domain.SuggestionChip{chipStart})
	}

	var chips []domain.SuggestionChip

	switch state.Step {
	case domain.StepWelcome, domain.StepAskBusinessType:
		for i := range script {
			chips = append(chips, domain.SuggestionChip{
				Label: script[i].Label,
				Value: script[i].Triggers[0],
			})
		}

	case domain.StepSelectScenario:
		chips = append(chips, chipMenu)
		if vs := verticalScriptFor(state.Vertical); vs != nil {
			for i := range vs.Scenarios {
				chips = append(chips, domain.SuggestionChip{
					Label: vs.Scenarios[i].Label,
					Value: vs.Scenarios[i].Keyword,
				})
			}
		}

	case domain.StepFinalCallToAction:
		chips = append(chips, domain.SuggestionChip{
			Label: "🎥 Quiero la demo completa",
			Value: finalRePromptTriggers[0],
		})

	case domain.StepDemoEnd:
		// El cierre no ofrece chips; el mensaje final indica cómo reiniciar.

	default:
		if _, sc := scenarioByStep(state.Step); sc != nil {
			chips = append(chips, chipMenu)
			for _, rule := range sc.Rules {
				chips = append(chips, domain.SuggestionChip{
					Label: rule.Label,
					Value: rule.Triggers[0],
				})
			}
		}
	}

	if state.Step != domain.StepWelcome && state.Step != domain.StepDemoEnd {
		chips = append(chips, chipReset)
	}
	if state.Step != domain.StepWelcome && state.Step != domain.StepFinalCallToAction && state.Step != domain.StepDemoEnd {
		chips = append(chips, chipFinish)
	}

	return dedupeChips(chips)
}

func dedupeChips(chips []domain.SuggestionChip) []domain.SuggestionChip {
	seen := make(map[string]bool, len(chips))
	out := make([]domain.SuggestionChip, 0, len(chips))
	for _, chip := range chips {
		if seen[chip.Value] {
			continue
		}
		seen[chip.Value] = true
		out = append(out, chip)
	}
	return out
}

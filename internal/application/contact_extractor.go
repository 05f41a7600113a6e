package application

import (
	"regexp"
	"strings"
)

// NombreClientePorDefecto se usa cuando no se pudo extraer un nombre
// razonable del mensaje.
const NombreClientePorDefecto = "Cliente Interesado"

var emailRegex = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)

// Frases con las que la gente suele presentarse. Las más largas van
// primero para que "soy el" gane sobre "soy".
var nameIntroPhrases = [][]string{
	{"mi", "nombre", "es"},
	{"me", "llamo", "es"},
	{"me", "llamo"},
	{"mi", "nombre"},
	{"soy", "el"},
	{"soy"},
}

// ExtractContact extrae email y nombre de un mensaje libre. Es una
// heurística de mejor esfuerzo: ante entrada ambigua o malformada
// degrada al nombre por defecto y/o email vacío, nunca falla.
// El email se busca sobre el texto crudo (sin normalizar); email == ""
// significa que no se encontró ninguno.
func ExtractContact(raw string) (name, email string) {
	email = emailRegex.FindString(raw)
	if email == "" {
		return NombreClientePorDefecto, ""
	}

	remaining := strings.Replace(raw, email, "", 1)

	name = nameFromIntroPhrase(remaining)
	if name == "" {
		name = firstUsableToken(remaining, "y")
	}
	if name == "" {
		name = firstUsableToken(raw, "mi", "es")
	}

	name = sanitizeName(name)
	return name, email
}

// nameFromIntroPhrase busca una frase de presentación (insensible a
// mayúsculas y tildes) y devuelve el token original que la sigue.
func nameFromIntroPhrase(remaining string) string {
	tokens := strings.Fields(remaining)
	normTokens := make([]string, len(tokens))
	for i, t := range tokens {
		normTokens[i] = Normalize(t)
	}

	for _, phrase := range nameIntroPhrases {
		for i := 0; i+len(phrase) < len(tokens)+1; i++ {
			if !phraseMatchesAt(normTokens, phrase, i) {
				continue
			}
			next := i + len(phrase)
			if next < len(tokens) {
				return strings.Trim(tokens[next], ",.;:-")
			}
		}
	}
	return ""
}

func phraseMatchesAt(normTokens, phrase []string, at int) bool {
	for j, word := range phrase {
		if strings.Trim(normTokens[at+j], ",.;:-") != word {
			return false
		}
	}
	return true
}

// firstUsableToken devuelve el primer token del texto (separado por
// espacios, comas, puntos o guiones) que no esté en la lista de
// descartes. "y" suelto, "mi" y "es" son restos degenerados de frases.
func firstUsableToken(text string, reject ...string) string {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '.' || r == '-'
	})

	for _, tok := range tokens {
		lowered := strings.ToLower(tok)
		rejected := false
		for _, r := range reject {
			if lowered == r {
				rejected = true
				break
			}
		}
		if !rejected {
			return tok
		}
	}
	return ""
}

// sanitizeName aplica los guardrails finales: largo mínimo, tope de 30
// caracteres y rechazo de fragmentos de email mal extraídos.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)

	lowered := strings.ToLower(name)
	if len(name) < 2 || strings.Contains(lowered, "email") || strings.Contains(lowered, "e-mail") {
		return NombreClientePorDefecto
	}

	if len(name) > 30 {
		runes := []rune(name)
		if len(runes) > 30 {
			name = string(runes[:30]) + "..."
		}
	}
	return name
}

package game

import "strings"

// Language is an ISO 639-1 language code.
type Language string

const (
	LangEnglish Language = "en"
	LangSpanish Language = "es"
	LangFrench  Language = "fr"
	LangGerman  Language = "de"
)

// languageOrder is the cycle walked by the menu's language button.
var languageOrder = []Language{LangEnglish, LangSpanish, LangFrench, LangGerman}

// uiStrings holds every translated UI string, keyed by language then by
// string key. English is the fallback for missing keys.
var uiStrings = map[Language]map[string]string{
	LangEnglish: {
		"subtitle":        "Match the leftmost train's color!",
		"start":           "Start",
		"quit":            "Quit",
		"play_again":      "Play Again",
		"menu":            "Menu",
		"sound_on":        "Sound On",
		"sound_off":       "Sound Off",
		"dark":            "Dark",
		"light":           "Light",
		"score":           "Score",
		"high_score":      "High Score",
		"level":           "Level",
		"mistakes_left":   "Mistakes left",
		"combo":           "Combo",
		"wrong_color":     "Wrong Color!",
		"super":           "SUPER!",
		"hint":            "Click a colored train below!",
		"game_over":       "Game Over",
		"all_matched":     "All Trains Matched!",
		"new_record":      "New Record!",
		"express_signals": "Express Signals",
		"dense_fog":       "Dense Fog",
	},
	LangSpanish: {
		"subtitle":        "¡Iguala el color del tren de la izquierda!",
		"start":           "Empezar",
		"quit":            "Salir",
		"play_again":      "Jugar de nuevo",
		"menu":            "Menú",
		"sound_on":        "Sonido sí",
		"sound_off":       "Sonido no",
		"dark":            "Oscuro",
		"light":           "Claro",
		"score":           "Puntos",
		"high_score":      "Récord",
		"level":           "Nivel",
		"mistakes_left":   "Fallos restantes",
		"combo":           "Combo",
		"wrong_color":     "¡Color incorrecto!",
		"super":           "¡SÚPER!",
		"hint":            "¡Pulsa un tren de color abajo!",
		"game_over":       "Fin del juego",
		"all_matched":     "¡Todos los trenes emparejados!",
		"new_record":      "¡Nuevo récord!",
		"express_signals": "Señales exprés",
		"dense_fog":       "Niebla densa",
	},
	LangFrench: {
		"subtitle":        "Trouvez la couleur du train de gauche !",
		"start":           "Jouer",
		"quit":            "Quitter",
		"play_again":      "Rejouer",
		"menu":            "Menu",
		"sound_on":        "Son activé",
		"sound_off":       "Son coupé",
		"dark":            "Sombre",
		"light":           "Clair",
		"score":           "Score",
		"high_score":      "Record",
		"level":           "Niveau",
		"mistakes_left":   "Erreurs restantes",
		"combo":           "Combo",
		"wrong_color":     "Mauvaise couleur !",
		"super":           "SUPER !",
		"hint":            "Cliquez sur un train coloré en bas !",
		"game_over":       "Partie terminée",
		"all_matched":     "Tous les trains assortis !",
		"new_record":      "Nouveau record !",
		"express_signals": "Signaux express",
		"dense_fog":       "Brouillard dense",
	},
	LangGerman: {
		"subtitle":        "Finde die Farbe des linken Zugs!",
		"start":           "Start",
		"quit":            "Beenden",
		"play_again":      "Nochmal",
		"menu":            "Menü",
		"sound_on":        "Ton an",
		"sound_off":       "Ton aus",
		"dark":            "Dunkel",
		"light":           "Hell",
		"score":           "Punkte",
		"high_score":      "Rekord",
		"level":           "Level",
		"mistakes_left":   "Fehler übrig",
		"combo":           "Combo",
		"wrong_color":     "Falsche Farbe!",
		"super":           "SUPER!",
		"hint":            "Klicke unten auf einen farbigen Zug!",
		"game_over":       "Game Over",
		"all_matched":     "Alle Züge zugeordnet!",
		"new_record":      "Neuer Rekord!",
		"express_signals": "Express-Signale",
		"dense_fog":       "Dichter Nebel",
	},
}

// LanguageManager resolves UI strings for the active language.
type LanguageManager struct {
	current Language
}

// NewLanguageManager creates a manager for the given language. Unknown or
// empty codes fall back to English.
func NewLanguageManager(lang Language) *LanguageManager {
	if _, ok := uiStrings[lang]; !ok {
		lang = LangEnglish
	}
	return &LanguageManager{current: lang}
}

// Current returns the active language.
func (lm *LanguageManager) Current() Language {
	return lm.current
}

// Label returns the short button label for the active language, e.g. "EN".
func (lm *LanguageManager) Label() string {
	return strings.ToUpper(string(lm.current))
}

// Cycle switches to the next language in the fixed order and returns it.
func (lm *LanguageManager) Cycle() Language {
	for i, lang := range languageOrder {
		if lang == lm.current {
			lm.current = languageOrder[(i+1)%len(languageOrder)]
			return lm.current
		}
	}
	lm.current = LangEnglish
	return lm.current
}

// T returns the string for key in the active language, falling back to
// English and finally to the key itself.
func (lm *LanguageManager) T(key string) string {
	if s, ok := uiStrings[lm.current][key]; ok {
		return s
	}
	if s, ok := uiStrings[LangEnglish][key]; ok {
		return s
	}
	return key
}

// Package i18n holds the bilingual (Spanish/English) UI strings.
package i18n

// Locale selects the display language. Spanish is the default, matching
// the audience the game was written for.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// ParseLocale normalizes a locale string, falling back to Spanish.
func ParseLocale(s string) Locale {
	if s == string(LocaleEN) {
		return LocaleEN
	}
	return LocaleES
}

// Strings is the full set of translatable UI text.
type Strings struct {
	Title        string
	Subtitle     string
	Loading      string
	CreateTitle  string
	NameLabel    string
	NameMinError string
	SelectType   string
	HatchButton  string

	StatsTitle string
	Happiness  string
	Energy     string
	Hunger     string

	EvolutionLabel string
	StageBaby      string
	StageAdult     string
	StageFull      string
	NextEvolution  string
	MaxEvolution   string

	FeedButton   string
	PlayButton   string
	RestButton   string
	ChatButton   string
	ResetButton  string
	QuitButton   string
	ConfirmReset string
	Yes          string
	No           string
	GameOver     string

	Feeding           string
	NotEnoughCells    string
	ChatPlaceholder   string
	ChatGreeting      string
	FallbackReply     string
	MemorySaved       string
	MemoryRecalled    string
	RewardTitle       string
	RewardButton      string
	RewardClaimed     string
	Cells             string
	UnreadOne         string
	UnreadMany        string

	RescueOffer    string
	RescueQuestion string
	RescueCorrect  string
	RescueHint     string
	RescueRotate   string
	RescueDeclined string
	RescueHasFunds string
	RescueQuota    string
}

var strings = map[Locale]Strings{
	LocaleEN: {
		Title:        "Regenmon",
		Subtitle:     "Post-Apocalyptic Virtual Pet",
		Loading:      "Loading...",
		CreateTitle:  "Create Your Regenmon",
		NameLabel:    "Name (2-15 characters):",
		NameMinError: "Minimum 2 characters",
		SelectType:   "Select an Archetype:",
		HatchButton:  "Hatch!",

		StatsTitle: "Statistics",
		Happiness:  "Happiness",
		Energy:     "Energy",
		Hunger:     "Satiety",

		EvolutionLabel: "Evolution",
		StageBaby:      "Baby",
		StageAdult:     "Adult",
		StageFull:      "Full",
		NextEvolution:  "Next evolution in",
		MaxEvolution:   "Max evolution reached!",

		FeedButton:   "Feed",
		PlayButton:   "Play",
		RestButton:   "Rest",
		ChatButton:   "Chat",
		ResetButton:  "Reset",
		QuitButton:   "Quit",
		ConfirmReset: "Are you sure you want to abandon your Regenmon?",
		Yes:          "Yes",
		No:           "No",
		GameOver:     "GAME OVER",

		Feeding:         "Feeding...",
		NotEnoughCells:  "Not enough cells to feed!",
		ChatPlaceholder: "Say something...",
		ChatGreeting:    "Say hello to your Regenmon!",
		FallbackReply:   "... (sleeping)",
		MemorySaved:     "Memory saved",
		MemoryRecalled:  "Memory recalled",
		RewardTitle:     "Daily Reward",
		RewardButton:    "Open chest",
		RewardClaimed:   "Claimed!",
		Cells:           "Cells",
		UnreadOne:       "1 new message",
		UnreadMany:      "%d new messages",

		RescueOffer:    "You're out of cells! Want to answer a question to earn some? 🪙",
		RescueQuestion: "Here it goes: %s",
		RescueCorrect:  "Correct! You earned %d cells! Open your reward chest! 🎁",
		RescueHint:     "Not quite... Hint: it starts with '%s'. Try again!",
		RescueRotate:   "Let's try a different one: %s",
		RescueDeclined: "Okay, no worries! Ask me whenever you want. 😺",
		RescueHasFunds: "You still have cells! Spend them before asking for more. 😼",
		RescueQuota:    "You've used all your rescues for today. Come back tomorrow! 🌙",
	},
	LocaleES: {
		Title:        "Regenmon",
		Subtitle:     "Mascota Virtual Post-Apocaliptica",
		Loading:      "Cargando...",
		CreateTitle:  "Crea tu Regenmon",
		NameLabel:    "Nombre (2-15 caracteres):",
		NameMinError: "Minimo 2 caracteres",
		SelectType:   "Selecciona un Arquetipo:",
		HatchButton:  "Eclosionar!",

		StatsTitle: "Estadisticas",
		Happiness:  "Felicidad",
		Energy:     "Energia",
		Hunger:     "Saciedad",

		EvolutionLabel: "Evolucion",
		StageBaby:      "Bebe",
		StageAdult:     "Adulto",
		StageFull:      "Completo",
		NextEvolution:  "Siguiente evolucion en",
		MaxEvolution:   "Evolucion maxima alcanzada!",

		FeedButton:   "Alimentar",
		PlayButton:   "Jugar",
		RestButton:   "Descansar",
		ChatButton:   "Chat",
		ResetButton:  "Reiniciar",
		QuitButton:   "Salir",
		ConfirmReset: "Seguro que quieres abandonar a tu Regenmon?",
		Yes:          "Si",
		No:           "No",
		GameOver:     "FIN DEL JUEGO",

		Feeding:         "Alimentando...",
		NotEnoughCells:  "No tienes celdas suficientes!",
		ChatPlaceholder: "Escribe algo...",
		ChatGreeting:    "Saluda a tu Regenmon!",
		FallbackReply:   "... (dormido)",
		MemorySaved:     "Memoria guardada",
		MemoryRecalled:  "Memoria recordada",
		RewardTitle:     "Recompensa Diaria",
		RewardButton:    "Abrir cofre",
		RewardClaimed:   "Reclamado!",
		Cells:           "Celdas",
		UnreadOne:       "1 mensaje nuevo",
		UnreadMany:      "%d mensajes nuevos",

		RescueOffer:    "Te quedaste sin celdas! Quieres responder una pregunta para ganar? 🪙",
		RescueQuestion: "Ahi va: %s",
		RescueCorrect:  "Correcto! Ganaste %d celdas! Abre tu cofre de recompensa! 🎁",
		RescueHint:     "No exactamente... Pista: empieza con '%s'. Intenta de nuevo!",
		RescueRotate:   "Probemos con otra: %s",
		RescueDeclined: "Vale, no pasa nada! Pideme cuando quieras. 😺",
		RescueHasFunds: "Todavia tienes celdas! Gastalas antes de pedir mas. 😼",
		RescueQuota:    "Ya usaste todos tus rescates de hoy. Vuelve manana! 🌙",
	},
}

// T returns the string table for a locale.
func T(locale Locale) Strings {
	if s, ok := strings[locale]; ok {
		return s
	}
	return strings[LocaleES]
}

package pet

import "time"

// Game constants
const (
	MaxVital = 100
	MinVital = 0

	// Freshly hatched pets start in the middle of every gauge.
	InitialVital = 50

	// DecayPeriod is how often the vitals-decay loop fires.
	DecayPeriod = 5 * time.Second
	DecayStep   = 1

	// Mood adjustment applied to evolution timing on every decay tick
	// that drained something. Good care speeds growth up, neglect slows
	// it down.
	MoodThreshold  = 50
	MoodBonus      = 5 * time.Second
	MoodPenalty    = -3 * time.Second
	DecayNotifyNth = 5 // every 5th drain tick emits a visual notification

	// Evolution ladder: three stages, each spanning a fixed interval of
	// mood-adjusted elapsed time.
	StageCount    = 3
	StageInterval = 3 * time.Minute

	// Care actions
	CareBoost       = 10
	CareCooldown    = 3 * time.Second
	FeedCost        = 10
	FeedDebitDelay  = 800 * time.Millisecond
	FeedSettleDelay = 2 * time.Second

	// Chat turn side effects (ported from the web client): talking cheers
	// the pet up, long sessions and long messages tire it out.
	ChatHappinessBoost   = 5
	ChatSessionFreeTurns = 3
	ChatSessionSoftCost  = 2 // turns 4..8
	ChatSessionHardTurn  = 8
	ChatSessionHardCost  = 5 // turns beyond 8
	ChatLongMsgLen       = 50
	ChatLongMsgCost      = 1
	ChatVeryLongMsgLen   = 100
	ChatVeryLongMsgCost  = 3

	// TypingDelay is the artificial pause before an assistant reply is
	// shown, so answers do not appear instantaneous.
	TypingDelay = 1 * time.Second

	// History bounds
	MaxActionHistory = 10
	MaxChatHistory   = 20

	// Name validation at hatch time.
	MinNameLen = 2
	MaxNameLen = 15
)

// Archetype is the fixed creature family chosen at hatch time.
type Archetype string

const (
	ArchetypeScrapEye  Archetype = "Scrap-Eye"
	ArchetypeSporeMaw  Archetype = "Spore-Maw"
	ArchetypePrismCore Archetype = "Prism-Core"
)

// ArchetypeInfo carries the display metadata for an archetype.
type ArchetypeInfo struct {
	ID          Archetype
	Name        string
	Label       string
	Icon        string
	Description string
}

// Archetypes is the catalogue shown in the incubator, in display order.
var Archetypes = []ArchetypeInfo{
	{
		ID:          ArchetypeScrapEye,
		Name:        "Industrial",
		Label:       "Ojo de Chatarra",
		Icon:        "⚙️",
		Description: "Forjado con restos de la vieja civilizacion.",
	},
	{
		ID:          ArchetypeSporeMaw,
		Name:        "Fungi",
		Label:       "Fauces de Espora",
		Icon:        "🍄",
		Description: "Nacido de la mutacion organica del yermo.",
	},
	{
		ID:          ArchetypePrismCore,
		Name:        "Mineral",
		Label:       "Nucleo de Prisma",
		Icon:        "💎",
		Description: "Cristalizado por la radiacion residual.",
	},
}

// ValidArchetype reports whether id is one of the fixed archetypes.
func ValidArchetype(id Archetype) bool {
	for _, a := range Archetypes {
		if a.ID == id {
			return true
		}
	}
	return false
}

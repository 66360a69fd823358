package pet

// Status emojis
const (
	StatusEmojiHappy  = "😸"
	StatusEmojiHungry = "🙀"
	StatusEmojiSad    = "😿"
	StatusEmojiTired  = "😾"
	StatusEmojiDead   = "💀"
)

// GetStatus returns the emoji summarizing the pet's most pressing state.
func GetStatus(r Record) string {
	if r.Terminal() {
		return StatusEmojiDead
	}

	lowest := r.Vitals.Hunger
	feeling := StatusEmojiHungry
	if r.Vitals.Energy < lowest {
		lowest = r.Vitals.Energy
		feeling = StatusEmojiTired
	}
	if r.Vitals.Happiness < lowest {
		lowest = r.Vitals.Happiness
		feeling = StatusEmojiSad
	}

	if lowest < 30 {
		return feeling
	}
	return StatusEmojiHappy
}

// GetStatusWithLabel returns status with a text label for the UI.
func GetStatusWithLabel(r Record) string {
	switch status := GetStatus(r); status {
	case StatusEmojiDead:
		return status + " Dead"
	case StatusEmojiHungry:
		return status + " Hungry"
	case StatusEmojiTired:
		return status + " Tired"
	case StatusEmojiSad:
		return status + " Sad"
	default:
		return status + " Happy"
	}
}

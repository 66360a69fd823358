package rescue

import (
	"fmt"
	"strings"
	"time"

	"regenmon/internal/economy"
	"regenmon/internal/i18n"
	"regenmon/internal/pet"
)

// State is the rescue conversation phase.
type State int

const (
	StateIdle State = iota
	StatePrompt
	StateChallenge
)

// Wrong answers tolerated before the question rotates.
const maxWrongAttempts = 3

// OfferCooldown is the minimum spacing between unprompted rescue offers.
const OfferCooldown = 30 * time.Second

// Outcome reports what the machine did with a player message.
type Outcome struct {
	Handled  bool   // message was consumed; do not forward to normal chat
	Reply    string // pet-voiced reply to append, empty if none
	Credited int    // cells granted this turn, zero if none
	Unlocked bool   // the reward chest presentation was unlocked
}

// Machine is the per-session rescue flow. All state is local to one pet
// session and discarded on reset.
type Machine struct {
	ledger *economy.Ledger
	locale i18n.Locale

	state       State
	challenge   Challenge
	wrongCount  int
	lastOfferAt time.Time
}

// NewMachine returns an idle rescue machine.
func NewMachine(ledger *economy.Ledger, locale i18n.Locale) *Machine {
	return &Machine{ledger: ledger, locale: locale}
}

// State returns the current phase, for the UI.
func (m *Machine) State() State {
	return m.state
}

// Reset drops any in-flight challenge, for pet teardown.
func (m *Machine) Reset() {
	m.state = StateIdle
	m.wrongCount = 0
	m.lastOfferAt = time.Time{}
}

// Offer is the passive watchdog hook, called on a timer. When the pet is
// broke, under quota and nothing is in flight, it raises the rescue
// prompt. Offers are debounced so a declined prompt is not immediately
// repeated.
func (m *Machine) Offer(r *pet.Record, now time.Time) (string, bool) {
	if m.state != StateIdle || r.Terminal() {
		return "", false
	}
	if !m.ledger.RescueEligible(r, now) {
		return "", false
	}
	if !m.lastOfferAt.IsZero() && now.Sub(m.lastOfferAt) < OfferCooldown {
		return "", false
	}
	m.state = StatePrompt
	m.lastOfferAt = now
	return i18n.T(m.locale).RescueOffer, true
}

// HandleMessage runs one player message through the rescue flow. An
// Outcome with Handled false means the message belongs to ordinary chat.
func (m *Machine) HandleMessage(r *pet.Record, msg string, now time.Time) Outcome {
	switch m.state {
	case StateChallenge:
		return m.checkAnswer(r, msg, now)
	case StatePrompt:
		return m.resolvePrompt(r, msg, now)
	default:
		if expressesRescueIntent(msg) {
			return m.Request(r, now)
		}
		return Outcome{}
	}
}

// Request handles an explicit ask for cells, whatever the current state.
// The three eligibility outcomes are all distinguishable to the player.
func (m *Machine) Request(r *pet.Record, now time.Time) Outcome {
	s := i18n.T(m.locale)
	if r.Balance > 0 {
		return Outcome{Handled: true, Reply: s.RescueHasFunds}
	}
	if !m.ledger.RescueEligible(r, now) {
		return Outcome{Handled: true, Reply: s.RescueQuota}
	}
	m.startChallenge()
	return Outcome{
		Handled: true,
		Reply:   fmt.Sprintf(s.RescueQuestion, m.challenge.Question(m.locale)),
	}
}

func (m *Machine) resolvePrompt(r *pet.Record, msg string, now time.Time) Outcome {
	s := i18n.T(m.locale)
	switch {
	case matchesWord(msg, affirmatives):
		m.startChallenge()
		return Outcome{
			Handled: true,
			Reply:   fmt.Sprintf(s.RescueQuestion, m.challenge.Question(m.locale)),
		}
	case matchesWord(msg, negatives):
		m.state = StateIdle
		return Outcome{Handled: true, Reply: s.RescueDeclined}
	default:
		// Not an answer to the offer; let normal chat take the turn.
		m.state = StateIdle
		return Outcome{}
	}
}

func (m *Machine) checkAnswer(r *pet.Record, msg string, now time.Time) Outcome {
	s := i18n.T(m.locale)
	answer := strings.ToLower(m.challenge.Answer(m.locale))
	given := strings.ToLower(strings.TrimSpace(msg))

	if strings.Contains(given, answer) {
		m.state = StateIdle
		m.wrongCount = 0
		credited := m.ledger.RescueCredit(r, now)
		return Outcome{
			Handled:  true,
			Reply:    fmt.Sprintf(s.RescueCorrect, credited),
			Credited: credited,
			Unlocked: true,
		}
	}

	m.wrongCount++
	if m.wrongCount >= maxWrongAttempts {
		// Redraw, preferring a question the player is not stuck on.
		prev := m.challenge.ID
		m.startChallenge()
		for i := 0; i < 5 && m.challenge.ID == prev; i++ {
			m.startChallenge()
		}
		return Outcome{
			Handled: true,
			Reply:   fmt.Sprintf(s.RescueRotate, m.challenge.Question(m.locale)),
		}
	}
	hint := string([]rune(answer)[:1])
	return Outcome{Handled: true, Reply: fmt.Sprintf(s.RescueHint, hint)}
}

func (m *Machine) startChallenge() {
	m.challenge = Challenges[pet.RandIntn(len(Challenges))]
	m.state = StateChallenge
	m.wrongCount = 0
}

// Intent detection: a currency word plus a want/need word in the same
// message, matched loosely across both languages.
var (
	targetTokens = []string{"cells", "cell", "celdas", "celda", "monedas", "dinero", "money", "coins"}
	intentTokens = []string{"want", "need", "give", "earn", "quiero", "necesito", "dame", "ganar", "gana", "regalame"}

	affirmatives = []string{"yes", "yeah", "yep", "sure", "ok", "okay", "si", "sí", "claro", "vale", "dale", "bueno"}
	negatives    = []string{"no", "nope", "nah", "later", "luego", "despues"}
)

func expressesRescueIntent(msg string) bool {
	return matchesAny(msg, targetTokens) && matchesAny(msg, intentTokens)
}

func matchesAny(msg string, tokens []string) bool {
	lower := strings.ToLower(msg)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// matchesWord matches whole words only, so "no" does not fire inside
// "know" or "bueno".
func matchesWord(msg string, tokens []string) bool {
	for _, field := range strings.Fields(strings.ToLower(msg)) {
		word := strings.Trim(field, ".,!?¡¿;:")
		for _, tok := range tokens {
			if word == tok {
				return true
			}
		}
	}
	return false
}

// Package engine owns one pet session: every mutation of the record
// funnels through it, timers and delayed callbacks re-read the latest
// committed state here instead of capturing snapshots.
package engine

import (
	"log"
	"time"

	"github.com/google/uuid"

	"regenmon/internal/chat"
	"regenmon/internal/economy"
	"regenmon/internal/i18n"
	"regenmon/internal/pet"
	"regenmon/internal/rescue"
)

// Session is the single writer of a pet record. The UI and timers call
// its methods from one event loop; there is no locking because there is
// no parallelism, only interleaving.
type Session struct {
	record  pet.Record
	ledger  *economy.Ledger
	rescue  *rescue.Machine
	chest   rescue.Chest
	backend chat.Backend
	locale  i18n.Locale
	persist func(pet.Record)

	lastCare   map[pet.ActionKind]time.Time
	drainTicks int
	feedFlight bool
	chatTurns  int
}

// New assembles a session around an existing record. persist is called
// after every commit and must not block; pass nil to run in-memory.
func New(record pet.Record, ledger *economy.Ledger, backend chat.Backend, locale i18n.Locale, persist func(pet.Record)) *Session {
	return &Session{
		record:   record,
		ledger:   ledger,
		rescue:   rescue.NewMachine(ledger, locale),
		backend:  backend,
		locale:   locale,
		persist:  persist,
		lastCare: make(map[pet.ActionKind]time.Time),
	}
}

// Record returns a copy of the latest committed state.
func (s *Session) Record() pet.Record {
	return s.record
}

// Backend exposes the chat collaborator for the UI's async command.
func (s *Session) Backend() chat.Backend {
	return s.backend
}

// Locale returns the session display language.
func (s *Session) Locale() i18n.Locale {
	return s.locale
}

// Tuning exposes the economy knobs for price labels.
func (s *Session) Tuning() economy.Tuning {
	return s.ledger.Tuning()
}

// Terminal reports whether the pet has expired.
func (s *Session) Terminal() bool {
	return s.record.Terminal()
}

func (s *Session) commit() {
	if s.persist != nil {
		s.persist(s.record)
	}
}

// DecayTick runs one pass of the vitals-decay loop. It returns whether
// anything drained, whether this tick should flash the decay
// notification, and whether the pet just expired.
func (s *Session) DecayTick(now time.Time) (changed, notify, expired bool) {
	res := s.record.DecayTick(now)
	if !res.Changed {
		return false, false, false
	}
	s.drainTicks++
	notify = s.drainTicks%pet.DecayNotifyNth == 0
	if res.Expired {
		log.Printf("pet %s expired at %s", s.record.Name, now.Format(time.RFC3339))
	}
	s.commit()
	return true, notify, res.Expired
}

// Care applies a free care action (play or rest). Rejections are silent:
// terminal pet, active cooldown or an already-capped vital all leave the
// record untouched and report false.
func (s *Session) Care(kind pet.ActionKind, now time.Time) bool {
	if s.record.Terminal() || s.onCooldown(kind, now) {
		return false
	}

	var target *int
	switch kind {
	case pet.ActionPlay:
		target = &s.record.Vitals.Happiness
	case pet.ActionRest:
		target = &s.record.Vitals.Energy
	default:
		return false
	}
	if *target >= pet.MaxVital {
		return false
	}

	s.record.Raise(target, pet.CareBoost)
	s.record.AddAction(kind, 0, now)
	s.lastCare[kind] = now
	s.commit()
	return true
}

func (s *Session) onCooldown(kind pet.ActionKind, now time.Time) bool {
	last, ok := s.lastCare[kind]
	return ok && now.Sub(last) < pet.CareCooldown
}

// Feeding is two-phase: BeginFeed validates and opens the flight, the
// UI schedules ResolveFeedDebit after the debit delay and SettleFeed
// after the settle delay. Each phase works against the state current at
// its own firing time, so decay ticks landing in between are preserved.

// BeginFeed opens a feed attempt. Cooldown and terminal rejections are
// silent (false, nil); missing funds are surfaced as an error.
func (s *Session) BeginFeed(now time.Time) (bool, error) {
	if s.record.Terminal() || s.feedFlight || s.onCooldown(pet.ActionFeed, now) {
		return false, nil
	}
	if s.record.Balance < s.ledger.Tuning().FeedCost {
		return false, economy.ErrInsufficientFunds
	}
	s.feedFlight = true
	s.lastCare[pet.ActionFeed] = now
	return true, nil
}

// ResolveFeedDebit is the first delayed phase: charge the meal against
// the latest balance. A balance drained in the meantime aborts cleanly,
// and a pet that expired mid-flight is left frozen.
func (s *Session) ResolveFeedDebit(now time.Time) error {
	if !s.feedFlight {
		return nil
	}
	if s.record.Terminal() {
		s.feedFlight = false
		return nil
	}
	cost := s.ledger.Tuning().FeedCost
	if err := s.ledger.Debit(&s.record, cost); err != nil {
		s.feedFlight = false
		delete(s.lastCare, pet.ActionFeed)
		return err
	}
	s.record.AddAction(pet.ActionFeed, -cost, now)
	s.commit()
	return nil
}

// SettleFeed is the second delayed phase: raise satiety on whatever the
// vitals are now and close the flight. Returns the canned feeding line.
func (s *Session) SettleFeed(now time.Time) (string, bool) {
	if !s.feedFlight {
		return "", false
	}
	s.feedFlight = false
	if s.record.Terminal() {
		return "", false
	}
	s.record.Raise(&s.record.Vitals.Hunger, pet.CareBoost)
	s.commit()
	return chat.RandomFeedingResponse(s.locale), true
}

// FeedInFlight reports whether a feed is between its two phases.
func (s *Session) FeedInFlight() bool {
	return s.feedFlight
}

// TurnResult tells the UI what one submitted message produced.
type TurnResult struct {
	Reply        string // local reply to show after the typing delay
	NeedsBackend bool   // forward the message to the chat backend
	Earned       int    // cells credited by the passive earning trial
	Unlocked     bool   // the reward chest was unlocked this turn
}

// Submit runs one player message through command interception, the
// rescue flow and the chat side effects, in that order.
func (s *Session) Submit(msg string, now time.Time) TurnResult {
	if chat.IsCommand(msg) {
		// Debug affordance: no backend, no turn cost, no earning trial.
		out := chat.Execute(&s.record, msg, now)
		s.record.AppendChat(pet.ChatMessage{
			ID:        uuid.NewString(),
			Role:      pet.RoleAssistant,
			Content:   out,
			Timestamp: now,
		})
		s.commit()
		return TurnResult{Reply: out}
	}

	s.record.AppendChat(pet.ChatMessage{
		ID:        uuid.NewString(),
		Role:      pet.RoleUser,
		Content:   msg,
		Timestamp: now,
	})

	s.chatTurns++
	s.applyTurnCosts(msg)

	res := TurnResult{Earned: s.ledger.ChatEarning(&s.record, now)}

	if out := s.rescue.HandleMessage(&s.record, msg, now); out.Handled {
		if out.Unlocked {
			s.chest.Unlock(out.Credited)
			res.Unlocked = true
		}
		res.Reply = out.Reply
		s.commit()
		return res
	}

	res.NeedsBackend = true
	s.commit()
	return res
}

// Talking cheers the pet up but wears it out: long sessions and long
// messages cost energy.
func (s *Session) applyTurnCosts(msg string) {
	s.record.Raise(&s.record.Vitals.Happiness, pet.ChatHappinessBoost)

	cost := 0
	switch {
	case s.chatTurns > pet.ChatSessionHardTurn:
		cost += pet.ChatSessionHardCost
	case s.chatTurns > pet.ChatSessionFreeTurns:
		cost += pet.ChatSessionSoftCost
	}
	switch {
	case len(msg) > pet.ChatVeryLongMsgLen:
		cost += pet.ChatVeryLongMsgCost
	case len(msg) > pet.ChatLongMsgLen:
		cost += pet.ChatLongMsgCost
	}
	s.record.Raise(&s.record.Vitals.Energy, -cost)
}

// AppendLocalReply records a pet-voiced line produced locally (rescue
// replies, the watchdog offer). Called after the typing delay; a pet
// that expired during the delay stays frozen and the line is dropped.
func (s *Session) AppendLocalReply(text string, now time.Time) pet.ChatMessage {
	if s.record.Terminal() {
		return pet.ChatMessage{}
	}
	msg := pet.ChatMessage{
		ID:        uuid.NewString(),
		Role:      pet.RoleAssistant,
		Content:   text,
		Timestamp: now,
	}
	s.record.AppendChat(msg)
	s.commit()
	return msg
}

// ApplyBackendReply merges the backend's answer into the latest state:
// tags are stripped, MEMORY appends a fact, RECALL marks the message
// for highlighting. A failed call falls back to a fixed line; the
// turn's local effects stay applied either way. A reply landing after
// the pet expired is dropped without touching the frozen record.
func (s *Session) ApplyBackendReply(reply string, callErr error, now time.Time) pet.ChatMessage {
	if s.record.Terminal() {
		return pet.ChatMessage{}
	}
	if callErr != nil {
		log.Printf("chat backend failed: %v", callErr)
		return s.AppendLocalReply(i18n.T(s.locale).FallbackReply, now)
	}

	tags, display := chat.ParseTags(reply)
	msg := pet.ChatMessage{
		ID:        uuid.NewString(),
		Role:      pet.RoleAssistant,
		Content:   display,
		Timestamp: now,
	}
	if tags.HasMemory {
		msg.MemoryIndex = s.record.AddMemory(tags.Memory)
	} else if tags.Recall > 0 && tags.Recall <= len(s.record.Memories) {
		msg.MemoryIndex = tags.Recall
		msg.IsRecall = true
	}
	s.record.AppendChat(msg)
	s.commit()
	return msg
}

// RescueWatchdog is the passive prompt timer hook. When it fires it
// appends the offer to the chat so the player sees the pet asking.
func (s *Session) RescueWatchdog(now time.Time) (string, bool) {
	offer, ok := s.rescue.Offer(&s.record, now)
	if !ok {
		return "", false
	}
	s.AppendLocalReply(offer, now)
	return offer, true
}

// RescueState exposes the FSM phase for the UI.
func (s *Session) RescueState() rescue.State {
	return s.rescue.State()
}

// ChestUnlocked reports whether the reward reveal is pending.
func (s *Session) ChestUnlocked() bool {
	return s.chest.Unlocked()
}

// ClaimChest pops the reward presentation exactly once.
func (s *Session) ClaimChest() (int, bool) {
	amount, ok := s.chest.Claim()
	if ok {
		s.commit()
	}
	return amount, ok
}

// Reset abandons the current pet and hatches a new one. Name length is
// validated here; the archetype must come from the fixed catalogue.
func (s *Session) Reset(name string, archetype pet.Archetype) bool {
	if len([]rune(name)) < pet.MinNameLen || len([]rune(name)) > pet.MaxNameLen {
		return false
	}
	if !pet.ValidArchetype(archetype) {
		return false
	}
	s.record = pet.NewRecord(name, archetype)
	s.rescue.Reset()
	s.chest = rescue.Chest{}
	s.lastCare = make(map[pet.ActionKind]time.Time)
	s.drainTicks = 0
	s.feedFlight = false
	s.chatTurns = 0
	s.commit()
	return true
}

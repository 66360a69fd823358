package pet

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now() }
	RandFloat64 = rand.Float64
	RandIntn    = rand.Intn
)

// Vitals are the three bounded stats driving mood and the terminal state.
type Vitals struct {
	Happiness int `json:"happiness"`
	Energy    int `json:"energy"`
	Hunger    int `json:"hunger"`
}

// Avg returns the mean of the three vitals, used as the mood value.
func (v Vitals) Avg() int {
	return (v.Happiness + v.Energy + v.Hunger) / 3
}

// ActionKind tags a history entry with the operation that produced it.
type ActionKind string

const (
	ActionFeed ActionKind = "feed"
	ActionPlay ActionKind = "play"
	ActionRest ActionKind = "rest"
	ActionEarn ActionKind = "earn"
)

// HistoryEntry is one line of the cells ledger, newest first.
type HistoryEntry struct {
	ID        string     `json:"id"`
	Kind      ActionKind `json:"kind"`
	Amount    int        `json:"amount"` // signed; debits are negative
	Timestamp time.Time  `json:"timestamp"`
}

// ChatRole distinguishes player turns from pet replies.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of the conversation log.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// MemoryIndex is the 1-based memory this message saved or recalled;
	// zero when the message touched no memory.
	MemoryIndex int  `json:"memory_index,omitempty"`
	IsRecall    bool `json:"is_recall,omitempty"`
}

// DailyCounter is a (count, lastResetDate) pair. The date is stored as a
// plain "2006-01-02" string and compared as text, which reproduces the
// timezone-naive reset behavior of the original client.
type DailyCounter struct {
	Count int    `json:"count"`
	Date  string `json:"date"`
}

// DateKey formats an instant as the date-only string used for daily resets.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Effective returns the counter value as of now: zero if the stored date
// is not today, the stored count otherwise.
func (c DailyCounter) Effective(now time.Time) int {
	if c.Date != DateKey(now) {
		return 0
	}
	return c.Count
}

// Add bumps the counter by n, resetting first if the stored date is stale.
func (c *DailyCounter) Add(n int, now time.Time) {
	today := DateKey(now)
	if c.Date != today {
		c.Count = 0
		c.Date = today
	}
	c.Count += n
}

// Record is the aggregate state of one pet. All mutation goes through the
// engine's single update entry point; everything else only reads it.
type Record struct {
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`

	Vitals Vitals `json:"vitals"`

	CreatedAt      time.Time     `json:"created_at"`
	EvolutionBonus time.Duration `json:"evolution_bonus"`
	ExpiredAt      *time.Time    `json:"expired_at,omitempty"`

	Balance       int          `json:"balance"`
	DailyEarnings DailyCounter `json:"daily_earnings"`
	DailyRescue   DailyCounter `json:"daily_rescue"`

	ActionHistory []HistoryEntry `json:"action_history,omitempty"`
	ChatHistory   []ChatMessage  `json:"chat_history,omitempty"`
	Memories      []string       `json:"memories,omitempty"`
}

// NewRecord hatches a fresh pet: vitals at the midpoint, no cells, empty
// histories.
func NewRecord(name string, archetype Archetype) Record {
	return Record{
		Name:      name,
		Archetype: archetype,
		Vitals: Vitals{
			Happiness: InitialVital,
			Energy:    InitialVital,
			Hunger:    InitialVital,
		},
		CreatedAt: TimeNow(),
	}
}

// Terminal reports whether the pet has expired. A terminal record is
// frozen; only an explicit reset replaces it.
func (r *Record) Terminal() bool {
	return r.ExpiredAt != nil
}

// AddAction prepends a ledger entry and truncates to the newest 10.
func (r *Record) AddAction(kind ActionKind, amount int, now time.Time) {
	entry := HistoryEntry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: now,
	}
	r.ActionHistory = append([]HistoryEntry{entry}, r.ActionHistory...)
	if len(r.ActionHistory) > MaxActionHistory {
		r.ActionHistory = r.ActionHistory[:MaxActionHistory]
	}
}

// AppendChat appends a chat turn and truncates to the newest 20.
func (r *Record) AppendChat(msg ChatMessage) {
	r.ChatHistory = append(r.ChatHistory, msg)
	if len(r.ChatHistory) > MaxChatHistory {
		r.ChatHistory = r.ChatHistory[len(r.ChatHistory)-MaxChatHistory:]
	}
}

// AddMemory appends a remembered fact and returns its 1-based index.
func (r *Record) AddMemory(text string) int {
	r.Memories = append(r.Memories, text)
	return len(r.Memories)
}

// DecayResult describes what a single decay tick did.
type DecayResult struct {
	Changed bool // at least one vital was drained
	Expired bool // this tick set the terminal state
}

// DecayTick drains each nonzero vital by one step and applies the mood
// adjustment to evolution timing. Once all three vitals bottom out the
// terminal instant is recorded exactly once; further ticks are no-ops.
func (r *Record) DecayTick(now time.Time) DecayResult {
	if r.Terminal() {
		return DecayResult{}
	}

	var res DecayResult
	drain := func(v *int) {
		if *v > MinVital {
			*v = clampVital(*v - DecayStep)
			res.Changed = true
		}
	}
	drain(&r.Vitals.Happiness)
	drain(&r.Vitals.Energy)
	drain(&r.Vitals.Hunger)

	if !res.Changed {
		return res
	}

	if r.Vitals.Avg() > MoodThreshold {
		r.EvolutionBonus += MoodBonus
	} else {
		r.EvolutionBonus += MoodPenalty
	}

	if r.Vitals.Happiness == 0 && r.Vitals.Energy == 0 && r.Vitals.Hunger == 0 {
		expired := now
		r.ExpiredAt = &expired
		res.Expired = true
	}
	return res
}

// Raise increases one vital by the care boost, clamped to the cap.
func (r *Record) Raise(v *int, amount int) {
	*v = clampVital(*v + amount)
}

// UnreadAssistantSince counts assistant messages newer than the given
// instant, for the chat badge shown while the panel is closed.
func (r *Record) UnreadAssistantSince(since time.Time) int {
	n := 0
	for _, msg := range r.ChatHistory {
		if msg.Role == RoleAssistant && msg.Timestamp.After(since) {
			n++
		}
	}
	return n
}

func clampVital(v int) int {
	if v > MaxVital {
		return MaxVital
	}
	if v < MinVital {
		return MinVital
	}
	return v
}

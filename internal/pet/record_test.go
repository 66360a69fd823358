package pet

import (
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedTime(t *testing.T, now time.Time) {
	t.Helper()
	orig := TimeNow
	TimeNow = func() time.Time { return now }
	t.Cleanup(func() { TimeNow = orig })
}

func TestNewRecordDefaults(t *testing.T) {
	fixedTime(t, testNow)

	r := NewRecord("Chispa", ArchetypeScrapEye)

	if r.Vitals.Happiness != InitialVital || r.Vitals.Energy != InitialVital || r.Vitals.Hunger != InitialVital {
		t.Errorf("expected all vitals at %d, got %+v", InitialVital, r.Vitals)
	}
	if r.Balance != 0 {
		t.Errorf("expected zero balance, got %d", r.Balance)
	}
	if !r.CreatedAt.Equal(testNow) {
		t.Errorf("expected createdAt %v, got %v", testNow, r.CreatedAt)
	}
	if r.Terminal() {
		t.Error("new record must not be terminal")
	}
	if len(r.ActionHistory) != 0 || len(r.ChatHistory) != 0 || len(r.Memories) != 0 {
		t.Error("new record must have empty histories")
	}
}

func TestDecayTickDrainsVitals(t *testing.T) {
	r := NewRecord("Chispa", ArchetypeSporeMaw)
	r.Vitals = Vitals{Happiness: 60, Energy: 60, Hunger: 60}

	res := r.DecayTick(testNow)

	if !res.Changed {
		t.Fatal("tick over nonzero vitals must report a change")
	}
	want := Vitals{Happiness: 59, Energy: 59, Hunger: 59}
	if r.Vitals != want {
		t.Errorf("expected vitals %+v, got %+v", want, r.Vitals)
	}
}

func TestDecayTickMoodAdjustment(t *testing.T) {
	tests := []struct {
		name   string
		vitals Vitals
		want   time.Duration
	}{
		// Mood is evaluated after the drain: 60/60/60 -> avg 59.
		{"good care earns bonus", Vitals{60, 60, 60}, MoodBonus},
		{"neglect earns penalty", Vitals{40, 40, 40}, MoodPenalty},
		{"avg exactly at threshold penalizes", Vitals{51, 51, 51}, MoodPenalty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecord("Chispa", ArchetypeSporeMaw)
			r.Vitals = tt.vitals
			r.DecayTick(testNow)
			if r.EvolutionBonus != tt.want {
				t.Errorf("expected bonus %v, got %v", tt.want, r.EvolutionBonus)
			}
		})
	}
}

func TestDecayTickNoOpWhenBottomedOut(t *testing.T) {
	r := NewRecord("Chispa", ArchetypePrismCore)
	r.Vitals = Vitals{}
	expired := testNow.Add(-time.Hour)
	r.ExpiredAt = &expired

	res := r.DecayTick(testNow)

	if res.Changed || res.Expired {
		t.Errorf("terminal record tick must be a no-op, got %+v", res)
	}
	if !r.ExpiredAt.Equal(expired) {
		t.Error("expiredAt must never move once set")
	}
}

func TestDecayTickTerminalTransition(t *testing.T) {
	// Vitals {0,0,1} -> one tick -> {0,0,0}, expired set once.
	r := NewRecord("Chispa", ArchetypeScrapEye)
	r.Vitals = Vitals{Happiness: 0, Energy: 0, Hunger: 1}

	res := r.DecayTick(testNow)

	if !res.Changed || !res.Expired {
		t.Fatalf("expected terminal transition, got %+v", res)
	}
	if r.Vitals != (Vitals{}) {
		t.Errorf("expected all-zero vitals, got %+v", r.Vitals)
	}
	if r.ExpiredAt == nil || !r.ExpiredAt.Equal(testNow) {
		t.Errorf("expected expiredAt %v, got %v", testNow, r.ExpiredAt)
	}

	// A further tick leaves everything unchanged.
	before := r
	res = r.DecayTick(testNow.Add(DecayPeriod))
	if res.Changed || res.Expired {
		t.Errorf("post-terminal tick must be a no-op, got %+v", res)
	}
	if r.Vitals != before.Vitals || !r.ExpiredAt.Equal(*before.ExpiredAt) {
		t.Error("post-terminal tick must not mutate the record")
	}
}

func TestDecayMonotonicity(t *testing.T) {
	r := NewRecord("Chispa", ArchetypeScrapEye)
	prev := r.Vitals
	for i := 0; i < 200; i++ {
		r.DecayTick(testNow.Add(time.Duration(i) * DecayPeriod))
		if r.Vitals.Happiness > prev.Happiness || r.Vitals.Energy > prev.Energy || r.Vitals.Hunger > prev.Hunger {
			t.Fatalf("decay increased a vital at tick %d: %+v -> %+v", i, prev, r.Vitals)
		}
		if r.Vitals.Happiness < MinVital || r.Vitals.Energy < MinVital || r.Vitals.Hunger < MinVital {
			t.Fatalf("vital went below floor at tick %d: %+v", i, r.Vitals)
		}
		prev = r.Vitals
	}
	if !r.Terminal() {
		t.Error("200 unattended ticks must reach the terminal state")
	}
}

func TestActionHistoryRingBuffer(t *testing.T) {
	r := NewRecord("Chispa", ArchetypeSporeMaw)
	for i := 0; i < 25; i++ {
		r.AddAction(ActionEarn, i, testNow.Add(time.Duration(i)*time.Second))
	}

	if len(r.ActionHistory) != MaxActionHistory {
		t.Fatalf("expected %d entries, got %d", MaxActionHistory, len(r.ActionHistory))
	}
	// Newest first: the last append (amount 24) leads.
	if r.ActionHistory[0].Amount != 24 {
		t.Errorf("expected newest entry first, got amount %d", r.ActionHistory[0].Amount)
	}
	if r.ActionHistory[MaxActionHistory-1].Amount != 15 {
		t.Errorf("expected oldest surviving amount 15, got %d", r.ActionHistory[MaxActionHistory-1].Amount)
	}
	for _, e := range r.ActionHistory {
		if e.ID == "" {
			t.Error("history entries must carry an id")
		}
	}
}

func TestChatHistoryRingBuffer(t *testing.T) {
	r := NewRecord("Chispa", ArchetypePrismCore)
	for i := 0; i < 50; i++ {
		r.AppendChat(ChatMessage{
			ID:        fmt.Sprintf("msg-%d", i),
			Role:      RoleUser,
			Content:   fmt.Sprintf("turn %d", i),
			Timestamp: testNow.Add(time.Duration(i) * time.Second),
		})
	}

	if len(r.ChatHistory) != MaxChatHistory {
		t.Fatalf("expected %d messages, got %d", MaxChatHistory, len(r.ChatHistory))
	}
	// Chronological order, oldest silently dropped.
	if r.ChatHistory[0].ID != "msg-30" || r.ChatHistory[MaxChatHistory-1].ID != "msg-49" {
		t.Errorf("unexpected window: first %s last %s", r.ChatHistory[0].ID, r.ChatHistory[MaxChatHistory-1].ID)
	}
}

func TestAddMemoryIndexing(t *testing.T) {
	r := NewRecord("Chispa", ArchetypeScrapEye)
	if idx := r.AddMemory("loves pizza"); idx != 1 {
		t.Errorf("first memory must be index 1, got %d", idx)
	}
	if idx := r.AddMemory("afraid of rain"); idx != 2 {
		t.Errorf("second memory must be index 2, got %d", idx)
	}
	if len(r.Memories) != 2 {
		t.Errorf("expected 2 memories, got %d", len(r.Memories))
	}
}

func TestDailyCounterReset(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)

	c := DailyCounter{Count: 50, Date: DateKey(yesterday)}
	if got := c.Effective(testNow); got != 0 {
		t.Errorf("stale counter must read 0 today, got %d", got)
	}

	c.Add(3, testNow)
	if c.Count != 3 || c.Date != DateKey(testNow) {
		t.Errorf("expected reset-then-add, got %+v", c)
	}

	c.Add(2, testNow)
	if got := c.Effective(testNow); got != 5 {
		t.Errorf("same-day adds must accumulate, got %d", got)
	}
}

func TestUnreadAssistantSince(t *testing.T) {
	r := NewRecord("Chispa", ArchetypeSporeMaw)
	r.AppendChat(ChatMessage{Role: RoleAssistant, Timestamp: testNow.Add(-time.Minute)})
	r.AppendChat(ChatMessage{Role: RoleUser, Timestamp: testNow.Add(time.Second)})
	r.AppendChat(ChatMessage{Role: RoleAssistant, Timestamp: testNow.Add(2 * time.Second)})

	if got := r.UnreadAssistantSince(testNow); got != 1 {
		t.Errorf("expected 1 unread assistant message, got %d", got)
	}
}

func TestValidArchetype(t *testing.T) {
	for _, a := range Archetypes {
		if !ValidArchetype(a.ID) {
			t.Errorf("catalogue archetype %q reported invalid", a.ID)
		}
	}
	if ValidArchetype("Mecha-Wing") {
		t.Error("unknown archetype reported valid")
	}
}

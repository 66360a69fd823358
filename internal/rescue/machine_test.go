package rescue

import (
	"strings"
	"testing"
	"time"

	"regenmon/internal/economy"
	"regenmon/internal/i18n"
	"regenmon/internal/pet"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestMachine(t *testing.T, challengeIdx int) (*Machine, *pet.Record) {
	t.Helper()
	orig := pet.RandIntn
	pet.RandIntn = func(int) int { return challengeIdx }
	t.Cleanup(func() { pet.RandIntn = orig })

	m := NewMachine(economy.NewLedger(economy.DefaultTuning()), i18n.LocaleEN)
	r := pet.NewRecord("Chispa", pet.ArchetypeScrapEye)
	return m, &r
}

func TestOfferForBrokePet(t *testing.T) {
	m, r := newTestMachine(t, 0)

	reply, ok := m.Offer(r, testNow)
	if !ok || reply == "" {
		t.Fatal("broke pet must get a rescue offer")
	}
	if m.State() != StatePrompt {
		t.Errorf("expected prompt state, got %v", m.State())
	}

	// The offer is debounced, not repeated immediately.
	m.Reset()
	m.lastOfferAt = testNow
	if _, ok := m.Offer(r, testNow.Add(time.Second)); ok {
		t.Error("offer must respect the cooldown")
	}
	if _, ok := m.Offer(r, testNow.Add(OfferCooldown)); !ok {
		t.Error("offer must fire again after the cooldown")
	}
}

func TestOfferSkipsIneligible(t *testing.T) {
	m, r := newTestMachine(t, 0)

	r.Balance = 10
	if _, ok := m.Offer(r, testNow); ok {
		t.Error("funded pet must not be offered a rescue")
	}

	r.Balance = 0
	expired := testNow
	r.ExpiredAt = &expired
	if _, ok := m.Offer(r, testNow); ok {
		t.Error("terminal pet must not be offered a rescue")
	}
}

func TestPromptAcceptAndSolve(t *testing.T) {
	// Challenge 0: "What color is the sun?" -> "yellow".
	m, r := newTestMachine(t, 0)

	m.Offer(r, testNow)
	out := m.HandleMessage(r, "yes please!", testNow)
	if !out.Handled || m.State() != StateChallenge {
		t.Fatalf("affirmative must start the challenge, got %+v state %v", out, m.State())
	}
	if !strings.Contains(out.Reply, "What color is the sun?") {
		t.Errorf("expected the question in the reply, got %q", out.Reply)
	}

	// Substring match tolerates extra words and case.
	out = m.HandleMessage(r, "I think it is YELLOW, right?", testNow)
	if !out.Handled || out.Credited != 30 || !out.Unlocked {
		t.Fatalf("correct answer must credit and unlock, got %+v", out)
	}
	if r.Balance != 30 {
		t.Errorf("expected balance 30, got %d", r.Balance)
	}
	if r.DailyRescue.Effective(testNow) != 1 {
		t.Errorf("expected 1 claim, got %d", r.DailyRescue.Effective(testNow))
	}
	if m.State() != StateIdle {
		t.Errorf("solved challenge must return to idle, got %v", m.State())
	}
}

func TestPromptDecline(t *testing.T) {
	m, r := newTestMachine(t, 0)
	m.Offer(r, testNow)

	out := m.HandleMessage(r, "no thanks", testNow)
	if !out.Handled || out.Reply == "" {
		t.Fatalf("explicit decline must be acknowledged, got %+v", out)
	}
	if m.State() != StateIdle {
		t.Errorf("decline must return to idle, got %v", m.State())
	}
}

func TestPromptUnmatchedFallsThrough(t *testing.T) {
	m, r := newTestMachine(t, 0)
	m.Offer(r, testNow)

	out := m.HandleMessage(r, "how are you feeling today?", testNow)
	if out.Handled {
		t.Fatal("unrelated reply must fall through to normal chat")
	}
	if m.State() != StateIdle {
		t.Errorf("unmatched prompt reply must return to idle, got %v", m.State())
	}
}

func TestWrongAnswersHintThenRotate(t *testing.T) {
	m, r := newTestMachine(t, 0) // answer "yellow"
	m.Offer(r, testNow)
	m.HandleMessage(r, "yes", testNow)

	// Two wrong answers get first-letter hints.
	for i := 0; i < 2; i++ {
		out := m.HandleMessage(r, "blue", testNow)
		if !out.Handled || !strings.Contains(out.Reply, "'y'") {
			t.Fatalf("wrong answer %d must hint the first letter, got %q", i+1, out.Reply)
		}
		if m.State() != StateChallenge {
			t.Fatalf("hints must keep the challenge alive, got %v", m.State())
		}
	}

	// The third wrong answer rotates the question and resets the count.
	out := m.HandleMessage(r, "blue", testNow)
	if !out.Handled || strings.Contains(out.Reply, "'y'") {
		t.Fatalf("third wrong answer must rotate, got %q", out.Reply)
	}
	if m.wrongCount != 0 {
		t.Errorf("rotation must reset the wrong count, got %d", m.wrongCount)
	}
	if m.State() != StateChallenge {
		t.Errorf("rotation must stay in challenge, got %v", m.State())
	}
	if r.Balance != 0 {
		t.Errorf("wrong answers must never credit, got balance %d", r.Balance)
	}
}

func TestRequestEligibilityOutcomes(t *testing.T) {
	m, r := newTestMachine(t, 0)
	s := i18n.T(i18n.LocaleEN)

	// Funded: told to spend first.
	r.Balance = 5
	out := m.Request(r, testNow)
	if !out.Handled || out.Reply != s.RescueHasFunds {
		t.Errorf("funded pet outcome wrong: %+v", out)
	}

	// Quota exhausted: told to come back tomorrow; nothing changes.
	r.Balance = 0
	r.DailyRescue = pet.DailyCounter{Count: 3, Date: pet.DateKey(testNow)}
	out = m.Request(r, testNow)
	if !out.Handled || out.Reply != s.RescueQuota {
		t.Errorf("quota outcome wrong: %+v", out)
	}
	if r.Balance != 0 || r.DailyRescue.Effective(testNow) != 3 {
		t.Error("declined request must not mutate the record")
	}

	// Eligible: challenge begins immediately.
	r.DailyRescue = pet.DailyCounter{}
	out = m.Request(r, testNow)
	if !out.Handled || m.State() != StateChallenge {
		t.Errorf("eligible request must start a challenge, got %+v state %v", out, m.State())
	}
}

func TestIntentDetection(t *testing.T) {
	m, r := newTestMachine(t, 0)

	// Currency word without intent word: normal chat.
	out := m.HandleMessage(r, "what are cells anyway?", testNow)
	if out.Handled {
		t.Error("mention without intent must not trigger rescue")
	}

	// Both present: rescue request fires.
	out = m.HandleMessage(r, "I really need some cells", testNow)
	if !out.Handled || m.State() != StateChallenge {
		t.Errorf("intent message must start the rescue flow, got %+v", out)
	}
}

func TestChestClaimIdempotent(t *testing.T) {
	var c Chest
	if _, ok := c.Claim(); ok {
		t.Fatal("locked chest must not pay out")
	}

	c.Unlock(30)
	amount, ok := c.Claim()
	if !ok || amount != 30 {
		t.Fatalf("expected (30,true), got (%d,%v)", amount, ok)
	}

	// Rapid second click gets nothing.
	if amount, ok := c.Claim(); ok || amount != 0 {
		t.Errorf("double claim must fail, got (%d,%v)", amount, ok)
	}
}

func TestChallengeLocalization(t *testing.T) {
	c := Challenges[0]
	if c.Question(i18n.LocaleES) != c.QuestionES || c.Question(i18n.LocaleEN) != c.QuestionEN {
		t.Error("question localization mismatch")
	}
	if c.Answer(i18n.LocaleES) != "amarillo" || c.Answer(i18n.LocaleEN) != "yellow" {
		t.Error("answer localization mismatch")
	}
}

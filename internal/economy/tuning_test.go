package economy

import "testing"

func TestTuningValidate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("shipped defaults must validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"negative feed cost", func(tu *Tuning) { tu.FeedCost = -1 }},
		{"negative cap", func(tu *Tuning) { tu.DailyEarningsCap = -1 }},
		{"probability above one", func(tu *Tuning) { tu.EarnProbPoor = 1.2 }},
		{"negative probability", func(tu *Tuning) { tu.EarnProbRich = -0.1 }},
		{"negative earn minimum", func(tu *Tuning) { tu.EarnMin = -2 }},
		{"inverted earn range", func(tu *Tuning) { tu.EarnMin = 5; tu.EarnMax = 2 }},
		{"negative reward", func(tu *Tuning) { tu.RescueReward = -30 }},
		{"negative rescue limit", func(tu *Tuning) { tu.RescueDailyLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			if err := tuning.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

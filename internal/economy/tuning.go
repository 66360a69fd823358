package economy

import "errors"

// Tuning collects the knobs of the cells economy. The zero value is not
// usable; start from DefaultTuning and overlay a YAML file on top.
type Tuning struct {
	FeedCost         int     `yaml:"feed_cost"`
	DailyEarningsCap int     `yaml:"daily_earnings_cap"`
	EarnProbPoor     float64 `yaml:"earn_prob_poor"`
	EarnProbRich     float64 `yaml:"earn_prob_rich"`
	RichBalance      int     `yaml:"rich_balance"`
	EarnMin          int     `yaml:"earn_min"`
	EarnMax          int     `yaml:"earn_max"`
	RescueReward     int     `yaml:"rescue_reward"`
	RescueDailyLimit int     `yaml:"rescue_daily_limit"`
}

// DefaultTuning returns the shipped economy balance.
func DefaultTuning() Tuning {
	return Tuning{
		FeedCost:         10,
		DailyEarningsCap: 50,
		EarnProbPoor:     0.8,
		EarnProbRich:     0.1,
		RichBalance:      80,
		EarnMin:          2,
		EarnMax:          5,
		RescueReward:     30,
		RescueDailyLimit: 3,
	}
}

// Validate rejects tuning values the ledger cannot run on. Overlaid
// files go through here before a ledger is built from them.
func (t Tuning) Validate() error {
	switch {
	case t.FeedCost < 0:
		return errors.New("economy: feed_cost must not be negative")
	case t.DailyEarningsCap < 0:
		return errors.New("economy: daily_earnings_cap must not be negative")
	case t.EarnProbPoor < 0 || t.EarnProbPoor > 1:
		return errors.New("economy: earn_prob_poor must be within [0,1]")
	case t.EarnProbRich < 0 || t.EarnProbRich > 1:
		return errors.New("economy: earn_prob_rich must be within [0,1]")
	case t.EarnMin < 0:
		return errors.New("economy: earn_min must not be negative")
	case t.EarnMax < t.EarnMin:
		return errors.New("economy: earn_max must not be below earn_min")
	case t.RescueReward < 0:
		return errors.New("economy: rescue_reward must not be negative")
	case t.RescueDailyLimit < 0:
		return errors.New("economy: rescue_daily_limit must not be negative")
	}
	return nil
}

package economy

import (
	"errors"
	"time"

	"regenmon/internal/pet"
)

// ErrInsufficientFunds rejects a debit that would take the balance
// negative.
var ErrInsufficientFunds = errors.New("economy: insufficient cells")

// Ledger applies every balance mutation. It owns no state of its own;
// the balance and daily counters live on the pet record so they persist
// and reset together.
type Ledger struct {
	tuning Tuning
}

// NewLedger returns a ledger with the given tuning.
func NewLedger(t Tuning) *Ledger {
	return &Ledger{tuning: t}
}

// Tuning exposes the active knobs, mostly for the UI price labels.
func (l *Ledger) Tuning() Tuning {
	return l.tuning
}

// Debit subtracts amount from the balance, failing atomically if the
// funds are not there. The balance never goes below zero.
func (l *Ledger) Debit(r *pet.Record, amount int) error {
	if r.Balance < amount {
		return ErrInsufficientFunds
	}
	r.Balance -= amount
	return nil
}

// Credit adds amount to the balance.
func (l *Ledger) Credit(r *pet.Record, amount int) {
	r.Balance += amount
}

// ChatEarning runs the probabilistic earning trial attached to a chat
// turn. It returns the amount credited, zero when the dice or the daily
// cap said no. Broke pets earn nothing here; the rescue flow is their
// only way back in.
func (l *Ledger) ChatEarning(r *pet.Record, now time.Time) int {
	if r.Balance <= 0 {
		return 0
	}
	earned := r.DailyEarnings.Effective(now)
	if earned >= l.tuning.DailyEarningsCap {
		return 0
	}

	p := l.tuning.EarnProbPoor
	if r.Balance >= l.tuning.RichBalance {
		p = l.tuning.EarnProbRich
	}
	if pet.RandFloat64() >= p {
		return 0
	}

	amount := l.tuning.EarnMin + pet.RandIntn(l.tuning.EarnMax-l.tuning.EarnMin+1)
	if room := l.tuning.DailyEarningsCap - earned; amount > room {
		amount = room
	}

	l.Credit(r, amount)
	r.DailyEarnings.Add(amount, now)
	r.AddAction(pet.ActionEarn, amount, now)
	return amount
}

// RescueEligible reports whether the pet qualifies for a rescue offer:
// flat broke and under today's claim quota.
func (l *Ledger) RescueEligible(r *pet.Record, now time.Time) bool {
	return r.Balance <= 0 && r.DailyRescue.Effective(now) < l.tuning.RescueDailyLimit
}

// RescueCredit pays out the rescue reward and burns one of today's
// claims. The caller checks eligibility first; this only records.
func (l *Ledger) RescueCredit(r *pet.Record, now time.Time) int {
	l.Credit(r, l.tuning.RescueReward)
	r.DailyRescue.Add(1, now)
	r.AddAction(pet.ActionEarn, l.tuning.RescueReward, now)
	return l.tuning.RescueReward
}

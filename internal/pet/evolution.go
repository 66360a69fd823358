package pet

import "time"

// Stage is one of the three growth phases.
type Stage int

const (
	StageBaby Stage = iota
	StageAdult
	StageFull
)

// String returns the stage identifier used in logs and persistence.
func (s Stage) String() string {
	switch s {
	case StageBaby:
		return "baby"
	case StageAdult:
		return "adult"
	case StageFull:
		return "full"
	default:
		return "unknown"
	}
}

// Evolution derives the current growth stage and the time remaining until
// the next one. It is a pure function of the record and the clock: the UI
// recomputes it on every render without drift. Evolution freezes at the
// instant of death.
func Evolution(r Record, now time.Time) (Stage, time.Duration) {
	end := now
	if r.ExpiredAt != nil {
		end = *r.ExpiredAt
	}
	return evolutionAt(r.CreatedAt, r.EvolutionBonus, end, StageInterval)
}

func evolutionAt(createdAt time.Time, bonus time.Duration, end time.Time, interval time.Duration) (Stage, time.Duration) {
	adjusted := end.Sub(createdAt) + bonus
	if adjusted < 0 {
		adjusted = 0
	}

	idx := Stage(adjusted / interval)
	if idx > StageCount-1 {
		idx = StageCount - 1
	}

	if idx == StageCount-1 {
		return idx, 0
	}
	remaining := time.Duration(idx+1)*interval - adjusted
	if remaining < 0 {
		remaining = 0
	}
	return idx, remaining
}

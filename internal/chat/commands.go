package chat

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"regenmon/internal/pet"
)

// Slash commands are debug affordances intercepted before any chat or
// rescue processing. They never reach the backend and never consume a
// normal chat turn.

const defaultGrant = 50

// IsCommand reports whether msg should be intercepted as a command.
func IsCommand(msg string) bool {
	return strings.HasPrefix(strings.TrimSpace(msg), "/")
}

// Execute runs a slash command against the record and returns the text
// to display. Unknown commands get the help text.
func Execute(r *pet.Record, msg string, now time.Time) string {
	fields := strings.Fields(strings.TrimSpace(msg))
	if len(fields) == 0 {
		return helpText()
	}

	switch strings.ToLower(fields[0]) {
	case "/cells":
		amount := defaultGrant
		if len(fields) > 1 {
			if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
				amount = n
			}
		}
		r.Balance += amount
		r.AddAction(pet.ActionEarn, amount, now)
		return fmt.Sprintf("Granted %d cells. Balance: %d", amount, r.Balance)

	case "/max":
		target := "all"
		if len(fields) > 1 {
			target = strings.ToLower(fields[1])
		}
		switch target {
		case "happiness":
			r.Vitals.Happiness = pet.MaxVital
		case "energy":
			r.Vitals.Energy = pet.MaxVital
		case "hunger":
			r.Vitals.Hunger = pet.MaxVital
		case "all":
			r.Vitals = pet.Vitals{Happiness: pet.MaxVital, Energy: pet.MaxVital, Hunger: pet.MaxVital}
		default:
			return "Usage: /max [happiness|energy|hunger|all]"
		}
		return fmt.Sprintf("Vitals now %d/%d/%d", r.Vitals.Happiness, r.Vitals.Energy, r.Vitals.Hunger)

	case "/status":
		stage, left := pet.Evolution(*r, now)
		return fmt.Sprintf("%s %s | H:%d E:%d S:%d | %d cells | stage %s (next in %s) | earned today %d | rescues today %d",
			r.Name, pet.GetStatusWithLabel(*r),
			r.Vitals.Happiness, r.Vitals.Energy, r.Vitals.Hunger,
			r.Balance, stage, left.Round(time.Second),
			r.DailyEarnings.Effective(now), r.DailyRescue.Effective(now))

	case "/help":
		return helpText()

	default:
		return "Unknown command.\n" + helpText()
	}
}

func helpText() string {
	return strings.Join([]string{
		"/cells [n]  grant cells (default 50)",
		"/max [stat] max a vital or all of them",
		"/status     print a status summary",
		"/help       this list",
	}, "\n")
}

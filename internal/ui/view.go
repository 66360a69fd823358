package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"regenmon/internal/pet"
	"regenmon/internal/rescue"
)

var gameStyles = struct {
	title    lipgloss.Style
	status   lipgloss.Style
	stats    lipgloss.Style
	menu     lipgloss.Style
	selected lipgloss.Style
	chatUser lipgloss.Style
	chatPet  lipgloss.Style
	memory   lipgloss.Style
	notice   lipgloss.Style
	faded    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#73F59F")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Width(44),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")).
		Width(44),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")),

	selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD75F")),

	chatUser: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87D7FF")),

	chatPet: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#73F59F")),

	memory: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#D787FF")),

	notice: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFD75F")),

	faded: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}

	switch m.mode {
	case modeHatch, modeReset:
		return m.hatchView()
	case modeChat:
		return m.chatView()
	}

	if m.session.Terminal() {
		return m.gameOverView()
	}
	return m.mainView()
}

func (m Model) mainView() string {
	r := m.session.Record()
	arch := archetypeInfo(r.Archetype)

	title := gameStyles.title.Render(arch.Icon + " " + r.Name + " " + pet.GetStatus(r))
	if m.decayFlash {
		title += gameStyles.faded.Render(" ✨")
	}

	sections := []string{
		title,
		"",
		m.renderStats(r),
		"",
		m.renderEvolution(r),
		m.renderBalance(r),
	}

	if m.session.ChestUnlocked() {
		sections = append(sections, "", gameStyles.notice.Render("🎁 "+m.s.RewardTitle+"!"))
	}
	if unread := r.UnreadAssistantSince(m.lastSeenChat); unread > 0 {
		label := m.s.UnreadOne
		if unread > 1 {
			label = fmt.Sprintf(m.s.UnreadMany, unread)
		}
		sections = append(sections, gameStyles.notice.Render("💬 "+label))
	}
	if m.notice != "" && pet.TimeNow().Before(m.noticeExpires) {
		sections = append(sections, "", gameStyles.notice.Render(m.notice))
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		m.renderHistory(r),
		gameStyles.faded.Render("↑/↓ move • enter select • q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStats(r pet.Record) string {
	lines := []string{
		m.s.Happiness + "  " + makeBar(r.Vitals.Happiness),
		m.s.Energy + "     " + makeBar(r.Vitals.Energy),
		m.s.Hunger + "    " + makeBar(r.Vitals.Hunger),
	}
	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func makeBar(value int) string {
	filled := value / 10
	return fmt.Sprintf("[%s%s] %3d", strings.Repeat("█", filled), strings.Repeat("░", 10-filled), value)
}

func (m Model) renderEvolution(r pet.Record) string {
	stage, left := pet.Evolution(r, pet.TimeNow())
	label := m.stageLabel(stage)
	if stage == pet.StageFull {
		return gameStyles.stats.Render(m.s.EvolutionLabel + ": " + label + " • " + m.s.MaxEvolution)
	}
	return gameStyles.stats.Render(fmt.Sprintf("%s: %s • %s %s",
		m.s.EvolutionLabel, label, m.s.NextEvolution, left.Round(time.Second)))
}

func (m Model) stageLabel(stage pet.Stage) string {
	switch stage {
	case pet.StageAdult:
		return m.s.StageAdult
	case pet.StageFull:
		return m.s.StageFull
	default:
		return m.s.StageBaby
	}
}

func (m Model) renderBalance(r pet.Record) string {
	now := pet.TimeNow()
	return gameStyles.stats.Render(fmt.Sprintf("🪙 %d %s • +%d/%d %s",
		r.Balance, m.s.Cells,
		r.DailyEarnings.Effective(now), m.session.Tuning().DailyEarningsCap,
		strings.ToLower(m.s.Cells)))
}

func (m Model) renderMenu() string {
	var lines []string
	for i, item := range m.menuItems() {
		label := m.menuLabel(item)
		if i == m.choice {
			lines = append(lines, gameStyles.selected.Render("> "+label))
		} else {
			lines = append(lines, gameStyles.menu.Render("  "+label))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) menuLabel(item menuItem) string {
	switch item {
	case itemFeed:
		return fmt.Sprintf("🍖 %s (-%d)", m.s.FeedButton, m.session.Tuning().FeedCost)
	case itemPlay:
		return "🎾 " + m.s.PlayButton
	case itemRest:
		return "😴 " + m.s.RestButton
	case itemChat:
		return "💬 " + m.s.ChatButton
	case itemChest:
		return "🎁 " + m.s.RewardButton
	case itemReset:
		return "🔄 " + m.s.ResetButton
	default:
		return "🚪 " + m.s.QuitButton
	}
}

func (m Model) renderHistory(r pet.Record) string {
	if len(r.ActionHistory) == 0 {
		return ""
	}
	n := len(r.ActionHistory)
	if n > 3 {
		n = 3
	}
	var lines []string
	for _, e := range r.ActionHistory[:n] {
		sign := ""
		if e.Amount > 0 {
			sign = "+"
		}
		amount := ""
		if e.Amount != 0 {
			amount = fmt.Sprintf(" %s%d", sign, e.Amount)
		}
		lines = append(lines, gameStyles.faded.Render(
			fmt.Sprintf("%s %s%s", e.Timestamp.Format("15:04"), e.Kind, amount)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) chatView() string {
	r := m.session.Record()
	title := gameStyles.title.Render("💬 " + r.Name)

	var lines []string
	for _, msg := range r.ChatHistory {
		switch msg.Role {
		case pet.RoleUser:
			lines = append(lines, gameStyles.chatUser.Render("You: "+msg.Content))
		default:
			line := r.Name + ": " + msg.Content
			lines = append(lines, gameStyles.chatPet.Render(line))
			if msg.MemoryIndex > 0 {
				tag := m.s.MemorySaved
				if msg.IsRecall {
					tag = m.s.MemoryRecalled
				}
				lines = append(lines, gameStyles.memory.Render(fmt.Sprintf("  ✧ %s #%d", tag, msg.MemoryIndex)))
			}
		}
	}
	if len(lines) == 0 {
		lines = append(lines, gameStyles.faded.Render(m.s.ChatGreeting))
	}
	if m.typing {
		lines = append(lines, gameStyles.faded.Render(r.Name+" ..."))
	}

	input := "> " + m.chatInput + "▌"
	if m.chatInput == "" {
		input = "> " + gameStyles.faded.Render(m.s.ChatPlaceholder)
	}

	help := "enter send • esc back"
	if m.session.RescueState() == rescue.StateChallenge {
		help = "🧩 " + help
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(lines, "\n"),
		"",
		input,
		gameStyles.faded.Render(help),
	)
}

func (m Model) hatchView() string {
	title := gameStyles.title.Render("🥚 " + m.s.CreateTitle)

	var archs []string
	for i, a := range pet.Archetypes {
		label := fmt.Sprintf("%s %s (%s)", a.Icon, a.Label, a.Name)
		if i == m.archChoice {
			archs = append(archs, gameStyles.selected.Render("["+label+"]"))
		} else {
			archs = append(archs, gameStyles.menu.Render(" "+label+" "))
		}
	}

	sections := []string{
		title,
		"",
		gameStyles.status.Render(m.s.NameLabel),
		"> " + m.nameInput + "▌",
		"",
		gameStyles.status.Render(m.s.SelectType),
		strings.Join(archs, "\n"),
		"",
		gameStyles.faded.Render(pet.Archetypes[m.archChoice].Description),
	}
	if m.notice != "" && pet.TimeNow().Before(m.noticeExpires) {
		sections = append(sections, "", gameStyles.notice.Render(m.notice))
	}
	sections = append(sections, "", gameStyles.faded.Render("←/→ archetype • enter "+m.s.HatchButton))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) gameOverView() string {
	r := m.session.Record()
	sections := []string{
		gameStyles.title.Render("💀 " + m.s.GameOver),
		"",
		gameStyles.status.Render(r.Name),
	}
	if r.ExpiredAt != nil {
		sections = append(sections, gameStyles.faded.Render(r.ExpiredAt.Format("2006-01-02 15:04")))
	}
	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.faded.Render("↑/↓ move • enter select • q quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func archetypeInfo(id pet.Archetype) pet.ArchetypeInfo {
	for _, a := range pet.Archetypes {
		if a.ID == id {
			return a
		}
	}
	return pet.Archetypes[0]
}

package ui

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"regenmon/internal/chat"
	"regenmon/internal/engine"
	"regenmon/internal/i18n"
	"regenmon/internal/pet"
)

// rescueCheckPeriod is how often the watchdog looks for a broke pet.
const rescueCheckPeriod = 10 * time.Second

// noticeDuration is how long transient banner messages stay up.
const noticeDuration = 3 * time.Second

type mode int

const (
	modeHatch mode = iota
	modeMain
	modeChat
	modeReset
)

// Model represents the game state
type Model struct {
	session *engine.Session
	s       i18n.Strings

	mode     mode
	choice   int
	quitting bool

	// hatch / reset form
	nameInput  string
	archChoice int

	// chat panel
	chatInput    string
	typing       bool
	lastSeenChat time.Time

	notice        string
	noticeExpires time.Time
	decayFlash    bool

	// Timers are cancelled once the pet turns terminal; these track
	// whether a loop is still scheduled so a reset does not double it.
	decayRunning  bool
	rescueRunning bool
}

type decayTickMsg time.Time
type rescueTickMsg time.Time
type feedDebitMsg time.Time
type feedSettleMsg time.Time
type localReplyMsg struct{ text string }
type backendReplyMsg struct {
	reply string
	err   error
}
type applyReplyMsg backendReplyMsg
type clearNoticeMsg time.Time

// NewModel builds the UI around a session. A fresh session (no name)
// starts at the hatch screen.
func NewModel(session *engine.Session) Model {
	m := Model{
		session:       session,
		s:             i18n.T(session.Locale()),
		mode:          modeMain,
		lastSeenChat:  pet.TimeNow(),
		decayRunning:  true,
		rescueRunning: true,
	}
	if session.Record().Name == "" {
		m.mode = modeHatch
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(decayTick(), rescueTick())
}

func decayTick() tea.Cmd {
	return tea.Tick(pet.DecayPeriod, func(t time.Time) tea.Msg {
		return decayTickMsg(t)
	})
}

func rescueTick() tea.Cmd {
	return tea.Tick(rescueCheckPeriod, func(t time.Time) tea.Msg {
		return rescueTickMsg(t)
	})
}

func feedDebitTick() tea.Cmd {
	return tea.Tick(pet.FeedDebitDelay, func(t time.Time) tea.Msg {
		return feedDebitMsg(t)
	})
}

func feedSettleTick() tea.Cmd {
	return tea.Tick(pet.FeedSettleDelay, func(t time.Time) tea.Msg {
		return feedSettleMsg(t)
	})
}

// typingDelay holds a locally produced reply back for a beat so the
// pet does not answer instantly.
func typingDelay(text string) tea.Cmd {
	return tea.Tick(pet.TypingDelay, func(time.Time) tea.Msg {
		return localReplyMsg{text: text}
	})
}

func applyDelay(msg backendReplyMsg) tea.Cmd {
	return tea.Tick(pet.TypingDelay, func(time.Time) tea.Msg {
		return applyReplyMsg(msg)
	})
}

func clearNotice() tea.Cmd {
	return tea.Tick(noticeDuration, func(t time.Time) tea.Msg {
		return clearNoticeMsg(t)
	})
}

// callBackend runs the chat round-trip off the event loop.
func callBackend(backend chat.Backend, req chat.TurnRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		reply, err := backend.Reply(ctx, req)
		return backendReplyMsg{reply: reply, err: err}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case decayTickMsg:
		changed, notify, expired := m.session.DecayTick(time.Time(msg))
		m.decayFlash = changed && notify
		if expired || m.session.Terminal() {
			// Terminal pets freeze: no more decay, earning or prompts.
			m.decayRunning = false
			return m, nil
		}
		return m, decayTick()

	case rescueTickMsg:
		if m.session.Terminal() {
			m.rescueRunning = false
			return m, nil
		}
		if _, ok := m.session.RescueWatchdog(time.Time(msg)); ok {
			m.typing = false
		}
		return m, rescueTick()

	case feedDebitMsg:
		if err := m.session.ResolveFeedDebit(time.Time(msg)); err != nil {
			m.notice = m.s.NotEnoughCells
			m.noticeExpires = pet.TimeNow().Add(noticeDuration)
			return m, clearNotice()
		}
		return m, feedSettleTick()

	case feedSettleMsg:
		if line, ok := m.session.SettleFeed(time.Time(msg)); ok {
			m.session.AppendLocalReply(line, time.Time(msg))
		}
		return m, nil

	case localReplyMsg:
		m.typing = false
		m.session.AppendLocalReply(msg.text, pet.TimeNow())
		return m, nil

	case backendReplyMsg:
		return m, applyDelay(msg)

	case applyReplyMsg:
		m.typing = false
		m.session.ApplyBackendReply(msg.reply, msg.err, pet.TimeNow())
		return m, nil

	case clearNoticeMsg:
		if !pet.TimeNow().Before(m.noticeExpires) {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeHatch, modeReset:
		return m.handleHatchKey(msg)
	case modeChat:
		return m.handleChatKey(msg)
	default:
		return m.handleMenuKey(msg)
	}
}

func (m Model) handleHatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.session.Reset(strings.TrimSpace(m.nameInput), pet.Archetypes[m.archChoice].ID) {
			m.mode = modeMain
			m.choice = 0
			m.nameInput = ""
			m.lastSeenChat = pet.TimeNow()
			var cmds []tea.Cmd
			if !m.decayRunning {
				m.decayRunning = true
				cmds = append(cmds, decayTick())
			}
			if !m.rescueRunning {
				m.rescueRunning = true
				cmds = append(cmds, rescueTick())
			}
			return m, tea.Batch(cmds...)
		}
		m.notice = m.s.NameMinError
		m.noticeExpires = pet.TimeNow().Add(noticeDuration)
		return m, clearNotice()
	case "left":
		if m.archChoice > 0 {
			m.archChoice--
		}
	case "right":
		if m.archChoice < len(pet.Archetypes)-1 {
			m.archChoice++
		}
	case "backspace":
		if len(m.nameInput) > 0 {
			runes := []rune(m.nameInput)
			m.nameInput = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			if len([]rune(m.nameInput)) < pet.MaxNameLen {
				m.nameInput += string(msg.Runes)
			}
		}
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMain
		m.lastSeenChat = pet.TimeNow()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.chatInput)
		if text == "" || m.typing {
			return m, nil
		}
		m.chatInput = ""
		now := pet.TimeNow()
		res := m.session.Submit(text, now)
		switch {
		case res.NeedsBackend:
			m.typing = true
			r := m.session.Record()
			return m, callBackend(m.session.Backend(), chat.TurnRequest{
				Message:   text,
				History:   r.ChatHistory,
				Vitals:    r.Vitals,
				Name:      r.Name,
				Archetype: r.Archetype,
				Memories:  r.Memories,
				Locale:    m.session.Locale(),
			})
		case res.Reply != "" && !chat.IsCommand(text):
			m.typing = true
			return m, typingDelay(res.Reply)
		}
		return m, nil
	case "backspace":
		if len(m.chatInput) > 0 {
			runes := []rune(m.chatInput)
			m.chatInput = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.chatInput += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.chatInput += " "
		}
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.choice > 0 {
			m.choice--
		}
	case "down", "j":
		if m.choice < len(items)-1 {
			m.choice++
		}
	case "enter", " ":
		return m.selectMenuItem(items[m.choice])
	}
	return m, nil
}

type menuItem int

const (
	itemFeed menuItem = iota
	itemPlay
	itemRest
	itemChat
	itemChest
	itemReset
	itemQuit
)

func (m Model) menuItems() []menuItem {
	if m.session.Terminal() {
		return []menuItem{itemReset, itemQuit}
	}
	items := []menuItem{itemFeed, itemPlay, itemRest, itemChat}
	if m.session.ChestUnlocked() {
		items = append(items, itemChest)
	}
	return append(items, itemReset, itemQuit)
}

func (m Model) selectMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	now := pet.TimeNow()
	switch item {
	case itemFeed:
		started, err := m.session.BeginFeed(now)
		if err != nil {
			m.notice = m.s.NotEnoughCells
			m.noticeExpires = now.Add(noticeDuration)
			return m, clearNotice()
		}
		if started {
			m.notice = m.s.Feeding
			m.noticeExpires = now.Add(noticeDuration)
			return m, tea.Batch(feedDebitTick(), clearNotice())
		}
	case itemPlay:
		m.session.Care(pet.ActionPlay, now)
	case itemRest:
		m.session.Care(pet.ActionRest, now)
	case itemChat:
		m.mode = modeChat
	case itemChest:
		if amount, ok := m.session.ClaimChest(); ok {
			m.notice = m.s.RewardClaimed + " +" + strconv.Itoa(amount) + " " + m.s.Cells
			m.noticeExpires = now.Add(noticeDuration)
			m.choice = 0
			return m, clearNotice()
		}
	case itemReset:
		m.mode = modeReset
		m.nameInput = ""
		m.archChoice = 0
	case itemQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// Package overlay is the terminal display actor for watch mode. It renders
// selection snapshots received from the feed and turns key presses into
// keyboard events for the controller. It never touches the selection
// itself.
package overlay

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/pathte/pkg/feed"
	"github.com/arthur-debert/pathte/pkg/hotkey"
	"github.com/arthur-debert/pathte/pkg/keyboard"
	"github.com/arthur-debert/pathte/pkg/selection"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EventMsg delivers a feed event to the model.
type EventMsg struct {
	Event feed.Event
}

// Options styles the overlay.
type Options struct {
	SelectedMarker string
	ShowLabels     bool
	AccentColor    string
	// Gesture is the controller's key binding. The overlay replays it when
	// the user presses its own keys. Zero means hotkey.DefaultOptions.
	Gesture hotkey.Options
}

// Model is the bubbletea model of the overlay.
type Model struct {
	keys  keyMap
	help  help.Model
	input *keyboard.ChannelSource
	opts  Options

	snapshot  *selection.Snapshot
	lastPaste string
	notice    *feed.NoticeEvent
	width     int
}

// New creates the model. Key presses are sent to input.
func New(input *keyboard.ChannelSource, opts Options) Model {
	if opts.SelectedMarker == "" {
		opts.SelectedMarker = "▸"
	}
	if opts.Gesture.PasteKey == keyboard.KeyNone {
		opts.Gesture = hotkey.DefaultOptions()
	}
	return Model{
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: input,
		opts:  opts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case EventMsg:
		m.apply(msg.Event)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) apply(ev feed.Event) {
	switch e := ev.(type) {
	case feed.SelectionShownEvent:
		snap := e.Snapshot
		m.snapshot = &snap
		m.notice = nil
	case feed.SelectionChangedEvent:
		snap := e.Snapshot
		m.snapshot = &snap
	case feed.SelectionClosedEvent:
		m.snapshot = nil
	case feed.PasteCompletedEvent:
		m.lastPaste = e.Text
	case feed.NoticeEvent:
		m.notice = &e
	}
}

// handleKey sends events synchronously so the controller sees them in the
// order they were typed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.opts.Gesture
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Paste):
		m.press(g.Trigger)
	case key.Matches(msg, m.keys.Reverse):
		m.press(g.Trigger | g.Reverse)
	case key.Matches(msg, m.keys.Commit):
		m.send(keyboard.Up(g.Trigger.Key(), keyboard.ModNone))
	case key.Matches(msg, m.keys.Cancel):
		m.send(keyboard.Down(keyboard.KeyEscape, g.Trigger))
	}
	return m, nil
}

func (m Model) press(mods keyboard.Modifier) {
	k := m.opts.Gesture.PasteKey
	m.send(keyboard.Down(k, mods), keyboard.Up(k, mods))
}

func (m Model) send(events ...keyboard.Event) {
	for _, ev := range events {
		m.input.Send(ev)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pathte"))
	b.WriteString("\n\n")

	if m.snapshot == nil {
		b.WriteString(mutedStyle.Render("Copy a path, then press v to pick a format."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSelection())
		b.WriteString("\n")
	}

	if m.lastPaste != "" {
		fmt.Fprintf(&b, "\n%s %s\n", mutedStyle.Render("pasted:"), m.lastPaste)
	}
	if m.notice != nil {
		b.WriteString("\n")
		b.WriteString(noticeStyle(m.notice.Level).Render(m.notice.String()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderSelection() string {
	accent := lipgloss.Color(m.opts.AccentColor)
	selected := lipgloss.NewStyle().Bold(true).Foreground(accent)
	blank := strings.Repeat(" ", lipgloss.Width(m.opts.SelectedMarker))

	rows := make([]string, 0, len(m.snapshot.Options))
	for i, o := range m.snapshot.Options {
		marker := blank
		line := o.Text
		if m.opts.ShowLabels {
			line = labelStyle.Render(o.Label) + " " + line
		}
		if i == m.snapshot.Selected {
			marker = m.opts.SelectedMarker
			line = selected.Render(line)
		}
		rows = append(rows, marker+" "+line)
	}

	return boxStyle.BorderForeground(accent).Render(strings.Join(rows, "\n"))
}

// Selected returns the option shown as selected, if a selection is open.
func (m Model) Selected() (selection.Option, bool) {
	if m.snapshot == nil {
		return selection.Option{}, false
	}
	return m.snapshot.SelectedOption(), true
}

// Sender is the part of *tea.Program that Forward needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Forward delivers queue events to the program until the queue is closed
// or ctx is done.
func Forward(ctx context.Context, events <-chan feed.Event, program Sender) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			program.Send(EventMsg{Event: ev})
		}
	}
}

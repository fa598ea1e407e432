package terminal

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/adapt/pkg/core"
	adapterrors "github.com/go-drift/adapt/pkg/errors"
	"github.com/go-drift/adapt/pkg/render"
	"github.com/go-drift/adapt/pkg/theme"
	"github.com/go-drift/adapt/pkg/widgets"
)

// FrameMsg asks the model to flush pending builds.
type FrameMsg struct{}

// CallMsg runs its function on the update loop and then flushes pending
// builds. Hook setters are not safe for concurrent use, so goroutines
// other than the update loop change state by sending a CallMsg.
type CallMsg func()

// Model is a bubbletea model hosting one widget tree.
type Model struct {
	owner *core.BuildOwner
	root  core.Element
	base  *theme.ThemeData

	keys     keyMap
	help     help.Model
	taps     int
	quitting bool
}

// New mounts root and returns a model rendering it. base themes the lines
// outside any Surface; nil means the light theme.
func New(root core.Widget, base *theme.ThemeData) Model {
	owner := core.NewBuildOwner()
	return newModel(owner, core.MountRoot(root, owner), base)
}

func newModel(owner *core.BuildOwner, root core.Element, base *theme.ThemeData) Model {
	m := Model{
		owner: owner,
		root:  root,
		base:  base,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	m.keys = m.keys.withButtons(render.Lines(root))
	return m
}

// Run hosts root until the user quits or ctx is done. Setters called on
// the update loop, from taps or a CallMsg, schedule a frame on the running
// program. Callers that need to send a CallMsg from another goroutine
// build the program themselves with tea.NewProgram(New(root, base)).
func Run(ctx context.Context, root core.Widget, base *theme.ThemeData, opts ...tea.ProgramOption) error {
	owner := core.NewBuildOwner()
	m := newModel(owner, core.MountRoot(root, owner), base)

	program := tea.NewProgram(m, append(opts, tea.WithContext(ctx))...)
	owner.OnNeedsFrame = func() {
		// Send blocks until the update loop receives the message, and the
		// loop itself schedules builds while handling key presses.
		go program.Send(FrameMsg{})
	}
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if fm, ok := final.(Model); ok {
		fm.root.Unmount()
	}
	return nil
}

// Root returns the mounted root element.
func (m Model) Root() core.Element {
	return m.root
}

// Taps returns the number of buttons tapped through shortcuts.
func (m Model) Taps() int {
	return m.taps
}

// Press feeds each rune of keys to the model as a key press and returns
// the updated model.
func (m Model) Press(keys string) Model {
	for _, r := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.tap(msg.String()) {
			m.taps++
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case FrameMsg:
	case CallMsg:
		call(msg)
	default:
		return m, nil
	}
	m.owner.FlushBuild()
	m.keys = m.keys.withButtons(render.Lines(m.root))
	return m, nil
}

// tap presses the first enabled button whose key prints as shortcut.
func (m Model) tap(shortcut string) bool {
	if utf8.RuneCountInString(shortcut) != 1 {
		return false
	}
	tapped := false
	var visit func(core.Element) bool
	visit = func(el core.Element) bool {
		if button, ok := el.Widget().(widgets.Button); ok && button.KeyValue != nil && fmt.Sprint(button.KeyValue) == shortcut {
			if press(button) {
				tapped = true
				return false
			}
		}
		el.VisitChildren(visit)
		return !tapped
	}
	visit(m.root)
	return tapped
}

// press taps button. A panicking OnTap is reported to the error handler
// and counts as a tap.
func press(button widgets.Button) (tapped bool) {
	defer adapterrors.RecoverWithCallback("terminal.tap", func(any) { tapped = true })
	return button.Tap()
}

func call(fn CallMsg) {
	if fn == nil {
		return
	}
	defer adapterrors.Recover("terminal.call")
	fn()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(render.Text(m.root, m.base))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

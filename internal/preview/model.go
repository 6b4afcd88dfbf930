// SPDX-License-Identifier: Unlicense OR MIT

package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/insetkit/safearea"
	"github.com/insetkit/safearea/scene"
)

// keyboardInset returns the IME inset shown by the keyboard toggle.
func keyboardInset() safearea.Rect { return safearea.Rect{Bottom: 300} }

type keyMap struct {
	Keyboard key.Binding
	Rotate   key.Binding
	Cutout   key.Binding
	RTL      key.Binding
	Next     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Keyboard: key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "keyboard")),
	Rotate:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rotate")),
	Cutout:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cutout")),
	RTL:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "direction")),
	Next:     key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "next event")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Keyboard, k.Rotate, k.Cutout, k.RTL, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is an interactive device preview. The insets it reports are
// the scene's base insets with the toggles applied.
type Model struct {
	scene  *scene.Scene
	device *scene.Device
	help   help.Model

	base     safearea.Insets
	keyboard bool
	noCutout bool
	turns    int
	dir      safearea.Direction
	event    int
	title    string
	err      error
}

// New returns a preview of a built scene.
func New(s *scene.Scene, d *scene.Device) Model {
	m := Model{
		scene:  s,
		device: d,
		help:   help.New(),
		base:   s.Insets.Notification(),
		dir:    d.Window.Direction,
		title:  "initial",
	}
	d.Flush()
	return m
}

// Run shows the preview until the user quits.
func Run(s *scene.Scene, d *scene.Device) error {
	_, err := tea.NewProgram(New(s, d), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Keyboard):
			m.keyboard = !m.keyboard
			m.title = fmt.Sprintf("keyboard %s", onOff(m.keyboard))
		case key.Matches(msg, keys.Rotate):
			m.turns = (m.turns + 1) % 4
			m.title = fmt.Sprintf("rotated %d°", m.turns*90)
		case key.Matches(msg, keys.Cutout):
			m.noCutout = !m.noCutout
			m.title = fmt.Sprintf("cutout %s", onOff(!m.noCutout))
		case key.Matches(msg, keys.RTL):
			m.dir = 1 - m.dir
			m.device.Window.SetDirection(m.dir)
			m.title = fmt.Sprintf("direction %v", m.dir)
		case key.Matches(msg, keys.Next):
			return m.next(), nil
		default:
			return m, nil
		}
		m.device.Window.Report(m.insets())
		m.device.Flush()
	}
	return m, nil
}

// next plays the next scene event and makes its insets the new base.
func (m Model) next() Model {
	if len(m.scene.Events) == 0 {
		return m
	}
	e := m.scene.Events[m.event%len(m.scene.Events)]
	m.event++
	if m.err = m.device.Play(e); m.err != nil {
		return m
	}
	m.base = m.device.Window.Insets()
	m.keyboard, m.noCutout, m.turns = false, false, 0
	m.dir = m.device.Window.Direction
	m.title = "event " + e.Name
	return m
}

func (m Model) insets() safearea.Insets {
	in := m.base
	if m.noCutout {
		in.DisplayCutout = safearea.Rect{}
	}
	for i := 0; i < m.turns; i++ {
		in = scene.Rotate(in)
	}
	if m.keyboard {
		in.IME = in.IME.Union(keyboardInset())
	}
	return in
}

func (m Model) View() string {
	s := Render(m.title, m.device) + "\n"
	if m.err != nil {
		s += fmt.Sprintf("error: %v\n", m.err)
	}
	return s + m.help.View(keys)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

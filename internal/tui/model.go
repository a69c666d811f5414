// Package tui implements the interactive Minkowski diagram viewer: a
// bubbletea program that renders the scene's diagram, accepts new frames and
// events through inline input forms, and reloads when the scene file changes
// on disk.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/minkowski/internal/diagram"
	"github.com/papapumpkin/minkowski/internal/relativity"
	"github.com/papapumpkin/minkowski/internal/scene"
)

// mode is the interaction state of the viewer.
type mode int

const (
	modeView mode = iota
	modeAddEvent
	modeAddFrame
)

// MsgSceneChanged signals that the scene file changed on disk and should be
// reloaded. The watcher bridge sends it from outside the program.
type MsgSceneChanged struct{}

// chromeHeight is the number of rows reserved for the title bar, the status
// line, and the footer.
const chromeHeight = 3

// Model is the root bubbletea model of the viewer.
type Model struct {
	scenePath string
	sc        *scene.Scene
	reg       *relativity.Registry
	renderer  *diagram.Renderer
	keys      KeyMap
	mode      mode
	form      form
	status    string
	errMsg    string
	width     int
	height    int
}

// NewModel builds the viewer model from a loaded scene. The renderer's color
// and layer settings are honored; its geometry follows the terminal size.
func NewModel(scenePath string, sc *scene.Scene, r *diagram.Renderer) (Model, error) {
	reg, err := scene.Build(sc)
	if err != nil {
		return Model{}, err
	}
	return Model{
		scenePath: scenePath,
		sc:        sc,
		reg:       reg,
		renderer:  r,
		keys:      DefaultKeyMap(),
		status:    "ready",
	}, nil
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
		m.height = msg.Height
		m.resizeRenderer()
		return m, nil

	case MsgSceneChanged:
		return m.reload(), nil

	case tea.KeyMsg:
		if m.mode == modeView {
			return m.updateView(msg)
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.AddEvent):
		m.mode = modeAddEvent
		m.form = newEventForm()
		m.errMsg = ""
		return m, m.form.focusCmd()
	case key.Matches(msg, m.keys.AddFrame):
		m.mode = modeAddFrame
		m.form = newFrameForm()
		m.errMsg = ""
		return m, m.form.focusCmd()
	case key.Matches(msg, m.keys.Hyperbolas):
		m.renderer.ShowHyperbolas = !m.renderer.ShowHyperbolas
		return m, nil
	case key.Matches(msg, m.keys.Worldlines):
		m.renderer.ShowWorldlines = !m.renderer.ShowWorldlines
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeView
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.form.next()
		return m, m.form.focusCmd()
	case key.Matches(msg, m.keys.Confirm):
		return m.submitForm()
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitForm applies the current form to the registry and scene, and saves
// the scene file. Invalid input keeps the form open with an error message.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	var err error
	switch m.mode {
	case modeAddEvent:
		err = m.applyEventForm()
	case modeAddFrame:
		err = m.applyFrameForm()
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	if err := scene.Save(m.scenePath, m.sc); err != nil {
		m.errMsg = err.Error()
	}
	m.mode = modeView
	m.resizeRenderer()
	return m, nil
}

func (m *Model) applyEventForm() error {
	t, x, frame, err := m.form.eventValues()
	if err != nil {
		return err
	}
	idx, err := m.reg.Lookup(frame)
	if err != nil {
		return err
	}
	if err := m.reg.AddEvent(idx, t, x); err != nil {
		return err
	}
	m.sc.Events = append(m.sc.Events, scene.EventEntry{T: t, X: x, Frame: frame})
	m.status = fmt.Sprintf("added event (%g, %g) in %s", t, x, m.frameName(idx))
	return nil
}

func (m *Model) applyFrameForm() error {
	name, v, err := m.form.frameValues()
	if err != nil {
		return err
	}
	idx, err := m.reg.Register(name, v)
	if err != nil {
		return err
	}
	m.sc.Frames = append(m.sc.Frames, scene.FrameEntry{Name: m.frameName(idx), Velocity: v})
	m.status = fmt.Sprintf("registered frame %s at v=%+.2f", m.frameName(idx), v)
	return nil
}

func (m Model) frameName(idx int) string {
	f, err := m.reg.Frame(idx)
	if err != nil {
		return "?"
	}
	return f.Name
}

// reload re-reads the scene file and rebuilds the registry. A broken scene
// file keeps the previous picture and surfaces the error.
func (m Model) reload() Model {
	sc, err := scene.Load(m.scenePath)
	if err != nil {
		m.errMsg = err.Error()
		return m
	}
	reg, err := scene.Build(sc)
	if err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.sc = sc
	m.reg = reg
	m.errMsg = ""
	m.status = "scene reloaded"
	m.resizeRenderer()
	return m
}

// resizeRenderer fits the diagram into the space left over by the chrome and
// the legend.
func (m *Model) resizeRenderer() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.renderer.Width = m.width
	h := m.height - chromeHeight - m.reg.Len()
	if h < 5 {
		h = 5
	}
	m.renderer.Height = h
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	title := fmt.Sprintf("minkowski — %s", m.scenePath)
	sb.WriteString(styleTitleBar.Width(max(m.width, lipgloss.Width(title)+2)).Render(title))
	sb.WriteByte('\n')

	sb.WriteString(m.renderer.Render(m.reg))
	sb.WriteString(m.renderer.Legend(m.reg))

	if m.mode != modeView {
		sb.WriteString(m.form.view())
		sb.WriteByte('\n')
	}

	if m.errMsg != "" {
		sb.WriteString(styleError.Render("error: " + m.errMsg))
	} else {
		sb.WriteString(styleStatus.Render(m.status))
	}
	sb.WriteByte('\n')

	sb.WriteString(m.footer())
	return sb.String()
}

func (m Model) footer() string {
	hints := []key.Binding{
		m.keys.AddEvent, m.keys.AddFrame, m.keys.Hyperbolas, m.keys.Worldlines, m.keys.Quit,
	}
	if m.mode != modeView {
		hints = []key.Binding{m.keys.NextField, m.keys.Confirm, m.keys.Cancel}
	}
	parts := make([]string, 0, len(hints))
	for _, b := range hints {
		h := b.Help()
		parts = append(parts, styleFooterKey.Render(h.Key)+" "+h.Desc)
	}
	return styleFooter.Render(strings.Join(parts, "  "))
}

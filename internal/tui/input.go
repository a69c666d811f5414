package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a small multi-field text input overlay.
type form struct {
	title  string
	labels []string
	fields []textinput.Model
	focus  int
}

func newField(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 16
	return ti
}

// newEventForm builds the add-event form: coordinates plus the observing
// frame (empty means the rest frame).
func newEventForm() form {
	f := form{
		title:  "add event",
		labels: []string{"t", "x", "frame"},
		fields: []textinput.Model{newField("0.0"), newField("0.0"), newField("rest")},
	}
	f.fields[0].Focus()
	return f
}

// newFrameForm builds the add-frame form.
func newFrameForm() form {
	f := form{
		title:  "add frame",
		labels: []string{"name", "velocity"},
		fields: []textinput.Model{newField("auto"), newField("0.0")},
	}
	f.fields[0].Focus()
	return f
}

// next advances the focused field, wrapping around.
func (f *form) next() {
	f.fields[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].Focus()
}

// focusCmd returns the blink command for the focused field.
func (f *form) focusCmd() tea.Cmd {
	return textinput.Blink
}

// update forwards a message to the focused field.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return f, cmd
}

func (f form) view() string {
	var sb strings.Builder
	sb.WriteString(styleInputTitle.Render(f.title))
	for i := range f.fields {
		sb.WriteByte('\n')
		sb.WriteString(styleInputLabel.Render(fmt.Sprintf("%-8s", f.labels[i])))
		sb.WriteString(f.fields[i].View())
	}
	return styleInputBox.Render(sb.String())
}

// eventValues parses the add-event form. The frame field may be empty or the
// literal placeholder, both meaning the rest frame.
func (f form) eventValues() (t, x float64, frame string, err error) {
	t, err = parseCoord("t", f.fields[0].Value())
	if err != nil {
		return 0, 0, "", err
	}
	x, err = parseCoord("x", f.fields[1].Value())
	if err != nil {
		return 0, 0, "", err
	}
	frame = strings.TrimSpace(f.fields[2].Value())
	if frame == "rest" {
		frame = ""
	}
	return t, x, frame, nil
}

// frameValues parses the add-frame form. An empty name lets the registry
// pick a default.
func (f form) frameValues() (name string, v float64, err error) {
	name = strings.TrimSpace(f.fields[0].Value())
	if name == "auto" {
		name = ""
	}
	v, err = parseCoord("velocity", f.fields[1].Value())
	if err != nil {
		return "", 0, err
	}
	return name, v, nil
}

func parseCoord(label, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s is required", label)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %q", label, s)
	}
	return v, nil
}

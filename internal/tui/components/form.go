package components

import (
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FieldSpec describes one form input.
type FieldSpec struct {
	Label       string
	Placeholder string
	CharLimit   int
	Secret      bool
}

// FormModel is a vertical stack of labelled text inputs with one submit
// action.
type FormModel struct {
	theme  themes.Theme
	id     string
	submit string
	specs  []FieldSpec
	inputs []textinput.Model
	focus  int
	width  int
}

// NewForm creates a form. id tags the FormSubmittedMsg so a screen with
// several forms can tell them apart.
func NewForm(id, submit string, theme themes.Theme, fields ...FieldSpec) FormModel {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = 120
		if f.CharLimit > 0 {
			in.CharLimit = f.CharLimit
		}
		if f.Secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		inputs[i] = in
	}

	m := FormModel{
		id:     id,
		submit: submit,
		theme:  theme,
		specs:  fields,
		inputs: inputs,
		width:  40,
	}
	m.setFocus(0)
	return m
}

func (m *FormModel) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter":
			values := m.Values()
			id := m.id
			return m, func() tea.Msg {
				return FormSubmittedMsg{ID: id, Values: values}
			}
		}
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// Values returns the raw text of every field in order.
func (m FormModel) Values() []string {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = in.Value()
	}
	return values
}

// SetValues fills fields in order. Extra values are ignored.
func (m *FormModel) SetValues(values ...string) {
	for i := 0; i < len(values) && i < len(m.inputs); i++ {
		m.inputs[i].SetValue(values[i])
	}
}

// Reset clears every field and focuses the first.
func (m *FormModel) Reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.setFocus(0)
}

// Focused returns the index of the focused field.
func (m FormModel) Focused() int {
	return m.focus
}

// SetWidth sets the rendered width of each input.
func (m *FormModel) SetWidth(width int) {
	m.width = width
	for i := range m.inputs {
		m.inputs[i].Width = max(width-6, 10)
	}
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(m.theme.Muted.Render(m.specs[i].Label))
		b.WriteString("\n")
		style := m.theme.Field
		if i == m.focus {
			style = m.theme.FocusedField
		}
		b.WriteString(style.Width(m.width).Render(in.View()))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Button.Render(m.submit))
	return b.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okarpov/taskdeck/internal/validation"
)

type authMode int

const (
	modeLogin authMode = iota
	modeSignup
)

// authModel is the login/signup form.
type authModel struct {
	mode     authMode
	username textinput.Model
	password textinput.Model
	focus    int

	fieldErrs validation.Errors
}

func newAuthModel() authModel {
	username := textinput.New()
	username.Prompt = "> "
	username.Placeholder = "email"
	username.CharLimit = 100
	username.Focus()

	password := textinput.New()
	password.Prompt = "> "
	password.Placeholder = "password"
	password.CharLimit = 100
	password.EchoMode = textinput.EchoPassword

	return authModel{
		mode:      modeLogin,
		username:  username,
		password:  password,
		fieldErrs: validation.Errors{},
	}
}

// submitAuthMsg asks the root model to run login or signup with the
// entered credentials.
type submitAuthMsg struct {
	signup             bool
	username, password string
}

func (m authModel) Update(msg tea.Msg) (authModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.username.Focus()
				m.password.Blur()
			} else {
				m.username.Blur()
				m.password.Focus()
			}
			return m, nil
		case "ctrl+s":
			if m.mode == modeLogin {
				m.mode = modeSignup
			} else {
				m.mode = modeLogin
			}
			m.fieldErrs = validation.Errors{}
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.focus = 1
				m.username.Blur()
				m.password.Focus()
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m authModel) submit() (authModel, tea.Cmd) {
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()

	// Validate locally before bothering the server.
	if errs := validation.Credentials(username, password); len(errs) > 0 {
		m.fieldErrs = errs
		return m, nil
	}

	m.fieldErrs = validation.Errors{}
	signup := m.mode == modeSignup
	return m, func() tea.Msg {
		return submitAuthMsg{signup: signup, username: username, password: password}
	}
}

func (m *authModel) setFieldErrors(errs validation.Errors) {
	m.fieldErrs = errs
}

func (m *authModel) reset() {
	m.username.SetValue("")
	m.password.SetValue("")
	m.fieldErrs = validation.Errors{}
	m.focus = 0
	m.username.Focus()
	m.password.Blur()
}

func (m authModel) View() string {
	var b strings.Builder

	header := "Log in"
	hint := "ctrl+s sign up instead"
	if m.mode == modeSignup {
		header = "Sign up"
		hint = "ctrl+s log in instead"
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")

	b.WriteString(m.username.View() + "\n")
	if msg, ok := m.fieldErrs["username"]; ok {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}
	b.WriteString(m.password.View() + "\n")
	if msg, ok := m.fieldErrs["password"]; ok {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter submit · "+hint+" · ctrl+c quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

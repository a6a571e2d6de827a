package tui

import (
	"strings"

	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/aphfiwiwi/biiscoti/internal/tui/components"
	"github.com/aphfiwiwi/biiscoti/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

// splashScreen shows the brand until any key is pressed.
type splashScreen struct {
	frame
	env *env
}

func newSplashScreen(e *env) *splashScreen {
	return &splashScreen{env: e}
}

func (s *splashScreen) Init() tea.Cmd { return nil }
func (s *splashScreen) Title() string { return "Biiscoti" }

func (s *splashScreen) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return navigate(nav.Login, nav.PopUpTo(nav.Splash, true))
	}
	return nil
}

func (s *splashScreen) View() string {
	t := s.env.theme
	return t.Title.Render("biiscoti") + "\n" +
		t.Subtitle.Render("Food, thrift, beauty and groceries from local sellers") + "\n" +
		t.Muted.Render("Press any key to continue")
}

// loginScreen signs an existing account in.
type loginScreen struct {
	frame
	env     *env
	form    components.FormModel
	status  viewmodel.StatusView
	pending bool
}

const (
	loginFormID    = "login"
	registerFormID = "register"
)

func newLoginScreen(e *env) *loginScreen {
	return &loginScreen{
		env: e,
		form: components.NewForm(loginFormID, "Login", e.theme,
			components.FieldSpec{Label: "Username", CharLimit: 32},
			components.FieldSpec{Label: "Password", Secret: true, CharLimit: 64},
		),
	}
}

func (s *loginScreen) Init() tea.Cmd      { return nil }
func (s *loginScreen) Title() string      { return "Login" }
func (s *loginScreen) CapturesText() bool { return true }

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+n" {
			return navigate(nav.Register)
		}
	case components.FormSubmittedMsg:
		if msg.ID != loginFormID || s.pending {
			return nil
		}
		if s.env.accounts == nil {
			s.status = viewmodel.Failure(errNoRegistry)
			return nil
		}
		s.pending = true
		s.status = viewmodel.Info("Signing in...")
		return login(s.env.ctx, s.env.accounts, msg.Values[0], msg.Values[1])
	case loginDoneMsg:
		s.pending = false
		if msg.err != nil {
			s.status = viewmodel.Failure(msg.err)
			return nil
		}
		return navigate(nav.Home, nav.PopUpTo(nav.Login, true))
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return cmd
}

func (s *loginScreen) SetSize(width, height int) {
	s.frame.SetSize(width, height)
	s.form.SetWidth(min(width, 50))
}

func (s *loginScreen) View() string {
	return s.form.View() + "\n\n" +
		s.env.theme.Muted.Render("No account? Ctrl+N to register") + "\n" +
		renderStatus(s.env.theme, s.status)
}

// registerScreen creates an account and returns to login.
type registerScreen struct {
	frame
	env     *env
	form    components.FormModel
	status  viewmodel.StatusView
	pending bool
}

func newRegisterScreen(e *env) *registerScreen {
	return &registerScreen{
		env: e,
		form: components.NewForm(registerFormID, "Register", e.theme,
			components.FieldSpec{Label: "Username", CharLimit: 32},
			components.FieldSpec{Label: "Email", CharLimit: 120},
			components.FieldSpec{Label: "Password", Secret: true, CharLimit: 64},
			components.FieldSpec{Label: "Confirm password", Secret: true, CharLimit: 64},
			components.FieldSpec{Label: "Role", Placeholder: "buyer or admin", CharLimit: 10},
		),
	}
}

func (s *registerScreen) Init() tea.Cmd      { return nil }
func (s *registerScreen) Title() string      { return "Create account" }
func (s *registerScreen) CapturesText() bool { return true }

func (s *registerScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case components.FormSubmittedMsg:
		if msg.ID != registerFormID || s.pending {
			return nil
		}
		if s.env.accounts == nil {
			s.status = viewmodel.Failure(errNoRegistry)
			return nil
		}
		form := shop.RegisterForm{
			Username: msg.Values[0],
			Email:    msg.Values[1],
			Password: msg.Values[2],
			Confirm:  msg.Values[3],
			Role:     parseRole(msg.Values[4]),
		}
		s.pending = true
		return register(s.env.ctx, s.env.accounts, form)
	case registerDoneMsg:
		s.pending = false
		if msg.err != nil {
			s.status = viewmodel.Failure(msg.err)
			return nil
		}
		return navigate(nav.Login, nav.PopUpTo(nav.Register, true))
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return cmd
}

func (s *registerScreen) SetSize(width, height int) {
	s.frame.SetSize(width, height)
	s.form.SetWidth(min(width, 50))
}

func (s *registerScreen) View() string {
	return s.form.View() + "\n" + renderStatus(s.env.theme, s.status)
}

func parseRole(s string) model.Role {
	if strings.EqualFold(strings.TrimSpace(s), string(model.RoleAdmin)) {
		return model.RoleAdmin
	}
	return model.RoleBuyer
}

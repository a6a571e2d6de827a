package tui

import (
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/aphfiwiwi/biiscoti/internal/tui/components"
	"github.com/aphfiwiwi/biiscoti/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
)

const profileFormID = "profile"

// profileScreen edits the stored profile.
type profileScreen struct {
	frame
	env    *env
	holder *shop.ProfileHolder
	form   components.FormModel
	status viewmodel.StatusView
	filled bool
}

func newProfileScreen(e *env) (*profileScreen, error) {
	if e.registry == nil {
		return nil, errNoRegistry
	}
	store, err := e.registry.Profiles(e.ctx)
	if err != nil {
		return nil, err
	}
	return &profileScreen{
		env:    e,
		holder: shop.NewProfileHolder(e.ctx, store),
		form: components.NewForm(profileFormID, "Save Profile", e.theme,
			components.FieldSpec{Label: "Name", CharLimit: 80},
			components.FieldSpec{Label: "Email", CharLimit: 120},
			components.FieldSpec{Label: "Phone Number", CharLimit: 20},
		),
	}, nil
}

func (s *profileScreen) Init() tea.Cmd {
	return waitForUpdate(s, s.holder.Updates())
}

func (s *profileScreen) Title() string      { return "Profile" }
func (s *profileScreen) CapturesText() bool { return true }

func (s *profileScreen) SetSize(width, height int) {
	s.frame.SetSize(width, height)
	s.form.SetWidth(min(width, 50))
}

func (s *profileScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case refreshMsg:
		if msg.target != s || !msg.ok {
			return nil
		}
		if err := s.holder.LastErr(); err != nil {
			s.status = viewmodel.Failure(err)
		}
		// fill the form once; later snapshots must not clobber typing
		if p, ok := s.holder.Current(); ok && !s.filled {
			s.form.SetValues(p.Name, p.Email, p.Phone)
			s.filled = true
		}
		return waitForUpdate(s, s.holder.Updates())

	case components.FormSubmittedMsg:
		if msg.ID != profileFormID {
			return nil
		}
		err := s.holder.Save(shop.ProfileForm{
			Name:  msg.Values[0],
			Email: msg.Values[1],
			Phone: msg.Values[2],
		})
		if err != nil {
			s.status = viewmodel.Failure(err)
			return nil
		}
		s.filled = true
		s.status = viewmodel.Success("Profile saved")
		return nil
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return cmd
}

func (s *profileScreen) View() string {
	t := s.env.theme
	out := s.form.View()
	if p, ok := s.holder.Current(); ok {
		out += "\n\n" + t.Card.Render(
			t.Bold.Render(p.Name)+"\n"+
				t.Normal.Render(p.Email)+"\n"+
				t.Normal.Render(p.Phone),
		)
	}
	return out + "\n" + renderStatus(t, s.status)
}

// Close stops observing the profile and waits for a pending save.
func (s *profileScreen) Close() error {
	return s.holder.Close()
}

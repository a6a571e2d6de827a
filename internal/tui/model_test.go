package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aphfiwiwi/biiscoti/internal/auth"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"github.com/aphfiwiwi/biiscoti/internal/nav"
	"github.com/aphfiwiwi/biiscoti/internal/shop"
	"github.com/aphfiwiwi/biiscoti/internal/storage"
	"github.com/aphfiwiwi/biiscoti/internal/testutil"
	"github.com/aphfiwiwi/biiscoti/internal/tui/components"
	"github.com/aphfiwiwi/biiscoti/internal/tui/tuitest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialer struct {
	err    error
	dialed []string
}

func (d *fakeDialer) Dial(_ context.Context, phone string) error {
	d.dialed = append(d.dialed, phone)
	return d.err
}

type testApp struct {
	reg      *storage.Registry
	accounts *shop.Accounts
	dialer   *fakeDialer
	model    Model
}

func newTestApp(t *testing.T, opts ...Option) *testApp {
	t.Helper()
	reg := testutil.SetupRegistry(t)
	creds, err := reg.Credentials(context.Background())
	require.NoError(t, err)
	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	app := &testApp{
		reg:      reg,
		accounts: shop.NewAccounts(creds, tokens),
		dialer:   &fakeDialer{},
	}
	base := []Option{
		WithRegistry(reg),
		WithAccounts(app.accounts),
		WithDialer(app.dialer),
		WithSize(100, 40),
	}
	app.model = New(context.Background(), append(base, opts...)...)
	t.Cleanup(app.model.Close)
	return app
}

// send feeds msg to the model and returns the command it produced.
func (a *testApp) send(msg tea.Msg) tea.Cmd {
	next, cmd := a.model.Update(msg)
	a.model = next.(Model)
	return cmd
}

// drive sends msg and keeps feeding back the messages its commands
// produce, up to depth hops.
func (a *testApp) drive(t *testing.T, msg tea.Msg, depth int) {
	t.Helper()
	for i := 0; i < depth && msg != nil; i++ {
		cmd := a.send(msg)
		msg = tuitest.RunCmd(t, cmd)
	}
}

func (a *testApp) current(t *testing.T) Screen {
	t.Helper()
	cur, ok := a.model.nav.Current()
	require.True(t, ok)
	return cur.Screen
}

func TestModel_SplashGoesToLogin(t *testing.T) {
	app := newTestApp(t)
	assert.Nil(t, tuitest.RunCmd(t, app.model.Init()))
	assert.Equal(t, nav.Splash, app.model.Route())
	assert.Contains(t, app.model.View(), "Press any key")

	app.drive(t, tuitest.KeyPress("x"), 2)
	assert.Equal(t, nav.Login, app.model.Route())
	assert.Equal(t, []nav.Route{nav.Login}, app.model.nav.Stack())
}

func TestModel_RegisterThenLoginClearsAuthScreens(t *testing.T) {
	app := newTestApp(t, WithStartRoute(nav.Login))
	app.model.Init()

	app.drive(t, tuitest.Key(tea.KeyCtrlN), 2)
	require.Equal(t, nav.Register, app.model.Route())

	app.drive(t, components.FormSubmittedMsg{
		ID:     registerFormID,
		Values: []string{"wanjiru", "wanjiru@example.com", "hunter22", "hunter22", "admin"},
	}, 3)
	require.Equal(t, nav.Login, app.model.Route())
	assert.NotContains(t, app.model.nav.Stack(), nav.Register)

	app.drive(t, components.FormSubmittedMsg{
		ID:     loginFormID,
		Values: []string{"wanjiru", "hunter22"},
	}, 3)
	require.Equal(t, nav.Home, app.model.Route())
	assert.Equal(t, []nav.Route{nav.Home}, app.model.nav.Stack())
	assert.True(t, app.model.env.isAdmin())
	assert.Contains(t, app.model.View(), "Welcome, wanjiru")

	// backing out of home leaves the app instead of returning to login
	cmd := app.send(tuitest.KeyEsc())
	assert.IsType(t, tea.QuitMsg{}, tuitest.RunCmd(t, cmd))
}

func TestModel_LoginFailureShowsStatus(t *testing.T) {
	app := newTestApp(t, WithStartRoute(nav.Login))
	app.model.Init()

	app.drive(t, components.FormSubmittedMsg{
		ID:     loginFormID,
		Values: []string{"nobody", "whatever"},
	}, 2)

	assert.Equal(t, nav.Login, app.model.Route())
	assert.Contains(t, app.model.View(), "wrong username or password")
}

func TestModel_AdminScreenAddsAndDeletes(t *testing.T) {
	app := newTestApp(t, WithStartRoute(nav.BakeryAdmin))
	initCmd := app.model.Init()

	screen, ok := app.current(t).(*listingScreen)
	require.True(t, ok)
	assert.Equal(t, "Admin: Manage Bakery", screen.Title())

	app.send(components.FormSubmittedMsg{ID: listingFormID, Values: []string{"Croissant", "1.5", "Flaky", ""}})
	app.send(components.FormSubmittedMsg{ID: listingFormID, Values: []string{"Scone", "cheap", "", ""}})
	require.NoError(t, screen.catalog.Flush(context.Background()))

	table, err := app.reg.Listings(context.Background(), model.CategoryBakery)
	require.NoError(t, err)
	assert.Equal(t, 1, testutil.MustCount(t, table))

	require.Eventually(t, func() bool {
		snap, _ := screen.catalog.Snapshot()
		return len(snap) == 1
	}, 2*time.Second, 10*time.Millisecond)
	app.send(tuitest.RunCmd(t, initCmd))
	assert.Contains(t, app.model.View(), "Croissant")

	app.send(tuitest.Key(tea.KeyCtrlD))
	require.NoError(t, screen.catalog.Flush(context.Background()))
	assert.Zero(t, testutil.MustCount(t, table))
}

func TestModel_BuyerScreenShowsLiveListings(t *testing.T) {
	app := newTestApp(t, WithStartRoute(nav.Horticulture))
	testutil.SetupListings(t, app.reg, model.CategoryHorticulture,
		model.Listing{Name: "Lawn Mowing", Amount: 20, Description: "Front yard"},
	)

	msg := tuitest.RunCmd(t, app.model.Init())
	refresh, ok := msg.(refreshMsg)
	require.True(t, ok)
	assert.True(t, refresh.ok)

	app.send(refresh)
	view := app.model.View()
	assert.Contains(t, view, "Available Horticulture")
	assert.Contains(t, view, "Lawn Mowing")
	assert.Contains(t, view, "20.00")

	// buyers cannot open the admin screen
	app.send(tuitest.Key(tea.KeyCtrlA))
	assert.Equal(t, nav.Horticulture, app.model.Route())
}

func TestModel_ContactDials(t *testing.T) {
	app := newTestApp(t, WithStartRoute(nav.Contact), WithContactPhone("0741462249"))
	app.model.Init()
	assert.Contains(t, app.model.View(), "0741462249")

	app.drive(t, tuitest.KeyEnter(), 2)
	assert.Equal(t, []string{"0741462249"}, app.dialer.dialed)
	assert.Contains(t, app.model.View(), "Calling 0741462249")
}

func TestModel_ContactDialFailure(t *testing.T) {
	app := newTestApp(t, WithStartRoute(nav.Contact))
	app.dialer.err = errors.New("no opener")
	app.model.Init()

	app.drive(t, tuitest.KeyEnter(), 2)
	assert.Contains(t, app.model.View(), "Could not open the dialer")
}

func TestModel_BottomNavAndHelp(t *testing.T) {
	app := newTestApp(t, WithStartRoute(nav.Home))
	app.model.Init()

	view := tuitest.StripANSI(app.model.View())
	assert.True(t, tuitest.ContainsInOrder(view, "Places", "Bakery", "Search", "Profile"))

	assert.False(t, app.model.showHelp)
	app.send(tuitest.KeyPress("?"))
	assert.True(t, app.model.showHelp)

	app.drive(t, tuitest.Key(tea.KeyF4), 2)
	assert.Equal(t, nav.Search, app.model.Route())

	// the search box takes "?" as text
	app.send(tuitest.KeyPress("?"))
	assert.True(t, app.model.showHelp)

	app.drive(t, tuitest.Key(tea.KeyF1), 2)
	assert.Equal(t, []nav.Route{nav.Home}, app.model.nav.Stack())
}

func TestModel_HomeMenuOpensShop(t *testing.T) {
	app := newTestApp(t, WithStartRoute(nav.Home))
	app.model.Init()

	app.send(tuitest.KeyDown())
	app.drive(t, tuitest.KeyEnter(), 2)
	assert.Equal(t, nav.Bakery, app.model.Route())

	app.send(tuitest.KeyEsc())
	assert.Equal(t, nav.Home, app.model.Route())
}

func TestModel_MissingRegistryReportsError(t *testing.T) {
	m := New(context.Background(), WithStartRoute(nav.Home))
	defer m.Close()
	m.Init()

	next, cmd := m.Update(navigateMsg{route: nav.Profile})
	m = next.(Model)
	next, _ = m.Update(tuitest.RunCmd(t, cmd))
	m = next.(Model)

	assert.Equal(t, nav.Home, m.Route())
	assert.Contains(t, m.View(), "something went wrong")
}

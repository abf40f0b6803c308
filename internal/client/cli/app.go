package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/mvikeeper/internal/client/client"
	"github.com/dmitrijs2005/mvikeeper/internal/client/config"
	"github.com/dmitrijs2005/mvikeeper/internal/client/features/announcements"
	"github.com/dmitrijs2005/mvikeeper/internal/client/features/home"
	"github.com/dmitrijs2005/mvikeeper/internal/client/features/login"
	"github.com/dmitrijs2005/mvikeeper/internal/client/features/security"
	"github.com/dmitrijs2005/mvikeeper/internal/client/navigation"
	"github.com/dmitrijs2005/mvikeeper/internal/client/session"
	"github.com/dmitrijs2005/mvikeeper/internal/client/usecases"
	"github.com/dmitrijs2005/mvikeeper/internal/effect"
	"github.com/dmitrijs2005/mvikeeper/internal/logging"
)

var (
	ErrWrongScreen   = errors.New("command is not available on this screen")
	ErrLoginDisabled = errors.New("enter a valid account first")
	ErrBusy          = errors.New("request in progress")
)

type screen int

const (
	screenLogin screen = iota
	screenHome
	screenVerification
	screenAnnouncements
)

func (s screen) String() string {
	switch s {
	case screenLogin:
		return "login"
	case screenHome:
		return "home"
	case screenVerification:
		return "verify"
	case screenAnnouncements:
		return "announcements"
	default:
		return "unknown"
	}
}

// deps are the outer resources an App runs on.
type deps struct {
	cfg     *config.Config
	backend client.Client
	session usecases.SessionStore
	closer  io.Closer
	in      io.Reader
	out     io.Writer
	logger  logging.Logger
}

// App is the terminal client. All screen switching happens on the goroutine
// running Run.
type App struct {
	cfg     *config.Config
	backend client.Client
	closer  io.Closer
	in      io.Reader
	out     io.Writer
	logger  logging.Logger

	queue      *eventQueue
	dispatcher effect.Dispatcher

	currentUser *usecases.GetCurrentUser
	loginUC     *usecases.Login
	logoutUC    *usecases.Logout
	validate    *usecases.ValidateAccount
	verify      *usecases.VerifyPassword

	nav           *navigation.Manager
	home          *home.Model
	announcements *announcements.Model
	login         *login.Model
	security      *security.Model

	unsubscribe  []func()
	stopSecurity func()
	lastSecurity security.State
	failures     int
	screen       screen
	readPassword func() (string, error)
}

// NewApp opens the session database and connects to the server described
// by cfg.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	db, err := session.OpenDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	backend, err := client.NewKeeperClient(cfg.ServerAddr, cfg.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s: %w", cfg.ServerAddr, err)
	}

	return newApp(deps{
		cfg:     cfg,
		backend: backend,
		session: session.NewSQLiteStore(db),
		closer:  db,
		in:      os.Stdin,
		out:     os.Stdout,
		logger:  logger,
	}), nil
}

func newApp(d deps) *App {
	if d.logger == nil {
		d.logger = logging.Nop()
	}
	out := &syncWriter{w: d.out}

	a := &App{
		cfg:     d.cfg,
		backend: d.backend,
		closer:  d.closer,
		in:      d.in,
		out:     out,
		logger:  d.logger,
		queue:   newEventQueue(),

		currentUser: usecases.NewGetCurrentUser(d.session, d.logger),
		loginUC:     usecases.NewLogin(d.backend, d.session),
		logoutUC:    usecases.NewLogout(d.backend, d.session),
		validate:    usecases.NewValidateAccount(d.cfg.AccountMaxLength),
		verify:      usecases.NewVerifyPassword(d.backend),
	}
	a.readPassword = func() (string, error) { return GetPassword(a.out, "password: ") }
	a.dispatcher = newPresenter(out, a.queue, d.logger)

	a.nav = navigation.NewManager(a.dispatcher, d.logger)
	a.home = home.New(a.currentUser, a.logoutUC, a.nav, a.dispatcher, d.logger)
	a.announcements = announcements.New(usecases.NewFetchAnnouncements(d.backend), a.dispatcher, d.logger)

	a.unsubscribe = append(a.unsubscribe,
		a.nav.Subscribe(func(s navigation.ViewState) { a.queue.push(navEvent{state: s}) }),
		a.announcements.Subscribe(func(s announcements.State) { a.queue.push(announcementsEvent{state: s}) }),
	)
	return a
}

// Run restores the saved session and serves commands until ctx is done,
// input ends or the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.start(ctx)
	runREPL(ctx, a, a.in, a.queue.ready)
	return nil
}

// Close stops every model and releases the backend and session database.
func (a *App) Close() {
	for _, cancel := range a.unsubscribe {
		cancel()
	}
	a.unsubscribe = nil

	a.closeSecurity()
	if a.login != nil {
		a.login.Close()
		a.login = nil
	}
	a.announcements.Close()
	a.home.Close()
	a.nav.Close()

	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing backend", "error", err)
		}
		a.backend = nil
	}
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing session db", "error", err)
		}
		a.closer = nil
	}
}

// start picks the first screen from the persisted session.
func (a *App) start(ctx context.Context) {
	u := a.currentUser.Execute(ctx)
	if u == nil {
		a.showLogin(ctx)
		return
	}
	a.backend.SetAccessToken(u.Token)
	a.logger.Info(ctx, "session restored", "account", u.Account)
	a.showHome(ctx)
}

func (a *App) status() string {
	switch a.screen {
	case screenLogin:
		return a.screen.String()
	case screenVerification:
		if d := a.nav.State().PendingDestination; d != nil {
			return a.screen.String() + ":" + d.String()
		}
	}
	if u := a.home.State().User; u != nil {
		return u.Account + "@" + a.screen.String()
	}
	return a.screen.String()
}

func (a *App) help() string {
	return helpText(a.screen)
}

// pump handles queued events until the queue is empty.
func (a *App) pump(ctx context.Context) {
	for {
		events := a.queue.take()
		if len(events) == 0 {
			return
		}
		for _, e := range events {
			a.handleEvent(ctx, e)
		}
	}
}

func (a *App) handleEvent(ctx context.Context, e event) {
	switch ev := e.(type) {
	case routeEvent:
		switch ev.route {
		case effect.RouteHome:
			a.showHome(ctx)
		case effect.RouteLogin:
			a.showLogin(ctx)
		case effect.RouteAnnouncements:
			if err := a.nav.NavigateToAnnouncements(ctx); err != nil {
				a.logger.Error(ctx, "navigate to announcements", "error", err)
			}
		}

	case navEvent:
		a.onNavigation(ctx, ev.state)

	case securityEvent:
		if ev.model != a.security {
			return
		}
		a.onSecurity(ctx, ev.state)

	case announcementsEvent:
		if a.screen == screenAnnouncements && !ev.state.IsLoading {
			renderAnnouncements(a.out, ev.state)
		}
	}
}

func (a *App) onNavigation(ctx context.Context, s navigation.ViewState) {
	switch {
	case s.ShouldShowSecurityVerification():
		if a.screen != screenVerification {
			a.showVerification(s)
		}

	case s.ShouldShowAnnouncements():
		if a.screen != screenAnnouncements {
			a.closeSecurity()
			a.screen = screenAnnouncements
			if err := a.announcements.Handle(ctx, announcements.FetchAnnouncements{}); err != nil {
				a.logger.Error(ctx, "fetch announcements", "error", err)
			}
			renderAnnouncements(a.out, a.announcements.State())
		}

	default:
		if a.screen == screenVerification || a.screen == screenAnnouncements {
			a.closeSecurity()
			a.screen = screenHome
			renderHome(a.out, a.home.State())
		}
	}
}

// onSecurity counts finished attempts that ended with an error and gives up
// after the configured number of failures.
func (a *App) onSecurity(ctx context.Context, s security.State) {
	prev := a.lastSecurity
	a.lastSecurity = s

	if !prev.IsLoading || s.IsLoading || s.ErrorMessage == "" {
		return
	}

	a.failures++
	left := a.cfg.MaxVerificationFailures - a.failures
	if left > 0 {
		fmt.Fprintf(a.out, "%d attempt(s) left\n", left)
		return
	}

	a.logger.Warn(ctx, "too many verification failures", "failures", a.failures)
	if err := a.nav.SecurityVerificationFailed(ctx); err != nil {
		a.logger.Error(ctx, "report verification failure", "error", err)
	}
}

func (a *App) showLogin(ctx context.Context) {
	a.closeSecurity()
	if a.login != nil {
		a.login.Close()
	}
	a.login = login.New(a.loginUC, a.validate, a.dispatcher, a.logger)
	a.screen = screenLogin

	if err := a.nav.ResetNavigation(ctx); err != nil {
		a.logger.Error(ctx, "reset navigation", "error", err)
	}
	renderLogin(a.out, a.login.State(), a.validate.MaxLength())
}

func (a *App) showHome(ctx context.Context) {
	if a.login != nil {
		a.login.Close()
		a.login = nil
	}
	a.screen = screenHome

	if err := a.home.Handle(ctx, home.ViewAppeared{}); err != nil {
		a.logger.Error(ctx, "load home", "error", err)
	}
	renderHome(a.out, a.home.State())
}

func (a *App) showVerification(s navigation.ViewState) {
	a.closeSecurity()

	m := security.New(a.verify, a.nav, a.dispatcher, a.logger)
	cancel := m.Subscribe(func(st security.State) { a.queue.push(securityEvent{model: m, state: st}) })

	a.security = m
	a.stopSecurity = cancel
	a.lastSecurity = m.State()
	a.failures = 0
	a.screen = screenVerification

	renderVerification(a.out, s.PendingDestination, a.cfg.MaxVerificationFailures)
}

func (a *App) closeSecurity() {
	if a.security == nil {
		return
	}
	a.stopSecurity()
	a.security.Close()
	a.security = nil
	a.stopSecurity = nil
}

func (a *App) require(s screen) error {
	if a.screen != s {
		return fmt.Errorf("%w (%s)", ErrWrongScreen, a.screen)
	}
	return nil
}

// SetAccount replaces the account typed on the login screen.
func (a *App) SetAccount(ctx context.Context, text string) error {
	if err := a.require(screenLogin); err != nil {
		return err
	}
	if err := a.login.Handle(ctx, login.AccountChanged{Text: text}); err != nil {
		return err
	}
	renderLogin(a.out, a.login.State(), a.validate.MaxLength())
	return nil
}

// Login submits the account. It is refused while the button would be
// disabled, so repeated input cannot start a second request.
func (a *App) Login(ctx context.Context) error {
	if err := a.require(screenLogin); err != nil {
		return err
	}
	s := a.login.State()
	if s.IsLoading {
		return ErrBusy
	}
	if !s.IsLoginEnabled {
		return ErrLoginDisabled
	}
	fmt.Fprintln(a.out, "logging in...")
	return a.login.Handle(ctx, login.LoginClicked{})
}

// ClearError dismisses the error shown on the current screen.
func (a *App) ClearError(ctx context.Context) error {
	switch a.screen {
	case screenLogin:
		return a.login.Handle(ctx, login.ClearError{})
	case screenHome:
		return a.home.Handle(ctx, home.ClearError{})
	case screenVerification:
		return a.security.Handle(ctx, security.ClearError{})
	default:
		return fmt.Errorf("%w (%s)", ErrWrongScreen, a.screen)
	}
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.require(screenHome); err != nil {
		return err
	}
	if a.home.State().IsLoading {
		return ErrBusy
	}
	fmt.Fprintln(a.out, "logging out...")
	return a.home.Handle(ctx, home.LogoutClicked{})
}

// OpenAnnouncements asks for the protected announcements screen, which
// goes through password verification first.
func (a *App) OpenAnnouncements(ctx context.Context) error {
	if err := a.require(screenHome); err != nil {
		return err
	}
	return a.home.Handle(ctx, home.OpenAnnouncements{})
}

// OpenAnnouncementsDirect skips verification.
func (a *App) OpenAnnouncementsDirect(ctx context.Context) error {
	if err := a.require(screenHome); err != nil {
		return err
	}
	return a.nav.NavigateToAnnouncements(ctx)
}

// Verify checks password, prompting for it without echo when empty.
func (a *App) Verify(ctx context.Context, password string) error {
	if err := a.require(screenVerification); err != nil {
		return err
	}
	if a.security.State().IsLoading {
		return ErrBusy
	}
	d := a.nav.State().PendingDestination
	if d == nil {
		return fmt.Errorf("%w (nothing to verify)", ErrWrongScreen)
	}

	if password == "" {
		pw, err := a.readPassword()
		if err != nil {
			return err
		}
		password = pw
	}

	fmt.Fprintln(a.out, "verifying...")
	return a.security.Handle(ctx, security.VerifyPassword{Password: password, Destination: *d})
}

// Cancel leaves the verification prompt.
func (a *App) Cancel(ctx context.Context) error {
	if err := a.require(screenVerification); err != nil {
		return err
	}
	return a.nav.DismissCurrentNavigation(ctx)
}

func (a *App) Refresh(ctx context.Context) error {
	if err := a.require(screenAnnouncements); err != nil {
		return err
	}
	if a.announcements.State().IsLoading {
		return ErrBusy
	}
	return a.announcements.Handle(ctx, announcements.RefreshAnnouncements{})
}

// Back leaves the announcements screen.
func (a *App) Back(ctx context.Context) error {
	if err := a.require(screenAnnouncements); err != nil {
		return err
	}
	return a.nav.ResetNavigation(ctx)
}

// Show prints the current screen.
func (a *App) Show(context.Context) error {
	switch a.screen {
	case screenLogin:
		renderLogin(a.out, a.login.State(), a.validate.MaxLength())
	case screenHome:
		renderHome(a.out, a.home.State())
	case screenVerification:
		renderVerification(a.out, a.nav.State().PendingDestination, a.cfg.MaxVerificationFailures-a.failures)
		renderSecurity(a.out, a.security.State())
	case screenAnnouncements:
		renderAnnouncements(a.out, a.announcements.State())
	}
	return nil
}

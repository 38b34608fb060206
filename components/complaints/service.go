package complaints

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReturnDelay is how long the success indicator stays up before the
// client re-fetches and returns to the dashboard.
const DefaultReturnDelay = 2500 * time.Millisecond

var (
	errMissingComplaints = errors.New("complaints: complaint repository not configured")
	errMissingUsers      = errors.New("complaints: user repository not configured")
)

// Options configures the Service. Collaborators are interfaces so transports
// and tests can swap implementations.
type Options struct {
	Complaints  ComplaintRepository
	Users       UserRepository
	Sessions    *SessionStore
	Router      *ViewRouter
	Catalog     *CatalogDocument
	Validator   FormValidator
	Scheduler   Scheduler
	RefreshHook RefreshHook
	Telemetry   Telemetry
	Translator  TranslationService
	Logger      *zap.Logger
	Locale      string
	ReturnDelay time.Duration
}

// SettingsForm mirrors the settings panel inputs.
type SettingsForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UIState is a consistent snapshot of everything a renderer needs.
type UIState struct {
	Route          RouteState      `json:"route"`
	Session        *Session        `json:"session,omitempty"`
	DisplayName    string          `json:"display_name,omitempty"`
	AvatarInitial  string          `json:"avatar_initial,omitempty"`
	Dashboard      DashboardView   `json:"dashboard"`
	Submission     SubmissionState `json:"submission"`
	LastOutcome    SubmissionState `json:"last_outcome,omitempty"`
	SuccessVisible bool            `json:"success_visible"`
	Draft          ComplaintForm   `json:"draft"`
	Settings       SettingsForm    `json:"settings"`
	LoginEmail     string          `json:"login_email"`
	Notice         *Notice         `json:"notice,omitempty"`
	Categories     []Category      `json:"categories"`
}

// Service is the client: it owns the session, the derived dashboard view and
// the submission flow, and talks to the remote service through repositories.
type Service struct {
	opts Options
	log  *zap.Logger

	mu             sync.Mutex
	dashboard      DashboardView
	submission     SubmissionState
	lastOutcome    SubmissionState
	successVisible bool
	draft          ComplaintForm
	settings       SettingsForm
	loginEmail     string
	notice         *Notice
	cancelReturn   func() bool
	returnSeq      uint64
}

// NewService builds a Service with safe defaults.
func NewService(opts Options) *Service {
	if opts.Sessions == nil {
		opts.Sessions = NewSessionStore()
	}
	if opts.Router == nil {
		opts.Router = NewViewRouter()
	}
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog()
	}
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaFormValidator("")
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ReturnDelay <= 0 {
		opts.ReturnDelay = DefaultReturnDelay
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	svc := &Service{
		opts:       opts,
		log:        opts.Logger.Named("complaints"),
		dashboard:  emptyDashboardView(),
		submission: SubmissionIdle,
	}
	if first, ok := opts.Catalog.Resolve(""); ok {
		svc.draft.Category = first.Name
	}
	return svc
}

// State returns a snapshot of the client state.
func (s *Service) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Service) stateLocked() UIState {
	state := UIState{
		Route:          s.opts.Router.State(),
		Dashboard:      s.dashboard,
		Submission:     s.submission,
		LastOutcome:    s.lastOutcome,
		SuccessVisible: s.successVisible,
		Draft:          s.draft,
		Settings:       s.settings,
		LoginEmail:     s.loginEmail,
		Categories:     append([]Category(nil), s.opts.Catalog.Categories...),
	}
	if session, ok := s.opts.Sessions.Current(); ok {
		state.Session = &session
		state.DisplayName = session.Name
		state.AvatarInitial = session.AvatarInitial()
	}
	if s.notice != nil {
		notice := *s.notice
		state.Notice = &notice
	}
	return state
}

// Dashboard returns the most recently rendered dashboard view.
func (s *Service) Dashboard() DashboardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// Session returns the active session, if any.
func (s *Service) Session() (Session, bool) {
	return s.opts.Sessions.Current()
}

// RefreshDashboard fetches the whole collection, filters it to the session
// email and replaces the dashboard view. A failed fetch is logged and leaves
// the previous view in place; the error is returned for programmatic callers
// but never turned into a user notice. Concurrent refreshes are not
// deduplicated: whichever response lands last wins.
func (s *Service) RefreshDashboard(ctx context.Context) error {
	if s.opts.Complaints == nil {
		return errMissingComplaints
	}
	if _, ok := s.opts.Sessions.Current(); !ok {
		return ErrNoSession
	}
	records, err := s.opts.Complaints.ListComplaints(ctx)
	if err != nil {
		s.log.Warn("could not load complaints", zap.Error(err))
		s.recordTelemetry(ctx, "complaints.dashboard.refresh_error", map[string]any{"error": err.Error()})
		return fmt.Errorf("complaints: refresh dashboard: %w", err)
	}
	// The session is read again on arrival: the response is filtered with
	// whatever identity is current, and dropped when nobody is signed in.
	session, ok := s.opts.Sessions.Current()
	if !ok {
		s.log.Debug("discarding complaints fetched after logout")
		return nil
	}
	view := Aggregate(records, session.Email)

	s.mu.Lock()
	s.dashboard = view
	s.mu.Unlock()

	s.recordTelemetry(ctx, "complaints.dashboard.refresh", map[string]any{
		"total":    view.Total,
		"pending":  view.Pending,
		"active":   view.Active,
		"resolved": view.Resolved,
	})
	s.publish(ctx, "dashboard.refresh")
	return nil
}

// SelectTab shows tab. Entering the dashboard or the complaints list
// re-fetches the collection.
func (s *Service) SelectTab(ctx context.Context, tab Tab) error {
	if err := s.selectTab(ctx, tab); err != nil {
		return err
	}
	if tab == TabDashboard || tab == TabComplaints {
		_ = s.RefreshDashboard(ctx)
	}
	return nil
}

func (s *Service) selectTab(ctx context.Context, tab Tab) error {
	if err := s.opts.Router.Select(tab); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "complaints.view.select", map[string]any{"tab": string(tab)})
	s.publish(ctx, "view.select")
	return nil
}

// ToggleAuth switches the auth screen between login and register.
func (s *Service) ToggleAuth(ctx context.Context, mode AuthMode) {
	s.opts.Router.ToggleAuth(mode)
	s.publish(ctx, "view.auth")
}

// ToggleProfileMenu flips the profile dropdown.
func (s *Service) ToggleProfileMenu(ctx context.Context) {
	s.opts.Router.ToggleProfileMenu()
	s.publish(ctx, "view.profile_menu")
}

// CloseProfileMenu hides the profile dropdown.
func (s *Service) CloseProfileMenu(ctx context.Context) {
	s.opts.Router.CloseProfileMenu()
	s.publish(ctx, "view.profile_menu")
}

// DismissNotice clears the current notice.
func (s *Service) DismissNotice(ctx context.Context) {
	s.mu.Lock()
	s.notice = nil
	s.mu.Unlock()
	s.publish(ctx, "notice.dismiss")
}

// Close cancels any pending deferred transition.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingReturnLocked()
}

func (s *Service) setNotice(level NoticeLevel, message string) {
	s.mu.Lock()
	s.notice = &Notice{Level: level, Message: message}
	s.mu.Unlock()
}

func (s *Service) message(ctx context.Context, fallback string) string {
	return translateOrFallback(ctx, s.opts.Translator, messageKeys[fallback], s.opts.Locale, fallback, nil)
}

func (s *Service) publish(ctx context.Context, reason string) {
	event := StateEvent{
		ID:     uuid.NewString(),
		Reason: reason,
		State:  s.State(),
	}
	if err := s.opts.RefreshHook.StateUpdated(ctx, event); err != nil {
		s.log.Warn("refresh hook failed", zap.String("reason", reason), zap.Error(err))
	}
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

type noopRefreshHook struct{}

func (noopRefreshHook) StateUpdated(context.Context, StateEvent) error {
	return nil
}

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	gocommand "github.com/goliatone/go-command"
	complaints "github.com/goliatone/go-complaints/components/complaints"
	"github.com/goliatone/go-complaints/components/complaints/commands"
	"github.com/goliatone/go-complaints/components/complaints/queries"
)

// Action names accepted by Execute.
const (
	ActionRegister          = "register"
	ActionLogin             = "login"
	ActionLogout            = "logout"
	ActionShowSettings      = "show-settings"
	ActionSaveSettings      = "save-settings"
	ActionSubmit            = "submit"
	ActionSelectTab         = "select-tab"
	ActionToggleAuth        = "toggle-auth"
	ActionToggleProfileMenu = "toggle-profile-menu"
	ActionDismissNotice     = "dismiss-notice"
	ActionRefresh           = "refresh"
)

var (
	// ErrUnknownAction is returned for action names with no command behind them.
	ErrUnknownAction = errors.New("httpapi: unknown action")
	errNoStateQuery  = errors.New("httpapi: state query not configured")
)

// DecodeError reports a request body that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "httpapi: decode payload: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// Executor runs a named client action with a JSON payload.
type Executor interface {
	Execute(ctx context.Context, action string, body []byte) error
}

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	Register          gocommand.Commander[commands.RegisterInput]
	Login             gocommand.Commander[commands.LoginInput]
	Logout            gocommand.Commander[commands.LogoutInput]
	ShowSettings      gocommand.Commander[commands.ShowSettingsInput]
	SaveSettings      gocommand.Commander[commands.SaveSettingsInput]
	Submit            gocommand.Commander[commands.SubmitComplaintInput]
	SelectTab         gocommand.Commander[commands.SelectTabInput]
	ToggleAuth        gocommand.Commander[commands.ToggleAuthInput]
	ToggleProfileMenu gocommand.Commander[commands.ToggleProfileMenuInput]
	DismissNotice     gocommand.Commander[commands.DismissNoticeInput]
	Refresh           gocommand.Commander[commands.RefreshDashboardInput]
	State             gocommand.Querier[queries.StateInput, complaints.UIState]
}

var _ Executor = (*Handlers)(nil)

// NewHandlers wires a command set and state query into handlers.
func NewHandlers(set commands.Set, state gocommand.Querier[queries.StateInput, complaints.UIState]) *Handlers {
	return &Handlers{
		Register:          set.Register,
		Login:             set.Login,
		Logout:            set.Logout,
		ShowSettings:      set.ShowSettings,
		SaveSettings:      set.SaveSettings,
		Submit:            set.Submit,
		SelectTab:         set.SelectTab,
		ToggleAuth:        set.ToggleAuth,
		ToggleProfileMenu: set.ToggleProfileMenu,
		DismissNotice:     set.DismissNotice,
		Refresh:           set.Refresh,
		State:             state,
	}
}

// Execute decodes body into the action's input and runs its command.
func (h *Handlers) Execute(ctx context.Context, action string, body []byte) error {
	switch action {
	case ActionRegister:
		return run(ctx, h.Register, body)
	case ActionLogin:
		return run(ctx, h.Login, body)
	case ActionLogout:
		return run(ctx, h.Logout, body)
	case ActionShowSettings:
		return run(ctx, h.ShowSettings, body)
	case ActionSaveSettings:
		return run(ctx, h.SaveSettings, body)
	case ActionSubmit:
		return run(ctx, h.Submit, body)
	case ActionSelectTab:
		return run(ctx, h.SelectTab, body)
	case ActionToggleAuth:
		return run(ctx, h.ToggleAuth, body)
	case ActionToggleProfileMenu:
		return run(ctx, h.ToggleProfileMenu, body)
	case ActionDismissNotice:
		return run(ctx, h.DismissNotice, body)
	case ActionRefresh:
		return run(ctx, h.Refresh, body)
	default:
		return ErrUnknownAction
	}
}

// Snapshot returns the current client state.
func (h *Handlers) Snapshot(ctx context.Context) (complaints.UIState, error) {
	if h.State == nil {
		return complaints.UIState{}, errNoStateQuery
	}
	return h.State.Query(ctx, queries.StateInput{})
}

func run[T any](ctx context.Context, cmd gocommand.Commander[T], body []byte) error {
	if cmd == nil {
		return ErrUnknownAction
	}
	var msg T
	if len(body) > 0 {
		if err := json.Unmarshal(body, &msg); err != nil {
			return &DecodeError{Err: err}
		}
	}
	return cmd.Execute(ctx, msg)
}

// HandleAction runs action and replies with the resulting state.
func (h *Handlers) HandleAction(w http.ResponseWriter, r *http.Request, action string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Execute(r.Context(), action, body); err != nil {
		writeError(w, StatusFor(err), err)
		return
	}
	h.HandleState(w, r)
}

// HandleState replies with the current client state.
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	state, err := h.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// StatusFor maps client errors onto HTTP status codes.
func StatusFor(err error) int {
	var (
		decodeErr *DecodeError
		serverErr *complaints.ServerError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &decodeErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownAction), errors.Is(err, complaints.ErrUnknownTab):
		return http.StatusNotFound
	case complaints.IsValidation(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, complaints.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, complaints.ErrSubmissionBusy):
		return http.StatusConflict
	case complaints.IsTransport(err):
		return http.StatusBadGateway
	case errors.As(err, &serverErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

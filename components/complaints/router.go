package complaints

import (
	"fmt"
	"sync"
)

// Screen is the top-level panel: the auth form or the signed-in app.
type Screen string

const (
	ScreenAuth Screen = "auth"
	ScreenApp  Screen = "app"
)

// Tab is a panel inside the signed-in app.
type Tab string

const (
	TabDashboard    Tab = "dashboard"
	TabNewComplaint Tab = "new-complaint"
	TabComplaints   Tab = "complaints"
	TabSettings     Tab = "settings"
)

// Tabs lists every selectable tab in navigation order.
func Tabs() []Tab {
	return []Tab{TabDashboard, TabNewComplaint, TabComplaints, TabSettings}
}

// ParseTab validates a tab identifier.
func ParseTab(value string) (Tab, error) {
	for _, tab := range Tabs() {
		if string(tab) == value {
			return tab, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, value)
}

// AuthMode toggles between the login and register forms.
type AuthMode string

const (
	AuthLogin    AuthMode = "login"
	AuthRegister AuthMode = "register"
)

// RouteState is a snapshot of the router.
type RouteState struct {
	Screen      Screen   `json:"screen"`
	Tab         Tab      `json:"tab"`
	AuthMode    AuthMode `json:"auth_mode"`
	ProfileMenu bool     `json:"profile_menu"`
}

// ViewRouter keeps exactly one screen and one tab active. There is no history.
type ViewRouter struct {
	mu    sync.RWMutex
	state RouteState
}

// NewViewRouter starts on the login form.
func NewViewRouter() *ViewRouter {
	return &ViewRouter{state: RouteState{
		Screen:   ScreenAuth,
		Tab:      TabDashboard,
		AuthMode: AuthLogin,
	}}
}

// State returns the current selection.
func (r *ViewRouter) State() RouteState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Select activates tab, deactivating every other tab.
func (r *ViewRouter) Select(tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Tab = tab
	return nil
}

// Active reports whether tab is the visible tab of the signed-in app.
func (r *ViewRouter) Active(tab Tab) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Screen == ScreenApp && r.state.Tab == tab
}

// ToggleAuth switches between login and register forms.
func (r *ViewRouter) ToggleAuth(mode AuthMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if mode == AuthRegister {
		r.state.AuthMode = AuthRegister
		return
	}
	r.state.AuthMode = AuthLogin
}

// EnterApp shows the signed-in app on the dashboard tab.
func (r *ViewRouter) EnterApp() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Screen = ScreenApp
	r.state.Tab = TabDashboard
	r.state.ProfileMenu = false
}

// ExitApp returns to the auth screen.
func (r *ViewRouter) ExitApp() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Screen = ScreenAuth
	r.state.ProfileMenu = false
}

// ToggleProfileMenu flips the profile dropdown.
func (r *ViewRouter) ToggleProfileMenu() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.ProfileMenu = !r.state.ProfileMenu
	return r.state.ProfileMenu
}

// CloseProfileMenu hides the profile dropdown.
func (r *ViewRouter) CloseProfileMenu() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.ProfileMenu = false
}

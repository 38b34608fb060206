package commands

import (
	"context"
	"errors"
	"testing"

	complaints "github.com/goliatone/go-complaints/components/complaints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	calls   []string
	form    complaints.ComplaintForm
	tab     complaints.Tab
	mode    complaints.AuthMode
	name    string
	email   string
	section string
	err     error
}

func (s *stubService) record(call string) error {
	s.calls = append(s.calls, call)
	return s.err
}

func (s *stubService) Register(_ context.Context, name, email string) error {
	s.name, s.email = name, email
	return s.record("register")
}

func (s *stubService) Login(_ context.Context, email string) error {
	s.email = email
	return s.record("login")
}

func (s *stubService) Logout(context.Context) { _ = s.record("logout") }

func (s *stubService) ShowSettings(_ context.Context, section string) error {
	s.section = section
	return s.record("show_settings")
}

func (s *stubService) SaveSettings(_ context.Context, name, email string) error {
	s.name, s.email = name, email
	return s.record("save_settings")
}

func (s *stubService) SubmitComplaint(_ context.Context, form complaints.ComplaintForm) error {
	s.form = form
	return s.record("submit")
}

func (s *stubService) SelectTab(_ context.Context, tab complaints.Tab) error {
	s.tab = tab
	return s.record("select_tab")
}

func (s *stubService) ToggleAuth(_ context.Context, mode complaints.AuthMode) {
	s.mode = mode
	_ = s.record("toggle_auth")
}

func (s *stubService) ToggleProfileMenu(context.Context) { _ = s.record("profile_menu") }

func (s *stubService) DismissNotice(context.Context) { _ = s.record("dismiss") }

func (s *stubService) RefreshDashboard(context.Context) error { return s.record("refresh") }

func TestRegisterCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewRegisterCommand(service)
	if err := cmd.Execute(context.Background(), RegisterInput{Name: "Bob", Email: "bob@example.com"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.name != "Bob" || service.email != "bob@example.com" {
		t.Fatalf("expected name and email to propagate, got %q %q", service.name, service.email)
	}
}

func TestLoginCommandPropagatesErrors(t *testing.T) {
	service := &stubService{err: errors.New("boom")}
	cmd := NewLoginCommand(service)
	err := cmd.Execute(context.Background(), LoginInput{Email: "bob@example.com"})
	require.Error(t, err)
	assert.Equal(t, []string{"login"}, service.calls)
}

func TestSubmitComplaintCommand(t *testing.T) {
	service := &stubService{}
	cmd := NewSubmitComplaintCommand(service)
	input := SubmitComplaintInput{Category: "Roads", Place: "Main St", Description: "pothole"}
	require.NoError(t, cmd.Execute(context.Background(), input))
	assert.Equal(t, complaints.ComplaintForm{Category: "Roads", Place: "Main St", Description: "pothole"}, service.form)
}

func TestSelectTabCommandRejectsUnknownTab(t *testing.T) {
	service := &stubService{}
	cmd := NewSelectTabCommand(service)
	err := cmd.Execute(context.Background(), SelectTabInput{Tab: "reports"})
	assert.ErrorIs(t, err, complaints.ErrUnknownTab)
	assert.Empty(t, service.calls)

	require.NoError(t, cmd.Execute(context.Background(), SelectTabInput{Tab: "complaints"}))
	assert.Equal(t, complaints.TabComplaints, service.tab)
}

func TestToggleAuthCommandDefaultsToLogin(t *testing.T) {
	service := &stubService{}
	cmd := NewToggleAuthCommand(service)
	require.NoError(t, cmd.Execute(context.Background(), ToggleAuthInput{Mode: "register"}))
	assert.Equal(t, complaints.AuthRegister, service.mode)
	require.NoError(t, cmd.Execute(context.Background(), ToggleAuthInput{Mode: "whatever"}))
	assert.Equal(t, complaints.AuthLogin, service.mode)
}

func TestSetWiresEveryCommand(t *testing.T) {
	service := &stubService{}
	set := NewSet(service)
	ctx := context.Background()
	require.NoError(t, set.Register.Execute(ctx, RegisterInput{Email: "a@b.c"}))
	require.NoError(t, set.Login.Execute(ctx, LoginInput{Email: "a@b.c"}))
	require.NoError(t, set.ShowSettings.Execute(ctx, ShowSettingsInput{Section: complaints.SectionEditProfile}))
	require.NoError(t, set.SaveSettings.Execute(ctx, SaveSettingsInput{Name: "A", Email: "a@b.c"}))
	require.NoError(t, set.Submit.Execute(ctx, SubmitComplaintInput{}))
	require.NoError(t, set.SelectTab.Execute(ctx, SelectTabInput{Tab: "dashboard"}))
	require.NoError(t, set.ToggleAuth.Execute(ctx, ToggleAuthInput{}))
	require.NoError(t, set.ToggleProfileMenu.Execute(ctx, ToggleProfileMenuInput{}))
	require.NoError(t, set.DismissNotice.Execute(ctx, DismissNoticeInput{}))
	require.NoError(t, set.Refresh.Execute(ctx, RefreshDashboardInput{}))
	require.NoError(t, set.Logout.Execute(ctx, LogoutInput{}))
	assert.Equal(t, []string{
		"register", "login", "show_settings", "save_settings", "submit",
		"select_tab", "toggle_auth", "profile_menu", "dismiss", "refresh", "logout",
	}, service.calls)
	assert.Equal(t, complaints.SectionEditProfile, service.section)
}

func TestCommandsRequireService(t *testing.T) {
	cmd := NewLogoutCommand(nil)
	assert.Error(t, cmd.Execute(context.Background(), LogoutInput{}))
}

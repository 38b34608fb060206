package complaints

import (
	"context"
	"fmt"
)

// SectionEditProfile pre-fills the settings form from the session.
const SectionEditProfile = "edit-profile"

// Register creates the user remotely and, on success, signs them in. Inputs
// are not checked locally; the server decides. Transport failures surface as
// "Backend not running"; server errors surface their detail verbatim when
// present.
func (s *Service) Register(ctx context.Context, name, email string) error {
	if s.opts.Users == nil {
		return errMissingUsers
	}
	if _, err := s.opts.Users.CreateUser(ctx, RegisterUserInput{Name: name, Email: email}); err != nil {
		message := s.message(ctx, msgAccountError)
		if IsTransport(err) {
			message = s.message(ctx, msgBackendNotRunning)
		} else if detail, ok := ServerDetail(err); ok {
			message = detail
		}
		s.setNotice(NoticeError, message)
		s.publish(ctx, "session.register_error")
		return fmt.Errorf("complaints: register: %w", err)
	}
	s.setNotice(NoticeSuccess, s.message(ctx, msgAccountCreated))
	s.recordTelemetry(ctx, "complaints.session.register", map[string]any{"email": email})
	s.signIn(ctx, name, email)
	return nil
}

// Login signs in without contacting the server: the display name is the local
// part of the email. There is no verification of any kind.
func (s *Service) Login(ctx context.Context, email string) error {
	s.mu.Lock()
	s.loginEmail = email
	s.mu.Unlock()
	if email == "" {
		return s.rejectInput(ctx, "email", s.message(ctx, msgEnterEmail))
	}
	s.mu.Lock()
	s.notice = nil
	s.mu.Unlock()
	s.recordTelemetry(ctx, "complaints.session.login", map[string]any{"email": email})
	s.signIn(ctx, NameFromEmail(email), email)
	return nil
}

func (s *Service) signIn(ctx context.Context, name, email string) {
	s.opts.Sessions.Begin(name, email)
	s.opts.Router.EnterApp()
	s.publish(ctx, "session.begin")
	_ = s.RefreshDashboard(ctx)
}

// Logout clears the session, resets every input and returns to the auth view.
// A pending return-to-dashboard transition is cancelled.
func (s *Service) Logout(ctx context.Context) {
	s.opts.Sessions.End()
	s.opts.Router.ExitApp()

	s.mu.Lock()
	s.cancelPendingReturnLocked()
	s.submission = SubmissionIdle
	s.lastOutcome = ""
	s.successVisible = false
	s.loginEmail = ""
	s.settings = SettingsForm{}
	s.draft = ComplaintForm{Category: s.draft.Category}
	s.dashboard = emptyDashboardView()
	s.notice = nil
	s.mu.Unlock()

	s.recordTelemetry(ctx, "complaints.session.logout", nil)
	s.publish(ctx, "session.end")
}

// ShowSettings opens the settings tab. The edit-profile section pre-fills the
// form from the session.
func (s *Service) ShowSettings(ctx context.Context, section string) error {
	s.opts.Router.CloseProfileMenu()
	if err := s.opts.Router.Select(TabSettings); err != nil {
		return err
	}
	if section == SectionEditProfile {
		if session, ok := s.opts.Sessions.Current(); ok {
			s.mu.Lock()
			s.settings = SettingsForm{Name: session.Name, Email: session.Email}
			s.mu.Unlock()
		}
	}
	s.publish(ctx, "view.settings")
	return nil
}

// SaveSettings overwrites the session name and email when both are non-empty.
// Nothing is sent to the server, so the change is lost with the session, and
// the new email is not checked against existing complaints.
func (s *Service) SaveSettings(ctx context.Context, name, email string) error {
	s.mu.Lock()
	s.settings = SettingsForm{Name: name, Email: email}
	s.mu.Unlock()
	if name == "" || email == "" {
		return s.rejectInput(ctx, "settings", s.message(ctx, msgProfileIncomplete))
	}
	if _, err := s.opts.Sessions.Update(name, email); err != nil {
		return err
	}
	s.setNotice(NoticeSuccess, s.message(ctx, msgProfileSaved))
	s.recordTelemetry(ctx, "complaints.session.settings", map[string]any{"email": email})
	s.publish(ctx, "session.update")
	return nil
}

func (s *Service) rejectInput(ctx context.Context, field, message string) error {
	s.setNotice(NoticeError, message)
	s.publish(ctx, "validation")
	return &ValidationError{Field: field, Message: message}
}

package complaints

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Session is the single active user identity held in memory.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AvatarInitial returns the upper-cased first rune of the display name.
func (s Session) AvatarInitial() string {
	r, size := utf8.DecodeRuneInString(s.Name)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// NameFromEmail derives a display name from the local part of an email. An
// address without "@" is returned whole.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// SessionStore owns the one Session a client instance may hold. It is injected
// into the Service rather than looked up globally, and nothing is persisted.
type SessionStore struct {
	mu      sync.RWMutex
	current *Session
}

// NewSessionStore builds an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Begin establishes the session, replacing any previous one.
func (s *SessionStore) Begin(name, email string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &Session{Name: name, Email: email}
	return *s.current
}

// Current returns a copy of the active session.
func (s *SessionStore) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Update overwrites name and email in place. The new email is not checked
// against existing complaints.
func (s *SessionStore) Update(name, email string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Session{}, ErrNoSession
	}
	s.current.Name = name
	s.current.Email = email
	return *s.current, nil
}

// End destroys the session.
func (s *SessionStore) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

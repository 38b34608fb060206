package api

import (
	"context"
	"errors"
	"net/http"
	"sync"

	complaints "github.com/goliatone/go-complaints/components/complaints"
)

var errUnreachable = errors.New("connection refused")

// MockClient is an in-memory stand-in for the complaint service, used by tests
// and the demo server. It follows the service's rules: emails are unique,
// users default to the "user" role and new complaints start "Open".
type MockClient struct {
	mu          sync.RWMutex
	users       []complaints.User
	complaints  []complaints.Complaint
	nextUser    int
	nextRecord  int
	unreachable bool
}

// NewMockClient builds a mock seeded with records.
func NewMockClient(records ...complaints.Complaint) *MockClient {
	c := &MockClient{nextUser: 1, nextRecord: 1}
	for _, record := range records {
		if record.ID == 0 {
			record.ID = c.nextRecord
		}
		if record.ID >= c.nextRecord {
			c.nextRecord = record.ID + 1
		}
		c.complaints = append(c.complaints, record)
	}
	return c
}

// SetUnreachable makes every call fail with a transport error.
func (c *MockClient) SetUnreachable(down bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unreachable = down
}

// SetStatus changes the status of a stored complaint, standing in for the
// staff workflow the client never sees.
func (c *MockClient) SetStatus(id int, status string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.complaints {
		if c.complaints[i].ID == id {
			c.complaints[i].Status = status
			return true
		}
	}
	return false
}

func (c *MockClient) CreateUser(_ context.Context, input complaints.RegisterUserInput) (complaints.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unreachable {
		return complaints.User{}, &complaints.TransportError{Op: "create user", Err: errUnreachable}
	}
	for _, user := range c.users {
		if user.Email == input.Email {
			return complaints.User{}, &complaints.ServerError{Status: http.StatusBadRequest, Detail: "Email already registered"}
		}
	}
	user := complaints.User{ID: c.nextUser, Name: input.Name, Email: input.Email, Role: "user"}
	c.nextUser++
	c.users = append(c.users, user)
	return user, nil
}

func (c *MockClient) ListUsers(context.Context) ([]complaints.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.unreachable {
		return nil, &complaints.TransportError{Op: "list users", Err: errUnreachable}
	}
	return append([]complaints.User(nil), c.users...), nil
}

func (c *MockClient) ListComplaints(context.Context) ([]complaints.Complaint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.unreachable {
		return nil, &complaints.TransportError{Op: "list complaints", Err: errUnreachable}
	}
	return append([]complaints.Complaint(nil), c.complaints...), nil
}

func (c *MockClient) CreateComplaint(_ context.Context, input complaints.CreateComplaintInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unreachable {
		return &complaints.TransportError{Op: "create complaint", Err: errUnreachable}
	}
	c.complaints = append(c.complaints, complaints.Complaint{
		ID:          c.nextRecord,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		UserEmail:   input.UserEmail,
		Status:      "Open",
	})
	c.nextRecord++
	return nil
}

func (c *MockClient) Ping(context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.unreachable {
		return "", &complaints.TransportError{Op: "ping", Err: errUnreachable}
	}
	return "Backend is working", nil
}

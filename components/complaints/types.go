package complaints

import "context"

// ComplaintRepository reads and creates complaint records on the remote service.
// Implementations never update records; complaints are immutable once created.
type ComplaintRepository interface {
	ListComplaints(ctx context.Context) ([]Complaint, error)
	CreateComplaint(ctx context.Context, input CreateComplaintInput) error
}

// UserRepository creates users on the remote service.
type UserRepository interface {
	CreateUser(ctx context.Context, input RegisterUserInput) (User, error)
}

// RefreshHook notifies transports (WebSocket/SSE) about client state changes.
type RefreshHook interface {
	StateUpdated(ctx context.Context, event StateEvent) error
}

// Complaint is a server-owned record fetched read-only into the client.
type Complaint struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	UserEmail   string `json:"user_email"`
	Status      string `json:"status"`
}

// CreateComplaintInput is the payload sent when filing a complaint.
type CreateComplaintInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	UserEmail   string `json:"user_email"`
}

// ComplaintForm mirrors the submission form fields.
type ComplaintForm struct {
	Category    string `json:"category"`
	Place       string `json:"place"`
	Description string `json:"description"`
}

// RegisterUserInput is the payload for the remote create-user operation.
type RegisterUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// User is the created-user record returned by the remote service.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// StateEvent describes a client state change transports might care about.
type StateEvent struct {
	ID     string  `json:"id"`
	Reason string  `json:"reason"`
	State  UIState `json:"state"`
}

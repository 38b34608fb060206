package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	complaints "github.com/goliatone/go-complaints/components/complaints"
)

func TestHTTPClientListComplaints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/complaints/" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
		_ = json.NewEncoder(w).Encode([]complaints.Complaint{
			{ID: 1, Title: "Water Issue at Main St", Category: "Water", UserEmail: "bob@example.com", Status: "Open"},
		})
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	records, err := client.ListComplaints(context.Background())
	if err != nil {
		t.Fatalf("list complaints: %v", err)
	}
	if len(records) != 1 || records[0].UserEmail != "bob@example.com" {
		t.Fatalf("unexpected records: %#v", records)
	}
}

func TestHTTPClientCreateComplaint(t *testing.T) {
	var got complaints.CreateComplaintInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/complaints/", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":7,"status":"Open"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	require.NoError(t, err)
	input := complaints.CreateComplaintInput{
		Title:       "Roads Issue at Elm",
		Description: "pothole",
		Category:    "Roads",
		UserEmail:   "bob@example.com",
	}
	require.NoError(t, client.CreateComplaint(context.Background(), input))
	assert.Equal(t, input, got)
}

func TestHTTPClientCreateComplaintServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	require.NoError(t, err)
	err = client.CreateComplaint(context.Background(), complaints.CreateComplaintInput{})
	var serverErr *complaints.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
	assert.Empty(t, serverErr.Detail)
}

func TestHTTPClientCreateUserDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	require.NoError(t, err)
	_, err = client.CreateUser(context.Background(), complaints.RegisterUserInput{Name: "Bob", Email: "bob@example.com"})
	detail, ok := complaints.ServerDetail(err)
	require.True(t, ok)
	assert.Equal(t, "Email already registered", detail)
}

func TestHTTPClientCreateUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in complaints.RegisterUserInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(complaints.User{ID: 3, Name: in.Name, Email: in.Email, Role: "user"})
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	require.NoError(t, err)
	user, err := client.CreateUser(context.Background(), complaints.RegisterUserInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, complaints.User{ID: 3, Name: "Bob", Email: "bob@example.com", Role: "user"}, user)
}

func TestHTTPClientCreateUserUnreadableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("created"))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	require.NoError(t, err)
	user, err := client.CreateUser(context.Background(), complaints.RegisterUserInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)

	_, err = client.ListUsers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode list users response")
}

func TestHTTPClientStructuredDetailIgnored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","email"],"msg":"field required"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	require.NoError(t, err)
	_, err = client.CreateUser(context.Background(), complaints.RegisterUserInput{})
	require.Error(t, err)
	_, ok := complaints.ServerDetail(err)
	assert.False(t, ok)
}

func TestHTTPClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewHTTPClient(HTTPConfig{BaseURL: url})
	require.NoError(t, err)
	_, err = client.ListComplaints(context.Background())
	require.Error(t, err)
	assert.True(t, complaints.IsTransport(err))
}

func TestHTTPClientPingAndUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`{"message":"Backend is working"}`))
		case "/users/":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Bob","email":"bob@example.com","role":"user"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	require.NoError(t, err)
	message, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Backend is working", message)
	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob@example.com", users[0].Email)
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	_, err := NewHTTPClient(HTTPConfig{BaseURL: "  "})
	assert.Error(t, err)
}

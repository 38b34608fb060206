package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

type sessionService interface {
	Register(ctx context.Context, name, email string) error
	Login(ctx context.Context, email string) error
	Logout(ctx context.Context)
}

// RegisterInput creates an account and signs in.
type RegisterInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginInput signs in with an email only.
type LoginInput struct {
	Email string `json:"email"`
}

// LogoutInput ends the session.
type LogoutInput struct{}

// RegisterCommand wraps Service.Register.
type RegisterCommand struct {
	service sessionService
}

// NewRegisterCommand creates the command.
func NewRegisterCommand(service sessionService) *RegisterCommand {
	return &RegisterCommand{service: service}
}

var _ gocommand.Commander[RegisterInput] = (*RegisterCommand)(nil)

// Execute delegates to the complaints service.
func (c *RegisterCommand) Execute(ctx context.Context, msg RegisterInput) error {
	if c.service == nil {
		return errors.New("register command requires service")
	}
	return c.service.Register(ctx, msg.Name, msg.Email)
}

// LoginCommand wraps Service.Login.
type LoginCommand struct {
	service sessionService
}

// NewLoginCommand creates the command.
func NewLoginCommand(service sessionService) *LoginCommand {
	return &LoginCommand{service: service}
}

var _ gocommand.Commander[LoginInput] = (*LoginCommand)(nil)

// Execute delegates to the complaints service.
func (c *LoginCommand) Execute(ctx context.Context, msg LoginInput) error {
	if c.service == nil {
		return errors.New("login command requires service")
	}
	return c.service.Login(ctx, msg.Email)
}

// LogoutCommand wraps Service.Logout.
type LogoutCommand struct {
	service sessionService
}

// NewLogoutCommand creates the command.
func NewLogoutCommand(service sessionService) *LogoutCommand {
	return &LogoutCommand{service: service}
}

var _ gocommand.Commander[LogoutInput] = (*LogoutCommand)(nil)

// Execute delegates to the complaints service.
func (c *LogoutCommand) Execute(ctx context.Context, _ LogoutInput) error {
	if c.service == nil {
		return errors.New("logout command requires service")
	}
	c.service.Logout(ctx)
	return nil
}

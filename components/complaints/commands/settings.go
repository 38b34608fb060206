package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

type settingsService interface {
	ShowSettings(ctx context.Context, section string) error
	SaveSettings(ctx context.Context, name, email string) error
}

// ShowSettingsInput opens the settings tab, optionally on a section.
type ShowSettingsInput struct {
	Section string `json:"section"`
}

// SaveSettingsInput overwrites the session profile.
type SaveSettingsInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ShowSettingsCommand wraps Service.ShowSettings.
type ShowSettingsCommand struct {
	service settingsService
}

// NewShowSettingsCommand creates the command.
func NewShowSettingsCommand(service settingsService) *ShowSettingsCommand {
	return &ShowSettingsCommand{service: service}
}

var _ gocommand.Commander[ShowSettingsInput] = (*ShowSettingsCommand)(nil)

// Execute delegates to the complaints service.
func (c *ShowSettingsCommand) Execute(ctx context.Context, msg ShowSettingsInput) error {
	if c.service == nil {
		return errors.New("show settings command requires service")
	}
	return c.service.ShowSettings(ctx, msg.Section)
}

// SaveSettingsCommand wraps Service.SaveSettings.
type SaveSettingsCommand struct {
	service settingsService
}

// NewSaveSettingsCommand creates the command.
func NewSaveSettingsCommand(service settingsService) *SaveSettingsCommand {
	return &SaveSettingsCommand{service: service}
}

var _ gocommand.Commander[SaveSettingsInput] = (*SaveSettingsCommand)(nil)

// Execute delegates to the complaints service.
func (c *SaveSettingsCommand) Execute(ctx context.Context, msg SaveSettingsInput) error {
	if c.service == nil {
		return errors.New("save settings command requires service")
	}
	return c.service.SaveSettings(ctx, msg.Name, msg.Email)
}

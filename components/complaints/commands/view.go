package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	complaints "github.com/goliatone/go-complaints/components/complaints"
)

type viewService interface {
	SelectTab(ctx context.Context, tab complaints.Tab) error
	ToggleAuth(ctx context.Context, mode complaints.AuthMode)
	ToggleProfileMenu(ctx context.Context)
	DismissNotice(ctx context.Context)
	RefreshDashboard(ctx context.Context) error
}

// SelectTabInput names the tab to show.
type SelectTabInput struct {
	Tab string `json:"tab"`
}

// ToggleAuthInput switches the auth screen mode.
type ToggleAuthInput struct {
	Mode string `json:"mode"`
}

// ToggleProfileMenuInput flips the profile dropdown.
type ToggleProfileMenuInput struct{}

// DismissNoticeInput clears the visible notice.
type DismissNoticeInput struct{}

// RefreshDashboardInput re-fetches the complaint collection.
type RefreshDashboardInput struct{}

// SelectTabCommand wraps Service.SelectTab.
type SelectTabCommand struct {
	service viewService
}

// NewSelectTabCommand creates the command.
func NewSelectTabCommand(service viewService) *SelectTabCommand {
	return &SelectTabCommand{service: service}
}

var _ gocommand.Commander[SelectTabInput] = (*SelectTabCommand)(nil)

// Execute parses the tab and delegates to the complaints service.
func (c *SelectTabCommand) Execute(ctx context.Context, msg SelectTabInput) error {
	if c.service == nil {
		return errors.New("select tab command requires service")
	}
	tab, err := complaints.ParseTab(msg.Tab)
	if err != nil {
		return err
	}
	return c.service.SelectTab(ctx, tab)
}

// ToggleAuthCommand wraps Service.ToggleAuth.
type ToggleAuthCommand struct {
	service viewService
}

// NewToggleAuthCommand creates the command.
func NewToggleAuthCommand(service viewService) *ToggleAuthCommand {
	return &ToggleAuthCommand{service: service}
}

var _ gocommand.Commander[ToggleAuthInput] = (*ToggleAuthCommand)(nil)

// Execute delegates to the complaints service. Any mode other than register
// selects login.
func (c *ToggleAuthCommand) Execute(ctx context.Context, msg ToggleAuthInput) error {
	if c.service == nil {
		return errors.New("toggle auth command requires service")
	}
	mode := complaints.AuthLogin
	if complaints.AuthMode(msg.Mode) == complaints.AuthRegister {
		mode = complaints.AuthRegister
	}
	c.service.ToggleAuth(ctx, mode)
	return nil
}

// ToggleProfileMenuCommand wraps Service.ToggleProfileMenu.
type ToggleProfileMenuCommand struct {
	service viewService
}

// NewToggleProfileMenuCommand creates the command.
func NewToggleProfileMenuCommand(service viewService) *ToggleProfileMenuCommand {
	return &ToggleProfileMenuCommand{service: service}
}

var _ gocommand.Commander[ToggleProfileMenuInput] = (*ToggleProfileMenuCommand)(nil)

func (c *ToggleProfileMenuCommand) Execute(ctx context.Context, _ ToggleProfileMenuInput) error {
	if c.service == nil {
		return errors.New("profile menu command requires service")
	}
	c.service.ToggleProfileMenu(ctx)
	return nil
}

// DismissNoticeCommand wraps Service.DismissNotice.
type DismissNoticeCommand struct {
	service viewService
}

// NewDismissNoticeCommand creates the command.
func NewDismissNoticeCommand(service viewService) *DismissNoticeCommand {
	return &DismissNoticeCommand{service: service}
}

var _ gocommand.Commander[DismissNoticeInput] = (*DismissNoticeCommand)(nil)

func (c *DismissNoticeCommand) Execute(ctx context.Context, _ DismissNoticeInput) error {
	if c.service == nil {
		return errors.New("dismiss notice command requires service")
	}
	c.service.DismissNotice(ctx)
	return nil
}

// RefreshDashboardCommand wraps Service.RefreshDashboard.
type RefreshDashboardCommand struct {
	service viewService
}

// NewRefreshDashboardCommand creates the command.
func NewRefreshDashboardCommand(service viewService) *RefreshDashboardCommand {
	return &RefreshDashboardCommand{service: service}
}

var _ gocommand.Commander[RefreshDashboardInput] = (*RefreshDashboardCommand)(nil)

// Execute re-fetches the dashboard.
func (c *RefreshDashboardCommand) Execute(ctx context.Context, _ RefreshDashboardInput) error {
	if c.service == nil {
		return errors.New("refresh command requires service")
	}
	return c.service.RefreshDashboard(ctx)
}

package commands

// Service is everything the command set needs from the complaints service.
type Service interface {
	sessionService
	settingsService
	submitService
	viewService
}

// Set bundles one command per client action.
type Set struct {
	Register          *RegisterCommand
	Login             *LoginCommand
	Logout            *LogoutCommand
	ShowSettings      *ShowSettingsCommand
	SaveSettings      *SaveSettingsCommand
	Submit            *SubmitComplaintCommand
	SelectTab         *SelectTabCommand
	ToggleAuth        *ToggleAuthCommand
	ToggleProfileMenu *ToggleProfileMenuCommand
	DismissNotice     *DismissNoticeCommand
	Refresh           *RefreshDashboardCommand
}

// NewSet builds every command against service.
func NewSet(service Service) Set {
	return Set{
		Register:          NewRegisterCommand(service),
		Login:             NewLoginCommand(service),
		Logout:            NewLogoutCommand(service),
		ShowSettings:      NewShowSettingsCommand(service),
		SaveSettings:      NewSaveSettingsCommand(service),
		Submit:            NewSubmitComplaintCommand(service),
		SelectTab:         NewSelectTabCommand(service),
		ToggleAuth:        NewToggleAuthCommand(service),
		ToggleProfileMenu: NewToggleProfileMenuCommand(service),
		DismissNotice:     NewDismissNoticeCommand(service),
		Refresh:           NewRefreshDashboardCommand(service),
	}
}

package complaints

import "context"

// TranslationService resolves user-facing messages for a locale.
type TranslationService interface {
	Translate(ctx context.Context, key, locale string, args map[string]any) (string, error)
}

const (
	msgAccountCreated          = "Account created!"
	msgAccountError            = "Error creating account"
	msgBackendNotRunning       = "Backend not running"
	msgEnterEmail              = "Enter an email"
	msgFillPlaceAndDescription = "Please fill in the location and description."
	msgSubmitFailed            = "Error saving complaint. Ensure the backend is running."
	msgSubmitSucceeded         = "Complaint submitted successfully!"
	msgProfileSaved            = "Profile saved successfully!"
	msgProfileIncomplete       = "Enter both a name and an email"
	msgUnknownCategory         = "Choose a category from the list"
)

var messageKeys = map[string]string{
	msgAccountCreated:          "complaints.auth.account_created",
	msgAccountError:            "complaints.auth.account_error",
	msgBackendNotRunning:       "complaints.auth.backend_not_running",
	msgEnterEmail:              "complaints.auth.enter_email",
	msgFillPlaceAndDescription: "complaints.submit.missing_fields",
	msgSubmitFailed:            "complaints.submit.failed",
	msgSubmitSucceeded:         "complaints.submit.succeeded",
	msgProfileSaved:            "complaints.settings.saved",
	msgProfileIncomplete:       "complaints.settings.incomplete",
	msgUnknownCategory:         "complaints.submit.unknown_category",
}

// NoticeLevel classifies a user-visible notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is the message surfaced to the operator after an action.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

func translateOrFallback(ctx context.Context, svc TranslationService, key, locale, fallback string, params map[string]any) string {
	if svc != nil {
		if translated, err := svc.Translate(ctx, key, locale, params); err == nil && translated != "" {
			return translated
		}
	}
	if fallback != "" {
		return fallback
	}
	return key
}

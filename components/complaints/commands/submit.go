package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	complaints "github.com/goliatone/go-complaints/components/complaints"
)

type submitService interface {
	SubmitComplaint(ctx context.Context, form complaints.ComplaintForm) error
}

// SubmitComplaintInput carries the new-complaint form.
type SubmitComplaintInput struct {
	Category    string `json:"category"`
	Place       string `json:"place"`
	Description string `json:"description"`
}

// Form converts the input into the service form.
func (in SubmitComplaintInput) Form() complaints.ComplaintForm {
	return complaints.ComplaintForm{
		Category:    in.Category,
		Place:       in.Place,
		Description: in.Description,
	}
}

// SubmitComplaintCommand wraps Service.SubmitComplaint.
type SubmitComplaintCommand struct {
	service submitService
}

// NewSubmitComplaintCommand creates the command.
func NewSubmitComplaintCommand(service submitService) *SubmitComplaintCommand {
	return &SubmitComplaintCommand{service: service}
}

var _ gocommand.Commander[SubmitComplaintInput] = (*SubmitComplaintCommand)(nil)

// Execute delegates to the complaints service.
func (c *SubmitComplaintCommand) Execute(ctx context.Context, msg SubmitComplaintInput) error {
	if c.service == nil {
		return errors.New("submit command requires service")
	}
	return c.service.SubmitComplaint(ctx, msg.Form())
}

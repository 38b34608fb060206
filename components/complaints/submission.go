package complaints

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SubmissionState is the phase of the complaint submission flow.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSuccess    SubmissionState = "success"
	SubmissionFailure    SubmissionState = "failure"
)

// ComplaintTitle builds the title the client sends for a new complaint.
func ComplaintTitle(category, place string) string {
	return fmt.Sprintf("%s Issue at %s", category, place)
}

// SubmitComplaint runs Idle → Submitting → (Success | Failure) → Idle.
//
// Missing place or description keeps the flow Idle and issues no request. A
// failed create returns to Idle at once with an error notice. A successful
// create clears the place and description, raises the success indicator and
// schedules the return to the dashboard after ReturnDelay, which re-fetches
// the collection. Submitting again before that return is rejected with
// ErrSubmissionBusy.
func (s *Service) SubmitComplaint(ctx context.Context, form ComplaintForm) error {
	if s.opts.Complaints == nil {
		return errMissingComplaints
	}
	session, ok := s.opts.Sessions.Current()
	if !ok {
		return ErrNoSession
	}

	s.mu.Lock()
	if s.submission != SubmissionIdle {
		s.mu.Unlock()
		return ErrSubmissionBusy
	}
	s.draft = form
	s.mu.Unlock()

	if err := s.opts.Validator.Validate(form); err != nil {
		if IsValidation(err) {
			return s.rejectInput(ctx, "form", s.message(ctx, msgFillPlaceAndDescription))
		}
		return err
	}
	category, ok := s.opts.Catalog.Resolve(form.Category)
	if !ok {
		return s.rejectInput(ctx, "category", s.message(ctx, msgUnknownCategory))
	}

	s.mu.Lock()
	if s.submission != SubmissionIdle {
		s.mu.Unlock()
		return ErrSubmissionBusy
	}
	s.submission = SubmissionSubmitting
	s.notice = nil
	s.mu.Unlock()
	s.publish(ctx, "submission.start")

	input := CreateComplaintInput{
		Title:       ComplaintTitle(category.Name, form.Place),
		Description: form.Description,
		Category:    category.Name,
		UserEmail:   session.Email,
	}
	if err := s.opts.Complaints.CreateComplaint(ctx, input); err != nil {
		s.fail(ctx, err)
		return fmt.Errorf("complaints: submit complaint: %w", err)
	}
	s.succeed(ctx, category.Name)
	return nil
}

func (s *Service) fail(ctx context.Context, err error) {
	s.log.Warn("complaint submission failed", zap.Error(err))
	s.mu.Lock()
	// Failure is terminal for the action; the flow is Idle again right away.
	s.lastOutcome = SubmissionFailure
	s.submission = SubmissionIdle
	s.notice = &Notice{Level: NoticeError, Message: s.message(ctx, msgSubmitFailed)}
	s.mu.Unlock()
	s.recordTelemetry(ctx, "complaints.submission.failure", map[string]any{
		"transport": IsTransport(err),
		"error":     err.Error(),
	})
	s.publish(ctx, "submission.failure")
}

func (s *Service) succeed(ctx context.Context, category string) {
	// The deferred task outlives the request that scheduled it.
	taskCtx := context.WithoutCancel(ctx)

	s.mu.Lock()
	s.submission = SubmissionSuccess
	s.lastOutcome = SubmissionSuccess
	s.successVisible = true
	s.draft = ComplaintForm{Category: category}
	s.notice = &Notice{Level: NoticeSuccess, Message: s.message(ctx, msgSubmitSucceeded)}
	s.cancelPendingReturnLocked()
	s.returnSeq++
	seq := s.returnSeq
	s.cancelReturn = s.opts.Scheduler.Schedule(s.opts.ReturnDelay, func() {
		s.returnToDashboard(taskCtx, seq)
	})
	s.mu.Unlock()

	s.recordTelemetry(ctx, "complaints.submission.success", map[string]any{"category": category})
	s.publish(ctx, "submission.success")
}

// returnToDashboard is the deferred Success → Idle transition. It tolerates
// firing after the view it belonged to is gone: a stale or cancelled task
// does nothing and a signed-out client skips the re-fetch.
func (s *Service) returnToDashboard(ctx context.Context, seq uint64) {
	s.mu.Lock()
	if seq != s.returnSeq || s.submission != SubmissionSuccess {
		s.mu.Unlock()
		return
	}
	s.submission = SubmissionIdle
	s.successVisible = false
	s.cancelReturn = nil
	s.mu.Unlock()

	if _, ok := s.opts.Sessions.Current(); !ok {
		s.publish(ctx, "submission.return")
		return
	}
	_ = s.RefreshDashboard(ctx)
	if err := s.selectTab(ctx, TabDashboard); err != nil {
		s.log.Warn("return to dashboard failed", zap.Error(err))
	}
}

func (s *Service) cancelPendingReturnLocked() {
	if s.cancelReturn != nil {
		s.cancelReturn()
		s.cancelReturn = nil
	}
	s.returnSeq++
}

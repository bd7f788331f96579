package steps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cucumber/godog"

	"github.com/pitmydoro/backend/internal/domain/entity"
	"github.com/pitmydoro/backend/internal/integration/persistence/model"
)

const resendEmailsPath = "/emails"

func registerEmailSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the email API will fail with status (\d+)$`, t.theEmailAPIWillFailWithStatus)
	ctx.When(`^the email worker processes the queue$`, t.theEmailWorkerProcessesTheQueue)
	ctx.When(`^I take the reset token from the email to "([^"]*)"$`, t.iTakeTheResetTokenFromTheEmailTo)
	ctx.Then(`^(\d+) emails? should have been sent$`, t.emailsShouldHaveBeenSent)
	ctx.Then(`^an email with subject "([^"]*)" should have been sent to "([^"]*)"$`, t.anEmailWithSubjectShouldHaveBeenSentTo)
	ctx.Then(`^the "([^"]*)" email to "([^"]*)" should have status "([^"]*)" after (\d+) attempts?$`, t.theEmailShouldHaveStatusAfterAttempts)
}

func (t *testContext) theEmailAPIWillFailWithStatus(status int) error {
	t.env.resend.SetResponse(-1, http.MethodPost, resendEmailsPath, status, map[string]any{
		"statusCode": status,
		"name":       "application_error",
		"message":    "upstream unavailable",
	})
	return nil
}

func (t *testContext) theEmailWorkerProcessesTheQueue() error {
	t.env.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) emailsShouldHaveBeenSent(count int) error {
	if got := t.env.resend.RequestCount(http.MethodPost, resendEmailsPath); got != count {
		return fmt.Errorf("expected %d emails sent, got %d", count, got)
	}
	return nil
}

func (t *testContext) anEmailWithSubjectShouldHaveBeenSentTo(subject, recipient string) error {
	total := t.env.resend.RequestCount(http.MethodPost, resendEmailsPath)
	for i := 0; i < total; i++ {
		body := t.env.resend.GetRequestBody(http.MethodPost, resendEmailsPath, i)
		if body["subject"] != subject {
			continue
		}
		to, _ := body["to"].([]any)
		for _, addr := range to {
			if addr == recipient {
				return nil
			}
		}
	}
	return fmt.Errorf("no email %q was sent to %s among %d requests", subject, recipient, total)
}

func (t *testContext) latestJob(template, recipient string) (*model.EmailQueueModel, error) {
	var job model.EmailQueueModel
	err := t.env.db.DbConn.
		Where("template_type = ? AND recipient_email = ?", template, recipient).
		Order("created_at DESC").
		First(&job).Error
	if err != nil {
		return nil, fmt.Errorf("no %s email queued for %s: %w", template, recipient, err)
	}
	return &job, nil
}

func (t *testContext) theEmailShouldHaveStatusAfterAttempts(template, recipient, status string, attempts int) error {
	job, err := t.latestJob(template, recipient)
	if err != nil {
		return err
	}
	if job.Status != status || job.Attempts != attempts {
		return fmt.Errorf("expected %s after %d attempts, got %s after %d (last error: %s)",
			status, attempts, job.Status, job.Attempts, job.LastError)
	}
	return nil
}

func (t *testContext) iTakeTheResetTokenFromTheEmailTo(recipient string) error {
	job, err := t.latestJob(string(entity.TemplatePasswordReset), recipient)
	if err != nil {
		return err
	}

	raw, ok := job.TemplateData["reset_url"].(string)
	if !ok {
		return errors.New("queued reset email has no reset_url")
	}
	resetURL, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid reset url %q: %w", raw, err)
	}

	t.resetToken = resetURL.Query().Get("token")
	if t.resetToken == "" {
		return fmt.Errorf("reset url %q carries no token", raw)
	}
	return nil
}

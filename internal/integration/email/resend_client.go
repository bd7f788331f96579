package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/pitmydoro/backend/internal/application/adapter"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// NewResendClientWithBaseURL creates a Resend client that talks to baseURL
// instead of the public API. An empty baseURL keeps the default.
func NewResendClientWithBaseURL(apiKey, fromName, fromEmail, baseURL string) (*ResendClient, error) {
	c := NewResendClient(apiKey, fromName, fromEmail)
	if baseURL == "" {
		return c, nil
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid resend base url: %w", err)
	}
	c.client.BaseURL = u
	return c, nil
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if isPermanentError(err) {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "resend rejected the email", err)
	}

	return &adapter.SendEmailResult{
		ResendID: resp.Id,
	}, nil
}

// permanentPatterns match Resend failures that a retry cannot fix:
// 401, 403 and 422 responses.
var permanentPatterns = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

// isPermanentError reports whether a Resend error should stop retries.
// Rate limiting (429) and server errors stay retryable.
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") {
		return false
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// Ensure ResendClient implements adapter.EmailSender.
var _ adapter.EmailSender = (*ResendClient)(nil)

package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/hellorory/careers-api/internal/intake"
	"github.com/hellorory/careers-api/internal/models"
	"github.com/resend/resend-go/v2"
)

// ResendNotifier implements intake.Notifier via the Resend API. Every
// new application produces one message to the fixed operations mailbox.
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendNotifier(apiKey, from, to string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (n *ResendNotifier) NotifyApplication(ctx context.Context, job *models.JobPosting, app *models.Application, cv *intake.Attachment) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: "New Job Application: " + job.Title,
		Html:    RenderApplicationBody(job, app),
	}
	if cv != nil {
		// Attach the bytes captured at decode time rather than
		// re-fetching from storage.
		params.Attachments = []*resend.Attachment{{
			Filename: cv.Filename,
			Content:  cv.Data,
		}}
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send application notification: %w", err)
	}
	return nil
}

// RenderApplicationBody builds the HTML summary of a new application.
func RenderApplicationBody(job *models.JobPosting, app *models.Application) string {
	var b strings.Builder
	b.WriteString("<h2>New Job Application Received</h2>")
	fmt.Fprintf(&b, "<p><strong>Position:</strong> %s</p>", job.Title)
	fmt.Fprintf(&b, "<p><strong>Applicant:</strong> %s</p>", app.FullName)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", app.Email)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", app.Phone)
	b.WriteString("<p><strong>Cover Letter:</strong></p>")
	fmt.Fprintf(&b,
		`<div style="background: #f8f9fa; padding: 15px; border-radius: 8px; margin: 10px 0;">%s</div>`,
		strings.ReplaceAll(app.CoverLetter, "\n", "<br>"))
	if app.CVUrl != nil {
		fmt.Fprintf(&b, `<p><strong>CV:</strong> <a href="%s">View CV</a></p>`, *app.CVUrl)
	} else {
		b.WriteString("<p>No CV uploaded</p>")
	}
	return b.String()
}

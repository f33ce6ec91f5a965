// Package notification delivers outbound email for the intake pipeline.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/platform/logging"
	"github.com/meridianfs/client_onboarding_app/pkg/config"
)

// NewNotifier returns the SMTP notifier, or a log-only notifier when no SMTP
// host is configured so local runs never need a mail server.
func NewNotifier(cfg *config.Config) portssvc.Notifier {
	if cfg.SMTPHost == "" {
		return &logNotifier{}
	}
	return &smtpNotifier{
		addr:        cfg.SMTPHost + ":" + cfg.SMTPPort,
		from:        cfg.SMTPFrom,
		reviewInbox: cfg.ReviewInboxAddr,
	}
}

type smtpNotifier struct {
	addr        string
	from        string
	reviewInbox string
}

var _ portssvc.Notifier = (*smtpNotifier)(nil)

// SubmissionReceived mails the submitter their reference number. The body
// never contains protected fields.
func (n *smtpNotifier) SubmissionReceived(ctx context.Context, app *domain.Application) error {
	to := app.PrimaryContact.Email
	if to == "" {
		return fmt.Errorf("no submitter email on application %s", app.ID)
	}
	subject := "Application received: " + app.ReferenceNumber
	body := fmt.Sprintf(
		"Thank you for your application.\r\n\r\nYour reference number is %s.\r\nPlease quote it in any correspondence.\r\n",
		app.ReferenceNumber,
	)
	return n.send(ctx, to, subject, body)
}

// ReviewTeamAlert tells the review inbox a new submission arrived.
func (n *smtpNotifier) ReviewTeamAlert(ctx context.Context, app *domain.Application) error {
	if n.reviewInbox == "" {
		return fmt.Errorf("review inbox address not configured")
	}
	subject := "New application submitted: " + app.ReferenceNumber
	body := fmt.Sprintf(
		"A new %s application (%s) was submitted and is awaiting review.\r\n",
		app.EntityType, app.ReferenceNumber,
	)
	return n.send(ctx, n.reviewInbox, subject, body)
}

func (n *smtpNotifier) send(ctx context.Context, to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(n.addr, nil, n.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	logging.FromCtx(ctx).Info("Notification sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}

// logNotifier records deliveries in the log instead of sending them.
type logNotifier struct{}

var _ portssvc.Notifier = (*logNotifier)(nil)

func (n *logNotifier) SubmissionReceived(ctx context.Context, app *domain.Application) error {
	logging.FromCtx(ctx).Info("Submission receipt (delivery disabled)",
		slog.String("application_id", app.ID),
		slog.String("reference_number", app.ReferenceNumber),
	)
	return nil
}

func (n *logNotifier) ReviewTeamAlert(ctx context.Context, app *domain.Application) error {
	logging.FromCtx(ctx).Info("Review team alert (delivery disabled)",
		slog.String("application_id", app.ID),
		slog.String("reference_number", app.ReferenceNumber),
	)
	return nil
}

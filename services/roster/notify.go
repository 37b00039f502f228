package roster

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel/codes"
)

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

type NotifyConfig struct {
	Smtp       SmtpConfig `json:"smtp"`
	Recipients []string   `json:"recipients"`
}

// Notifier emails a summary whenever a scrape shows the roster moved.
type Notifier struct {
	config NotifyConfig
}

func NewNotifier(config NotifyConfig) *Notifier {
	if config.Smtp.Server == "" || len(config.Recipients) == 0 {
		return nil
	}
	return &Notifier{config: config}
}

func formatChange(c Change) string {
	switch c.Kind {
	case SeatReplaced:
		return fmt.Sprintf("%s (District %s): %s -> %s", c.Town, c.Next.District, c.Previous.Member, c.Next.Member)
	case NameCorrected:
		return fmt.Sprintf("%s (District %s): name corrected %q -> %q", c.Town, c.Next.District, c.Previous.Member, c.Next.Member)
	default:
		return fmt.Sprintf("%s (District %s): contact or assignment details changed for %s", c.Town, c.Next.District, c.Next.Member)
	}
}

func formatDiff(diff RosterDiff) string {
	var b strings.Builder
	b.WriteString("The Maine House roster changed since the last scrape.\n")

	if len(diff.Added) > 0 {
		b.WriteString("\nNew municipalities:\n")
		for _, leg := range diff.Added {
			fmt.Fprintf(&b, "  %s - District %s - %s (%s)\n", leg.Town, leg.District, leg.Member, leg.Party)
		}
	}
	if len(diff.Removed) > 0 {
		b.WriteString("\nDropped municipalities:\n")
		for _, leg := range diff.Removed {
			fmt.Fprintf(&b, "  %s - District %s - %s (%s)\n", leg.Town, leg.District, leg.Member, leg.Party)
		}
	}
	if len(diff.Changed) > 0 {
		b.WriteString("\nChanged seats:\n")
		for _, change := range diff.Changed {
			fmt.Fprintf(&b, "  %s\n", formatChange(change))
		}
	}

	return b.String()
}

// RosterChanged sends the diff summary to the configured recipients.
func (n *Notifier) RosterChanged(ctx context.Context, diff RosterDiff, runID int64) error {
	ctx, span := tracer.Start(ctx, "RosterChanged")
	defer span.End()

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Maine Legislature Scraper <%s>", n.config.Smtp.EmailAddress)
	mail.To = n.config.Recipients
	mail.Subject = fmt.Sprintf("Maine House roster changed (run %d)", runID)
	mail.Text = []byte(formatDiff(diff))

	addr := fmt.Sprintf("%s:%d", n.config.Smtp.Server, n.config.Smtp.Port)
	err := mail.Send(
		addr,
		smtp.PlainAuth("", n.config.Smtp.EmailAddress, n.config.Smtp.Password, n.config.Smtp.Server),
	)
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}

	return nil
}

package alert

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Nojands/FinanzApp/config"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/jordan-wright/email"
)

type Notifier interface {
	Notify(ctx context.Context, to string, alerts []Alert) error
}

// EmailNotifier sends payment reminders through SMTP.
type EmailNotifier struct {
	cfg config.SMTPConfig
}

func NewEmailNotifier(cfg *config.Config) *EmailNotifier {
	return &EmailNotifier{cfg: cfg.SMTP}
}

func (n *EmailNotifier) Notify(ctx context.Context, to string, alerts []Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.cfg.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	e := email.NewEmail()
	e.From = n.cfg.From
	e.To = []string{to}
	e.Subject = subject(alerts)
	e.Text = []byte(Body(alerts))

	addr := fmt.Sprintf("%s:%s", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send payment reminder: %w", err)
	}
	return nil
}

func subject(alerts []Alert) string {
	if len(alerts) == 1 {
		return "Lembrete: 1 pagamento próximo"
	}
	return fmt.Sprintf("Lembrete: %d pagamentos próximos", len(alerts))
}

// Body renders the plain-text reminder listing every alert.
func Body(alerts []Alert) string {
	var b strings.Builder
	b.WriteString("Olá,\n\nVocê tem os seguintes pagamentos próximos:\n\n")
	for _, a := range alerts {
		fmt.Fprintf(&b, "- %s: R$ %s em %s (%s)\n",
			a.Name,
			pkg.Round2(a.Amount).StringFixed(2),
			a.DueDate.Format("02/01/2006"),
			describeDays(a.DaysRemaining),
		)
		if a.Notes != "" {
			fmt.Fprintf(&b, "  %s\n", a.Notes)
		}
	}
	b.WriteString("\nFinanzApp")
	return b.String()
}

func describeDays(days int) string {
	switch days {
	case 0:
		return "vence hoje"
	case 1:
		return "vence amanhã"
	default:
		return fmt.Sprintf("faltam %d dias", days)
	}
}

package report

import (
	"context"
	"fmt"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendMailer implements adapter.ReportMailer using Resend. It sends the
// confirmation that a report was requested; the report document itself is
// delivered by the automation webhook.
type ResendMailer struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendMailer creates a new Resend mailer instance.
func NewResendMailer(apiKey, fromName, fromEmail string) *ResendMailer {
	return &ResendMailer{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendConfirmation sends the report request confirmation email.
func (m *ResendMailer) SendConfirmation(ctx context.Context, to, name string, requestedAt time.Time) error {
	from := fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)

	html := fmt.Sprintf(`<p>Ola %s,</p>
<p>Recebemos sua solicitacao de relatorio em %s. Ele chegara na sua caixa de entrada em alguns minutos.</p>
<p>Equipe FinControl</p>`, name, requestedAt.Format("02/01/2006 15:04"))

	text := fmt.Sprintf("Ola %s,\n\nRecebemos sua solicitacao de relatorio em %s. Ele chegara na sua caixa de entrada em alguns minutos.\n\nEquipe FinControl",
		name, requestedAt.Format("02/01/2006 15:04"))

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: "Seu relatorio esta a caminho",
		Html:    html,
		Text:    text,
	}

	_, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

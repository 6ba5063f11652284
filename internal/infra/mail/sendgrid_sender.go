// Package mail sends transactional email through SendGrid.
package mail

import (
	"context"
	"html"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/fx"
)

const defaultFromName = "Bazaar"

// sendClient is the subset of *sendgrid.Client used here.
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type sendgridSender struct {
	client   sendClient
	from     *mail.Email
	logger   *slog.Logger
	disabled bool
}

// SenderParams holds dependencies for the email sender, injected by Fx
type SenderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSendGridSender creates an EmailSender. Without an API key every send is
// logged and skipped, which keeps local environments working.
func NewSendGridSender(params SenderParams) service.EmailSender {
	cfg := params.Config.Email
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Info("SendGrid not configured, outbound email disabled")

		return &sendgridSender{logger: params.Logger, disabled: true}
	}

	fromName := cfg.FromName
	if fromName == "" {
		fromName = defaultFromName
	}

	return &sendgridSender{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   mail.NewEmail(fromName, cfg.From),
		logger: params.Logger,
	}
}

// Send delivers a plain-text email, with an escaped <pre> HTML alternative.
func (s *sendgridSender) Send(ctx context.Context, msg service.EmailMessage) error {
	if msg.To == "" {
		return errors.New("recipient address is empty")
	}

	if s.disabled {
		s.logger.Debug("[SendGrid] Email disabled, skipping",
			slog.String("subject", msg.Subject),
		)

		return nil
	}

	message := mail.NewSingleEmail(
		s.from,
		msg.Subject,
		mail.NewEmail(msg.ToName, msg.To),
		msg.Body,
		"<pre>"+html.EscapeString(msg.Body)+"</pre>",
	)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "sendgrid send error")
	}

	if response.StatusCode >= 400 {
		return errors.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	s.logger.Info("[SendGrid] Email sent",
		slog.Int("status", response.StatusCode),
		slog.String("subject", msg.Subject),
	)

	return nil
}

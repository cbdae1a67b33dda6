// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"log/slog"

	"nextstep/config"
	"nextstep/internal/domain/service"
	"nextstep/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/gomail.v2"
)

// Params defines the dependencies of the email sender.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender returns an SMTP sender when mail is enabled and a sender that
// only logs otherwise.
func NewEmailSender(params Params) service.EmailSender {
	cfg := params.Config.Mail
	if cfg == nil || !cfg.Enabled {
		return &logSender{logger: params.Logger}
	}

	return &smtpSender{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: params.Logger,
	}
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpSender struct {
	from   string
	dialer dialer
	logger *slog.Logger
}

func (s *smtpSender) Send(ctx context.Context, email *service.Email) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "email send canceled")
	}

	if err := s.dialer.DialAndSend(buildMessage(s.from, email)); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", email.To)
	}

	s.logger.InfoContext(ctx, "Email sent", slog.String("to", email.To), slog.String("subject", email.Subject))

	return nil
}

func buildMessage(from string, email *service.Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	return m
}

// logSender writes outgoing mail to the log. Used in development.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, email *service.Email) error {
	s.logger.InfoContext(ctx, "Email delivery disabled, logging message",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("body", email.HTML),
	)

	return nil
}

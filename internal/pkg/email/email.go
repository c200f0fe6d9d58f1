package email

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Sender delivers a single email message.
type Sender interface {
	Send(toEmail, subject, htmlBody string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPSender implements Sender over plain SMTP.
type SMTPSender struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(config SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		config: config,
		logger: logger,
	}
}

// Send delivers one HTML email. Without SMTP credentials it logs the message
// instead, so development environments work without a mail server.
func (s *SMTPSender) Send(toEmail, subject, htmlBody string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	from := s.config.FromEmail
	if from == "" {
		from = s.config.Username
	}

	headers := []string{
		fmt.Sprintf("From: %s <%s>", s.config.FromName, from),
		fmt.Sprintf("To: %s", toEmail),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, from, []string{toEmail}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	s.logger.Debug().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}

// JobPostedBody renders the notification body for a new job posting.
func JobPostedBody(company, jobTitle, location, description string) string {
	return fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">New Job Posted</h2>
				<p>A new job has been posted on the alumni network:</p>
				<p>
					Company: <strong>%s</strong><br>
					Title: <strong>%s</strong><br>
					Location: %s
				</p>
				<p>%s</p>
				<p>Log in to view the full posting.</p>
			</div>
		</body>
		</html>
	`, company, jobTitle, location, description)
}

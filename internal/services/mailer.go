package services

import (
	"context"
	"log"

	"github.com/wneessen/go-mail"

	"rahultripathi/resume-screener/internal/config"
)

// Mailer delivers a notification email. Send reports success only after a
// transport has accepted the full message and closed cleanly.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) bool
}

// smtpTransport is one entry in the fixed failover chain.
type smtpTransport struct {
	port        int
	implicitTLS bool
	description string
}

// smtpTransports is tried in order until one completes a send. The list is
// fixed; exhausting it is the only way Send returns false once dialing
// starts.
var smtpTransports = []smtpTransport{
	{port: 587, implicitTLS: false, description: "TLS on port 587"},
	{port: 465, implicitTLS: true, description: "SSL on port 465"},
	{port: 25, implicitTLS: false, description: "TLS on port 25"},
}

type smtpMailer struct {
	cfg config.MailConfig

	// attempt performs one full dial-send-close cycle over a single
	// transport. Swappable so the failover loop can be exercised without a
	// live SMTP server.
	attempt func(ctx context.Context, transport smtpTransport, msg *mail.Msg) error
}

func NewMailer(cfg config.MailConfig) Mailer {
	m := &smtpMailer{cfg: cfg}
	m.attempt = m.dialAndSend
	return m
}

// Send implements Mailer. Missing credentials short-circuit to false
// without dialing so the pipeline never blocks on an unconfigured notifier.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) bool {
	if !m.cfg.Enabled() {
		log.Println("⚠️ Email not sent: Gmail credentials not configured")
		return false
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Username); err != nil {
		log.Printf("❌ Invalid sender address %s: %v\n", m.cfg.Username, err)
		return false
	}
	if err := msg.To(to); err != nil {
		log.Printf("❌ Invalid recipient address %s: %v\n", to, err)
		return false
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	for _, transport := range smtpTransports {
		log.Printf("🔄 Trying %s...\n", transport.description)

		if err := m.attempt(ctx, transport, msg); err != nil {
			log.Printf("❌ Failed with %s: %v\n", transport.description, err)
			continue
		}

		log.Printf("✅ Email sent successfully to %s using %s\n", to, transport.description)
		return true
	}

	log.Println("❌ All SMTP transports failed. Check firewall or network restrictions on outgoing SMTP.")
	return false
}

// dialAndSend is the production attempt: build a client for the transport,
// deliver the message and close the connection.
func (m *smtpMailer) dialAndSend(ctx context.Context, transport smtpTransport, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(transport.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.cfg.Timeout),
	}
	if transport.implicitTLS {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}

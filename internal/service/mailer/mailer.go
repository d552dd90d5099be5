package mailer

import (
	"FurnishDesk/entity"
	"FurnishDesk/internal/config"
	"FurnishDesk/internal/lib/sl"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// sendTimeout bounds the whole SMTP exchange, not just the dial: a server
// that accepts the connection and then stalls must not pin a request worker.
const sendTimeout = 15 * time.Second

// Service delivers enquiry notifications to the shop mailbox over SMTP.
// Missing host, user or password means the service is not configured, which
// is an expected state, not an error.
type Service struct {
	host     string
	port     int
	user     string
	password string
	to       string
	from     string
	timeout  time.Duration
	log      *slog.Logger
}

func New(conf *config.Config, logger *slog.Logger) *Service {
	from := conf.Smtp.From
	if from == "" {
		from = conf.Smtp.User
	}
	if from == "" {
		from = "no-reply@furnishdesk.local"
	}
	return &Service{
		host:     conf.Smtp.Host,
		port:     conf.Smtp.Port,
		user:     conf.Smtp.User,
		password: conf.Smtp.Password,
		to:       conf.Smtp.To,
		from:     from,
		timeout:  sendTimeout,
		log:      logger.With(sl.Module("mailer")),
	}
}

func (s *Service) Configured() bool {
	return s.host != "" && s.user != "" && s.password != ""
}

// SendEnquiry emails one enquiry to the staff mailbox: connect, STARTTLS,
// authenticate, send.
func (s *Service) SendEnquiry(enquiry *entity.Enquiry) error {
	message := s.buildMessage(enquiry)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	deadline := time.Now().Add(s.timeout)
	conn, err := net.DialTimeout("tcp", addr, s.timeout)
	if err != nil {
		return fmt.Errorf("dial smtp server: %w", err)
	}
	if err = conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return fmt.Errorf("set smtp deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
		return fmt.Errorf("start tls: %w", err)
	}

	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err = client.Mail(s.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err = client.Rcpt(s.to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close data writer: %w", err)
	}

	s.log.With(
		slog.String("uuid", enquiry.UUID),
		slog.String("to", s.to),
	).Info("enquiry mail sent")

	return client.Quit()
}

func (s *Service) buildMessage(enquiry *entity.Enquiry) string {
	email := enquiry.Email
	if email == "" {
		email = "-"
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("From: %s\r\n", s.from))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", s.to))
	builder.WriteString(fmt.Sprintf("Subject: New Enquiry from %s\r\n", enquiry.Name))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString("New enquiry received from website\r\n\r\n")
	builder.WriteString(fmt.Sprintf("Name: %s\r\n", enquiry.Name))
	builder.WriteString(fmt.Sprintf("Phone: %s\r\n", enquiry.Phone))
	builder.WriteString(fmt.Sprintf("Email: %s\r\n\r\n", email))
	builder.WriteString(fmt.Sprintf("Message:\r\n%s\r\n", enquiry.Message))
	return builder.String()
}

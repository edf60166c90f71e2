package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// EmailService relays contact form submissions over SMTP. With no SMTP
// credentials configured it runs in dev mode and logs instead of sending.
type EmailService struct {
	host    string
	port    string
	user    string
	pass    string
	from    string
	to      string
	devMode bool
}

func NewEmailService(host, port, user, pass, from, to string) *EmailService {
	devMode := host == "" || user == ""
	if devMode {
		log.Println("⚠ Email service running in DEV MODE (logging to console)")
	}
	return &EmailService{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		to:      to,
		devMode: devMode,
	}
}

// SendContactEmail relays one contact form submission to the site
// owner's inbox, with the visitor's address as Reply-To.
func (s *EmailService) SendContactEmail(name, replyTo, company, message string) error {
	subject := fmt.Sprintf("New contact form submission from %s", name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nCompany: %s\nMessage: %s", name, replyTo, company, message)
	return s.send(subject, replyTo, body)
}

func (s *EmailService) send(subject, replyTo, body string) error {
	if s.devMode {
		log.Printf("📧 [DEV] Contact email:\nSubject: %s\nReply-To: %s\n%s", subject, replyTo, body)
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", s.from),
		fmt.Sprintf("To: %s", s.to),
		fmt.Sprintf("Reply-To: %s", replyTo),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.from, []string{s.to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	log.Printf("📧 Contact email sent: %s", subject)
	return nil
}

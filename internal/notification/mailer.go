// Package notification sends host-notification emails over SMTP.
package notification

import (
	"bytes"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// IsConfigured returns true if SMTP settings are present.
func (c SMTPConfig) IsConfigured() bool {
	return c.Host != "" && c.From != ""
}

// VisitNotice is the metadata emailed to a host when their visitor checks in.
type VisitNotice struct {
	ToEmail     string
	HostName    string
	VisitorName string
	Company     string
	ContactNo   string
	Purpose     string
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	SendVisitNotice(n VisitNotice) error
}

type smtpMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) SendVisitNotice(n VisitNotice) error {
	if !m.cfg.IsConfigured() {
		return fmt.Errorf("SMTP not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", n.ToEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Visitor waiting: %s", n.VisitorName))
	msg.SetBody("text/plain", FormatVisitNotice(n))

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Pass)
	return d.DialAndSend(msg)
}

// FormatVisitNotice builds the plain-text body for a visit notice.
func FormatVisitNotice(n VisitNotice) string {
	var buf bytes.Buffer

	if n.HostName != "" {
		fmt.Fprintf(&buf, "Hi %s,\n\n", n.HostName)
	} else {
		fmt.Fprint(&buf, "Hi,\n\n")
	}
	fmt.Fprint(&buf, "A visitor has checked in for you:\n\n")
	fmt.Fprintf(&buf, "Name:    %s\n", n.VisitorName)
	if n.Company != "" {
		fmt.Fprintf(&buf, "Company: %s\n", n.Company)
	}
	if n.ContactNo != "" {
		fmt.Fprintf(&buf, "Contact: %s\n", n.ContactNo)
	}
	if n.Purpose != "" {
		fmt.Fprintf(&buf, "Purpose: %s\n", n.Purpose)
	}
	fmt.Fprint(&buf, "\nPlease meet them at the reception.\n")

	return buf.String()
}

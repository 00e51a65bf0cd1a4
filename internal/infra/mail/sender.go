package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendLeadAssigned tells an agent a new lead was assigned to them.
// Callers treat failures as non-fatal.
func (s *EmailSender) SendLeadAssigned(to, agentName, leadName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New lead assigned: %s", leadName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nThe lead %q was just assigned to you. Log in to follow up.\n", agentName, leadName))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send assignment mail: %w", err)
	}

	return nil
}

package mailer

import (
	"log"

	"gopkg.in/gomail.v2"

	"robostaff_backend/internals/configs"
)

// Mailer: kontrak pengiriman email keluar. Kegagalan kirim TIDAK boleh
// menggagalkan aksi yang memicunya — pemanggil cukup mencatat log.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer mengirim lewat SMTP (gomail).
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password, from: from}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}

// LogMailer: dev mode — hanya mencatat ke log, tidak kirim apa-apa.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("[MAIL] to=%s subject=%q", to, subject)
	return nil
}

// FromConfig memilih implementasi berdasarkan ENV: SMTP kalau host diset,
// selain itu fallback ke LogMailer.
func FromConfig() Mailer {
	if configs.SMTPHost == "" {
		return LogMailer{}
	}
	return NewSMTPMailer(configs.SMTPHost, configs.SMTPPort, configs.SMTPUser, configs.SMTPPassword, configs.MailFrom)
}

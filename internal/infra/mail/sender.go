package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/outreach-guardian/internal/config"
)

const hotLeadTemplate = `<h2>🔥 Hot lead</h2>
<p><b>{{.Handle}}</b> on {{.Channel}} just scored <b>{{.Score}}/10</b>.</p>
{{if .Intent}}<p>Detected intent: {{.Intent}}</p>{{end}}
<p>Reach out while the conversation is warm.</p>`

type hotLeadData struct {
	Channel string
	Handle  string
	Intent  string
	Score   int
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	AlertTo  string

	tmpl *template.Template
}

func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	return &EmailSender{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		From:     cfg.From,
		AlertTo:  cfg.AlertTo,
		tmpl:     template.Must(template.New("hot_lead").Parse(hotLeadTemplate)),
	}
}

// SendHotLeadAlert emails the operator about a lead that crossed the hot
// threshold.
func (s *EmailSender) SendHotLeadAlert(channel, handle, intent string, score int) error {
	if s.Host == "" || s.AlertTo == "" {
		return fmt.Errorf("mail sender not configured (MAIL_HOST/MAIL_ALERT_TO missing)")
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, hotLeadData{
		Channel: channel,
		Handle:  handle,
		Intent:  intent,
		Score:   score,
	}); err != nil {
		return fmt.Errorf("render alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.AlertTo)
	m.SetHeader("Subject", fmt.Sprintf("🔥 Hot lead: %s on %s (score %d)", handle, channel, score))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send alert email: %w", err)
	}

	return nil
}

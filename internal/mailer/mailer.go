package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
)

const confirmationTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Report received</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for reporting an issue. Our team will review it shortly.</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;"><b>Report ID</b></td><td>{{.ReportID}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><b>Category</b></td><td>{{.Category}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><b>Location</b></td><td>{{.Location}}</td></tr>
    <tr><td style="padding: 4px 12px 4px 0;"><b>Status</b></td><td>{{.Status}}</td></tr>
  </table>
  <p><a href="{{.TrackURL}}">Track your report</a></p>
</div>`

// Sender delivers outbound notification mail.
type Sender interface {
	SendReportConfirmation(to, name string, report *model.Report) error
}

// Mailer sends notification emails over SMTP.
type Mailer struct {
	dialer    *gomail.Dialer
	from      string
	clientURL string
	tmpl      *template.Template
}

// Ensure Mailer implements Sender
var _ Sender = (*Mailer)(nil)

// New creates a mailer. Sending is best-effort; callers decide what to do
// with a failure.
func New(host string, port int, from, password, clientURL string) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(host, port, from, password),
		from:      from,
		clientURL: clientURL,
		tmpl:      template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	}
}

// SendReportConfirmation emails the report creator a submission confirmation.
func (m *Mailer) SendReportConfirmation(to, name string, report *model.Report) error {
	var body bytes.Buffer
	err := m.tmpl.Execute(&body, map[string]interface{}{
		"Name":     name,
		"ReportID": report.ID.String(),
		"Category": report.Category,
		"Location": report.Location,
		"Status":   string(report.Status),
		"TrackURL": fmt.Sprintf("%s/reports/%s", m.clientURL, report.ID),
	})
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "UrbanUplift: your report was submitted")
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}
	return nil
}

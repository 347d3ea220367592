package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"peso-job-portal/config"
)

// EmailService handles sending transactional emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// AccreditationEmailData holds the data for accreditation result emails
type AccreditationEmailData struct {
	CompanyName       string
	AccreditationID   string
	AccreditationDate string
	Declined          bool
	Reason            string
}

// HireEmailData holds the data for hire notification emails
type HireEmailData struct {
	ApplicantName string
	JobTitle      string
	CompanyName   string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

const accreditationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Accreditation Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>PESO Taguig Accreditation Update</h1>
        </div>
        <div class="content">
            {{if .Declined}}
            <p>Dear {{.CompanyName}},</p>
            <p>Your accreditation application has been <strong>declined</strong>.</p>
            {{if .Reason}}<div class="field"><div class="label">Reason:</div><div>{{.Reason}}</div></div>{{end}}
            <p>You may re-submit your compliance documents for another review.</p>
            {{else}}
            <p>Dear {{.CompanyName}},</p>
            <p>Congratulations! Your company has been <strong>accredited</strong>.</p>
            <div class="field"><div class="label">Accreditation ID:</div><div>{{.AccreditationID}}</div></div>
            <div class="field"><div class="label">Date:</div><div>{{.AccreditationDate}}</div></div>
            <p>You may now publish job vacancies on the portal.</p>
            {{end}}
        </div>
        <div class="footer">
            <p>This is an automated message from the PESO Taguig Job Portal.</p>
        </div>
    </div>
</body>
</html>`

const hireEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Application Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Congratulations, {{.ApplicantName}}!</h1>
        </div>
        <div class="content">
            <p>You have been <strong>hired</strong> for the position of
            <strong>{{.JobTitle}}</strong> at <strong>{{.CompanyName}}</strong>.</p>
            <p>The employer will reach out to you with the next steps.</p>
        </div>
        <div class="footer">
            <p>This is an automated message from the PESO Taguig Job Portal.</p>
        </div>
    </div>
</body>
</html>`

// SendAccreditationResult notifies an employer about the outcome of an
// accreditation review. Callers treat failures as non-fatal.
func (s *EmailService) SendAccreditationResult(to string, data AccreditationEmailData) error {
	subject := "Accreditation Approved"
	if data.Declined {
		subject = "Accreditation Declined"
	}
	return s.send(to, subject, accreditationEmailTemplate, data)
}

// SendHireNotification notifies an applicant they have been hired.
// Callers treat failures as non-fatal.
func (s *EmailService) SendHireNotification(to string, data HireEmailData) error {
	return s.send(to, fmt.Sprintf("You're hired: %s", data.JobTitle), hireEmailTemplate, data)
}

func (s *EmailService) send(to, subject, tmplText string, data interface{}) error {
	tmpl, err := template.New("email").Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
